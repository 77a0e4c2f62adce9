package config

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config ค่าที่โหลดจาก environment ทั้งหมด
type Config struct {
	Port           string        `env:"PORT" envDefault:"5000"`
	AllowedOrigins string        `env:"ALLOWED_ORIGINS" envDefault:"*"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	StoreDriver    string        `env:"STORE_DRIVER" envDefault:"mongo"`

	Mongo  Mongo
	Auth   Auth
	Stripe Stripe
	Redis  Redis
}

type Mongo struct {
	URI     string `env:"MONGO_URI"`
	User    string `env:"DB_USER"`
	Pass    string `env:"DB_PASS"`
	Cluster string `env:"DB_CLUSTER" envDefault:"cluster0.f7zs7lw.mongodb.net"`
}

type Auth struct {
	Secret              string        `env:"ACCESS_TOKEN_SECRET,required,notEmpty"`
	TokenTTL            time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	BootstrapAdminEmail string        `env:"BOOTSTRAP_ADMIN_EMAIL"`
}

type Stripe struct {
	SecretKey string `env:"DB_STRIPEKEY"`
	Currency  string `env:"STRIPE_CURRENCY" envDefault:"usd"`
}

type Redis struct {
	URI string `env:"REDIS_URI"`
}

// Load อ่าน .env (ถ้ามี) แล้ว parse environment เข้า Config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMongo:
		if c.Mongo.URI == "" && (c.Mongo.User == "" || c.Mongo.Pass == "") {
			return fmt.Errorf("MONGO_URI or DB_USER/DB_PASS must be set")
		}
		if c.Stripe.SecretKey == "" {
			return fmt.Errorf("DB_STRIPEKEY must be set")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// MongoURI คืนค่า URI ที่ใช้เชื่อมต่อ ถ้าไม่ได้กำหนด MONGO_URI จะประกอบจาก DB_USER/DB_PASS
func (m Mongo) MongoURI() string {
	if m.URI != "" {
		return m.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s",
		url.QueryEscape(m.User), url.QueryEscape(m.Pass), m.Cluster)
}

// Addr is the listen address for Fiber.
func (c *Config) Addr() string {
	return ":" + url.PathEscape(c.Port)
}
