package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "summer-camp-server/docs"
	"summer-camp-server/src/config"
	"summer-camp-server/src/database"
	"summer-camp-server/src/jobs"
	"summer-camp-server/src/repositories"
	"summer-camp-server/src/repositories/memstore"
	"summer-camp-server/src/routes"
	"summer-camp-server/src/services"
	"summer-camp-server/src/services/gateway"
	"summer-camp-server/src/utils"

	"github.com/hibiken/asynq"
)

// @title                       Summer Camp API
// @version                     1.0
// @description                 Class enrollment backend: users, classes, carts and payments.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx := context.Background()

	repos, closeStore := openStore(ctx, cfg)
	defer closeStore()

	redisClient, err := database.InitRedis(ctx, cfg.Redis.URI)
	if err != nil {
		log.Fatalf("❌ Failed to connect Redis: %v", err)
	}

	var enqueuer services.TaskEnqueuer
	var worker *asynq.Server
	if redisClient != nil {
		asynqClient := database.InitAsynq(cfg.Redis.URI)
		defer asynqClient.Close()
		enqueuer = asynqClient

		worker, err = jobs.StartWorker(cfg.Redis.URI, repos.Carts)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
	}

	var payGateway gateway.PaymentGateway = gateway.LocalGateway{}
	if cfg.Stripe.SecretKey != "" {
		payGateway = gateway.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.Currency)
	} else {
		log.Println("⚠️ DB_STRIPEKEY not set. Using local payment gateway.")
	}

	deps := routes.NewDependencies(routes.Wiring{
		Repos:               repos,
		Tokens:              utils.NewJWTManager(cfg.Auth.Secret, cfg.Auth.TokenTTL),
		Gateway:             payGateway,
		Redis:               redisClient,
		Jobs:                enqueuer,
		BootstrapAdminEmail: cfg.Auth.BootstrapAdminEmail,
	})
	app := routes.NewApp(deps, routes.AppOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
		AccessLog:      true,
	})

	go func() {
		log.Println("Server is running on port " + cfg.Port)
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatal(err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Println("❌ HTTP server shutdown error:", err)
	}
	if worker != nil {
		worker.Shutdown()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}

// openStore เลือก storage ตาม STORE_DRIVER
func openStore(ctx context.Context, cfg *config.Config) (repositories.Repositories, func()) {
	if cfg.StoreDriver == config.StoreMemory {
		log.Println("⚠️ Using in-memory store. Data is lost on restart.")
		return memstore.New().Repositories(), func() {}
	}

	mongoDB, err := database.ConnectMongoDB(ctx, cfg.Mongo.MongoURI())
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	users := repositories.NewMongoUserRepository(mongoDB.Users)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Println("⚠️", err)
	}

	repos := repositories.Repositories{
		Users:       users,
		Classes:     repositories.NewMongoClassRepository(mongoDB.Classes),
		Carts:       repositories.NewMongoCartRepository(mongoDB.MyClasses),
		Payments:    repositories.NewMongoPaymentRepository(mongoDB.Payments),
		Instructors: repositories.NewMongoInstructorRepository(mongoDB.Instructors),
	}
	return repos, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = mongoDB.Disconnect(ctx)
	}
}
