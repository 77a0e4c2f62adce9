package routes

import (
	"time"

	"summer-camp-server/src/controllers"
	"summer-camp-server/src/middleware"
	"summer-camp-server/src/repositories"
	"summer-camp-server/src/services"
	"summer-camp-server/src/services/gateway"
	"summer-camp-server/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
)

// Wiring collaborators that are optional are nil-able (Redis, Jobs).
type Wiring struct {
	Repos               repositories.Repositories
	Tokens              *utils.JWTManager
	Gateway             gateway.PaymentGateway
	Redis               *redis.Client
	Jobs                services.TaskEnqueuer
	BootstrapAdminEmail string
}

const checkoutGuardTTL = 24 * time.Hour

// NewDependencies สร้าง service/controller ทั้งหมดจาก repository ที่ส่งเข้ามา
func NewDependencies(w Wiring) Dependencies {
	users := services.NewUserService(w.Repos.Users, w.BootstrapAdminEmail)

	var guard services.CheckoutGuard
	if w.Redis != nil {
		guard = services.NewRedisCheckoutGuard(w.Redis, checkoutGuardTTL)
	}

	return Dependencies{
		Tokens:  w.Tokens,
		Users:   users,
		Auth:    &controllers.AuthController{Tokens: w.Tokens},
		UserCtl: &controllers.UserController{Users: users},
		Classes: &controllers.ClassController{Classes: services.NewClassService(w.Repos.Classes)},
		Carts:   &controllers.CartController{Carts: services.NewCartService(w.Repos.Carts, w.Repos.Classes)},
		Payments: &controllers.PaymentController{
			Checkout: services.NewCheckoutService(w.Repos, guard, w.Jobs),
			Gateway:  w.Gateway,
		},
		Instructors: &controllers.InstructorController{
			Instructors: services.NewInstructorService(w.Repos.Instructors, w.Redis),
		},
	}
}

type AppOptions struct {
	AllowedOrigins string
	RequestTimeout time.Duration
	AccessLog      bool
}

// NewApp สร้าง fiber app พร้อม middleware และ routes ทั้งหมด
func NewApp(deps Dependencies, opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "summer-camp-server",
		ErrorHandler: utils.FiberErrorHandler,
	})

	app.Use(middleware.Recovery())
	app.Use(middleware.CORS(opts.AllowedOrigins))
	app.Use(middleware.RequestContext(opts.RequestTimeout))
	if opts.AccessLog {
		app.Use(middleware.Logger())
	}

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	InitRoutes(app, deps)
	return app
}
