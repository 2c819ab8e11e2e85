package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jeansfactory/internal/handlers"
	"jeansfactory/internal/models"
	"jeansfactory/internal/repositories"
	"jeansfactory/internal/services"
	"jeansfactory/pkg/rabbitmq"
	"jeansfactory/pkg/storefront"
)

// appConfig collects everything main needs from the environment.
type appConfig struct {
	Port         string
	DatabaseDSN  string
	JWTSecret    string
	RabbitMQURL  string
	AdminEmail   string
	StrictTotals bool
}

func loadConfig() appConfig {
	viper.SetDefault("APP_PORT", ":3002")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("JWT_SECRET", "super-secret-key-jeans-factory")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("ADMIN_EMAIL", "admin@jeansfactory.com")
	viper.SetDefault("STRICT_TOTALS", false)
	viper.AutomaticEnv()

	return appConfig{
		Port:         viper.GetString("APP_PORT"),
		DatabaseDSN:  viper.GetString("DATABASE_DSN"),
		JWTSecret:    viper.GetString("JWT_SECRET"),
		RabbitMQURL:  viper.GetString("RABBITMQ_URL"),
		AdminEmail:   viper.GetString("ADMIN_EMAIL"),
		StrictTotals: viper.GetBool("STRICT_TOTALS"),
	}
}

// newApp wires repositories, services and handlers into a Fiber app.
func newApp(cfg appConfig, userRepo repositories.UserRepository, productRepo repositories.ProductRepository, orderRepo repositories.OrderRepository, publisher services.EventPublisher) *fiber.App {
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, publisher, cfg.StrictTotals)

	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, authService, cfg.AdminEmail)
	orderHandler := handlers.NewOrderHandler(orderService, authService)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

func main() {
	cfg := loadConfig()

	var (
		userRepo    repositories.UserRepository
		productRepo repositories.ProductRepository
		orderRepo   repositories.OrderRepository
	)

	if cfg.DatabaseDSN != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		userRepo = repositories.NewGORMUserRepository(db)
		productRepo = repositories.NewGORMProductRepository(db)
		orderRepo = repositories.NewGORMOrderRepository(db)
	} else {
		// No database configured: run on in-memory repositories with the
		// demo catalog, useful for local development.
		log.Println("DATABASE_DSN not set, using in-memory repositories")
		userRepo = repositories.NewMockUserRepository()
		productRepo = repositories.NewMockProductRepository()
		orderRepo = repositories.NewMockOrderRepository()
		seedProducts(productRepo)
	}

	// RabbitMQ is optional; order events are fire-and-forget.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient

			// Log order lifecycle events until a real fulfilment consumer
			// takes over the queue.
			if err := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
				log.Printf("Order event %s: %s", msg.Type, string(msg.Body))
				return nil
			}); err != nil {
				log.Printf("Failed to start order event consumer: %v", err)
			}
		}
	}

	app := newApp(cfg, userRepo, productRepo, orderRepo, publisher)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", cfg.Port)
		if err := app.Listen(cfg.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// seedProducts loads the demo catalog into the product repository.
func seedProducts(repo repositories.ProductRepository) {
	for _, product := range storefront.DemoCatalog() {
		if err := repo.Create(&product); err != nil {
			log.Printf("Error seeding product %s: %v", product.Name, err)
		}
	}
}
