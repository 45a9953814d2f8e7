package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	_ "gymhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gymhub/internal/auth"
	"gymhub/internal/cache"
	"gymhub/internal/config"
	"gymhub/internal/db"
	"gymhub/internal/handler"
	"gymhub/internal/model"
	"gymhub/internal/repository"
	"gymhub/internal/router"
	"gymhub/internal/service"
)

// @title Gym Management API
// @version 1.0
// @description Gym management API with JWT authentication and role-based access control.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Booking{},
			&model.GymClass{},
			&model.ServiceOffering{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.GymClass{},
		&model.Booking{},
		&model.ServiceOffering{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	classRepo := repository.NewClassRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)
	offeringRepo := repository.NewOfferingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	hasher := auth.NewPasswordHasher()

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	classService := service.NewClassService(classRepo, cacheClient)
	bookingService := service.NewBookingService(bookingRepo, classRepo)
	offeringService := service.NewOfferingService(offeringRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	classHandler := handler.NewClassHandler(classService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	offeringHandler := handler.NewOfferingHandler(offeringService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		classHandler,
		bookingHandler,
		offeringHandler,
	)

	// Log swagger full path
	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		if strings.HasPrefix(cfg.SwaggerHost, "http://") || strings.HasPrefix(cfg.SwaggerHost, "https://") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
