package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"framelight/internal/config"
	"framelight/internal/database"
	"framelight/internal/middleware"
	"framelight/internal/modules/auth"
	"framelight/internal/modules/booking"
	"framelight/internal/modules/catalog"
	"framelight/internal/modules/contact"
	"framelight/internal/modules/feed"
	jwtsvc "framelight/internal/pkg/jwt"
	"framelight/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	contactRepo := repository.NewContactRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	hub := feed.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j, cfg)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, catalogRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	contactService := contact.NewService(contactRepo)
	contactHandler := contact.NewHandler(contactService)

	feedHandler := feed.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		contactHandler.RegisterPublicRoutes(v1)

		// authenticated customers
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
		}

		// back-office
		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			bookingHandler.RegisterAdminRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
			contactHandler.RegisterAdminRoutes(admin)
			feedHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
