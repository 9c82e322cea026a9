package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"vehiclerental/internal/config"
	"vehiclerental/internal/database"
	"vehiclerental/internal/middleware"
	"vehiclerental/internal/modules/auth"
	"vehiclerental/internal/modules/booking"
	"vehiclerental/internal/modules/catalog"
	jwtsvc "vehiclerental/internal/pkg/jwt"
	"vehiclerental/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(vehicleRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, vehicleRepo)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		// protected (booking endpoints)
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(protected)

			// staff-only inventory management
			staffGroup := protected.Group("/")
			staffGroup.Use(middleware.StaffOnly())
			catalogHandler.RegisterStaffRoutes(staffGroup)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
