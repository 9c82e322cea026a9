package main

import (
	"context"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"vehiclerental/internal/database"
	"vehiclerental/internal/domain"
	"vehiclerental/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "rental.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	vehicles := repository.NewVehicleRepository(db)

	log.Println("Creating users...")

	staffHash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := &domain.User{
		Email:        "staff@rental.vn",
		PasswordHash: string(staffHash),
		Name:         "Rental Staff",
		Role:         domain.RoleStaff,
	}
	if err := users.Create(ctx, staff); err != nil {
		log.Fatal(err)
	}

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := &domain.User{
		Email:        "customer@example.com",
		PasswordHash: string(customerHash),
		Name:         "Demo Customer",
		Phone:        "0901234567",
		Role:         domain.RoleCustomer,
	}
	if err := users.Create(ctx, customer); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating vehicles...")

	lat, lng := 10.7769, 106.7009
	fleet := []*domain.Vehicle{
		{
			Name:         "Honda Wave",
			LicensePlate: "59X1-123.45",
			Type:         domain.VehicleBike,
			DailyRate:    decimal.RequireFromString("100000"),
			Status:       domain.VehicleAvailable,
			Latitude:     &lat,
			Longitude:    &lng,
			Description:  "Reliable city bike",
		},
		{
			Name:         "Toyota Vios",
			LicensePlate: "51F-678.90",
			Type:         domain.VehicleCar4,
			DailyRate:    decimal.RequireFromString("600000"),
			Status:       domain.VehicleAvailable,
			Description:  "Compact 4-seater",
		},
		{
			Name:         "Kia Carnival",
			LicensePlate: "51H-246.80",
			Type:         domain.VehicleCar7,
			DailyRate:    decimal.RequireFromString("1100000"),
			Status:       domain.VehicleMaintenance,
			Description:  "7-seater, currently in the shop",
		},
	}
	for _, v := range fleet {
		if err := vehicles.Create(ctx, v); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("Seed complete: %d users, %d vehicles", 2, len(fleet))
	log.Println("Staff login:    staff@rental.vn / staff123")
	log.Println("Customer login: customer@example.com / customer123")
}
