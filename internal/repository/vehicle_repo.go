package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vehiclerental/internal/domain"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type vehicleModel struct {
	ID           int64           `gorm:"column:id;primaryKey"`
	Name         string          `gorm:"column:name;size:100"`
	LicensePlate string          `gorm:"column:license_plate;size:20;uniqueIndex"`
	Type         string          `gorm:"column:vehicle_type;size:20"`
	DailyRate    decimal.Decimal `gorm:"column:daily_rate;type:numeric(10,2)"`
	Status       string          `gorm:"column:status;size:20;index"`
	Latitude     *float64        `gorm:"column:latitude"`
	Longitude    *float64        `gorm:"column:longitude"`
	Description  *string         `gorm:"column:description;type:text"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}

	return &domain.Vehicle{
		ID:           m.ID,
		Name:         m.Name,
		LicensePlate: m.LicensePlate,
		Type:         domain.VehicleType(m.Type),
		DailyRate:    m.DailyRate,
		Status:       domain.VehicleStatus(m.Status),
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		Description:  desc,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toVehicleModel(v *domain.Vehicle) vehicleModel {
	var desc *string
	if v.Description != "" {
		d := v.Description
		desc = &d
	}

	return vehicleModel{
		ID:           v.ID,
		Name:         v.Name,
		LicensePlate: v.LicensePlate,
		Type:         string(v.Type),
		DailyRate:    v.DailyRate,
		Status:       string(v.Status),
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		Description:  desc,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

func (r *VehicleRepository) Save(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

// VehicleFilter narrows and orders List results.
type VehicleFilter struct {
	Availability string // "available", "unavailable" or empty
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sort         string // "name", "price_asc", "price_desc"
	Page         int
	PerPage      int
}

func (r *VehicleRepository) List(ctx context.Context, f VehicleFilter) ([]domain.Vehicle, int64, error) {
	q := r.db.WithContext(ctx).Model(&vehicleModel{})

	switch f.Availability {
	case "available":
		q = q.Where("status = ?", string(domain.VehicleAvailable))
	case "unavailable":
		q = q.Where("status <> ?", string(domain.VehicleAvailable))
	}

	if f.MinPrice != nil {
		q = q.Where("daily_rate >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("daily_rate <= ?", *f.MaxPrice)
	}

	var total int64
	if tx := q.Count(&total); tx.Error != nil {
		return nil, 0, tx.Error
	}

	switch f.Sort {
	case "price_asc":
		q = q.Order("daily_rate ASC")
	case "price_desc":
		q = q.Order("daily_rate DESC")
	default:
		q = q.Order("name ASC")
	}

	if f.PerPage > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		q = q.Limit(f.PerPage).Offset((page - 1) * f.PerPage)
	}

	var rows []vehicleModel
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Vehicle, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainVehicle(m))
	}
	return out, total, nil
}
