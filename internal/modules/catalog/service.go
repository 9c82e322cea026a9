package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/repository"
)

const vehiclesPerPage = 9

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Save(ctx context.Context, v *domain.Vehicle) error
	List(ctx context.Context, f repository.VehicleFilter) ([]domain.Vehicle, int64, error)
}

type Service struct {
	vehicles VehicleRepository
}

func NewService(vehicles VehicleRepository) *Service {
	return &Service{vehicles: vehicles}
}

func (s *Service) List(ctx context.Context, q ListVehiclesQuery) ([]domain.Vehicle, Pagination, error) {
	f := repository.VehicleFilter{
		Availability: q.Availability,
		Sort:         q.Sort,
		Page:         q.Page,
		PerPage:      vehiclesPerPage,
	}

	if q.MinPrice != "" {
		minRate, err := decimal.NewFromString(q.MinPrice)
		if err != nil {
			return nil, Pagination{}, ErrValidation
		}
		f.MinPrice = &minRate
	}
	if q.MaxPrice != "" {
		maxRate, err := decimal.NewFromString(q.MaxPrice)
		if err != nil {
			return nil, Pagination{}, ErrValidation
		}
		f.MaxPrice = &maxRate
	}

	rows, total, err := s.vehicles.List(ctx, f)
	if err != nil {
		return nil, Pagination{}, err
	}

	pages := int(total) / vehiclesPerPage
	if int(total)%vehiclesPerPage != 0 || pages == 0 {
		pages++
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	return rows, Pagination{CurrentPage: page, TotalPages: pages, Total: total}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

// Create registers a new vehicle in inventory. Staff only; the handler gates
// the route.
func (s *Service) Create(ctx context.Context, req CreateVehicleRequest) (*domain.Vehicle, error) {
	rate, err := decimal.NewFromString(req.DailyRate)
	if err != nil || rate.IsNegative() {
		return nil, ErrValidation
	}

	v := &domain.Vehicle{
		Name:         req.Name,
		LicensePlate: strings.ToUpper(strings.TrimSpace(req.LicensePlate)),
		Type:         domain.VehicleType(req.Type),
		DailyRate:    rate,
		Status:       domain.VehicleAvailable,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Description:  req.Description,
	}

	if err := s.vehicles.Create(ctx, v); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPlateTaken
		}
		return nil, err
	}
	return v, nil
}

// Update patches inventory fields on a vehicle; only fields present in the
// request change. Status here is how staff park a vehicle in maintenance or
// hand it over (in_use); the booking lifecycle drives booked/available on its
// own transitions.
func (s *Service) Update(ctx context.Context, id int64, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Status != nil {
		status := domain.VehicleStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrValidation
		}
		v.Status = status
	}
	if req.DailyRate != nil {
		rate, err := decimal.NewFromString(*req.DailyRate)
		if err != nil || rate.IsNegative() {
			return nil, ErrValidation
		}
		v.DailyRate = rate
	}
	if req.Latitude != nil {
		v.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		v.Longitude = req.Longitude
	}
	if req.Description != nil {
		v.Description = *req.Description
	}

	if err := s.vehicles.Save(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}
