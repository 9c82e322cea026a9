package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/repository"
)

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	if v != nil {
		v.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Save(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) List(ctx context.Context, f repository.VehicleFilter) ([]domain.Vehicle, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int64), args.Error(2)
}

func TestService_Create_Vehicle(t *testing.T) {
	mockVehicles := new(MockVehicleRepository)
	mockVehicles.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockVehicles)

	v, err := service.Create(context.Background(), CreateVehicleRequest{
		Name:         "City Bike",
		LicensePlate: " 51f-123.45 ",
		Type:         "bike",
		DailyRate:    "150000",
	})

	assert.NoError(t, err)
	assert.Equal(t, "51F-123.45", v.LicensePlate)
	assert.Equal(t, domain.VehicleAvailable, v.Status)
	assert.Equal(t, "150000.00", v.DailyRate.StringFixed(2))
	assert.Equal(t, 2, v.Type.Seats())
}

func TestService_Create_NegativeRate(t *testing.T) {
	service := NewService(new(MockVehicleRepository))

	_, err := service.Create(context.Background(), CreateVehicleRequest{
		Name:         "Bad",
		LicensePlate: "X",
		Type:         "bike",
		DailyRate:    "-5",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_Status(t *testing.T) {
	mockVehicles := new(MockVehicleRepository)
	mockVehicles.On("GetByID", mock.Anything, int64(3)).Return(&domain.Vehicle{
		ID:        3,
		Name:      "Sedan",
		Type:      domain.VehicleCar4,
		DailyRate: decimal.RequireFromString("400000"),
		Status:    domain.VehicleAvailable,
	}, nil)
	mockVehicles.On("Save", mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
		return v.Status == domain.VehicleMaintenance
	})).Return(nil)

	service := NewService(mockVehicles)

	status := "maintenance"
	v, err := service.Update(context.Background(), 3, UpdateVehicleRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, domain.VehicleMaintenance, v.Status)
}

func TestService_Update_InvalidStatus(t *testing.T) {
	mockVehicles := new(MockVehicleRepository)
	mockVehicles.On("GetByID", mock.Anything, int64(3)).Return(&domain.Vehicle{ID: 3}, nil)

	service := NewService(mockVehicles)

	status := "lost"
	_, err := service.Update(context.Background(), 3, UpdateVehicleRequest{Status: &status})

	assert.ErrorIs(t, err, ErrValidation)
	mockVehicles.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Get_NotFound(t *testing.T) {
	mockVehicles := new(MockVehicleRepository)
	mockVehicles.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockVehicles)

	_, err := service.Get(context.Background(), 404)

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestService_List_PriceFilterParsing(t *testing.T) {
	mockVehicles := new(MockVehicleRepository)
	mockVehicles.On("List", mock.Anything, mock.MatchedBy(func(f repository.VehicleFilter) bool {
		return f.MinPrice != nil && f.MinPrice.Equal(decimal.RequireFromString("100000")) &&
			f.MaxPrice != nil && f.MaxPrice.Equal(decimal.RequireFromString("500000"))
	})).Return([]domain.Vehicle{}, int64(0), nil)

	service := NewService(mockVehicles)

	_, pagination, err := service.List(context.Background(), ListVehiclesQuery{
		MinPrice: "100000",
		MaxPrice: "500000",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, pagination.TotalPages)
}

func TestService_List_BadPriceFilter(t *testing.T) {
	service := NewService(new(MockVehicleRepository))

	_, _, err := service.List(context.Background(), ListVehiclesQuery{MinPrice: "cheap"})

	assert.ErrorIs(t, err, ErrValidation)
}
