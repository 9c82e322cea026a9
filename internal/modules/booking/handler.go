package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vehiclerental/internal/domain"
	"vehiclerental/internal/middleware"
	"vehiclerental/internal/pkg/response"
)

type transitionFunc func(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/mine", h.ListMine)
	rg.POST("/bookings/:id/cancel", h.Cancel)
	rg.POST("/bookings/:id/approve", h.Approve)
	rg.POST("/bookings/:id/complete", h.Complete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	actor := middleware.ActorFromContext(c)

	b, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": newBookingResponse(b)})
}

func (h *Handler) ListMine(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	rows, err := h.service.ListForCustomer(c.Request.Context(), actor.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]BookingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, newBookingResponse(&rows[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": out})
}

func (h *Handler) Cancel(c *gin.Context)   { h.transition(c, h.service.Cancel) }
func (h *Handler) Approve(c *gin.Context)  { h.transition(c, h.service.Approve) }
func (h *Handler) Complete(c *gin.Context) { h.transition(c, h.service.Complete) }

func (h *Handler) transition(c *gin.Context, op transitionFunc) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	actor := middleware.ActorFromContext(c)

	b, err := op(c.Request.Context(), actor, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":     b.ID,
		"status": string(b.Status),
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be YYYY-MM-DD")
	case errors.Is(err, ErrInvalidDateRange):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "end_date must be on or after start_date")
	case errors.Is(err, ErrVehicleUnavailable):
		response.Error(c, http.StatusBadRequest, "VEHICLE_UNAVAILABLE", "Vehicle is under maintenance")
	case errors.Is(err, ErrScheduleConflict):
		response.Error(c, http.StatusConflict, "SCHEDULE_CONFLICT", "Vehicle is already booked for the selected dates")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", "Booking cannot change to that status")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed for this booking")
	case errors.Is(err, ErrVehicleNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vehicle not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Request failed")
	}
}
