package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"crewbook/config"
	"crewbook/services/booking"
	"crewbook/utils"
)

const availabilityCachePrefix = "availability:"

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Cache   *redis.Client
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, cache *redis.Client, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Cache: cache, Logger: logger}
}

// CheckAvailability handles GET /api/bookings/availability.
// Query params: date (required, "YYYY-MM-DD"), startTime (optional), duration
// (optional whole hours, default 0).
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "0"))
	if err != nil || duration < 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid duration", "expected a non-negative whole number of hours")
		return
	}

	var startTime *time.Time
	if raw := c.Query("startTime"); raw != "" {
		parsed, err := parseTimestamp(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid startTime", err.Error())
			return
		}
		startTime = &parsed
	}

	ctx := c.Request.Context()

	// Date-level responses are cached; windowed queries always hit the stores.
	cacheable := startTime == nil && h.cacheTTL() > 0
	cacheKey := availabilityCachePrefix + date
	if cacheable {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	result, err := h.Service.CheckAvailability(ctx, date, startTime, duration)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if cacheable {
		if payload, err := json.Marshal(result); err == nil {
			if err := h.Cache.Set(ctx, cacheKey, payload, h.cacheTTL()).Err(); err != nil {
				h.Logger.Warn("failed to cache availability response", zap.Error(err))
			}
		}
	}
	c.JSON(http.StatusOK, result)
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		StartTime       time.Time `json:"startTime" binding:"required"`
		Duration        int       `json:"duration" binding:"min=0"`
		ProfessionalIDs []string  `json:"professionalIds" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.CreateBooking(c.Request.Context(), input.StartTime, input.Duration, input.ProfessionalIDs)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.invalidateAvailability(c.Request.Context())
	c.JSON(http.StatusCreated, resp)
}

// UpdateBooking handles PUT /api/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	bookingID := c.Param("id")
	var input struct {
		NewStartTime time.Time `json:"newStartTime" binding:"required"`
		NewDuration  int       `json:"newDuration" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.UpdateBooking(c.Request.Context(), bookingID, input.NewStartTime, input.NewDuration)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.invalidateAvailability(c.Request.Context())
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) cacheTTL() time.Duration {
	return time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
}

// invalidateAvailability drops every cached availability response. Bookings
// are rare relative to availability reads, so a full purge keeps the cache
// honest without tracking which dates a mutation touched.
func (h *BookingHandler) invalidateAvailability(ctx context.Context) {
	if h.cacheTTL() <= 0 {
		return
	}
	iter := h.Cache.Scan(ctx, 0, availabilityCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := h.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			h.Logger.Warn("failed to invalidate availability cache", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		h.Logger.Warn("availability cache scan failed", zap.Error(err))
	}
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var (
		notFound     *booking.BookingNotFoundError
		unknown      *booking.UnknownProfessionalError
		mismatch     *booking.VehicleMismatchError
		unavailable  *booking.SlotUnavailableError
		inconsistent *booking.SlotInconsistencyError
	)
	switch {
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found. Please check the booking ID and try again.", err.Error())
	case errors.As(err, &unknown):
		utils.JSONError(c, http.StatusBadRequest, "Unknown professional.", err.Error())
	case errors.As(err, &mismatch):
		utils.JSONError(c, http.StatusConflict, "Professionals must belong to the same vehicle", err.Error())
	case errors.As(err, &unavailable):
		utils.JSONError(c, http.StatusConflict, "There was a conflict with the availability. Please try again later.", err.Error())
	case errors.As(err, &inconsistent):
		utils.JSONError(c, http.StatusInternalServerError, "Slot state is inconsistent with the booking request.", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

// parseTimestamp accepts RFC3339 and the zoneless "2006-01-02T15:04" form
// clients commonly send.
func parseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", raw)
}
