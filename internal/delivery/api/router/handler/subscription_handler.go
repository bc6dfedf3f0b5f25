package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"adhan/internal/delivery/api/response"
	"adhan/internal/delivery/api/validator"
	"adhan/internal/domain/entity"
	"adhan/internal/usecase"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler handles subscription lifecycle endpoints
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscribeRequest is a browser PushSubscription plus the subscriber location
type SubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"omitempty,url"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
	FCMToken    string   `json:"fcm_token" validate:"required_without=Endpoint"`
	Lat         *float64 `json:"lat" validate:"omitempty,latitude"`
	Lon         *float64 `json:"lon" validate:"omitempty,longitude"`
	Timezone    string   `json:"timezone" validate:"omitempty,timezone"`
	CountryCode string   `json:"country_code" validate:"omitempty,len=2,alpha"`
}

// UnsubscribeRequest identifies a subscription by its push endpoint
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
}

// SubscriptionView is the inspection view; push keys are never echoed back
type SubscriptionView struct {
	ID             string     `json:"id"`
	Endpoint       string     `json:"endpoint,omitempty"`
	HasFCMToken    bool       `json:"has_fcm_token"`
	Lat            *float64   `json:"lat,omitempty"`
	Lon            *float64   `json:"lon,omitempty"`
	Timezone       string     `json:"timezone,omitempty"`
	CountryCode    string     `json:"country_code,omitempty"`
	Active         bool       `json:"active"`
	NextPrayerName string     `json:"next_prayer_name,omitempty"`
	NextPrayerAt   *time.Time `json:"next_prayer_at,omitempty"`
	LastSentName   string     `json:"last_sent_name,omitempty"`
	LastSentAt     *time.Time `json:"last_sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func newSubscriptionView(sub *entity.Subscription) *SubscriptionView {
	return &SubscriptionView{
		ID:             sub.ID,
		Endpoint:       sub.Endpoint,
		HasFCMToken:    sub.FCMToken != "",
		Lat:            sub.Lat,
		Lon:            sub.Lon,
		Timezone:       sub.Timezone,
		CountryCode:    sub.CountryCode,
		Active:         sub.Active,
		NextPrayerName: string(sub.NextPrayerName),
		NextPrayerAt:   millisToTime(sub.NextPrayerAt),
		LastSentName:   string(sub.LastSentName),
		LastSentAt:     millisToTime(sub.LastSentAt),
		CreatedAt:      sub.CreatedAt,
		UpdatedAt:      sub.UpdatedAt,
	}
}

func millisToTime(ms int64) *time.Time {
	if ms == 0 {
		return nil
	}
	t := time.UnixMilli(ms).UTC()

	return &t
}

// Subscribe handles POST /api/subscriptions
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid subscription body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	sub, err := h.subscriptionUC.Subscribe(c.Request().Context(), &usecase.SubscribeInput{
		Endpoint:    req.Endpoint,
		Keys:        entity.PushKeys{P256dh: req.Keys.P256dh, Auth: req.Keys.Auth},
		FCMToken:    req.FCMToken,
		Lat:         req.Lat,
		Lon:         req.Lon,
		Timezone:    req.Timezone,
		CountryCode: req.CountryCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSubscriptionView(sub))
}

// GetSubscription handles GET /api/subscriptions/:id
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	sub, err := h.subscriptionUC.GetSubscription(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSubscriptionView(sub))
}

// Unsubscribe handles DELETE /api/subscriptions/:id
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unsubscribed"})
}

// UnsubscribeEndpoint handles POST /api/unsubscribe
func (h *SubscriptionHandler) UnsubscribeEndpoint(c echo.Context) error {
	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid unsubscribe body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	if err := h.subscriptionUC.UnsubscribeEndpoint(c.Request().Context(), req.Endpoint); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unsubscribed"})
}
