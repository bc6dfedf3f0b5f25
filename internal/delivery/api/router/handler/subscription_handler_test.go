package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adhan/internal/domain/entity"
	domainerrors "adhan/internal/domain/errors"
	mockUsecase "adhan/internal/mocks/usecase"
	"adhan/internal/usecase"
)

func newSubscriptionServer(t *testing.T) (*echo.Echo, *mockUsecase.MockSubscriptionUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: uc, Logger: discardLogger()})

	e := newTestEcho()
	e.POST("/api/subscriptions", h.Subscribe)
	e.GET("/api/subscriptions/:id", h.GetSubscription)
	e.DELETE("/api/subscriptions/:id", h.Unsubscribe)
	e.POST("/api/unsubscribe", h.UnsubscribeEndpoint)

	return e, uc
}

func TestSubscriptionHandler_Subscribe(t *testing.T) {
	e, uc := newSubscriptionServer(t)

	lat, lon := 59.91, 10.75
	created := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	uc.EXPECT().Subscribe(mock.Anything, mock.MatchedBy(func(in *usecase.SubscribeInput) bool {
		return in.Endpoint == "https://push.example.com/abc" &&
			in.Keys.P256dh == "p256" && in.Keys.Auth == "auth" &&
			in.Lat != nil && *in.Lat == lat && in.Timezone == "Europe/Oslo"
	})).Return(&entity.Subscription{
		ID:        "sub-1",
		Endpoint:  "https://push.example.com/abc",
		Keys:      entity.PushKeys{P256dh: "p256", Auth: "auth"},
		Lat:       &lat,
		Lon:       &lon,
		Timezone:  "Europe/Oslo",
		Active:    true,
		CreatedAt: created,
		UpdatedAt: created,
	}, nil)

	rec := doRequest(e, http.MethodPost, "/api/subscriptions", `{
		"endpoint": "https://push.example.com/abc",
		"keys": {"p256dh": "p256", "auth": "auth"},
		"lat": 59.91, "lon": 10.75,
		"timezone": "Europe/Oslo"
	}`)

	requireStatus(t, http.StatusCreated, rec)
	view := decodeData[SubscriptionView](t, rec)
	assert.Equal(t, "sub-1", view.ID)
	assert.True(t, view.Active)
	assert.False(t, view.HasFCMToken)
	assert.Nil(t, view.NextPrayerAt)
	assert.NotContains(t, rec.Body.String(), "p256", "push keys are never echoed")
}

func TestSubscriptionHandler_SubscribeRejectsInput(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "no endpoint and no token",
			body:      `{"keys": {"p256dh": "a", "auth": "b"}}`,
			wantField: "fcm_token",
		},
		{
			name:      "latitude out of range",
			body:      `{"fcm_token": "tok", "lat": 95, "lon": 10}`,
			wantField: "lat",
		},
		{
			name:      "unknown timezone",
			body:      `{"fcm_token": "tok", "timezone": "Mars/Olympus"}`,
			wantField: "timezone",
		},
		{
			name:      "country code too long",
			body:      `{"fcm_token": "tok", "country_code": "NOR"}`,
			wantField: "country_code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newSubscriptionServer(t)

			rec := doRequest(e, http.MethodPost, "/api/subscriptions", tt.body)

			requireStatus(t, http.StatusBadRequest, rec)
			info := decodeError(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", info.Code)
			assert.Contains(t, info.Details, tt.wantField)
		})
	}
}

func TestSubscriptionHandler_SubscribeMalformedBody(t *testing.T) {
	e, _ := newSubscriptionServer(t)

	rec := doRequest(e, http.MethodPost, "/api/subscriptions", `{"endpoint": `)

	requireStatus(t, http.StatusBadRequest, rec)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
}

func TestSubscriptionHandler_SubscribeDomainError(t *testing.T) {
	e, uc := newSubscriptionServer(t)

	uc.EXPECT().Subscribe(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrSubscriptionInvalid.WithDetails("missing auth key"))

	rec := doRequest(e, http.MethodPost, "/api/subscriptions", `{"endpoint": "https://push.example.com/abc"}`)

	requireStatus(t, http.StatusBadRequest, rec)
	info := decodeError(t, rec)
	assert.Equal(t, "SUBSCRIPTION_INVALID", info.Code)
	assert.Equal(t, "missing auth key", info.Details)
}

func TestSubscriptionHandler_GetSubscription(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, uc := newSubscriptionServer(t)

		nextAt := time.Date(2024, time.March, 15, 16, 28, 0, 0, time.UTC)
		uc.EXPECT().GetSubscription(mock.Anything, "sub-1").Return(&entity.Subscription{
			ID:             "sub-1",
			FCMToken:       "tok",
			Active:         true,
			NextPrayerName: entity.Maghrib,
			NextPrayerAt:   nextAt.UnixMilli(),
		}, nil)

		rec := doRequest(e, http.MethodGet, "/api/subscriptions/sub-1", "")

		requireStatus(t, http.StatusOK, rec)
		view := decodeData[SubscriptionView](t, rec)
		assert.True(t, view.HasFCMToken)
		assert.Equal(t, "Maghrib", view.NextPrayerName)
		require.NotNil(t, view.NextPrayerAt)
		assert.True(t, nextAt.Equal(*view.NextPrayerAt))
		assert.Nil(t, view.LastSentAt)
	})

	t.Run("not found", func(t *testing.T) {
		e, uc := newSubscriptionServer(t)

		uc.EXPECT().GetSubscription(mock.Anything, "missing").Return(nil, domainerrors.ErrSubscriptionNotFound)

		rec := doRequest(e, http.MethodGet, "/api/subscriptions/missing", "")

		requireStatus(t, http.StatusNotFound, rec)
		assert.Equal(t, "SUBSCRIPTION_NOT_FOUND", decodeError(t, rec).Code)
	})
}

func TestSubscriptionHandler_Unsubscribe(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		e, uc := newSubscriptionServer(t)

		uc.EXPECT().Unsubscribe(mock.Anything, "sub-1").Return(nil)

		rec := doRequest(e, http.MethodDelete, "/api/subscriptions/sub-1", "")

		requireStatus(t, http.StatusOK, rec)
	})

	t.Run("by endpoint", func(t *testing.T) {
		e, uc := newSubscriptionServer(t)

		uc.EXPECT().UnsubscribeEndpoint(mock.Anything, "https://push.example.com/abc").Return(nil)

		rec := doRequest(e, http.MethodPost, "/api/unsubscribe", `{"endpoint": "https://push.example.com/abc"}`)

		requireStatus(t, http.StatusOK, rec)
	})

	t.Run("endpoint required", func(t *testing.T) {
		e, _ := newSubscriptionServer(t)

		rec := doRequest(e, http.MethodPost, "/api/unsubscribe", `{}`)

		requireStatus(t, http.StatusBadRequest, rec)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("store unavailable", func(t *testing.T) {
		e, uc := newSubscriptionServer(t)

		uc.EXPECT().Unsubscribe(mock.Anything, "sub-1").
			Return(domainerrors.NewStoreError(assert.AnError, "delete subscription"))

		rec := doRequest(e, http.MethodDelete, "/api/subscriptions/sub-1", "")

		requireStatus(t, http.StatusServiceUnavailable, rec)
		info := decodeError(t, rec)
		assert.Equal(t, "STORE_UNAVAILABLE", info.Code)
		assert.Nil(t, info.Details, "5xx responses carry no details")
	})
}
