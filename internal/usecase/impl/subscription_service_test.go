package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adhan/internal/domain/entity"
	domainerrors "adhan/internal/domain/errors"
	"adhan/internal/domain/repository"
	"adhan/internal/errors"
	mockRepo "adhan/internal/mocks/repository"
	"adhan/internal/usecase"
)

const testEndpoint = "https://fcm.googleapis.com/fcm/send/abc123"

func createTestSubscriptionService(t *testing.T, now time.Time) (*subscriptionService, *mockRepo.MockSubscriptionRepository) {
	t.Helper()

	repo := mockRepo.NewMockSubscriptionRepository(t)
	svc := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: repo,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*subscriptionService)
	svc.now = func() time.Time { return now }

	return svc, repo
}

func floatPtr(f float64) *float64 {
	return &f
}

func webPushInput() *usecase.SubscribeInput {
	return &usecase.SubscribeInput{
		Endpoint:    testEndpoint,
		Keys:        entity.PushKeys{P256dh: "BNcRdreALRFXTkOOUHK1EtK2wtaz5Ry4YfYCA_0QTpQtUbVlUls0VJXg7A8u-Ts1XbjhazAkj7I99e8QcYP7DkM", Auth: "tBHItJI5svbpez7KI4CCXg"},
		Lat:         floatPtr(59.91),
		Lon:         floatPtr(10.75),
		Timezone:    "Europe/Oslo",
		CountryCode: "no",
	}
}

func TestSubscriptionService_Subscribe_New(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	svc, repo := createTestSubscriptionService(t, now)
	ctx := context.Background()
	id := entity.SubscriptionID(testEndpoint)

	repo.EXPECT().Get(ctx, id).Return(nil, repository.ErrSubscriptionNotFound)
	repo.EXPECT().Upsert(ctx, mock.MatchedBy(func(sub *entity.Subscription) bool {
		return sub.ID == id && sub.Active && sub.CountryCode == "NO" && sub.NextPrayerAt == 0 && sub.CreatedAt.Equal(now)
	})).Return(nil)

	sub, err := svc.Subscribe(ctx, webPushInput())
	require.NoError(t, err)
	assert.Equal(t, id, sub.ID)
	assert.Equal(t, "Europe/Oslo", sub.Timezone)
}

func TestSubscriptionService_Subscribe_SameEndpointKeepsSchedule(t *testing.T) {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	svc, repo := createTestSubscriptionService(t, now)
	ctx := context.Background()
	id := entity.SubscriptionID(testEndpoint)

	existing := &entity.Subscription{
		ID: id, Endpoint: testEndpoint, Lat: floatPtr(59.91), Lon: floatPtr(10.75), Timezone: "Europe/Oslo", CountryCode: "NO",
		Active: true, NextPrayerName: entity.Dhuhr, NextPrayerAt: 1710503460000,
		LastSentAt: 1710483180000, LastSentName: entity.Fajr, CreatedAt: created,
	}
	repo.EXPECT().Get(ctx, id).Return(existing, nil)
	repo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

	sub, err := svc.Subscribe(ctx, webPushInput())
	require.NoError(t, err)
	assert.Equal(t, entity.Dhuhr, sub.NextPrayerName)
	assert.Equal(t, int64(1710503460000), sub.NextPrayerAt)
	assert.Equal(t, entity.Fajr, sub.LastSentName)
	assert.Equal(t, created, sub.CreatedAt)
	assert.Equal(t, now, sub.UpdatedAt)
}

func TestSubscriptionService_Subscribe_LocationChangeClearsSchedule(t *testing.T) {
	svc, repo := createTestSubscriptionService(t, time.Now())
	ctx := context.Background()
	id := entity.SubscriptionID(testEndpoint)

	existing := &entity.Subscription{
		ID: id, Endpoint: testEndpoint, Lat: floatPtr(60.39), Lon: floatPtr(5.32), Timezone: "Europe/Oslo", CountryCode: "NO",
		Active: true, NextPrayerName: entity.Dhuhr, NextPrayerAt: 1710503460000, LastSentAt: 1710483180000,
	}
	repo.EXPECT().Get(ctx, id).Return(existing, nil)
	repo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

	sub, err := svc.Subscribe(ctx, webPushInput())
	require.NoError(t, err)
	assert.Empty(t, sub.NextPrayerName)
	assert.Zero(t, sub.NextPrayerAt)
	assert.Equal(t, int64(1710483180000), sub.LastSentAt)
}

func TestSubscriptionService_Subscribe_FCMToken(t *testing.T) {
	svc, repo := createTestSubscriptionService(t, time.Now())
	ctx := context.Background()
	id := entity.SubscriptionID("fcm:device-token")

	repo.EXPECT().Get(ctx, id).Return(nil, repository.ErrSubscriptionNotFound)
	repo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

	sub, err := svc.Subscribe(ctx, &usecase.SubscribeInput{FCMToken: " device-token "})
	require.NoError(t, err)
	assert.Equal(t, id, sub.ID)
	assert.Equal(t, "device-token", sub.FCMToken)
}

func TestSubscriptionService_Subscribe_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *usecase.SubscribeInput)
		wantErr error
	}{
		{"missing keys", func(in *usecase.SubscribeInput) { in.Keys = entity.PushKeys{} }, domainerrors.ErrSubscriptionInvalid},
		{"missing endpoint", func(in *usecase.SubscribeInput) { in.Endpoint = "  " }, domainerrors.ErrSubscriptionInvalid},
		{"lat without lon", func(in *usecase.SubscribeInput) { in.Lon = nil }, domainerrors.ErrValidationFailed},
		{"latitude out of range", func(in *usecase.SubscribeInput) { in.Lat = floatPtr(91) }, domainerrors.ErrValidationFailed},
		{"unknown timezone", func(in *usecase.SubscribeInput) { in.Timezone = "Europe/Atlantis" }, domainerrors.ErrInvalidTimezone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestSubscriptionService(t, time.Now())
			in := webPushInput()
			tt.mutate(in)

			_, err := svc.Subscribe(context.Background(), in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestSubscriptionService_Subscribe_StoreError(t *testing.T) {
	svc, repo := createTestSubscriptionService(t, time.Now())
	ctx := context.Background()

	repo.EXPECT().Get(ctx, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.Subscribe(ctx, webPushInput())
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 503, appErr.HTTPCode())
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	svc, repo := createTestSubscriptionService(t, time.Now())
	ctx := context.Background()
	id := entity.SubscriptionID(testEndpoint)

	repo.EXPECT().Delete(ctx, id).Return(nil).Twice()

	require.NoError(t, svc.Unsubscribe(ctx, id))
	require.NoError(t, svc.UnsubscribeEndpoint(ctx, testEndpoint))

	err := svc.UnsubscribeEndpoint(ctx, "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSubscriptionService_GetSubscription(t *testing.T) {
	svc, repo := createTestSubscriptionService(t, time.Now())
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "missing").Return(nil, repository.ErrSubscriptionNotFound)
	repo.EXPECT().Get(ctx, "present").Return(&entity.Subscription{ID: "present"}, nil)

	_, err := svc.GetSubscription(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionNotFound))

	sub, err := svc.GetSubscription(ctx, "present")
	require.NoError(t, err)
	assert.Equal(t, "present", sub.ID)
}
