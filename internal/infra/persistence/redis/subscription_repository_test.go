package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adhan/config"
	"adhan/internal/domain/entity"
	"adhan/internal/domain/repository"
)

func newTestRepository(t *testing.T) (*subscriptionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{Redis: &config.RedisConfig{KeyPrefix: "test"}}
	repo, ok := NewSubscriptionRepository(client, cfg).(*subscriptionRepository)
	require.True(t, ok)
	repo.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }

	return repo, mr
}

func sampleSubscription() *entity.Subscription {
	lat, lon := 59.9139, 10.7522
	endpoint := "https://push.example.com/send/abc"

	return &entity.Subscription{
		ID:          entity.SubscriptionID(endpoint),
		Endpoint:    endpoint,
		Keys:        entity.PushKeys{P256dh: "p256", Auth: "auth"},
		Lat:         &lat,
		Lon:         &lon,
		Timezone:    "Europe/Oslo",
		CountryCode: "NO",
		Active:      true,
		CreatedAt:   time.UnixMilli(1_699_000_000_000).UTC(),
		UpdatedAt:   time.UnixMilli(1_699_000_000_000).UTC(),
	}
}

func TestSubscriptionRepository_UpsertGetDelete(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()
	sub := sampleSubscription()

	require.NoError(t, repo.Upsert(ctx, sub))
	assert.True(t, mr.Exists("test:sub:"+sub.ID))

	ids, err := repo.ListActiveIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{sub.ID}, ids)

	got, err := repo.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub, got)

	require.NoError(t, repo.Delete(ctx, sub.ID))
	_, err = repo.Get(ctx, sub.ID)
	assert.ErrorIs(t, err, repository.ErrSubscriptionNotFound)

	ids, err = repo.ListActiveIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSubscriptionRepository_GetWithoutActiveFieldIsInactive(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	mr.HSet("test:sub:legacy", "endpoint", "https://push.example.com/send/legacy", "p256dh", "p256", "auth", "auth")
	mr.HSet("test:sub:flagged", "endpoint", "https://push.example.com/send/flagged", "active", "true")

	got, err := repo.Get(ctx, "legacy")
	require.NoError(t, err)
	assert.False(t, got.Active)

	got, err = repo.Get(ctx, "flagged")
	require.NoError(t, err)
	assert.True(t, got.Active)
}

func TestSubscriptionRepository_UpsertDropsClearedOptionalFields(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()
	sub := sampleSubscription()
	sub.NextPrayerName = entity.Maghrib
	sub.NextPrayerAt = 1_705_336_080_000
	require.NoError(t, repo.Upsert(ctx, sub))

	sub.NextPrayerName = ""
	sub.NextPrayerAt = 0
	sub.Lat, sub.Lon = nil, nil
	require.NoError(t, repo.Upsert(ctx, sub))

	key := "test:sub:" + sub.ID
	assert.Empty(t, mr.HGet(key, fieldNextPrayerAt))
	assert.Empty(t, mr.HGet(key, fieldLat))
	assert.Equal(t, sub.Endpoint, mr.HGet(key, fieldEndpoint))
}

func TestSubscriptionRepository_SetFieldsTouchesOnlyNamedFields(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()
	sub := sampleSubscription()
	require.NoError(t, repo.Upsert(ctx, sub))

	// A concurrent location change must survive a schedule write.
	newLat := 63.4305
	require.NoError(t, repo.SetFields(ctx, sub.ID, entity.SubscriptionFields{Lat: &newLat}))

	next := entity.PrayerInstant{Name: entity.Maghrib, At: time.UnixMilli(1_705_336_080_000)}
	require.NoError(t, repo.SetFields(ctx, sub.ID, entity.ScheduleFields(next)))

	got, err := repo.Get(ctx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Lat)
	assert.InDelta(t, newLat, *got.Lat, 1e-9)
	assert.Equal(t, entity.Maghrib, got.NextPrayerName)
	assert.Equal(t, int64(1_705_336_080_000), got.NextPrayerAt)
	assert.Equal(t, "1700000000000", mr.HGet("test:sub:"+sub.ID, fieldUpdatedAt))

	require.NoError(t, repo.SetFields(ctx, sub.ID, entity.SubscriptionFields{ClearSchedule: true}))
	got, err = repo.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Zero(t, got.NextPrayerAt)
	assert.Empty(t, got.NextPrayerName)
}

func TestSubscriptionRepository_SetFieldsDoesNotResurrect(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()

	active := true
	err := repo.SetFields(ctx, "missing", entity.SubscriptionFields{Active: &active})
	assert.ErrorIs(t, err, repository.ErrSubscriptionNotFound)
	assert.False(t, mr.Exists("test:sub:missing"))
}

func TestSubscriptionRepository_ClaimDeliveryIsAtMostOnce(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	sub := sampleSubscription()
	require.NoError(t, repo.Upsert(ctx, sub))

	const nextAt = int64(1_705_336_080_000)

	won, err := repo.ClaimDelivery(ctx, sub.ID, nextAt, entity.Maghrib)
	require.NoError(t, err)
	assert.True(t, won)

	won, err = repo.ClaimDelivery(ctx, sub.ID, nextAt, entity.Maghrib)
	require.NoError(t, err)
	assert.False(t, won)

	got, err := repo.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, nextAt, got.LastSentAt)
	assert.Equal(t, entity.Maghrib, got.LastSentName)

	_, err = repo.ClaimDelivery(ctx, "missing", nextAt, entity.Maghrib)
	assert.ErrorIs(t, err, repository.ErrSubscriptionNotFound)
}

func TestSubscriptionRepository_ReleaseDelivery(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	sub := sampleSubscription()
	sub.LastSentAt = 1_705_320_000_000
	sub.LastSentName = entity.Asr
	require.NoError(t, repo.Upsert(ctx, sub))

	const nextAt = int64(1_705_336_080_000)
	won, err := repo.ClaimDelivery(ctx, sub.ID, nextAt, entity.Maghrib)
	require.NoError(t, err)
	require.True(t, won)

	require.NoError(t, repo.ReleaseDelivery(ctx, sub.ID, nextAt, sub.LastSentAt, sub.LastSentName))

	got, err := repo.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.LastSentAt, got.LastSentAt)
	assert.Equal(t, entity.Asr, got.LastSentName)

	// Released claims can be taken again.
	won, err = repo.ClaimDelivery(ctx, sub.ID, nextAt, entity.Maghrib)
	require.NoError(t, err)
	assert.True(t, won)

	// A release for a claim that is no longer in place is ignored.
	require.NoError(t, repo.ReleaseDelivery(ctx, sub.ID, nextAt-1, 0, ""))
	got, err = repo.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, nextAt, got.LastSentAt)
}

func TestSubscriptionRepository_ReleaseToEmpty(t *testing.T) {
	repo, mr := newTestRepository(t)
	ctx := context.Background()
	sub := sampleSubscription()
	require.NoError(t, repo.Upsert(ctx, sub))

	const nextAt = int64(1_705_336_080_000)
	_, err := repo.ClaimDelivery(ctx, sub.ID, nextAt, entity.Maghrib)
	require.NoError(t, err)
	require.NoError(t, repo.ReleaseDelivery(ctx, sub.ID, nextAt, 0, ""))

	assert.Empty(t, mr.HGet("test:sub:"+sub.ID, fieldLastSentAt))
	assert.Empty(t, mr.HGet("test:sub:"+sub.ID, fieldLastSentName))
}
