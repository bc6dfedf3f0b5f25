package notification

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adhan/config"
	"adhan/internal/domain/entity"
)

func newBrowserKeys(t *testing.T) entity.PushKeys {
	t.Helper()

	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)

	auth := make([]byte, 16)
	_, err = rand.Read(auth)
	require.NoError(t, err)

	return entity.PushKeys{
		P256dh: base64.RawURLEncoding.EncodeToString(priv.PublicKey().Bytes()),
		Auth:   base64.RawURLEncoding.EncodeToString(auth),
	}
}

func newVAPIDConfig(t *testing.T) *config.VAPIDConfig {
	t.Helper()

	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)

	return &config.VAPIDConfig{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		Subscriber: "ops@example.com",
		TTL:        30 * time.Minute,
	}
}

func TestWebPushService_ClassifiesStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    entity.DeliveryOutcome
		wantErr bool
	}{
		{name: "created", status: http.StatusCreated, want: entity.DeliveryDelivered},
		{name: "gone", status: http.StatusGone, want: entity.DeliveryGone},
		{name: "not found", status: http.StatusNotFound, want: entity.DeliveryGone},
		{name: "rate limited", status: http.StatusTooManyRequests, want: entity.DeliveryTransient, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, want: entity.DeliveryTransient, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotTTL, gotAuth string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotTTL = r.Header.Get("TTL")
				gotAuth = r.Header.Get("Authorization")
				_, _ = io.Copy(io.Discard, r.Body)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			svc := NewWebPushService(newVAPIDConfig(t), slog.New(slog.NewTextHandler(io.Discard, nil)))
			sub := &entity.Subscription{Endpoint: srv.URL + "/push/abc", Keys: newBrowserKeys(t)}

			outcome, err := svc.Send(context.Background(), sub, &entity.PushPayload{Title: "Maghrib", Body: "Maghrib at 17:28", URL: "/", Tag: "maghrib"})
			assert.Equal(t, tt.want, outcome)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "1800", gotTTL)
			assert.True(t, strings.HasPrefix(gotAuth, "vapid "), gotAuth)
		})
	}
}

func TestWebPushService_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	svc := NewWebPushService(newVAPIDConfig(t), slog.New(slog.NewTextHandler(io.Discard, nil)))
	outcome, err := svc.Send(context.Background(),
		&entity.Subscription{Endpoint: endpoint, Keys: newBrowserKeys(t)},
		&entity.PushPayload{Title: "Fajr"})

	assert.Equal(t, entity.DeliveryTransient, outcome)
	assert.Error(t, err)
}

func TestWebPushService_MissingVAPIDKeys(t *testing.T) {
	svc := NewWebPushService(&config.VAPIDConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	outcome, err := svc.Send(context.Background(), &entity.Subscription{Endpoint: "https://push.example.com"}, &entity.PushPayload{})
	assert.Equal(t, entity.DeliveryTransient, outcome)
	assert.Error(t, err)
}
