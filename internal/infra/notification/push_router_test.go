package notification

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adhan/internal/domain/entity"
)

type stubTransport struct {
	name    string
	calls   []string
	outcome entity.DeliveryOutcome
}

func (s *stubTransport) Send(_ context.Context, sub *entity.Subscription, _ *entity.PushPayload) (entity.DeliveryOutcome, error) {
	s.calls = append(s.calls, sub.ID)

	return s.outcome, nil
}

type fakeMessaging struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessaging) Send(_ context.Context, m *messaging.Message) (string, error) {
	f.sent = append(f.sent, m)
	if f.err != nil {
		return "", f.err
	}

	return "projects/p/messages/1", nil
}

func TestPushRouter_ChoosesTransport(t *testing.T) {
	wp := &stubTransport{name: "webpush", outcome: entity.DeliveryDelivered}
	fcm := &stubTransport{name: "fcm", outcome: entity.DeliveryDelivered}
	r := &pushRouter{webpush: wp, fcm: fcm}
	ctx := context.Background()

	_, err := r.Send(ctx, &entity.Subscription{ID: "browser", Endpoint: "https://push"}, &entity.PushPayload{})
	require.NoError(t, err)
	_, err = r.Send(ctx, &entity.Subscription{ID: "app", FCMToken: "tok"}, &entity.PushPayload{})
	require.NoError(t, err)

	assert.Equal(t, []string{"browser"}, wp.calls)
	assert.Equal(t, []string{"app"}, fcm.calls)
}

func TestPushRouter_WithoutFCM(t *testing.T) {
	wp := &stubTransport{outcome: entity.DeliveryDelivered}
	r := &pushRouter{webpush: wp}
	ctx := context.Background()

	outcome, err := r.Send(ctx, &entity.Subscription{ID: "app", FCMToken: "tok"}, &entity.PushPayload{})
	assert.Error(t, err)
	assert.Equal(t, entity.DeliveryTransient, outcome)

	outcome, err = r.Send(ctx, &entity.Subscription{ID: "both", FCMToken: "tok", Endpoint: "https://push"}, &entity.PushPayload{})
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryDelivered, outcome)
	assert.Equal(t, []string{"both"}, wp.calls)

	outcome, err = r.Send(ctx, &entity.Subscription{ID: "none"}, &entity.PushPayload{})
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryGone, outcome)
}

func TestFirebaseService_Send(t *testing.T) {
	fake := &fakeMessaging{}
	svc := &firebaseService{client: fake}

	outcome, err := svc.Send(context.Background(),
		&entity.Subscription{FCMToken: "tok"},
		&entity.PushPayload{Title: "Isha", Body: "Isha at 19:05", URL: "/", Tag: "isha"})
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryDelivered, outcome)
	require.Len(t, fake.sent, 1)
	assert.Equal(t, "tok", fake.sent[0].Token)
	assert.Equal(t, "Isha", fake.sent[0].Notification.Title)
	assert.Equal(t, "isha", fake.sent[0].Data["tag"])

	fake.err = errors.New("connection reset")
	outcome, err = svc.Send(context.Background(), &entity.Subscription{FCMToken: "tok"}, &entity.PushPayload{})
	assert.Error(t, err)
	assert.Equal(t, entity.DeliveryTransient, outcome)
}
