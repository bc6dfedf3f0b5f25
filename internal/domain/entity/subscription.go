// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// subscriptionNamespace scopes the UUIDv5 ids derived from push endpoints.
var subscriptionNamespace = uuid.MustParse("8f1c2a9e-4b6d-5e3f-9a7c-1d2e3f4a5b6c")

// PushKeys holds the Web Push encryption credentials supplied by the browser.
type PushKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// Subscription is one push endpoint registered for prayer notifications.
type Subscription struct {
	ID             string    `json:"id"`                         // Derived from the endpoint, see SubscriptionID.
	Endpoint       string    `json:"endpoint,omitempty"`         // Web Push endpoint URL.
	Keys           PushKeys  `json:"keys"`                       // Web Push encryption keys.
	FCMToken       string    `json:"fcm_token,omitempty"`        // Firebase token for native app subscribers.
	Lat            *float64  `json:"lat,omitempty"`              // Subscriber latitude; nil falls back to the default location.
	Lon            *float64  `json:"lon,omitempty"`              // Subscriber longitude.
	Timezone       string    `json:"timezone,omitempty"`         // IANA zone name, e.g. Europe/Oslo.
	CountryCode    string    `json:"country_code,omitempty"`     // ISO 3166-1 alpha-2.
	Active         bool      `json:"active"`                     // Inactive subscriptions are retained but skipped.
	NextPrayerName Prayer    `json:"next_prayer_name,omitempty"` // Cached next target.
	NextPrayerAt   int64     `json:"next_prayer_at,omitempty"`   // Epoch milliseconds of the cached target.
	LastSentAt     int64     `json:"last_sent_at,omitempty"`     // Scheduled instant of the last delivered prayer.
	LastSentName   Prayer    `json:"last_sent_name,omitempty"`   // Name of the last delivered prayer.
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SubscriptionID derives the stable identifier for a push endpoint so that
// re-subscribing the same browser updates the existing record.
func SubscriptionID(endpoint string) string {
	return uuid.NewSHA1(subscriptionNamespace, []byte(endpoint)).String()
}

// Deliverable reports whether the subscription carries enough transport
// credentials to receive a push.
func (s *Subscription) Deliverable() bool {
	if s.FCMToken != "" {
		return true
	}

	return s.Endpoint != "" && s.Keys.P256dh != "" && s.Keys.Auth != ""
}

// HasLocation reports whether both coordinates are present.
func (s *Subscription) HasLocation() bool {
	return s.Lat != nil && s.Lon != nil
}

// SubscriptionFields is a partial update. Nil fields are left untouched.
type SubscriptionFields struct {
	Active         *bool
	Lat            *float64
	Lon            *float64
	Timezone       *string
	CountryCode    *string
	NextPrayerName *Prayer
	NextPrayerAt   *int64
	LastSentAt     *int64
	LastSentName   *Prayer
	// ClearSchedule drops nextPrayerName/nextPrayerAt so the next tick recomputes.
	ClearSchedule bool
}

// IsEmpty reports whether the update would touch nothing.
func (f SubscriptionFields) IsEmpty() bool {
	return f.Active == nil && f.Lat == nil && f.Lon == nil && f.Timezone == nil &&
		f.CountryCode == nil && f.NextPrayerName == nil && f.NextPrayerAt == nil &&
		f.LastSentAt == nil && f.LastSentName == nil && !f.ClearSchedule
}

// ScheduleFields builds the update that stores a new pending target.
func ScheduleFields(next PrayerInstant) SubscriptionFields {
	name := next.Name
	at := next.At.UnixMilli()

	return SubscriptionFields{NextPrayerName: &name, NextPrayerAt: &at}
}
