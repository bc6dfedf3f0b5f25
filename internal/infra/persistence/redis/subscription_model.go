package redis

import (
	"strconv"
	"time"

	"adhan/internal/domain/entity"
)

// Hash field names of a subscription record.
const (
	fieldEndpoint       = "endpoint"
	fieldP256dh         = "p256dh"
	fieldAuth           = "auth"
	fieldFCMToken       = "fcmToken"
	fieldLat            = "lat"
	fieldLon            = "lon"
	fieldTimezone       = "timezone"
	fieldCountryCode    = "countryCode"
	fieldActive         = "active"
	fieldNextPrayerName = "nextPrayerName"
	fieldNextPrayerAt   = "nextPrayerAt"
	fieldLastSentAt     = "lastSentAt"
	fieldLastSentName   = "lastSentName"
	fieldCreatedAt      = "createdAt"
	fieldUpdatedAt      = "updatedAt"
)

// optionalFields are removed from the hash when the entity leaves them empty.
var optionalFields = []string{
	fieldFCMToken, fieldLat, fieldLon, fieldTimezone, fieldCountryCode,
	fieldNextPrayerName, fieldNextPrayerAt, fieldLastSentAt, fieldLastSentName,
}

// fromSubscriptionDomain returns the fields to write and the optional fields to delete.
func fromSubscriptionDomain(sub *entity.Subscription) (set map[string]any, del []string) {
	set = map[string]any{
		fieldEndpoint:  sub.Endpoint,
		fieldP256dh:    sub.Keys.P256dh,
		fieldAuth:      sub.Keys.Auth,
		fieldActive:    formatBool(sub.Active),
		fieldCreatedAt: strconv.FormatInt(sub.CreatedAt.UnixMilli(), 10),
		fieldUpdatedAt: strconv.FormatInt(sub.UpdatedAt.UnixMilli(), 10),
	}

	put := func(field, value string) {
		if value == "" {
			del = append(del, field)

			return
		}
		set[field] = value
	}

	put(fieldFCMToken, sub.FCMToken)
	put(fieldLat, formatFloatPtr(sub.Lat))
	put(fieldLon, formatFloatPtr(sub.Lon))
	put(fieldTimezone, sub.Timezone)
	put(fieldCountryCode, sub.CountryCode)
	put(fieldNextPrayerName, string(sub.NextPrayerName))
	put(fieldNextPrayerAt, formatMillis(sub.NextPrayerAt))
	put(fieldLastSentAt, formatMillis(sub.LastSentAt))
	put(fieldLastSentName, string(sub.LastSentName))

	return set, del
}

func toSubscriptionDomain(id string, h map[string]string) *entity.Subscription {
	sub := &entity.Subscription{
		ID:             id,
		Endpoint:       h[fieldEndpoint],
		Keys:           entity.PushKeys{P256dh: h[fieldP256dh], Auth: h[fieldAuth]},
		FCMToken:       h[fieldFCMToken],
		Lat:            parseFloatPtr(h[fieldLat]),
		Lon:            parseFloatPtr(h[fieldLon]),
		Timezone:       h[fieldTimezone],
		CountryCode:    h[fieldCountryCode],
		Active:         parseBool(h[fieldActive]),
		NextPrayerName: entity.Prayer(h[fieldNextPrayerName]),
		NextPrayerAt:   parseInt(h[fieldNextPrayerAt]),
		LastSentAt:     parseInt(h[fieldLastSentAt]),
		LastSentName:   entity.Prayer(h[fieldLastSentName]),
	}

	if ms := parseInt(h[fieldCreatedAt]); ms > 0 {
		sub.CreatedAt = time.UnixMilli(ms).UTC()
	}
	if ms := parseInt(h[fieldUpdatedAt]); ms > 0 {
		sub.UpdatedAt = time.UnixMilli(ms).UTC()
	}

	return sub
}

// fromFieldsDomain flattens a partial update into field writes and deletions.
func fromFieldsDomain(f entity.SubscriptionFields, now time.Time) (set []string, del []string) {
	add := func(field, value string) {
		set = append(set, field, value)
	}

	if f.Active != nil {
		add(fieldActive, formatBool(*f.Active))
	}
	if f.Lat != nil {
		add(fieldLat, formatFloatPtr(f.Lat))
	}
	if f.Lon != nil {
		add(fieldLon, formatFloatPtr(f.Lon))
	}
	if f.Timezone != nil {
		add(fieldTimezone, *f.Timezone)
	}
	if f.CountryCode != nil {
		add(fieldCountryCode, *f.CountryCode)
	}
	if f.ClearSchedule {
		del = append(del, fieldNextPrayerName, fieldNextPrayerAt)
	} else {
		if f.NextPrayerName != nil {
			add(fieldNextPrayerName, string(*f.NextPrayerName))
		}
		if f.NextPrayerAt != nil {
			add(fieldNextPrayerAt, strconv.FormatInt(*f.NextPrayerAt, 10))
		}
	}
	if f.LastSentAt != nil {
		add(fieldLastSentAt, strconv.FormatInt(*f.LastSentAt, 10))
	}
	if f.LastSentName != nil {
		add(fieldLastSentName, string(*f.LastSentName))
	}
	add(fieldUpdatedAt, strconv.FormatInt(now.UnixMilli(), 10))

	return set, del
}

func formatBool(b bool) string {
	if b {
		return "1"
	}

	return "0"
}

// parseBool treats a missing or unparsable flag as false.
func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)

	return b
}

func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}

	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return ""
	}

	return strconv.FormatInt(ms, 10)
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	return &f
}

func parseInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}

	return n
}
