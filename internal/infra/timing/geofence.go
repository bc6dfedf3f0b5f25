package timing

import (
	"strings"

	"adhan/config"
)

// Geofence decides whether a subscriber is served by the regional provider.
type Geofence struct {
	Enabled     bool
	CountryCode string
	Bounds      config.Bounds
}

// NewGeofence builds the regional geofence from configuration.
func NewGeofence(cfg *config.Config) Geofence {
	r := cfg.Regional
	if r == nil {
		return Geofence{}
	}

	return Geofence{
		Enabled:     r.Enabled,
		CountryCode: strings.ToUpper(strings.TrimSpace(r.CountryCode)),
		Bounds:      r.Bounds,
	}
}

// Covers applies the country-code shortcut first and falls back to the
// bounding box when no country code is known.
func (g Geofence) Covers(countryCode string, lat, lon float64) bool {
	if !g.Enabled {
		return false
	}

	cc := strings.ToUpper(strings.TrimSpace(countryCode))
	if cc != "" && g.CountryCode != "" {
		return cc == g.CountryCode
	}

	return g.Bounds.Contains(lat, lon)
}
