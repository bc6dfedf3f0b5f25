// Package regional implements the regional precise timing provider: a catalog
// of reference locations and per-location month tables.
package regional

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"adhan/internal/domain/entity"
	"adhan/internal/domain/service"
	"adhan/internal/errors"
	"adhan/internal/infra/timing"
)

// client speaks the regional provider's HTTP API.
type client struct {
	baseURL  string
	upstream *timing.Upstream
}

func newClient(baseURL string, upstream *timing.Upstream) *client {
	return &client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		upstream: upstream,
	}
}

// Locations fetches the reference location catalog.
func (c *client) Locations(ctx context.Context) ([]entity.LocationRecord, error) {
	var raw json.RawMessage
	if err := c.upstream.GetJSON(ctx, c.baseURL+"/locations", &raw); err != nil {
		return nil, err
	}

	return decodeLocations(raw)
}

// Month fetches the table for one location and month, keyed by day of month.
func (c *client) Month(ctx context.Context, locationID string, year int, month time.Month) (map[int]entity.TimingSet, error) {
	url := fmt.Sprintf("%s/prayertimes/%s/%d/%d", c.baseURL, locationID, year, int(month))

	var raw json.RawMessage
	if err := c.upstream.GetJSON(ctx, url, &raw); err != nil {
		return nil, err
	}

	return decodeMonth(raw, year, month)
}

// locationRow accepts both short and long coordinate keys.
type locationRow struct {
	ID        json.RawMessage `json:"id"`
	Lat       *float64        `json:"lat"`
	Lon       *float64        `json:"lon"`
	Latitude  *float64        `json:"latitude"`
	Longitude *float64        `json:"longitude"`
}

func decodeLocations(raw json.RawMessage) ([]entity.LocationRecord, error) {
	items, err := unwrapArray(raw, "locations", "data")
	if err != nil {
		return nil, err
	}

	out := make([]entity.LocationRecord, 0, len(items))
	for _, item := range items {
		var row locationRow
		if err := json.Unmarshal(item, &row); err != nil {
			continue
		}
		id := decodeID(row.ID)
		if id == "" {
			continue
		}
		rec := entity.LocationRecord{ID: id, Lat: math.NaN(), Lon: math.NaN()}
		if v := firstFloat(row.Lat, row.Latitude); v != nil {
			rec.Lat = *v
		}
		if v := firstFloat(row.Lon, row.Longitude); v != nil {
			rec.Lon = *v
		}
		out = append(out, rec)
	}

	return out, nil
}

func decodeMonth(raw json.RawMessage, year int, month time.Month) (map[int]entity.TimingSet, error) {
	items, err := unwrapArray(raw, "prayertimes", "data", "days")
	if err != nil {
		return nil, err
	}

	out := make(map[int]entity.TimingSet, len(items))
	for i, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			continue
		}

		strs := make(map[string]string, len(fields))
		for k, v := range fields {
			var s string
			if json.Unmarshal(v, &s) == nil {
				strs[k] = s
			}
		}

		day := rowDay(fields, strs, year, month)
		if day < 0 {
			continue
		}
		if day == 0 {
			day = i + 1
		}

		if set := timing.TimingSetFromFields(strs); !set.IsEmpty() {
			out[day] = set
		}
	}

	if len(out) == 0 {
		return nil, errors.Wrap(service.ErrMalformedResponse, "regional month table has no rows")
	}

	return out, nil
}

// rowDay extracts the day of month from a "date" or "day" field. It returns
// -1 for rows dated in another month and 0 when the row carries no day.
func rowDay(fields map[string]json.RawMessage, strs map[string]string, year int, month time.Month) int {
	if s, ok := strs["date"]; ok {
		for _, layout := range []string{"2006-01-02", "02.01.2006", "02-01-2006", "2006-01-02T15:04:05Z07:00"} {
			if d, err := time.Parse(layout, s); err == nil {
				if d.Year() != year || d.Month() != month {
					return -1
				}

				return d.Day()
			}
		}
	}

	if v, ok := fields["day"]; ok {
		var n int
		if json.Unmarshal(v, &n) == nil && n >= 1 && n <= 31 {
			return n
		}
		if n, err := strconv.Atoi(strs["day"]); err == nil && n >= 1 && n <= 31 {
			return n
		}
	}

	return 0
}

// unwrapArray accepts a bare JSON array or an object holding one under any of keys.
func unwrapArray(raw json.RawMessage, keys ...string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)

	var items []json.RawMessage
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, errors.Wrapf(service.ErrMalformedResponse, "regional: %v", err)
		}

		return items, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, errors.Wrapf(service.ErrMalformedResponse, "regional: %v", err)
	}
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			if err := json.Unmarshal(v, &items); err == nil {
				return items, nil
			}
		}
	}

	return nil, errors.Wrap(service.ErrMalformedResponse, "regional: no array in response")
}

func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if json.Unmarshal(raw, &n) == nil {
		return n.String()
	}

	return ""
}

func firstFloat(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}

	return nil
}
