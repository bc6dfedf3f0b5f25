// Package timing holds the normalization boundary shared by the timing providers
// and the provider-selection helpers.
package timing

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"adhan/internal/domain/entity"
)

// clockPattern accepts H:MM, HH.MM, HH:MM:SS, an optional AM/PM marker and any
// trailing annotation such as "(CET)" or "CEST".
var clockPattern = regexp.MustCompile(`(?i)^\s*(\d{1,2})[:.](\d{2})(?:[:.](\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)?(?:\s+.*|\s*\(.*)?$`)

// prayerAliases maps folded field names to canonical prayers.
var prayerAliases = map[string]entity.Prayer{
	"fajr":       entity.Fajr,
	"fadjr":      entity.Fajr,
	"fadjer":     entity.Fajr,
	"fajer":      entity.Fajr,
	"subh":       entity.Fajr,
	"sobh":       entity.Fajr,
	"sunrise":    entity.Sunrise,
	"soloppgang": entity.Sunrise,
	"shuruq":     entity.Sunrise,
	"shurooq":    entity.Sunrise,
	"shuruk":     entity.Sunrise,
	"sherooq":    entity.Sunrise,
	"dhuhr":      entity.Dhuhr,
	"duhr":       entity.Dhuhr,
	"dhuhur":     entity.Dhuhr,
	"zuhr":       entity.Dhuhr,
	"zuhur":      entity.Dhuhr,
	"zohr":       entity.Dhuhr,
	"dhohr":      entity.Dhuhr,
	"asr":        entity.Asr,
	"asar":       entity.Asr,
	"maghrib":    entity.Maghrib,
	"magrib":     entity.Maghrib,
	"maghreb":    entity.Maghrib,
	"isha":       entity.Isha,
	"ishaa":      entity.Isha,
	"esha":       entity.Isha,
	"isya":       entity.Isha,
}

// NormalizeClock converts an upstream time string into zero-padded 24-hour
// HH:MM. It returns "" for anything it cannot parse.
func NormalizeClock(raw string) string {
	m := clockPattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return ""
	}
	if m[3] != "" {
		if sec, err := strconv.Atoi(m[3]); err != nil || sec > 59 {
			return ""
		}
	}

	switch marker := strings.ReplaceAll(strings.ToLower(m[4]), ".", ""); marker {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return ""
		}
		hour %= 12
		if marker == "pm" {
			hour += 12
		}
	default:
		if hour > 23 {
			return ""
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// CanonicalPrayer resolves an upstream field name to a prayer, ignoring case,
// diacritics and non-letter characters.
func CanonicalPrayer(field string) (entity.Prayer, bool) {
	p, ok := prayerAliases[foldFieldName(field)]

	return p, ok
}

// TimingSetFromFields builds a set from an upstream name->time map. Keys are
// visited in sorted order and the first parseable hit per prayer wins.
func TimingSetFromFields(fields map[string]string) entity.TimingSet {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var set entity.TimingSet
	for _, k := range keys {
		p, ok := CanonicalPrayer(k)
		if !ok || set.Clock(p) != "" {
			continue
		}
		if clock := NormalizeClock(fields[k]); clock != "" {
			set.SetClock(p, clock)
		}
	}

	return set
}

func foldFieldName(field string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, field)
	if err != nil {
		folded = field
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
