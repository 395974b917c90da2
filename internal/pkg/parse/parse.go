// Package parse coerces form-entered text into the typed shapes the upstream
// API expects. Drafts keep raw strings while the user edits; everything here
// runs exactly once, at submit.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

const dateLayout = "2006-01-02"

var (
	phoneSeparators = regexp.MustCompile(`[\s\-\(\)\+]`)
	latLngPattern   = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*$`)
)

// Amount parses a required monetary field. Blank or non-numeric input is a
// validation failure the caller surfaces next to the form.
func Amount(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("amount is required")
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be a number")
	}
	return value, nil
}

// OptionalAmount parses a monetary field where blank means zero, such as a
// goal's starting amount.
func OptionalAmount(raw string) (float64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	return Amount(raw)
}

// Date parses a required YYYY-MM-DD form date
func Date(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	parsed, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return parsed, nil
}

// OptionalDate parses a YYYY-MM-DD form date, returning nil when blank so the
// field is omitted from the upstream payload.
func OptionalDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parsed, err := Date(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// OptionalInt parses an integer field, returning nil when blank
func OptionalInt(raw string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("must be a whole number")
	}
	return &value, nil
}

// OptionalString returns nil for blank input so the field is omitted from
// the upstream payload rather than sent as an empty string.
func OptionalString(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// CSV splits comma-separated form text into trimmed, non-empty items
func CSV(raw string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// Contact classifies free-text contact details into exactly one of email,
// phone or website. Text with an @ and a dot is an email; text containing
// digits is a phone number with separators stripped; an http(s) URL is a
// website. Anything left defaults to email when it has an @, phone otherwise.
func Contact(raw string) models.ContactInfo {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.ContactInfo{}
	}

	switch {
	case strings.Contains(trimmed, "@") && strings.Contains(trimmed, "."):
		return models.ContactInfo{Email: trimmed}
	case strings.ContainsAny(trimmed, "0123456789"):
		return models.ContactInfo{Phone: phoneSeparators.ReplaceAllString(trimmed, "")}
	case strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://"):
		return models.ContactInfo{Website: trimmed}
	case strings.Contains(trimmed, "@"):
		return models.ContactInfo{Email: trimmed}
	default:
		return models.ContactInfo{Phone: trimmed}
	}
}

// Location structures free-text location input. "Area, City, State" fills all
// three fields; "Place, State" uses the place for both area and city; a single
// token fills everything. Blank input yields nil.
func Location(raw string) *models.LocationInfo {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	parts := CSV(trimmed)
	switch {
	case len(parts) >= 3:
		return &models.LocationInfo{Area: parts[0], City: parts[1], State: parts[len(parts)-1]}
	case len(parts) == 2:
		return &models.LocationInfo{Area: parts[0], City: parts[0], State: parts[1]}
	default:
		return &models.LocationInfo{Area: trimmed, City: trimmed, State: trimmed}
	}
}

// LatLng recognizes a raw "latitude, longitude" pair, the last resort when no
// geocoding provider matched the input.
func LatLng(raw string) (lat, lng float64, ok bool) {
	match := latLngPattern.FindStringSubmatch(raw)
	if match == nil {
		return 0, 0, false
	}
	lat, latErr := strconv.ParseFloat(match[1], 64)
	lng, lngErr := strconv.ParseFloat(match[2], 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, false
	}
	return lat, lng, true
}
