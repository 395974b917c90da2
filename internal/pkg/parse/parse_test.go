package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earnnest/earnnest-web/internal/pkg/models"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "plain number", raw: "1500", want: 1500},
		{name: "decimal with padding", raw: "  99.50 ", want: 99.5},
		{name: "blank is an error", raw: "", wantErr: true},
		{name: "non-numeric is an error", raw: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Amount(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalAmount_BlankIsZero(t *testing.T) {
	got, err := OptionalAmount("   ")
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = OptionalAmount("250")
	require.NoError(t, err)
	assert.Equal(t, 250.0, got)
}

func TestDate(t *testing.T) {
	got, err := Date("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = Date("15/06/2025")
	assert.Error(t, err)

	_, err = Date("")
	assert.Error(t, err)
}

func TestOptionalDate(t *testing.T) {
	got, err := OptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = OptionalDate("2025-12-31")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2025, got.Year())
}

func TestOptionalInt(t *testing.T) {
	got, err := OptionalInt(" ")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = OptionalInt("5")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 5, *got)

	_, err = OptionalInt("5.5")
	assert.Error(t, err)
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString("  "))

	got := OptionalString(" freelance ")
	require.NotNil(t, got)
	assert.Equal(t, "freelance", *got)
}

func TestCSV(t *testing.T) {
	assert.Equal(t, []string{"python", "writing", "design"}, CSV("python, writing , design"))
	assert.Empty(t, CSV("  ,, "))
	assert.Empty(t, CSV(""))
}

func TestContact(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.ContactInfo
	}{
		{name: "email", raw: "help@example.com", want: models.ContactInfo{Email: "help@example.com"}},
		{name: "phone with separators", raw: "+91 98765-43210", want: models.ContactInfo{Phone: "919876543210"}},
		{name: "bare phone", raw: "9876543210", want: models.ContactInfo{Phone: "9876543210"}},
		{name: "website", raw: "https://example.com/jobs", want: models.ContactInfo{Website: "https://example.com/jobs"}},
		{name: "blank", raw: "   ", want: models.ContactInfo{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Contact(tt.raw))
		})
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *models.LocationInfo
	}{
		{
			name: "area city state",
			raw:  "Indiranagar, Bangalore, Karnataka",
			want: &models.LocationInfo{Area: "Indiranagar", City: "Bangalore", State: "Karnataka"},
		},
		{
			name: "place and state",
			raw:  "Mysore, Karnataka",
			want: &models.LocationInfo{Area: "Mysore", City: "Mysore", State: "Karnataka"},
		},
		{
			name: "single token fills everything",
			raw:  "Bangalore",
			want: &models.LocationInfo{Area: "Bangalore", City: "Bangalore", State: "Bangalore"},
		},
		{name: "blank is nil", raw: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Location(tt.raw))
		})
	}
}

func TestLatLng(t *testing.T) {
	lat, lng, ok := LatLng("12.9716, 77.5946")
	require.True(t, ok)
	assert.InDelta(t, 12.9716, lat, 0.0001)
	assert.InDelta(t, 77.5946, lng, 0.0001)

	_, _, ok = LatLng("Bangalore")
	assert.False(t, ok)

	_, _, ok = LatLng("120, 77")
	assert.False(t, ok)
}
