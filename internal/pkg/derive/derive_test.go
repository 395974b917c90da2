package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSavingsRate(t *testing.T) {
	tests := []struct {
		name    string
		income  float64
		expense float64
		want    float64
	}{
		{name: "zero income yields zero", income: 0, expense: 500, want: 0},
		{name: "half saved", income: 1000, expense: 500, want: 50},
		{name: "overspent goes negative", income: 1000, expense: 1500, want: -50},
		{name: "nothing spent", income: 1000, expense: 0, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SavingsRate(tt.income, tt.expense), 0.001)
		})
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{name: "half way", current: 500, target: 1000, want: 50},
		{name: "overshoot clamps to 100", current: 2500, target: 1000, want: 100},
		{name: "negative clamps to 0", current: -100, target: 1000, want: 0},
		{name: "zero target yields 0", current: 500, target: 0, want: 0},
		{name: "negative target yields 0", current: 500, target: -10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ProgressPercent(tt.current, tt.target), 0.001)
		})
	}
}

func TestRemainingDays(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{name: "past date clamps to zero", target: now.Add(-72 * time.Hour), want: 0},
		{name: "same instant", target: now, want: 0},
		{name: "partial day rounds up", target: now.Add(36 * time.Hour), want: 2},
		{name: "exactly ten days", target: now.Add(240 * time.Hour), want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemainingDays(tt.target, now))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{amount: 0, want: "₹0"},
		{amount: 750, want: "₹750"},
		{amount: 1500, want: "₹1.5K"},
		{amount: 50000, want: "₹50K"},
		{amount: 150000, want: "₹1.5L"},
		{amount: 2500000, want: "₹25L"},
		{amount: 15000000, want: "₹1.5Cr"},
		{amount: 100000000, want: "₹10Cr"},
		{amount: -150000, want: "-₹1.5L"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}
