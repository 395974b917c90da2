// Package derive holds the display-only derivations: pure functions from
// fetched numbers to presentation values. Nothing here is authoritative;
// balances and totals always come from the upstream API.
package derive

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Indian numbering thresholds for currency abbreviation
const (
	croreThreshold    = 1e7
	lakhThreshold     = 1e5
	thousandThreshold = 1e3
)

// SavingsRate returns net savings as a percentage of income.
// Zero income yields 0, never a division error.
func SavingsRate(income, expense float64) float64 {
	if income == 0 {
		return 0
	}
	return (income - expense) / income * 100
}

// ProgressPercent returns current/target as a percentage clamped to [0, 100].
// A non-positive target yields 0.
func ProgressPercent(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	percent := current / target * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// RemainingDays returns whole days until the target date, rounded up and
// clamped at 0 for dates in the past.
func RemainingDays(target, now time.Time) int {
	days := int(math.Ceil(target.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// FormatCurrency abbreviates an amount with Indian magnitude suffixes:
// thousand (K), lakh (L) and crore (Cr). Amounts under a thousand render
// unabbreviated.
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	switch {
	case amount >= croreThreshold:
		return sign + "₹" + trimZero(amount/croreThreshold) + "Cr"
	case amount >= lakhThreshold:
		return sign + "₹" + trimZero(amount/lakhThreshold) + "L"
	case amount >= thousandThreshold:
		return sign + "₹" + trimZero(amount/thousandThreshold) + "K"
	default:
		return sign + "₹" + trimZero(amount)
	}
}

// trimZero formats with one decimal place, dropping a trailing ".0"
func trimZero(value float64) string {
	formatted := fmt.Sprintf("%.1f", value)
	return strings.TrimSuffix(formatted, ".0")
}
