package analytics

import (
	"cmp"

	"github.com/shopspring/decimal"
)

// Rate is a percentage kept in tenths so comparisons are exact.
type Rate struct {
	tenths int64
}

// NewRate returns part/whole*100 rounded half-up to one decimal place.
// A non-positive whole yields 0.0.
func NewRate(part, whole int) Rate {
	if whole <= 0 || part <= 0 {
		return Rate{}
	}
	p, w := int64(part), int64(whole)
	return Rate{tenths: (2*p*1000 + w) / (2 * w)}
}

// Decimal returns the rate as a decimal percentage.
func (r Rate) Decimal() decimal.Decimal {
	return decimal.New(r.tenths, -1)
}

// String formats the rate with exactly one decimal digit, e.g. "33.3".
func (r Rate) String() string {
	return r.Decimal().StringFixed(1)
}

func (r Rate) Compare(o Rate) int {
	return cmp.Compare(r.tenths, o.tenths)
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// SkipRate is the share of exposures that were skipped.
func SkipRate(skipped, answered int) Rate {
	return NewRate(skipped, answered+skipped)
}
