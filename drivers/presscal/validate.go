package presscal

import "errors"

var (
	// Sentinel errors (TinyGo-safe; no fmt)
	ErrTableTooSmall        = errors.New("presscal: table needs at least 2 entries")
	ErrADCNotAscending      = errors.New("presscal: ADC codes must be strictly ascending")
	ErrPressureNotAscending = errors.New("presscal: pressures must be strictly ascending")
	ErrZeroVariance         = errors.New("presscal: zero ADC variance in table")
)

// Validate checks the table invariants: at least two entries, ADC codes and
// pressures both strictly ascending (which also rules out duplicate codes).
// Run it once where the table is built, not per conversion; Convert trusts
// its table.
func (t Table) Validate() error {
	if len(t) < 2 {
		return ErrTableTooSmall
	}
	for i := 1; i < len(t); i++ {
		if t[i].ADC <= t[i-1].ADC {
			return ErrADCNotAscending
		}
		if t[i].Pressure <= t[i-1].Pressure {
			return ErrPressureNotAscending
		}
	}
	return nil
}
