// Package presscal converts raw ADC codes from a pressure front-end into
// fixed-point pressure values using a per-device calibration table.
//
// Pressure is carried as centi-kPa (Scale = 100, so 10000 means 100.00 kPa)
// to keep the conversion path free of floating point. The table is borrowed,
// never copied or mutated, and Convert holds no internal state, so one table
// may be shared across goroutines or interrupt contexts once built. No path
// in this package allocates.
package presscal

import "pressurecode-go/x/mathx"

// Scale is the fixed-point factor applied to pressure values.
const Scale = 100

// Entry pairs one calibrated pressure with the raw ADC code observed at it.
// Widths match the flash layout on the sensor head: centi-kPa needs 32 bits,
// ADC codes are 16-bit.
type Entry struct {
	Pressure int32
	ADC      uint16
}

// Table is an ordered calibration curve: strictly ascending in both ADC and
// Pressure, at least two entries. Build it once at init and never mutate it.
// Validate checks the invariants at construction time; Convert does not.
type Table []Entry

// Convert maps a raw ADC reading onto the calibration curve.
//
// Readings inside the table range are resolved by binary search: an exact
// code returns its calibrated pressure, anything between two codes is
// linearly interpolated between the bracketing entries. Readings outside the
// range are extrapolated on a least-squares line fitted over the whole table
// (see Fit).
//
// Precondition: t.Validate() == nil. On a valid table Convert is total over
// any reading; ConvertChecked is the variant that surfaces the degenerate
// fit fault instead of assuming it away.
func (t Table) Convert(reading int32) int32 {
	p, _ := t.ConvertChecked(reading)
	return p
}

// ConvertChecked is Convert with the extrapolation fault surfaced. The only
// possible error is ErrZeroVariance, which a table passing Validate can
// never produce.
func (t Table) ConvertChecked(reading int32) (int32, error) {
	last := len(t) - 1
	if !mathx.Between(reading, int32(t[0].ADC), int32(t[last].ADC)) {
		ln, err := t.Fit()
		if err != nil {
			return 0, err
		}
		return ln.Eval(reading), nil
	}
	// Boundary codes short-circuit the search.
	if reading == int32(t[0].ADC) {
		return t[0].Pressure, nil
	}
	if reading == int32(t[last].ADC) {
		return t[last].Pressure, nil
	}
	return t.search(reading), nil
}

// search resolves an in-range, non-boundary reading. The window [lo,hi]
// always brackets the reading; hi-lo shrinks every pass, and once mid
// collapses onto lo the window is down to the two adjacent entries
// (hi == lo+1) and we interpolate between them.
func (t Table) search(reading int32) int32 {
	lo, hi := 0, len(t)-1
	for {
		mid := lo + (hi-lo)/2
		switch {
		case int32(t[mid].ADC) == reading:
			return t[mid].Pressure
		case mid == lo:
			return interpolate(t[lo], t[hi], reading)
		case reading < int32(t[mid].ADC):
			hi = mid
		default:
			lo = mid
		}
	}
}

// interpolate applies P1 + (P2-P1)*(reading-ADC1)/(ADC2-ADC1) with the
// multiply ahead of the divide. Doing the divide first would truncate the
// slope to whole centi-kPa per count and flatten shallow segments; the
// int64 intermediates make the reordering safe.
func interpolate(a, b Entry, reading int32) int32 {
	rise := int64(b.Pressure) - int64(a.Pressure)
	run := int64(b.ADC) - int64(a.ADC)
	return a.Pressure + int32(rise*int64(reading-int32(a.ADC))/run)
}
