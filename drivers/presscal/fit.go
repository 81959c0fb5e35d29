package presscal

// Line is a least-squares fit of a calibration table, kept as a rational so
// evaluation never works with a pre-truncated slope.
type Line struct {
	slopeNum int64
	interNum int64
	den      int64
}

// Fit computes an ordinary least-squares line over the whole table.
//
// Accumulators are int64. With ~100 entries, 16-bit codes and centi-kPa
// pressures the raw sums reach ~1e11 and the cross products ~1e14, far past
// int32; this width is a functional requirement, not a style choice. Each
// sum is averaged over N before combining to bound the products. Pressure
// keeps its centi-kPa scaling throughout, so no rescale is needed at the
// end and no sub-unit precision is dropped during accumulation.
//
// ErrZeroVariance is returned when the ADC codes carry no spread; a table
// passing Validate cannot trigger it.
func (t Table) Fit() (Line, error) {
	n := int64(len(t))
	if n < 2 {
		return Line{}, ErrTableTooSmall
	}
	var sumA, sumP, sumAP, sumAA int64
	for _, e := range t {
		a := int64(e.ADC)
		p := int64(e.Pressure)
		sumA += a
		sumP += p
		sumAP += a * p
		sumAA += a * a
	}
	avgA := sumA / n
	avgP := sumP / n
	avgAP := sumAP / n
	avgAA := sumAA / n

	den := avgAA - avgA*avgA
	if den <= 0 {
		return Line{}, ErrZeroVariance
	}
	return Line{
		slopeNum: avgAP - avgA*avgP,
		interNum: avgAA*avgP - avgA*avgAP,
		den:      den,
	}, nil
}

// Eval returns the pressure predicted by the line at the given reading.
func (l Line) Eval(reading int32) int32 {
	return int32((l.slopeNum*int64(reading) + l.interNum) / l.den)
}

// Slope returns the fitted slope in centi-kPa per ADC count as num/den.
// Diagnostics only; the conversion path never needs it.
func (l Line) Slope() (num, den int64) { return l.slopeNum, l.den }

// Intercept returns the fitted intercept in centi-kPa as num/den.
func (l Line) Intercept() (num, den int64) { return l.interNum, l.den }
