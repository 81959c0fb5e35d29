package hpx2710

import (
	"testing"

	"pressurecode-go/drivers/presscal"
)

func TestFactoryCalInvariants(t *testing.T) {
	if err := FactoryCal.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(FactoryCal) != 91 {
		t.Fatalf("len = %d, want 91", len(FactoryCal))
	}
	if FactoryCal[0] != (presscal.Entry{Pressure: 10000, ADC: 1696}) {
		t.Errorf("first entry = %+v", FactoryCal[0])
	}
	if FactoryCal[len(FactoryCal)-1] != (presscal.Entry{Pressure: 100000, ADC: 14073}) {
		t.Errorf("last entry = %+v", FactoryCal[len(FactoryCal)-1])
	}
}

func TestFactoryCalExactHits(t *testing.T) {
	// Boundaries first, then every interior entry.
	if got := FactoryCal.Convert(1696); got != 10000 {
		t.Errorf("Convert(1696) = %d, want 10000", got)
	}
	if got := FactoryCal.Convert(14073); got != 100000 {
		t.Errorf("Convert(14073) = %d, want 100000", got)
	}
	for _, e := range FactoryCal {
		if got := FactoryCal.Convert(int32(e.ADC)); got != e.Pressure {
			t.Errorf("Convert(%d) = %d, want %d", e.ADC, got, e.Pressure)
		}
	}
}

func TestFactoryCalInterpolation(t *testing.T) {
	// 1800 sits between (10000,1696) and (11000,1909):
	// 10000 + 1000*104/213 = 10488.
	got := FactoryCal.Convert(1800)
	if got <= 10000 || got >= 11000 {
		t.Fatalf("Convert(1800) = %d, want strictly inside (10000, 11000)", got)
	}
	if got != 10488 {
		t.Errorf("Convert(1800) = %d, want 10488", got)
	}
}

func TestFactoryCalMonotonicInRange(t *testing.T) {
	prev := FactoryCal.Convert(1696)
	for r := int32(1697); r <= 14073; r++ {
		got := FactoryCal.Convert(r)
		if got < prev {
			t.Fatalf("Convert(%d) = %d < Convert(%d) = %d", r, got, r-1, prev)
		}
		prev = got
	}
}

func TestFactoryCalExtrapolation(t *testing.T) {
	ln, err := FactoryCal.Fit()
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if num, _ := ln.Slope(); num <= 0 {
		t.Fatalf("slope numerator = %d, want > 0", num)
	}

	if got := FactoryCal.Convert(500); got >= 10000 {
		t.Errorf("Convert(500) = %d, want < 10000", got)
	}
	if got := FactoryCal.Convert(15000); got <= 100000 {
		t.Errorf("Convert(15000) = %d, want > 100000", got)
	}

	// The global fit cannot track the local curvature exactly, but it must
	// stay in the same neighbourhood as the table edges. The lower edge is
	// the worst spot: the curve is steepest there, so the straight line
	// overshoots by a few tens of kPa at most.
	lowGap := FactoryCal.Convert(1695) - 10000
	if lowGap < -4000 || lowGap > 4000 {
		t.Errorf("Convert(1695) = %d, too far from 10000", FactoryCal.Convert(1695))
	}
	highGap := FactoryCal.Convert(14074) - 100000
	if highGap < -2000 || highGap > 2000 {
		t.Errorf("Convert(14074) = %d, too far from 100000", FactoryCal.Convert(14074))
	}

	// Extrapolated readings themselves stay monotonic.
	if FactoryCal.Convert(400) > FactoryCal.Convert(900) {
		t.Error("extrapolation below range not monotonic")
	}
	if FactoryCal.Convert(14500) > FactoryCal.Convert(15500) {
		t.Error("extrapolation above range not monotonic")
	}
}
