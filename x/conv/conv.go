// Package conv holds allocation-free number formatting for MCU console
// output, where fmt is too heavy to link.
package conv

// Itoa writes the base-10 representation of n into buf and returns the used
// slice. buf should be length >= 20 for int64; negative numbers supported.
func Itoa(buf []byte, n int64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	neg := n < 0
	var u uint64
	if neg {
		u = uint64(-n)
	} else {
		u = uint64(n)
	}
	if u == 0 {
		i--
		buf[i] = '0'
	} else {
		for u > 0 && i > 0 {
			i--
			buf[i] = byte('0' + (u % 10))
			u /= 10
		}
	}
	if neg && i > 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}

// Centi writes v/100 with two decimals ("-12.05" for -1205) into buf and
// returns the used slice. Made for centi-kPa values; buf should be length
// >= 14.
func Centi(buf []byte, v int32) []byte {
	if len(buf) < 4 {
		return buf[:0]
	}
	i := len(buf)
	neg := v < 0
	u := uint32(v)
	if neg {
		u = uint32(-v)
	}
	i--
	buf[i] = byte('0' + u%10)
	u /= 10
	i--
	buf[i] = byte('0' + u%10)
	u /= 10
	i--
	buf[i] = '.'
	if u == 0 {
		i--
		buf[i] = '0'
	} else {
		for u > 0 && i > 0 {
			i--
			buf[i] = byte('0' + u%10)
			u /= 10
		}
	}
	if neg && i > 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}
