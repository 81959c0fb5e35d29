package pressure

import (
	"pressurecode-go/drivers/presscal"
	"pressurecode-go/types"
)

// tableFromPoints builds a calibration table from config points. The service
// loop validates the result once before sampling starts.
func tableFromPoints(pts []types.CalPoint) presscal.Table {
	t := make(presscal.Table, len(pts))
	for i, p := range pts {
		t[i] = presscal.Entry{Pressure: p.CentiKPa, ADC: p.Code}
	}
	return t
}
