package types

// Bus-facing payloads for the pressure pipeline. Pressure values are
// fixed-point centi-kPa throughout (12345 == 123.45 kPa).

// CalPoint is one calibration table entry as carried in device config.
type CalPoint struct {
	CentiKPa int32  `json:"p"`
	Code     uint16 `json:"adc"`
}

// PressureConfig is published retained on config/pressure at bring-up.
// An empty Table means "use the factory calibration".
type PressureConfig struct {
	IntervalMs uint32     `json:"interval_ms"`
	OSR        uint8      `json:"osr"`
	Table      []CalPoint `json:"table,omitempty"`
}

// PressureSample is published on pressure/value after each conversion.
type PressureSample struct {
	CentiKPa int32  `json:"centi_kpa"`
	Code     uint16 `json:"code"`
	AtMs     int64  `json:"at_ms"`
}

// PressureFault is published on pressure/fault when sampling or conversion
// fails. Code is an errcode string.
type PressureFault struct {
	Code   string `json:"code"`
	Detail string `json:"detail,omitempty"`
}
