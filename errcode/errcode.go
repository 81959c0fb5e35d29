package errcode

import (
	"pressurecode-go/drivers/hpx2710"
	"pressurecode-go/drivers/presscal"
)

// Code is a stable, bus-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK             Code = "ok"
	Busy           Code = "busy"
	Timeout        Code = "timeout"
	Unsupported    Code = "unsupported"
	InvalidParams  Code = "invalid_params"
	InvalidPayload Code = "invalid_payload"
	InvalidTopic   Code = "invalid_topic"

	InvalidTable   Code = "invalid_table"
	ZeroVariance   Code = "zero_variance"
	SensorNotReady Code = "sensor_not_ready"
	SensorFault    Code = "sensor_fault"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// MapDriverErr maps low-level driver and calibration errors to a Code.
func MapDriverErr(err error) Code {
	switch err {
	case nil:
		return OK
	case hpx2710.ErrNotReady:
		return SensorNotReady
	case hpx2710.ErrTimeout:
		return Timeout
	case hpx2710.ErrProtocol:
		return SensorFault
	case presscal.ErrZeroVariance:
		return ZeroVariance
	case presscal.ErrTableTooSmall, presscal.ErrADCNotAscending, presscal.ErrPressureNotAscending:
		return InvalidTable
	}
	return Error
}
