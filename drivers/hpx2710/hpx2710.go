// Package hpx2710 provides a driver for the HPX-2710 piezoresistive pressure
// bridge: a 16-bit ADC behind an I2C register interface. It exposes a
// two-phase measurement API:
//
//	d.Trigger()              // start a conversion (fast)
//	err := d.Collect(&s)     // fetch when ready; returns ErrNotReady while busy
//
// For convenience, d.Read() performs trigger + bounded polling until ready.
//
// The device reports raw ADC codes only. Calibration to pressure lives in
// drivers/presscal; FactoryCal in this package is the curve burned in at
// production test.
package hpx2710

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"

	"pressurecode-go/drivers/presscal"
	"pressurecode-go/x/mathx"
)

// Errors returned by the driver.
var (
	ErrTimeout  = errors.New("hpx2710: timeout")
	ErrNotReady = errors.New("hpx2710: not ready")
	ErrProtocol = errors.New("hpx2710: protocol error")
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x28 if zero.
	Address uint16
	// OSR selects oversampling (0..3 for 1x/4x/16x/64x). Values above
	// OSRMax are clamped.
	OSR uint8
	// PollInterval is used by Read() between Collect() attempts.
	// Default 5 ms.
	PollInterval time.Duration
	// CollectTimeout bounds the total wait in Read(). Default 100 ms.
	CollectTimeout time.Duration
}

// Device wraps an I2C connection to an HPX-2710.
type Device struct {
	bus     drivers.I2C
	Address uint16

	cfg  Config
	buf  [3]byte // reuse buffer to avoid allocations
	code uint16  // last raw conversion
}

// New creates a new HPX-2710 connection. The I2C bus must already be
// configured. This only creates the Device object; it does not touch the
// hardware.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Configure applies optional config and defaults. It may be called with no
// arguments.
func (d *Device) Configure(cfgs ...Config) {
	var c Config
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.Address != 0 {
		d.Address = c.Address
	}
	c.OSR = mathx.Clamp(c.OSR, 0, OSRMax)
	if c.PollInterval <= 0 {
		c.PollInterval = 5 * time.Millisecond
	}
	if c.CollectTimeout <= 0 {
		c.CollectTimeout = 100 * time.Millisecond
	}
	d.cfg = c
}

// Reset issues a soft reset. Give the bridge ~10ms before using it again.
func (d *Device) Reset() error {
	return d.bus.Tx(d.Address, []byte{regCtrl, ctrlSoftReset}, nil)
}

// Status reads and returns the status byte.
func (d *Device) Status() (byte, error) {
	data := d.buf[:1]
	if err := d.bus.Tx(d.Address, []byte{regStatus}, data); err != nil {
		return 0, err
	}
	return data[0], nil
}

// Trigger starts a one-shot conversion. It is a quick register write with no
// blocking; conversion time depends on the configured OSR.
func (d *Device) Trigger() error {
	if d.cfg.PollInterval == 0 {
		d.Configure()
	}
	ctrl := byte(ctrlOneShot | d.cfg.OSR<<ctrlOSRShift)
	return d.bus.Tx(d.Address, []byte{regCtrl, ctrl}, nil)
}

// Collect attempts to read one conversion into the device cache and the
// provided sample. While the bridge is still converting, ErrNotReady is
// returned. Any bus error is returned as-is.
func (d *Device) Collect(out *Sample) error {
	data := d.buf[:]
	if err := d.bus.Tx(d.Address, []byte{regData}, data); err != nil {
		return err
	}
	st := data[0]
	if st&statusBusy != 0 {
		return ErrNotReady
	}
	if st&statusReady == 0 {
		return ErrProtocol
	}
	code := uint16(data[1])<<8 | uint16(data[2])
	d.code = code
	if out != nil {
		out.Code = code
	}
	return nil
}

// Read performs a full measurement cycle: Trigger followed by bounded
// polling until Collect succeeds or the timeout elapses.
func (d *Device) Read() error {
	if err := d.Trigger(); err != nil {
		return err
	}
	deadline := time.Now().Add(d.cfg.CollectTimeout)
	for {
		var s Sample
		err := d.Collect(&s)
		switch err {
		case nil:
			return nil
		case ErrNotReady:
			if time.Now().After(deadline) {
				return ErrTimeout
			}
			time.Sleep(d.cfg.PollInterval)
			continue
		default:
			return err
		}
	}
}

// Code returns the last cached raw conversion.
func (d *Device) Code() uint16 { return d.code }

// Sample holds one raw conversion.
type Sample struct {
	Code uint16
}

// CentiKPa converts the sample through a calibration table. Most callers
// pass FactoryCal or a table from device config.
func (s Sample) CentiKPa(cal presscal.Table) int32 {
	return cal.Convert(int32(s.Code))
}
