package hpx2710

// Default I2C address.
const Address = 0x28

// Register map.
const (
	regStatus = 0x02 // status byte
	regData   = 0x06 // status + 16-bit conversion, big-endian
	regCtrl   = 0x30 // control / one-shot trigger
)

// CTRL bits. OSR occupies CTRL[2:1].
const (
	ctrlOneShot   = 0x01
	ctrlOSRShift  = 1
	ctrlSoftReset = 0x80
)

// STATUS bits.
const (
	statusBusy  = 0x20
	statusReady = 0x01
)

// OSRMax bounds the oversampling setting (1x, 4x, 16x, 64x).
const OSRMax = 3
