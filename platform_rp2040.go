//go:build rp2040

package main

import (
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"
)

const deviceID = "pico-psense"

// Console UART pins (Pico defaults) and sensor I2C pins.
const (
	consoleBaud = 115200
	consoleTX   = machine.Pin(0)
	consoleRX   = machine.Pin(1)

	sensorSDA = machine.Pin(4)
	sensorSCL = machine.Pin(5)
)

// setupConsole configures UART0 for the reading mirror.
func setupConsole() {
	_ = uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: consoleBaud,
		TX:       consoleTX,
		RX:       consoleRX,
	})
}

func consoleWrite(line string) {
	_, _ = uartx.UART0.Write([]byte(line))
}

// sensorBus configures I2C0 for the HPX-2710.
func sensorBus() drivers.I2C {
	sensorSDA.Configure(machine.PinConfig{Mode: machine.PinI2C})
	sensorSCL.Configure(machine.PinConfig{Mode: machine.PinI2C})
	machine.I2C0.Configure(machine.I2CConfig{
		SDA:       sensorSDA,
		SCL:       sensorSCL,
		Frequency: 400_000,
	})
	return machine.I2C0
}
