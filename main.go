// Firmware entry for the pressure sense board: brings up the bus, the
// config provider and the sampling service, then mirrors every reading to
// the console.
package main

import (
	"context"
	"time"

	"pressurecode-go/bus"
	"pressurecode-go/drivers/hpx2710"
	"pressurecode-go/services/config"
	"pressurecode-go/services/pressure"
	"pressurecode-go/types"
	"pressurecode-go/x/conv"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot:", deviceID)

	setupConsole()

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, deviceID)
	b := bus.NewBus(8)

	dev := hpx2710.New(sensorBus())
	dev.Configure()

	config.NewService().Start(ctx, b.NewConnection("config"))
	if err := pressure.New(&dev).Start(ctx, b.NewConnection("pressure")); err != nil {
		println("Error: pressure service:", err.Error())
		return
	}

	var num [20]byte
	var fixed [14]byte
	mon := b.NewConnection("main").Subscribe(bus.T("pressure", "+"))
	for m := range mon.Channel() {
		switch p := m.Payload.(type) {
		case types.PressureSample:
			line := "adc " + string(conv.Itoa(num[:], int64(p.Code))) +
				" -> " + string(conv.Centi(fixed[:], p.CentiKPa)) + " kPa\r\n"
			print(line)
			consoleWrite(line)
		case types.PressureFault:
			line := "fault: " + p.Code + "\r\n"
			print(line)
			consoleWrite(line)
		}
	}
}
