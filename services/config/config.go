// Package config is the table/config provider: it publishes each section of
// the selected device's embedded configuration as a retained bus message
// (config/<section>), so services that start later still receive it.
//
// Configuration is effectively immutable: it is published once at bring-up
// and nothing republished afterwards, so a calibration table handed out here
// is fixed for the life of the process.
package config

import (
	"context"
	"errors"

	"pressurecode-go/bus"
)

const (
	serviceName  = "config"
	configPrefix = "config"
	CtxDeviceKey = "device" // context key used for device ID
)

// EmbeddedConfigLookup allows overriding how configs are resolved (tests).
var EmbeddedConfigLookup = func(device string) (map[string]any, bool) {
	m, ok := deviceConfigs[device]
	return m, ok
}

type Service struct {
	Name string
}

func NewService() *Service {
	return &Service{Name: serviceName}
}

// publishConfig resolves the device's embedded config and publishes each
// section retained.
func (s *Service) publishConfig(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return errors.New("missing device ID in context")
	}

	sections, ok := EmbeddedConfigLookup(device)
	if !ok || len(sections) == 0 {
		return errors.New("no embedded config for device: " + device)
	}

	for k, v := range sections {
		conn.Publish(&bus.Message{
			Topic:    bus.T(configPrefix, k),
			Payload:  v,
			Retained: true,
		})
	}
	return nil
}

// Start launches the config publisher in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			println("Error: config:", err.Error())
		}
	}()
}
