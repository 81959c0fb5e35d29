package config

import (
	"context"
	"testing"
	"time"

	"pressurecode-go/bus"
	"pressurecode-go/types"
)

func TestPublishRetainedSections(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("config")

	ctx := context.WithValue(context.Background(), CtxDeviceKey, "pico-psense")
	if err := NewService().publishConfig(ctx, conn); err != nil {
		t.Fatalf("publishConfig: %v", err)
	}

	// Retained: a subscriber arriving after the publish still sees it.
	sub := b.NewConnection("late").Subscribe(bus.T("config", "pressure"))
	select {
	case m := <-sub.Channel():
		cfg, ok := m.Payload.(types.PressureConfig)
		if !ok {
			t.Fatalf("payload type %T", m.Payload)
		}
		if cfg.IntervalMs != 1000 {
			t.Errorf("IntervalMs = %d, want 1000", cfg.IntervalMs)
		}
		if len(cfg.Table) != 0 {
			t.Errorf("table override on factory device: %d points", len(cfg.Table))
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for retained config")
	}
}

func TestMissingDevice(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("config")

	if err := NewService().publishConfig(context.Background(), conn); err == nil {
		t.Error("expected error for missing device ID")
	}

	ctx := context.WithValue(context.Background(), CtxDeviceKey, "no-such-board")
	if err := NewService().publishConfig(ctx, conn); err == nil {
		t.Error("expected error for unknown device")
	}
}

func TestLookupOverride(t *testing.T) {
	orig := EmbeddedConfigLookup
	defer func() { EmbeddedConfigLookup = orig }()

	EmbeddedConfigLookup = func(device string) (map[string]any, bool) {
		return map[string]any{"pressure": types.PressureConfig{IntervalMs: 50}}, true
	}

	b := bus.NewBus(4)
	conn := b.NewConnection("config")
	sub := conn.Subscribe(bus.T("config", "pressure"))

	ctx := context.WithValue(context.Background(), CtxDeviceKey, "anything")
	if err := NewService().publishConfig(ctx, conn); err != nil {
		t.Fatalf("publishConfig: %v", err)
	}

	select {
	case m := <-sub.Channel():
		if cfg := m.Payload.(types.PressureConfig); cfg.IntervalMs != 50 {
			t.Errorf("IntervalMs = %d, want 50", cfg.IntervalMs)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for config")
	}
}
