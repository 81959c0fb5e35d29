package pressure

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"tinygo.org/x/drivers"

	"pressurecode-go/bus"
	"pressurecode-go/drivers/hpx2710"
	"pressurecode-go/types"
)

var _ drivers.I2C = (*fakeBridge)(nil)

// Instantly-ready HPX-2710 fake pinned to one code.
type fakeBridge struct {
	mu        sync.Mutex
	code      uint16
	triggered bool
}

func (f *fakeBridge) Tx(addr uint16, w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(w) == 2 && w[0] == 0x30 { // ctrl write
		f.triggered = true
		return nil
	}
	if len(w) == 1 && w[0] == 0x06 && len(r) == 3 { // data read
		if f.triggered {
			r[0] = 0x01 // ready
		}
		r[1] = byte(f.code >> 8)
		r[2] = byte(f.code)
		return nil
	}
	if len(w) == 1 && w[0] == 0x02 && len(r) == 1 { // status read
		if f.triggered {
			r[0] = 0x01
		}
		return nil
	}
	return nil
}

func startService(t *testing.T, b *bus.Bus, code uint16, cfg types.PressureConfig) context.CancelFunc {
	t.Helper()

	// Retained config published ahead of the service, as bring-up does.
	cc := b.NewConnection("config")
	cc.Publish(cc.NewMessage(bus.T("config", "pressure"), cfg, true))

	dev := hpx2710.New(&fakeBridge{code: code})
	dev.Configure()

	ctx, cancel := context.WithCancel(context.Background())
	if err := New(&dev).Start(ctx, b.NewConnection("pressure")); err != nil {
		cancel()
		t.Fatalf("Start: %v", err)
	}
	return cancel
}

func TestPublishesConvertedSamples(t *testing.T) {
	b := bus.NewBus(8)
	sub := b.NewConnection("test").Subscribe(bus.T("pressure", "value"))

	cancel := startService(t, b, 3200, types.PressureConfig{IntervalMs: 10})
	defer cancel()

	select {
	case m := <-sub.Channel():
		s, ok := m.Payload.(types.PressureSample)
		if !ok {
			t.Fatalf("payload type %T", m.Payload)
		}
		if s.Code != 3200 {
			t.Errorf("Code = %d, want 3200", s.Code)
		}
		// 3200 is an exact factory-table hit.
		if s.CentiKPa != 21000 {
			t.Errorf("CentiKPa = %d, want 21000", s.CentiKPa)
		}
		if s.AtMs == 0 {
			t.Error("AtMs not set")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for sample")
	}
}

func TestConfigTableOverride(t *testing.T) {
	b := bus.NewBus(8)
	sub := b.NewConnection("test").Subscribe(bus.T("pressure", "value"))

	cfg := types.PressureConfig{
		IntervalMs: 10,
		Table: []types.CalPoint{
			{CentiKPa: 100, Code: 10},
			{CentiKPa: 200, Code: 20},
		},
	}
	cancel := startService(t, b, 15, cfg)
	defer cancel()

	select {
	case m := <-sub.Channel():
		s := m.Payload.(types.PressureSample)
		// Interpolated midway on the override table.
		if s.CentiKPa != 150 {
			t.Errorf("CentiKPa = %d, want 150", s.CentiKPa)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for sample")
	}
}

func TestRejectsBrokenTable(t *testing.T) {
	b := bus.NewBus(8)
	values := b.NewConnection("test").Subscribe(bus.T("pressure", "value"))
	faults := b.NewConnection("test2").Subscribe(bus.T("pressure", "fault"))

	cfg := types.PressureConfig{
		IntervalMs: 10,
		Table: []types.CalPoint{
			{CentiKPa: 200, Code: 20},
			{CentiKPa: 100, Code: 10}, // not ascending
		},
	}
	cancel := startService(t, b, 15, cfg)
	defer cancel()

	select {
	case m := <-faults.Channel():
		f := m.Payload.(types.PressureFault)
		if f.Code != "invalid_table" {
			t.Errorf("fault code = %q, want invalid_table", f.Code)
		}
		if !strings.HasPrefix(f.Detail, "configure: ") {
			t.Errorf("fault detail = %q, want configure op prefix", f.Detail)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for fault")
	}

	// No samples come out of a refused table.
	select {
	case m := <-values.Channel():
		t.Errorf("unexpected sample: %v", m.Payload)
	case <-time.After(50 * time.Millisecond):
	}
}
