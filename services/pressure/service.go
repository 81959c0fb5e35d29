// Package pressure runs the measurement pipeline: trigger the HPX-2710,
// collect the raw code, convert it through the calibration table and publish
// the fixed-point result on the bus.
package pressure

import (
	"context"
	"time"

	"pressurecode-go/bus"
	"pressurecode-go/drivers/hpx2710"
	"pressurecode-go/drivers/presscal"
	"pressurecode-go/errcode"
	"pressurecode-go/types"
	"pressurecode-go/x/timex"
)

var (
	topicConfig = bus.T("config", "pressure")
	topicValue  = bus.T("pressure", "value")
	topicFault  = bus.T("pressure", "fault")
)

// How long bring-up waits for retained config before settling on defaults.
const configWait = 500 * time.Millisecond

type Service struct {
	dev      *hpx2710.Device
	cal      presscal.Table
	interval time.Duration
}

// New creates the service around an already-constructed device. The factory
// calibration applies until device config says otherwise.
func New(dev *hpx2710.Device) *Service {
	return &Service{
		dev:      dev,
		cal:      hpx2710.FactoryCal,
		interval: time.Second,
	}
}

// Start launches the sampling loop.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}

// applyConfig folds the retained config message into the service. Called
// once at bring-up; interval, OSR and table are fixed afterwards.
func (s *Service) applyConfig(cfg types.PressureConfig) {
	if cfg.IntervalMs > 0 {
		s.interval = time.Duration(cfg.IntervalMs) * time.Millisecond
	}
	s.dev.Configure(hpx2710.Config{OSR: cfg.OSR})
	if len(cfg.Table) > 0 {
		s.cal = tableFromPoints(cfg.Table)
	}
}

func fault(conn *bus.Connection, op string, err error) {
	e := &errcode.E{C: errcode.MapDriverErr(err), Op: op, Err: err}
	conn.Publish(conn.NewMessage(topicFault, types.PressureFault{
		Code:   string(errcode.Of(e)),
		Detail: op + ": " + err.Error(),
	}, false))
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	// Config is published retained at bring-up; wait briefly for it, then
	// settle on whatever we have.
	cfgSub := conn.Subscribe(topicConfig)
	select {
	case m := <-cfgSub.Channel():
		if cfg, ok := m.Payload.(types.PressureConfig); ok {
			s.applyConfig(cfg)
		}
	case <-time.After(configWait):
	case <-ctx.Done():
		conn.Unsubscribe(cfgSub)
		return
	}
	conn.Unsubscribe(cfgSub)

	// A broken table is a provider bug: report it and refuse to run rather
	// than convert against garbage. This is the one place the invariants
	// are checked; Convert trusts the table from here on.
	if err := s.cal.Validate(); err != nil {
		fault(conn, "configure", err)
		println("Error: pressure: table rejected:", err.Error())
		return
	}

	tick := time.NewTicker(s.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("Info: pressure service stopping")
			return
		case <-tick.C:
			s.sample(conn)
		}
	}
}

func (s *Service) sample(conn *bus.Connection) {
	if err := s.dev.Read(); err != nil {
		fault(conn, "read", err)
		return
	}
	code := s.dev.Code()
	p, err := s.cal.ConvertChecked(int32(code))
	if err != nil {
		fault(conn, "convert", err)
		return
	}
	conn.Publish(conn.NewMessage(topicValue, types.PressureSample{
		CentiKPa: p,
		Code:     code,
		AtMs:     timex.NowMs(),
	}, false))
}
