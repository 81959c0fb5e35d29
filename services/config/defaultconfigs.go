package config

import "pressurecode-go/types"

// Embedded per-device configuration. Typed payloads go straight onto the
// bus; keys become config/<key> topics.
//
// "pico-psense" is the production sense board: factory calibration, 1 Hz.
// "bench-rig" carries its own short table from the last rig calibration.
var deviceConfigs = map[string]map[string]any{
	"pico-psense": {
		"pressure": types.PressureConfig{
			IntervalMs: 1000,
			OSR:        2,
		},
	},
	"bench-rig": {
		"pressure": types.PressureConfig{
			IntervalMs: 250,
			OSR:        3,
			Table: []types.CalPoint{
				{CentiKPa: 5000, Code: 900},
				{CentiKPa: 20000, Code: 3100},
				{CentiKPa: 50000, Code: 6400},
				{CentiKPa: 80000, Code: 11700},
				{CentiKPa: 101325, Code: 14200},
			},
		},
	},
}
