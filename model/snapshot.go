package model

import "time"

// CPU aggregates instantaneous CPU usage.
type CPU struct {
	Total   float64   `json:"total"`    // percent 0-100; may be NaN on bad provider input
	PerCore []float64 `json:"per_core"` // per-core percent, provider order
	LoadAvg LoadAvg   `json:"load_avg"`
}

// LoadAvg holds the 1/5/15-minute OS load averages.
// All three are zero on platforms without native loadavg support.
type LoadAvg struct {
	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
}

// Memory captures RAM and swap usage in bytes.
type Memory struct {
	Used      uint64 `json:"used"`
	Total     uint64 `json:"total"`
	SwapUsed  uint64 `json:"swap_used"`
	SwapTotal uint64 `json:"swap_total"`
}

// Process is one row of the ranked process table.
type Process struct {
	PID     int32   `json:"pid"`
	Name    string  `json:"name"`
	User    string  `json:"user"`
	CPU     float64 `json:"cpu"`    // percent
	Memory  float64 `json:"memory"` // percent
	Command string  `json:"command"`
}

// Snapshot is one fully-formed metrics reading. It is built in a single
// collection cycle and replaced atomically; consumers never see a
// partially-populated snapshot.
type Snapshot struct {
	Timestamp     time.Time `json:"timestamp"`
	CPU           CPU       `json:"cpu"`
	Memory        Memory    `json:"memory"`
	Processes     []Process `json:"processes"`
	UptimeSeconds float64   `json:"uptime_seconds"`
}
