// Package status provides a thread-safe status tracker for the
// button-monitor daemon. It is designed to be read by HTTP handlers
// while the polling loop updates it.
package status

import (
	"sync"
	"time"
)

// Level is the debounced button level as displayed to consumers.
type Level string

const (
	LevelDown Level = "DOWN"
	LevelUp   Level = "UP"
)

// EventCounts tracks the number of each event type since startup.
type EventCounts struct {
	Pressed  int
	Released int
}

// NetworkInfo contains network state as reported by the pi-helper
// sidecar.
type NetworkInfo struct {
	Type       string
	IP         string
	Status     string
	Gateway    string
	WifiStatus string
	SSID       string
}

// Config contains daemon configuration for display.
type Config struct {
	PollMs      int64
	HeartbeatMs int64
	Engine      string
	Pin         int
	ActiveLow   bool
	Broker      string
	HTTPAddr    string
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type — safe to use after the lock is released.
type Snapshot struct {
	Level         Level
	History       uint8
	Ready         bool // a sample has been processed since startup
	Counts        EventCounts
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Network       *NetworkInfo
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the button level, history window, and event counts.
// Called from the polling loop on every tick.
func (t *Tracker) Update(down bool, history uint8, counts EventCounts) {
	level := LevelUp
	if down {
		level = LevelDown
	}
	t.mu.Lock()
	t.snap.Level = level
	t.snap.History = history
	t.snap.Ready = true
	t.snap.Counts = counts
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// SetNetwork sets the network info.
func (t *Tracker) SetNetwork(info *NetworkInfo) {
	t.mu.Lock()
	t.snap.Network = info
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
