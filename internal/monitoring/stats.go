package monitoring

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stats tracks arena activity and frame timing. Counters are atomic so a
// renderer may read them while the simulation writes.
type Stats struct {
	// Frame metrics
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds

	// Arena metrics
	plants         atomic.Uint64
	detonations    atomic.Uint64
	propagations   atomic.Uint64
	enemiesRemoved atomic.Uint64
	deaths         atomic.Uint64

	mutex        sync.RWMutex
	avgFrameTime float64 // nanoseconds, exponential moving average
	startTime    time.Time
}

// smoothing is the weight of the newest frame in the moving average
const smoothing = 0.1

// NewStats creates an empty stats tracker
func NewStats() *Stats {
	return &Stats{
		startTime: time.Now(),
	}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	stats     *Stats
	startTime time.Time
}

// StartFrame begins frame timing
func (s *Stats) StartFrame() *FrameTimer {
	return &FrameTimer{
		stats:     s,
		startTime: time.Now(),
	}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	frameTime := time.Since(ft.startTime)
	ft.stats.frameTime.Store(uint64(frameTime.Nanoseconds()))
	count := ft.stats.frameCount.Add(1)

	ft.stats.mutex.Lock()
	if count == 1 {
		ft.stats.avgFrameTime = float64(frameTime.Nanoseconds())
	} else {
		ft.stats.avgFrameTime += smoothing * (float64(frameTime.Nanoseconds()) - ft.stats.avgFrameTime)
	}
	ft.stats.mutex.Unlock()
}

func (s *Stats) RecordPlant()        { s.plants.Add(1) }
func (s *Stats) RecordDetonation()   { s.detonations.Add(1) }
func (s *Stats) RecordPropagation()  { s.propagations.Add(1) }
func (s *Stats) RecordEnemyRemoved() { s.enemiesRemoved.Add(1) }
func (s *Stats) RecordDeath()        { s.deaths.Add(1) }

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Frames         uint64
	LastFrame      time.Duration
	AvgFrame       time.Duration
	Uptime         time.Duration
	Plants         uint64
	Detonations    uint64
	Propagations   uint64
	EnemiesRemoved uint64
	Deaths         uint64
}

// Snapshot returns the current counters
func (s *Stats) Snapshot() Snapshot {
	s.mutex.RLock()
	avg := s.avgFrameTime
	s.mutex.RUnlock()

	return Snapshot{
		Frames:         s.frameCount.Load(),
		LastFrame:      time.Duration(s.frameTime.Load()),
		AvgFrame:       time.Duration(avg),
		Uptime:         time.Since(s.startTime),
		Plants:         s.plants.Load(),
		Detonations:    s.detonations.Load(),
		Propagations:   s.propagations.Load(),
		EnemiesRemoved: s.enemiesRemoved.Load(),
		Deaths:         s.deaths.Load(),
	}
}

// Reset zeroes the arena counters but keeps frame timing
func (s *Stats) Reset() {
	s.plants.Store(0)
	s.detonations.Store(0)
	s.propagations.Store(0)
	s.enemiesRemoved.Store(0)
	s.deaths.Store(0)
}
