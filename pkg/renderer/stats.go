package renderer

import "time"

// Stats summarizes one render pass
type Stats struct {
	Width        int
	Height       int
	PrimaryRays  int64
	Elapsed      time.Duration
	SceneVersion uint64
}

// RaysPerSecond returns primary-ray throughput for the pass
func (s Stats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.PrimaryRays) / s.Elapsed.Seconds()
}
