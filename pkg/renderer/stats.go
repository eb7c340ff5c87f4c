package renderer

import "time"

// RenderStats summarizes the work done by a render
type RenderStats struct {
	PrimaryRays int64 // camera rays cast
	PrimaryHits int64 // camera rays that hit geometry or the light
	ShadowRays  int64 // occlusion probes cast toward VPLs
	Columns     int   // pixel columns rendered
	Workers     int   // parallel workers used
	RenderTime  time.Duration
}

// add merges per-worker counters into the totals
func (s *RenderStats) add(other RenderStats) {
	s.PrimaryRays += other.PrimaryRays
	s.PrimaryHits += other.PrimaryHits
	s.ShadowRays += other.ShadowRays
}
