package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// WorkerStats contains statistics about one worker's share of a render
type WorkerStats struct {
	ID        int
	Rows      RowRange
	Pixels    int           // Pixels rendered
	Samples   int           // Camera rays traced
	Flushes   int           // Times the backlog was copied into the framebuffer
	Contended int           // Times the framebuffer was locked and the backlog kept
	Duration  time.Duration // Time from start to final flush
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	Duration        time.Duration // Wall time of the render
	Workers         []WorkerStats // Per-worker statistics ordered by ID
	MeanLuminance   float64       // Mean of the per-pixel average luminance
	StdDevLuminance float64       // Standard deviation of the per-pixel average luminance
}

// newRenderStats combines the worker statistics with the per-pixel luminance
func newRenderStats(config renderConfig, workers []WorkerStats, luminance []float64, duration time.Duration) RenderStats {
	stats := RenderStats{
		Width:           config.width,
		Height:          config.height,
		SamplesPerPixel: config.samples,
		Duration:        duration,
		Workers:         workers,
	}

	for _, w := range workers {
		stats.TotalPixels += w.Pixels
		stats.TotalSamples += w.Samples
	}

	stats.MeanLuminance, stats.StdDevLuminance = stat.MeanStdDev(luminance, nil)
	return stats
}

// SamplesPerSecond returns the camera ray throughput of the render
func (rs RenderStats) SamplesPerSecond() float64 {
	if rs.Duration <= 0 {
		return 0
	}
	return float64(rs.TotalSamples) / rs.Duration.Seconds()
}
