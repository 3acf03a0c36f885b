package renderer

import (
	"sync"
	"time"
)

// RowRange is the half-open range of image rows [Start, End)
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the range
func (r RowRange) Len() int {
	return r.End - r.Start
}

// partitionRows splits height rows into one contiguous range per worker.
// Trailing workers may get an empty range.
func partitionRows(height, numWorkers int) []RowRange {
	rowsPer := height/numWorkers + 1

	ranges := make([]RowRange, numWorkers)
	for i := range ranges {
		start := min(height, i*rowsPer)
		end := min(height, (i+1)*rowsPer)
		ranges[i] = RowRange{Start: start, End: end}
	}
	return ranges
}

// WorkerPool renders an image with one goroutine per row range
type WorkerPool struct {
	workers     []*Worker
	resultQueue chan WorkerStats
	wg          sync.WaitGroup
}

// Worker renders its rows and publishes them to the shared framebuffer
type Worker struct {
	ID          int
	rows        RowRange
	raytracer   *Raytracer
	framebuffer *Framebuffer
	luminance   []float64 // Shared per-pixel luminance; each worker writes only its rows
	resultQueue chan WorkerStats
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, fb *Framebuffer, luminance []float64, numWorkers int) *WorkerPool {
	wp := &WorkerPool{
		resultQueue: make(chan WorkerStats, numWorkers),
	}

	for i, rows := range partitionRows(fb.Height(), numWorkers) {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			rows:        rows,
			raytracer:   raytracer,
			framebuffer: fb,
			luminance:   luminance,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Wait blocks until every worker has flushed its rows and returns their
// statistics ordered by worker ID
func (wp *WorkerPool) Wait() []WorkerStats {
	wp.wg.Wait()
	close(wp.resultQueue)

	stats := make([]WorkerStats, len(wp.workers))
	for result := range wp.resultQueue {
		stats[result.ID] = result
	}
	return stats
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

// run renders the worker's rows. Finished rows are buffered in a backlog that
// is copied into the framebuffer whenever its lock is free, and flushed with
// a blocking write after the last row.
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	start := time.Now()
	stats := WorkerStats{ID: w.ID, Rows: w.rows}
	width := w.framebuffer.Width()

	var backlog []Row
	for y := w.rows.Start; y < w.rows.End; y++ {
		pixels := make([]uint32, width)
		stats.Samples += w.raytracer.renderRow(y, pixels, w.luminance[y*width:(y+1)*width])
		stats.Pixels += width

		backlog = append(backlog, Row{Y: y, Pixels: pixels})
		if w.framebuffer.TryWriteRows(backlog) {
			stats.Flushes++
			backlog = backlog[:0]
		} else {
			stats.Contended++
		}
	}

	if len(backlog) > 0 {
		w.framebuffer.WriteRows(backlog)
		stats.Flushes++
	}

	stats.Duration = time.Since(start)
	logger.Debugf("worker %d finished rows [%d, %d) in %v (%d flushes, %d contended)",
		w.ID, w.rows.Start, w.rows.End, stats.Duration, stats.Flushes, stats.Contended)

	w.resultQueue <- stats
}
