package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile *Tile
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering. Tiles never overlap, so workers
// write to the shared framebuffer without locking.
type WorkerPool struct {
	renderer    *TileRenderer
	framebuffer *Framebuffer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	group       *errgroup.Group
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds the number of tiles submitted before Stop.
func NewWorkerPool(tr *TileRenderer, fb *Framebuffer, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		renderer:    tr,
		framebuffer: fb,
		taskQueue:   make(chan TileTask, maxTasks),   // Buffer for all tiles
		resultQueue: make(chan TileResult, maxTasks), // Buffer for all results
		numWorkers:  numWorkers,
	}
}

// Start begins all workers. Workers stop picking up tiles once ctx is done.
func (wp *WorkerPool) Start(ctx context.Context) {
	group, groupCtx := errgroup.WithContext(ctx)
	wp.group = group
	for i := 0; i < wp.numWorkers; i++ {
		group.Go(func() error {
			return wp.run(groupCtx)
		})
	}
}

// Stop waits for the submitted tiles and shuts down all workers
func (wp *WorkerPool) Stop() error {
	close(wp.taskQueue) // No more tasks
	err := wp.group.Wait()
	close(wp.resultQueue)
	return err
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run(ctx context.Context) error {
	for task := range wp.taskQueue {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats := wp.renderer.RenderTileBounds(task.Tile.Bounds, wp.framebuffer)
		wp.resultQueue <- TileResult{TileID: task.Tile.ID, Stats: stats}
	}
	return nil
}
