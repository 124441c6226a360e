package concurrent

import (
	"sync"
)

// WorkerPool fans queued jobs out to numWorkers goroutines and buffers their
// results. Queue everything with AddJob, Close the queue, Start the workers,
// Wait for them and then range over CollectResults. Both channels are sized
// by the capacity given at construction, so a pool used that way never
// blocks.
type WorkerPool[T JobI, G any] struct {
	numWorkers int
	jobs       chan T
	results    chan G
	wg         sync.WaitGroup
}

func NewWorkerPool[T JobI, G any](numWorkers, capacity int) *WorkerPool[T, G] {
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobs:       make(chan T, capacity),
		results:    make(chan G, capacity),
	}
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobs <- job
}

// Close marks the job queue complete so workers exit after draining it.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobs)
}

func (wp *WorkerPool[T, G]) Start(fn JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for job := range wp.jobs {
				wp.results <- fn(job)
			}
		}()
	}
}

// Wait blocks until every worker finished and closes the result channel so
// ranging over CollectResults terminates.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) CollectResults() <-chan G {
	return wp.results
}
