package outbox

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task publishes the pending events of one aggregate.
type Task struct {
	AggregateID uuid.UUID
	Run         func() error
}

type WorkerPool struct {
	queue chan Task
	wg    sync.WaitGroup
	once  sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{queue: make(chan Task, size)}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.queue {
		if err := task.Run(); err != nil {
			zap.L().Error("Publish task failed",
				zap.String("aggregateID", task.AggregateID.String()),
				zap.Error(err),
			)
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.queue <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		close(wp.queue)
	})
	wp.wg.Wait()
}
