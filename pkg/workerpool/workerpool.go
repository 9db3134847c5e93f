package workerpool

import (
	"context"
	"errors"
	"sync"
)

var ErrClosed = errors.New("worker pool closed")

// Task описывает универсальную задачу для пула.
// Fn должен быть безопасен для конкурентного выполнения.
// ResultC: канал для возврата результата (если нужен), буферизованный.
type Task struct {
	Fn      func() (any, error)
	ResultC chan Result
}

type Result struct {
	Value any
	Err   error
}

type WorkerPool struct {
	tasks  chan Task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool создаёт пул с N воркерами
func NewWorkerPool(workerCount int, queueSize int) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	ctx, cancel := context.WithCancel(context.Background())
	wp := &WorkerPool{
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	wp.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		if wp.ctx.Err() != nil {
			// пул остановлен: задачи из очереди не выполняем
			if task.ResultC != nil {
				task.ResultC <- Result{Err: ErrClosed}
			}
			continue
		}
		res, err := task.Fn()
		if task.ResultC != nil {
			task.ResultC <- Result{Value: res, Err: err}
		}
	}
}

// Submit отправляет задачу в пул, блокируясь при полной очереди. Если нужен результат: передайте канал.
func (wp *WorkerPool) Submit(task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrClosed
	}
	wp.tasks <- task
	return nil
}

// Close дожидается выполнения уже поставленных задач и останавливает воркеров.
func (wp *WorkerPool) Close() {
	wp.mu.Lock()
	if wp.closed {
		wp.mu.Unlock()
		return
	}
	wp.closed = true
	close(wp.tasks)
	wp.mu.Unlock()
	wp.wg.Wait()
	wp.cancel()
}

// Stop отменяет ещё не начатые задачи и останавливает воркеров.
func (wp *WorkerPool) Stop() {
	wp.cancel()
	wp.Close()
}
