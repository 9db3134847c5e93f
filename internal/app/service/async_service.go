package service

import (
	"timesheet-bot/pkg/workerpool"
)

// AsyncService выполняет тяжёлые операции (разбор документов) в общем пуле воркеров.
type AsyncService struct {
	Pool *workerpool.WorkerPool
}

type AsyncResult = workerpool.Result

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

// SubmitAsync ставит задачу и ждёт результата.
func (a *AsyncService) SubmitAsync(fn func() (any, error)) (any, error) {
	res := <-a.Go(fn)
	return res.Value, res.Err
}

// Go ставит задачу и сразу возвращает канал с результатом.
func (a *AsyncService) Go(fn func() (any, error)) <-chan AsyncResult {
	resCh := make(chan workerpool.Result, 1)
	if err := a.Pool.Submit(workerpool.Task{Fn: fn, ResultC: resCh}); err != nil {
		resCh <- workerpool.Result{Err: err}
	}
	return resCh
}
