package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = DefaultPoolWorkers
	}
	if queueSize < 0 {
		queueSize = DefaultPoolQueueSize
	}
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: DefaultJobTimeout,
		quit:       make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	ctx, cancel := context.WithTimeout(ctx, p.jobTimeout)
	defer cancel()

	log := logger.FromContext(ctx)
	if err := job.Process(ctx); err != nil {
		metrics.WorkerJobsTotal.WithLabelValues(job.Name(), metrics.ResultFailure).Inc()
		log.Error(LogMsgWorkerJobFailed, "job", job.Name(), "error", err)
		return
	}
	metrics.WorkerJobsTotal.WithLabelValues(job.Name(), metrics.ResultSuccess).Inc()
	log.Debug(LogMsgJobCompleted, "job", job.Name())
}

// Enqueue adds a job without blocking. It reports false when the queue is full or the pool is stopped.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}

	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(context.Background()).Warn(LogMsgJobDropped, "job", job.Name())
		return false
	}
}

// Stop stops the workers and waits for them to finish their current job
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
	logger.FromContext(context.Background()).Info(LogMsgPoolStopped)
}
