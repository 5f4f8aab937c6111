// Command xlfskl-stress drives a concurrent producer workload against a
// KeyQueue: N producers, run on a bounded ants worker pool instead of raw
// unbounded goroutines, each push M distinct integers. Once they are done,
// a single loop in run polls TryPop until N*M pops have succeeded. Only the
// pop count is checked; the popped values are not compared with the pushed
// ones.
package main

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	_ "go.uber.org/automaxprocs" // ambient GOMAXPROCS tuning for container cgroups
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xlfskl/internal/xlog"
	"github.com/benz9527/xlfskl/pqueue"
)

const (
	producers        = 8
	itemsPerProducer = 5_000
	poolSize         = 64
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	log := xlog.New(xlog.WithLevel(xlog.LevelInfo), xlog.WithEncoding(xlog.Console))
	defer func() { _ = log.Sync() }()

	q, err := pqueue.NewKeyQueue[int64](pqueue.WithLogger[int64](log))
	if err != nil {
		return err
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	total := int64(producers * itemsPerProducer)
	var produced, consumed int64
	var errs error
	var errsMu sync.Mutex

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		p := p
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			base := int64(p) * itemsPerProducer
			for i := int64(0); i < itemsPerProducer; i++ {
				q.Push(base + i)
				atomic.AddInt64(&produced, 1)
			}
		})
		if submitErr != nil {
			errsMu.Lock()
			errs = multierr.Append(errs, submitErr)
			errsMu.Unlock()
			wg.Done()
		}
	}
	wg.Wait()

	for atomic.LoadInt64(&consumed) < total {
		if _, ok := q.TryPop(); ok {
			atomic.AddInt64(&consumed, 1)
		}
	}

	log.Info("stress run complete",
		zap.Int64("produced", produced),
		zap.Int64("consumed", consumed),
		zap.Int64("remaining_size", q.Size()),
	)
	return errs
}
