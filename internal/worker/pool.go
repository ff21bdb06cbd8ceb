// Package worker fans position work out across goroutines, such as perft
// subtrees or batches of move validation.
package worker

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// WorkItem is one position to process.
type WorkItem struct {
	State *chess.GameState
	Move  chess.Move // move that led to State, for divide jobs
	Token string     // notation to validate, for batch jobs
	Depth int
	Index int
}

// ProcessResult is what processing a WorkItem produced. Run fills in Index
// and Token from the item.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Token string
	Nodes uint64
	Error error
}

// ProcessFunc processes one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc on a fixed number of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below one are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a pool with one worker and a buffer of ten
// unless opts say otherwise.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.workChan {
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Close stops accepting work, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes items on a new pool and returns one result per item, in
// item order. Each item's Index is overwritten with its position in items.
func Run(processFunc ProcessFunc, items []WorkItem, opts ...PoolOption) []ProcessResult {
	if len(items) == 0 {
		return nil
	}

	indexed := func(item WorkItem) ProcessResult {
		result := processFunc(item)
		result.Index, result.Token = item.Index, item.Token
		return result
	}
	opts = append([]PoolOption{WithBufferSize(len(items))}, opts...)
	pool := NewPoolWithOptions(indexed, opts...)
	pool.Start()

	go func() {
		for i, item := range items {
			item.Index = i
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, len(items))
	for result := range pool.Results() {
		results[result.Index] = result
	}
	return results
}
