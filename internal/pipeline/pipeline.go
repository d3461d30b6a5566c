// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"probegen-core/annotation"
	"probegen-core/genome"
	"probegen-core/probe"
	"probegen-core/resolve"
	"probegen-core/statement"
)

// Config controls the statement-resolution pipeline.
type Config struct {
	Threads int // number of worker goroutines (0 = all CPUs)
}

// Result is the outcome of one input statement: either its probes, in
// left-major/right-minor expansion order, or the error that failed it.
// A failed statement never ships partial probes.
type Result struct {
	Index     int
	Statement string
	Probes    []probe.Probe
	Err       error
}

// Run resolves statements against the annotation index and reference genome,
// calling visit once per statement in input order. Statements are fully
// independent and are resolved concurrently; ordering is restored before
// visit. Per-statement failures are carried in Result.Err and never abort
// the run. The returned error is reserved for cancellation and visit errors.
func Run(
	ctx context.Context,
	cfg Config,
	statements []string,
	idx *annotation.Index,
	g genome.Genome,
	visit func(Result) error,
) error {
	threads := cfg.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	type job struct {
		index int
		stmt  string
	}
	jobs := make(chan job, threads*2)
	results := make(chan Result, threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					probes, err := Resolve(j.stmt, idx, g)
					r := Result{Index: j.index, Statement: j.stmt, Probes: probes, Err: err}
					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: restore input order before visiting.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]Result, threads*2)
		next := 0
		for r := range results {
			if cerr != nil {
				continue
			}
			pending[r.Index] = r
			for {
				rdy, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				if err := visit(rdy); err != nil && cerr == nil {
					cerr = err
				}
				next++
			}
		}
	}()

	// Feed work
feed:
	for i, stmt := range statements {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{index: i, stmt: stmt}:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}

// Resolve runs the whole statement-to-probes pipeline for one statement:
// parse, resolve both halves, expand the ambiguity cross product, compute
// windows, and extract sequences.
func Resolve(stmt string, idx *annotation.Index, g genome.Genome) ([]probe.Probe, error) {
	q, err := statement.Parse(stmt)
	if err != nil {
		return nil, err
	}
	switch q := q.(type) {
	case statement.CoordinateQuery:
		left := resolve.CoordinateWindow(q.Left, g)
		right := resolve.CoordinateWindow(q.Right, g)
		p, err := probe.FromWindows(q.Raw, left, right, g)
		if err != nil {
			return nil, err
		}
		return []probe.Probe{p}, nil

	case statement.ProbeQuery:
		leftSet, err := resolve.Features(q.Left, idx)
		if err != nil {
			return nil, err
		}
		rightSet, err := resolve.Features(q.Right, idx)
		if err != nil {
			return nil, err
		}
		pairs := resolve.Expand(leftSet, rightSet)
		probes := make([]probe.Probe, 0, len(pairs))
		for _, pair := range pairs {
			left := resolve.FeatureWindow(pair[0], g)
			right := resolve.FeatureWindow(pair[1], g)
			p, err := probe.FromWindows(q.Raw, left, right, g)
			if err != nil {
				return nil, err
			}
			probes = append(probes, p)
		}
		return probes, nil

	default:
		// Parse returns only the two forms above.
		return nil, &statement.SyntaxError{Statement: stmt, Reason: "unknown statement form"}
	}
}
