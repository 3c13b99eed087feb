package workload

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/LeJamon/ordmap/internal/core/ordmap"
	"github.com/LeJamon/ordmap/internal/core/rbtree"
)

// Common errors
var (
	ErrNoJobs         = errors.New("no benchmark jobs")
	ErrInvalidSize    = errors.New("size must be positive")
	ErrHeightExceeded = errors.New("tree height exceeds red-black bound")
)

// Job describes one benchmark run: build a map of Size keys fed in Order.
type Job struct {
	Order Order
	Size  int
	Round int
	Seed  int64
}

// String returns a string representation of the job
func (j Job) String() string {
	return fmt.Sprintf("%s/%d#%d", j.Order, j.Size, j.Round)
}

// Result holds the measurements of one Job.
type Result struct {
	Order     string        `codec:"order" json:"order"`
	Size      int           `codec:"size" json:"size"`
	Round     int           `codec:"round" json:"round"`
	Height    int           `codec:"height" json:"height"`
	MaxHeight int           `codec:"max_height" json:"max_height"`
	Insert    time.Duration `codec:"insert_ns" json:"insert_ns"`
	Find      time.Duration `codec:"find_ns" json:"find_ns"`
	Iterate   time.Duration `codec:"iterate_ns" json:"iterate_ns"`
	Erase     time.Duration `codec:"erase_ns" json:"erase_ns"`
	Remaining int           `codec:"remaining" json:"remaining"`
	Valid     bool          `codec:"valid" json:"valid"`
	Error     string        `codec:"error,omitempty" json:"error,omitempty"`
}

// Options configures RunAll
type Options struct {
	// Workers bounds how many jobs run at the same time. Each job owns its map.
	// Zero or less means one per CPU.
	Workers  int
	// Validate runs the full invariant check after building and after erasing.
	Validate bool
	Logger   *zap.Logger
}

// Run executes a single job against a fresh map.
func Run(job Job, keys []int, validate bool) Result {
	res := Result{
		Order:     job.Order.String(),
		Size:      job.Size,
		Round:     job.Round,
		MaxHeight: rbtree.MaxHeight(job.Size),
		Valid:     true,
	}

	m := ordmap.New[int, int]()

	start := time.Now()
	for _, k := range keys {
		m.Insert(ordmap.MakePair(k, k))
	}
	res.Insert = time.Since(start)
	res.Height = m.Height()

	if validate {
		if err := m.Invariants(); err != nil {
			res.Valid = false
			res.Error = err.Error()
			return res
		}
	}
	if res.Height > res.MaxHeight {
		res.Valid = false
		res.Error = fmt.Sprintf("%v: %d > %d", ErrHeightExceeded, res.Height, res.MaxHeight)
		return res
	}

	start = time.Now()
	for _, k := range keys {
		if m.Find(k).IsEnd() {
			res.Valid = false
			res.Error = fmt.Sprintf("key %d missing after insert", k)
			return res
		}
	}
	res.Find = time.Since(start)

	start = time.Now()
	count := 0
	for it := m.Begin(); !it.IsEnd(); it.Next() {
		count++
	}
	res.Iterate = time.Since(start)
	if count != m.Len() {
		res.Valid = false
		res.Error = fmt.Sprintf("iterated %d entries, map reports %d", count, m.Len())
		return res
	}

	// erase every other entry by iterator
	start = time.Now()
	for it := m.Begin(); !it.IsEnd(); {
		it = m.Erase(it)
		if !it.IsEnd() {
			it.Next()
		}
	}
	res.Erase = time.Since(start)
	res.Remaining = m.Len()

	if validate {
		if err := m.Invariants(); err != nil {
			res.Valid = false
			res.Error = err.Error()
		}
	}
	return res
}

// runJob executes one job inside RunAll.
var runJob = Run

// workerLimit returns the number of jobs RunAll runs at once. Zero or less
// means one per CPU.
func workerLimit(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}

// RunAll executes jobs concurrently, bounded by opts.Workers, and returns the
// results in job order. It stops early if ctx is cancelled.
func RunAll(ctx context.Context, src *KeySource, jobs []Job, opts Options) ([]Result, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, job := range jobs {
		if job.Size <= 0 {
			return nil, fmt.Errorf("job %s: %w", job, ErrInvalidSize)
		}
	}

	results := make([]Result, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit(opts.Workers))

	for i, job := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			keys := src.Keys(job.Order, job.Size, job.Seed)
			res := runJob(job, keys, opts.Validate)
			results[i] = res

			logger.Debug("job finished",
				zap.Stringer("job", job),
				zap.Int("height", res.Height),
				zap.Duration("insert", res.Insert),
				zap.Bool("valid", res.Valid))
			if !res.Valid {
				logger.Warn("job produced an invalid tree",
					zap.Stringer("job", job),
					zap.String("error", res.Error))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Plan expands sizes × orders × rounds into jobs. Random orders get a
// distinct seed per round.
func Plan(sizes []int, orders []Order, rounds int, seed int64) []Job {
	if rounds <= 0 {
		rounds = 1
	}
	jobs := make([]Job, 0, len(sizes)*len(orders)*rounds)
	for _, size := range sizes {
		for _, order := range orders {
			for r := 0; r < rounds; r++ {
				jobs = append(jobs, Job{
					Order: order,
					Size:  size,
					Round: r,
					Seed:  seed + int64(r),
				})
			}
		}
	}
	return jobs
}
