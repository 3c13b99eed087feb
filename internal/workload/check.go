package workload

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math/rand"
	"slices"

	"go.uber.org/zap"

	"github.com/LeJamon/ordmap/internal/core/ordmap"
)

// ErrDivergence is returned when the map disagrees with the reference map.
var ErrDivergence = errors.New("map diverged from reference")

// CheckOptions configures a randomized differential check.
type CheckOptions struct {
	Operations    int
	KeySpace      int
	Seed          int64
	ValidateEvery int
	Logger        *zap.Logger
}

// CheckResult summarizes a successful check.
type CheckResult struct {
	Operations  int
	Inserts     int
	Indexes     int
	Erases      int
	RangeErases int
	Lookups     int
	Validations int
	FinalLen    int
	MaxHeight   int
}

// String returns a summary of the check
func (r *CheckResult) String() string {
	return fmt.Sprintf("%d ops (%d insert, %d index, %d erase, %d range erase, %d lookup), %d validations, final len %d, max height %d",
		r.Operations, r.Inserts, r.Indexes, r.Erases, r.RangeErases, r.Lookups, r.Validations, r.FinalLen, r.MaxHeight)
}

// Check drives an ordmap.Map and a built-in map with the same random
// operations and fails on the first disagreement or invariant violation.
func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	if opts.Operations <= 0 {
		return nil, fmt.Errorf("operations must be positive, got %d", opts.Operations)
	}
	if opts.KeySpace <= 0 {
		return nil, fmt.Errorf("key space must be positive, got %d", opts.KeySpace)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	m := ordmap.New[int, int]()
	ref := make(map[int]int)
	result := &CheckResult{}

	diverged := func(step int, format string, args ...any) error {
		return fmt.Errorf("step %d: %s: %w", step, fmt.Sprintf(format, args...), ErrDivergence)
	}

	for step := 0; step < opts.Operations; step++ {
		if step%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		k := rng.Intn(opts.KeySpace)
		switch op := rng.Intn(10); {
		case op < 3:
			result.Inserts++
			_, inserted := m.Insert(ordmap.MakePair(k, step))
			_, existed := ref[k]
			if inserted == existed {
				return nil, diverged(step, "insert(%d) reported inserted=%t", k, inserted)
			}
			if !existed {
				ref[k] = step
			}
		case op < 5:
			result.Indexes++
			*m.Index(k) = step
			ref[k] = step
		case op < 7:
			result.Erases++
			_, existed := ref[k]
			want := 0
			if existed {
				want = 1
			}
			if got := m.EraseKey(k); got != want {
				return nil, diverged(step, "erase(%d) removed %d entries, want %d", k, got, want)
			}
			delete(ref, k)
		case op < 8:
			result.RangeErases++
			hi := k + rng.Intn(opts.KeySpace/16+1)
			m.EraseRange(m.LowerBound(k), m.LowerBound(hi))
			for key := range ref {
				if key >= k && key < hi {
					delete(ref, key)
				}
			}
		default:
			result.Lookups++
			got, err := m.At(k)
			want, existed := ref[k]
			switch {
			case existed && err != nil:
				return nil, diverged(step, "at(%d) failed: %v", k, err)
			case existed && got != want:
				return nil, diverged(step, "at(%d) = %d, want %d", k, got, want)
			case !existed && !errors.Is(err, ordmap.ErrKeyNotFound):
				return nil, diverged(step, "at(%d) on absent key returned %v", k, err)
			case !existed && !m.Find(k).IsEnd():
				return nil, diverged(step, "find(%d) located an absent key", k)
			}
		}

		if m.Len() != len(ref) {
			return nil, diverged(step, "len %d, want %d", m.Len(), len(ref))
		}
		result.MaxHeight = max(result.MaxHeight, m.Height())

		if opts.ValidateEvery > 0 && step%opts.ValidateEvery == 0 {
			result.Validations++
			if err := m.Invariants(); err != nil {
				return nil, fmt.Errorf("step %d: %w", step, err)
			}
			logger.Debug("invariants hold",
				zap.Int("step", step),
				zap.Int("len", m.Len()),
				zap.Int("height", m.Height()))
		}
		result.Operations++
	}

	if err := m.Invariants(); err != nil {
		return nil, err
	}
	result.Validations++

	wantKeys := slices.Sorted(maps.Keys(ref))
	gotKeys := slices.Collect(m.Keys())
	if !slices.Equal(wantKeys, gotKeys) {
		return nil, fmt.Errorf("final key order differs: %w", ErrDivergence)
	}
	for k, v := range m.All() {
		if ref[k] != v {
			return nil, fmt.Errorf("final value of %d is %d, want %d: %w", k, v, ref[k], ErrDivergence)
		}
	}

	result.FinalLen = m.Len()
	logger.Info("check passed", zap.Stringer("result", result))
	return result, nil
}
