package stats

import (
	"context"
	"sync"

	"github.com/san-kum/algoviz/internal/algorithms"
)

// Ensemble runs several algorithms over the same array side by side.
type Ensemble struct {
	ids    []algorithms.ID
	target *int
}

// NewEnsemble returns an ensemble over ids. target is passed to search
// algorithms and ignored by sorts.
func NewEnsemble(ids []algorithms.ID, target *int) *Ensemble {
	return &Ensemble{ids: ids, target: target}
}

// IDsOfKind returns the ids of every registered algorithm of kind k.
func IDsOfKind(k algorithms.Kind) []algorithms.ID {
	var ids []algorithms.ID
	for _, info := range algorithms.List() {
		if info.Kind == k {
			ids = append(ids, info.ID)
		}
	}
	return ids
}

// Run generates one trace per algorithm concurrently and returns their
// summaries in the ensemble's order. values is never modified.
func (e *Ensemble) Run(ctx context.Context, values []int) ([]Summary, error) {
	results := make([]Summary, len(e.ids))
	errs := make([]error, len(e.ids))

	var wg sync.WaitGroup
	for i, id := range e.ids {
		wg.Add(1)
		go func(idx int, id algorithms.ID) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			in := make([]int, len(values))
			copy(in, values)
			t, err := algorithms.Run(id, in, e.target)
			if err != nil {
				errs[idx] = err
				return
			}
			info, _ := algorithms.Lookup(id)
			results[idx] = Summarize(t, info)
		}(i, id)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
