package resolver

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rodgo4k/cade-meu-filme/internal/metrics"
	"github.com/rodgo4k/cade-meu-filme/internal/provider"
	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

// aggregate fans out one availability call per candidate and reassembles the
// bundles by original index, so output order always equals input order no
// matter which call finishes first. Concurrency is bounded by the page size;
// there is no separate limit.
//
// A failed call never aborts the batch: the candidate comes back with empty
// offers and AvailabilityError set. Cancelling ctx cancels every outstanding
// call.
func (r *Resolver) aggregate(
	ctx context.Context,
	candidates []types.Candidate,
	kind types.MediaKind,
) []types.Bundle {
	if len(candidates) == 0 {
		return []types.Bundle{}
	}

	start := time.Now()
	defer func() {
		metrics.AggregateDuration.Observe(time.Since(start).Seconds())
	}()

	bundles := make([]types.Bundle, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	for i, cand := range candidates {
		g.Go(func() error {
			show, err := r.shows.Show(ctx, cand.ID, kind)
			if err != nil {
				if !errors.Is(err, provider.ErrNotFound) {
					r.logger.Warn("availability lookup failed",
						"id", cand.ID,
						"title", cand.Title,
						"err", err,
					)
				}
				metrics.BundleFailuresTotal.Inc()
				bundles[i] = types.Bundle{
					Candidate:         cand,
					Offers:            []types.Offer{},
					AvailabilityError: true,
				}
				return nil
			}

			offers := show.Offers
			if offers == nil {
				offers = []types.Offer{}
			}
			bundles[i] = types.Bundle{Candidate: cand, Offers: offers}
			return nil
		})
	}

	// Goroutines only ever return nil; Wait is just the join point.
	_ = g.Wait()

	return bundles
}
