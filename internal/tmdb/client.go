// Package tmdb provides a TMDB title-search client abstracted behind an
// interface for testability.
package tmdb

import (
	"context"

	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

// Searcher resolves a free-text query to an ordered list of candidate titles.
//
// A provider error response or a malformed body yields an empty candidate
// list and a nil error, so callers can treat it as "no matches". Only
// transport failures surface as errors.
type Searcher interface {
	Search(ctx context.Context, query string, kind types.MediaKind, locale string) ([]types.Candidate, error)
}
