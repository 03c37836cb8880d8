package resolver

import (
	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

// DefaultPerPage is used when the caller supplies no usable page size.
const DefaultPerPage = 20

// Paginate slices candidates into the requested page and computes pagination
// metadata. page below 1 becomes 1 and perPage below 1 becomes
// DefaultPerPage; no upper bound on perPage is enforced here, callers cap it.
// A page past the end yields an empty slice with valid metadata, not an error.
func Paginate(candidates []types.Candidate, page, perPage int) ([]types.Candidate, types.PageMeta) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	total := len(candidates)
	totalPages := (total + perPage - 1) / perPage

	meta := types.PageMeta{
		Page:         page,
		PerPage:      perPage,
		TotalResults: total,
		TotalPages:   totalPages,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}

	lo := (page - 1) * perPage
	if lo >= total {
		return nil, meta
	}

	hi := lo + perPage
	if hi > total {
		hi = total
	}

	return candidates[lo:hi], meta
}
