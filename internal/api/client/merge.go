package client

import "github.com/rodgo4k/cade-meu-filme/pkg/types"

// MergeBundles folds one fetched page into an accumulated result list: the
// first page replaces whatever was accumulated before, later pages append.
// This is the load-more behavior used when walking all pages of a search.
func MergeBundles(existing []types.Bundle, page int, results []types.Bundle) []types.Bundle {
	if page <= 1 {
		return append([]types.Bundle(nil), results...)
	}
	return append(existing, results...)
}
