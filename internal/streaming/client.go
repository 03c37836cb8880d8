// Package streaming provides a client for the streaming-availability API
// (RapidAPI), abstracted behind interfaces for testability.
package streaming

import (
	"context"
	"encoding/json"

	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

// Show is one title's availability data. Offers are flattened in configured
// country order and deduplicated by (serviceId, country), first occurrence
// wins. Raw carries the unmodified provider payload for passthrough.
type Show struct {
	ID          string
	Title       string
	Overview    string
	ReleaseYear int
	PosterURL   string
	Offers      []types.Offer
	Raw         json.RawMessage
}

// ShowFinder resolves a single title ID to its per-country offers.
//
// Error contract: provider.ErrNotFound for an upstream 404, *provider.Error
// for any other non-2xx status or transport failure. Exactly one outbound
// request per call; no retries.
type ShowFinder interface {
	Show(ctx context.Context, id string, kind types.MediaKind) (*Show, error)
}

// TitleFinder is the optional alternate title-search path used when no
// lookup provider is configured. The endpoints it relies on are not
// documented by the provider, so implementations try an ordered list and
// treat every failure as "move on".
type TitleFinder interface {
	FindByTitle(ctx context.Context, title string, kind types.MediaKind) (*Show, error)
}
