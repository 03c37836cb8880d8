// Package types defines the wire-level domain types shared by the API
// server, the resolver pipeline, and the CLI client.
package types

import (
	"encoding/json"
	"strings"
)

// MediaKind selects between movie and series search.
type MediaKind string

const (
	Movie  MediaKind = "movie"
	Series MediaKind = "series"
)

// ParseMediaKind interprets a user-supplied type string. Anything that is
// not recognizably a series request falls back to Movie.
func ParseMediaKind(s string) MediaKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "series", "tv", "show":
		return Series
	default:
		return Movie
	}
}

// TMDBPath returns the path segment the TMDB search API uses for this kind.
func (k MediaKind) TMDBPath() string {
	if k == Series {
		return "tv"
	}
	return "movie"
}

func (k MediaKind) String() string {
	return string(k)
}

// AccessType describes how an offer can be watched. Values come straight
// from the availability provider (subscription, rent, buy, free, ads, addon)
// and are passed through unmodified.
type AccessType string

// Candidate is one title resolved by the lookup provider. Raw carries the
// provider's JSON for the result item unmodified so the UI can use fields
// this service does not model.
type Candidate struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	ReleaseYear int             `json:"releaseYear,omitempty"`
	PosterURL   string          `json:"posterUrl,omitempty"`
	Raw         json.RawMessage `json:"raw,omitempty"`
}

// Offer is a single way to watch a title on one service in one country.
// Icon and Theme are presentation hints resolved from the service catalog.
type Offer struct {
	ServiceID   string     `json:"serviceId"`
	ServiceName string     `json:"serviceName"`
	AccessType  AccessType `json:"accessType"`
	Country     string     `json:"country"`
	Link        string     `json:"link"`
	Quality     string     `json:"quality,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Theme       string     `json:"theme,omitempty"`
}

// Bundle pairs a candidate with its offers. AvailabilityError marks bundles
// whose availability lookup failed; their offer list is empty but the
// candidate is still returned.
type Bundle struct {
	Candidate         Candidate `json:"candidate"`
	Offers            []Offer   `json:"offers"`
	AvailabilityError bool      `json:"availabilityError,omitempty"`
}

// PageMeta describes the position of a page within the full result set.
// Field names match the JSON the web UI consumes.
type PageMeta struct {
	Page         int  `json:"page"`
	PerPage      int  `json:"perPage"`
	TotalResults int  `json:"totalResults"`
	TotalPages   int  `json:"totalPages"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// Page is one page of search results.
type Page struct {
	Results    []Bundle `json:"results"`
	Pagination PageMeta `json:"pagination"`
}
