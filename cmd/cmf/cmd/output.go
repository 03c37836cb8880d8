package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	apiclient "github.com/rodgo4k/cade-meu-filme/internal/api/client"
	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printBundlesTable(bundles []types.Bundle) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TITLE\tYEAR\tSERVICES\n")
	for i := range bundles {
		year := "-"
		if bundles[i].Candidate.ReleaseYear != 0 {
			year = fmt.Sprintf("%d", bundles[i].Candidate.ReleaseYear)
		}
		tw.writef("%s\t%s\t%s\n",
			truncate(bundles[i].Candidate.Title, 40),
			year,
			summarizeOffers(&bundles[i]),
		)
	}
	return tw.finish()
}

func printDirectDetail(d *apiclient.DirectResponse) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", d.Candidate.ID)
	tw.writef("Title:\t%s\n", d.Candidate.Title)
	if d.Candidate.ReleaseYear != 0 {
		tw.writef("Year:\t%d\n", d.Candidate.ReleaseYear)
	}
	if len(d.Offers) == 0 {
		tw.writef("Services:\t-\n")
		return tw.finish()
	}
	tw.writef("\nSERVICE\tTYPE\tCOUNTRY\tQUALITY\tLINK\n")
	for i := range d.Offers {
		o := &d.Offers[i]
		quality := o.Quality
		if quality == "" {
			quality = "-"
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			o.ServiceName, o.AccessType, o.Country, quality, o.Link)
	}
	return tw.finish()
}

// summarizeOffers renders a bundle's offers as "Netflix (BR), Prime (US)".
func summarizeOffers(b *types.Bundle) string {
	if b.AvailabilityError {
		return "error fetching availability"
	}
	if len(b.Offers) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(b.Offers))
	for i := range b.Offers {
		parts = append(parts, fmt.Sprintf("%s (%s)", b.Offers[i].ServiceName, b.Offers[i].Country))
	}
	return strings.Join(parts, ", ")
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
