package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/rodgo4k/cade-meu-filme/internal/api/client"
	"github.com/rodgo4k/cade-meu-filme/pkg/types"
)

func searchCmd() *cobra.Command {
	var (
		searchID      string
		searchType    string
		searchPage    int
		searchPerPage int
		searchAll     bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search streaming availability by title or provider ID",
		Long: "Searches the API for a movie or series and shows which streaming\n" +
			"services carry it. Pass a free-text query, or --id for a direct lookup.",
		Example: `  cmf search "matrix"
  cmf search "dark" --type series
  cmf search "matrix" --page 2 --per-page 10
  cmf search "matrix" --all
  cmf search --id 603`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if searchID != "" {
				return runSearchByID(cmd, searchID, searchType)
			}
			if len(args) == 0 {
				return fmt.Errorf("provide a query or --id")
			}
			return runSearch(cmd, searchParams{
				query:   args[0],
				kind:    searchType,
				page:    searchPage,
				perPage: searchPerPage,
				all:     searchAll,
			})
		},
	}

	cmd.Flags().StringVar(&searchID, "id", "", "provider show ID for a direct lookup")
	cmd.Flags().StringVar(&searchType, "type", "movie", "media type (movie, series)")
	cmd.Flags().IntVar(&searchPage, "page", 1, "page number")
	cmd.Flags().IntVar(&searchPerPage, "per-page", 0, "results per page (default 20)")
	cmd.Flags().BoolVar(&searchAll, "all", false, "walk all pages and merge the results")

	return cmd
}

type searchParams struct {
	query   string
	kind    string
	page    int
	perPage int
	all     bool
}

func runSearch(cmd *cobra.Command, p searchParams) error {
	c := newClient()
	kind := types.ParseMediaKind(p.kind)

	params := apiclient.SearchParams{
		Query:   p.query,
		Kind:    kind,
		Page:    p.page,
		PerPage: p.perPage,
	}
	if p.all {
		params.Page = 1
	}

	resp, err := c.Search(cmd.Context(), params)
	if err != nil {
		return err
	}

	bundles := apiclient.MergeBundles(nil, 1, resp.Results)

	if p.all {
		for resp.Pagination.HasNextPage {
			params.Page = resp.Pagination.Page + 1
			resp, err = c.Search(cmd.Context(), params)
			if err != nil {
				return err
			}
			bundles = apiclient.MergeBundles(bundles, params.Page, resp.Results)
		}
	}

	if jsonOutput() {
		return outputJSON(bundles)
	}

	if len(bundles) == 0 {
		if resp.Message != "" {
			fmt.Println(resp.Message)
		}
		return nil
	}

	return printBundlesTable(bundles)
}

func runSearchByID(cmd *cobra.Command, id, kind string) error {
	c := newClient()

	resp, err := c.SearchByID(cmd.Context(), id, types.ParseMediaKind(kind))
	if err != nil {
		return err
	}

	if jsonOutput() {
		return outputJSON(resp)
	}

	return printDirectDetail(resp)
}
