package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hublink-io/hubspot-client/internal/constants"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var (
		query      string
		filters    []string
		sorts      []string
		properties []string
		limit      int
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "search OBJECT-TYPE",
		Short: "Search CRM records",
		Long: `Search CRM records of one object type.

Filters are property predicates of the form property:OPERATOR:value
(for example amount:GT:1000 or dealstage:EQ:closedwon); multiple
filters are combined with AND. Sorts are property:ASCENDING or
property:DESCENDING. With --all, every matching page is fetched with a
throttle between pages.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			objectType := hubspot.ObjectType(args[0])
			if !hubspot.ValidObjectType(objectType) {
				return fmt.Errorf("%w: %q", constants.ErrInvalidObjectType, args[0])
			}

			request, err := buildSearchRequest(query, filters, sorts, properties, limit)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if all {
				objects, err := client.Search().SearchAll(ctx, objectType, request)
				if err != nil {
					return fmt.Errorf("search failed: %w", err)
				}

				return renderOutput(objects, func() error {
					return renderObjectsTable(objects, properties)
				})
			}

			result, err := client.Search().Search(ctx, objectType, request)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			return renderOutput(result, func() error {
				fmt.Printf("Total matches: %d\n", result.Total)

				return renderObjectsTable(result.Results, properties)
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text query")
	cmd.Flags().StringSliceVarP(&filters, "filter", "f", nil, "filter as property:OPERATOR:value (repeatable)")
	cmd.Flags().StringSliceVarP(&sorts, "sort", "s", nil, "sort as property:ASCENDING|DESCENDING (repeatable)")
	cmd.Flags().StringSliceVarP(&properties, "properties", "p", nil, "properties to return")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every matching page")

	return cmd
}

func buildSearchRequest(query string, filters, sorts, properties []string, limit int) (*hubspot.SearchRequest, error) {
	request := &hubspot.SearchRequest{
		Query:      query,
		Properties: properties,
		Limit:      limit,
	}

	parsed, err := parseFilters(filters)
	if err != nil {
		return nil, err
	}

	if len(parsed) > 0 {
		request.FilterGroups = []hubspot.FilterGroup{{Filters: parsed}}
	}

	for _, arg := range sorts {
		property, direction, found := strings.Cut(arg, ":")
		if !found || property == "" {
			return nil, fmt.Errorf("invalid sort %q: expected property:ASCENDING|DESCENDING", arg)
		}

		request.Sorts = append(request.Sorts, hubspot.Sort{
			PropertyName: property,
			Direction:    strings.ToUpper(direction),
		})
	}

	return request, nil
}

func parseFilters(args []string) ([]hubspot.Filter, error) {
	filters := make([]hubspot.Filter, 0, len(args))

	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 3)
		if len(parts) < 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid filter %q: expected property:OPERATOR:value", arg)
		}

		filter := hubspot.Filter{
			PropertyName: parts[0],
			Operator:     strings.ToUpper(parts[1]),
		}

		if len(parts) == 3 {
			filter.Value = parts[2]
		}

		filters = append(filters, filter)
	}

	return filters, nil
}
