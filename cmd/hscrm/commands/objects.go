package commands

import (
	"context"
	"fmt"

	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/spf13/cobra"
)

// newObjectTypeCommand builds the command group for one CRM object type.
// Deals, contacts, companies, and notes all share this surface; only the
// endpoint type differs.
func newObjectTypeCommand(use, singular string, aliases []string, objectType hubspot.ObjectType) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   fmt.Sprintf("Manage %s", use),
		Long:    fmt.Sprintf("List, create, and manage CRM %s", use),
	}

	cmd.AddCommand(newObjectGetCommand(singular, objectType))
	cmd.AddCommand(newObjectListCommand(use, objectType))
	cmd.AddCommand(newObjectCreateCommand(singular, objectType))
	cmd.AddCommand(newObjectUpdateCommand(singular, objectType))
	cmd.AddCommand(newObjectDeleteCommand(singular, objectType))

	return cmd
}

func newObjectGetCommand(singular string, objectType hubspot.ObjectType) *cobra.Command {
	var (
		properties   []string
		associations []string
		idProperty   string
		archived     bool
	)

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: fmt.Sprintf("Get a %s by id", singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := hubspot.NewQueryParams().
				WithProperties(properties...).
				WithAssociations(associations...).
				WithArchived(archived)
			if idProperty != "" {
				params.WithIDProperty(idProperty)
			}

			obj, err := client.Objects(objectType).Get(context.Background(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", singular, err)
			}

			return renderOutput(obj, func() error {
				return renderObjectsTable([]hubspot.Object{*obj}, properties)
			})
		},
	}

	cmd.Flags().StringSliceVarP(&properties, "properties", "p", nil, "properties to return")
	cmd.Flags().StringSliceVar(&associations, "associations", nil, "object types to expand associations for")
	cmd.Flags().StringVar(&idProperty, "id-property", "", "alternate unique property to look up by")
	cmd.Flags().BoolVar(&archived, "archived", false, "include archived records")

	return cmd
}

func newObjectListCommand(use string, objectType hubspot.ObjectType) *cobra.Command {
	var (
		properties []string
		limit      int
		after      string
		archived   bool
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", use),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := hubspot.NewQueryParams().
				WithProperties(properties...).
				WithArchived(archived)
			if limit > 0 {
				params.WithLimit(limit)
			}

			if after != "" {
				params.WithAfter(after)
			}

			ctx := context.Background()

			if all {
				objects, err := client.Objects(objectType).ListAll(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list %s: %w", use, err)
				}

				return renderOutput(objects, func() error {
					return renderObjectsTable(objects, properties)
				})
			}

			page, err := client.Objects(objectType).List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", use, err)
			}

			return renderOutput(page.Results, func() error {
				if err := renderObjectsTable(page.Results, properties); err != nil {
					return err
				}

				if page.Paging != nil && page.Paging.Next != nil {
					fmt.Printf("More results available: --after %s\n", page.Paging.Next.After)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&properties, "properties", "p", nil, "properties to return")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().StringVar(&after, "after", "", "paging cursor")
	cmd.Flags().BoolVar(&archived, "archived", false, "include archived records")
	cmd.Flags().BoolVar(&all, "all", false, "follow pagination and return every record")

	return cmd
}

func newObjectCreateCommand(singular string, objectType hubspot.ObjectType) *cobra.Command {
	var properties []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a %s", singular),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := parseProperties(properties)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			obj, err := client.Objects(objectType).Create(context.Background(), &hubspot.ObjectCreateRequest{
				Properties: props,
			})
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", singular, err)
			}

			return renderOutput(obj, func() error {
				fmt.Printf("Created %s %s\n", singular, obj.ID)

				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&properties, "property", "p", nil, "property as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("property")

	return cmd
}

func newObjectUpdateCommand(singular string, objectType hubspot.ObjectType) *cobra.Command {
	var properties []string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: fmt.Sprintf("Update a %s", singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := parseProperties(properties)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			obj, err := client.Objects(objectType).Update(context.Background(), args[0], &hubspot.ObjectUpdateRequest{
				Properties: props,
			})
			if err != nil {
				return fmt.Errorf("failed to update %s: %w", singular, err)
			}

			return renderOutput(obj, func() error {
				fmt.Printf("Updated %s %s\n", singular, obj.ID)

				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&properties, "property", "p", nil, "property as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("property")

	return cmd
}

func newObjectDeleteCommand(singular string, objectType hubspot.ObjectType) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: fmt.Sprintf("Archive a %s", singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Objects(objectType).Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete %s: %w", singular, err)
			}

			fmt.Printf("Deleted %s %s\n", singular, args[0])

			return nil
		},
	}
}

// NewDealsCommand creates the deals command group.
func NewDealsCommand() *cobra.Command {
	return newObjectTypeCommand("deals", "deal", []string{"deal"}, hubspot.ObjectTypeDeals)
}

// NewContactsCommand creates the contacts command group.
func NewContactsCommand() *cobra.Command {
	return newObjectTypeCommand("contacts", "contact", []string{"contact"}, hubspot.ObjectTypeContacts)
}

// NewCompaniesCommand creates the companies command group.
func NewCompaniesCommand() *cobra.Command {
	return newObjectTypeCommand("companies", "company", []string{"company"}, hubspot.ObjectTypeCompanies)
}

// NewNotesCommand creates the notes command group.
func NewNotesCommand() *cobra.Command {
	return newObjectTypeCommand("notes", "note", []string{"note"}, hubspot.ObjectTypeNotes)
}

// NewTicketsCommand creates the tickets command group.
func NewTicketsCommand() *cobra.Command {
	return newObjectTypeCommand("tickets", "ticket", []string{"ticket"}, hubspot.ObjectTypeTickets)
}
