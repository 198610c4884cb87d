package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAssociationsCommand creates the associations command group.
func NewAssociationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "associations",
		Aliases: []string{"assoc"},
		Short:   "Manage associations between CRM objects",
		Long: `Manage directed, labeled associations between CRM objects.

Every subcommand takes a FROM and TO object type pair, for example
"deals contacts". Valid association type names between a pair can be
listed with the types subcommand.`,
	}

	cmd.AddCommand(newAssociationsTypesCommand())
	cmd.AddCommand(newAssociationsReadCommand())
	cmd.AddCommand(newAssociationsCreateCommand())
	cmd.AddCommand(newAssociationsDeleteCommand())

	return cmd
}

func resolveObjectTypePair(fromArg, toArg string) (hubspot.ObjectType, hubspot.ObjectType, error) {
	from, err := resolveObjectType(fromArg)
	if err != nil {
		return "", "", err
	}

	to, err := resolveObjectType(toArg)
	if err != nil {
		return "", "", err
	}

	return from, to, nil
}

func newAssociationsTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types FROM-TYPE TO-TYPE",
		Short: "List association types between two object types",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := resolveObjectTypePair(args[0], args[1])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			types, err := client.Associations().ListTypes(context.Background(), from, to)
			if err != nil {
				return fmt.Errorf("failed to list association types: %w", err)
			}

			return renderOutput(types, func() error {
				if len(types) == 0 {
					fmt.Println("No association types found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name")

				for _, t := range types {
					_ = table.Append(t.ID, t.Name)
				}

				return table.Render()
			})
		},
	}
}

func newAssociationsReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read FROM-TYPE TO-TYPE FROM-ID...",
		Short: "Read associations from one or more objects",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := resolveObjectTypePair(args[0], args[1])
			if err != nil {
				return err
			}

			request := &hubspot.AssociationBatchReadRequest{}
			for _, id := range args[2:] {
				request.Inputs = append(request.Inputs, hubspot.AssociationEndpoint{ID: id})
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			response, err := client.Associations().BatchRead(context.Background(), from, to, request)
			if err != nil {
				return fmt.Errorf("failed to read associations: %w", err)
			}

			return renderOutput(response, func() error {
				return renderAssociationsTable(response.Results)
			})
		},
	}
}

func newAssociationsCreateCommand() *cobra.Command {
	var assocType string

	cmd := &cobra.Command{
		Use:   "create FROM-TYPE TO-TYPE FROM-ID TO-ID",
		Short: "Create an association between two objects",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := resolveObjectTypePair(args[0], args[1])
			if err != nil {
				return err
			}

			request := &hubspot.AssociationBatchRequest{
				Inputs: []hubspot.AssociationInput{{
					From: hubspot.AssociationEndpoint{ID: args[2]},
					To:   hubspot.AssociationEndpoint{ID: args[3]},
					Type: assocType,
				}},
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			response, err := client.Associations().BatchCreate(context.Background(), from, to, request)
			if err != nil {
				return fmt.Errorf("failed to create association: %w", err)
			}

			return renderOutput(response, func() error {
				fmt.Printf("Associated %s %s with %s %s\n", from, args[2], to, args[3])

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&assocType, "type", "t", "", "association type name")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newAssociationsDeleteCommand() *cobra.Command {
	var assocType string

	cmd := &cobra.Command{
		Use:   "delete FROM-TYPE TO-TYPE FROM-ID TO-ID",
		Short: "Remove an association between two objects",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := resolveObjectTypePair(args[0], args[1])
			if err != nil {
				return err
			}

			request := &hubspot.AssociationBatchRequest{
				Inputs: []hubspot.AssociationInput{{
					From: hubspot.AssociationEndpoint{ID: args[2]},
					To:   hubspot.AssociationEndpoint{ID: args[3]},
					Type: assocType,
				}},
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Associations().BatchArchive(context.Background(), from, to, request)
			if err != nil {
				return fmt.Errorf("failed to delete association: %w", err)
			}

			fmt.Printf("Removed association between %s %s and %s %s\n", from, args[2], to, args[3])

			return nil
		},
	}

	cmd.Flags().StringVarP(&assocType, "type", "t", "", "association type name")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func renderAssociationsTable(results []hubspot.AssociationResult) error {
	if len(results) == 0 {
		fmt.Println("No associations found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("From", "To", "Type")

	for _, r := range results {
		_ = table.Append(r.From.ID, r.To.ID, r.Type)
	}

	return table.Render()
}
