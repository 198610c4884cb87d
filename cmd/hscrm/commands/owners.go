package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewOwnersCommand creates the owners command group.
func NewOwnersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "owners",
		Aliases: []string{"owner"},
		Short:   "Manage owners",
		Long:    "List owners and resolve them against account users",
	}

	cmd.AddCommand(newOwnersListCommand())
	cmd.AddCommand(newOwnersGetCommand())
	cmd.AddCommand(newOwnersResolveCommand())

	return cmd
}

func newOwnersListCommand() *cobra.Command {
	var (
		limit    int
		email    string
		archived bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List owners",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := hubspot.NewQueryParams().WithArchived(archived)
			if limit > 0 {
				params.WithLimit(limit)
			}

			if email != "" {
				params.WithEmail(email)
			}

			owners, err := client.Owners().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list owners: %w", err)
			}

			return renderOutput(owners, func() error {
				return renderOwnersTable(owners)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().StringVar(&email, "email", "", "filter by owner email")
	cmd.Flags().BoolVar(&archived, "archived", false, "list archived owners")

	return cmd
}

func newOwnersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OWNER-ID",
		Short: "Get an owner by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			owner, err := client.Owners().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get owner: %w", err)
			}

			return renderOutput(owner, func() error {
				return renderOwnersTable([]hubspot.Owner{*owner})
			})
		},
	}
}

func newOwnersResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve OWNER-ID",
		Short: "Resolve an owner against account users",
		Long: `Resolve an owner against account users.

Looks the owner up among active owners first, then among archived
owners, and cross-references the account user list by internal user
id. The user half is empty when no account user matches.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resolved, err := client.Owners().Resolve(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve owner: %w", err)
			}

			return renderOutput(resolved, func() error {
				owner := resolved.Owner
				fmt.Printf("Owner:    %s %s <%s> (id %s, archived %t)\n",
					owner.FirstName, owner.LastName, owner.Email, owner.ID, owner.Archived)

				if resolved.User != nil {
					fmt.Printf("User:     %s %s <%s> (id %s)\n",
						resolved.User.FirstName, resolved.User.LastName, resolved.User.Email, resolved.User.ID)
				} else {
					fmt.Println("User:     no matching account user")
				}

				return nil
			})
		},
	}
}

func renderOwnersTable(owners []hubspot.Owner) error {
	if len(owners) == 0 {
		fmt.Println("No owners found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "User ID", "Archived")

	for _, o := range owners {
		name := fmt.Sprintf("%s %s", o.FirstName, o.LastName)
		_ = table.Append(o.ID, name, o.Email, fmt.Sprintf("%d", o.UserID), fmt.Sprintf("%t", o.Archived))
	}

	return table.Render()
}
