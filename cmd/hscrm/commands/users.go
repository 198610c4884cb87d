package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage account users",
	}

	cmd.AddCommand(newUsersListCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List account users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			users, err := client.Users().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			return renderOutput(users, func() error {
				if len(users) == 0 {
					fmt.Println("No users found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Email")

				for _, u := range users {
					name := fmt.Sprintf("%s %s", u.FirstName, u.LastName)
					_ = table.Append(u.ID, name, u.Email)
				}

				return table.Render()
			})
		},
	}
}
