package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPropertiesCommand creates the properties command group.
func NewPropertiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "properties",
		Aliases: []string{"props"},
		Short:   "Manage property definitions",
		Long:    "List, inspect, and manage CRM property definitions",
	}

	cmd.AddCommand(newPropertiesListCommand())
	cmd.AddCommand(newPropertiesGetCommand())
	cmd.AddCommand(newPropertiesCreateCommand())
	cmd.AddCommand(newPropertiesUpdateCommand())
	cmd.AddCommand(newPropertiesDeleteCommand())

	return cmd
}

func newPropertiesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list OBJECT-TYPE",
		Short: "List property definitions for an object type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			objectType, err := resolveObjectType(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			properties, err := client.Properties().List(context.Background(), objectType)
			if err != nil {
				return fmt.Errorf("failed to list properties: %w", err)
			}

			return renderOutput(properties, func() error {
				return renderPropertiesTable(properties)
			})
		},
	}
}

func newPropertiesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OBJECT-TYPE NAME",
		Short: "Get a property definition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			objectType, err := resolveObjectType(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			property, err := client.Properties().Get(context.Background(), objectType, args[1])
			if err != nil {
				return fmt.Errorf("failed to get property: %w", err)
			}

			return renderOutput(property, func() error {
				return renderPropertiesTable([]hubspot.Property{*property})
			})
		},
	}
}

func newPropertiesCreateCommand() *cobra.Command {
	var (
		label       string
		propType    string
		fieldType   string
		groupName   string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create OBJECT-TYPE NAME",
		Short: "Create a property definition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			objectType, err := resolveObjectType(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			property, err := client.Properties().Create(context.Background(), objectType, &hubspot.PropertyCreateRequest{
				Name:        args[1],
				Label:       label,
				Type:        propType,
				FieldType:   fieldType,
				GroupName:   groupName,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create property: %w", err)
			}

			return renderOutput(property, func() error {
				fmt.Printf("Created property %s\n", property.Name)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "display label")
	cmd.Flags().StringVar(&propType, "type", "string", "data type (string, number, date, enumeration)")
	cmd.Flags().StringVar(&fieldType, "field-type", "text", "form field type (text, number, select)")
	cmd.Flags().StringVar(&groupName, "group", "", "property group")
	cmd.Flags().StringVar(&description, "description", "", "property description")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func newPropertiesUpdateCommand() *cobra.Command {
	var (
		label       string
		groupName   string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update OBJECT-TYPE NAME",
		Short: "Update a property definition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			objectType, err := resolveObjectType(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			property, err := client.Properties().Update(context.Background(), objectType, args[1], &hubspot.PropertyCreateRequest{
				Label:       label,
				GroupName:   groupName,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to update property: %w", err)
			}

			return renderOutput(property, func() error {
				fmt.Printf("Updated property %s\n", property.Name)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "display label")
	cmd.Flags().StringVar(&groupName, "group", "", "property group")
	cmd.Flags().StringVar(&description, "description", "", "property description")

	return cmd
}

func newPropertiesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete OBJECT-TYPE NAME",
		Short: "Archive a property definition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			objectType, err := resolveObjectType(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Properties().Delete(context.Background(), objectType, args[1])
			if err != nil {
				return fmt.Errorf("failed to delete property: %w", err)
			}

			fmt.Printf("Deleted property %s\n", args[1])

			return nil
		},
	}
}

func renderPropertiesTable(properties []hubspot.Property) error {
	if len(properties) == 0 {
		fmt.Println("No properties found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Label", "Type", "Field Type", "Group")

	for _, p := range properties {
		_ = table.Append(p.Name, p.Label, p.Type, p.FieldType, p.GroupName)
	}

	return table.Render()
}
