package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/hublink-io/hubspot-client/internal/constants"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPipelinesCommand creates the pipelines command group.
func NewPipelinesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pipelines",
		Aliases: []string{"pipeline"},
		Short:   "Manage pipelines",
		Long:    "List, inspect, and manage pipelines for a CRM object type",
	}

	cmd.AddCommand(newPipelinesListCommand())
	cmd.AddCommand(newPipelinesGetCommand())
	cmd.AddCommand(newPipelinesStagesCommand())
	cmd.AddCommand(newPipelinesCreateCommand())
	cmd.AddCommand(newPipelinesUpdateCommand())
	cmd.AddCommand(newPipelinesDeleteCommand())

	return cmd
}

func resolveObjectType(arg string) (hubspot.ObjectType, error) {
	objectType := hubspot.ObjectType(arg)
	if !hubspot.ValidObjectType(objectType) {
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidObjectType, arg)
	}

	return objectType, nil
}

func newPipelinesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list OBJECT-TYPE",
		Short: "List pipelines for an object type",
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

			pipelines, err := client.Pipelines().List(context.Background(), objectType)
			if err != nil {
				return fmt.Errorf("failed to list pipelines: %w", err)
			}

			return renderOutput(pipelines, func() error {
				return renderPipelinesTable(pipelines)
			})
		},
	}
}

func newPipelinesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get OBJECT-TYPE PIPELINE-ID",
		Short: "Get a pipeline",
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

			pipeline, err := client.Pipelines().Get(context.Background(), objectType, args[1])
			if err != nil {
				return fmt.Errorf("failed to get pipeline: %w", err)
			}

			return renderOutput(pipeline, func() error {
				fmt.Printf("Pipeline: %s (%s)\n\n", pipeline.Label, pipeline.ID)

				return renderStagesTable(pipeline.Stages)
			})
		},
	}
}

func newPipelinesStagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stages OBJECT-TYPE PIPELINE-ID",
		Short: "List the stages of a pipeline",
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

			stages, err := client.Pipelines().ListStages(context.Background(), objectType, args[1])
			if err != nil {
				return fmt.Errorf("failed to list stages: %w", err)
			}

			return renderOutput(stages, func() error {
				return renderStagesTable(stages)
			})
		},
	}
}

func newPipelinesCreateCommand() *cobra.Command {
	var (
		label  string
		stages []string
	)

	cmd := &cobra.Command{
		Use:   "create OBJECT-TYPE",
		Short: "Create a pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			objectType, err := resolveObjectType(args[0])
			if err != nil {
				return err
			}

			request := &hubspot.PipelineCreateRequest{Label: label}
			for i, stage := range stages {
				request.Stages = append(request.Stages, hubspot.PipelineStageInput{
					Label:        stage,
					DisplayOrder: i,
				})
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			pipeline, err := client.Pipelines().Create(context.Background(), objectType, request)
			if err != nil {
				return fmt.Errorf("failed to create pipeline: %w", err)
			}

			return renderOutput(pipeline, func() error {
				fmt.Printf("Created pipeline %s (%s)\n", pipeline.Label, pipeline.ID)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "pipeline label")
	cmd.Flags().StringSliceVar(&stages, "stage", nil, "stage label in display order (repeatable)")
	_ = cmd.MarkFlagRequired("label")
	_ = cmd.MarkFlagRequired("stage")

	return cmd
}

func newPipelinesUpdateCommand() *cobra.Command {
	var (
		label  string
		stages []string
	)

	cmd := &cobra.Command{
		Use:   "update OBJECT-TYPE PIPELINE-ID",
		Short: "Update a pipeline's label and stages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			objectType, err := resolveObjectType(args[0])
			if err != nil {
				return err
			}

			request := &hubspot.PipelineCreateRequest{Label: label}
			for i, stage := range stages {
				request.Stages = append(request.Stages, hubspot.PipelineStageInput{
					Label:        stage,
					DisplayOrder: i,
				})
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			pipeline, err := client.Pipelines().Update(context.Background(), objectType, args[1], request)
			if err != nil {
				return fmt.Errorf("failed to update pipeline: %w", err)
			}

			return renderOutput(pipeline, func() error {
				fmt.Printf("Updated pipeline %s (%s)\n", pipeline.Label, pipeline.ID)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "pipeline label")
	cmd.Flags().StringSliceVar(&stages, "stage", nil, "stage label in display order (repeatable)")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func newPipelinesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete OBJECT-TYPE PIPELINE-ID",
		Short: "Delete a pipeline",
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

			err = client.Pipelines().Delete(context.Background(), objectType, args[1])
			if err != nil {
				return fmt.Errorf("failed to delete pipeline: %w", err)
			}

			fmt.Printf("Deleted pipeline %s\n", args[1])

			return nil
		},
	}
}

func renderPipelinesTable(pipelines []hubspot.Pipeline) error {
	if len(pipelines) == 0 {
		fmt.Println("No pipelines found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Label", "Stages", "Updated")

	for _, p := range pipelines {
		_ = table.Append(p.ID, p.Label, fmt.Sprintf("%d", len(p.Stages)), p.UpdatedAt.Format(timeFormat))
	}

	return table.Render()
}

func renderStagesTable(stages []hubspot.PipelineStage) error {
	if len(stages) == 0 {
		fmt.Println("No stages found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Label", "Order")

	for _, s := range stages {
		_ = table.Append(s.ID, s.Label, fmt.Sprintf("%d", s.DisplayOrder))
	}

	return table.Render()
}
