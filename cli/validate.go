package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canvasflow/canvasflow/engine/workflow"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a workflow definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := workflow.LoadDefinition(args[0])
			if err != nil {
				return fmt.Errorf("definition is invalid: %w", err)
			}
			graph, err := def.Build()
			if err != nil {
				return fmt.Errorf("definition does not build: %w", err)
			}
			if dangling := graph.DanglingEdges(); len(dangling) > 0 {
				return fmt.Errorf("definition has %d dangling edge(s)", len(dangling))
			}
			cmd.Printf("%s: %d node(s), valid\n", def.Name, graph.Len())
			return nil
		},
	}
}
