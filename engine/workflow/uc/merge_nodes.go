package uc

import (
	"context"

	"github.com/canvasflow/canvasflow/engine/workflow"
	"github.com/canvasflow/canvasflow/pkg/logger"
)

type MergeNodesInput struct {
	Nodes []*workflow.Node
}

// MergeNodes folds externally supplied nodes into the graph. Nodes whose ID
// already exists are skipped, so replays of the same batch are harmless.
type MergeNodes struct {
	graph *workflow.Graph
}

func NewMergeNodes(graph *workflow.Graph) *MergeNodes {
	return &MergeNodes{graph: graph}
}

func (uc *MergeNodes) Execute(ctx context.Context, in *MergeNodesInput) error {
	if in == nil || len(in.Nodes) == 0 {
		return nil
	}
	before := uc.graph.Len()
	uc.graph.MergeExternalNodes(in.Nodes)
	logger.FromContext(ctx).Debug("external nodes merged",
		"offered", len(in.Nodes),
		"accepted", uc.graph.Len()-before,
	)
	return nil
}
