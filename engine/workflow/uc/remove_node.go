package uc

import (
	"context"
	"errors"

	"github.com/canvasflow/canvasflow/engine/core"
	"github.com/canvasflow/canvasflow/engine/workflow"
)

type RemoveNodeInput struct {
	ID string
}

// RemoveNode deletes a node. Removal is idempotent; asking to remove an
// absent node is not an error. Incident edges stay behind and surface
// through the snapshot's dangling-edge view.
type RemoveNode struct {
	graph *workflow.Graph
}

func NewRemoveNode(graph *workflow.Graph) *RemoveNode {
	return &RemoveNode{graph: graph}
}

func (uc *RemoveNode) Execute(_ context.Context, in *RemoveNodeInput) error {
	if in == nil || in.ID == "" {
		return errors.Join(
			ErrInvalidInput,
			core.NewError(nil, "INVALID_INPUT", map[string]any{"reason": "node id is required"}),
		)
	}
	uc.graph.RemoveNode(in.ID)
	return nil
}
