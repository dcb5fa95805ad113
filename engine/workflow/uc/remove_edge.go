package uc

import (
	"context"
	"errors"

	"github.com/canvasflow/canvasflow/engine/core"
	"github.com/canvasflow/canvasflow/engine/workflow"
)

type RemoveEdgeInput struct {
	ID string
}

// RemoveEdge deletes an edge. Like node removal it is idempotent; removing
// an edge that no longer exists is not an error.
type RemoveEdge struct {
	graph *workflow.Graph
}

func NewRemoveEdge(graph *workflow.Graph) *RemoveEdge {
	return &RemoveEdge{graph: graph}
}

func (uc *RemoveEdge) Execute(_ context.Context, in *RemoveEdgeInput) error {
	if in == nil || in.ID == "" {
		return errors.Join(
			ErrInvalidInput,
			core.NewError(nil, "INVALID_INPUT", map[string]any{"reason": "edge id is required"}),
		)
	}
	uc.graph.RemoveEdge(in.ID)
	return nil
}
