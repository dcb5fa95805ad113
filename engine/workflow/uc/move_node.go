package uc

import (
	"context"
	"errors"

	"github.com/canvasflow/canvasflow/engine/core"
	"github.com/canvasflow/canvasflow/engine/workflow"
)

type MoveNodeInput struct {
	ID       string
	Position workflow.Position
}

// MoveNode updates a node's canvas position after a drag.
type MoveNode struct {
	graph *workflow.Graph
}

func NewMoveNode(graph *workflow.Graph) *MoveNode {
	return &MoveNode{graph: graph}
}

func (uc *MoveNode) Execute(_ context.Context, in *MoveNodeInput) error {
	if in == nil || in.ID == "" {
		return errors.Join(
			ErrInvalidInput,
			core.NewError(nil, "INVALID_INPUT", map[string]any{"reason": "node id is required"}),
		)
	}
	if err := uc.graph.UpdateNodePosition(in.ID, in.Position); err != nil {
		return errors.Join(
			ErrNotFound,
			core.NewError(err, "UNKNOWN_NODE", map[string]any{"node_id": in.ID}),
		)
	}
	return nil
}
