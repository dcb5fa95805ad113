package uc

import (
	"context"
	"errors"

	"github.com/canvasflow/canvasflow/engine/core"
	"github.com/canvasflow/canvasflow/engine/workflow"
	"github.com/canvasflow/canvasflow/pkg/logger"
)

type AddNodeInput struct {
	Node *workflow.Node
}

// AddNode is the single entry point for inserting a node, shared by
// interactive drops and the imperative add-node surface alike. Both paths
// hit the same uniqueness check inside the graph.
type AddNode struct {
	graph *workflow.Graph
}

func NewAddNode(graph *workflow.Graph) *AddNode {
	return &AddNode{graph: graph}
}

func (uc *AddNode) Execute(ctx context.Context, in *AddNodeInput) error {
	if in == nil || in.Node == nil {
		return errors.Join(
			ErrInvalidInput,
			core.NewError(nil, "INVALID_INPUT", map[string]any{"reason": "node cannot be nil"}),
		)
	}
	if err := uc.graph.AddNode(in.Node); err != nil {
		if errors.Is(err, workflow.ErrDuplicateID) {
			return errors.Join(
				ErrConflict,
				core.NewError(err, "DUPLICATE_ID", map[string]any{"node_id": in.Node.ID}),
			)
		}
		return errors.Join(
			ErrInvalidInput,
			core.NewError(err, "INVALID_NODE", map[string]any{"node_id": in.Node.ID}),
		)
	}
	logger.FromContext(ctx).Debug("node added", "node_id", in.Node.ID, "kind", in.Node.Kind)
	return nil
}
