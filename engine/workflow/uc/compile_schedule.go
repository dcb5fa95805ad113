package uc

import (
	"context"
	"errors"

	"github.com/canvasflow/canvasflow/engine/core"
	"github.com/canvasflow/canvasflow/engine/trigger"
	"github.com/canvasflow/canvasflow/engine/workflow"
)

type CompileScheduleInput struct {
	NodeID string
}

type CompileScheduleOutput struct {
	Expression trigger.Expression
}

// CompileSchedule recomputes the schedule expression for a trigger node on
// demand, so the result is always consistent with the latest spec. A
// disabled schedule yields the Disabled expression, not an error.
type CompileSchedule struct {
	graph *workflow.Graph
}

func NewCompileSchedule(graph *workflow.Graph) *CompileSchedule {
	return &CompileSchedule{graph: graph}
}

func (uc *CompileSchedule) Execute(_ context.Context, in *CompileScheduleInput) (*CompileScheduleOutput, error) {
	if in == nil || in.NodeID == "" {
		return nil, errors.Join(
			ErrInvalidInput,
			core.NewError(nil, "INVALID_INPUT", map[string]any{"reason": "node id is required"}),
		)
	}
	node, ok := uc.graph.Node(in.NodeID)
	if !ok {
		return nil, errors.Join(
			ErrNotFound,
			core.NewError(nil, "UNKNOWN_NODE", map[string]any{"node_id": in.NodeID}),
		)
	}
	if node.Kind != workflow.KindTrigger {
		return nil, errors.Join(
			ErrInvalidInput,
			core.NewError(nil, "NOT_A_TRIGGER", map[string]any{"node_id": in.NodeID, "kind": node.Kind}),
		)
	}
	return &CompileScheduleOutput{Expression: trigger.Compile(&node.Trigger.Schedule)}, nil
}
