package uc

import (
	"context"
	"errors"

	"github.com/canvasflow/canvasflow/engine/agent"
	"github.com/canvasflow/canvasflow/engine/core"
	"github.com/canvasflow/canvasflow/engine/workflow"
)

type ToggleFeedbackInput struct {
	NodeID   string
	Kind     agent.FeedbackKind
	Positive bool
}

// ToggleFeedback applies one feedback-button click to an agent node.
// Feedback is orthogonal to the lifecycle and may be toggled in any state.
type ToggleFeedback struct {
	graph *workflow.Graph
}

func NewToggleFeedback(graph *workflow.Graph) *ToggleFeedback {
	return &ToggleFeedback{graph: graph}
}

func (uc *ToggleFeedback) Execute(_ context.Context, in *ToggleFeedbackInput) error {
	if in == nil || in.NodeID == "" {
		return errors.Join(
			ErrInvalidInput,
			core.NewError(nil, "INVALID_INPUT", map[string]any{"reason": "node id is required"}),
		)
	}
	node, ok := uc.graph.Node(in.NodeID)
	if !ok {
		return errors.Join(
			ErrNotFound,
			core.NewError(nil, "UNKNOWN_NODE", map[string]any{"node_id": in.NodeID}),
		)
	}
	if node.Kind != workflow.KindAgent {
		return errors.Join(
			ErrInvalidInput,
			core.NewError(nil, "NOT_AN_AGENT", map[string]any{"node_id": in.NodeID, "kind": node.Kind}),
		)
	}
	if err := node.Agent.Feedback.Toggle(in.Kind, in.Positive); err != nil {
		return errors.Join(
			ErrInvalidInput,
			core.NewError(err, "UNKNOWN_FEEDBACK_KIND", map[string]any{"kind": in.Kind}),
		)
	}
	return nil
}
