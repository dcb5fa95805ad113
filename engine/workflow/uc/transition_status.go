package uc

import (
	"context"
	"errors"
	"time"

	"github.com/canvasflow/canvasflow/engine/agent"
	"github.com/canvasflow/canvasflow/engine/core"
	"github.com/canvasflow/canvasflow/engine/workflow"
	"github.com/canvasflow/canvasflow/pkg/logger"
)

type TransitionStatusInput struct {
	NodeID string
	Status agent.Status
	// Reason is required when requesting INTERVENTION and ignored otherwise.
	Reason string
}

// TransitionStatus applies one lifecycle transition request to an agent
// node. Rejected requests leave the node's prior state untouched.
type TransitionStatus struct {
	graph *workflow.Graph
	now   func() time.Time
}

func NewTransitionStatus(graph *workflow.Graph) *TransitionStatus {
	return &TransitionStatus{graph: graph, now: time.Now}
}

func (uc *TransitionStatus) Execute(ctx context.Context, in *TransitionStatusInput) error {
	if in == nil || in.NodeID == "" {
		return errors.Join(
			ErrInvalidInput,
			core.NewError(nil, "INVALID_INPUT", map[string]any{"reason": "node id is required"}),
		)
	}
	inst, err := uc.agentInstance(in.NodeID)
	if err != nil {
		return err
	}
	from := inst.Status
	switch in.Status {
	case agent.StatusRunning:
		err = inst.MarkRunning()
	case agent.StatusSuccess:
		err = inst.MarkSuccess(uc.now())
	case agent.StatusIntervention:
		err = inst.MarkIntervention(in.Reason)
	default:
		return errors.Join(
			ErrInvalidTransition,
			core.NewError(nil, "INVALID_TRANSITION", map[string]any{
				"node_id": in.NodeID,
				"from":    from,
				"to":      in.Status,
			}),
		)
	}
	if err != nil {
		return errors.Join(
			ErrInvalidTransition,
			core.NewError(err, "INVALID_TRANSITION", map[string]any{
				"node_id": in.NodeID,
				"from":    from,
				"to":      in.Status,
			}),
		)
	}
	logger.FromContext(ctx).Info("agent status changed",
		"node_id", in.NodeID,
		"from", from,
		"to", in.Status,
	)
	return nil
}

func (uc *TransitionStatus) agentInstance(nodeID string) (*agent.Instance, error) {
	node, ok := uc.graph.Node(nodeID)
	if !ok {
		return nil, errors.Join(
			ErrNotFound,
			core.NewError(nil, "UNKNOWN_NODE", map[string]any{"node_id": nodeID}),
		)
	}
	if node.Kind != workflow.KindAgent {
		return nil, errors.Join(
			ErrInvalidInput,
			core.NewError(nil, "NOT_AN_AGENT", map[string]any{"node_id": nodeID, "kind": node.Kind}),
		)
	}
	return node.Agent, nil
}
