package uc

import (
	"context"
	"errors"

	"github.com/canvasflow/canvasflow/engine/core"
	"github.com/canvasflow/canvasflow/engine/workflow"
)

type ConnectNodesInput struct {
	Source       string
	Target       string
	SourceHandle string
}

type ConnectNodesOutput struct {
	Edge workflow.Edge
}

// ConnectNodes draws an edge between two existing nodes.
type ConnectNodes struct {
	graph *workflow.Graph
}

func NewConnectNodes(graph *workflow.Graph) *ConnectNodes {
	return &ConnectNodes{graph: graph}
}

func (uc *ConnectNodes) Execute(_ context.Context, in *ConnectNodesInput) (*ConnectNodesOutput, error) {
	if in == nil || in.Source == "" || in.Target == "" {
		return nil, errors.Join(
			ErrInvalidInput,
			core.NewError(nil, "INVALID_INPUT", map[string]any{"reason": "source and target are required"}),
		)
	}
	edge, err := uc.graph.Connect(in.Source, in.Target, in.SourceHandle)
	if err != nil {
		return nil, errors.Join(
			ErrNotFound,
			core.NewError(err, "UNKNOWN_NODE", map[string]any{"source": in.Source, "target": in.Target}),
		)
	}
	return &ConnectNodesOutput{Edge: edge}, nil
}
