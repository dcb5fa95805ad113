package uc

import (
	"context"

	"github.com/canvasflow/canvasflow/engine/core"
	"github.com/canvasflow/canvasflow/engine/workflow"
)

type GetSnapshotOutput struct {
	Snapshot *workflow.Snapshot
	// Dangling lists edges whose endpoints no longer resolve, since node
	// removal does not cascade. The rendering layer filters them out.
	Dangling []workflow.Edge
}

// GetSnapshot returns the read-only graph view handed to the rendering layer
// after every mutation.
type GetSnapshot struct {
	graph *workflow.Graph
}

func NewGetSnapshot(graph *workflow.Graph) *GetSnapshot {
	return &GetSnapshot{graph: graph}
}

func (uc *GetSnapshot) Execute(_ context.Context) (*GetSnapshotOutput, error) {
	snap, err := uc.graph.Snapshot()
	if err != nil {
		return nil, core.NewError(err, "SNAPSHOT_FAILED", nil)
	}
	return &GetSnapshotOutput{
		Snapshot: snap,
		Dangling: uc.graph.DanglingEdges(),
	}, nil
}
