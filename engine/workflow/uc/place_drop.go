package uc

import (
	"context"
	"errors"

	"github.com/canvasflow/canvasflow/engine/canvas"
	"github.com/canvasflow/canvasflow/engine/core"
	"github.com/canvasflow/canvasflow/engine/workflow"
)

type PlaceDropInput struct {
	Screen   canvas.ScreenPoint
	Token    string
	Viewport canvas.Viewport
}

type PlaceDropOutput struct {
	Node *workflow.Node
}

// PlaceDrop turns a drop event into a node and inserts it through the same
// AddNode path as every other construction route.
type PlaceDrop struct {
	graph   *workflow.Graph
	mapper  *canvas.Mapper
	addNode *AddNode
}

func NewPlaceDrop(graph *workflow.Graph, mapper *canvas.Mapper) *PlaceDrop {
	return &PlaceDrop{graph: graph, mapper: mapper, addNode: NewAddNode(graph)}
}

func (uc *PlaceDrop) Execute(ctx context.Context, in *PlaceDropInput) (*PlaceDropOutput, error) {
	if in == nil || in.Token == "" {
		return nil, errors.Join(
			ErrInvalidInput,
			core.NewError(nil, "INVALID_INPUT", map[string]any{"reason": "drag token is required"}),
		)
	}
	node, err := uc.mapper.PlaceDrop(in.Screen, in.Token, in.Viewport)
	if err != nil {
		return nil, errors.Join(
			ErrInvalidInput,
			core.NewError(err, "UNKNOWN_DRAG_TOKEN", map[string]any{"token": in.Token}),
		)
	}
	if err := uc.addNode.Execute(ctx, &AddNodeInput{Node: node}); err != nil {
		return nil, err
	}
	return &PlaceDropOutput{Node: node}, nil
}
