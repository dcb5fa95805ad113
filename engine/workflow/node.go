package workflow

import (
	"fmt"

	"github.com/canvasflow/canvasflow/engine/agent"
	"github.com/canvasflow/canvasflow/engine/trigger"
)

// -----------------------------------------------------------------------------
// Node
// -----------------------------------------------------------------------------

// Kind discriminates the node union.
type Kind string

const (
	// KindStart is the terminal no-op source node; it carries only a label.
	KindStart Kind = "start"
	// KindTrigger carries the firing condition for the rest of the graph.
	KindTrigger Kind = "trigger"
	// KindAgent carries one automatable task unit.
	KindAgent Kind = "agent"
)

// Position is a point in canvas coordinates, not screen coordinates.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Node is one element of the workflow graph, tagged by Kind. Exactly one of
// Trigger and Agent is set, matching the kind; start nodes carry neither.
type Node struct {
	ID         string          `json:"id"`
	Kind       Kind            `json:"kind"`
	Label      string          `json:"label,omitempty"`
	Position   Position        `json:"position"`
	Draggable  bool            `json:"draggable"`
	Selectable bool            `json:"selectable"`
	Trigger    *trigger.Spec   `json:"trigger,omitempty"`
	Agent      *agent.Instance `json:"agent,omitempty"`
}

// NewStartNode builds the fixed entry node of a canvas. It is pinned in
// place and cannot be selected.
func NewStartNode(id, label string, pos Position) *Node {
	return &Node{
		ID:       id,
		Kind:     KindStart,
		Label:    label,
		Position: pos,
	}
}

func NewTriggerNode(id string, spec *trigger.Spec, pos Position) *Node {
	return &Node{
		ID:         id,
		Kind:       KindTrigger,
		Label:      "Trigger",
		Position:   pos,
		Draggable:  true,
		Selectable: true,
		Trigger:    spec,
	}
}

func NewAgentNode(id string, inst *agent.Instance, pos Position) *Node {
	return &Node{
		ID:         id,
		Kind:       KindAgent,
		Label:      inst.Label,
		Position:   pos,
		Draggable:  true,
		Selectable: true,
		Agent:      inst,
	}
}

// Validate checks the kind/payload consistency of the union.
func (n *Node) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("node id is required")
	}
	switch n.Kind {
	case KindStart:
		if n.Trigger != nil || n.Agent != nil {
			return fmt.Errorf("start node %s must not carry trigger or agent data", n.ID)
		}
	case KindTrigger:
		if n.Trigger == nil {
			return fmt.Errorf("trigger node %s is missing its trigger spec", n.ID)
		}
		if n.Agent != nil {
			return fmt.Errorf("trigger node %s must not carry agent data", n.ID)
		}
	case KindAgent:
		if n.Agent == nil {
			return fmt.Errorf("agent node %s is missing its agent instance", n.ID)
		}
		if n.Trigger != nil {
			return fmt.Errorf("agent node %s must not carry trigger data", n.ID)
		}
	default:
		return fmt.Errorf("node %s has unknown kind %q", n.ID, n.Kind)
	}
	return nil
}
