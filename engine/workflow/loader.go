package workflow

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/canvasflow/canvasflow/engine/agent"
	"github.com/canvasflow/canvasflow/engine/trigger"
)

// -----------------------------------------------------------------------------
// Definition
// -----------------------------------------------------------------------------

// Definition is the YAML form of a workflow used to seed or import a canvas.
// It builds a graph through the same AddNode/Connect paths as interactive
// editing, so every invariant holds for loaded workflows too.
type Definition struct {
	Name     string           `yaml:"name"               validate:"required"`
	Defaults NodeDefaults     `yaml:"defaults,omitempty"`
	Nodes    []NodeDefinition `yaml:"nodes"              validate:"required,min=1,dive"`
	Edges    []EdgeDefinition `yaml:"edges,omitempty"    validate:"dive"`
}

// NodeDefaults are file-level defaults merged into every agent node
// declaration that leaves the field empty.
type NodeDefaults struct {
	Model  string `yaml:"model,omitempty"`
	Prompt string `yaml:"prompt,omitempty"`
}

type NodeDefinition struct {
	ID        string        `yaml:"id"                   validate:"required"`
	Kind      Kind          `yaml:"kind"                 validate:"required,oneof=start trigger agent"`
	Label     string        `yaml:"label,omitempty"`
	AgentType string        `yaml:"agent_type,omitempty"`
	Prompt    string        `yaml:"prompt,omitempty"`
	Model     string        `yaml:"model,omitempty"`
	Position  Position      `yaml:"position"`
	Trigger   *trigger.Spec `yaml:"trigger,omitempty"`
}

type EdgeDefinition struct {
	Source       string `yaml:"source"                  validate:"required"`
	Target       string `yaml:"target"                  validate:"required"`
	SourceHandle string `yaml:"source_handle,omitempty"`
}

// LoadDefinition reads and validates a workflow definition file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow definition: %w", err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse workflow definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks structural validity plus the per-kind rules the struct tags
// cannot express: agent nodes need a known agent type, trigger schedules must
// compile to a parseable expression.
func (d *Definition) Validate() error {
	if err := validator.New().Struct(d); err != nil {
		return fmt.Errorf("workflow definition validation failed: %w", err)
	}
	for i := range d.Nodes {
		n := &d.Nodes[i]
		switch n.Kind {
		case KindAgent:
			if _, err := agent.ParseType(n.AgentType); err != nil {
				return fmt.Errorf("node %s: %w", n.ID, err)
			}
		case KindTrigger:
			if n.Trigger == nil {
				return fmt.Errorf("node %s: trigger node requires a trigger block", n.ID)
			}
			if err := trigger.Compile(&n.Trigger.Schedule).Validate(); err != nil {
				return fmt.Errorf("node %s: %w", n.ID, err)
			}
		}
	}
	return nil
}

// Build constructs a graph from the definition. Agent declarations start from
// the catalog default for their type; file-level defaults and then per-node
// overrides are merged on top.
func (d *Definition) Build() (*Graph, error) {
	g := NewGraph()
	for i := range d.Nodes {
		node, err := d.buildNode(&d.Nodes[i])
		if err != nil {
			return nil, err
		}
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("failed to add node %s: %w", node.ID, err)
		}
	}
	for _, e := range d.Edges {
		if _, err := g.Connect(e.Source, e.Target, e.SourceHandle); err != nil {
			return nil, fmt.Errorf("failed to connect %s -> %s: %w", e.Source, e.Target, err)
		}
	}
	return g, nil
}

func (d *Definition) buildNode(def *NodeDefinition) (*Node, error) {
	switch def.Kind {
	case KindStart:
		label := def.Label
		if label == "" {
			label = "Start"
		}
		return NewStartNode(def.ID, label, def.Position), nil
	case KindTrigger:
		return NewTriggerNode(def.ID, def.Trigger, def.Position), nil
	case KindAgent:
		at, err := agent.ParseType(def.AgentType)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", def.ID, err)
		}
		inst, err := agent.NewInstance(at, def.ID)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", def.ID, err)
		}
		overrides := &agent.Instance{Prompt: def.Prompt, Model: def.Model}
		if overrides.Prompt == "" {
			overrides.Prompt = d.Defaults.Prompt
		}
		if overrides.Model == "" {
			overrides.Model = d.Defaults.Model
		}
		if err := mergo.Merge(inst, overrides, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("node %s: failed to merge overrides: %w", def.ID, err)
		}
		return NewAgentNode(def.ID, inst, def.Position), nil
	default:
		return nil, fmt.Errorf("node %s has unknown kind %q", def.ID, def.Kind)
	}
}
