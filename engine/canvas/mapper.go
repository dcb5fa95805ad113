package canvas

import (
	"fmt"
	"time"

	"github.com/canvasflow/canvasflow/engine/agent"
	"github.com/canvasflow/canvasflow/engine/core"
	"github.com/canvasflow/canvasflow/engine/trigger"
	"github.com/canvasflow/canvasflow/engine/workflow"
)

// TriggerToken is the drag token that produces a trigger node instead of an
// agent node.
const TriggerToken = "trigger"

// ScreenPoint is a point in screen coordinates as reported by a drop event.
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport is the pan/zoom transform of the canvas at the time of the drop.
type Viewport struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// ToCanvas converts a screen-space point into canvas space by inverting the
// viewport transform. A zero zoom is treated as 1 so a degenerate viewport
// never divides by zero.
func (v Viewport) ToCanvas(p ScreenPoint) workflow.Position {
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 1
	}
	return workflow.Position{
		X: (p.X - v.X) / zoom,
		Y: (p.Y - v.Y) / zoom,
	}
}

// Mapper turns drop events into graph nodes. Node construction is delegated
// to the agent catalog and the trigger defaults; the mapper itself only maps
// coordinates and tokens.
type Mapper struct {
	now func() time.Time
}

func NewMapper() *Mapper {
	return &Mapper{now: time.Now}
}

// NewMapperWithClock pins the mapper's clock, for tests.
func NewMapperWithClock(now func() time.Time) *Mapper {
	return &Mapper{now: now}
}

// PlaceDrop builds the node for a drop event at the correct canvas
// coordinate. The generated node ID is the dragged token plus a KSUID, so it
// embeds a timestamp and a random suffix; the graph's own uniqueness check
// remains the authoritative guard.
func (m *Mapper) PlaceDrop(screen ScreenPoint, token string, vp Viewport) (*workflow.Node, error) {
	pos := vp.ToCanvas(screen)
	id := fmt.Sprintf("%s-%s", token, core.MustNewID())
	if token == TriggerToken {
		return workflow.NewTriggerNode(id, trigger.NewSpec(m.now()), pos), nil
	}
	at, err := agent.ParseType(token)
	if err != nil {
		return nil, fmt.Errorf("cannot place drop: %w", err)
	}
	inst, err := agent.NewInstance(at, id)
	if err != nil {
		return nil, fmt.Errorf("cannot place drop: %w", err)
	}
	return workflow.NewAgentNode(id, inst, pos), nil
}
