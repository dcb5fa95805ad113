package canvas_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvasflow/canvasflow/engine/agent"
	"github.com/canvasflow/canvasflow/engine/canvas"
	"github.com/canvasflow/canvasflow/engine/trigger"
	"github.com/canvasflow/canvasflow/engine/workflow"
)

func TestViewport_ToCanvas(t *testing.T) {
	t.Run("Should invert pan and zoom", func(t *testing.T) {
		vp := canvas.Viewport{X: 100, Y: 50, Zoom: 2}
		pos := vp.ToCanvas(canvas.ScreenPoint{X: 300, Y: 250})
		assert.Equal(t, workflow.Position{X: 100, Y: 100}, pos)
	})
	t.Run("Should treat zero zoom as identity scale", func(t *testing.T) {
		vp := canvas.Viewport{X: 10, Y: 20}
		pos := vp.ToCanvas(canvas.ScreenPoint{X: 30, Y: 50})
		assert.Equal(t, workflow.Position{X: 20, Y: 30}, pos)
	})
}

func TestMapper_PlaceDrop(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	mapper := canvas.NewMapperWithClock(func() time.Time { return now })

	t.Run("Should build a trigger node with fresh defaults", func(t *testing.T) {
		node, err := mapper.PlaceDrop(canvas.ScreenPoint{X: 40, Y: 60}, canvas.TriggerToken, canvas.Viewport{Zoom: 1})
		require.NoError(t, err)
		assert.Equal(t, workflow.KindTrigger, node.Kind)
		assert.True(t, strings.HasPrefix(node.ID, "trigger-"))
		require.NotNil(t, node.Trigger)
		assert.False(t, node.Trigger.Schedule.Enabled)
		assert.True(t, node.Trigger.Schedule.RunOnce)
		require.NotNil(t, node.Trigger.Schedule.Date)
		assert.Equal(t, trigger.Date{Year: 2025, Month: time.June, Day: 15}, *node.Trigger.Schedule.Date)
		assert.Equal(t, workflow.Position{X: 40, Y: 60}, node.Position)
	})
	t.Run("Should delegate agent tokens to the catalog", func(t *testing.T) {
		node, err := mapper.PlaceDrop(canvas.ScreenPoint{X: 10, Y: 10}, "webSearch", canvas.Viewport{Zoom: 1})
		require.NoError(t, err)
		assert.Equal(t, workflow.KindAgent, node.Kind)
		require.NotNil(t, node.Agent)
		assert.Equal(t, agent.TypeWebSearch, node.Agent.Type)
		assert.Equal(t, node.ID, node.Agent.InstanceID)
		assert.True(t, strings.HasPrefix(node.ID, "webSearch-"))
	})
	t.Run("Should generate distinct ids per drop", func(t *testing.T) {
		a, err := mapper.PlaceDrop(canvas.ScreenPoint{}, "email", canvas.Viewport{Zoom: 1})
		require.NoError(t, err)
		b, err := mapper.PlaceDrop(canvas.ScreenPoint{}, "email", canvas.Viewport{Zoom: 1})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
	t.Run("Should reject unknown drag tokens", func(t *testing.T) {
		_, err := mapper.PlaceDrop(canvas.ScreenPoint{}, "sticker", canvas.Viewport{Zoom: 1})
		assert.ErrorContains(t, err, "unknown agent type")
	})
	t.Run("Should place drops at viewport-adjusted coordinates", func(t *testing.T) {
		vp := canvas.Viewport{X: -200, Y: 100, Zoom: 0.5}
		node, err := mapper.PlaceDrop(canvas.ScreenPoint{X: 100, Y: 300}, "voice", vp)
		require.NoError(t, err)
		assert.Equal(t, workflow.Position{X: 600, Y: 400}, node.Position)
	})
}
