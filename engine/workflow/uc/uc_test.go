package uc_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvasflow/canvasflow/engine/agent"
	"github.com/canvasflow/canvasflow/engine/canvas"
	"github.com/canvasflow/canvasflow/engine/trigger"
	"github.com/canvasflow/canvasflow/engine/workflow"
	"github.com/canvasflow/canvasflow/engine/workflow/uc"
)

func seedGraph(t *testing.T) *workflow.Graph {
	t.Helper()
	g := workflow.NewGraph()
	require.NoError(t, g.AddNode(workflow.NewStartNode("start", "Start", workflow.Position{})))
	inst, err := agent.NewInstance(agent.TypeEmail, "mailer")
	require.NoError(t, err)
	require.NoError(t, g.AddNode(workflow.NewAgentNode("mailer", inst, workflow.Position{X: 200})))
	return g
}

func TestAddNode(t *testing.T) {
	t.Run("Should decline a duplicate id as a conflict", func(t *testing.T) {
		g := seedGraph(t)
		err := uc.NewAddNode(g).Execute(context.Background(), &uc.AddNodeInput{
			Node: workflow.NewStartNode("start", "Start", workflow.Position{}),
		})
		assert.ErrorIs(t, err, uc.ErrConflict)
		assert.Equal(t, 2, g.Len())
	})
	t.Run("Should decline nil input", func(t *testing.T) {
		err := uc.NewAddNode(seedGraph(t)).Execute(context.Background(), nil)
		assert.ErrorIs(t, err, uc.ErrInvalidInput)
	})
}

func TestPlaceDrop(t *testing.T) {
	t.Run("Should insert the dropped node through the shared add path", func(t *testing.T) {
		g := seedGraph(t)
		placeDrop := uc.NewPlaceDrop(g, canvas.NewMapper())
		out, err := placeDrop.Execute(context.Background(), &uc.PlaceDropInput{
			Screen:   canvas.ScreenPoint{X: 120, Y: 80},
			Token:    "spreadsheet",
			Viewport: canvas.Viewport{Zoom: 1},
		})
		require.NoError(t, err)
		require.NotNil(t, out.Node)
		_, ok := g.Node(out.Node.ID)
		assert.True(t, ok)
		assert.Equal(t, workflow.KindAgent, out.Node.Kind)
	})
	t.Run("Should decline unknown drag tokens", func(t *testing.T) {
		g := seedGraph(t)
		_, err := uc.NewPlaceDrop(g, canvas.NewMapper()).Execute(context.Background(), &uc.PlaceDropInput{
			Token:    "widget",
			Viewport: canvas.Viewport{Zoom: 1},
		})
		assert.ErrorIs(t, err, uc.ErrInvalidInput)
		assert.Equal(t, 2, g.Len())
	})
}

func TestTransitionStatus(t *testing.T) {
	t.Run("Should walk an agent through a full run", func(t *testing.T) {
		g := seedGraph(t)
		transition := uc.NewTransitionStatus(g)
		ctx := context.Background()
		require.NoError(t, transition.Execute(ctx, &uc.TransitionStatusInput{NodeID: "mailer", Status: agent.StatusRunning}))
		require.NoError(t, transition.Execute(ctx, &uc.TransitionStatusInput{NodeID: "mailer", Status: agent.StatusSuccess}))
		node, _ := g.Node("mailer")
		assert.Equal(t, agent.StatusSuccess, node.Agent.Status)
		assert.NotNil(t, node.Agent.LastRunAt)
	})
	t.Run("Should decline illegal transitions and keep prior state", func(t *testing.T) {
		g := seedGraph(t)
		err := uc.NewTransitionStatus(g).Execute(context.Background(), &uc.TransitionStatusInput{
			NodeID: "mailer",
			Status: agent.StatusSuccess,
		})
		assert.ErrorIs(t, err, uc.ErrInvalidTransition)
		node, _ := g.Node("mailer")
		assert.Equal(t, agent.StatusPending, node.Agent.Status)
	})
	t.Run("Should decline transitions to pending", func(t *testing.T) {
		g := seedGraph(t)
		err := uc.NewTransitionStatus(g).Execute(context.Background(), &uc.TransitionStatusInput{
			NodeID: "mailer",
			Status: agent.StatusPending,
		})
		assert.ErrorIs(t, err, uc.ErrInvalidTransition)
	})
	t.Run("Should decline requests against non-agent nodes", func(t *testing.T) {
		g := seedGraph(t)
		err := uc.NewTransitionStatus(g).Execute(context.Background(), &uc.TransitionStatusInput{
			NodeID: "start",
			Status: agent.StatusRunning,
		})
		assert.ErrorIs(t, err, uc.ErrInvalidInput)
	})
	t.Run("Should decline unknown nodes", func(t *testing.T) {
		g := seedGraph(t)
		err := uc.NewTransitionStatus(g).Execute(context.Background(), &uc.TransitionStatusInput{
			NodeID: "ghost",
			Status: agent.StatusRunning,
		})
		assert.ErrorIs(t, err, uc.ErrNotFound)
	})
}

func TestToggleFeedback(t *testing.T) {
	t.Run("Should toggle sentiment on an agent node", func(t *testing.T) {
		g := seedGraph(t)
		toggle := uc.NewToggleFeedback(g)
		ctx := context.Background()
		require.NoError(t, toggle.Execute(ctx, &uc.ToggleFeedbackInput{
			NodeID: "mailer", Kind: agent.FeedbackPrompt, Positive: true,
		}))
		node, _ := g.Node("mailer")
		assert.Equal(t, agent.SentimentPositive, node.Agent.Feedback.Prompt)
		require.NoError(t, toggle.Execute(ctx, &uc.ToggleFeedbackInput{
			NodeID: "mailer", Kind: agent.FeedbackPrompt, Positive: true,
		}))
		assert.Equal(t, agent.SentimentNone, node.Agent.Feedback.Prompt)
	})
	t.Run("Should decline feedback on a start node", func(t *testing.T) {
		g := seedGraph(t)
		err := uc.NewToggleFeedback(g).Execute(context.Background(), &uc.ToggleFeedbackInput{
			NodeID: "start", Kind: agent.FeedbackAgent, Positive: true,
		})
		assert.ErrorIs(t, err, uc.ErrInvalidInput)
	})
}

func TestCompileSchedule(t *testing.T) {
	t.Run("Should compile the latest trigger spec on demand", func(t *testing.T) {
		g := seedGraph(t)
		spec := trigger.NewSpec(time.Now())
		require.NoError(t, g.AddNode(workflow.NewTriggerNode("trig", spec, workflow.Position{})))
		compile := uc.NewCompileSchedule(g)
		ctx := context.Background()

		out, err := compile.Execute(ctx, &uc.CompileScheduleInput{NodeID: "trig"})
		require.NoError(t, err)
		assert.True(t, out.Expression.IsDisabled())

		spec.Schedule.Enabled = true
		spec.Schedule.RunOnce = false
		spec.Schedule.Time = trigger.TimeOfDay{Hour12: 9, Minute: 0, Meridiem: trigger.AM}
		spec.Schedule.DaysOfWeek = []time.Weekday{time.Monday, time.Wednesday}
		out, err = compile.Execute(ctx, &uc.CompileScheduleInput{NodeID: "trig"})
		require.NoError(t, err)
		assert.Equal(t, trigger.Expression("0 9 * * 1,3"), out.Expression)
	})
	t.Run("Should decline non-trigger nodes", func(t *testing.T) {
		g := seedGraph(t)
		_, err := uc.NewCompileSchedule(g).Execute(context.Background(), &uc.CompileScheduleInput{NodeID: "mailer"})
		assert.ErrorIs(t, err, uc.ErrInvalidInput)
	})
}

func TestMergeNodes(t *testing.T) {
	t.Run("Should accept new nodes and skip existing ones", func(t *testing.T) {
		g := seedGraph(t)
		inst, err := agent.NewInstance(agent.TypeVoice, "caller")
		require.NoError(t, err)
		incoming := []*workflow.Node{
			workflow.NewAgentNode("caller", inst, workflow.Position{}),
			workflow.NewStartNode("start", "Start", workflow.Position{}),
		}
		require.NoError(t, uc.NewMergeNodes(g).Execute(context.Background(), &uc.MergeNodesInput{Nodes: incoming}))
		assert.Equal(t, 3, g.Len())
	})
}

func TestRemoveNode(t *testing.T) {
	t.Run("Should be idempotent through the command layer", func(t *testing.T) {
		g := seedGraph(t)
		remove := uc.NewRemoveNode(g)
		ctx := context.Background()
		require.NoError(t, remove.Execute(ctx, &uc.RemoveNodeInput{ID: "mailer"}))
		require.NoError(t, remove.Execute(ctx, &uc.RemoveNodeInput{ID: "mailer"}))
		assert.Equal(t, 1, g.Len())
	})
}

func TestRemoveEdge(t *testing.T) {
	t.Run("Should remove an edge and tolerate replays", func(t *testing.T) {
		g := seedGraph(t)
		ctx := context.Background()
		out, err := uc.NewConnectNodes(g).Execute(ctx, &uc.ConnectNodesInput{Source: "start", Target: "mailer"})
		require.NoError(t, err)
		remove := uc.NewRemoveEdge(g)
		require.NoError(t, remove.Execute(ctx, &uc.RemoveEdgeInput{ID: out.Edge.ID}))
		require.NoError(t, remove.Execute(ctx, &uc.RemoveEdgeInput{ID: out.Edge.ID}))
		snap, err := uc.NewGetSnapshot(g).Execute(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap.Snapshot.Edges)
	})

	t.Run("Should reject a blank edge id", func(t *testing.T) {
		g := seedGraph(t)
		err := uc.NewRemoveEdge(g).Execute(context.Background(), &uc.RemoveEdgeInput{})
		assert.ErrorIs(t, err, uc.ErrInvalidInput)
	})
}
