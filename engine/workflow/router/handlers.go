package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/canvasflow/canvasflow/engine/agent"
	"github.com/canvasflow/canvasflow/engine/canvas"
	"github.com/canvasflow/canvasflow/engine/core"
	"github.com/canvasflow/canvasflow/engine/trigger"
	"github.com/canvasflow/canvasflow/engine/workflow"
	"github.com/canvasflow/canvasflow/engine/workflow/uc"
)

// addNodeRequest declares a node to insert imperatively, e.g. the toolbar's
// "Add Trigger" action. When ID is empty one is generated the same way drop
// placement does.
type addNodeRequest struct {
	ID        string             `json:"id"`
	Kind      workflow.Kind      `json:"kind"       binding:"required"`
	Label     string             `json:"label"`
	AgentType string             `json:"agent_type"`
	Position  workflow.Position  `json:"position"`
	Trigger   *trigger.Spec      `json:"trigger"`
}

type connectRequest struct {
	Source       string `json:"source"        binding:"required"`
	Target       string `json:"target"        binding:"required"`
	SourceHandle string `json:"source_handle"`
}

type moveRequest struct {
	Position workflow.Position `json:"position" binding:"required"`
}

type statusRequest struct {
	Status agent.Status `json:"status" binding:"required"`
	Reason string       `json:"reason"`
}

type feedbackRequest struct {
	Kind     agent.FeedbackKind `json:"kind"     binding:"required"`
	Positive bool               `json:"positive"`
}

type dropRequest struct {
	Screen   canvas.ScreenPoint `json:"screen"`
	Token    string             `json:"token"   binding:"required"`
	Viewport canvas.Viewport    `json:"viewport"`
}

type scheduleResponse struct {
	Disabled   bool   `json:"disabled"`
	Expression string `json:"expression,omitempty"`
}

func (r *Router) getSnapshot(c *gin.Context) {
	out, err := uc.NewGetSnapshot(r.graph).Execute(c.Request.Context())
	if err != nil {
		respondDeclined(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"nodes":          out.Snapshot.Nodes,
		"edges":          out.Snapshot.Edges,
		"dangling_edges": out.Dangling,
	})
}

func (r *Router) addNode(c *gin.Context) {
	var req addNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondProblem(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	node, err := buildNode(&req)
	if err != nil {
		respondProblem(c, http.StatusBadRequest, "INVALID_NODE", err)
		return
	}
	if err := uc.NewAddNode(r.graph).Execute(c.Request.Context(), &uc.AddNodeInput{Node: node}); err != nil {
		respondDeclined(c, err)
		return
	}
	c.JSON(http.StatusCreated, node)
}

func buildNode(req *addNodeRequest) (*workflow.Node, error) {
	id := req.ID
	if id == "" {
		id = fmt.Sprintf("%s-%s", req.Kind, core.MustNewID())
	}
	switch req.Kind {
	case workflow.KindStart:
		label := req.Label
		if label == "" {
			label = "Start"
		}
		return workflow.NewStartNode(id, label, req.Position), nil
	case workflow.KindTrigger:
		spec := req.Trigger
		if spec == nil {
			spec = trigger.NewSpec(time.Now())
		}
		return workflow.NewTriggerNode(id, spec, req.Position), nil
	case workflow.KindAgent:
		at, err := agent.ParseType(req.AgentType)
		if err != nil {
			return nil, err
		}
		inst, err := agent.NewInstance(at, id)
		if err != nil {
			return nil, err
		}
		return workflow.NewAgentNode(id, inst, req.Position), nil
	default:
		return nil, fmt.Errorf("unknown node kind: %q", req.Kind)
	}
}

func (r *Router) removeNode(c *gin.Context) {
	err := uc.NewRemoveNode(r.graph).Execute(c.Request.Context(), &uc.RemoveNodeInput{ID: c.Param("id")})
	if err != nil {
		respondDeclined(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) moveNode(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondProblem(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	err := uc.NewMoveNode(r.graph).Execute(c.Request.Context(), &uc.MoveNodeInput{
		ID:       c.Param("id"),
		Position: req.Position,
	})
	if err != nil {
		respondDeclined(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) transitionStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondProblem(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	err := uc.NewTransitionStatus(r.graph).Execute(c.Request.Context(), &uc.TransitionStatusInput{
		NodeID: c.Param("id"),
		Status: req.Status,
		Reason: req.Reason,
	})
	if err != nil {
		respondDeclined(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) toggleFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondProblem(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	err := uc.NewToggleFeedback(r.graph).Execute(c.Request.Context(), &uc.ToggleFeedbackInput{
		NodeID:   c.Param("id"),
		Kind:     req.Kind,
		Positive: req.Positive,
	})
	if err != nil {
		respondDeclined(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) compileSchedule(c *gin.Context) {
	out, err := uc.NewCompileSchedule(r.graph).Execute(c.Request.Context(), &uc.CompileScheduleInput{
		NodeID: c.Param("id"),
	})
	if err != nil {
		respondDeclined(c, err)
		return
	}
	c.JSON(http.StatusOK, scheduleResponse{
		Disabled:   out.Expression.IsDisabled(),
		Expression: out.Expression.String(),
	})
}

func (r *Router) connectNodes(c *gin.Context) {
	var req connectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondProblem(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	out, err := uc.NewConnectNodes(r.graph).Execute(c.Request.Context(), &uc.ConnectNodesInput{
		Source:       req.Source,
		Target:       req.Target,
		SourceHandle: req.SourceHandle,
	})
	if err != nil {
		respondDeclined(c, err)
		return
	}
	c.JSON(http.StatusCreated, out.Edge)
}

func (r *Router) removeEdge(c *gin.Context) {
	err := uc.NewRemoveEdge(r.graph).Execute(c.Request.Context(), &uc.RemoveEdgeInput{ID: c.Param("id")})
	if err != nil {
		respondDeclined(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) placeDrop(c *gin.Context) {
	var req dropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondProblem(c, http.StatusBadRequest, "INVALID_BODY", err)
		return
	}
	out, err := uc.NewPlaceDrop(r.graph, r.mapper).Execute(c.Request.Context(), &uc.PlaceDropInput{
		Screen:   req.Screen,
		Token:    req.Token,
		Viewport: req.Viewport,
	})
	if err != nil {
		respondDeclined(c, err)
		return
	}
	c.JSON(http.StatusCreated, out.Node)
}
