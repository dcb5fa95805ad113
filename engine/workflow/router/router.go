package router

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/canvasflow/canvasflow/engine/canvas"
	"github.com/canvasflow/canvasflow/engine/workflow"
	"github.com/canvasflow/canvasflow/engine/workflow/uc"
)

// Router exposes one canvas over HTTP. Every mutation funnels through the
// uc command layer, so the HTTP surface and interactive editing share the
// same invariants. The graph assumes a single logical editor session, so
// the router serializes all handlers behind one mutex.
type Router struct {
	mu     sync.Mutex
	graph  *workflow.Graph
	mapper *canvas.Mapper
}

func New(graph *workflow.Graph) *Router {
	return &Router{graph: graph, mapper: canvas.NewMapper()}
}

// Register attaches the workflow routes to the given group.
func (r *Router) Register(api *gin.RouterGroup) {
	wf := api.Group("/workflow")
	wf.Use(func(c *gin.Context) {
		r.mu.Lock()
		defer r.mu.Unlock()
		c.Next()
	})
	{
		wf.GET("", r.getSnapshot)
		wf.POST("/nodes", r.addNode)
		wf.DELETE("/nodes/:id", r.removeNode)
		wf.PATCH("/nodes/:id/position", r.moveNode)
		wf.POST("/nodes/:id/status", r.transitionStatus)
		wf.POST("/nodes/:id/feedback", r.toggleFeedback)
		wf.GET("/nodes/:id/schedule", r.compileSchedule)
		wf.POST("/edges", r.connectNodes)
		wf.DELETE("/edges/:id", r.removeEdge)
		wf.POST("/drop", r.placeDrop)
	}
}

// problem is the error envelope returned on every declined operation.
type problem struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondProblem(c *gin.Context, status int, code string, err error) {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	c.JSON(status, problem{
		Status:  status,
		Error:   http.StatusText(status),
		Code:    code,
		Details: detail,
	})
}

// respondDeclined maps the uc sentinel taxonomy onto HTTP statuses.
func respondDeclined(c *gin.Context, err error) {
	switch {
	case errors.Is(err, uc.ErrConflict):
		respondProblem(c, http.StatusConflict, "DUPLICATE_ID", err)
	case errors.Is(err, uc.ErrNotFound):
		respondProblem(c, http.StatusNotFound, "UNKNOWN_NODE", err)
	case errors.Is(err, uc.ErrInvalidTransition):
		respondProblem(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", err)
	case errors.Is(err, uc.ErrInvalidInput):
		respondProblem(c, http.StatusBadRequest, "INVALID_INPUT", err)
	default:
		respondProblem(c, http.StatusInternalServerError, "INTERNAL", err)
	}
}
