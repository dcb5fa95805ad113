package workflow

import (
	"errors"
	"fmt"

	"github.com/canvasflow/canvasflow/engine/core"
)

// Sentinel errors shared by every graph mutation path.
var (
	ErrDuplicateID = errors.New("node id already exists")
	ErrUnknownNode = errors.New("unknown node")
)

// Edge is a directed connection between two nodes. SourceHandle identifies
// which output handle of the source node the edge leaves from, when the node
// has more than one.
type Edge struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceHandle string `json:"source_handle,omitempty"`
}

// Graph is the node/edge container behind one canvas. It exclusively owns
// its nodes and edges; no node is shared by reference across graphs. The
// graph is not safe for uncoordinated concurrent writers; callers serialize
// access to match the single editor session the canvas assumes.
type Graph struct {
	nodes map[string]*Node
	order []string
	edges []Edge
}

func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode inserts the node, rejecting it with ErrDuplicateID when its ID is
// already taken. Every construction path, interactive or programmatic,
// funnels through this uniqueness check.
func (g *Graph) AddNode(n *Node) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	return nil
}

// Node returns the node with the given ID, if present.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// RemoveNode deletes the node if present and is a no-op otherwise. Edges
// referencing the removed node are intentionally left in place; consumers
// validate them lazily through DanglingEdges.
func (g *Graph) RemoveNode(id string) {
	if _, exists := g.nodes[id]; !exists {
		return
	}
	delete(g.nodes, id)
	for i, nid := range g.order {
		if nid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// Connect appends a new edge between two existing nodes and returns it.
// Duplicate edges over the same endpoints and handle are permitted.
func (g *Graph) Connect(source, target, sourceHandle string) (Edge, error) {
	if _, ok := g.nodes[source]; !ok {
		return Edge{}, fmt.Errorf("%w: %s", ErrUnknownNode, source)
	}
	if _, ok := g.nodes[target]; !ok {
		return Edge{}, fmt.Errorf("%w: %s", ErrUnknownNode, target)
	}
	edge := Edge{
		ID:           "edge-" + core.MustNewID().String(),
		Source:       source,
		Target:       target,
		SourceHandle: sourceHandle,
	}
	g.edges = append(g.edges, edge)
	return edge, nil
}

// RemoveEdge deletes the edge if present and is a no-op otherwise.
func (g *Graph) RemoveEdge(id string) {
	for i, e := range g.edges {
		if e.ID == id {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return
		}
	}
}

// UpdateNodePosition moves a node to a new canvas position.
func (g *Graph) UpdateNodePosition(id string, pos Position) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	n.Position = pos
	return nil
}

// MergeExternalNodes folds nodes offered by an external source into the
// graph, skipping any whose ID already exists. Existing nodes are never
// overwritten, so the merge is idempotent.
func (g *Graph) MergeExternalNodes(incoming []*Node) {
	for _, n := range incoming {
		if n == nil {
			continue
		}
		if _, exists := g.nodes[n.ID]; exists {
			continue
		}
		if err := n.Validate(); err != nil {
			continue
		}
		g.nodes[n.ID] = n
		g.order = append(g.order, n.ID)
	}
}

// DanglingEdges returns the edges whose source or target no longer resolves
// to a node. Node removal does not cascade, so the rendering layer filters
// these at read time.
func (g *Graph) DanglingEdges() []Edge {
	var dangling []Edge
	for _, e := range g.edges {
		_, srcOK := g.nodes[e.Source]
		_, dstOK := g.nodes[e.Target]
		if !srcOK || !dstOK {
			dangling = append(dangling, e)
		}
	}
	return dangling
}

// Snapshot captures a deep-copied, read-only view of the graph for the
// rendering layer to diff. Nodes appear in insertion order.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

func (g *Graph) Snapshot() (*Snapshot, error) {
	nodes := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		copied, err := core.DeepCopy(*g.nodes[id])
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot node %s: %w", id, err)
		}
		nodes = append(nodes, copied)
	}
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return &Snapshot{Nodes: nodes, Edges: edges}, nil
}
