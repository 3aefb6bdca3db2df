package graphio

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kavindamihiran/ai-search/graph"
)

// ErrDecode wraps any structural problem found while decoding a document.
var ErrDecode = errors.New("graphio: invalid graph document")

// nodeDoc is the wire form of a single node.
type nodeDoc struct {
	Name      string             `json:"name"`
	Label     string             `json:"label,omitempty"`
	X         float64            `json:"x"`
	Y         float64            `json:"y"`
	Heuristic float64            `json:"heuristic"`
	State     string             `json:"state"`
	Neighbors map[string]float64 `json:"neighbors"`
}

// graphDoc is the wire form of a whole graph.
type graphDoc struct {
	Nodes []nodeDoc `json:"nodes"`
}

// Marshal encodes g as JSON. Nodes are emitted sorted by name so equal
// graphs encode to equal documents.
func Marshal(g *graph.Graph) ([]byte, error) {
	doc := graphDoc{Nodes: make([]nodeDoc, 0, g.Len())}
	for _, id := range g.NodeIDs() {
		n := g.Node(id)
		doc.Nodes = append(doc.Nodes, nodeDoc{
			Name:      n.Name,
			Label:     n.Label,
			X:         n.X,
			Y:         n.Y,
			Heuristic: n.Heuristic,
			State:     n.State.String(),
			Neighbors: g.Neighbors(id),
		})
	}

	return json.Marshal(doc)
}

// Unmarshal decodes data into a fresh graph. Node records are created
// first, then every neighbor reference is wired as a directed edge; a
// reference to an unknown node or a negative weight fails the decode
// rather than being dropped.
func Unmarshal(data []byte) (*graph.Graph, error) {
	var doc graphDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	g := graph.NewGraph()
	for _, nd := range doc.Nodes {
		n, err := g.AddNode(nd.Name, nd.X, nd.Y, nd.Heuristic)
		if err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", ErrDecode, nd.Name, err)
		}
		n.Label = nd.Label
		n.State = graph.ParseState(nd.State)
	}
	for _, nd := range doc.Nodes {
		for to, w := range nd.Neighbors {
			if err := g.AddEdge(nd.Name, to, w); err != nil {
				return nil, fmt.Errorf("%w: edge %s→%s: %v", ErrDecode, nd.Name, to, err)
			}
		}
	}

	return g, nil
}
