package viewport

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is the node-index stack representing a position in the zoom
// hierarchy, e.g. [sector, app, window] at increasing depth. Depth 0 is
// the root overview.
type Path struct {
	nodes []int
}

// NewPath returns an empty path at the root
func NewPath() Path {
	return Path{}
}

// PathOf builds a path from the given node indices
func PathOf(nodes ...int) Path {
	p := Path{nodes: make([]int, len(nodes))}
	copy(p.nodes, nodes)
	return p
}

// Depth returns the current depth in the hierarchy (0 = root)
func (p Path) Depth() int {
	return len(p.nodes)
}

// Push appends a node (zoom in) and returns the extended path
func (p Path) Push(node int) Path {
	nodes := make([]int, len(p.nodes)+1)
	copy(nodes, p.nodes)
	nodes[len(p.nodes)] = node
	return Path{nodes: nodes}
}

// Pop removes the deepest node (zoom out). Returns the shortened path,
// the removed node, and whether anything was removed.
func (p Path) Pop() (Path, int, bool) {
	if len(p.nodes) == 0 {
		return p, 0, false
	}
	leaf := p.nodes[len(p.nodes)-1]
	nodes := make([]int, len(p.nodes)-1)
	copy(nodes, p.nodes[:len(p.nodes)-1])
	return Path{nodes: nodes}, leaf, true
}

// Leaf returns the deepest node index
func (p Path) Leaf() (int, bool) {
	if len(p.nodes) == 0 {
		return 0, false
	}
	return p.nodes[len(p.nodes)-1], true
}

// SectorID returns the first element of the path
func (p Path) SectorID() (int, bool) {
	if len(p.nodes) == 0 {
		return 0, false
	}
	return p.nodes[0], true
}

// AppID returns the second element of the path
func (p Path) AppID() (int, bool) {
	if len(p.nodes) < 2 {
		return 0, false
	}
	return p.nodes[1], true
}

// WindowID returns the third element of the path
func (p Path) WindowID() (int, bool) {
	if len(p.nodes) < 3 {
		return 0, false
	}
	return p.nodes[2], true
}

// Truncate returns the path cut to at most the given depth
func (p Path) Truncate(depth int) Path {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(p.nodes) {
		return p
	}
	return PathOf(p.nodes[:depth]...)
}

// CommonAncestorDepth returns the depth of the nearest common ancestor
// of two paths
func (p Path) CommonAncestorDepth(other Path) int {
	depth := 0
	for i := 0; i < len(p.nodes) && i < len(other.nodes); i++ {
		if p.nodes[i] != other.nodes[i] {
			break
		}
		depth++
	}
	return depth
}

// TransitionTo plans the zoom operations needed to navigate from p to
// target: the number of zoom-outs up to the common ancestor, followed by
// the zoom-in targets down to the destination.
func (p Path) TransitionTo(target Path) (zoomOuts int, zoomIns []int) {
	ancestor := p.CommonAncestorDepth(target)
	zoomOuts = p.Depth() - ancestor
	zoomIns = make([]int, len(target.nodes)-ancestor)
	copy(zoomIns, target.nodes[ancestor:])
	return zoomOuts, zoomIns
}

// ParsePath parses a slash-separated path such as "0/2/1". An empty
// string or "/" is the root.
func ParsePath(s string) (Path, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return NewPath(), nil
	}
	parts := strings.Split(s, "/")
	if len(parts) > 3 {
		return Path{}, fmt.Errorf("path %q is deeper than the hierarchy (max sector/app/window)", s)
	}
	nodes := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Path{}, fmt.Errorf("invalid path segment %q", part)
		}
		nodes[i] = n
	}
	return Path{nodes: nodes}, nil
}

func (p Path) String() string {
	if len(p.nodes) == 0 {
		return "[ROOT]"
	}
	parts := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return "[" + strings.Join(parts, " > ") + "]"
}
