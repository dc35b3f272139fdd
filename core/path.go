package core

import (
	"hash/fnv"
	"strings"
)

// Path is an immutable hierarchical identifier: an ordered sequence of node
// strings, outermost first, as produced by splitting "root.sg.d1.s1". The
// last node names a measurement; everything before it names the device that
// owns the measurement.
//
// A Path never changes after construction and may be shared freely across
// goroutines. Presentation metadata such as aliases lives on AliasedPath,
// not here.
type Path struct {
	nodes []string
	// Canonical string form, computed once at construction. For a parsed
	// path this is the original raw string, which may differ from a plain
	// rejoin of the nodes when the raw form used quoting.
	fullPath string
}

// ParsePath builds a Path from a raw dotted string. The raw string is kept
// and returned verbatim by FullPath, so a quoted input like `root.sg."d.1".s1`
// renders exactly as written.
func ParsePath(raw string) (*Path, error) {
	nodes, err := SplitPathToNodes(raw)
	if err != nil {
		return nil, err
	}
	return &Path{nodes: nodes, fullPath: raw}, nil
}

// NewPath wraps a pre-split node slice. The nodes are taken as already
// atomic identifiers: no escape handling is applied. The slice is copied, so
// the caller may reuse it.
func NewPath(nodes []string) (*Path, error) {
	if len(nodes) == 0 {
		return nil, &InvalidArgumentError{Message: "path must have at least one node"}
	}
	for _, n := range nodes {
		if n == "" {
			return nil, &InvalidArgumentError{Message: "path node must not be empty"}
		}
	}
	owned := make([]string, len(nodes))
	copy(owned, nodes)
	return newPathFromOwnedNodes(owned), nil
}

// newPathFromOwnedNodes wraps a node slice the caller guarantees is non-empty
// and will not be modified. Used for derived paths.
func newPathFromOwnedNodes(nodes []string) *Path {
	return &Path{nodes: nodes, fullPath: strings.Join(nodes, PathSeparator)}
}

// Nodes returns a copy of the ordered node sequence.
func (p *Path) Nodes() []string {
	out := make([]string, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// Len returns the number of nodes.
func (p *Path) Len() int {
	return len(p.nodes)
}

// FirstNode returns the outermost node.
func (p *Path) FirstNode() string {
	return p.nodes[0]
}

// Measurement returns the terminal node, the column identifier within its
// device.
func (p *Path) Measurement() string {
	return p.nodes[len(p.nodes)-1]
}

// Device returns the canonical form of every node but the last. A
// single-node path has no device and yields the empty string.
func (p *Path) Device() string {
	if len(p.nodes) <= 1 {
		return ""
	}
	return strings.Join(p.nodes[:len(p.nodes)-1], PathSeparator)
}

// DevicePath returns a new Path holding every node but the last.
func (p *Path) DevicePath() (*Path, error) {
	if len(p.nodes) <= 1 {
		return nil, &InvalidArgumentError{Message: "single-node path has no device path"}
	}
	owned := make([]string, len(p.nodes)-1)
	copy(owned, p.nodes[:len(p.nodes)-1])
	return newPathFromOwnedNodes(owned), nil
}

// ConcatPath returns a new Path holding p's nodes followed by other's nodes.
// Neither operand is modified.
func (p *Path) ConcatPath(other *Path) *Path {
	merged := make([]string, 0, len(p.nodes)+len(other.nodes))
	merged = append(merged, p.nodes...)
	merged = append(merged, other.nodes...)
	return newPathFromOwnedNodes(merged)
}

// ConcatNode returns a new Path with node appended as the terminal node.
func (p *Path) ConcatNode(node string) *Path {
	merged := make([]string, 0, len(p.nodes)+1)
	merged = append(merged, p.nodes...)
	merged = append(merged, node)
	return newPathFromOwnedNodes(merged)
}

// FullPath returns the canonical string form. For a parsed path this is the
// original raw string; otherwise it is the nodes joined by the separator.
// The two can differ when the raw form used quoting a plain join would not
// reproduce, which is why Equals compares node slices, never strings.
func (p *Path) FullPath() string {
	return p.fullPath
}

// StartsWith reports whether prefix matches the leading nodes of p
// element-wise. A prefix longer than the path never matches.
func (p *Path) StartsWith(prefix []string) bool {
	if len(prefix) > len(p.nodes) {
		return false
	}
	for i, n := range prefix {
		if p.nodes[i] != n {
			return false
		}
	}
	return true
}

// Compare orders paths by byte-wise comparison of their canonical strings,
// returning -1, 0 or 1.
func (p *Path) Compare(other *Path) int {
	return strings.Compare(p.FullPath(), other.FullPath())
}

// Equals reports element-wise node equality. Canonical strings do not
// participate: a parsed path and a NewPath-built path over the same nodes
// are equal even when their FullPath strings differ.
func (p *Path) Equals(other *Path) bool {
	if other == nil || len(p.nodes) != len(other.nodes) {
		return false
	}
	for i, n := range p.nodes {
		if other.nodes[i] != n {
			return false
		}
	}
	return true
}

// Hash returns an FNV-1a hash over the node sequence, with a zero byte
// between nodes so that ["ab","c"] and ["a","bc"] hash differently. Equal
// node sequences hash equal regardless of how the path was constructed,
// keeping Hash consistent with Equals.
func (p *Path) Hash() uint64 {
	h := fnv.New64a()
	for i, n := range p.nodes {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(n))
	}
	return h.Sum64()
}

func (p *Path) String() string {
	return p.FullPath()
}
