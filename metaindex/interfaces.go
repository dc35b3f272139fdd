package metaindex

import "github.com/INLOpen/nexusfile/core"

// PathKey is the view of a hierarchical path the index traversal needs for
// key comparisons while descending the tree: the canonical form for
// ordering, and the device/measurement split for picking the tier.
type PathKey interface {
	FullPath() string
	Device() string
	Measurement() string
	Nodes() []string
}

var _ PathKey = (*core.Path)(nil)
var _ PathKey = (*core.AliasedPath)(nil)

// IndexEntry pairs the smallest key stored under a child page with that
// child's location, as listed by an internal index page. How the offset is
// resolved to a page belongs to the on-disk reader, not this package.
type IndexEntry struct {
	Name   string
	Offset int64
}
