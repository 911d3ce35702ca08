// Package inventory models a network inventory as a composite tree:
// a Network holds Computers, each Computer holds Addresses and hardware
// Components (CPU, Memory, Disk with partitions). Every node can render
// itself into an ASCII tree and produce a fully independent deep copy.
//
// Trees are not safe for concurrent mutation; callers that share a tree
// across goroutines must add their own synchronization.
package inventory

// Branch glyphs and continuation prefixes of the rendered tree.
// The format is fixed: consumers compare output byte-for-byte.
const (
	glyphBranch = "+-" // node has siblings after it
	glyphLast   = `\-` // node is the last of its siblings

	prefixBar   = "| " // continuation under a non-last ancestor
	prefixBlank = "  " // continuation under a last ancestor
)

// Node is any member of the inventory tree. Rendering is append-style:
// AppendTree adds one line per node row to dst and returns the grown
// slice, so a full tree renders without intermediate allocations per
// level.
type Node interface {
	// AppendTree appends the node's rendering to dst. prefix is the
	// accumulated indentation from the node's ancestors; last reports
	// whether the node is the final child among its siblings, which
	// selects the branch glyph and the continuation prefix passed on
	// to children.
	AppendTree(dst []string, prefix string, last bool) []string

	// CloneNode returns a deep copy of the node. The copy shares no
	// mutable state with the original at any depth.
	CloneNode() Node
}

// Named is implemented by nodes that can be looked up by name.
type Named interface {
	Name() string
}

// Clone deep-copies a node, preserving its concrete type.
func Clone[T Node](node T) T {
	return node.CloneNode().(T)
}

// branchGlyph returns the sibling marker for a node's own row.
func branchGlyph(last bool) string {
	if last {
		return glyphLast
	}
	return glyphBranch
}

// extendPrefix computes the indentation passed to a node's children:
// a vertical bar while the node still has siblings below it, blanks
// once it is the last child.
func extendPrefix(prefix string, last bool) string {
	if last {
		return prefix + prefixBlank
	}
	return prefix + prefixBar
}
