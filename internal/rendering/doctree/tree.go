// Package doctree builds a declarative tree of styled blocks for a resume
// document and serializes it to a single-page A4 PDF. Five visual variants
// share one tree-building pipeline; each variant contributes only a style
// sheet.
package doctree

// Kind discriminates the node types of the declarative tree.
type Kind int

// Node kinds.
const (
	KindPage Kind = iota
	KindColumn
	KindName
	KindProfession
	KindContact
	KindHeading
	KindSubheading
	KindEntry
	KindText
	KindBullet
	KindLabelValue
	KindRule
	KindSpacer
	KindQR
)

// Node is one block of the declarative document tree. Leaves carry text;
// interior nodes (page, column) carry children. The tree is fully resolved:
// serializing it requires no further access to the source document.
type Node struct {
	Kind     Kind
	Text     string
	Label    string  // set for KindLabelValue
	Aside    string  // right-aligned companion text (dates) for heading kinds
	Width    float64 // column width fraction of the content area, 0 for auto
	Fill     bool    // column drawn over the variant's sidebar fill color
	Muted    bool    // secondary text drawn in the variant's subtle color
	Children []*Node
}

// newPage returns an empty page node.
func newPage() *Node {
	return &Node{Kind: KindPage}
}

// addColumn appends a column with the given width fraction and returns it.
func (n *Node) addColumn(width float64, fill bool) *Node {
	col := &Node{Kind: KindColumn, Width: width, Fill: fill}
	n.Children = append(n.Children, col)
	return col
}

// add appends a child node.
func (n *Node) add(child *Node) {
	n.Children = append(n.Children, child)
}

// text is a convenience constructor for simple leaf nodes.
func text(kind Kind, s string) *Node {
	return &Node{Kind: kind, Text: s}
}

// Walk visits n and its children depth-first. It exists for callers that
// inspect the tree (tests, the preview sizing logic) without serializing it.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}
