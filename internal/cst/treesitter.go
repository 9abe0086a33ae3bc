package cst

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// TreeSitterNode adapts a *sitter.Node to the cst.Node contract. Hosts that
// parse Inference source with a real tree-sitter grammar construct the root
// node with WrapTreeSitter and hand it to builder.Builder.AddSourceCode.
type TreeSitterNode struct {
	n      *sitter.Node
	source []byte
}

// WrapTreeSitter wraps a tree-sitter root (or any) node together with the
// source bytes it was parsed from, since tree-sitter nodes don't carry their
// own source buffer.
func WrapTreeSitter(n *sitter.Node, source []byte) Node {
	if n == nil {
		return nil
	}
	return TreeSitterNode{n: n, source: source}
}

func (w TreeSitterNode) Kind() string { return w.n.Type() }

func (w TreeSitterNode) StartByte() int { return int(w.n.StartByte()) }
func (w TreeSitterNode) EndByte() int   { return int(w.n.EndByte()) }

func (w TreeSitterNode) StartPosition() Point {
	p := w.n.StartPoint()
	return Point{Row: p.Row, Column: p.Column}
}

func (w TreeSitterNode) EndPosition() Point {
	p := w.n.EndPoint()
	return Point{Row: p.Row, Column: p.Column}
}

func (w TreeSitterNode) Child(i int) Node {
	c := w.n.Child(i)
	if c == nil {
		return nil
	}
	return TreeSitterNode{n: c, source: w.source}
}

func (w TreeSitterNode) ChildByFieldName(name string) Node {
	c := w.n.ChildByFieldName(name)
	if c == nil {
		return nil
	}
	return TreeSitterNode{n: c, source: w.source}
}

// ChildrenByFieldName collects every direct child tagged with the given
// field name, in source order. go-tree-sitter has no bulk accessor, so this
// walks the children and checks the per-index field name the way the
// upstream CLI's own `node-types` tooling does.
func (w TreeSitterNode) ChildrenByFieldName(name string) []Node {
	var out []Node
	count := int(w.n.ChildCount())
	for i := 0; i < count; i++ {
		if w.n.FieldNameForChild(i) == name {
			c := w.n.Child(i)
			if c != nil {
				out = append(out, TreeSitterNode{n: c, source: w.source})
			}
		}
	}
	return out
}

func (w TreeSitterNode) NamedChildren() []Node {
	count := int(w.n.NamedChildCount())
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		c := w.n.NamedChild(i)
		if c != nil {
			out = append(out, TreeSitterNode{n: c, source: w.source})
		}
	}
	return out
}

func (w TreeSitterNode) ChildCount() int { return int(w.n.ChildCount()) }

func (w TreeSitterNode) Utf8Text(source []byte) string { return w.n.Content(source) }

func (w TreeSitterNode) HasError() bool  { return w.n.HasError() }
func (w TreeSitterNode) IsMissing() bool { return w.n.IsMissing() }
