package entity

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-entity/internal/parser"
)

// Segment is one run of a parsed document: a stretch of literal text or a
// single entity token.
type Segment struct {
	Kind string // "text" or "entity"
	Text string // literal bytes, text segments only
	Form string // "named", "hex" or "decimal"
	Name string // entity name, named form only
	Code rune   // decoded code point
	Raw  string // the token as written in the source, when parsed
}

// NodeToSegments converts a document node (from Parse) to its segment
// list.
func NodeToSegments(node ast.SchemaNode) ([]Segment, error) {
	in, err := parser.NodeToSegments(node)
	if err != nil {
		return nil, err
	}
	segs := make([]Segment, len(in))
	for i, s := range in {
		segs[i] = Segment{
			Kind: s.Kind,
			Text: s.Text,
			Form: s.Form,
			Name: s.Name,
			Code: s.Code,
			Raw:  s.Raw,
		}
	}
	return segs, nil
}

// SegmentsToNode converts a segment list to a document node that Render
// accepts. The node carries an empty error list.
func SegmentsToNode(segs []Segment) ast.SchemaNode {
	in := make([]parser.Segment, len(segs))
	for i, s := range segs {
		in[i] = parser.Segment{
			Kind: s.Kind,
			Text: s.Text,
			Form: s.Form,
			Name: s.Name,
			Code: s.Code,
			Raw:  s.Raw,
		}
	}
	return parser.DocumentToNode(in, nil)
}

// NodeToInterface converts an AST node to native Go types.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}
