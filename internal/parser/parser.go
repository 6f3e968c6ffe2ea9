// Package parser builds shape-core AST nodes from entity-encoded text.
//
// A document maps to an ObjectNode with the following structure:
//
//	{ "type": "document",
//	  "segments": [
//	    {"kind": "text", "value": "plain run"},
//	    {"kind": "entity", "form": "named", "name": "amp",
//	     "codepoint": 38, "raw": "&amp;"},
//	    {"kind": "entity", "form": "hex", "codepoint": 8594,
//	     "raw": "&#x2192;"},
//	    ...
//	  ],
//	  "errors": [
//	    {"kind": "unterminated entity", "start": 5, "end": 8},
//	  ] }
//
// Malformed entity tokens stay inside text segments verbatim, so rendering
// the segments reproduces the original byte stream.
package parser

import (
	"fmt"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-entity/internal/scanner"
)

var zeroPos = ast.Position{}

// Segment is one run of the document: either literal text or a recognized
// entity token.
type Segment struct {
	Kind string // "text" or "entity"
	Text string // literal bytes, text segments only
	Form string // "named", "hex" or "decimal"
	Name string // entity name, named form only
	Code rune   // decoded code point
	Raw  string // the source token, '&' through ';'
}

// ScanError mirrors one scanner failure for the AST error list.
type ScanError struct {
	Kind  string
	Start int
	End   int
}

// Split tokenizes data into segments plus scan errors. Bytes covered by a
// failed token land in the surrounding text segments.
func Split(data []byte) ([]Segment, []ScanError) {
	var segs []Segment
	var errs []ScanError
	last := 0
	scanner.ScanEntities(data,
		func(start, end int, r rune) {
			if start > last {
				segs = append(segs, Segment{Kind: "text", Text: string(data[last:start])})
			}
			raw := string(data[start : end+1])
			seg := Segment{Kind: "entity", Code: r, Raw: raw}
			interior := raw[1 : len(raw)-1]
			switch {
			case interior[0] != '#':
				seg.Form = "named"
				seg.Name = interior
			case interior[1] == 'x' || interior[1] == 'X':
				seg.Form = "hex"
			default:
				seg.Form = "decimal"
			}
			segs = append(segs, seg)
			last = end + 1
		},
		func(start, end int, kind scanner.ErrorKind) {
			errs = append(errs, ScanError{Kind: kind.String(), Start: start, End: end})
		})
	if last < len(data) {
		segs = append(segs, Segment{Kind: "text", Text: string(data[last:])})
	}
	return segs, errs
}

// Parser produces AST nodes from entity-encoded data.
type Parser struct {
	data []byte
}

// NewParser creates a new AST parser for the given input.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse tokenizes the input and returns the document ObjectNode.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	segs, errs := Split(p.data)
	return DocumentToNode(segs, errs), nil
}

// DocumentToNode builds the document ObjectNode from a segment list and
// its scan errors.
func DocumentToNode(segs []Segment, errs []ScanError) ast.SchemaNode {
	segNodes := make([]ast.SchemaNode, len(segs))
	for i, s := range segs {
		segNodes[i] = segmentToNode(s)
	}
	errNodes := make([]ast.SchemaNode, len(errs))
	for i, e := range errs {
		errNodes[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"kind":  ast.NewLiteralNode(e.Kind, zeroPos),
			"start": ast.NewLiteralNode(int64(e.Start), zeroPos),
			"end":   ast.NewLiteralNode(int64(e.End), zeroPos),
		}, zeroPos)
	}
	return ast.NewObjectNode(map[string]ast.SchemaNode{
		"type":     ast.NewLiteralNode("document", zeroPos),
		"segments": ast.NewArrayDataNode(segNodes, zeroPos),
		"errors":   ast.NewArrayDataNode(errNodes, zeroPos),
	}, zeroPos)
}

func segmentToNode(s Segment) ast.SchemaNode {
	if s.Kind == "text" {
		return ast.NewObjectNode(map[string]ast.SchemaNode{
			"kind":  ast.NewLiteralNode("text", zeroPos),
			"value": ast.NewLiteralNode(s.Text, zeroPos),
		}, zeroPos)
	}

	props := map[string]ast.SchemaNode{
		"kind":      ast.NewLiteralNode("entity", zeroPos),
		"form":      ast.NewLiteralNode(s.Form, zeroPos),
		"codepoint": ast.NewLiteralNode(int64(s.Code), zeroPos),
		"raw":       ast.NewLiteralNode(s.Raw, zeroPos),
	}
	if s.Name != "" {
		props["name"] = ast.NewLiteralNode(s.Name, zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// NodeToSegments converts a document node back to its segment list.
func NodeToSegments(node ast.SchemaNode) ([]Segment, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	segsProp, ok := props["segments"]
	if !ok {
		return nil, fmt.Errorf("missing 'segments' property")
	}
	arr, ok := segsProp.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for segments, got %T", segsProp)
	}

	elements := arr.Elements()
	segs := make([]Segment, 0, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		p := obj.Properties()
		segs = append(segs, Segment{
			Kind: litString(p["kind"]),
			Text: litString(p["value"]),
			Form: litString(p["form"]),
			Name: litString(p["name"]),
			Code: rune(litInt(p["codepoint"])),
			Raw:  litString(p["raw"]),
		})
	}
	return segs, nil
}

func litString(n ast.SchemaNode) string {
	if lit, ok := n.(*ast.LiteralNode); ok {
		s, _ := lit.Value().(string)
		return s
	}
	return ""
}

func litInt(n ast.SchemaNode) int64 {
	if lit, ok := n.(*ast.LiteralNode); ok {
		switch v := lit.Value().(type) {
		case int64:
			return v
		case float64:
			return int64(v)
		case string:
			i, _ := strconv.ParseInt(v, 10, 64)
			return i
		}
	}
	return 0
}
