package entity

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-entity/internal/parser"
)

// Parse parses entity-encoded text into an AST.
//
// The returned node is an ObjectNode describing the document as a flat
// segment list:
//
//	{ "type": "document",
//	  "segments": [
//	    {"kind": "text", "value": "plain run"},
//	    {"kind": "entity", "form": "named", "name": "amp",
//	     "codepoint": 38, "raw": "&amp;"},
//	    ...
//	  ],
//	  "errors": [ {"kind": "unterminated entity", "start": 5, "end": 8} ] }
//
// Malformed entity tokens stay inside text segments verbatim and are
// additionally listed under "errors", so Render reproduces the original
// input byte-for-byte.
func Parse(input string) (ast.SchemaNode, error) {
	p := parser.NewParser([]byte(input))
	return p.Parse()
}

// ParseReader reads all data from r and parses it as entity-encoded text
// into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := parser.NewParser(data)
	return p.Parse()
}
