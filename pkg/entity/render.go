package entity

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-entity/internal/parser"
)

// Render converts a document node (from Parse) back to entity-encoded
// bytes.
//
// Entity segments prefer their recorded "raw" token, so a parsed document
// renders byte-identically. A constructed segment without "raw" is
// synthesized from its form: the name for the named form, lowercase hex
// digits or decimal digits for the numeric forms.
func Render(node ast.SchemaNode) ([]byte, error) {
	segs, err := parser.NodeToSegments(node)
	if err != nil {
		return nil, fmt.Errorf("entity: Render: %w", err)
	}

	var out []byte
	for _, s := range segs {
		switch s.Kind {
		case "text":
			out = append(out, s.Text...)
		case "entity":
			if s.Raw != "" {
				out = append(out, s.Raw...)
				continue
			}
			ce, ok := renderEntity(s)
			if !ok {
				return nil, fmt.Errorf("entity: Render: segment has no renderable form (form=%q, codepoint=%U)", s.Form, s.Code)
			}
			out = ce.AppendTo(out)
		default:
			return nil, fmt.Errorf("entity: Render: unknown segment kind %q", s.Kind)
		}
	}
	return out, nil
}

func renderEntity(s parser.Segment) (CharEntity, bool) {
	switch s.Form {
	case "named":
		if s.Name != "" {
			return CharEntity{Form: Named, Payload: []byte(s.Name)}, true
		}
		return EncodeChar(s.Code, Named)
	case "hex":
		return EncodeChar(s.Code, Hex)
	case "decimal":
		return EncodeChar(s.Code, Decimal)
	}
	return CharEntity{}, false
}
