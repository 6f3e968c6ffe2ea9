package parser

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestSplit(t *testing.T) {
	segs, errs := Split([]byte("a&lt;b&#x2192;&bad"))

	want := []Segment{
		{Kind: "text", Text: "a"},
		{Kind: "entity", Form: "named", Name: "lt", Code: '<', Raw: "&lt;"},
		{Kind: "text", Text: "b"},
		{Kind: "entity", Form: "hex", Code: '→', Raw: "&#x2192;"},
		{Kind: "text", Text: "&bad"},
	}
	if len(segs) != len(want) {
		t.Fatalf("segments = %+v, want %+v", segs, want)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment[%d] = %+v, want %+v", i, segs[i], want[i])
		}
	}

	if len(errs) != 1 || errs[0].Kind != "unterminated entity" || errs[0].Start != 14 || errs[0].End != 17 {
		t.Errorf("errors = %+v, want one unterminated entity at 14..17", errs)
	}
}

func TestSplit_DecimalForm(t *testing.T) {
	segs, errs := Split([]byte("&#60;"))
	if len(errs) != 0 {
		t.Fatalf("errors = %+v, want none", errs)
	}
	if len(segs) != 1 {
		t.Fatalf("segments = %+v, want one entity", segs)
	}
	s := segs[0]
	if s.Kind != "entity" || s.Form != "decimal" || s.Code != '<' || s.Raw != "&#60;" || s.Name != "" {
		t.Errorf("segment = %+v, want decimal '<'", s)
	}
}

func TestParse_DocumentShape(t *testing.T) {
	p := NewParser([]byte("x&amp;y"))
	node, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("node is %T, want *ast.ObjectNode", node)
	}
	props := obj.Properties()

	typeLit, ok := props["type"].(*ast.LiteralNode)
	if !ok || typeLit.Value() != "document" {
		t.Errorf("type property = %v, want 'document'", props["type"])
	}

	segsArr, ok := props["segments"].(*ast.ArrayDataNode)
	if !ok {
		t.Fatalf("segments is %T, want *ast.ArrayDataNode", props["segments"])
	}
	if len(segsArr.Elements()) != 3 {
		t.Errorf("segment count = %d, want 3", len(segsArr.Elements()))
	}

	errsArr, ok := props["errors"].(*ast.ArrayDataNode)
	if !ok {
		t.Fatalf("errors is %T, want *ast.ArrayDataNode", props["errors"])
	}
	if len(errsArr.Elements()) != 0 {
		t.Errorf("error count = %d, want 0", len(errsArr.Elements()))
	}
}

func TestNodeToSegments_RoundTrip(t *testing.T) {
	input := []byte("&quot;hi&quot; &#38; bye&oops;")
	segs, _ := Split(input)
	node := DocumentToNode(segs, nil)

	back, err := NodeToSegments(node)
	if err != nil {
		t.Fatalf("NodeToSegments() error = %v", err)
	}
	if len(back) != len(segs) {
		t.Fatalf("segments = %+v, want %+v", back, segs)
	}
	for i := range segs {
		if back[i] != segs[i] {
			t.Errorf("segment[%d] = %+v, want %+v", i, back[i], segs[i])
		}
	}
}

func TestNodeToSegments_WrongNode(t *testing.T) {
	if _, err := NodeToSegments(ast.NewLiteralNode("x", zeroPos)); err == nil {
		t.Error("expected error for literal node")
	}
	if _, err := NodeToSegments(ast.NewObjectNode(map[string]ast.SchemaNode{}, zeroPos)); err == nil {
		t.Error("expected error for object without segments")
	}
}
