package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestParseRender_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain text", "no entities here"},
		{"named entities", "&lt;div&gt;Hello &amp; welcome&lt;/div&gt;"},
		{"numeric forms preserved", "&#x2192; &#8594; &#X00AB;"},
		{"malformed stays verbatim", "a & b &bogus &#x110000; c"},
		{"empty", ""},
		{"trailing unterminated", "text &lt"},
		{"double ampersand", "&&amp;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			out, err := Render(node)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if string(out) != tt.input {
				t.Errorf("round trip = %q, want %q", out, tt.input)
			}
		})
	}
}

func TestParse_DocumentErrors(t *testing.T) {
	node, err := Parse("ok &lt; bad &#xZZ; worse &unfinished")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("Parse() returned %T, want *ast.ObjectNode", node)
	}
	errsNode, ok := obj.Properties()["errors"].(*ast.ArrayDataNode)
	if !ok {
		t.Fatalf("'errors' property missing or wrong type")
	}
	if got := len(errsNode.Elements()); got != 2 {
		t.Errorf("got %d errors, want 2", got)
	}
}

func TestParseReader(t *testing.T) {
	node, err := ParseReader(strings.NewReader("&copy; 2024"))
	if err != nil {
		t.Fatalf("ParseReader() error: %v", err)
	}
	out, err := Render(node)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if string(out) != "&copy; 2024" {
		t.Errorf("round trip = %q, want %q", out, "&copy; 2024")
	}
}

func TestParseReader_Error(t *testing.T) {
	if _, err := ParseReader(errReader{}); err == nil {
		t.Fatal("expected read error, got nil")
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

// Constructed documents have no recorded raw token, so Render synthesizes
// each entity from its form.
func TestRender_SynthesizedSegments(t *testing.T) {
	pos := ast.Position{}
	doc := ast.NewObjectNode(map[string]ast.SchemaNode{
		"type": ast.NewLiteralNode("document", pos),
		"segments": ast.NewArrayDataNode([]ast.SchemaNode{
			ast.NewObjectNode(map[string]ast.SchemaNode{
				"kind":  ast.NewLiteralNode("text", pos),
				"value": ast.NewLiteralNode("a ", pos),
			}, pos),
			ast.NewObjectNode(map[string]ast.SchemaNode{
				"kind":      ast.NewLiteralNode("entity", pos),
				"form":      ast.NewLiteralNode("named", pos),
				"codepoint": ast.NewLiteralNode(int64('<'), pos),
			}, pos),
			ast.NewObjectNode(map[string]ast.SchemaNode{
				"kind":      ast.NewLiteralNode("entity", pos),
				"form":      ast.NewLiteralNode("hex", pos),
				"codepoint": ast.NewLiteralNode(int64(0x2192), pos),
			}, pos),
			ast.NewObjectNode(map[string]ast.SchemaNode{
				"kind":      ast.NewLiteralNode("entity", pos),
				"form":      ast.NewLiteralNode("decimal", pos),
				"codepoint": ast.NewLiteralNode(int64(38), pos),
			}, pos),
		}, pos),
		"errors": ast.NewArrayDataNode(nil, pos),
	}, pos)

	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := "a &lt;&#x2192;&#38;"
	if string(out) != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}

func TestRender_BadNode(t *testing.T) {
	pos := ast.Position{}

	if _, err := Render(ast.NewLiteralNode("nope", pos)); err == nil {
		t.Error("expected error for non-document node")
	}

	doc := ast.NewObjectNode(map[string]ast.SchemaNode{
		"type": ast.NewLiteralNode("document", pos),
		"segments": ast.NewArrayDataNode([]ast.SchemaNode{
			ast.NewObjectNode(map[string]ast.SchemaNode{
				"kind": ast.NewLiteralNode("comment", pos),
			}, pos),
		}, pos),
	}, pos)
	if _, err := Render(doc); err == nil {
		t.Error("expected error for unknown segment kind")
	}
}
