package md2docx

import (
	"io"
	"testing"

	"github.com/alnah/go-md2docx/internal/logging"
)

func newTestParser() *goldmarkParser {
	return newGoldmarkParser(logging.NewWithWriter(io.Discard, "error"))
}

func TestParseHeading(t *testing.T) {
	tokens := newTestParser().Parse([]byte("## Section Title"))

	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	h := tokens[0]
	if h.Type != TypeHeading {
		t.Fatalf("type = %q, want heading", h.Type)
	}
	if h.Attrs.Level != 2 {
		t.Errorf("level = %d, want 2", h.Attrs.Level)
	}
	if got := ExtractText(h.Children); got != "Section Title" {
		t.Errorf("text = %q, want %q", got, "Section Title")
	}
}

func TestParseEmphasis(t *testing.T) {
	tokens := newTestParser().Parse([]byte("plain **bold** *italic* ~~gone~~"))

	if len(tokens) != 1 || tokens[0].Type != TypeParagraph {
		t.Fatalf("expected a single paragraph, got %+v", tokens)
	}
	kids := tokens[0].Children

	var sawStrong, sawEmphasis, sawStrike bool
	for _, k := range kids {
		switch k.Type {
		case TypeStrong:
			sawStrong = true
			if got := ExtractText(k.Children); got != "bold" {
				t.Errorf("strong text = %q, want bold", got)
			}
		case TypeEmphasis:
			sawEmphasis = true
		case TypeStrikethrough:
			sawStrike = true
		}
	}
	if !sawStrong || !sawEmphasis || !sawStrike {
		t.Errorf("missing inline wrappers: strong=%v emphasis=%v strike=%v", sawStrong, sawEmphasis, sawStrike)
	}
}

func TestParseFencedCodeBlock(t *testing.T) {
	src := "```go\nfmt.Println(1)\n```\n"
	tokens := newTestParser().Parse([]byte(src))

	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}
	cb := tokens[0]
	if cb.Type != TypeBlockCode {
		t.Fatalf("type = %q, want block_code", cb.Type)
	}
	if cb.Attrs.Info != "go" {
		t.Errorf("info = %q, want go", cb.Attrs.Info)
	}
	if cb.Raw != "fmt.Println(1)\n" {
		t.Errorf("raw = %q", cb.Raw)
	}
}

func TestParseLink(t *testing.T) {
	tokens := newTestParser().Parse([]byte("[site](https://example.com)"))

	kids := tokens[0].Children
	if len(kids) != 1 || kids[0].Type != TypeLink {
		t.Fatalf("expected one link child, got %+v", kids)
	}
	if kids[0].Attrs.URL != "https://example.com" {
		t.Errorf("url = %q", kids[0].Attrs.URL)
	}
	if got := ExtractText(kids[0].Children); got != "site" {
		t.Errorf("label = %q, want site", got)
	}
}

func TestParseImageUsesURLKey(t *testing.T) {
	tokens := newTestParser().Parse([]byte("![alt text](img.png)"))

	img := tokens[0].Children[0]
	if img.Type != TypeImage {
		t.Fatalf("type = %q, want image", img.Type)
	}
	if img.Attrs.URL != "img.png" {
		t.Errorf("url = %q, want img.png", img.Attrs.URL)
	}
	if img.Attrs.Src != "" {
		t.Errorf("src should be empty before normalization, got %q", img.Attrs.Src)
	}
	if img.Attrs.Alt != "alt text" {
		t.Errorf("alt = %q, want %q", img.Attrs.Alt, "alt text")
	}
}

func TestParseTaskList(t *testing.T) {
	src := "- [x] done\n- [ ] todo\n"
	tokens := newTestParser().Parse([]byte(src))

	if len(tokens) != 1 || tokens[0].Type != TypeList {
		t.Fatalf("expected a list, got %+v", tokens)
	}
	items := tokens[0].Children
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	if items[0].Type != TypeTaskListItem || !items[0].Attrs.Checked {
		t.Errorf("first item = %q checked=%v, want checked task item", items[0].Type, items[0].Attrs.Checked)
	}
	if items[1].Type != TypeTaskListItem || items[1].Attrs.Checked {
		t.Errorf("second item = %q checked=%v, want unchecked task item", items[1].Type, items[1].Attrs.Checked)
	}

	// The checkbox node and its trailing space must be folded away.
	if got := ExtractText(items[0].Children); got != "done" {
		t.Errorf("first item text = %q, want done", got)
	}
}

func TestParseOrderedList(t *testing.T) {
	tokens := newTestParser().Parse([]byte("1. one\n2. two\n"))

	list := tokens[0]
	if list.Type != TypeList || !list.Attrs.Ordered {
		t.Fatalf("expected ordered list, got %+v", list)
	}
	if len(list.Children) != 2 {
		t.Errorf("got %d items, want 2", len(list.Children))
	}
}

func TestParseTable(t *testing.T) {
	src := "| Name | Age |\n|:-----|----:|\n| Ann | 30 |\n| Bob | 25 |\n"
	tokens := newTestParser().Parse([]byte(src))

	if len(tokens) != 1 || tokens[0].Type != TypeTable {
		t.Fatalf("expected a table, got %+v", tokens)
	}

	var head, body *Node
	for _, child := range tokens[0].Children {
		switch child.Type {
		case TypeTableHead:
			head = child
		case TypeTableBody:
			body = child
		}
	}
	if head == nil || body == nil {
		t.Fatal("missing table_head or table_body")
	}

	if len(head.Children) != 2 {
		t.Fatalf("got %d header cells, want 2", len(head.Children))
	}
	if head.Children[0].Attrs.Align != "left" {
		t.Errorf("first column align = %q, want left", head.Children[0].Attrs.Align)
	}
	if head.Children[1].Attrs.Align != "right" {
		t.Errorf("second column align = %q, want right", head.Children[1].Attrs.Align)
	}

	if len(body.Children) != 2 {
		t.Fatalf("got %d body rows, want 2", len(body.Children))
	}
	row := body.Children[0]
	if row.Type != TypeTableRow || len(row.Children) != 2 {
		t.Fatalf("unexpected row shape: %+v", row)
	}
	if got := ExtractText(row.Children[0].Children); got != "Ann" {
		t.Errorf("cell text = %q, want Ann", got)
	}
}

func TestParseThematicBreak(t *testing.T) {
	tokens := newTestParser().Parse([]byte("above\n\n---\n\nbelow\n"))

	var sawBreak bool
	for _, tok := range tokens {
		if tok.Type == TypeThematicBreak {
			sawBreak = true
		}
	}
	if !sawBreak {
		t.Error("expected a thematic_break token")
	}
}

func TestParseSoftAndHardBreaks(t *testing.T) {
	// Two trailing spaces force a hard break on the first line.
	src := "first  \nsecond\nthird\n"
	tokens := newTestParser().Parse([]byte(src))

	kids := tokens[0].Children
	var sawLinebreak, sawSoftbreak bool
	for _, k := range kids {
		switch k.Type {
		case TypeLinebreak:
			sawLinebreak = true
		case TypeSoftbreak:
			sawSoftbreak = true
		}
	}
	if !sawLinebreak {
		t.Error("expected a linebreak token")
	}
	if !sawSoftbreak {
		t.Error("expected a softbreak token")
	}
}

func TestParseAutoLink(t *testing.T) {
	tokens := newTestParser().Parse([]byte("visit https://example.com now"))

	var link *Node
	for _, k := range tokens[0].Children {
		if k.Type == TypeLink {
			link = k
		}
	}
	if link == nil {
		t.Fatal("expected an autolinked URL")
	}
	if link.Attrs.URL != "https://example.com" {
		t.Errorf("url = %q", link.Attrs.URL)
	}
}
