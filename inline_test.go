package md2docx

import (
	"testing"

	"github.com/alnah/go-md2docx/internal/docx"
)

func renderInlineNodes(t *testing.T, nodes []*Node) (*docx.Document, *docx.Paragraph) {
	t.Helper()
	c := newTestConverter()
	doc := docx.New()
	para := doc.AddParagraph()
	c.renderInline(para, doc, nodes, ".", inlineState{})
	return doc, para
}

func TestRenderInlinePlainText(t *testing.T) {
	_, para := renderInlineNodes(t, []*Node{{Type: TypeText, Raw: "hello"}})

	runs := para.Runs()
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Text != "hello" || r.Bold || r.Italic || r.Strike {
		t.Errorf("unexpected run: %+v", r)
	}
}

func TestRenderInlineNestedFormatting(t *testing.T) {
	// **bold _bolditalic_** — the inner run carries both flags.
	nodes := []*Node{{
		Type: TypeStrong,
		Children: []*Node{
			{Type: TypeText, Raw: "bold "},
			{Type: TypeEmphasis, Children: []*Node{{Type: TypeText, Raw: "bolditalic"}}},
		},
	}}
	_, para := renderInlineNodes(t, nodes)

	runs := para.Runs()
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if !runs[0].Bold || runs[0].Italic {
		t.Errorf("outer run flags: %+v", runs[0])
	}
	if !runs[1].Bold || !runs[1].Italic {
		t.Errorf("inner run must union both flags: %+v", runs[1])
	}
}

func TestRenderInlineStateUnionIsOrderIndependent(t *testing.T) {
	strikeInsideBold := []*Node{{
		Type: TypeStrong,
		Children: []*Node{
			{Type: TypeStrikethrough, Children: []*Node{{Type: TypeText, Raw: "x"}}},
		},
	}}
	boldInsideStrike := []*Node{{
		Type: TypeStrikethrough,
		Children: []*Node{
			{Type: TypeStrong, Children: []*Node{{Type: TypeText, Raw: "x"}}},
		},
	}}

	_, p1 := renderInlineNodes(t, strikeInsideBold)
	_, p2 := renderInlineNodes(t, boldInsideStrike)

	r1, r2 := p1.Runs()[0], p2.Runs()[0]
	if r1.Bold != r2.Bold || r1.Strike != r2.Strike {
		t.Errorf("nesting order changed the result: %+v vs %+v", r1, r2)
	}
	if !r1.Bold || !r1.Strike {
		t.Errorf("both flags must be set: %+v", r1)
	}
}

func TestRenderInlineCodespan(t *testing.T) {
	nodes := []*Node{{
		Type: TypeStrong,
		Children: []*Node{
			{Type: TypeCodespan, Raw: "x := 1"},
		},
	}}
	_, para := renderInlineNodes(t, nodes)

	r := para.Runs()[0]
	if r.Font != codeFont || r.Size != codeFontSize {
		t.Errorf("codespan must use monospace typography: %+v", r)
	}
	if !r.Bold {
		t.Errorf("codespan must inherit bold from its wrapper")
	}
}

func TestRenderInlineLink(t *testing.T) {
	nodes := []*Node{{
		Type:  TypeLink,
		Attrs: Attrs{URL: "https://example.com"},
		Children: []*Node{
			{Type: TypeStrong, Children: []*Node{{Type: TypeText, Raw: "bold label"}}},
		},
	}}
	doc, para := renderInlineNodes(t, nodes)

	runs := para.Runs()
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	// Nested label formatting is flattened; the run carries link styling.
	if runs[0].Text != "bold label" || runs[0].Underline == "" || runs[0].Color == "" {
		t.Errorf("unexpected link run: %+v", runs[0])
	}

	var sawHyperlinkRel bool
	for _, rel := range doc.Rels {
		if rel.Target == "https://example.com" && rel.External {
			sawHyperlinkRel = true
		}
	}
	if !sawHyperlinkRel {
		t.Error("hyperlink must register an external relationship")
	}
}

func TestRenderInlineLinkWithoutDestinationSkipped(t *testing.T) {
	nodes := []*Node{{
		Type:     TypeLink,
		Children: []*Node{{Type: TypeText, Raw: "label"}},
	}}
	_, para := renderInlineNodes(t, nodes)

	if len(para.Runs()) != 0 {
		t.Errorf("destination-less link must emit nothing, got %+v", para.Runs())
	}
}

func TestRenderInlineBreaks(t *testing.T) {
	nodes := []*Node{
		{Type: TypeText, Raw: "a"},
		{Type: TypeSoftbreak},
		{Type: TypeText, Raw: "b"},
		{Type: TypeLinebreak},
		{Type: TypeText, Raw: "c"},
	}
	_, para := renderInlineNodes(t, nodes)

	if got := para.PlainText(); got != "a\nb\nc" {
		t.Errorf("PlainText() = %q, want %q", got, "a\nb\nc")
	}
}
