package docx

// Hyperlink run styling, matching the Word default character style.
const (
	hyperlinkColor     = "0563C1"
	hyperlinkUnderline = "single"
)

// Border describes a single paragraph border edge.
type Border struct {
	Color string // hex without '#', or "auto"
	Size  int    // eighths of a point
	Space int    // points of padding between border and text
}

// NumberingRef attaches a paragraph to a numbering definition.
type NumberingRef struct {
	ID    int // numbering definition (NumIDBullet, NumIDDecimal)
	Level int // indentation level, 0-based
}

// ParagraphChild is an inline-level element inside a paragraph.
type ParagraphChild interface {
	paragraphChild()
}

// Paragraph is a block of runs with optional paragraph-level formatting.
type Paragraph struct {
	Style         string // paragraph style ID, e.g. "Heading1"
	Shading       string // background fill hex, empty = none
	LeftBorder    *Border
	BottomBorder  *Border
	IndentLeft    int    // twips
	Justification string // "", "left", "center", "right"
	Numbering     *NumberingRef
	Children      []ParagraphChild

	doc *Document
}

func (*Paragraph) bodyItem() {}

// Run is a span of text sharing one set of character formatting.
// Exactly one of Text, Break, or Drawing is meaningful.
type Run struct {
	Text    string
	Break   bool // explicit line break (<w:br/>)
	Drawing *Drawing

	Bold      bool
	Italic    bool
	Strike    bool
	Font      string // empty = inherit
	Size      int    // half-points, 0 = inherit
	Color     string // hex without '#', empty = inherit
	Underline string // "", "single"
}

func (*Run) paragraphChild() {}

// Drawing is an inline picture reference sized in EMU.
type Drawing struct {
	RelID string
	ID    int
	CX    int64
	CY    int64
}

// HyperlinkRun wraps runs in a clickable external hyperlink.
type HyperlinkRun struct {
	RelID string
	Runs  []*Run
}

func (*HyperlinkRun) paragraphChild() {}

// AddRun appends a text run and returns it for formatting.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{Text: text}
	p.Children = append(p.Children, r)
	return r
}

// AddBreak appends an explicit line break within the paragraph.
func (p *Paragraph) AddBreak() {
	p.Children = append(p.Children, &Run{Break: true})
}

// AddHyperlink appends a hyperlink with the fixed link styling
// (accent color, single underline) bound to url.
func (p *Paragraph) AddHyperlink(url, text string) *HyperlinkRun {
	relID := p.doc.addRelationship(relTypeHyperlink, url, true)
	h := &HyperlinkRun{
		RelID: relID,
		Runs: []*Run{{
			Text:      text,
			Color:     hyperlinkColor,
			Underline: hyperlinkUnderline,
		}},
	}
	p.Children = append(p.Children, h)
	return h
}

// Runs returns all runs in the paragraph, flattening hyperlinks.
// Intended for tests and inspection.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, child := range p.Children {
		switch c := child.(type) {
		case *Run:
			runs = append(runs, c)
		case *HyperlinkRun:
			runs = append(runs, c.Runs...)
		}
	}
	return runs
}

// PlainText concatenates the text of all runs. Breaks become newlines.
func (p *Paragraph) PlainText() string {
	var sb []byte
	for _, r := range p.Runs() {
		if r.Break {
			sb = append(sb, '\n')
			continue
		}
		sb = append(sb, r.Text...)
	}
	return string(sb)
}
