package md2docx

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/alnah/go-md2docx/internal/docx"
)

// Task list checkbox glyphs (ballot box with check / ballot box).
const (
	checkedGlyph   = "☑ "
	uncheckedGlyph = "☐ "
)

// renderTokens renders a sequence of top-level block nodes into doc.
func (c *Converter) renderTokens(doc *docx.Document, tokens []*Node, baseDir string) {
	for _, tok := range tokens {
		c.renderBlock(doc, tok, baseDir)
	}
}

// renderBlock dispatches one block node to its handler. Unrecognized tags
// are skipped so parser extensions degrade instead of failing.
func (c *Converter) renderBlock(doc *docx.Document, n *Node, baseDir string) {
	switch n.Type {
	case TypeHeading:
		c.renderHeading(doc, n, baseDir)
	case TypeParagraph:
		c.renderParagraph(doc, n, baseDir)
	case TypeBlockCode:
		c.renderCodeBlock(doc, n)
	case TypeBlockQuote:
		c.renderBlockquote(doc, n, baseDir)
	case TypeAlert:
		c.renderAlert(doc, n, baseDir)
	case TypeList:
		c.renderList(doc, n, baseDir, 0)
	case TypeTable:
		c.renderTable(doc, n, baseDir)
	case TypeThematicBreak:
		c.renderThematicBreak(doc)
	case TypeBlankLine:
		// Structural separator, no output.
	default:
		c.logger.Debug("skipping unsupported block node", "type", n.Type)
	}
}

// renderHeading renders a heading block. A missing level attribute
// defaults to 1.
func (c *Converter) renderHeading(doc *docx.Document, n *Node, baseDir string) {
	level := n.Attrs.Level
	if level == 0 {
		level = 1
	}
	heading := doc.AddHeading(level)
	c.renderInline(heading, doc, n.Children, baseDir, inlineState{})
}

// renderParagraph renders a paragraph. A paragraph whose only child is an
// image bypasses run creation: the picture embeds directly, without an
// empty text paragraph wrapped around it.
func (c *Converter) renderParagraph(doc *docx.Document, n *Node, baseDir string) {
	if len(n.Children) == 1 && n.Children[0].Type == TypeImage {
		img := n.Children[0]
		src := img.Attrs.Src
		if src == "" {
			src = img.Attrs.URL
		}
		if src != "" {
			c.addImage(doc, src, baseDir)
		}
		return
	}

	para := doc.AddParagraph()
	c.renderInline(para, doc, n.Children, baseDir, inlineState{})
}

// renderCodeBlock renders a fenced or indented code block with syntax
// highlighting. Unknown languages fall back to plain text; highlighting
// never fails the conversion.
func (c *Converter) renderCodeBlock(doc *docx.Document, n *Node) {
	raw := strings.TrimSuffix(n.Text(), "\n")
	lang := infoLanguage(n.Attrs.Info)

	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	para := doc.AddParagraph()
	para.Shading = codeFill

	it, err := lexer.Tokenise(nil, raw)
	if err != nil {
		c.logger.Warn("tokenizing code block failed, rendering plain", "language", lang, "error", err)
		run := para.AddRun(raw)
		run.Font = codeFont
		run.Size = codeFontSize
		return
	}

	for _, tok := range it.Tokens() {
		if tok.Value == "" {
			continue
		}
		run := para.AddRun(tok.Value)
		run.Font = codeFont
		run.Size = codeFontSize

		style, ok := lookupTokenStyle(tok.Type)
		if !ok {
			continue
		}
		run.Color = style.Color
		run.Bold = style.Bold
		run.Italic = style.Italic
	}
}

// renderBlockquote renders a blockquote: paragraph children get a left
// indent and a gray left rule; anything else (nested lists, code blocks)
// recurses through the block dispatcher.
func (c *Converter) renderBlockquote(doc *docx.Document, n *Node, baseDir string) {
	for _, child := range n.Children {
		if child.Type != TypeParagraph {
			c.renderBlock(doc, child, baseDir)
			continue
		}
		para := doc.AddParagraph()
		para.IndentLeft = quoteIndentTwips
		para.LeftBorder = &docx.Border{
			Color: quoteBorderColor,
			Size:  quoteBorderSize,
			Space: quoteBorderSpace,
		}
		c.renderInline(para, doc, child.Children, baseDir, inlineState{})
	}
}

// renderAlert renders a GitHub-style alert: a bold colored label paragraph
// followed by the body. Paragraph children share the alert's shading,
// border, and indent; other children recurse without the alert wrapper.
func (c *Converter) renderAlert(doc *docx.Document, n *Node, baseDir string) {
	severity := n.Attrs.Alert
	style, ok := alertStyles[severity]
	if !ok {
		style = alertStyles["NOTE"]
	}

	decorate := func(para *docx.Paragraph) {
		para.IndentLeft = quoteIndentTwips
		para.Shading = style.Background
		para.LeftBorder = &docx.Border{
			Color: style.Border,
			Size:  quoteBorderSize,
			Space: quoteBorderSpace,
		}
	}

	label := doc.AddParagraph()
	decorate(label)
	run := label.AddRun(style.Label)
	run.Bold = true
	run.Color = style.Text

	for _, child := range n.Children {
		switch child.Type {
		case TypeParagraph:
			para := doc.AddParagraph()
			decorate(para)
			c.renderInline(para, doc, child.Children, baseDir, inlineState{})
		case TypeBlankLine:
			continue
		default:
			c.renderBlock(doc, child, baseDir)
		}
	}
}

// renderList renders ordered, unordered, and task lists. Nesting depth maps
// to the numbering definition's indentation levels; indentation itself is
// the document format's native list mechanic, not computed here.
func (c *Converter) renderList(doc *docx.Document, n *Node, baseDir string, depth int) {
	numID := docx.NumIDBullet
	if n.Attrs.Ordered {
		numID = docx.NumIDDecimal
	}
	level := depth
	if level > 5 {
		level = 5
	}

	for _, item := range n.Children {
		isTask := item.Type == TypeTaskListItem
		firstText := true

		for _, child := range item.Children {
			switch {
			case isTextBearing(child.Type):
				para := doc.AddParagraph()
				para.Numbering = &docx.NumberingRef{ID: numID, Level: level}
				// The glyph goes on the first text-bearing child only;
				// later paragraphs in the same item do not repeat it.
				if isTask && firstText {
					glyph := uncheckedGlyph
					if item.Attrs.Checked {
						glyph = checkedGlyph
					}
					para.AddRun(glyph)
				}
				firstText = false
				c.renderInline(para, doc, child.Children, baseDir, inlineState{})

			case child.Type == TypeList:
				c.renderList(doc, child, baseDir, depth+1)

			default:
				c.renderBlock(doc, child, baseDir)
			}
		}
	}
}

// renderTable renders a table: column count from the first row, header row
// bold, per-column alignment read once from the header cells and applied to
// every row. Tables with no rows are skipped.
func (c *Converter) renderTable(doc *docx.Document, n *Node, baseDir string) {
	var head *Node
	var bodyRows []*Node
	for _, child := range n.Children {
		switch child.Type {
		case TypeTableHead:
			head = child
		case TypeTableBody:
			bodyRows = child.Children
		}
	}

	type tableRow struct {
		cells    []*Node
		isHeader bool
	}
	var rows []tableRow
	if head != nil && len(head.Children) > 0 {
		rows = append(rows, tableRow{cells: head.Children, isHeader: true})
	}
	for _, row := range bodyRows {
		rows = append(rows, tableRow{cells: row.Children})
	}
	if len(rows) == 0 || len(rows[0].cells) == 0 {
		return
	}

	cols := len(rows[0].cells)
	table := doc.AddTable(len(rows), cols)

	// Column alignments come from the header row's cell attributes.
	var aligns []string
	if head != nil {
		for _, cell := range head.Children {
			aligns = append(aligns, cell.Attrs.Align)
		}
	}

	for rowIdx, row := range rows {
		for colIdx, cellNode := range row.cells {
			cell := table.Cell(rowIdx, colIdx)
			if cell == nil {
				break
			}
			para := cell.Paragraph()
			c.renderInline(para, cell, cellNode.Children, baseDir, inlineState{Bold: row.isHeader})
			if colIdx < len(aligns) && isValidAlignment(aligns[colIdx]) {
				para.Justification = aligns[colIdx]
			}
		}
	}
}

func isValidAlignment(a string) bool {
	switch a {
	case "left", "center", "right":
		return true
	}
	return false
}

// renderThematicBreak synthesizes a horizontal rule: the format has no
// native primitive, so an empty paragraph carries a bottom border.
func (c *Converter) renderThematicBreak(doc *docx.Document) {
	para := doc.AddParagraph()
	para.BottomBorder = &docx.Border{Color: "auto", Size: 6, Space: 1}
}
