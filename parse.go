package md2docx

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// markdownParser abstracts Markdown parsing into the token tree.
type markdownParser interface {
	Parse(source []byte) []*Node
}

// goldmarkParser parses GFM with goldmark (pure Go) and maps the resulting
// AST onto the token tree the renderer consumes.
type goldmarkParser struct {
	md     goldmark.Markdown
	logger *log.Logger
}

// newGoldmarkParser creates a parser with the GFM extensions enabled
// (tables, strikethrough, task lists, autolinks).
func newGoldmarkParser(logger *log.Logger) *goldmarkParser {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	return &goldmarkParser{md: md, logger: logger}
}

// Parse converts Markdown source into a token tree. Parsing itself cannot
// fail; malformed input produces a partial but well-formed tree.
func (p *goldmarkParser) Parse(source []byte) []*Node {
	doc := p.md.Parser().Parse(text.NewReader(source))
	m := &astMapper{source: source, logger: p.logger}
	return m.mapChildren(doc)
}

// astMapper walks a goldmark AST and emits token tree nodes.
type astMapper struct {
	source []byte
	logger *log.Logger
}

// mapChildren maps all children of a goldmark node. A single goldmark node
// may emit zero, one, or two token nodes (text plus trailing line break).
func (m *astMapper) mapChildren(parent ast.Node) []*Node {
	var nodes []*Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		nodes = append(nodes, m.mapNode(child)...)
	}
	return nodes
}

func (m *astMapper) mapNode(gm ast.Node) []*Node {
	switch n := gm.(type) {
	case *ast.Heading:
		return one(&Node{
			Type:     TypeHeading,
			Attrs:    Attrs{Level: n.Level},
			Children: m.mapChildren(n),
		})

	case *ast.Paragraph:
		return one(&Node{Type: TypeParagraph, Children: m.mapChildren(n)})

	case *ast.TextBlock:
		return one(&Node{Type: TypeBlockText, Children: m.mapChildren(n)})

	case *ast.FencedCodeBlock:
		info := ""
		if n.Info != nil {
			info = string(n.Info.Value(m.source))
		}
		return one(&Node{
			Type:  TypeBlockCode,
			Attrs: Attrs{Info: info},
			Raw:   m.blockLines(n),
		})

	case *ast.CodeBlock:
		return one(&Node{Type: TypeBlockCode, Raw: m.blockLines(n)})

	case *ast.Blockquote:
		return one(&Node{Type: TypeBlockQuote, Children: m.mapChildren(n)})

	case *ast.List:
		return one(&Node{
			Type:     TypeList,
			Attrs:    Attrs{Ordered: n.IsOrdered(), Start: n.Start},
			Children: m.mapChildren(n),
		})

	case *ast.ListItem:
		return one(m.mapListItem(n))

	case *ast.ThematicBreak:
		return one(&Node{Type: TypeThematicBreak})

	case *east.Table:
		return one(m.mapTable(n))

	case *ast.Text:
		return m.mapText(n)

	case *ast.String:
		return one(&Node{Type: TypeText, Raw: string(n.Value)})

	case *ast.Emphasis:
		t := TypeEmphasis
		if n.Level == 2 {
			t = TypeStrong
		}
		return one(&Node{Type: t, Children: m.mapChildren(n)})

	case *east.Strikethrough:
		return one(&Node{Type: TypeStrikethrough, Children: m.mapChildren(n)})

	case *ast.CodeSpan:
		return one(&Node{Type: TypeCodespan, Raw: m.codeSpanText(n)})

	case *ast.Link:
		return one(&Node{
			Type:     TypeLink,
			Attrs:    Attrs{URL: string(n.Destination), Title: string(n.Title)},
			Children: m.mapChildren(n),
		})

	case *ast.AutoLink:
		url := string(n.URL(m.source))
		return one(&Node{
			Type:     TypeLink,
			Attrs:    Attrs{URL: url},
			Children: []*Node{{Type: TypeText, Raw: string(n.Label(m.source))}},
		})

	case *ast.Image:
		// Images are emitted under the "url" key; normalization
		// canonicalizes to "src" afterwards.
		return one(&Node{
			Type:  TypeImage,
			Attrs: Attrs{URL: string(n.Destination), Title: string(n.Title), Alt: ExtractText(m.mapChildren(n))},
		})

	case *east.TaskCheckBox:
		return one(&Node{Type: taskCheckboxType, Attrs: Attrs{Checked: n.IsChecked}})

	default:
		if m.logger != nil {
			m.logger.Debug("skipping unsupported markdown node", "kind", gm.Kind().String())
		}
		return nil
	}
}

// mapText emits a text node and, when the segment ends a source line, the
// corresponding break node. goldmark stores line breaks as flags on the
// preceding text rather than separate nodes.
func (m *astMapper) mapText(n *ast.Text) []*Node {
	var nodes []*Node
	if v := n.Value(m.source); len(v) > 0 {
		nodes = append(nodes, &Node{Type: TypeText, Raw: string(v)})
	}
	switch {
	case n.HardLineBreak():
		nodes = append(nodes, &Node{Type: TypeLinebreak})
	case n.SoftLineBreak():
		nodes = append(nodes, &Node{Type: TypeSoftbreak})
	}
	return nodes
}

// mapListItem maps a list item and folds a leading GFM task checkbox into
// the item itself: the checkbox node is removed and its checked state moves
// to the item attrs.
func (m *astMapper) mapListItem(li *ast.ListItem) *Node {
	item := &Node{Type: TypeListItem, Children: m.mapChildren(li)}

	if len(item.Children) == 0 {
		return item
	}
	first := item.Children[0]
	if !isTextBearing(first.Type) || len(first.Children) == 0 {
		return item
	}
	cb := first.Children[0]
	if cb.Type != taskCheckboxType {
		return item
	}

	item.Type = TypeTaskListItem
	item.Attrs.Checked = cb.Attrs.Checked
	first.Children = first.Children[1:]
	// The checkbox consumes "[x]" but not the space that follows it.
	if len(first.Children) > 0 && first.Children[0].Type == TypeText {
		first.Children[0].Raw = strings.TrimPrefix(first.Children[0].Raw, " ")
	}
	return item
}

// mapTable maps a GFM table into the head/body shape the renderer expects:
// table_head holds the header cells directly, table_body holds row nodes.
func (m *astMapper) mapTable(t *east.Table) *Node {
	head := &Node{Type: TypeTableHead}
	body := &Node{Type: TypeTableBody}

	for child := t.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *east.TableHeader:
			head.Children = m.mapCells(row)
		case *east.TableRow:
			body.Children = append(body.Children, &Node{
				Type:     TypeTableRow,
				Children: m.mapCells(row),
			})
		}
	}

	return &Node{Type: TypeTable, Children: []*Node{head, body}}
}

func (m *astMapper) mapCells(row ast.Node) []*Node {
	var cells []*Node
	for child := row.FirstChild(); child != nil; child = child.NextSibling() {
		cell, ok := child.(*east.TableCell)
		if !ok {
			continue
		}
		cells = append(cells, &Node{
			Type:     TypeTableCell,
			Attrs:    Attrs{Align: alignmentString(cell.Alignment)},
			Children: m.mapChildren(cell),
		})
	}
	return cells
}

func alignmentString(a east.Alignment) string {
	switch a {
	case east.AlignLeft:
		return "left"
	case east.AlignCenter:
		return "center"
	case east.AlignRight:
		return "right"
	default:
		return ""
	}
}

// blockLines joins the source lines of a block node. Fenced code content
// keeps the trailing newline goldmark reports; the renderer strips one.
func (m *astMapper) blockLines(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(m.source))
	}
	return sb.String()
}

// codeSpanText flattens the text segments of a code span.
func (m *astMapper) codeSpanText(n *ast.CodeSpan) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Value(m.source))
		}
	}
	return sb.String()
}

func one(n *Node) []*Node {
	if n == nil {
		return nil
	}
	return []*Node{n}
}
