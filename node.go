package md2docx

// NodeType discriminates token tree nodes. The tag set mirrors the GFM
// constructs the renderer understands; unknown tags are skipped at render
// time, so new parser output degrades gracefully instead of failing.
type NodeType string

// Block-level node types.
const (
	TypeHeading       NodeType = "heading"
	TypeParagraph     NodeType = "paragraph"
	TypeBlockText     NodeType = "block_text"
	TypeBlockCode     NodeType = "block_code"
	TypeBlockQuote    NodeType = "block_quote"
	TypeAlert         NodeType = "alert"
	TypeList          NodeType = "list"
	TypeListItem      NodeType = "list_item"
	TypeTaskListItem  NodeType = "task_list_item"
	TypeTable         NodeType = "table"
	TypeTableHead     NodeType = "table_head"
	TypeTableBody     NodeType = "table_body"
	TypeTableRow      NodeType = "table_row"
	TypeTableCell     NodeType = "table_cell"
	TypeThematicBreak NodeType = "thematic_break"

	// TypeBlankLine is never produced by the goldmark mapper; it exists so
	// the normalizers and renderer accept trees that carry explicit blank
	// separators between blocks.
	TypeBlankLine NodeType = "blank_line"
)

// Inline-level node types.
const (
	TypeText          NodeType = "text"
	TypeStrong        NodeType = "strong"
	TypeEmphasis      NodeType = "emphasis"
	TypeStrikethrough NodeType = "strikethrough"
	TypeCodespan      NodeType = "codespan"
	TypeLink          NodeType = "link"
	TypeImage         NodeType = "image"
	TypeSoftbreak     NodeType = "softbreak"
	TypeLinebreak     NodeType = "linebreak"
)

// taskCheckboxType marks a GFM checkbox during AST mapping. It never
// survives parsing: the parser folds it into the enclosing list item.
const taskCheckboxType NodeType = "task_checkbox"

// Attrs carries tag-specific metadata. Fields are meaningful only for the
// node types that set them; zero values mean "absent".
type Attrs struct {
	Level   int    // heading level
	Info    string // code block info string ("go", "mermaid flowchart", ...)
	Ordered bool   // list ordering flag
	Start   int    // ordered list start number
	Checked bool   // task list item state
	URL     string // link destination; also the raw image key before normalization
	Href    string // alternate link destination key (reference-style compatibility)
	Src     string // canonical image source after normalization
	Alt     string // image alternative text
	Title   string // link/image title
	Align   string // table cell alignment: "", "left", "center", "right"
	Alert   string // alert severity: NOTE, TIP, IMPORTANT, WARNING, CAUTION
}

// Node is one vertex of the token tree produced by the parser and consumed
// by the renderer. Leaf nodes carry their payload in Raw; container nodes
// carry Children. Handlers must tolerate either being empty.
type Node struct {
	Type     NodeType
	Attrs    Attrs
	Raw      string
	Children []*Node
}

// Text returns the node's literal payload, falling back from Raw to the
// flattened text of its children.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	if n.Raw != "" {
		return n.Raw
	}
	return ExtractText(n.Children)
}

// ExtractText recursively flattens the literal text of a node sequence.
// Nil or empty input yields the empty string.
func ExtractText(nodes []*Node) string {
	var out []byte
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Raw != "" {
			out = append(out, n.Raw...)
			continue
		}
		if len(n.Children) > 0 {
			out = append(out, ExtractText(n.Children)...)
		}
	}
	return string(out)
}

// isTextBearing reports whether a list item child renders as a text
// paragraph (and therefore receives the task checkbox glyph when first).
func isTextBearing(t NodeType) bool {
	return t == TypeParagraph || t == TypeBlockText
}
