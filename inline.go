package md2docx

import "github.com/alnah/go-md2docx/internal/docx"

// inlineState is the formatting inherited from enclosing emphasis wrappers.
// Flags only ever turn on as the recursion descends; there is no mechanism
// to suppress an ancestor's styling.
type inlineState struct {
	Bold   bool
	Italic bool
	Strike bool
}

// renderInline emits styled runs for a sequence of inline nodes into para.
// container is the enclosing block container: pictures cannot live inside a
// run, so images attach there instead. A nil or empty node list is a no-op.
func (c *Converter) renderInline(para *docx.Paragraph, container docx.Container, nodes []*Node, baseDir string, st inlineState) {
	for _, n := range nodes {
		switch n.Type {
		case TypeText:
			run := para.AddRun(n.Text())
			run.Bold = st.Bold
			run.Italic = st.Italic
			run.Strike = st.Strike

		case TypeStrong:
			c.renderInline(para, container, n.Children, baseDir, inlineState{Bold: true, Italic: st.Italic, Strike: st.Strike})

		case TypeEmphasis:
			c.renderInline(para, container, n.Children, baseDir, inlineState{Bold: st.Bold, Italic: true, Strike: st.Strike})

		case TypeStrikethrough:
			c.renderInline(para, container, n.Children, baseDir, inlineState{Bold: st.Bold, Italic: st.Italic, Strike: true})

		case TypeCodespan:
			// Strike does not propagate onto code spans.
			run := para.AddRun(n.Text())
			run.Font = codeFont
			run.Size = codeFontSize
			run.Bold = st.Bold
			run.Italic = st.Italic

		case TypeLink:
			url := n.Attrs.URL
			if url == "" {
				url = n.Attrs.Href
			}
			if url == "" {
				continue
			}
			// Link text renders plain-link-styled; nested formatting
			// inside the label is flattened away.
			para.AddHyperlink(url, ExtractText(n.Children))

		case TypeImage:
			src := n.Attrs.Src
			if src == "" {
				src = n.Attrs.URL
			}
			if src == "" {
				continue
			}
			c.addImage(container, src, baseDir)

		case TypeSoftbreak:
			para.AddRun("\n")

		case TypeLinebreak:
			para.AddBreak()

		default:
			c.logger.Debug("skipping unsupported inline node", "type", n.Type)
		}
	}
}
