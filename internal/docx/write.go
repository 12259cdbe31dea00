package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Save serializes the document to a DOCX file at path.
func (d *Document) Save(path string) error {
	f, err := os.Create(path) // #nosec G304 -- output path is chosen by the caller
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if _, err := d.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

// WriteTo writes the DOCX container to w. Implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/document.xml", d.DocumentXML()},
		{"word/_rels/document.xml.rels", d.documentRelsXML()},
		{"word/styles.xml", []byte(stylesXML)},
		{"word/numbering.xml", numberingXML()},
	}
	for _, m := range d.Media {
		parts = append(parts, struct {
			name string
			data []byte
		}{"word/media/" + m.Name, m.Data})
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return cw.n, fmt.Errorf("creating zip entry %s: %w", part.name, err)
		}
		if _, err := f.Write(part.data); err != nil {
			return cw.n, fmt.Errorf("writing zip entry %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("finalizing zip: %w", err)
	}
	return cw.n, nil
}

// countingWriter tracks bytes written for the io.WriterTo contract.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// DocumentXML renders the word/document.xml part. Exported so tests can
// assert on the generated markup without unzipping.
func (d *Document) DocumentXML() []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString(`<w:document` +
		` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing">`)
	b.WriteString(`<w:body>`)
	for _, item := range d.Body {
		switch it := item.(type) {
		case *Paragraph:
			writeParagraph(&b, it)
		case *Table:
			writeTable(&b, it)
		}
	}
	b.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr>`)
	b.WriteString(`</w:body></w:document>`)
	return b.Bytes()
}

// documentRelsXML renders word/_rels/document.xml.rels. rId1 and rId2 are the
// reserved styles and numbering relationships; the rest were registered while
// building content.
func (d *Document) documentRelsXML() []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	b.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>`)
	for _, rel := range d.Rels {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"`, rel.ID, rel.Type, escAttr(rel.Target))
		if rel.External {
			b.WriteString(` TargetMode="External"`)
		}
		b.WriteString(`/>`)
	}
	b.WriteString(`</Relationships>`)
	return b.Bytes()
}

func writeParagraph(b *bytes.Buffer, p *Paragraph) {
	b.WriteString(`<w:p>`)
	writeParagraphProps(b, p)
	for _, child := range p.Children {
		switch c := child.(type) {
		case *Run:
			writeRun(b, c)
		case *HyperlinkRun:
			fmt.Fprintf(b, `<w:hyperlink r:id="%s">`, c.RelID)
			for _, r := range c.Runs {
				writeRun(b, r)
			}
			b.WriteString(`</w:hyperlink>`)
		}
	}
	b.WriteString(`</w:p>`)
}

func writeParagraphProps(b *bytes.Buffer, p *Paragraph) {
	hasProps := p.Style != "" || p.Numbering != nil || p.LeftBorder != nil ||
		p.BottomBorder != nil || p.Shading != "" || p.IndentLeft != 0 || p.Justification != ""
	if !hasProps {
		return
	}

	// Child order follows the CT_PPr schema sequence.
	b.WriteString(`<w:pPr>`)
	if p.Style != "" {
		fmt.Fprintf(b, `<w:pStyle w:val="%s"/>`, p.Style)
	}
	if p.Numbering != nil {
		fmt.Fprintf(b, `<w:numPr><w:ilvl w:val="%d"/><w:numId w:val="%d"/></w:numPr>`,
			p.Numbering.Level, p.Numbering.ID)
	}
	if p.LeftBorder != nil || p.BottomBorder != nil {
		b.WriteString(`<w:pBdr>`)
		if p.LeftBorder != nil {
			writeBorder(b, "left", p.LeftBorder)
		}
		if p.BottomBorder != nil {
			writeBorder(b, "bottom", p.BottomBorder)
		}
		b.WriteString(`</w:pBdr>`)
	}
	if p.Shading != "" {
		fmt.Fprintf(b, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, p.Shading)
	}
	if p.IndentLeft != 0 {
		fmt.Fprintf(b, `<w:ind w:left="%d"/>`, p.IndentLeft)
	}
	if p.Justification != "" {
		fmt.Fprintf(b, `<w:jc w:val="%s"/>`, p.Justification)
	}
	b.WriteString(`</w:pPr>`)
}

func writeBorder(b *bytes.Buffer, edge string, border *Border) {
	fmt.Fprintf(b, `<w:%s w:val="single" w:sz="%d" w:space="%d" w:color="%s"/>`,
		edge, border.Size, border.Space, border.Color)
}

func writeRun(b *bytes.Buffer, r *Run) {
	if r.Drawing != nil {
		writeDrawingRun(b, r.Drawing)
		return
	}

	b.WriteString(`<w:r>`)
	writeRunProps(b, r)
	if r.Break {
		b.WriteString(`<w:br/>`)
	} else {
		// Embedded newlines become explicit breaks; Word ignores literal
		// newlines inside w:t.
		for i, seg := range strings.Split(r.Text, "\n") {
			if i > 0 {
				b.WriteString(`<w:br/>`)
			}
			if seg != "" {
				b.WriteString(`<w:t xml:space="preserve">`)
				b.WriteString(escText(seg))
				b.WriteString(`</w:t>`)
			}
		}
	}
	b.WriteString(`</w:r>`)
}

func writeRunProps(b *bytes.Buffer, r *Run) {
	hasProps := r.Bold || r.Italic || r.Strike || r.Font != "" || r.Size != 0 ||
		r.Color != "" || r.Underline != ""
	if !hasProps {
		return
	}

	// Child order follows the CT_RPr schema sequence.
	b.WriteString(`<w:rPr>`)
	if r.Font != "" {
		fmt.Fprintf(b, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`, r.Font, r.Font, r.Font)
	}
	if r.Bold {
		b.WriteString(`<w:b/>`)
	}
	if r.Italic {
		b.WriteString(`<w:i/>`)
	}
	if r.Strike {
		b.WriteString(`<w:strike/>`)
	}
	if r.Color != "" {
		fmt.Fprintf(b, `<w:color w:val="%s"/>`, r.Color)
	}
	if r.Size != 0 {
		fmt.Fprintf(b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.Size, r.Size)
	}
	if r.Underline != "" {
		fmt.Fprintf(b, `<w:u w:val="%s"/>`, r.Underline)
	}
	b.WriteString(`</w:rPr>`)
}

func writeDrawingRun(b *bytes.Buffer, d *Drawing) {
	b.WriteString(`<w:r><w:drawing>`)
	fmt.Fprintf(b, `<wp:inline distT="0" distB="0" distL="0" distR="0">`+
		`<wp:extent cx="%d" cy="%d"/>`+
		`<wp:docPr id="%d" name="Picture %d"/>`, d.CX, d.CY, d.ID, d.ID)
	b.WriteString(`<a:graphic xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">` +
		`<a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture">` +
		`<pic:pic xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture">`)
	fmt.Fprintf(b, `<pic:nvPicPr><pic:cNvPr id="%d" name="Picture %d"/><pic:cNvPicPr/></pic:nvPicPr>`, d.ID, d.ID)
	fmt.Fprintf(b, `<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`, d.RelID)
	fmt.Fprintf(b, `<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm>`+
		`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`, d.CX, d.CY)
	b.WriteString(`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r>`)
}

func writeTable(b *bytes.Buffer, t *Table) {
	b.WriteString(`<w:tbl>`)
	b.WriteString(`<w:tblPr><w:tblStyle w:val="TableGrid"/><w:tblW w:w="0" w:type="auto"/>` +
		tableBordersXML + `</w:tblPr>`)
	b.WriteString(`<w:tblGrid>`)
	for i := 0; i < t.Cols; i++ {
		b.WriteString(`<w:gridCol/>`)
	}
	b.WriteString(`</w:tblGrid>`)
	for _, row := range t.Rows {
		b.WriteString(`<w:tr>`)
		for _, cell := range row.Cells {
			b.WriteString(`<w:tc><w:tcPr><w:tcW w:w="0" w:type="auto"/></w:tcPr>`)
			for _, p := range cell.Paragraphs {
				writeParagraph(b, p)
			}
			b.WriteString(`</w:tc>`)
		}
		b.WriteString(`</w:tr>`)
	}
	b.WriteString(`</w:tbl>`)
}

const tableBordersXML = `<w:tblBorders>` +
	`<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`<w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
	`</w:tblBorders>`

// escText escapes character data for XML content.
func escText(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// escAttr escapes a value for use inside a double-quoted XML attribute.
func escAttr(s string) string {
	return escText(s)
}
