package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Static package parts. These never vary per document: image extensions are
// always declared so media parts need no content-type bookkeeping.

const contentTypesXML = xml.Header +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Default Extension="png" ContentType="image/png"/>` +
	`<Default Extension="jpg" ContentType="image/jpeg"/>` +
	`<Default Extension="jpeg" ContentType="image/jpeg"/>` +
	`<Default Extension="gif" ContentType="image/gif"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// headingSizes are run sizes in half-points for Heading1..Heading6.
var headingSizes = [6]int{32, 28, 26, 24, 22, 22}

const headingColor = "2F5496"

// stylesXML is built once at init; the heading ladder is mechanical.
var stylesXML = buildStylesXML()

func buildStylesXML() string {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)
	b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr>` +
		`<w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:cs="Calibri"/>` +
		`<w:sz w:val="22"/><w:szCs w:val="22"/>` +
		`</w:rPr></w:rPrDefault></w:docDefaults>`)
	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal">` +
		`<w:name w:val="Normal"/></w:style>`)
	for i, size := range headingSizes {
		level := i + 1
		fmt.Fprintf(&b, `<w:style w:type="paragraph" w:styleId="Heading%d">`+
			`<w:name w:val="heading %d"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/>`+
			`<w:pPr><w:keepNext/><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="%d"/></w:pPr>`+
			`<w:rPr><w:b/><w:color w:val="%s"/><w:sz w:val="%d"/><w:szCs w:val="%d"/></w:rPr>`+
			`</w:style>`, level, level, i, headingColor, size, size)
	}
	b.WriteString(`<w:style w:type="character" w:styleId="Hyperlink">` +
		`<w:name w:val="Hyperlink"/>` +
		`<w:rPr><w:color w:val="` + hyperlinkColor + `"/><w:u w:val="single"/></w:rPr>` +
		`</w:style>`)
	b.WriteString(`<w:style w:type="table" w:styleId="TableGrid">` +
		`<w:name w:val="Table Grid"/><w:tblPr>` + tableBordersXML + `</w:tblPr></w:style>`)
	b.WriteString(`</w:styles>`)
	return b.String()
}

// numberingLevels is the depth of list nesting defined in numbering.xml.
const numberingLevels = 6

// numberingXML renders word/numbering.xml with a bullet and a decimal
// definition, six levels each. Indentation steps 720 twips per level with a
// 360 twip hanging indent, matching Word's list defaults.
func numberingXML() []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	b.WriteString(`<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)

	b.WriteString(`<w:abstractNum w:abstractNumId="0">`)
	for lvl := 0; lvl < numberingLevels; lvl++ {
		fmt.Fprintf(&b, `<w:lvl w:ilvl="%d"><w:start w:val="1"/><w:numFmt w:val="bullet"/>`+
			`<w:lvlText w:val="%s"/><w:lvlJc w:val="left"/>`+
			`<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr></w:lvl>`,
			lvl, bulletGlyph(lvl), 720*(lvl+1))
	}
	b.WriteString(`</w:abstractNum>`)

	b.WriteString(`<w:abstractNum w:abstractNumId="1">`)
	for lvl := 0; lvl < numberingLevels; lvl++ {
		fmt.Fprintf(&b, `<w:lvl w:ilvl="%d"><w:start w:val="1"/><w:numFmt w:val="decimal"/>`+
			`<w:lvlText w:val="%%%d."/><w:lvlJc w:val="left"/>`+
			`<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr></w:lvl>`,
			lvl, lvl+1, 720*(lvl+1))
	}
	b.WriteString(`</w:abstractNum>`)

	fmt.Fprintf(&b, `<w:num w:numId="%d"><w:abstractNumId w:val="0"/></w:num>`, NumIDBullet)
	fmt.Fprintf(&b, `<w:num w:numId="%d"><w:abstractNumId w:val="1"/></w:num>`, NumIDDecimal)
	b.WriteString(`</w:numbering>`)
	return b.Bytes()
}

// bulletGlyph alternates markers by depth the way Word does.
func bulletGlyph(level int) string {
	switch level % 3 {
	case 0:
		return "•" // bullet
	case 1:
		return "◦" // white bullet
	default:
		return "▪" // small black square
	}
}
