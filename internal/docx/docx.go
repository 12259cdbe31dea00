// Package docx builds WordprocessingML documents and serializes them to the
// DOCX container format (a ZIP archive of OOXML parts).
//
// The model is append-only: callers add paragraphs, tables, and pictures in
// document order and never read prior content back. All model fields are
// exported so tests can inspect the tree without unzipping the output.
//
// Features the high-level API does not cover (shading, borders, hyperlinks,
// inline drawings) are injected as raw OOXML during serialization; this is
// inherent to the target format, not an abstraction leak.
package docx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// English Metric Units, the native measurement of OOXML drawings.
const (
	EMUPerInch   = 914400
	TwipsPerInch = 1440
)

// Numbering definition IDs declared in word/numbering.xml.
const (
	NumIDBullet  = 1
	NumIDDecimal = 2
)

// Sentinel errors for document building.
var (
	ErrUnsupportedImage = errors.New("unsupported image format")
	ErrCellOutOfRange   = errors.New("table cell out of range")
)

// Relationship types used in word/_rels/document.xml.rels.
const (
	relTypeHyperlink = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	relTypeImage     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

// imageContentTypes maps lowercase file extensions to part content types.
var imageContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

// BodyItem is a block-level element in the document body.
type BodyItem interface {
	bodyItem()
}

// Relationship is an entry in the document part's relationship table.
type Relationship struct {
	ID     string
	Type   string
	Target string
	// External marks targets outside the package (hyperlink URLs).
	External bool
}

// MediaPart is an embedded binary asset stored under word/media/.
type MediaPart struct {
	Name string // file name within word/media/
	Data []byte
}

// Document accumulates block-level content and serializes it as a DOCX file.
type Document struct {
	Body  []BodyItem
	Media []MediaPart
	Rels  []Relationship

	nextRelID     int
	nextDrawingID int
}

// Container is a target that block-level content can be appended to.
// Document and Cell both satisfy it, so renderers can embed pictures into
// whichever block container encloses the current inline run.
type Container interface {
	AddParagraph() *Paragraph
	AddPicture(path string, cx, cy int64) error
}

var (
	_ Container = (*Document)(nil)
	_ Container = (*Cell)(nil)
)

// New creates an empty document.
// Relationship IDs rId1 and rId2 are reserved for styles and numbering.
func New() *Document {
	return &Document{
		nextRelID:     3,
		nextDrawingID: 1,
	}
}

// AddParagraph appends an empty paragraph to the document body.
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{doc: d}
	d.Body = append(d.Body, p)
	return p
}

// AddHeading appends a paragraph styled as a heading of the given level.
// Levels outside 1..6 are clamped.
func (d *Document) AddHeading(level int) *Paragraph {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	p := d.AddParagraph()
	p.Style = fmt.Sprintf("Heading%d", level)
	return p
}

// AddPicture reads an image file and appends it as a block-level inline
// drawing sized cx by cy EMU.
func (d *Document) AddPicture(path string, cx, cy int64) error {
	run, err := d.newPictureRun(path, cx, cy)
	if err != nil {
		return err
	}
	p := d.AddParagraph()
	p.Children = append(p.Children, run)
	return nil
}

// newPictureRun stores the image as a media part and builds a drawing run
// referencing it.
func (d *Document) newPictureRun(path string, cx, cy int64) (*Run, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := imageContentTypes[ext]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- image paths come from the document being converted
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	name := fmt.Sprintf("image%d%s", len(d.Media)+1, ext)
	d.Media = append(d.Media, MediaPart{Name: name, Data: data})

	relID := d.addRelationship(relTypeImage, "media/"+name, false)

	drawing := &Drawing{
		RelID: relID,
		ID:    d.nextDrawingID,
		CX:    cx,
		CY:    cy,
	}
	d.nextDrawingID++

	return &Run{Drawing: drawing}, nil
}

// addRelationship registers a relationship and returns its rId.
func (d *Document) addRelationship(relType, target string, external bool) string {
	id := fmt.Sprintf("rId%d", d.nextRelID)
	d.nextRelID++
	d.Rels = append(d.Rels, Relationship{
		ID:       id,
		Type:     relType,
		Target:   target,
		External: external,
	})
	return id
}
