package md2docx

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2docx/internal/docx"
)

func TestResolveImagePath(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "data", "pic.png")

	tests := []struct {
		name     string
		ref      string
		baseDir  string
		expected string
	}{
		{
			name:     "absolute path passes through",
			ref:      abs,
			baseDir:  "/docs",
			expected: abs,
		},
		{
			name:     "relative path joins base dir",
			ref:      "img/pic.png",
			baseDir:  "/docs",
			expected: filepath.Join("/docs", "img", "pic.png"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveImagePath(tt.ref, tt.baseDir); got != tt.expected {
				t.Errorf("resolveImagePath() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFitDimensions(t *testing.T) {
	tests := []struct {
		name     string
		pxW, pxH int
		wantW    int64
		wantH    int64
	}{
		{
			name: "wide image fills max width",
			pxW:  1200, pxH: 600,
			wantW: maxImageWidth,
			wantH: maxImageWidth / 2,
		},
		{
			name: "tall image constrained by height",
			pxW:  600, pxH: 1200,
			wantW: maxImageHeight / 2,
			wantH: maxImageHeight,
		},
		{
			name: "square image fills width",
			pxW:  500, pxH: 500,
			wantW: maxImageWidth,
			wantH: maxImageWidth,
		},
		{
			name: "zero dimensions get max box",
			pxW:  0, pxH: 0,
			wantW: maxImageWidth,
			wantH: maxImageHeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitDimensions(tt.pxW, tt.pxH, maxImageWidth, maxImageHeight)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("fitDimensions() = (%d, %d), want (%d, %d)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestScaleToWidth(t *testing.T) {
	w, h := scaleToWidth(600, 1200, maxImageWidth)
	if w != maxImageWidth {
		t.Errorf("width = %d, want %d", w, maxImageWidth)
	}
	if h != 2*maxImageWidth {
		t.Errorf("height = %d, want %d (unconstrained)", h, 2*maxImageWidth)
	}
}

// writeTestPNG writes a real PNG so image.DecodeConfig and AddPicture work.
func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAddImageEmbedsPicture(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, 100, 50)

	c := newTestConverter()
	doc := docx.New()
	c.addImage(doc, filepath.Base(path), dir)

	if len(doc.Media) != 1 {
		t.Fatalf("got %d media parts, want 1", len(doc.Media))
	}
	if len(doc.Body) != 1 {
		t.Fatalf("got %d body items, want 1", len(doc.Body))
	}
}

func TestAddImageMissingFilePlaceholder(t *testing.T) {
	c := newTestConverter()
	doc := docx.New()
	c.addImage(doc, "nope.png", t.TempDir())

	if len(doc.Media) != 0 {
		t.Fatalf("missing image must not add media")
	}
	if len(doc.Body) != 1 {
		t.Fatalf("got %d body items, want 1 placeholder", len(doc.Body))
	}
	para, ok := doc.Body[0].(*docx.Paragraph)
	if !ok {
		t.Fatalf("placeholder must be a paragraph")
	}
	if got := para.PlainText(); got != "[Image not found: nope.png]" {
		t.Errorf("placeholder text = %q", got)
	}
}
