package md2docx

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Registered for image.DecodeConfig, which reads intrinsic dimensions
	// from the header without decoding pixels.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/alnah/go-md2docx/internal/docx"
)

// Maximum picture box within the page, in EMU.
const (
	maxImageWidth  = 6 * docx.EMUPerInch
	maxImageHeight = 8 * docx.EMUPerInch
)

// resolveImagePath resolves an image reference: absolute paths pass
// through, relative paths resolve against the source document's directory.
func resolveImagePath(ref, baseDir string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(baseDir, ref)
}

// fitDimensions scales intrinsic pixel dimensions into the max box,
// width-first: fill the max width, then rescale from the height constraint
// if exceeded. A degenerate (zero-dimension) image gets the max box.
func fitDimensions(pxWidth, pxHeight int, maxW, maxH int64) (int64, int64) {
	if pxWidth == 0 || pxHeight == 0 {
		return maxW, maxH
	}
	width := maxW
	height := maxW * int64(pxHeight) / int64(pxWidth)
	if height > maxH {
		height = maxH
		width = maxH * int64(pxWidth) / int64(pxHeight)
	}
	return width, height
}

// scaleToWidth scales to the max width only, leaving height unconstrained.
func scaleToWidth(pxWidth, pxHeight int, maxW int64) (int64, int64) {
	if pxWidth == 0 || pxHeight == 0 {
		return maxW, maxW
	}
	return maxW, maxW * int64(pxHeight) / int64(pxWidth)
}

// imageConfig reads intrinsic pixel dimensions from the file header.
func imageConfig(path string) (image.Config, error) {
	f, err := os.Open(path) // #nosec G304 -- image paths come from the document being converted
	if err != nil {
		return image.Config{}, err
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("decoding image header: %w", err)
	}
	return cfg, nil
}

// addImage resolves ref and embeds the picture into container, scaled per
// the configured fit policy. A missing or unreadable image degrades to a
// visible placeholder paragraph; conversion always continues.
func (c *Converter) addImage(container docx.Container, ref, baseDir string) {
	path := resolveImagePath(ref, baseDir)

	cfg, err := imageConfig(path)
	if err != nil {
		c.logger.Warn("image not found, emitting placeholder", "ref", ref, "error", err)
		container.AddParagraph().AddRun(fmt.Sprintf("[Image not found: %s]", ref))
		return
	}

	var cx, cy int64
	switch c.cfg.imageFit {
	case FitWidth:
		cx, cy = scaleToWidth(cfg.Width, cfg.Height, maxImageWidth)
	default:
		cx, cy = fitDimensions(cfg.Width, cfg.Height, maxImageWidth, maxImageHeight)
	}

	if err := container.AddPicture(path, cx, cy); err != nil {
		c.logger.Warn("embedding image failed, emitting placeholder", "ref", ref, "error", err)
		container.AddParagraph().AddRun(fmt.Sprintf("[Image not found: %s]", ref))
	}
}
