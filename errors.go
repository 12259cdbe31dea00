package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrInputNotFound       = errors.New("input file not found")
	ErrInvalidExtension    = errors.New("file must have .md or .markdown extension")
	ErrReadMarkdown        = errors.New("failed to read markdown file")
	ErrOutputDir           = errors.New("failed to create output directory")
	ErrWriteOutput         = errors.New("failed to write output document")
	ErrDiagramRender       = errors.New("diagram rendering failed")
	ErrDiagramToolNotFound = errors.New("diagram tool not found")

	// Option validation errors.
	ErrInvalidDiagramMode = errors.New("invalid diagram mode")
	ErrInvalidImageFit    = errors.New("invalid image fit mode")
)
