package md2docx

import (
	"time"

	"github.com/charmbracelet/log"
)

// DiagramMode controls what happens when the external diagram tool is
// missing or fails.
type DiagramMode string

const (
	// DiagramDegrade renders the diagram source as a plain code block and
	// logs a warning. This is the default.
	DiagramDegrade DiagramMode = "degrade"
	// DiagramStrict fails the file's conversion on any diagram error.
	DiagramStrict DiagramMode = "strict"
)

// ParseDiagramMode validates a mode string (case-sensitive, as configured).
func ParseDiagramMode(s string) (DiagramMode, error) {
	switch DiagramMode(s) {
	case DiagramDegrade, DiagramStrict:
		return DiagramMode(s), nil
	case "":
		return DiagramDegrade, nil
	}
	return "", ErrInvalidDiagramMode
}

// ImageFit selects the image scaling policy.
type ImageFit string

const (
	// FitBox scales width-first into the max width/height box, preserving
	// aspect ratio. This is the default.
	FitBox ImageFit = "box"
	// FitWidth scales to the max width only, leaving height unconstrained.
	FitWidth ImageFit = "width"
)

// ParseImageFit validates a fit string.
func ParseImageFit(s string) (ImageFit, error) {
	switch ImageFit(s) {
	case FitBox, FitWidth:
		return ImageFit(s), nil
	case "":
		return FitBox, nil
	}
	return "", ErrInvalidImageFit
}

// defaultDiagramTimeout bounds each diagram subprocess invocation.
const defaultDiagramTimeout = 30 * time.Second

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	diagramMode    DiagramMode
	imageFit       ImageFit
	diagramTimeout time.Duration
}

// Option configures a Converter.
type Option func(*Converter)

// WithDiagramMode sets the diagram failure policy.
func WithDiagramMode(mode DiagramMode) Option {
	return func(c *Converter) {
		c.cfg.diagramMode = mode
	}
}

// WithImageFit sets the image scaling policy.
func WithImageFit(fit ImageFit) Option {
	return func(c *Converter) {
		c.cfg.imageFit = fit
	}
}

// WithDiagramTimeout sets the per-diagram subprocess timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithDiagramTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2docx: WithDiagramTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.diagramTimeout = d
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithDiagramRenderer replaces the diagram renderer (e.g., by tests).
func WithDiagramRenderer(r DiagramRenderer) Option {
	return func(c *Converter) {
		c.diagrams = r
	}
}
