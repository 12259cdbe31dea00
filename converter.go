package md2docx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-md2docx/internal/docx"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ MarkdownPreprocessor = (*CommonMarkPreprocessor)(nil)
	_ markdownParser       = (*goldmarkParser)(nil)
	_ DiagramRenderer      = (*mermaidRenderer)(nil)
	_ CommandRunner        = (*ExecRunner)(nil)
)

// Converter orchestrates the markdown-to-DOCX conversion pipeline.
// Create with New(), then use Convert, ConvertFile, or ConvertAll.
// A Converter is safe for sequential reuse across documents.
type Converter struct {
	cfg          converterConfig
	preprocessor MarkdownPreprocessor
	parser       markdownParser
	diagrams     DiagramRenderer
	logger       *log.Logger
}

// New creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithDiagramMode, WithImageFit).
func New(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			diagramMode:    DiagramDegrade,
			imageFit:       FitBox,
			diagramTimeout: defaultDiagramTimeout,
		},
		preprocessor: &CommonMarkPreprocessor{},
		logger:       log.New(os.Stderr),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Collaborators are created after options so a custom logger or
	// renderer wins.
	c.parser = newGoldmarkParser(c.logger)
	if c.diagrams == nil {
		c.diagrams = newMermaidRenderer()
	}

	return c
}

// Convert renders markdown content into an in-memory document.
// baseDir is the directory relative image references resolve against;
// pass the source file's directory, or "." for in-memory content.
func (c *Converter) Convert(markdown []byte, baseDir string) (*docx.Document, error) {
	content := c.preprocessor.PreprocessMarkdown(string(markdown))
	tokens := c.parser.Parse([]byte(content))

	tokens, err := c.normalizeDiagrams(tokens)
	if err != nil {
		return nil, err
	}
	tokens = normalizeAlerts(tokens)
	tokens = normalizeImageKeys(tokens)

	doc := docx.New()
	c.renderTokens(doc, tokens, baseDir)
	return doc, nil
}

// ConvertFile converts one markdown file and writes it into outputDir,
// creating the directory if needed. The output name is the full input file
// name plus ".docx" (report.md becomes report.md.docx). It returns the
// written path.
func (c *Converter) ConvertFile(inputPath, outputDir string) (string, error) {
	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrReadMarkdown, inputPath, err)
	}

	doc, err := c.Convert(content, filepath.Dir(inputPath))
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", inputPath, err)
	}

	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrOutputDir, outputDir, err)
	}

	outPath := filepath.Join(outputDir, filepath.Base(inputPath)+".docx")

	if err := doc.Save(outPath); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWriteOutput, outPath, err)
	}

	c.logger.Debug("wrote document", "input", inputPath, "output", outPath)
	return outPath, nil
}

// ConvertAll converts each input file, continuing past per-file failures.
// It returns the paths written and, if any file failed, a joined error
// covering every failure.
func (c *Converter) ConvertAll(inputPaths []string, outputDir string) ([]string, error) {
	var written []string
	var errs []error

	for _, path := range inputPaths {
		out, err := c.ConvertFile(path, outputDir)
		if err != nil {
			c.logger.Error("conversion failed", "input", path, "error", err)
			errs = append(errs, err)
			continue
		}
		written = append(written, out)
	}

	return written, errors.Join(errs...)
}
