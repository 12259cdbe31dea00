package md2docx

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Fenced code block delimiter (backticks or tildes)
	fencedCodeFence = regexp.MustCompile("^(```|~~~)")

	// Header pattern (ATX style)
	atxHeaderPattern = regexp.MustCompile(`^#{1,6}\s`)

	// Indented code block (4 spaces or tab)
	indentedCodeLine = regexp.MustCompile(`^(    |\t)`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(content string) string
}

// CommonMarkPreprocessor cleans up markdown before parsing so that loosely
// formatted documents parse the way their authors meant them.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown applies all transformations. Order matters: normalize
// line endings first, then spacing fixes, then blank line compression.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(content string) string {
	content = NormalizeLineEndings(content)
	content = EnsureBlankBeforeHeaders(content)
	content = CompressBlankLines(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// CompressBlankLines limits consecutive blank lines to 2 maximum.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// EnsureBlankBeforeHeaders adds a blank line before ATX headers (#, ##, etc.)
// if the previous line is non-empty. Skips content inside code blocks.
func EnsureBlankBeforeHeaders(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	inCodeBlock := false
	var previousLine string

	for i, line := range lines {
		if fencedCodeFence.MatchString(line) {
			inCodeBlock = !inCodeBlock
		}

		if i == 0 || inCodeBlock || indentedCodeLine.MatchString(line) {
			result = append(result, line)
			previousLine = line
			continue
		}

		if atxHeaderPattern.MatchString(line) && strings.TrimSpace(previousLine) != "" {
			result = append(result, "")
		}
		result = append(result, line)
		previousLine = line
	}

	return strings.Join(result, "\n")
}
