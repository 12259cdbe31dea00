package md2docx

import (
	"context"
	"regexp"
	"strings"
)

// Normalization passes rewrite the parsed token tree into the shape the
// renderer expects. Order is fixed: diagram substitution first (it
// introduces new paragraph/image nodes), then alert detection (it must see
// the original blockquote shape), then image attribute normalization (it
// must see every final image node, including synthesized ones).

// alertMarker matches a complete GitHub alert marker such as "[!NOTE]".
var alertMarker = regexp.MustCompile(`^\[!\s*([A-Za-z]+)\s*\]$`)

// maxMarkerNodes bounds how many leading text nodes may spell the marker.
// The bracket handling of the parser can split "[!NOTE]" into "[" plus
// "!NOTE]" or into "[", "!NOTE", "]".
const maxMarkerNodes = 3

// normalizeDiagrams replaces top-level mermaid code blocks with image
// paragraphs rendered through the diagram tool. In degrade mode a failed
// render keeps the code block; in strict mode it fails the conversion.
func (c *Converter) normalizeDiagrams(tokens []*Node) ([]*Node, error) {
	result := make([]*Node, 0, len(tokens))

	for _, tok := range tokens {
		if tok.Type != TypeBlockCode || infoLanguage(tok.Attrs.Info) != diagramLanguage {
			result = append(result, tok)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.diagramTimeout)
		imgPath, err := c.diagrams.Render(ctx, tok.Raw)
		cancel()

		if err != nil {
			if c.cfg.diagramMode == DiagramStrict {
				return nil, err
			}
			c.logger.Warn("diagram rendering failed, keeping code block", "error", err)
			result = append(result, tok)
			continue
		}

		result = append(result, &Node{
			Type: TypeParagraph,
			Children: []*Node{{
				Type:  TypeImage,
				Attrs: Attrs{Src: imgPath, Alt: "mermaid diagram"},
			}},
		})
	}

	return result, nil
}

// normalizeAlerts rewrites top-level blockquotes that start with a GitHub
// alert marker into typed alert nodes. The pass does not recurse into
// nested blockquotes. Non-matching blockquotes pass through unchanged.
func normalizeAlerts(tokens []*Node) []*Node {
	result := make([]*Node, 0, len(tokens))

	for _, tok := range tokens {
		if tok.Type != TypeBlockQuote {
			result = append(result, tok)
			continue
		}
		severity, markerLen, ok := detectAlert(tok)
		if !ok {
			result = append(result, tok)
			continue
		}
		result = append(result, buildAlert(tok, severity, markerLen))
	}

	return result
}

// detectAlert checks whether a blockquote's first paragraph opens with an
// alert marker. It returns the severity and the number of leading inline
// nodes that spell the marker.
func detectAlert(quote *Node) (severity string, markerLen int, ok bool) {
	if len(quote.Children) == 0 {
		return "", 0, false
	}
	first := quote.Children[0]
	if first.Type != TypeParagraph {
		return "", 0, false
	}

	var marker strings.Builder
	for i, inline := range first.Children {
		if i >= maxMarkerNodes {
			break
		}
		if inline.Type != TypeText {
			break
		}
		if i == 0 && !strings.HasPrefix(inline.Text(), "[") {
			break
		}
		marker.WriteString(inline.Text())

		m := alertMarker.FindStringSubmatch(marker.String())
		if m == nil {
			continue
		}
		severity = strings.ToUpper(m[1])
		if _, known := alertStyles[severity]; !known {
			return "", 0, false
		}
		return severity, i + 1, true
	}

	return "", 0, false
}

// buildAlert materializes the alert node: marker inlines dropped, a
// trailing softbreak after the marker dropped, an emptied first paragraph
// dropped entirely, and blank-line markers filtered from the body.
func buildAlert(quote *Node, severity string, markerLen int) *Node {
	first := quote.Children[0]

	stripped := first.Children[markerLen:]
	if len(stripped) > 0 && stripped[0].Type == TypeSoftbreak {
		stripped = stripped[1:]
	}

	var body []*Node
	if len(stripped) > 0 {
		body = append(body, &Node{Type: TypeParagraph, Children: stripped})
	}
	for _, sibling := range quote.Children[1:] {
		if sibling.Type == TypeBlankLine {
			continue
		}
		body = append(body, sibling)
	}

	return &Node{
		Type:     TypeAlert,
		Attrs:    Attrs{Alert: severity},
		Children: body,
	}
}

// normalizeImageKeys canonicalizes the image source attribute: parsers emit
// either "url" or "src" depending on the syntax used, and downstream code
// only reads "src". One level of inline scanning per block; running the
// pass twice is a no-op.
func normalizeImageKeys(tokens []*Node) []*Node {
	for _, tok := range tokens {
		for _, child := range tok.Children {
			if child.Type != TypeImage {
				continue
			}
			if child.Attrs.Src == "" && child.Attrs.URL != "" {
				child.Attrs.Src = child.Attrs.URL
				child.Attrs.URL = ""
			}
		}
	}
	return tokens
}

// infoLanguage returns the first whitespace-delimited word of a code block
// info string, which names the language.
func infoLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
