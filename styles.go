package md2docx

import "github.com/alecthomas/chroma/v2"

// Code block typography.
const (
	codeFont     = "Courier New"
	codeFontSize = 18 // half-points (9pt)
	codeFill     = "F2F2F2"
)

// Blockquote rule styling.
const (
	quoteBorderColor = "999999"
	quoteBorderSize  = 12 // eighths of a point
	quoteBorderSpace = 4
	quoteIndentTwips = 720 // 0.5"
)

// AlertStyle is the visual treatment of one alert severity.
type AlertStyle struct {
	Border     string // left border color
	Background string // paragraph shading fill
	Label      string // label paragraph text
	Text       string // label text color
}

// alertStyles maps GitHub alert severities to their colors and labels.
var alertStyles = map[string]AlertStyle{
	"NOTE":      {Border: "4493F8", Background: "DBEAFE", Label: "Note", Text: "4493F8"},
	"TIP":       {Border: "3FB950", Background: "DCFCE7", Label: "Tip", Text: "3FB950"},
	"IMPORTANT": {Border: "AB7DF8", Background: "F3E8FF", Label: "Important", Text: "AB7DF8"},
	"WARNING":   {Border: "D29922", Background: "FEF9C3", Label: "Warning", Text: "D29922"},
	"CAUTION":   {Border: "F85149", Background: "FEE2E2", Label: "Caution", Text: "F85149"},
}

// tokenStyle is the visual treatment of one lexical token category.
// An empty Color keeps the inherited text color.
type tokenStyle struct {
	Color  string
	Bold   bool
	Italic bool
}

// tokenStyles maps chroma token types to a light-theme editor palette.
// Lookup falls back through the token hierarchy, so subtypes without an
// explicit entry inherit their nearest ancestor's style.
var tokenStyles = map[chroma.TokenType]tokenStyle{
	chroma.Comment:           {Color: "008000", Italic: true},
	chroma.CommentPreproc:    {Color: "AF00DB", Bold: true},
	chroma.Keyword:           {Color: "0000FF", Bold: true},
	chroma.KeywordConstant:   {Color: "0000FF", Bold: true},
	chroma.KeywordType:       {Color: "267F99"},
	chroma.NameBuiltin:       {Color: "795E26"},
	chroma.NameFunction:      {Color: "795E26"},
	chroma.NameClass:         {Color: "267F99", Bold: true},
	chroma.NameDecorator:     {Color: "795E26"},
	chroma.NameException:     {Color: "267F99"},
	chroma.NameTag:           {Color: "800000"},
	chroma.NameAttribute:     {Color: "FF0000"},
	chroma.LiteralString:     {Color: "A31515"},
	chroma.LiteralNumber:     {Color: "098658"},
	chroma.Literal:           {Color: "A31515"},
	chroma.Operator:          {Color: "000000"},
	chroma.OperatorWord:      {Color: "0000FF", Bold: true},
	chroma.Punctuation:       {Color: "000000"},
	chroma.GenericHeading:    {Color: "0000FF", Bold: true},
	chroma.GenericSubheading: {Color: "0000FF", Bold: true},
	chroma.GenericEmph:       {Italic: true},
	chroma.GenericStrong:     {Bold: true},
	chroma.GenericError:      {Color: "FF0000"},
	chroma.Error:             {Color: "FF0000"},
}

// lookupTokenStyle resolves a token type to its style, walking up the
// chroma hierarchy (exact, then subcategory, then category). The second
// return is false when no ancestor matches; such tokens render unstyled.
func lookupTokenStyle(t chroma.TokenType) (tokenStyle, bool) {
	if s, ok := tokenStyles[t]; ok {
		return s, true
	}
	if s, ok := tokenStyles[t.SubCategory()]; ok {
		return s, true
	}
	if s, ok := tokenStyles[t.Category()]; ok {
		return s, true
	}
	return tokenStyle{}, false
}
