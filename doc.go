// Package md2docx converts Markdown documents to DOCX.
//
// # Quick Start
//
// Create a converter and convert a file:
//
//	conv := md2docx.New()
//	out, err := conv.ConvertFile("README.md", "output")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", out)
//
// Or convert in-memory content and inspect the document before saving:
//
//	doc, err := conv.Convert([]byte("# Hello\n\nWorld"), ".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = doc.Save("hello.docx")
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line ending normalization, blank line fixes)
//  2. Parsing via Goldmark (GFM: tables, strikethrough, task lists)
//  3. Tree normalization (mermaid diagram substitution, GitHub alert
//     detection, image attribute canonicalization)
//  4. Recursive rendering onto the DOCX document builder, with syntax
//     highlighting via Chroma
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2docx.New(
//	    md2docx.WithDiagramMode(md2docx.DiagramStrict),
//	    md2docx.WithImageFit(md2docx.FitWidth),
//	)
//
// Mermaid diagrams require the mmdc CLI (mermaid-cli) on PATH; without it
// diagram blocks render as plain code blocks unless strict mode is set.
package md2docx
