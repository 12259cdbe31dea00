package main

import (
	"github.com/spf13/cobra"
)

// newRootCommand creates the root md2docx command with all subcommands.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "md2docx",
		Short: "Convert Markdown documents to DOCX",
		Long: `md2docx converts Markdown documents to DOCX.

It supports GitHub Flavored Markdown: tables, task lists, strikethrough,
alerts ([!NOTE] and friends), syntax-highlighted code blocks, and embedded
images. Mermaid diagram blocks render to pictures when the mmdc CLI
(mermaid-cli) is installed.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newConvertCommand())

	return rootCmd
}
