package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/logging"
)

// defaultOutputDir receives converted documents when neither the flag nor
// the config file names a directory.
const defaultOutputDir = "output"

// convertFlags holds the parsed flag values for the convert command.
type convertFlags struct {
	outputDir      string
	configPath     string
	strictDiagrams bool
	imageFit       string
	verbose        bool
	quiet          bool
}

// newConvertCommand creates the convert subcommand.
func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <files...>",
		Short: "Convert one or more markdown files to DOCX",
		Long: `Convert one or more markdown files to DOCX.

Each input produces <input-name>.docx in the output directory, keeping the
source extension (report.md becomes report.md.docx). When several files
are given, a failure in one does not stop the others; the command reports
every failure and exits non-zero if any file failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runConvert(flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.outputDir, "output", "o", "", "output directory (default \"./output\")")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to config file (default: discover .md2docx.yaml)")
	cmd.Flags().BoolVar(&flags.strictDiagrams, "strict-diagrams", false, "fail conversion when a mermaid diagram cannot be rendered")
	cmd.Flags().StringVar(&flags.imageFit, "image-fit", "", "image scaling policy: box or width")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "log errors only")

	return cmd
}

// runConvert validates inputs, builds the converter from config and flags,
// and converts each file, continuing past per-file failures.
func runConvert(flags *convertFlags, inputs []string) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	logger := logging.New(logLevel(flags, cfg))

	for _, input := range inputs {
		if !fileutil.FileExists(input) {
			return fmt.Errorf("%w: %s", md2docx.ErrInputNotFound, input)
		}
		if !fileutil.HasMarkdownExtension(input) {
			return fmt.Errorf("%w: %s", md2docx.ErrInvalidExtension, input)
		}
	}

	opts, err := converterOptions(flags, cfg)
	if err != nil {
		return err
	}
	opts = append(opts, md2docx.WithLogger(logger))
	conv := md2docx.New(opts...)

	outputDir := flags.outputDir
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	var failed bool
	for _, input := range inputs {
		out, err := conv.ConvertFile(input, outputDir)
		if err != nil {
			logger.Error("conversion failed", "input", input, "error", err)
			failed = true
			continue
		}
		fmt.Printf("Converted: %s -> %s\n", input, out)
	}

	if failed {
		return errors.New("one or more files failed to convert")
	}
	return nil
}

// loadConfig loads the explicit config path, or discovers one.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Discover()
}

// logLevel resolves the log level from flags, then config.
func logLevel(flags *convertFlags, cfg *config.Config) string {
	switch {
	case flags.quiet:
		return "error"
	case flags.verbose:
		return "debug"
	case cfg.Logging.Level != "":
		return cfg.Logging.Level
	}
	return "info"
}

// converterOptions maps config and flags onto converter options.
// Flags override the config file.
func converterOptions(flags *convertFlags, cfg *config.Config) ([]md2docx.Option, error) {
	var opts []md2docx.Option

	mode, err := md2docx.ParseDiagramMode(cfg.Diagrams.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, cfg.Diagrams.Mode)
	}
	if flags.strictDiagrams {
		mode = md2docx.DiagramStrict
	}
	opts = append(opts, md2docx.WithDiagramMode(mode))

	fitValue := cfg.Images.Fit
	if flags.imageFit != "" {
		fitValue = flags.imageFit
	}
	fit, err := md2docx.ParseImageFit(fitValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, fitValue)
	}
	opts = append(opts, md2docx.WithImageFit(fit))

	if cfg.Diagrams.TimeoutSeconds > 0 {
		opts = append(opts, md2docx.WithDiagramTimeout(time.Duration(cfg.Diagrams.TimeoutSeconds)*time.Second))
	}

	return opts, nil
}
