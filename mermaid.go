package md2docx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"

	"github.com/alnah/go-md2docx/internal/process"
)

// diagramLanguage is the fenced code info word that marks a diagram block.
const diagramLanguage = "mermaid"

// scratchSubdir is the per-tool folder under the process temp directory for
// diagram intermediates. Files are left for the OS temp reaper; names are
// unique per renderer, so sequential runs within one process never collide.
const scratchSubdir = "md2docx"

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec. The command runs in
// its own process group: diagram tools spawn a headless browser, and a
// context-deadline kill must take the children down too.
type ExecRunner struct{}

// Run executes the command and captures both output streams.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	process.SetGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", "", err
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		process.KillGroup(cmd.Process.Pid)
		<-done
		return stdout.String(), stderr.String(), ctx.Err()
	case err := <-done:
		return stdout.String(), stderr.String(), err
	}
}

// DiagramRenderer turns diagram source text into a raster image on disk.
type DiagramRenderer interface {
	Render(ctx context.Context, source string) (imagePath string, err error)
}

// mermaidRenderer renders Mermaid diagrams by invoking the mmdc CLI.
type mermaidRenderer struct {
	runner     CommandRunner
	scratchDir string
	// counter derives scratch file names. Identity-based, never
	// content-based: two identical diagrams in one document must not
	// share files.
	counter atomic.Int64
}

// newMermaidRenderer creates a renderer writing intermediates under the
// process temp directory.
func newMermaidRenderer() *mermaidRenderer {
	return &mermaidRenderer{
		runner:     &ExecRunner{},
		scratchDir: filepath.Join(os.TempDir(), scratchSubdir),
	}
}

// Render writes source to a scratch .mmd file, invokes
// `mmdc -i <src> -o <png>`, and returns the PNG path.
// A missing tool surfaces as ErrDiagramToolNotFound so callers can
// distinguish absence from rendering failure.
func (m *mermaidRenderer) Render(ctx context.Context, source string) (string, error) {
	if err := os.MkdirAll(m.scratchDir, 0o750); err != nil {
		return "", fmt.Errorf("creating scratch directory: %w", err)
	}

	n := m.counter.Add(1)
	srcPath := filepath.Join(m.scratchDir, fmt.Sprintf("diagram_%d.mmd", n))
	imgPath := filepath.Join(m.scratchDir, fmt.Sprintf("diagram_%d.png", n))

	if err := os.WriteFile(srcPath, []byte(source), 0o600); err != nil {
		return "", fmt.Errorf("writing diagram source: %w", err)
	}

	_, stderr, err := m.runner.Run(ctx, "mmdc", "-i", srcPath, "-o", imgPath)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: mmdc", ErrDiagramToolNotFound)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrDiagramRender, stderr, err)
	}

	return imgPath, nil
}
