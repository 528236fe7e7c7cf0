// Package launcher shells out to the host system to open, reveal and
// edit filesystem entries. Launches are fire-and-forget: the child is
// started, reaped in the background, and never joins the UI loop.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// start launches cmd and reaps it in the background. Swapped in tests
// to capture the constructed command lines.
var start = func(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Open hands path to the system default handler. Only a failure to
// start the handler is reported; whatever the handler does afterwards
// is its own business.
func Open(path string) error {
	argv := openArgv(runtime.GOOS, path)
	if err := start(exec.Command(argv[0], argv[1:]...)); err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	return nil
}

func openArgv(goos, path string) []string {
	switch goos {
	case "darwin":
		return []string{"open", path}
	case "windows":
		return []string{"explorer", path}
	default:
		return []string{"xdg-open", path}
	}
}

// Reveal opens the system file manager with path selected, falling back
// to the parent directory where selection is not supported.
func Reveal(path string) error {
	argv := revealArgv(runtime.GOOS, path)
	if err := start(exec.Command(argv[0], argv[1:]...)); err != nil {
		return fmt.Errorf("reveal %s: %w", filepath.Base(path), err)
	}
	return nil
}

func revealArgv(goos, path string) []string {
	switch goos {
	case "darwin":
		return []string{"open", "-R", path}
	case "windows":
		return []string{"explorer", "/select," + path}
	default:
		// xdg-open has no selection concept; show the containing dir.
		return []string{"xdg-open", filepath.Dir(path)}
	}
}

// EditorCommand builds the command that edits path in the user's
// editor: $EDITOR, then $VISUAL, then vim. The caller runs it in the
// foreground with the terminal handed over.
func EditorCommand(path string) *exec.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vim"
	}
	return exec.Command(editor, path)
}
