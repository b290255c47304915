// Package desktop provides clipboard and browser adapters.
package desktop

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
)

// Ensure adapters implement the interfaces.
var (
	_ driven.Clipboard = (*Clipboard)(nil)
	_ driven.Browser   = (*Browser)(nil)
)

// Clipboard writes to the system clipboard via atotto/clipboard.
type Clipboard struct{}

// NewClipboard creates a clipboard adapter.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// WriteAll copies text to the clipboard.
func (c *Clipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	return clipboard.WriteAll(text)
}

// Browser opens URLs with the system default handler.
type Browser struct {
	command func(url string) (*exec.Cmd, error)
}

// NewBrowser creates a browser adapter for the running OS.
func NewBrowser() *Browser {
	return &Browser{command: openCommand}
}

// Open starts the default browser without waiting for it to exit.
func (b *Browser) Open(url string) error {
	cmd, err := b.command(url)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// openCommand returns the command opening url on this OS.
func openCommand(url string) (*exec.Cmd, error) {
	return commandFor(runtime.GOOS, url)
}

func commandFor(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", url), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
