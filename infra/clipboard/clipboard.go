// Package clipboard adapts the OS clipboard behind app.Clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System writes through the operating system clipboard.
type System struct{}

// New returns the system clipboard adapter.
func New() *System { return &System{} }

// Copy places text on the clipboard. Fails on headless systems without a
// clipboard utility; callers surface that instead of crashing.
func (*System) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
