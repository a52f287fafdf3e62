package app

// Clipboard writes text to the system clipboard. The TUI only ever sees
// this interface; the OS integration lives in infra.
type Clipboard interface {
	Copy(text string) error
}
