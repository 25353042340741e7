package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides terminal detection.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive drops a previous override.
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true when f is a terminal, so the user can be
// prompted through it.
func IsInteractive(f *os.File) bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
