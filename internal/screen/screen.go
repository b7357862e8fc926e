// Package screen defines the contract between the router and the
// drill's screens. A screen owns its slice of state (a menu, a setup
// form, a running session) and renders only the body; the app shell
// draws the header and footer around it.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mkobayashi/kanjidrill/internal/ui/layout"
)

// Screen is one stackable view. Update returns the screen to keep on
// top of the stack, which is usually the receiver but may be a
// replacement (a finished session hands back its summary).
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body for the given content area, excluding
	// the shell's header and footer rows.
	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
// Screens with modal states (confirmation prompts, typing slots)
// return hints for the state they are currently in.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
