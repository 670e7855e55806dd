// ABOUTME: Fixes the lipgloss background guess before bubbletea's init() can send OSC 11 queries
// ABOUTME: A query reply would land in the input stream and be misread next to capability replies

package termfix

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// This package must NOT import bubbletea (directly or transitively) so
// that init order runs it first. Import it with _ from main.
func init() {
	lipgloss.SetHasDarkBackground(DarkBackground(os.Getenv("COLORFGBG")))
}

// DarkBackground guesses the background from a COLORFGBG value such as
// "15;0" (fg;bg) or "15;default;0". Missing or unparsable values count
// as dark.
func DarkBackground(colorfgbg string) bool {
	if colorfgbg == "" {
		return true
	}
	parts := strings.Split(colorfgbg, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return true
	}
	// ANSI 7 (white) and 9-15 (bright) are light backgrounds.
	return !(bg == 7 || (bg >= 9 && bg <= 15))
}
