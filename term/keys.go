package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var namedKeys = func() map[tcell.Key]string {
	// Backspace arrives as BS or DEL depending on the terminal.
	pairs := []struct {
		key  tcell.Key
		name string
	}{
		{tcell.KeyLeft, "Left"},
		{tcell.KeyRight, "Right"},
		{tcell.KeyUp, "Up"},
		{tcell.KeyDown, "Down"},
		{tcell.KeyEnter, "Enter"},
		{tcell.KeyEscape, "Escape"},
		{tcell.KeyTab, "Tab"},
		{tcell.KeyBackspace, "Backspace"},
		{tcell.KeyBackspace2, "Backspace"},
	}

	m := make(map[tcell.Key]string, len(pairs))
	for _, p := range pairs {
		m[p.key] = p.name
	}
	return m
}()

// KeyName returns the settings key name for a key event. Letters are
// matched case-insensitively.
func KeyName(ev *tcell.EventKey) (string, bool) {
	if ev.Key() != tcell.KeyRune {
		name, ok := namedKeys[ev.Key()]
		return name, ok
	}

	r := unicode.ToUpper(ev.Rune())
	switch {
	case r == ' ':
		return "Space", true
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return string(r), true
	}
	return "", false
}
