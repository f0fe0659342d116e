package gui

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/settings"
)

// Held keys repeat after repeatDelay ticks, then every repeatRate ticks.
const (
	repeatDelay = 12
	repeatRate  = 3
)

// MuteKey toggles sound unless a binding uses it.
const MuteKey = ebiten.KeyM

var keysByName = map[string]ebiten.Key{
	"Left":      ebiten.KeyArrowLeft,
	"Right":     ebiten.KeyArrowRight,
	"Up":        ebiten.KeyArrowUp,
	"Down":      ebiten.KeyArrowDown,
	"Space":     ebiten.KeySpace,
	"Enter":     ebiten.KeyEnter,
	"Escape":    ebiten.KeyEscape,
	"Tab":       ebiten.KeyTab,
	"Backspace": ebiten.KeyBackspace,

	"A": ebiten.KeyA,
	"B": ebiten.KeyB,
	"C": ebiten.KeyC,
	"D": ebiten.KeyD,
	"E": ebiten.KeyE,
	"F": ebiten.KeyF,
	"G": ebiten.KeyG,
	"H": ebiten.KeyH,
	"I": ebiten.KeyI,
	"J": ebiten.KeyJ,
	"K": ebiten.KeyK,
	"L": ebiten.KeyL,
	"M": ebiten.KeyM,
	"N": ebiten.KeyN,
	"O": ebiten.KeyO,
	"P": ebiten.KeyP,
	"Q": ebiten.KeyQ,
	"R": ebiten.KeyR,
	"S": ebiten.KeyS,
	"T": ebiten.KeyT,
	"U": ebiten.KeyU,
	"V": ebiten.KeyV,
	"W": ebiten.KeyW,
	"X": ebiten.KeyX,
	"Y": ebiten.KeyY,
	"Z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0,
	"1": ebiten.KeyDigit1,
	"2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3,
	"4": ebiten.KeyDigit4,
	"5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6,
	"7": ebiten.KeyDigit7,
	"8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,
}

// KeyByName maps a settings key name to an Ebiten key.
func KeyByName(name string) (ebiten.Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// KeyBinding ties one key to one event.
type KeyBinding struct {
	Key   ebiten.Key
	Event game.Event
}

// Keymap is the singleton with the active bindings, ordered by key.
type Keymap struct {
	Bindings []KeyBinding
}

// NewKeymap resolves a key name → event table.
func NewKeymap(table map[string]game.Event) (Keymap, error) {
	var km Keymap
	for name, ev := range table {
		key, ok := KeyByName(name)
		if !ok {
			return Keymap{}, fmt.Errorf("key %q has no ebiten mapping", name)
		}
		km.Bindings = append(km.Bindings, KeyBinding{Key: key, Event: ev})
	}
	slices.SortFunc(km.Bindings, func(a, b KeyBinding) int {
		return int(a.Key) - int(b.Key)
	})
	return km, nil
}

// KeymapFromConfig builds the keymap for cfg's bindings.
func KeymapFromConfig(cfg settings.Config) (Keymap, error) {
	return NewKeymap(cfg.KeyEvents())
}

// Bound reports whether key triggers any event.
func (k Keymap) Bound(key ebiten.Key) bool {
	return slices.ContainsFunc(k.Bindings, func(b KeyBinding) bool {
		return b.Key == key
	})
}

// Repeats reports whether holding a key bound to ev keeps firing it.
func Repeats(ev game.Event) bool {
	switch ev {
	case game.EventMoveLeft, game.EventMoveRight, game.EventSoftDrop:
		return true
	}
	return false
}

// Fires reports whether a key held for the given number of ticks fires on
// this tick. A held duration of 1 is the press itself.
func Fires(held int, repeat bool) bool {
	if held == 1 {
		return true
	}
	if !repeat || held < repeatDelay {
		return false
	}
	return (held-repeatDelay)%repeatRate == 0
}
