package app

import (
	"fmt"

	"github.com/dshills/linedit/internal/config"
	"github.com/dshills/linedit/internal/editor"
	"github.com/dshills/linedit/internal/renderer/backend"
)

// defaultBindings are the keys every session understands.
var defaultBindings = map[backend.Key]editor.Action{
	backend.KeyUp:        editor.ActionMoveUp,
	backend.KeyDown:      editor.ActionMoveDown,
	backend.KeyLeft:      editor.ActionMoveLeft,
	backend.KeyRight:     editor.ActionMoveRight,
	backend.KeyBackspace: editor.ActionBackspace,
	backend.KeyDelete:    editor.ActionDelete,
	backend.KeyEnter:     editor.ActionNewline,
}

// Keymap translates key events into editor actions.
type Keymap struct {
	bindings map[backend.Key]editor.Action
}

// NewKeymap builds a keymap from the configured save and quit keys.
// Configured keys take precedence over the built-in bindings.
func NewKeymap(keys config.KeysConfig) (*Keymap, error) {
	m := &Keymap{bindings: make(map[backend.Key]editor.Action, len(defaultBindings)+len(keys.Save)+len(keys.Quit))}
	for k, a := range defaultBindings {
		m.bindings[k] = a
	}

	if err := m.bind(keys.Save, editor.ActionSave); err != nil {
		return nil, err
	}
	if err := m.bind(keys.Quit, editor.ActionQuit); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Keymap) bind(names []string, action editor.Action) error {
	for _, name := range names {
		k, err := backend.ParseKey(name)
		if err != nil {
			return fmt.Errorf("bind %s: %w", action, err)
		}
		m.bindings[k] = action
	}
	return nil
}

// Lookup returns the action for a key event. Printable ASCII runes map
// to ActionInsert with the character; anything unbound maps to
// ActionNone.
func (m *Keymap) Lookup(ev backend.Event) (editor.Action, byte) {
	if ev.Type != backend.EventKey {
		return editor.ActionNone, 0
	}
	if ev.Key == backend.KeyRune {
		if ev.Rune < 0x80 && editor.Printable(byte(ev.Rune)) {
			return editor.ActionInsert, byte(ev.Rune)
		}
		return editor.ActionNone, 0
	}
	if a, ok := m.bindings[ev.Key]; ok {
		return a, 0
	}
	return editor.ActionNone, 0
}

// Keys returns the keys bound to action.
func (m *Keymap) Keys(action editor.Action) []backend.Key {
	var keys []backend.Key
	for k, a := range m.bindings {
		if a == action {
			keys = append(keys, k)
		}
	}
	return keys
}
