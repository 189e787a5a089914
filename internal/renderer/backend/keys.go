package backend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned by ParseKey for names it does not recognize.
var ErrUnknownKey = errors.New("unknown key name")

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
}

var keyAliases = map[string]Key{
	"escape":   KeyEscape,
	"return":   KeyEnter,
	"bs":       KeyBackspace,
	"del":      KeyDelete,
	"pageup":   KeyPageUp,
	"pagedown": KeyPageDown,
}

// String returns the canonical name of the key, as accepted by ParseKey.
func (k Key) String() string {
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return "ctrl+" + string(rune('a'+k-KeyCtrlA))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ParseKey converts a key name such as "esc", "ctrl+s" or "C-w" to a Key.
// Names are case-insensitive. Printable characters are not bindable.
func ParseKey(name string) (Key, error) {
	s := strings.ToLower(strings.TrimSpace(name))

	for _, prefix := range []string{"ctrl+", "ctrl-", "c-", "^"} {
		rest, ok := strings.CutPrefix(s, prefix)
		if !ok {
			continue
		}
		if len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
			return KeyCtrlA + Key(rest[0]-'a'), nil
		}
		return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}

	if k, ok := keyAliases[s]; ok {
		return k, nil
	}
	for k, n := range keyNames {
		if n == s && k != KeyNone && k != KeyRune {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}
