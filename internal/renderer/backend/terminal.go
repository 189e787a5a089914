package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/linedit/internal/renderer/core"
)

// Terminal implements Backend on a tcell screen.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a backend for the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// locked runs fn with the screen while holding the lock.
func (t *Terminal) locked(fn func(s tcell.Screen)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.screen)
}

func (t *Terminal) Init() error {
	var err error
	t.locked(func(s tcell.Screen) {
		if err = s.Init(); err == nil {
			s.SetStyle(tcell.StyleDefault)
		}
	})
	return err
}

func (t *Terminal) Shutdown() {
	t.locked(func(s tcell.Screen) { s.Fini() })
}

func (t *Terminal) Size() (width, height int) {
	t.locked(func(s tcell.Screen) { width, height = s.Size() })
	return width, height
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.locked(func(s tcell.Screen) {
		s.SetContent(x, y, cell.Rune, nil, toTcellStyle(cell.Style))
	})
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	var cell core.Cell
	t.locked(func(s tcell.Screen) {
		r, _, style, _ := s.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
		cell = core.Cell{Rune: r, Style: fromTcellStyle(style)}
	})
	return cell
}

func (t *Terminal) Clear() {
	t.locked(func(s tcell.Screen) { s.Clear() })
}

func (t *Terminal) Show() {
	t.locked(func(s tcell.Screen) { s.Show() })
}

func (t *Terminal) ShowCursor(x, y int) {
	t.locked(func(s tcell.Screen) { s.ShowCursor(x, y) })
}

func (t *Terminal) HideCursor() {
	t.locked(func(s tcell.Screen) { s.HideCursor() })
}

// PollEvent blocks without holding the lock so other goroutines can post.
// Once the screen is finalized it returns an EventNone event.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventNone}
		}
		if converted, ok := fromTcellEvent(ev); ok {
			return converted
		}
	}
}

func (t *Terminal) PostEvent(event Event) {
	var ev tcell.Event
	switch event.Type {
	case EventKey:
		ev = tcell.NewEventKey(toTcellKey(event.Key), event.Rune, tcell.ModNone)
	case EventInterrupt:
		ev = tcell.NewEventInterrupt(event.Payload)
	default:
		return
	}
	_ = t.screen.PostEvent(ev) // dropped if the queue is full
}

// tcellKeys maps tcell keys to ours. tcell's Ctrl+H, Ctrl+I and Ctrl+M
// share codes with Backspace, Tab and Enter; the named keys win.
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyRune:       KeyRune,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyLF:         KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
}

// keysToTcell is the reverse of tcellKeys, preferring the codes terminals
// send for Enter and Backspace.
var keysToTcell = func() map[Key]tcell.Key {
	m := make(map[Key]tcell.Key, len(tcellKeys))
	for tk, k := range tcellKeys {
		m[k] = tk
	}
	m[KeyEnter] = tcell.KeyEnter
	m[KeyBackspace] = tcell.KeyBackspace2
	return m
}()

func fromTcellKey(k tcell.Key) Key {
	if key, ok := tcellKeys[k]; ok {
		return key
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyCtrlA + Key(k-tcell.KeyCtrlA)
	}
	return KeyNone
}

func toTcellKey(k Key) tcell.Key {
	if tk, ok := keysToTcell[k]; ok {
		return tk
	}
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return tcell.KeyCtrlA + tcell.Key(k-KeyCtrlA)
	}
	return tcell.KeyNUL
}

// fromTcellEvent converts the events the editor handles. Others report
// ok == false.
func fromTcellEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, r := fromTcellKey(e.Key()), e.Rune()
		// Some terminals report Ctrl+letter as a rune with ModCtrl.
		if k == KeyRune && e.Modifiers()&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
			k, r = KeyCtrlA+Key(r-'a'), 0
		}
		if k == KeyNone {
			return Event{}, false
		}
		return Event{Type: EventKey, Key: k, Rune: r}, true

	case *tcell.EventResize:
		w, h := e.Size()
		return ResizeEvent(w, h), true

	case *tcell.EventInterrupt:
		return InterruptEvent(e.Data()), true
	}
	return Event{}, false
}

var attrPairs = []struct {
	ours   core.Attr
	theirs tcell.AttrMask
}{
	{core.AttrBold, tcell.AttrBold},
	{core.AttrDim, tcell.AttrDim},
	{core.AttrUnderline, tcell.AttrUnderline},
	{core.AttrReverse, tcell.AttrReverse},
}

func toTcellStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	if s.Fg != core.ColorDefault {
		style = style.Foreground(tcell.PaletteColor(int(s.Fg)))
	}
	if s.Bg != core.ColorDefault {
		style = style.Background(tcell.PaletteColor(int(s.Bg)))
	}
	return style.
		Bold(s.Attrs.Has(core.AttrBold)).
		Dim(s.Attrs.Has(core.AttrDim)).
		Underline(s.Attrs.Has(core.AttrUnderline)).
		Reverse(s.Attrs.Has(core.AttrReverse))
}

func fromTcellStyle(ts tcell.Style) core.Style {
	fg, bg, attrs := ts.Decompose()

	s := core.Style{Fg: fromTcellColor(fg), Bg: fromTcellColor(bg)}
	for _, p := range attrPairs {
		if attrs&p.theirs != 0 {
			s.Attrs |= p.ours
		}
	}
	return s
}

// fromTcellColor maps palette colors back to their index. RGB colors are
// never drawn by the editor and read back as the default.
func fromTcellColor(tc tcell.Color) core.Color {
	if tc >= tcell.ColorValid && tc < tcell.ColorValid+256 {
		return core.Color(tc - tcell.ColorValid)
	}
	return core.ColorDefault
}

var _ Backend = (*Terminal)(nil)
