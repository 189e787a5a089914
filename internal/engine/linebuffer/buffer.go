package linebuffer

// DefaultInitialCapacity is the number of line slots reserved by Load.
const DefaultInitialCapacity = 256

// Buffer is an ordered, growable sequence of lines.
// It always contains at least one line.
type Buffer struct {
	lines    []Line
	grows    int
	capacity int // requested initial capacity
}

// New creates a buffer containing a single empty line.
func New(opts ...Option) *Buffer {
	b := newBuffer(opts...)
	b.appendLine(Line{})
	return b
}

// Load creates a buffer from pre-split lines of text.
// Each input string becomes one line in order; a trailing "\n" is stripped
// if present. An empty input produces a single empty line.
func Load(text []string, opts ...Option) *Buffer {
	b := newBuffer(opts...)
	for _, s := range text {
		if n := len(s); n > 0 && s[n-1] == '\n' {
			s = s[:n-1]
		}
		b.appendLine(NewLine(s))
	}
	if len(b.lines) == 0 {
		b.appendLine(Line{})
	}
	return b
}

func newBuffer(opts ...Option) *Buffer {
	b := &Buffer{capacity: DefaultInitialCapacity}
	for _, opt := range opts {
		opt(b)
	}
	b.lines = make([]Line, 0, b.capacity)
	return b
}

// Serialize returns the lines in order for persistence.
func (b *Buffer) Serialize() []string {
	out := make([]string, len(b.lines))
	for i := range b.lines {
		out[i] = b.lines[i].String()
	}
	return out
}

// Read Operations

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the length of a line in bytes, or 0 for an invalid row.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return b.lines[row].Len()
}

// LineText returns the content of a line, or "" for an invalid row.
func (b *Buffer) LineText(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row].String()
}

// LineBytes returns a copy of a line's content, or nil for an invalid row.
func (b *Buffer) LineBytes(row int) []byte {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row].Bytes()
}

// Capacity returns the number of line slots currently allocated.
func (b *Buffer) Capacity() int {
	return cap(b.lines)
}

// Grows returns how many times the line sequence has been reallocated.
func (b *Buffer) Grows() int {
	return b.grows
}

// Edit Operations

// InsertChar inserts ch into line row at column col, shifting the rest of
// the line right. col must be in [0, LineLen(row)]. Advancing the cursor is
// the caller's job.
func (b *Buffer) InsertChar(row, col int, ch byte) error {
	if !b.validRow(row) || col < 0 || col > b.lines[row].Len() {
		return newRangeError("insert", row, col, len(b.lines))
	}
	b.lines[row].insert(col, ch)
	return nil
}

// DeleteCharBefore removes the character before (row, col) and returns the
// resulting cursor position.
//
// With col > 0 the character at col-1 is removed. At the start of a line
// below the first, the line is appended to the previous one and removed;
// the returned column is the previous line's old length. At (0, 0) nothing
// changes.
func (b *Buffer) DeleteCharBefore(row, col int) (int, int, error) {
	if !b.validRow(row) || col < 0 || col > b.lines[row].Len() {
		return row, col, newRangeError("delete before", row, col, len(b.lines))
	}

	if col > 0 {
		b.lines[row].remove(col - 1)
		return row, col - 1, nil
	}

	if row == 0 {
		return 0, 0, nil
	}

	prevLen := b.lines[row-1].Len()
	b.lines[row-1].appendLine(&b.lines[row])
	b.removeLine(row)
	return row - 1, prevLen, nil
}

// DeleteCharAt removes the character at (row, col). At the end of a line
// that has a successor, the next line is appended and removed. At the end
// of the last line nothing changes.
func (b *Buffer) DeleteCharAt(row, col int) error {
	if !b.validRow(row) || col < 0 || col > b.lines[row].Len() {
		return newRangeError("delete at", row, col, len(b.lines))
	}

	if col < b.lines[row].Len() {
		b.lines[row].remove(col)
		return nil
	}

	if row+1 >= len(b.lines) {
		return nil
	}

	b.lines[row].appendLine(&b.lines[row+1])
	b.removeLine(row + 1)
	return nil
}

// SplitLine truncates line row to [0, col) and inserts the remainder as a
// new line directly below it. It returns the new line's row.
func (b *Buffer) SplitLine(row, col int) (int, error) {
	if !b.validRow(row) || col < 0 || col > b.lines[row].Len() {
		return row, newRangeError("split", row, col, len(b.lines))
	}

	b.ensureCapacity(len(b.lines) + 1)
	right := b.lines[row].splitAt(col)

	b.lines = b.lines[:len(b.lines)+1]
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = right
	return row + 1, nil
}

// RemoveLine deletes line at, shifting subsequent lines up.
// Removing the only line leaves a single empty line.
func (b *Buffer) RemoveLine(at int) error {
	if !b.validRow(at) {
		return newRangeError("remove line", at, 0, len(b.lines))
	}
	if len(b.lines) == 1 {
		b.lines[0] = Line{}
		return nil
	}
	b.removeLine(at)
	return nil
}

// removeLine deletes line at without checks. Callers guarantee that more
// than one line exists.
func (b *Buffer) removeLine(at int) {
	copy(b.lines[at:], b.lines[at+1:])
	b.lines[len(b.lines)-1] = Line{}
	b.lines = b.lines[:len(b.lines)-1]
}

func (b *Buffer) appendLine(l Line) {
	b.ensureCapacity(len(b.lines) + 1)
	b.lines = append(b.lines, l)
}

// ensureCapacity doubles the line storage until it holds required lines.
func (b *Buffer) ensureCapacity(required int) {
	if required <= cap(b.lines) {
		return
	}

	newCap := cap(b.lines) * 2
	if newCap < 1 {
		newCap = 1
	}
	for newCap < required {
		newCap *= 2
	}

	lines := make([]Line, len(b.lines), newCap)
	copy(lines, b.lines)
	b.lines = lines
	b.grows++
}

func (b *Buffer) validRow(row int) bool {
	return row >= 0 && row < len(b.lines)
}
