package linebuffer

// minLineCapacity is the smallest backing array a non-empty line gets.
const minLineCapacity = 8

// Line is a single mutable line of text without its terminator.
// The zero value is an empty line.
type Line struct {
	data []byte
}

// NewLine creates a line holding a copy of s.
func NewLine(s string) Line {
	var l Line
	if len(s) > 0 {
		l.grow(len(s))
		l.data = append(l.data, s...)
	}
	return l
}

// Len returns the number of bytes in the line.
func (l *Line) Len() int {
	return len(l.data)
}

// Cap returns the capacity of the backing array.
func (l *Line) Cap() int {
	return cap(l.data)
}

// String returns the line content.
func (l *Line) String() string {
	return string(l.data)
}

// Bytes returns a copy of the line content.
func (l *Line) Bytes() []byte {
	out := make([]byte, len(l.data))
	copy(out, l.data)
	return out
}

// grow makes room for at least required bytes, doubling the capacity.
func (l *Line) grow(required int) {
	if required <= cap(l.data) {
		return
	}
	newCap := cap(l.data) * 2
	if newCap < minLineCapacity {
		newCap = minLineCapacity
	}
	for newCap < required {
		newCap *= 2
	}
	data := make([]byte, len(l.data), newCap)
	copy(data, l.data)
	l.data = data
}

// insert places ch at column col. The caller validates col.
func (l *Line) insert(col int, ch byte) {
	l.grow(len(l.data) + 1)
	l.data = l.data[:len(l.data)+1]
	copy(l.data[col+1:], l.data[col:])
	l.data[col] = ch
}

// remove deletes the byte at column col. The caller validates col.
func (l *Line) remove(col int) {
	copy(l.data[col:], l.data[col+1:])
	l.data = l.data[:len(l.data)-1]
}

// appendLine appends the content of other to the end of l.
func (l *Line) appendLine(other *Line) {
	l.grow(len(l.data) + len(other.data))
	l.data = append(l.data, other.data...)
}

// splitAt truncates l to [0, col) and returns a new line with [col, len).
func (l *Line) splitAt(col int) Line {
	right := NewLine(string(l.data[col:]))
	l.data = l.data[:col]
	return right
}
