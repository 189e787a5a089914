package linebuffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithInitialCapacity sets the number of line slots reserved up front.
// Non-positive values are ignored.
func WithInitialCapacity(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.capacity = n
		}
	}
}
