package expr

// truncationMarker replaces the last stored byte of a rendering that did
// not fit in its buffer.
const truncationMarker = '$'

// boundedWriter writes into a fixed buffer whose last byte is reserved for
// a NUL terminator. Bytes that do not fit are dropped and the writer
// remembers that the output was cut short.
type boundedWriter struct {
	buf       []byte
	n         int
	truncated bool
}

func (w *boundedWriter) WriteByte(c byte) error {
	if w.n < len(w.buf)-1 {
		w.buf[w.n] = c
		w.n++
	} else {
		w.truncated = true
	}
	return nil
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	for _, c := range p {
		_ = w.WriteByte(c)
	}
	return len(p), nil
}

// finish applies the truncation marker, terminates the buffer and returns
// the length of the stored string.
func (w *boundedWriter) finish() int {
	if len(w.buf) == 0 {
		return 0
	}
	if w.truncated && w.n > 0 {
		w.buf[w.n-1] = truncationMarker
	}
	w.buf[w.n] = 0
	return w.n
}
