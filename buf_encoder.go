package hexcons

import "unicode/utf8"

// BufEncoder hex-encodes bytes into a buffer of fixed capacity.
//
// The capacity is set once, at construction, and is always an even number of
// characters. Writes that do not fit fail with *OutOfSpaceError and leave the
// buffer as it was, so the encoded text is always a complete rendering of the
// bytes written so far.
//
// A BufEncoder can be reused for independent passes with Reset. It must not be
// used from several goroutines at once.
type BufEncoder struct {
	buf []byte
	n   int
	cs  Case
}

// NewBufEncoder allocates an encoder that can hold the hex of maxBytes source
// bytes, that is 2*maxBytes characters.
func NewBufEncoder(maxBytes int, c Case) *BufEncoder {
	if maxBytes < 0 {
		maxBytes = 0
	}
	return &BufEncoder{buf: make([]byte, 2*maxBytes), cs: c}
}

// NewBufEncoderWith returns an encoder writing into buf, which is typically a
// slice of a local array. The capacity is len(buf) rounded down to an even
// number. Nothing is allocated.
func NewBufEncoderWith(buf []byte, c Case) BufEncoder {
	return BufEncoder{buf: buf[:len(buf)&^1], cs: c}
}

// PutByte appends the two characters of b.
func (e *BufEncoder) PutByte(b byte) error {
	if len(e.buf)-e.n < 2 {
		return &OutOfSpaceError{required: 2, available: len(e.buf) - e.n}
	}
	e.cs.putByte(e.buf[e.n:], b)
	e.n += 2
	return nil
}

// PutBytes appends the hex of p. If it does not fit in the remaining space
// nothing is written and *OutOfSpaceError is returned.
func (e *BufEncoder) PutBytes(p []byte) error {
	if need := 2 * len(p); need > len(e.buf)-e.n {
		return &OutOfSpaceError{required: need, available: len(e.buf) - e.n}
	}
	e.put(p)
	return nil
}

// PutBytesMin appends as many whole bytes of p as fit and returns the bytes that
// were not written. The remainder is empty when everything fit.
func (e *BufEncoder) PutBytesMin(p []byte) []byte {
	k := min(e.SpaceRemaining(), len(p))
	e.put(p[:k])
	return p[k:]
}

func (e *BufEncoder) put(p []byte) {
	t := e.cs.table()
	j := e.n
	for _, v := range p {
		e.buf[j] = t[v>>4]
		e.buf[j+1] = t[v&0x0f]
		j += 2
	}
	e.n = j
}

// putReverse appends the hex of p from its last byte to its first. The caller
// has checked the space.
func (e *BufEncoder) putReverse(p []byte) {
	t := e.cs.table()
	j := e.n
	for i := len(p) - 1; i >= 0; i-- {
		e.buf[j] = t[p[i]>>4]
		e.buf[j+1] = t[p[i]&0x0f]
		j += 2
	}
	e.n = j
}

// putFiller appends up to limit copies of fill and returns how many fit.
// Used for padding, so unlike the Put methods it may leave an odd length.
func (e *BufEncoder) putFiller(fill rune, limit int) int {
	var enc [utf8.UTFMax]byte
	w := utf8.EncodeRune(enc[:], fill)
	count := min((len(e.buf)-e.n)/w, limit)
	for i := 0; i < count; i++ {
		e.n += copy(e.buf[e.n:], enc[:w])
	}
	return count
}

// Bytes returns the encoded text. The slice aliases the internal buffer and is
// only valid until the next Put or Reset; callers must not modify it.
func (e *BufEncoder) Bytes() []byte {
	return e.buf[:e.n:e.n]
}

// String returns a copy of the encoded text.
func (e *BufEncoder) String() string {
	return string(e.buf[:e.n])
}

// Reset discards the encoded text and keeps the buffer.
func (e *BufEncoder) Reset() {
	e.n = 0
}

// Len returns the number of characters encoded so far.
func (e *BufEncoder) Len() int { return e.n }

// Cap returns the capacity in characters.
func (e *BufEncoder) Cap() int { return len(e.buf) }

// SpaceRemaining returns how many more source bytes fit.
func (e *BufEncoder) SpaceRemaining() int { return (len(e.buf) - e.n) / 2 }

// IsFull reports whether no further byte fits.
func (e *BufEncoder) IsFull() bool { return e.SpaceRemaining() == 0 }

// Case returns the case used for new writes.
func (e *BufEncoder) Case() Case { return e.cs }

// SetCase changes the case used for subsequent writes. Text already encoded is
// left as it is.
func (e *BufEncoder) SetCase(c Case) { e.cs = c }
