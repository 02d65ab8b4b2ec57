package hexcons

import (
	"io"
	"iter"
	"slices"
)

// Decoder decodes hex text lazily, one byte per call, validating as it goes.
//
// The decoder never modifies or copies its source. Once it returns an error it
// stays at the failing position and keeps returning that error. Create a new
// Decoder over the same text to start again from the beginning.
type Decoder struct {
	src string
	pos int
}

// NewDecoder returns a Decoder reading hex text from s. Upper, lower and mixed
// case digits are accepted. A 0x prefix is not; strip it first or use
// DecodeMaybePrefixed.
func NewDecoder(s string) *Decoder {
	return &Decoder{src: s}
}

// ReadByte decodes the next pair of characters. It returns io.EOF once the input
// is exhausted.
//
// An odd-length input fails on every call with *OddLengthStringError before any
// character is inspected, so parity errors take precedence over invalid
// characters. Otherwise a non-hex character fails with *InvalidCharError, the
// high character of a pair being checked first.
func (d *Decoder) ReadByte() (byte, error) {
	if len(d.src)%2 != 0 {
		return 0, &OddLengthStringError{length: len(d.src)}
	}
	if d.pos >= len(d.src) {
		return 0, io.EOF
	}
	hi, ok := fromHexChar(d.src[d.pos])
	if !ok {
		return 0, &InvalidCharError{char: d.src[d.pos], pos: d.pos}
	}
	lo, ok := fromHexChar(d.src[d.pos+1])
	if !ok {
		return 0, &InvalidCharError{char: d.src[d.pos+1], pos: d.pos + 1}
	}
	d.pos += 2
	return hi<<4 | lo, nil
}

// Len returns the number of bytes left to decode, assuming the rest is valid.
func (d *Decoder) Len() int {
	return (len(d.src) - d.pos) / 2
}

// Pos returns the index of the next unread character.
func (d *Decoder) Pos() int {
	return d.pos
}

// Remaining returns the text not yet consumed.
func (d *Decoder) Remaining() string {
	return d.src[d.pos:]
}

// All returns a single-use sequence of the remaining bytes. The sequence ends
// after the first error, which is yielded with a zero byte.
func (d *Decoder) All() iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		for {
			b, err := d.ReadByte()
			if err == io.EOF {
				return
			}
			if !yield(b, err) || err != nil {
				return
			}
		}
	}
}

// validate checks the remaining input without consuming it.
func (d *Decoder) validate() error {
	probe := *d
	for {
		_, err := probe.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// DrainTo decodes all remaining bytes into dst and returns how many were
// written. It fails with *InvalidLengthError, without writing anything, when the
// remaining input is valid but does not fit dst. On a character error the bytes
// decoded before the failing pair have been written to dst.
func (d *Decoder) DrainTo(dst []byte) (int, error) {
	if n := d.Len(); n > len(dst) {
		if err := d.validate(); err != nil {
			return 0, err
		}
		return 0, &InvalidLengthError{expected: len(dst), actual: n}
	}
	n := 0
	for {
		b, err := d.ReadByte()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		dst[n] = b
		n++
	}
}

// AppendTo decodes all remaining bytes and appends them to dst. On error the
// returned slice holds the bytes decoded before the failure.
func (d *Decoder) AppendTo(dst []byte) ([]byte, error) {
	if len(d.src)%2 != 0 {
		return dst, &OddLengthStringError{length: len(d.src)}
	}
	dst = slices.Grow(dst, d.Len())
	for {
		b, err := d.ReadByte()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return dst, err
		}
		dst = append(dst, b)
	}
}
