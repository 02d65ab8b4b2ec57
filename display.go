package hexcons

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// chunkBytes is how many source bytes are encoded per write to the sink.
const chunkBytes = 512

// Align positions hex text inside a field wider than the text.
type Align uint8

const (
	// AlignLeft puts the padding after the text. It is the zero value and the
	// default for every formatting entry point.
	AlignLeft Align = iota
	// AlignRight puts the padding before the text.
	AlignRight
	// AlignCenter splits the padding, the extra character going after the text.
	AlignCenter
)

func (a Align) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	}
	return "left"
}

// ParseAlign parses "left", "right" or "center", ignoring ASCII case.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q, want left, right or center", s)
}

// Options controls how bytes are rendered as hex text. The zero value renders
// lower case digits with no prefix and no padding.
//
// The 0x prefix, when enabled, always sits directly before the first digit:
// right-aligned padding comes before it, left-aligned padding after the last
// digit. Padding never splits the digits, and Width never truncates.
type Options struct {
	Case Case

	// Prefix adds "0x" (or "0X" for Upper) before the digits.
	Prefix bool

	// Width is the minimum number of characters, padding included.
	Width int

	// Fill is the padding character, a space when zero.
	Fill rune

	Align Align

	// Precision limits the number of hex digits emitted when HasPrecision is
	// set. An odd precision ends with the high digit of a byte.
	Precision    int
	HasPrecision bool

	// Reverse renders the bytes last to first, as used for little-endian hashes.
	Reverse bool

	quoted bool
}

// DebugOptions returns the configuration of the debug rendering: quoted, lower
// case and never prefixed. Width and precision may still be set on the result.
func DebugOptions() Options {
	return Options{quoted: true}
}

func (o Options) fill() rune {
	if o.Fill == 0 {
		return ' '
	}
	if !utf8.ValidRune(o.Fill) {
		return utf8.RuneError
	}
	return o.Fill
}

// layout returns the number of digits to emit and the padding, in characters,
// before and after the content.
func (o Options) layout(n int) (digits, left, right int) {
	digits = 2 * n
	if o.HasPrecision && o.Precision < digits {
		digits = max(o.Precision, 0)
	}
	size := digits
	if o.Prefix && !o.quoted {
		size += 2
	}
	if o.quoted {
		size += 2
	}
	extra := o.Width - size
	if extra <= 0 {
		return digits, 0, 0
	}
	switch o.Align {
	case AlignRight:
		left = extra
	case AlignCenter:
		left = extra / 2
		right = extra - left
	default:
		right = extra
	}
	return digits, left, right
}

// encodedSize returns the number of bytes WriteHex writes for n source bytes.
func (o Options) encodedSize(n int) int {
	digits, left, right := o.layout(n)
	size := digits + (left+right)*utf8.RuneLen(o.fill())
	if o.Prefix || o.quoted {
		size += 2
	}
	return size
}

// sink counts what was written and remembers the first error.
type sink struct {
	w   io.Writer
	n   int
	err error
}

func (s *sink) write(p []byte) {
	if s.err != nil || len(p) == 0 {
		return
	}
	n, err := s.w.Write(p)
	s.n += n
	s.err = err
}

func (s *sink) writeString(str string) {
	if s.err != nil || len(str) == 0 {
		return
	}
	n, err := io.WriteString(s.w, str)
	s.n += n
	s.err = err
}

// WriteHex renders src to w according to o and returns the number of bytes
// written. Digits and padding go through one fixed-size buffer whatever the
// length of src.
func WriteHex(w io.Writer, src []byte, o Options) (int, error) {
	if o.quoted {
		o.Case, o.Prefix = Lower, false
	}
	digits, left, right := o.layout(len(src))
	fill := o.fill()

	var arr [2 * chunkBytes]byte
	enc := NewBufEncoderWith(arr[:], o.Case)
	s := &sink{w: w}

	pad(s, &enc, fill, left)
	if o.quoted {
		s.writeString(`"`)
	}
	if o.Prefix {
		s.writeString(o.Case.prefix())
	}

	// Bytes needed to cover the digits, the last one possibly half used.
	need := (digits + 1) / 2
	remaining := digits
	emit := func() {
		out := enc.Bytes()
		if len(out) > remaining {
			out = out[:remaining]
		}
		s.write(out)
		remaining -= len(out)
		enc.Reset()
	}
	if o.Reverse {
		for hi, stop := len(src), len(src)-need; hi > stop; {
			lo := max(hi-chunkBytes, stop)
			enc.putReverse(src[lo:hi])
			emit()
			hi = lo
		}
	} else {
		for off := 0; off < need; off += chunkBytes {
			enc.put(src[off:min(off+chunkBytes, need)])
			emit()
		}
	}

	if o.quoted {
		s.writeString(`"`)
	}
	pad(s, &enc, fill, right)
	return s.n, s.err
}

// pad writes count copies of fill, reusing one buffer full of it.
func pad(s *sink, enc *BufEncoder, fill rune, count int) {
	if count <= 0 {
		return
	}
	enc.Reset()
	per := enc.putFiller(fill, count)
	block := enc.Bytes()
	w := len(block) / per
	for count > 0 {
		k := min(per, count)
		s.write(block[:k*w])
		count -= k
	}
	enc.Reset()
}

// appendWriter grows a byte slice.
type appendWriter struct {
	b []byte
}

func (a *appendWriter) Write(p []byte) (int, error) {
	a.b = append(a.b, p...)
	return len(p), nil
}

// AppendHex appends the rendering of src to dst and returns the extended slice.
func AppendHex(dst, src []byte, o Options) []byte {
	a := &appendWriter{b: slices.Grow(dst, o.encodedSize(len(src)))}
	_, _ = WriteHex(a, src, o)
	return a.b
}

// Format returns the rendering of src as a string.
func Format(src []byte, o Options) string {
	var sb strings.Builder
	sb.Grow(o.encodedSize(len(src)))
	_, _ = WriteHex(&sb, src, o)
	return sb.String()
}

// Debug returns the debug rendering of src: quoted lower case hex.
func Debug(src []byte) string {
	return Format(src, DebugOptions())
}

// Display formats a byte slice as hex through the fmt package.
//
//	%x, %s, %v  lower case
//	%X          upper case
//	%q          debug form: quoted, lower case, never prefixed
//	#           adds the 0x (0X for %X) prefix
//	width       minimum field width; the text is left-aligned
//	-           left-aligns (the default anyway)
//	0           pads with '0' and right-aligns, keeping the prefix next to the digits
//	.prec       maximum number of hex digits
//
// Centering and arbitrary fill characters are available through Options.
type Display struct {
	b []byte
}

// AsHex wraps b for hex formatting. The slice is not copied.
func AsHex(b []byte) Display {
	return Display{b: b}
}

// String returns the lower case hex of the wrapped bytes.
func (d Display) String() string {
	return Format(d.b, Options{})
}

// GoString returns the prefixed lower case hex, the same text as %#v.
func (d Display) GoString() string {
	return Format(d.b, Options{Prefix: true})
}

// Format implements fmt.Formatter.
func (d Display) Format(s fmt.State, verb rune) {
	formatState(s, verb, d.b, false, "hexcons.Display")
}

// formatState maps a fmt verb and its flags onto Options.
func formatState(s fmt.State, verb rune, b []byte, reverse bool, typeName string) {
	var o Options
	switch verb {
	case 'x', 's', 'v':
		o.Case = Lower
	case 'X':
		o.Case = Upper
	case 'q':
		o = DebugOptions()
	default:
		fmt.Fprintf(s, "%%!%c(%s=%s)", verb, typeName, Format(b, Options{Reverse: reverse}))
		return
	}
	if verb != 'q' {
		o.Prefix = s.Flag('#')
	}
	o.Width, _ = s.Width()
	o.Precision, o.HasPrecision = s.Precision()
	if s.Flag('0') && !s.Flag('-') {
		o.Fill, o.Align = '0', AlignRight
	}
	o.Reverse = reverse
	_, _ = WriteHex(s, b, o)
}
