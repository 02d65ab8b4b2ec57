// Package hexcons converts between bytes and hex text without hidden
// allocation. Decoder and BufEncoder work on caller-owned memory, WriteHex renders
// with width, fill, alignment and prefix options, and Bytes and its fixed-size
// variants plug hex into fmt, text encoders and database/sql.
package hexcons

import (
	"fmt"
	"slices"
	"strings"
)

// EncodedLen returns the length of the hex encoding of n bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the number of bytes encoded by n hex characters.
func DecodedLen(n int) int { return n / 2 }

// Encode writes the hex of src into dst and returns the number of characters
// written. It fails with *OutOfSpaceError, writing nothing, when dst is shorter
// than EncodedLen(len(src)).
func Encode(dst, src []byte, c Case) (int, error) {
	enc := NewBufEncoderWith(dst, c)
	if err := enc.PutBytes(src); err != nil {
		return 0, err
	}
	return enc.Len(), nil
}

// AppendEncode appends the hex of src to dst and returns the extended slice.
func AppendEncode(dst, src []byte, c Case) []byte {
	n := len(dst)
	dst = slices.Grow(dst, EncodedLen(len(src)))[:n+EncodedLen(len(src))]
	enc := NewBufEncoderWith(dst[n:], c)
	enc.put(src)
	return dst
}

// EncodeToString returns the hex of src.
func EncodeToString(src []byte, c Case) string {
	var sb strings.Builder
	sb.Grow(EncodedLen(len(src)))
	var arr [2 * chunkBytes]byte
	enc := NewBufEncoderWith(arr[:], c)
	for len(src) > 0 {
		src = enc.PutBytesMin(src)
		sb.Write(enc.Bytes())
		enc.Reset()
	}
	return sb.String()
}

// DecodeString returns the bytes represented by the hex string s. A 0x prefix is
// rejected as an invalid character; see DecodeMaybePrefixed.
func DecodeString(s string) ([]byte, error) {
	return AppendDecode(nil, s)
}

// AppendDecode decodes s and appends the bytes to dst. On error dst is returned
// as it was and nothing is written to it, not even past its length.
func AppendDecode(dst []byte, s string) ([]byte, error) {
	d := Decoder{src: s}
	if err := d.validate(); err != nil {
		return dst, err
	}
	return d.AppendTo(dst)
}

// hasPrefix reports whether s starts with 0x or 0X.
func hasPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// DecodeMaybePrefixed decodes s, first dropping a 0x or 0X prefix if there is
// one. Error positions are relative to the text after the prefix.
func DecodeMaybePrefixed(s string) ([]byte, error) {
	if hasPrefix(s) {
		s = s[2:]
	}
	return DecodeString(s)
}

// DecodePrefixed decodes s, which must start with 0x or 0X. Otherwise it fails
// with *MissingPrefixError.
func DecodePrefixed(s string) ([]byte, error) {
	if !hasPrefix(s) {
		return nil, &MissingPrefixError{input: s}
	}
	return DecodeString(s[2:])
}

// DecodeNoPrefix decodes s and fails with *ContainsPrefixError when it starts
// with 0x or 0X, rather than reporting the x as an invalid character.
func DecodeNoPrefix(s string) ([]byte, error) {
	if hasPrefix(s) {
		return nil, &ContainsPrefixError{input: s}
	}
	return DecodeString(s)
}

// MustDecodeString is like DecodeString but panics on error. It is meant for
// constants in tests and package initialisation.
func MustDecodeString(s string) []byte {
	b, err := DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("hexcons: %v", err))
	}
	return b
}
