package hexcons

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of these
// with errors.Is, so the kind survives wrapping with fmt.Errorf("...: %w", err).
// Use errors.As with the concrete types to read the details.
var (
	ErrInvalidChar    = errors.New("invalid hex character")
	ErrOddLength      = errors.New("odd length hex string")
	ErrInvalidLength  = errors.New("invalid hex length")
	ErrOutOfSpace     = errors.New("hex buffer out of space")
	ErrMissingPrefix  = errors.New("hex string without 0x prefix")
	ErrContainsPrefix = errors.New("hex string with 0x prefix")
)

// InvalidCharError reports a byte outside 0-9a-fA-F.
type InvalidCharError struct {
	char byte
	pos  int
}

// Char returns the offending byte. For non-ASCII input this is the first byte of
// its UTF-8 encoding.
func (e *InvalidCharError) Char() byte { return e.char }

// Pos returns the zero-based index of the offending byte in the decoded text.
// For "00fg10" that is 3, the index of the 'g'.
func (e *InvalidCharError) Pos() int { return e.pos }

func (e *InvalidCharError) Error() string {
	if e.char < 0x80 {
		return fmt.Sprintf("invalid hex character %q at position %d", rune(e.char), e.pos)
	}
	return fmt.Sprintf("invalid hex character 0x%02x at position %d", e.char, e.pos)
}

func (e *InvalidCharError) Is(target error) bool { return target == ErrInvalidChar }

// OddLengthStringError reports input that cannot be split into character pairs.
type OddLengthStringError struct {
	length int
}

// Len returns the length of the rejected text.
func (e *OddLengthStringError) Len() int { return e.length }

// Pos returns the index of the unpaired trailing character.
func (e *OddLengthStringError) Pos() int { return e.length - 1 }

func (e *OddLengthStringError) Error() string {
	return fmt.Sprintf("hex length must be even, got %d", e.length)
}

func (e *OddLengthStringError) Is(target error) bool { return target == ErrOddLength }

// InvalidLengthError reports a decoded byte count that differs from the target.
type InvalidLengthError struct {
	expected int
	actual   int
}

// Expected returns the required number of bytes.
func (e *InvalidLengthError) Expected() int { return e.expected }

// Actual returns the number of bytes the input decodes to.
func (e *InvalidLengthError) Actual() int { return e.actual }

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("hex must decode to %d bytes, got %d", e.expected, e.actual)
}

func (e *InvalidLengthError) Is(target error) bool { return target == ErrInvalidLength }

// OutOfSpaceError reports an encode that would not fit the destination.
// Both counts are in hex characters.
type OutOfSpaceError struct {
	required  int
	available int
}

// Required returns the number of characters the rejected write needed.
func (e *OutOfSpaceError) Required() int { return e.required }

// Available returns the number of characters that were free.
func (e *OutOfSpaceError) Available() int { return e.available }

func (e *OutOfSpaceError) Error() string {
	return fmt.Sprintf("hex output needs %d characters, only %d available", e.required, e.available)
}

func (e *OutOfSpaceError) Is(target error) bool { return target == ErrOutOfSpace }

// MissingPrefixError is returned by DecodePrefixed for input without 0x or 0X.
type MissingPrefixError struct {
	input string
}

// Input returns the rejected text.
func (e *MissingPrefixError) Input() string { return e.input }

func (e *MissingPrefixError) Error() string {
	return fmt.Sprintf("hex string %q has no 0x prefix", truncate(e.input))
}

func (e *MissingPrefixError) Is(target error) bool { return target == ErrMissingPrefix }

// ContainsPrefixError is returned by DecodeNoPrefix for input starting with 0x or 0X.
type ContainsPrefixError struct {
	input string
}

// Input returns the rejected text.
func (e *ContainsPrefixError) Input() string { return e.input }

func (e *ContainsPrefixError) Error() string {
	return fmt.Sprintf("hex string %q must not have a 0x prefix", truncate(e.input))
}

func (e *ContainsPrefixError) Is(target error) bool { return target == ErrContainsPrefix }

// truncate keeps error messages short for very long inputs.
func truncate(s string) string {
	const limit = 64
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
