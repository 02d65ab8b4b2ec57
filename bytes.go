package hexcons

import (
	"database/sql/driver"
	"fmt"
)

// Bytes is a byte slice whose text form is lower case hex. It marshals as a hex
// string in JSON, YAML and other encoders that honour encoding.TextMarshaler, and
// is stored as a hex string in SQL databases.
type Bytes []byte

// String returns the lower case hex of b.
func (b Bytes) String() string {
	return EncodeToString(b, Lower)
}

// Format implements fmt.Formatter; see Display for the verbs.
func (b Bytes) Format(s fmt.State, verb rune) {
	formatState(s, verb, b, false, "hexcons.Bytes")
}

// MarshalText implements encoding.TextMarshaler.
func (b Bytes) MarshalText() ([]byte, error) {
	return AppendEncode(nil, b, Lower), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any case is accepted; a 0x
// prefix is not. Empty text gives an empty, non-nil Bytes. On error b is left
// as it was.
func (b *Bytes) UnmarshalText(text []byte) error {
	out, err := AppendDecode((*b)[:0], string(text))
	if err != nil {
		return fmt.Errorf("failed to parse hex string: %w", err)
	}
	if out == nil {
		out = Bytes{}
	}
	*b = out
	return nil
}

// Value implements the driver.Valuer interface for SQL database support.
// Returns the hex string, so the column is readable text, or NULL for nil.
func (b Bytes) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return b.String(), nil
}

// Scan implements the sql.Scanner interface for SQL database support.
// Accepts a hex string as string or []byte, or NULL.
func (b *Bytes) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*b = nil
		return nil
	case string:
		return b.UnmarshalText([]byte(v))
	case []byte:
		return b.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan type %T into Bytes", value)
	}
}

// BytesUpper is Bytes with upper case output. Decoding accepts either case.
type BytesUpper []byte

// String returns the upper case hex of b.
func (b BytesUpper) String() string {
	return EncodeToString(b, Upper)
}

// Format implements fmt.Formatter; see Display for the verbs. %s and %v
// print upper case like %X.
func (b BytesUpper) Format(s fmt.State, verb rune) {
	if verb == 's' || verb == 'v' {
		verb = 'X'
	}
	formatState(s, verb, b, false, "hexcons.BytesUpper")
}

// MarshalText implements encoding.TextMarshaler.
func (b BytesUpper) MarshalText() ([]byte, error) {
	return AppendEncode(nil, b, Upper), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BytesUpper) UnmarshalText(text []byte) error {
	return (*Bytes)(b).UnmarshalText(text)
}

// Value implements driver.Valuer. NULL for nil.
func (b BytesUpper) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return b.String(), nil
}

// Scan implements sql.Scanner.
func (b *BytesUpper) Scan(value interface{}) error {
	switch value.(type) {
	case nil, string, []byte:
		return (*Bytes)(b).Scan(value)
	default:
		return fmt.Errorf("cannot scan type %T into BytesUpper", value)
	}
}

// decodeFixedAtomic decodes s into dst, leaving dst unchanged on any error.
func decodeFixedAtomic(name string, dst []byte, s string) error {
	var tmp [64]byte
	if err := DecodeFixed(tmp[:len(dst)], s); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	copy(dst, tmp[:len(dst)])
	return nil
}

func scanFixed(name string, dst []byte, value interface{}) error {
	switch v := value.(type) {
	case nil:
		clear(dst)
		return nil
	case string:
		return decodeFixedAtomic(name, dst, v)
	case []byte:
		return decodeFixedAtomic(name, dst, string(v))
	default:
		return fmt.Errorf("cannot scan type %T into %s", value, name)
	}
}

// Bytes16 holds 16 bytes, such as an MD5 digest or a UUID.
type Bytes16 [16]byte

// FromHex16 decodes exactly 32 hex characters.
func FromHex16(s string) (Bytes16, error) {
	var b Bytes16
	if err := decodeFixedAtomic("Bytes16", b[:], s); err != nil {
		return Bytes16{}, err
	}
	return b, nil
}

// Bytes returns a copy of b as a slice.
func (b Bytes16) Bytes() []byte { return b[:] }

// String returns the lower case hex of b.
func (b Bytes16) String() string { return EncodeToString(b[:], Lower) }

// Format implements fmt.Formatter; see Display for the verbs.
func (b Bytes16) Format(s fmt.State, verb rune) { formatState(s, verb, b[:], false, "hexcons.Bytes16") }

// MarshalText implements encoding.TextMarshaler.
func (b Bytes16) MarshalText() ([]byte, error) { return AppendEncode(nil, b[:], Lower), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes16) UnmarshalText(text []byte) error {
	return decodeFixedAtomic("Bytes16", b[:], string(text))
}

// Value implements driver.Valuer.
func (b Bytes16) Value() (driver.Value, error) { return b.String(), nil }

// Scan implements sql.Scanner.
func (b *Bytes16) Scan(value interface{}) error { return scanFixed("Bytes16", b[:], value) }

// Bytes20 holds 20 bytes, such as a RIPEMD-160 or SHA-1 digest.
type Bytes20 [20]byte

// FromHex20 decodes exactly 40 hex characters.
func FromHex20(s string) (Bytes20, error) {
	var b Bytes20
	if err := decodeFixedAtomic("Bytes20", b[:], s); err != nil {
		return Bytes20{}, err
	}
	return b, nil
}

// Bytes returns a copy of b as a slice.
func (b Bytes20) Bytes() []byte { return b[:] }

// String returns the lower case hex of b.
func (b Bytes20) String() string { return EncodeToString(b[:], Lower) }

// Format implements fmt.Formatter; see Display for the verbs.
func (b Bytes20) Format(s fmt.State, verb rune) { formatState(s, verb, b[:], false, "hexcons.Bytes20") }

// MarshalText implements encoding.TextMarshaler.
func (b Bytes20) MarshalText() ([]byte, error) { return AppendEncode(nil, b[:], Lower), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes20) UnmarshalText(text []byte) error {
	return decodeFixedAtomic("Bytes20", b[:], string(text))
}

// Value implements driver.Valuer.
func (b Bytes20) Value() (driver.Value, error) { return b.String(), nil }

// Scan implements sql.Scanner.
func (b *Bytes20) Scan(value interface{}) error { return scanFixed("Bytes20", b[:], value) }

// Bytes32 holds 32 bytes, such as a SHA-256 digest or an ed25519 public key.
type Bytes32 [32]byte

// FromHex32 decodes exactly 64 hex characters.
func FromHex32(s string) (Bytes32, error) {
	var b Bytes32
	if err := decodeFixedAtomic("Bytes32", b[:], s); err != nil {
		return Bytes32{}, err
	}
	return b, nil
}

// Bytes returns a copy of b as a slice.
func (b Bytes32) Bytes() []byte { return b[:] }

// String returns the lower case hex of b.
func (b Bytes32) String() string { return EncodeToString(b[:], Lower) }

// Format implements fmt.Formatter; see Display for the verbs.
func (b Bytes32) Format(s fmt.State, verb rune) { formatState(s, verb, b[:], false, "hexcons.Bytes32") }

// MarshalText implements encoding.TextMarshaler.
func (b Bytes32) MarshalText() ([]byte, error) { return AppendEncode(nil, b[:], Lower), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes32) UnmarshalText(text []byte) error {
	return decodeFixedAtomic("Bytes32", b[:], string(text))
}

// Value implements driver.Valuer.
func (b Bytes32) Value() (driver.Value, error) { return b.String(), nil }

// Scan implements sql.Scanner.
func (b *Bytes32) Scan(value interface{}) error { return scanFixed("Bytes32", b[:], value) }

// Bytes64 holds 64 bytes, such as a SHA-512 digest or an ed25519 signature.
type Bytes64 [64]byte

// FromHex64 decodes exactly 128 hex characters.
func FromHex64(s string) (Bytes64, error) {
	var b Bytes64
	if err := decodeFixedAtomic("Bytes64", b[:], s); err != nil {
		return Bytes64{}, err
	}
	return b, nil
}

// Bytes returns a copy of b as a slice.
func (b Bytes64) Bytes() []byte { return b[:] }

// String returns the lower case hex of b.
func (b Bytes64) String() string { return EncodeToString(b[:], Lower) }

// Format implements fmt.Formatter; see Display for the verbs.
func (b Bytes64) Format(s fmt.State, verb rune) { formatState(s, verb, b[:], false, "hexcons.Bytes64") }

// MarshalText implements encoding.TextMarshaler.
func (b Bytes64) MarshalText() ([]byte, error) { return AppendEncode(nil, b[:], Lower), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes64) UnmarshalText(text []byte) error {
	return decodeFixedAtomic("Bytes64", b[:], string(text))
}

// Value implements driver.Valuer.
func (b Bytes64) Value() (driver.Value, error) { return b.String(), nil }

// Scan implements sql.Scanner.
func (b *Bytes64) Scan(value interface{}) error { return scanFixed("Bytes64", b[:], value) }
