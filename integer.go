package hexcons

import "encoding/binary"

// ParseUint8 parses up to 2 hex digits. See ParseUint64.
func ParseUint8(s string) (uint8, error) {
	v, err := parseUint(s, 1)
	return uint8(v), err
}

// ParseUint16 parses up to 4 hex digits. See ParseUint64.
func ParseUint16(s string) (uint16, error) {
	v, err := parseUint(s, 2)
	return uint16(v), err
}

// ParseUint32 parses up to 8 hex digits. See ParseUint64.
func ParseUint32(s string) (uint32, error) {
	v, err := parseUint(s, 4)
	return uint32(v), err
}

// ParseUint64 parses a big-endian hex number of up to 16 digits. An optional 0x
// or 0X prefix is skipped and odd digit counts are allowed ("1" is 1). Too many
// digits, or none, fail with *InvalidLengthError whose Expected is the size of
// the integer in bytes. Error positions are relative to the text after the
// prefix.
func ParseUint64(s string) (uint64, error) {
	return parseUint(s, 8)
}

func parseUint(s string, size int) (uint64, error) {
	if hasPrefix(s) {
		s = s[2:]
	}
	if len(s) == 0 || len(s) > 2*size {
		return 0, &InvalidLengthError{expected: size, actual: (len(s) + 1) / 2}
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		n, ok := fromHexChar(s[i])
		if !ok {
			return 0, &InvalidCharError{char: s[i], pos: i}
		}
		v = v<<4 | uint64(n)
	}
	return v, nil
}

// FormatUint64 returns the 16-digit big-endian hex of v, leading zeros kept.
func FormatUint64(v uint64, c Case) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return EncodeToString(buf[:], c)
}

// FormatUint32 returns the 8-digit big-endian hex of v, leading zeros kept.
func FormatUint32(v uint32, c Case) string {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return EncodeToString(buf[:], c)
}
