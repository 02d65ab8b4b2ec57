package hexcons

import (
	"fmt"
	"strings"
)

// Case selects the letters used for the digits a-f.
type Case uint8

const (
	// Lower renders digits as 0-9a-f. It is the zero value.
	Lower Case = iota
	// Upper renders digits as 0-9A-F.
	Upper
)

const (
	lowerTable = "0123456789abcdef"
	upperTable = "0123456789ABCDEF"
)

// String returns "lower" or "upper".
func (c Case) String() string {
	if c == Upper {
		return "upper"
	}
	return "lower"
}

// ParseCase parses the name of a case ("lower" or "upper"), ignoring ASCII case.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(s) {
	case "lower":
		return Lower, nil
	case "upper":
		return Upper, nil
	}
	return Lower, fmt.Errorf("unknown case %q, want lower or upper", s)
}

func (c Case) table() string {
	if c == Upper {
		return upperTable
	}
	return lowerTable
}

// digit maps a nibble (0-15) to its character.
func (c Case) digit(nibble byte) byte {
	return c.table()[nibble&0x0f]
}

// prefix returns the 0x marker matching the case.
func (c Case) prefix() string {
	if c == Upper {
		return "0X"
	}
	return "0x"
}

// putByte writes the two characters of b into dst[0:2].
func (c Case) putByte(dst []byte, b byte) {
	t := c.table()
	dst[0] = t[b>>4]
	dst[1] = t[b&0x0f]
}

// fromHexChar converts a hex character into its value and a success flag.
func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
