package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"go.codycody31.dev/hexcons"
)

var (
	_ pflag.Value = (*caseValue)(nil)
	_ pflag.Value = (*alignValue)(nil)
)

type caseValue hexcons.Case

func (c *caseValue) String() string {
	return hexcons.Case(*c).String()
}

// Set implements pflag.Value.Set.
func (c *caseValue) Set(s string) error {
	v, err := hexcons.ParseCase(s)
	if err != nil {
		return err
	}
	*c = caseValue(v)
	return nil
}

// Type implements pflag.Value.Type.
func (*caseValue) Type() string {
	return "case"
}

type alignValue hexcons.Align

func (a *alignValue) String() string {
	return hexcons.Align(*a).String()
}

// Set implements pflag.Value.Set.
func (a *alignValue) Set(s string) error {
	v, err := hexcons.ParseAlign(s)
	if err != nil {
		return err
	}
	*a = alignValue(v)
	return nil
}

// Type implements pflag.Value.Type.
func (*alignValue) Type() string {
	return "align"
}

// parseFill accepts exactly one character, which may be multi-byte.
func parseFill(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("fill must be a single character, got %q", s)
	}
	return r, nil
}
