package hexcons

// DecodeFixed decodes s into dst, which must be exactly the decoded size, as is
// usual for hashes and keys.
//
// The checks run in scan order: parity (*OddLengthStringError), then every
// character (*InvalidCharError), and only then the length
// (*InvalidLengthError with Expected() == len(dst) and Actual() == len(s)/2).
// dst is left untouched when the length is wrong. After a character error its
// contents are unspecified. On success every byte of dst has been written once.
func DecodeFixed(dst []byte, s string) error {
	d := Decoder{src: s}
	if len(s)%2 != 0 || len(s)/2 != len(dst) {
		if err := d.validate(); err != nil {
			return err
		}
		return &InvalidLengthError{expected: len(dst), actual: len(s) / 2}
	}
	_, err := d.DrainTo(dst)
	return err
}
