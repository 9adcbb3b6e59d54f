package rlox

import "testing"

func utf16le(s string) []byte {
	b := []byte{0xff, 0xfe}
	for _, r := range s {
		b = append(b, byte(r), byte(r>>8))
	}
	return b
}

func utf16be(s string) []byte {
	b := []byte{0xfe, 0xff}
	for _, r := range s {
		b = append(b, byte(r>>8), byte(r))
	}
	return b
}

// TestDecodeSource tests that script bytes decode as UTF-8 by default and
// that a leading byte order mark selects the encoding and is stripped.
func TestDecodeSource(t *testing.T) {
	cases := map[string]struct {
		b    []byte
		want string
	}{
		"Plain":    {[]byte("print 1;"), "print 1;"},
		"NonASCII": {[]byte(`print "héllo";`), `print "héllo";`},
		"UTF8BOM":  {[]byte("\xef\xbb\xbfprint 1;"), "print 1;"},
		"UTF16LE":  {utf16le("print 1;"), "print 1;"},
		"UTF16BE":  {utf16be("print 1;"), "print 1;"},
		"Empty":    {nil, ""},
		"BOMOnly":  {[]byte("\xef\xbb\xbf"), ""},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			have, err := DecodeSource(c.b)
			if err != nil {
				t.Fatalf("failed to decode %q: %v", c.b, err)
			}
			if have != c.want {
				t.Errorf("%q decoded wrong: want %q, have %q", c.b, c.want, have)
			}
		})
	}
}
