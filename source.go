package rlox

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeSource converts raw script bytes into source text. Input is UTF-8
// unless it begins with a byte order mark selecting UTF-8, UTF-16LE, or
// UTF-16BE; the mark itself is stripped.
func DecodeSource(b []byte) (string, error) {
	d := unicode.UTF8.NewDecoder()
	out, _, err := transform.Bytes(unicode.BOMOverride(d), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
