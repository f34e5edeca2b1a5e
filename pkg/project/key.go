// pkg/project/key.go
package project

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// EncodeKey maps a package name to a storage key. Bytes outside
// [A-Za-z0-9._-] become %XX, so every name has exactly one key and
// names such as "gtk+-2.0" remain storable.
func EncodeKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if keySafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
	return b.String()
}

// DecodeKey reverses EncodeKey
func DecodeKey(key string) (string, error) {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c == '%':
			if i+2 >= len(key) {
				return "", fmt.Errorf("decoding key %q: truncated escape", key)
			}
			hi, ok1 := unhex(key[i+1])
			lo, ok2 := unhex(key[i+2])
			if !ok1 || !ok2 {
				return "", fmt.Errorf("decoding key %q: invalid escape %q", key, key[i:i+3])
			}
			b.WriteByte(hi<<4 | lo)
			i += 2
		case keySafe(c):
			b.WriteByte(c)
		default:
			return "", fmt.Errorf("decoding key %q: unexpected byte %q", key, c)
		}
	}
	return b.String(), nil
}

func keySafe(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '.' || c == '_' || c == '-'
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
