package nbt

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

// Strings are stored in Java's modified UTF-8: NUL is written as C0 80
// and runes above U+FFFF as two encoded UTF-16 surrogates.

var errMUTF8 = errors.New("invalid modified UTF-8")

func decodeMUTF8(b []byte) (string, error) {
	plain := true
	for _, c := range b {
		if c == 0xC0 || c == 0xED || c >= 0xF0 {
			plain = false
			break
		}
	}
	if plain && utf8.Valid(b) {
		return string(b), nil
	}

	runes := make([]rune, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			runes = append(runes, rune(c))
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", errMUTF8
			}
			runes = append(runes, rune(c&0x1F)<<6|rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0:
			if i+2 >= len(b) || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", errMUTF8
			}
			runes = append(runes, rune(c&0x0F)<<12|rune(b[i+1]&0x3F)<<6|rune(b[i+2]&0x3F))
			i += 3
		case c&0xF8 == 0xF0:
			// plain UTF-8 from non-Java writers
			r, n := utf8.DecodeRune(b[i:])
			if r == utf8.RuneError {
				return "", errMUTF8
			}
			runes = append(runes, r)
			i += n
		default:
			return "", errMUTF8
		}
	}

	// pair up surrogates; a lone surrogate becomes U+FFFD
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if utf16.IsSurrogate(r) && i+1 < len(runes) {
			if p := utf16.DecodeRune(r, runes[i+1]); p != utf8.RuneError {
				out = append(out, p)
				i++
				continue
			}
		}
		if utf16.IsSurrogate(r) {
			r = utf8.RuneError
		}
		out = append(out, r)
	}
	return string(out), nil
}

func appendMUTF8(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r == 0:
			dst = append(dst, 0xC0, 0x80)
		case r < 0x80:
			dst = append(dst, byte(r))
		case r < 0x800:
			dst = append(dst, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			dst = append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
		default:
			r1, r2 := utf16.EncodeRune(r)
			dst = appendMUTF8Unit(dst, r1)
			dst = appendMUTF8Unit(dst, r2)
		}
	}
	return dst
}

func appendMUTF8Unit(dst []byte, r rune) []byte {
	return append(dst, 0xE0|byte(r>>12), 0x80|byte(r>>6&0x3F), 0x80|byte(r&0x3F))
}
