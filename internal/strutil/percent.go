package strutil

import "strings"

// IsUnsafeChar tells whether the decoded character must stay percent-encoded. Those
// are path separators and control characters.
func IsUnsafeChar(c byte) bool {
	return c == '/' || c == '\\' || c < 0x20 || c == 0x7f
}

// PercentDecode decodes a percent-encoded string and tells whether the string was
// properly formed. Unsafe characters are left encoded in the lower case.
func PercentDecode(str string) (string, bool) {
	percent := strings.IndexByte(str, '%')
	if percent == -1 {
		return str, true
	}

	var b strings.Builder
	b.Grow(len(str))
	s := str

	for ; percent != -1; percent = strings.IndexByte(s, '%') {
		b.WriteString(s[:percent])
		s = s[percent+1:]
		if len(s) < 2 {
			return "", false
		}

		c1, c2 := s[0], s[1]
		s = s[2:]
		x, y := halfbyte[c1], halfbyte[c2]
		if x|y == 0xFF {
			return "", false
		}

		char := (x << 4) | y
		if IsUnsafeChar(char) {
			b.Write([]byte{'%', c1 | 0x20, c2 | 0x20})
			continue
		}

		b.WriteByte(char)
	}

	b.WriteString(s)

	return b.String(), true
}

var halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xFF
	}

	for c := '0'; c <= '9'; c++ {
		table[c] = byte(c - '0')
	}

	for c := 'a'; c <= 'f'; c++ {
		table[c] = byte(c-'a') + 10
		table[c-'a'+'A'] = byte(c-'a') + 10
	}

	return table
}()
