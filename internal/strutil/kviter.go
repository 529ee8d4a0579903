package strutil

import (
	"iter"
	"strings"
)

// WalkKV iterates over semicolon-separated key=value pairs, as met in header parameters.
// Values may be double-quoted, in which case they may contain semicolons and spaces.
// A key without a value is yielded with an empty value. On malformed input an empty
// pair is yielded and the iteration stops.
func WalkKV(data string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for data = LStripWS(data); len(data) > 0; data = LStripWS(data) {
			var key, value string

			eq := strings.IndexAny(data, "=;")
			if eq == -1 || data[eq] == ';' {
				end := eq
				if end == -1 {
					end = len(data)
				}

				key, data = RStripWS(data[:end]), data[end:]
				if !isToken(key) {
					yield("", "")
					return
				}
			} else {
				key = RStripWS(data[:eq])
				if !isToken(key) {
					yield("", "")
					return
				}

				var ok bool
				value, data, ok = cutValue(LStripWS(data[eq+1:]))
				if !ok {
					yield("", "")
					return
				}
			}

			if !yield(key, value) {
				return
			}

			data = LStripWS(data)
			switch {
			case len(data) == 0:
				return
			case data[0] != ';':
				yield("", "")
				return
			}

			data = data[1:]
		}
	}
}

func cutValue(data string) (value, rest string, ok bool) {
	if len(data) > 0 && data[0] == '"' {
		closing := strings.IndexByte(data[1:], '"')
		if closing == -1 {
			return "", "", false
		}

		return data[1 : closing+1], data[closing+2:], true
	}

	end := strings.IndexByte(data, ';')
	if end == -1 {
		end = len(data)
	}

	return RStripWS(data[:end]), data[end:], true
}

func isToken(str string) bool {
	if len(str) == 0 {
		return false
	}

	for i := 0; i < len(str); i++ {
		if !tokenChars[str[i]] {
			return false
		}
	}

	return true
}

// a-z A-Z 0-9 !#$%&'*+-.^_`|~
var tokenChars = [256]bool{
	'!': true, '#': true, '$': true, '%': true, '&': true, '\'': true, '*': true,
	'+': true, '-': true, '.': true, '^': true, '_': true, '`': true, '|': true, '~': true,
	'0': true, '1': true, '2': true, '3': true, '4': true, '5': true, '6': true, '7': true,
	'8': true, '9': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true, 'h': true,
	'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true, 'o': true, 'p': true,
	'q': true, 'r': true, 's': true, 't': true, 'u': true, 'v': true, 'w': true, 'x': true,
	'y': true, 'z': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true, 'H': true,
	'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true, 'O': true, 'P': true,
	'Q': true, 'R': true, 'S': true, 'T': true, 'U': true, 'V': true, 'W': true, 'X': true,
	'Y': true, 'Z': true,
}
