package parser

// lookbehindSlack is how many bytes past the boundary itself the lookbehind
// must be able to hold: the CR or hyphen following the boundary plus some room.
const lookbehindSlack = 8

// boundary is the delimiter as it appears between parts, that is "\r\n--" followed
// by the token. The very first delimiter of a message lacks the leading CRLF.
type boundary struct {
	seq []byte
	// index is a membership set of every byte occurring in seq. It may only have
	// false positives, which is what allows skipping over data safely.
	index      [256]bool
	lookbehind []byte
}

func newBoundary(token string) boundary {
	b := boundary{
		seq: make([]byte, 0, len("\r\n--")+len(token)),
	}
	b.seq = append(b.seq, "\r\n--"...)
	b.seq = append(b.seq, token...)

	for _, c := range b.seq {
		b.index[c] = true
	}

	b.lookbehind = make([]byte, len(b.seq)+lookbehindSlack)

	return b
}

func (b *boundary) contains(c byte) bool {
	return b.index[c]
}

func (b *boundary) len() int {
	return len(b.seq)
}
