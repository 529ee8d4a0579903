package parser

type state uint8

const (
	eError state = iota
	eStart
	eStartBoundary
	eHeaderFieldStart
	eHeaderField
	eHeaderValueStart
	eHeaderValue
	eHeaderValueAlmostDone
	eHeadersAlmostDone
	ePartDataStart
	ePartData
	eEnd
)

func (s state) String() string {
	switch s {
	case eError:
		return "Error"
	case eStart:
		return "Start"
	case eStartBoundary:
		return "StartBoundary"
	case eHeaderFieldStart:
		return "HeaderFieldStart"
	case eHeaderField:
		return "HeaderField"
	case eHeaderValueStart:
		return "HeaderValueStart"
	case eHeaderValue:
		return "HeaderValue"
	case eHeaderValueAlmostDone:
		return "HeaderValueAlmostDone"
	case eHeadersAlmostDone:
		return "HeadersAlmostDone"
	case ePartDataStart:
		return "PartDataStart"
	case ePartData:
		return "PartData"
	case eEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// flags are set on the byte right after a full boundary match and tell what kind
// of delimiter it may turn out to be.
type flags uint8

const (
	partBoundary flags = 1 << iota
	lastBoundary
)
