package text

// Range is a half-open span [Start, End). Depending on the method it holds
// character indices or byte offsets; byte ranges are named as such.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) IsEmpty() bool { return r.Start == r.End }

// Affinity picks the run a query binds to when a position sits exactly on a
// run boundary.
type Affinity uint8

const (
	// AffinityUpstream binds to the run before the boundary.
	AffinityUpstream Affinity = iota
	// AffinityDownstream binds to the run after the boundary.
	AffinityDownstream
)

func (a Affinity) String() string {
	switch a {
	case AffinityUpstream:
		return "upstream"
	case AffinityDownstream:
		return "downstream"
	default:
		return "affinity(?)"
	}
}

// Run is a span of ByteLen bytes sharing one attribute set.
type Run struct {
	ByteLen int
	Attrs   Attributes
}

// RunRange describes one run together with the ranges it covers, in bytes,
// UTF-16 code units and characters.
type RunRange struct {
	Run   Run
	Bytes Range
	UTF16 Range
	Chars Range
}

// RunSubstring pairs a run with the text it covers.
type RunSubstring struct {
	Run  Run
	Text string
}
