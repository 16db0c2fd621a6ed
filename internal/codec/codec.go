// Package codec converts structured prop values to and from the single
// delimited string they are stored as.
//
// Props must stay plain strings so a customized component can be pasted as
// literal source code. Each shape therefore has a line-oriented encoding:
// records are separated by newlines and fields by ':' (and ',' for tree
// children). Delimiters inside field values are not escaped, so a value
// containing one will not survive a round trip.
//
// Decoding never fails. Malformed lines degrade to partial records or are
// dropped; a user can always keep typing.
package codec

import "strings"

// Codec decodes and encodes one record shape.
type Codec[T any] interface {
	Decode(encoded string) []T
	Encode(records []T) string
}

// Func adapts a pair of functions to the Codec interface.
type Func[T any] struct {
	DecodeFunc func(string) []T
	EncodeFunc func([]T) string
}

// Decode calls DecodeFunc.
func (f Func[T]) Decode(encoded string) []T { return f.DecodeFunc(encoded) }

// Encode calls EncodeFunc.
func (f Func[T]) Encode(records []T) string { return f.EncodeFunc(records) }

var (
	// List is the flat newline list codec.
	List Codec[string] = Func[string]{DecodeList, EncodeList}
	// LabelBadges is the label:badge codec.
	LabelBadges Codec[LabelBadge] = Func[LabelBadge]{DecodeLabelBadges, EncodeLabelBadges}
	// Tree is the parent:child,child codec.
	Tree Codec[TreeNode] = Func[TreeNode]{DecodeTree, EncodeTree}
	// ComparisonRows is the label:left:right codec.
	ComparisonRows Codec[ComparisonRow] = Func[ComparisonRow]{DecodeComparisonRows, EncodeComparisonRows}
	// Roadmap is the title:status:color codec.
	Roadmap Codec[RoadmapItem] = Func[RoadmapItem]{DecodeRoadmap, EncodeRoadmap}
	// Forecast is the time:temp codec.
	Forecast Codec[ForecastEntry] = Func[ForecastEntry]{DecodeForecast, EncodeForecast}
)

// lines splits encoded text into trimmed, non-blank lines. CRLF input is accepted.
func lines(encoded string) []string {
	if strings.TrimSpace(encoded) == "" {
		return nil
	}
	raw := strings.Split(strings.ReplaceAll(encoded, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// fields splits a line on ':' into exactly n trimmed fields. Missing trailing
// fields are empty; surplus fields are folded into the last one.
func fields(line string, n int) []string {
	parts := strings.SplitN(line, ":", n)
	out := make([]string, n)
	for i := range out {
		if i < len(parts) {
			out[i] = strings.TrimSpace(parts[i])
		}
	}
	return out
}

func joinLines(records []string) string {
	return strings.Join(records, "\n")
}
