package listedit

import (
	"strconv"

	"github.com/alexisbeaulieu97/propdeck/internal/codec"
)

// Field names accepted by Shape.Set.
const (
	FieldValue  = "value"
	FieldLabel  = "label"
	FieldBadge  = "badge"
	FieldParent = "parent"
	FieldLeft   = "left"
	FieldRight  = "right"
	FieldTitle  = "title"
	FieldStatus = "status"
	FieldColor  = "color"
	FieldTime   = "time"
	FieldTemp   = "temp"
)

// Shape describes one record type a Controller can edit.
type Shape[T any] interface {
	codec.Codec[T]
	// Empty returns a blank record for the trailing input slot.
	Empty() T
	// Primary returns the field whose emptiness decides whether a record exists.
	Primary(record T) string
	// Set returns record with field replaced by value. Unknown fields are ignored.
	Set(record T, field, value string) T
	// Fields lists the editable fields in display order, primary first.
	Fields() []string
	// Get returns the display value of field.
	Get(record T, field string) string
}

// ListShape edits a flat newline list.
type ListShape struct{}

func (ListShape) Decode(s string) []string { return codec.DecodeList(s) }
func (ListShape) Encode(items []string) string { return codec.EncodeList(items) }
func (ListShape) Empty() string { return "" }
func (ListShape) Primary(item string) string { return item }
func (ListShape) Set(_ string, _, v string) string { return v }
func (ListShape) Fields() []string { return []string{FieldValue} }
func (ListShape) Get(item string, _ string) string { return item }

// LabelBadgeShape edits label:badge pairs.
type LabelBadgeShape struct{}

func (LabelBadgeShape) Decode(s string) []codec.LabelBadge { return codec.DecodeLabelBadges(s) }
func (LabelBadgeShape) Encode(r []codec.LabelBadge) string { return codec.EncodeLabelBadges(r) }
func (LabelBadgeShape) Empty() codec.LabelBadge { return codec.LabelBadge{} }
func (LabelBadgeShape) Primary(r codec.LabelBadge) string { return r.Label }
func (LabelBadgeShape) Fields() []string { return []string{FieldLabel, FieldBadge} }

func (LabelBadgeShape) Set(r codec.LabelBadge, field, value string) codec.LabelBadge {
	switch field {
	case FieldLabel:
		r.Label = value
	case FieldBadge:
		r.Badge = value
	}
	return r
}

func (LabelBadgeShape) Get(r codec.LabelBadge, field string) string {
	if field == FieldBadge {
		return r.Badge
	}
	return r.Label
}

// TreeShape edits parent:children nodes. Only the parent is a settable field;
// children are managed through TreeController.
type TreeShape struct{}

func (TreeShape) Decode(s string) []codec.TreeNode { return codec.DecodeTree(s) }
func (TreeShape) Encode(n []codec.TreeNode) string { return codec.EncodeTree(n) }
func (TreeShape) Empty() codec.TreeNode { return codec.TreeNode{Children: []string{}} }
func (TreeShape) Primary(n codec.TreeNode) string { return n.Parent }
func (TreeShape) Fields() []string { return []string{FieldParent} }
func (TreeShape) Get(n codec.TreeNode, _ string) string { return n.Parent }

func (TreeShape) Set(n codec.TreeNode, field, value string) codec.TreeNode {
	if field == FieldParent {
		n.Parent = value
	}
	return n
}

// ComparisonRowShape edits label:left:right rows.
type ComparisonRowShape struct{}

func (ComparisonRowShape) Decode(s string) []codec.ComparisonRow { return codec.DecodeComparisonRows(s) }
func (ComparisonRowShape) Encode(r []codec.ComparisonRow) string { return codec.EncodeComparisonRows(r) }
func (ComparisonRowShape) Empty() codec.ComparisonRow { return codec.ComparisonRow{} }
func (ComparisonRowShape) Primary(r codec.ComparisonRow) string { return r.Label }
func (ComparisonRowShape) Fields() []string {
	return []string{FieldLabel, FieldLeft, FieldRight}
}

func (ComparisonRowShape) Set(r codec.ComparisonRow, field, value string) codec.ComparisonRow {
	switch field {
	case FieldLabel:
		r.Label = value
	case FieldLeft:
		r.Left = value
	case FieldRight:
		r.Right = value
	}
	return r
}

func (ComparisonRowShape) Get(r codec.ComparisonRow, field string) string {
	switch field {
	case FieldLeft:
		return r.Left
	case FieldRight:
		return r.Right
	default:
		return r.Label
	}
}

// RoadmapShape edits title:status:color milestones.
type RoadmapShape struct{}

func (RoadmapShape) Decode(s string) []codec.RoadmapItem { return codec.DecodeRoadmap(s) }
func (RoadmapShape) Encode(r []codec.RoadmapItem) string { return codec.EncodeRoadmap(r) }
func (RoadmapShape) Primary(r codec.RoadmapItem) string { return r.Title }
func (RoadmapShape) Fields() []string {
	return []string{FieldTitle, FieldStatus, FieldColor}
}

func (RoadmapShape) Empty() codec.RoadmapItem {
	return codec.RoadmapItem{Color: codec.DefaultRoadmapColor}
}

func (RoadmapShape) Set(r codec.RoadmapItem, field, value string) codec.RoadmapItem {
	switch field {
	case FieldTitle:
		r.Title = value
	case FieldStatus:
		r.Status = value
	case FieldColor:
		r.Color = value
	}
	return r
}

func (RoadmapShape) Get(r codec.RoadmapItem, field string) string {
	switch field {
	case FieldStatus:
		return r.Status
	case FieldColor:
		return r.Color
	default:
		return r.Title
	}
}

// ForecastRow is the display form of a forecast reading. The temperature is
// kept as typed so partial input such as "-" or "" stays editable; it is
// parsed only when the list is encoded.
type ForecastRow struct {
	Time     string
	TempText string
}

// ForecastShape edits time:temp readings. The temp field is numeric.
type ForecastShape struct{}

func (ForecastShape) Decode(s string) []ForecastRow {
	entries := codec.DecodeForecast(s)
	rows := make([]ForecastRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, ForecastRow{Time: e.Time, TempText: strconv.Itoa(e.Temp)})
	}
	return rows
}

func (ForecastShape) Encode(rows []ForecastRow) string {
	entries := make([]codec.ForecastEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, codec.ForecastEntry{Time: r.Time, Temp: codec.ParseTemp(r.TempText)})
	}
	return codec.EncodeForecast(entries)
}

func (ForecastShape) Empty() ForecastRow { return ForecastRow{} }
func (ForecastShape) Primary(r ForecastRow) string { return r.Time }
func (ForecastShape) Fields() []string { return []string{FieldTime, FieldTemp} }

func (ForecastShape) Set(r ForecastRow, field, value string) ForecastRow {
	switch field {
	case FieldTime:
		r.Time = value
	case FieldTemp:
		r.TempText = value
	}
	return r
}

func (ForecastShape) Get(r ForecastRow, field string) string {
	if field == FieldTemp {
		return r.TempText
	}
	return r.Time
}
