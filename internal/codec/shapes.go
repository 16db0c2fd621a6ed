package codec

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// DecodeList splits on newlines and drops blank lines.
func DecodeList(encoded string) []string {
	return lines(encoded)
}

// EncodeList joins non-blank items with newlines.
func EncodeList(items []string) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return joinLines(out)
}

// LabelBadge is a list entry with an optional badge, e.g. "Messages:3".
type LabelBadge struct {
	Label string `json:"label"`
	Badge string `json:"badge,omitempty"`
}

// DecodeLabelBadges parses "label:badge" lines. A JSON array of strings or
// {label|title, badge} objects is accepted as an older storage format.
func DecodeLabelBadges(encoded string) []LabelBadge {
	if records, ok := decodeLabelBadgeJSON(encoded); ok {
		return records
	}

	var out []LabelBadge
	for _, line := range lines(encoded) {
		if rec, ok := parseLabelBadge(line); ok {
			out = append(out, rec)
		}
	}
	return out
}

// EncodeLabelBadges writes one "label[:badge]" line per record with a label.
func EncodeLabelBadges(records []LabelBadge) string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		label := strings.TrimSpace(rec.Label)
		if label == "" {
			continue
		}
		if badge := strings.TrimSpace(rec.Badge); badge != "" {
			label += ":" + badge
		}
		out = append(out, label)
	}
	return joinLines(out)
}

// ItemLabels returns the display label of each entry in an items value. With
// badges set, entries are read as label:badge records; otherwise each line is
// a label.
func ItemLabels(encoded string, badges bool) []string {
	if !badges {
		return DecodeList(encoded)
	}
	records := DecodeLabelBadges(encoded)
	labels := make([]string, 0, len(records))
	for _, r := range records {
		labels = append(labels, r.Label)
	}
	return labels
}

func parseLabelBadge(line string) (LabelBadge, bool) {
	label, badge, _ := strings.Cut(line, ":")
	rec := LabelBadge{Label: strings.TrimSpace(label), Badge: strings.TrimSpace(badge)}
	return rec, rec.Label != ""
}

func decodeLabelBadgeJSON(encoded string) ([]LabelBadge, bool) {
	trimmed := strings.TrimSpace(encoded)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, false
	}

	var raw []any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, false
	}

	var out []LabelBadge
	for _, element := range raw {
		switch v := element.(type) {
		case string:
			if rec, ok := parseLabelBadge(v); ok {
				out = append(out, rec)
			}
		case map[string]any:
			label := jsonString(v["label"])
			if label == "" {
				label = jsonString(v["title"])
			}
			if label == "" {
				continue
			}
			out = append(out, LabelBadge{Label: label, Badge: jsonString(v["badge"])})
		}
	}
	return out, true
}

func jsonString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// TreeNode is a parent entry with its children, e.g. "Favorites:Airdrop,Recents".
type TreeNode struct {
	Parent   string
	Children []string
}

// DecodeTree parses "parent:child,child" lines. Children are trimmed and
// empty children are dropped.
func DecodeTree(encoded string) []TreeNode {
	var out []TreeNode
	for _, line := range lines(encoded) {
		parent, rest, _ := strings.Cut(line, ":")
		parent = strings.TrimSpace(parent)
		if parent == "" {
			continue
		}
		node := TreeNode{Parent: parent, Children: []string{}}
		for _, child := range strings.Split(rest, ",") {
			if child = strings.TrimSpace(child); child != "" {
				node.Children = append(node.Children, child)
			}
		}
		out = append(out, node)
	}
	return out
}

// EncodeTree writes "parent[:child,child]" per node with a parent.
func EncodeTree(nodes []TreeNode) string {
	out := make([]string, 0, len(nodes))
	for _, node := range nodes {
		parent := strings.TrimSpace(node.Parent)
		if parent == "" {
			continue
		}
		children := make([]string, 0, len(node.Children))
		for _, child := range node.Children {
			if child = strings.TrimSpace(child); child != "" {
				children = append(children, child)
			}
		}
		if len(children) > 0 {
			parent += ":" + strings.Join(children, ",")
		}
		out = append(out, parent)
	}
	return joinLines(out)
}

// ComparisonRow is a "label:left:right" row of a comparison table.
type ComparisonRow struct {
	Label string
	Left  string
	Right string
}

// DecodeComparisonRows parses "label:left:right" lines; missing cells are empty.
func DecodeComparisonRows(encoded string) []ComparisonRow {
	var out []ComparisonRow
	for _, line := range lines(encoded) {
		f := fields(line, 3)
		if f[0] == "" {
			continue
		}
		out = append(out, ComparisonRow{Label: f[0], Left: f[1], Right: f[2]})
	}
	return out
}

// EncodeComparisonRows writes every labelled row as "label:left:right".
func EncodeComparisonRows(rows []ComparisonRow) string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		label := strings.TrimSpace(row.Label)
		if label == "" {
			continue
		}
		out = append(out, label+":"+strings.TrimSpace(row.Left)+":"+strings.TrimSpace(row.Right))
	}
	return joinLines(out)
}

// DefaultRoadmapColor is used when a roadmap line omits its color.
const DefaultRoadmapColor = "green"

// RoadmapItem is a "title:status:color" milestone.
type RoadmapItem struct {
	Title  string
	Status string
	Color  string
}

// DecodeRoadmap parses "title:status:color" lines. Color defaults to green.
func DecodeRoadmap(encoded string) []RoadmapItem {
	var out []RoadmapItem
	for _, line := range lines(encoded) {
		f := fields(line, 3)
		if f[0] == "" {
			continue
		}
		color := f[2]
		if color == "" {
			color = DefaultRoadmapColor
		}
		out = append(out, RoadmapItem{Title: f[0], Status: f[1], Color: color})
	}
	return out
}

// EncodeRoadmap writes "title:status:color" for each titled item.
func EncodeRoadmap(items []RoadmapItem) string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		color := strings.TrimSpace(item.Color)
		if color == "" {
			color = DefaultRoadmapColor
		}
		out = append(out, title+":"+strings.TrimSpace(item.Status)+":"+color)
	}
	return joinLines(out)
}

// ForecastEntry is a "time:temp" reading.
type ForecastEntry struct {
	Time string
	Temp int
}

// DecodeForecast parses "time:temp" lines. Unparsable temperatures become 0.
func DecodeForecast(encoded string) []ForecastEntry {
	var out []ForecastEntry
	for _, line := range lines(encoded) {
		f := fields(line, 2)
		if f[0] == "" {
			continue
		}
		out = append(out, ForecastEntry{Time: f[0], Temp: ParseTemp(f[1])})
	}
	return out
}

// EncodeForecast writes "time:temp" for each entry with a time.
func EncodeForecast(entries []ForecastEntry) string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		label := strings.TrimSpace(entry.Time)
		if label == "" {
			continue
		}
		out = append(out, label+":"+strconv.Itoa(entry.Temp))
	}
	return joinLines(out)
}

// ParseTemp parses an integer temperature, falling back to 0. Decimal input is truncated.
func ParseTemp(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return 0
}
