package panel

import (
	"github.com/alexisbeaulieu97/propdeck/internal/codec"
	"github.com/alexisbeaulieu97/propdeck/internal/listedit"
	"github.com/alexisbeaulieu97/propdeck/internal/schema"
)

// fieldChild names the single editable field of a tree child row.
const fieldChild = "child"

// Row addresses one line of a list editor. Child is -1 for record rows and the
// child index for tree children.
type Row struct {
	Record int
	Child  int
}

func recordRow(i int) Row { return Row{Record: i, Child: -1} }

// IsChild reports whether the row is a tree child.
func (r Row) IsChild() bool { return r.Child >= 0 }

// listEditor is the panel's view of a listedit controller: a flat sequence of
// rows, each with one or more text fields.
type listEditor interface {
	Rows() []Row
	Fields(row Row) []string
	Get(row Row, field string) string
	Set(row Row, field, value string) string
	Enter(row Row) (Row, bool)
	Backspace(row Row) (Row, string, bool)
	Commit() string
	Acknowledge(version uint64)
	Sync(encoded string, version uint64) bool
}

// newListEditor builds the controller for kind. It reports false for generic fields.
func newListEditor(kind schema.EditorKind, encoded string) (listEditor, bool) {
	switch kind {
	case schema.EditorList, schema.EditorItemIcons:
		return recordList[string]{listedit.New[string](listedit.ListShape{}, encoded)}, true
	case schema.EditorLabelBadge:
		return recordList[codec.LabelBadge]{listedit.New[codec.LabelBadge](listedit.LabelBadgeShape{}, encoded)}, true
	case schema.EditorTree:
		return treeList{listedit.NewTree(encoded)}, true
	case schema.EditorComparisonRows:
		return recordList[codec.ComparisonRow]{listedit.New[codec.ComparisonRow](listedit.ComparisonRowShape{}, encoded)}, true
	case schema.EditorRoadmap:
		return recordList[codec.RoadmapItem]{listedit.New[codec.RoadmapItem](listedit.RoadmapShape{}, encoded)}, true
	case schema.EditorForecast:
		return recordList[listedit.ForecastRow]{listedit.New[listedit.ForecastRow](listedit.ForecastShape{}, encoded)}, true
	default:
		return nil, false
	}
}

type recordList[T any] struct {
	*listedit.Controller[T]
}

func (l recordList[T]) Rows() []Row {
	rows := make([]Row, l.Len())
	for i := range rows {
		rows[i] = recordRow(i)
	}
	return rows
}

func (l recordList[T]) Fields(Row) []string {
	return l.Shape().Fields()
}

func (l recordList[T]) Get(row Row, field string) string {
	if row.Record < 0 || row.Record >= l.Len() {
		return ""
	}
	return l.Shape().Get(l.At(row.Record), field)
}

func (l recordList[T]) Set(row Row, field, value string) string {
	return l.UpdateField(row.Record, field, value)
}

func (l recordList[T]) Enter(row Row) (Row, bool) {
	focus, added := l.HandleEnter(row.Record)
	return recordRow(focus), added
}

func (l recordList[T]) Backspace(row Row) (Row, string, bool) {
	focus, encoded, removed := l.HandleBackspace(row.Record)
	return recordRow(focus), encoded, removed
}

type treeList struct {
	*listedit.TreeController
}

func (t treeList) Rows() []Row {
	var rows []Row
	for i := 0; i < t.Len(); i++ {
		rows = append(rows, recordRow(i))
		if !t.ChildrenVisible(i) {
			continue
		}
		for j := range t.Children(i) {
			rows = append(rows, Row{Record: i, Child: j})
		}
	}
	return rows
}

func (t treeList) Fields(row Row) []string {
	if row.IsChild() {
		return []string{fieldChild}
	}
	return []string{listedit.FieldParent}
}

func (t treeList) Get(row Row, _ string) string {
	if row.IsChild() {
		children := t.Children(row.Record)
		if row.Child < len(children) {
			return children[row.Child]
		}
		return ""
	}
	if row.Record < 0 || row.Record >= t.Len() {
		return ""
	}
	return t.At(row.Record).Parent
}

func (t treeList) Set(row Row, _ string, value string) string {
	if row.IsChild() {
		return t.UpdateChild(row.Record, row.Child, value)
	}
	return t.UpdateField(row.Record, listedit.FieldParent, value)
}

func (t treeList) Enter(row Row) (Row, bool) {
	if row.IsChild() {
		focus, added := t.HandleChildEnter(row.Record, row.Child)
		return Row{Record: row.Record, Child: focus}, added
	}
	focus, added := t.HandleEnter(row.Record)
	return recordRow(focus), added
}

func (t treeList) Backspace(row Row) (Row, string, bool) {
	if row.IsChild() {
		focus, encoded, removed := t.HandleChildBackspace(row.Record, row.Child)
		return Row{Record: row.Record, Child: focus}, encoded, removed
	}
	focus, encoded, removed := t.HandleBackspace(row.Record)
	return recordRow(focus), encoded, removed
}

func indexOfRow(rows []Row, row Row) int {
	for i, r := range rows {
		if r == row {
			return i
		}
	}
	return -1
}
