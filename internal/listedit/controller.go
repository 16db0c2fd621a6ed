// Package listedit implements the list-editing interaction shared by every
// structured-text editor: a display list that always offers one trailing empty
// record for input, commits non-empty records, and reconciles against the
// authoritative encoded value through explicit versioned updates.
package listedit

import "strings"

// Preparer is implemented by shapes that need to normalize a record for display,
// such as adding an empty child slot to a tree node.
type Preparer[T any] interface {
	Prepare(record T) T
}

// Controller owns the display list for one structured prop.
//
// The display list is decode(encoded) plus one trailing empty record. While the
// user types into that trailing record it is transiently non-empty; Commit or
// Add restores the empty slot.
type Controller[T any] struct {
	shape   Shape[T]
	items   []T
	version uint64
}

// New creates a controller initialized from encoded.
func New[T any](shape Shape[T], encoded string) *Controller[T] {
	c := &Controller[T]{shape: shape}
	c.Initialize(encoded)
	return c
}

// Initialize rebuilds the display list from encoded.
func (c *Controller[T]) Initialize(encoded string) {
	decoded := c.shape.Decode(encoded)
	items := make([]T, 0, len(decoded)+1)
	for _, record := range decoded {
		items = append(items, c.prepare(record))
	}
	items = append(items, c.shape.Empty())
	c.items = items
}

// Shape returns the controller's record shape.
func (c *Controller[T]) Shape() Shape[T] {
	return c.shape
}

// Len returns the display list length, trailing slot included.
func (c *Controller[T]) Len() int {
	return len(c.items)
}

// At returns the display record at index.
func (c *Controller[T]) At(index int) T {
	return c.items[index]
}

// Items returns a copy of the display list.
func (c *Controller[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Encoded returns the encoding of every record whose primary field is set.
func (c *Controller[T]) Encoded() string {
	committed := make([]T, 0, len(c.items))
	for _, record := range c.items {
		if !c.blank(record) {
			committed = append(committed, record)
		}
	}
	return c.shape.Encode(committed)
}

// Pending reports whether the last record holds input that has not been
// followed by a fresh empty slot yet.
func (c *Controller[T]) Pending() bool {
	return len(c.items) > 0 && !c.blank(c.items[len(c.items)-1])
}

// UpdateField sets field on the record at index and returns the value to persist.
// The display list is kept as-is, so a record whose primary field was just
// cleared stays visible while it is retyped.
func (c *Controller[T]) UpdateField(index int, field, value string) string {
	if index < 0 || index >= len(c.items) {
		return c.Encoded()
	}
	c.items[index] = c.shape.Set(c.items[index], field, value)
	c.collapseTrailing()
	return c.Encoded()
}

// Commit finishes an edit (blur): it guarantees a trailing empty slot and
// returns the value to persist.
func (c *Controller[T]) Commit() string {
	for i, record := range c.items {
		c.items[i] = c.prepare(record)
	}
	c.ensureTrailing()
	return c.Encoded()
}

// Add appends an empty record when the last record's primary field is set.
func (c *Controller[T]) Add() bool {
	if !c.Pending() {
		return false
	}
	c.items[len(c.items)-1] = c.prepare(c.items[len(c.items)-1])
	c.items = append(c.items, c.shape.Empty())
	return true
}

// RemoveAt deletes the record at index and returns the index that should take
// focus along with the value to persist.
func (c *Controller[T]) RemoveAt(index int) (int, string) {
	if index < 0 || index >= len(c.items) {
		return c.clampFocus(index), c.Encoded()
	}
	c.items = append(c.items[:index:index], c.items[index+1:]...)
	if len(c.items) == 0 {
		c.items = []T{c.shape.Empty()}
	}
	c.ensureTrailing()
	return c.clampFocus(index - 1), c.Encoded()
}

// HandleEnter applies the Enter key policy for the record at index: a record
// with a primary value gets a new slot after the list. It returns the index to
// focus and whether a record was added. Enter on a filled record while the
// trailing slot is already empty moves focus there without adding.
func (c *Controller[T]) HandleEnter(index int) (int, bool) {
	if index < 0 || index >= len(c.items) || c.blank(c.items[index]) {
		return c.clampFocus(index), false
	}
	added := c.Add()
	return len(c.items) - 1, added
}

// HandleBackspace applies the Backspace-on-empty policy: when the record's
// primary field is empty and more than one record exists, the record is
// removed. It returns the focus index, the value to persist and whether a
// removal happened.
func (c *Controller[T]) HandleBackspace(index int) (int, string, bool) {
	if index < 0 || index >= len(c.items) || len(c.items) <= 1 || !c.blank(c.items[index]) {
		return c.clampFocus(index), c.Encoded(), false
	}
	focus, encoded := c.RemoveAt(index)
	return focus, encoded, true
}

// Version returns the last store version this controller has seen.
func (c *Controller[T]) Version() uint64 {
	return c.version
}

// Acknowledge records version as produced by this controller's own commit,
// so a later Sync carrying the same version is not mistaken for an external update.
func (c *Controller[T]) Acknowledge(version uint64) {
	if version > c.version {
		c.version = version
	}
}

// Sync is the external-update event. A version newer than anything the
// controller has seen replaces the display list with encoded. It reports
// whether the display list was rebuilt.
func (c *Controller[T]) Sync(encoded string, version uint64) bool {
	if version <= c.version {
		return false
	}
	c.version = version
	c.Initialize(encoded)
	return true
}

func (c *Controller[T]) blank(record T) bool {
	return strings.TrimSpace(c.shape.Primary(record)) == ""
}

func (c *Controller[T]) prepare(record T) T {
	if p, ok := c.shape.(Preparer[T]); ok {
		return p.Prepare(record)
	}
	return record
}

func (c *Controller[T]) ensureTrailing() {
	if len(c.items) == 0 || !c.blank(c.items[len(c.items)-1]) {
		c.items = append(c.items, c.shape.Empty())
	}
	c.collapseTrailing()
}

// collapseTrailing keeps at most one empty record at the end of the list.
func (c *Controller[T]) collapseTrailing() {
	for len(c.items) >= 2 && c.blank(c.items[len(c.items)-1]) && c.blank(c.items[len(c.items)-2]) {
		c.items = c.items[:len(c.items)-1]
	}
}

func (c *Controller[T]) clampFocus(index int) int {
	if index < 0 {
		return 0
	}
	if index >= len(c.items) {
		return len(c.items) - 1
	}
	return index
}
