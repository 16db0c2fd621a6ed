package listedit

import (
	"strings"

	"github.com/alexisbeaulieu97/propdeck/internal/codec"
)

// Prepare gives a named parent an empty trailing child slot. The children slice
// is copied so display edits never alias decoded data.
func (TreeShape) Prepare(n codec.TreeNode) codec.TreeNode {
	children := make([]string, len(n.Children), len(n.Children)+1)
	copy(children, n.Children)
	if strings.TrimSpace(n.Parent) != "" {
		if len(children) == 0 || strings.TrimSpace(children[len(children)-1]) != "" {
			children = append(children, "")
		}
	}
	n.Children = children
	return n
}

// TreeController edits parent:children nodes. Each visible parent carries its
// own child list with a trailing empty slot, managed by the same rules as the
// top-level list.
type TreeController struct {
	*Controller[codec.TreeNode]
}

// NewTree creates a tree controller initialized from encoded.
func NewTree(encoded string) *TreeController {
	return &TreeController{Controller: New[codec.TreeNode](TreeShape{}, encoded)}
}

// UpdateField sets the parent name at index. Naming a parent reveals its child slot.
func (t *TreeController) UpdateField(index int, field, value string) string {
	encoded := t.Controller.UpdateField(index, field, value)
	if index >= 0 && index < len(t.items) {
		t.items[index] = TreeShape{}.Prepare(t.items[index])
	}
	return encoded
}

// ChildrenVisible reports whether the child block of parent index is shown.
// Clearing a parent's name hides its children and drops them from the encoding.
func (t *TreeController) ChildrenVisible(index int) bool {
	if index < 0 || index >= len(t.items) {
		return false
	}
	return strings.TrimSpace(t.items[index].Parent) != ""
}

// Children returns a copy of the display children of parent index.
func (t *TreeController) Children(index int) []string {
	if index < 0 || index >= len(t.items) {
		return nil
	}
	out := make([]string, len(t.items[index].Children))
	copy(out, t.items[index].Children)
	return out
}

// UpdateChild sets child j of parent index and returns the value to persist.
func (t *TreeController) UpdateChild(index, j int, value string) string {
	if !t.validChild(index, j) {
		return t.Encoded()
	}
	node := t.items[index]
	children := make([]string, len(node.Children))
	copy(children, node.Children)
	children[j] = value
	node.Children = collapseChildren(children)
	t.items[index] = node
	return t.Encoded()
}

// AddChild appends an empty child slot when the last child is named.
func (t *TreeController) AddChild(index int) bool {
	if !t.ChildrenVisible(index) {
		return false
	}
	children := t.items[index].Children
	if len(children) > 0 && strings.TrimSpace(children[len(children)-1]) == "" {
		return false
	}
	t.items[index] = TreeShape{}.Prepare(t.items[index])
	return true
}

// RemoveChild deletes child j of parent index. It returns the child index to
// focus and the value to persist.
func (t *TreeController) RemoveChild(index, j int) (int, string) {
	if !t.validChild(index, j) {
		return 0, t.Encoded()
	}
	node := t.items[index]
	children := make([]string, 0, len(node.Children))
	children = append(children, node.Children[:j]...)
	children = append(children, node.Children[j+1:]...)
	node.Children = children
	node = TreeShape{}.Prepare(node)
	node.Children = collapseChildren(node.Children)
	t.items[index] = node

	focus := j - 1
	if focus < 0 {
		focus = 0
	}
	if focus >= len(node.Children) {
		focus = len(node.Children) - 1
	}
	return focus, t.Encoded()
}

// HandleChildEnter adds a child slot after a named child and returns the child
// index to focus.
func (t *TreeController) HandleChildEnter(index, j int) (int, bool) {
	if !t.validChild(index, j) || strings.TrimSpace(t.items[index].Children[j]) == "" {
		return j, false
	}
	t.AddChild(index)
	return len(t.items[index].Children) - 1, true
}

// HandleChildBackspace removes an empty child when the parent has more than one.
func (t *TreeController) HandleChildBackspace(index, j int) (int, string, bool) {
	if !t.validChild(index, j) ||
		len(t.items[index].Children) <= 1 ||
		strings.TrimSpace(t.items[index].Children[j]) != "" {
		return j, t.Encoded(), false
	}
	focus, encoded := t.RemoveChild(index, j)
	return focus, encoded, true
}

func (t *TreeController) validChild(index, j int) bool {
	return index >= 0 && index < len(t.items) && j >= 0 && j < len(t.items[index].Children)
}

func collapseChildren(children []string) []string {
	for len(children) >= 2 &&
		strings.TrimSpace(children[len(children)-1]) == "" &&
		strings.TrimSpace(children[len(children)-2]) == "" {
		children = children[:len(children)-1]
	}
	return children
}
