package listedit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeControllerDisplaysChildSlots(t *testing.T) {
	t.Parallel()

	tc := NewTree("Favorites:Airdrop,Recents\niCloud:iCloud Drive")
	require.Equal(t, 3, tc.Len())
	require.Equal(t, []string{"Airdrop", "Recents", ""}, tc.Children(0))
	require.Equal(t, []string{"iCloud Drive", ""}, tc.Children(1))
	require.False(t, tc.ChildrenVisible(2))
	require.Equal(t, "Favorites:Airdrop,Recents\niCloud:iCloud Drive", tc.Encoded())
}

func TestTreeControllerChildEditing(t *testing.T) {
	t.Parallel()

	tc := NewTree("Docs")
	require.Equal(t, []string{""}, tc.Children(0))

	require.Equal(t, "Docs:a", tc.UpdateChild(0, 0, "a"))
	focus, added := tc.HandleChildEnter(0, 0)
	require.True(t, added)
	require.Equal(t, 1, focus)
	require.Equal(t, []string{"a", ""}, tc.Children(0))

	require.Equal(t, "Docs:a,b", tc.UpdateChild(0, 1, "b"))
	require.True(t, tc.AddChild(0))
	require.False(t, tc.AddChild(0))

	focus, encoded := tc.RemoveChild(0, 0)
	require.Equal(t, 0, focus)
	require.Equal(t, "Docs:b", encoded)
	require.Equal(t, []string{"b", ""}, tc.Children(0))

	tc.UpdateChild(0, 0, "")
	require.Equal(t, []string{""}, tc.Children(0))
	_, _, removed := tc.HandleChildBackspace(0, 0)
	require.False(t, removed)
}

func TestTreeControllerParentNamingRevealsChildren(t *testing.T) {
	t.Parallel()

	tc := NewTree("")
	require.False(t, tc.ChildrenVisible(0))

	require.Equal(t, "Work", tc.UpdateField(0, FieldParent, "Work"))
	require.True(t, tc.ChildrenVisible(0))
	require.Equal(t, []string{""}, tc.Children(0))

	tc.UpdateChild(0, 0, "Reports")
	require.Equal(t, "Work:Reports", tc.Commit())
	require.Equal(t, 2, tc.Len())
}

func TestTreeControllerClearingParentHidesChildren(t *testing.T) {
	t.Parallel()

	tc := NewTree("A:x\nB:y")
	encoded := tc.UpdateField(0, FieldParent, "")
	require.False(t, tc.ChildrenVisible(0))
	require.Equal(t, "B:y", encoded)
}

func TestTreeControllerDoesNotAliasDecodedChildren(t *testing.T) {
	t.Parallel()

	tc := NewTree("A:x")
	children := tc.Children(0)
	children[0] = "mutated"
	require.Equal(t, "A:x", tc.Encoded())
}
