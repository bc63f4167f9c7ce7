package mansion

import (
	"fmt"
	"io"

	"github.com/joshyorko/mansion/pretty"
)

// Render writes the tree as an indented outline, labelling each branch with
// the key that follows it.
func Render(out io.Writer, root *Room, glyphs pretty.Branches) error {
	if root == nil {
		return nil
	}
	if _, err := fmt.Fprintln(out, root.Name); err != nil {
		return err
	}
	return renderChildren(out, root, "", glyphs)
}

func renderChildren(out io.Writer, room *Room, indent string, glyphs pretty.Branches) error {
	type branch struct {
		key  string
		room *Room
	}
	branches := []branch{}
	if room.Left != nil {
		branches = append(branches, branch{"e", room.Left})
	}
	if room.Right != nil {
		branches = append(branches, branch{"d", room.Right})
	}
	for at, each := range branches {
		last := at == len(branches)-1
		joint, carry := glyphs.Fork, glyphs.Stem+"  "
		if last {
			joint, carry = glyphs.Last, "   "
		}
		_, err := fmt.Fprintf(out, "%s%s%s %s: %s\n", indent, joint, glyphs.Rule, each.key, each.room.Name)
		if err != nil {
			return err
		}
		if err := renderChildren(out, each.room, indent+carry, glyphs); err != nil {
			return err
		}
	}
	return nil
}
