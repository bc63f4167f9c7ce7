package pretty

import "os"

// Branches holds the glyphs of a tree outline: Fork leads to a child that
// has siblings below it, Last to the final child, Stem continues a parent
// line past a fork and Rule is the horizontal piece.
type Branches struct {
	Fork string
	Last string
	Stem string
	Rule string
}

var (
	BranchesLight = Branches{Fork: "├", Last: "└", Stem: "│", Rule: "─"}
	BranchesRound = Branches{Fork: "├", Last: "╰", Stem: "│", Rule: "─"}
	BranchesASCII = Branches{Fork: "+", Last: "`", Stem: "|", Rule: "-"}
)

// ActiveBranches picks glyphs for the current terminal. Dumb or unknown
// terminals get plain ASCII.
func ActiveBranches() Branches {
	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return BranchesASCII
	}
	if Iconic {
		return BranchesRound
	}
	return BranchesLight
}
