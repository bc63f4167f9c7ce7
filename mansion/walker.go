package mansion

import "unicode"

// Command is one parsed keypress of the walk.
type Command int

const (
	CommandInvalid Command = iota
	CommandLeft
	CommandRight
	CommandExit
)

// Key characters of the walk, matched case-insensitively.
const (
	KeyLeft  = 'e'
	KeyRight = 'd'
	KeyExit  = 's'
)

func ParseCommand(key rune) Command {
	switch unicode.ToLower(key) {
	case KeyLeft:
		return CommandLeft
	case KeyRight:
		return CommandRight
	case KeyExit:
		return CommandExit
	}
	return CommandInvalid
}

type State int

const (
	Exploring State = iota
	AtLeaf
	Exited
)

func (it State) Terminal() bool {
	return it != Exploring
}

func (it State) String() string {
	switch it {
	case AtLeaf:
		return "leaf"
	case Exited:
		return "exited"
	}
	return "exploring"
}

// Outcome tells what a single step did.
type Outcome int

const (
	Moved Outcome = iota
	Blocked
	Invalid
	Quit
	Finished
)

func (it Outcome) String() string {
	switch it {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case Invalid:
		return "invalid"
	case Quit:
		return "exit"
	}
	return "finished"
}

// Walker keeps the cursor of one walk. The cursor only ever moves down; the
// walker never owns or changes rooms.
type Walker struct {
	cursor *Room
	state  State
	path   []string
}

func NewWalker(root *Room) *Walker {
	walker := &Walker{
		cursor: root,
		path:   []string{root.Name},
	}
	if root.IsLeaf() {
		walker.state = AtLeaf
	}
	return walker
}

func (it *Walker) Current() *Room {
	return it.cursor
}

func (it *Walker) State() State {
	return it.state
}

// Path lists the rooms visited so far, entrance first.
func (it *Walker) Path() []string {
	return append([]string(nil), it.path...)
}

// Options tells which passages leave the current room.
func (it *Walker) Options() (left, right bool) {
	return it.cursor.Left != nil, it.cursor.Right != nil
}

// Step applies one command. Once the walk is over every further step
// returns Finished and changes nothing.
func (it *Walker) Step(command Command) Outcome {
	if it.state.Terminal() {
		return Finished
	}
	switch command {
	case CommandLeft:
		return it.move(Left)
	case CommandRight:
		return it.move(Right)
	case CommandExit:
		it.state = Exited
		return Quit
	}
	return Invalid
}

func (it *Walker) move(direction Direction) Outcome {
	next := it.cursor.Child(direction)
	if next == nil {
		return Blocked
	}
	it.cursor = next
	it.path = append(it.path, next.Name)
	if next.IsLeaf() {
		it.state = AtLeaf
	}
	return Moved
}
