// Package mansion holds the fixed binary tree of rooms and the walker that
// moves a cursor down through it.
package mansion

// Direction names one of the two passages leaving a room.
type Direction int

const (
	Left Direction = iota
	Right
)

func (it Direction) String() string {
	if it == Left {
		return "left"
	}
	return "right"
}

// Room is a node of the mansion tree. A room owns its children exclusively;
// nil means there is no passage in that direction.
type Room struct {
	Name  string
	Left  *Room
	Right *Room
}

func (it *Room) IsLeaf() bool {
	return it.Left == nil && it.Right == nil
}

func (it *Room) Child(direction Direction) *Room {
	if direction == Left {
		return it.Left
	}
	return it.Right
}

// Count returns the number of rooms in the subtree rooted at room.
func Count(room *Room) int {
	if room == nil {
		return 0
	}
	return 1 + Count(room.Left) + Count(room.Right)
}

// Names lists room names in pre-order, left before right.
func Names(room *Room) []string {
	result := []string{}
	var walk func(*Room)
	walk = func(at *Room) {
		if at == nil {
			return
		}
		result = append(result, at.Name)
		walk(at.Left)
		walk(at.Right)
	}
	walk(room)
	return result
}
