package mansion

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"
)

// Nowhere marks a missing passage in a layout entry.
const Nowhere = -1

var (
	ErrEmptyLayout = errors.New("layout has no rooms")
	ErrBadIndex    = errors.New("passage points outside of layout")
	ErrSharedRoom  = errors.New("room is reachable through more than one passage")
	ErrUnreachable = errors.New("room is not reachable from the entrance")
	ErrNoName      = errors.New("room has no name")
)

// Entry describes one room and the indexes of its children. Entry zero is
// the root.
type Entry struct {
	Name  string
	Left  int
	Right int
}

type Layout []Entry

// Reference is the fixed map of the mansion.
var Reference = Layout{
	{Name: "Entrance Hall", Left: 1, Right: 2},
	{Name: "Dining Room", Left: 3, Right: 4},
	{Name: "Library", Left: 5, Right: 6},
	{Name: "Kitchen", Left: 7, Right: 8},
	{Name: "Master Bedroom", Left: 9, Right: Nowhere},
	{Name: "Winter Garden", Left: Nowhere, Right: 10},
	{Name: "Office", Left: Nowhere, Right: Nowhere},
	{Name: "Pantry", Left: Nowhere, Right: Nowhere},
	{Name: "Laundry Room", Left: Nowhere, Right: Nowhere},
	{Name: "Bathroom", Left: Nowhere, Right: Nowhere},
	{Name: "Living Room", Left: Nowhere, Right: 11},
	{Name: "Porch", Left: Nowhere, Right: Nowhere},
}

// Mansion builds the reference layout.
func Mansion() (*Room, error) {
	return Build(Reference)
}

func (it Layout) check() error {
	if len(it) == 0 {
		return ErrEmptyLayout
	}
	referenced := make([]bool, len(it))
	referenced[0] = true
	for at, entry := range it {
		if len(entry.Name) == 0 {
			return fmt.Errorf("entry #%d: %w", at, ErrNoName)
		}
		for _, target := range []int{entry.Left, entry.Right} {
			if target == Nowhere {
				continue
			}
			if target < 0 || target >= len(it) {
				return fmt.Errorf("room %q -> #%d: %w", entry.Name, target, ErrBadIndex)
			}
			if referenced[target] {
				return fmt.Errorf("room %q -> %q: %w", entry.Name, it[target].Name, ErrSharedRoom)
			}
			referenced[target] = true
		}
	}
	for at, seen := range referenced {
		if !seen {
			return fmt.Errorf("room %q: %w", it[at].Name, ErrUnreachable)
		}
	}
	return nil
}

func (it Layout) room(at int) *Room {
	if at == Nowhere {
		return nil
	}
	entry := it[at]
	return &Room{
		Name:  entry.Name,
		Left:  it.room(entry.Left),
		Right: it.room(entry.Right),
	}
}

// Build turns a layout table into a tree and returns its root.
func Build(layout Layout) (*Room, error) {
	if err := layout.check(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	root := layout.room(0)
	if built := Count(root); built != len(layout) {
		return nil, fmt.Errorf("invalid layout: built %d of %d rooms: %w", built, len(layout), ErrUnreachable)
	}
	return root, nil
}

type passage struct {
	Room  string `yaml:"room"`
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`
	Leaf  bool   `yaml:"leaf,omitempty"`
}

func (it Layout) nameOf(at int) string {
	if at == Nowhere || at < 0 || at >= len(it) {
		return ""
	}
	return it[at].Name
}

// AsYaml renders the layout with child names instead of indexes.
func (it Layout) AsYaml() ([]byte, error) {
	passages := make([]passage, 0, len(it))
	for _, entry := range it {
		passages = append(passages, passage{
			Room:  entry.Name,
			Left:  it.nameOf(entry.Left),
			Right: it.nameOf(entry.Right),
			Leaf:  entry.Left == Nowhere && entry.Right == Nowhere,
		})
	}
	body, err := yaml.Marshal(map[string]interface{}{"mansion": passages})
	if err != nil {
		return nil, fmt.Errorf("layout as yaml: %w", err)
	}
	return body, nil
}
