package mansion

// Release detaches every room of the tree in post-order, children before
// their parent, calling visit (when given) for each room as it goes. It
// returns the number of rooms released.
func Release(room *Room, visit func(*Room)) int {
	if room == nil {
		return 0
	}
	released := Release(room.Left, visit)
	released += Release(room.Right, visit)
	room.Left, room.Right = nil, nil
	if visit != nil {
		visit(room)
	}
	return released + 1
}
