package logic

// Navigator tracks the highlighted menu row and keeps it inside the viewport
type Navigator struct {
	cursor         int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator showing height rows at a time
func NewNavigator(height int) *Navigator {
	n := &Navigator{}
	n.SetViewportHeight(height)
	return n
}

// Cursor returns the highlighted row, or -1 when there are no rows
func (n *Navigator) Cursor() int {
	if n.total == 0 {
		return -1
	}
	return n.cursor
}

// ViewportOffset returns the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// ViewportHeight returns the number of visible rows
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// SetViewportHeight changes how many rows are visible
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureVisible()
}

// SetTotal updates the row count, clamping the cursor
func (n *Navigator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	n.total = total
	n.ensureVisible()
}

// SetCursor moves the highlight to index
func (n *Navigator) SetCursor(index int) {
	n.cursor = index
	n.ensureVisible()
}

// Move shifts the highlight by delta rows
func (n *Navigator) Move(delta int) {
	n.SetCursor(n.cursor + delta)
}

// PageUp moves up by one viewport
func (n *Navigator) PageUp() {
	n.Move(-n.viewportHeight)
}

// PageDown moves down by one viewport
func (n *Navigator) PageDown() {
	n.Move(n.viewportHeight)
}

// Home moves to the first row
func (n *Navigator) Home() {
	n.SetCursor(0)
}

// End moves to the last row
func (n *Navigator) End() {
	n.SetCursor(n.total - 1)
}

// Reset returns to the first row
func (n *Navigator) Reset() {
	n.cursor = 0
	n.viewportOffset = 0
	n.ensureVisible()
}

// VisibleRange returns the half-open range of rows to render
func (n *Navigator) VisibleRange() (int, int) {
	end := n.viewportOffset + n.viewportHeight
	if end > n.total {
		end = n.total
	}
	return n.viewportOffset, end
}

func (n *Navigator) ensureVisible() {
	if n.cursor >= n.total {
		n.cursor = n.total - 1
	}
	if n.cursor < 0 {
		n.cursor = 0
	}

	if n.cursor < n.viewportOffset {
		n.viewportOffset = n.cursor
	}
	if n.cursor >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.cursor - n.viewportHeight + 1
	}

	maxOffset := n.total - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
