package state

// Cursor is the keyboard position on the grid plus the first visible row.
type Cursor struct {
	Row            int
	Col            int
	ViewportOffset int
}

// Clamp keeps the cursor inside a grid of the given size.
func (c *Cursor) Clamp(rows, cols int) {
	if rows <= 0 {
		c.Row = 0
	} else if c.Row >= rows {
		c.Row = rows - 1
	} else if c.Row < 0 {
		c.Row = 0
	}
	if cols <= 0 {
		c.Col = 0
	} else if c.Col >= cols {
		c.Col = cols - 1
	} else if c.Col < 0 {
		c.Col = 0
	}
}

// Move shifts the cursor, clamping at the edges. It reports whether the
// position changed.
func (c *Cursor) Move(dRow, dCol, rows, cols int) bool {
	if rows <= 0 || cols <= 0 {
		c.Row, c.Col = 0, 0
		return false
	}
	oldRow, oldCol := c.Row, c.Col
	c.Row += dRow
	c.Col += dCol
	c.Clamp(rows, cols)
	return c.Row != oldRow || c.Col != oldCol
}

// Set places the cursor at (row, col) after clamping.
func (c *Cursor) Set(row, col, rows, cols int) bool {
	oldRow, oldCol := c.Row, c.Col
	c.Row, c.Col = row, col
	c.Clamp(rows, cols)
	return c.Row != oldRow || c.Col != oldCol
}

// MoveHome jumps to the first row.
func (c *Cursor) MoveHome(rows, cols int) bool {
	return c.Move(-c.Row, 0, rows, cols)
}

// MoveEnd jumps to the last row.
func (c *Cursor) MoveEnd(rows, cols int) bool {
	return c.Move(rows-1-c.Row, 0, rows, cols)
}

// MovePageUp moves up by the given page size.
func (c *Cursor) MovePageUp(maxVisible, rows, cols int) bool {
	return c.Move(-pageSize(maxVisible, rows), 0, rows, cols)
}

// MovePageDown moves down by the given page size.
func (c *Cursor) MovePageDown(maxVisible, rows, cols int) bool {
	return c.Move(pageSize(maxVisible, rows), 0, rows, cols)
}

func pageSize(maxVisible, rows int) int {
	if rows == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > rows {
		size = rows
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureVisible adjusts the viewport offset so the cursor row stays visible.
func (c *Cursor) EnsureVisible(rows, maxVisible int) {
	if rows == 0 {
		c.Row = 0
		c.ViewportOffset = 0
		return
	}
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row >= rows {
		c.Row = rows - 1
	}
	if maxVisible <= 0 {
		c.ViewportOffset = 0
		return
	}
	maxOffset := rows - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.ViewportOffset > maxOffset {
		c.ViewportOffset = maxOffset
	}
	if c.ViewportOffset < 0 {
		c.ViewportOffset = 0
	}
	if c.Row < c.ViewportOffset {
		c.ViewportOffset = c.Row
	}
	upper := c.ViewportOffset + maxVisible - 1
	if c.Row > upper {
		c.ViewportOffset = c.Row - maxVisible + 1
		if c.ViewportOffset > maxOffset {
			c.ViewportOffset = maxOffset
		}
	}
}
