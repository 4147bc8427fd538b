package draw

// FillRect fills the logical rectangle with top-left (x, y) and size w x h.
func (c *Canvas) FillRect(x, y, w, h float64, color Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := span(x, w, c.scaleX)
	y0, y1 := span(y, h, c.scaleY)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.setPixel(px, py, color)
		}
	}
}

// FillMask draws a bitmap stretched over the logical rectangle with top-left (x, y)
// and size w x h. Each string in rows is one bitmap row; any character other
// than ' ' or '.' is a set pixel. Every covered pixel samples the bitmap at
// its center.
func (c *Canvas) FillMask(x, y, w, h float64, rows []string, color Color) {
	if w <= 0 || h <= 0 || len(rows) == 0 {
		return
	}
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	if cols == 0 {
		return
	}

	x0, x1 := span(x, w, c.scaleX)
	y0, y1 := span(y, h, c.scaleY)
	for py := y0; py <= y1; py++ {
		v := ((float64(py)+0.5)/c.scaleY - y) / h
		mr := min(max(int(v*float64(len(rows))), 0), len(rows)-1)
		line := rows[mr]
		for px := x0; px <= x1; px++ {
			u := ((float64(px)+0.5)/c.scaleX - x) / w
			mc := min(max(int(u*float64(cols)), 0), cols-1)
			if mc < len(line) && line[mc] != ' ' && line[mc] != '.' {
				c.setPixel(px, py, color)
			}
		}
	}
}
