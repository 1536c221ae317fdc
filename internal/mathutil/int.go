package mathutil

// IntAbs returns the absolute value of an int.
func IntAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IntSign returns -1, 0, or 1 based on sign.
func IntSign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Manhattan returns the grid distance between two tiles.
func Manhattan(x1, y1, x2, y2 int) int {
	return IntAbs(x1-x2) + IntAbs(y1-y2)
}
