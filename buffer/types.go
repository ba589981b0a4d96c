package buffer

// MoveDir identifies a relative caret relocation.
type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // content start
	DirEnd  // content end
)

func (d MoveDir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirHome:
		return "home"
	case DirEnd:
		return "end"
	default:
		return "unknown"
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampCaret clamps offset into [0, length].
//
// A negative length is treated as 0.
func ClampCaret(offset, length int) int {
	if length < 0 {
		length = 0
	}
	return clampInt(offset, 0, length)
}
