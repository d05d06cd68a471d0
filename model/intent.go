package model

// Intent is one frame of player input.
type Intent struct {
	TurnLeft  bool
	TurnRight bool
	Forward   bool
	Backward  bool
	// Fire is a discrete event, consumed by the first simulation step of the frame.
	Fire bool
}

// Turn returns -1, 0 or 1 for the combined turn direction.
func (in Intent) Turn() float64 {
	t := 0.0
	if in.TurnLeft {
		t--
	}
	if in.TurnRight {
		t++
	}
	return t
}

// Move returns -1, 0 or 1 for the combined forward/backward direction.
func (in Intent) Move() float64 {
	m := 0.0
	if in.Forward {
		m++
	}
	if in.Backward {
		m--
	}
	return m
}
