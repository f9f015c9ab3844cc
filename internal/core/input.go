package core

// Pointer is the latched pointer state the simulation reads each tick.
// Click is edge-triggered: it is set by a press and cleared at the end of
// the tick that observed it.
type Pointer struct {
	X, Y  float64
	Down  bool
	Click bool
}

// InputPatch is a partial pointer update. Nil fields leave the latched
// value untouched; set fields overwrite it (last write wins).
type InputPatch struct {
	X, Y  *float64
	Down  *bool
	Click *bool
}

// Apply merges the patch into p.
func (ip InputPatch) Apply(p Pointer) Pointer {
	if ip.X != nil {
		p.X = *ip.X
	}
	if ip.Y != nil {
		p.Y = *ip.Y
	}
	if ip.Down != nil {
		p.Down = *ip.Down
	}
	if ip.Click != nil {
		p.Click = *ip.Click
	}
	return p
}

// PointerMove reports a new pointer position.
func PointerMove(x, y float64) InputPatch {
	return InputPatch{X: &x, Y: &y}
}

// PointerPress reports a press at (x, y): position, held, and a click edge.
func PointerPress(x, y float64) InputPatch {
	down, click := true, true
	return InputPatch{X: &x, Y: &y, Down: &down, Click: &click}
}

// PointerRelease reports the pointer was let go.
func PointerRelease() InputPatch {
	up := false
	return InputPatch{Down: &up}
}

// PointerHold sets the held flag without producing a click.
func PointerHold(down bool) InputPatch {
	return InputPatch{Down: &down}
}
