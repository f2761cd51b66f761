package rollcube

import "math"

// QuarterTurn is the angle of one roll.
const QuarterTurn = math.Pi / 2

// Direction is a roll direction. The declaration order is the priority
// used when several directions are held in the same frame.
type Direction int

const (
	DirUp    Direction = iota // +x, offset applied when the roll lands
	DirDown                   // -x, offset applied when the roll starts
	DirRight                  // -z, offset applied when the roll lands
	DirLeft                   // +z, offset applied when the roll starts
)

// Directions lists all directions in priority order.
var Directions = [...]Direction{DirUp, DirDown, DirRight, DirLeft}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// RollState tags what the cube is doing. Exactly one move can be in
// flight; Idle is the only state that accepts a new one.
type RollState int

const (
	Idle RollState = iota
	RollingUp
	RollingDown
	RollingLeft
	RollingRight
)

func (s RollState) String() string {
	switch s {
	case Idle:
		return "idle"
	case RollingUp:
		return "rolling-up"
	case RollingDown:
		return "rolling-down"
	case RollingLeft:
		return "rolling-left"
	case RollingRight:
		return "rolling-right"
	default:
		return "unknown"
	}
}

// Axis is the horizontal axis the cube rotates about.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisZ
)

// Axis returns the rotation axis for the state.
func (s RollState) Axis() Axis {
	switch s {
	case RollingUp, RollingDown:
		return AxisX
	case RollingLeft, RollingRight:
		return AxisZ
	default:
		return AxisNone
	}
}

// reverse reports whether the sweep runs from a quarter turn down to zero.
func (s RollState) reverse() bool {
	return s == RollingDown || s == RollingLeft
}

func stateFor(d Direction) RollState {
	switch d {
	case DirUp:
		return RollingUp
	case DirDown:
		return RollingDown
	case DirRight:
		return RollingRight
	default:
		return RollingLeft
	}
}

// Pose is a read-only view of the cube for renderers.
type Pose struct {
	Pos      Coord
	State    RollState
	Axis     Axis
	Angle    float64 // radians in [0, π/2]; 0 while idle
	Progress float64 // fraction of the current roll completed, 0 while idle
	SmoothX  float64 // camera-follow offset along x
	SmoothZ  float64 // camera-follow offset along z
}

// Roller is the roll state machine. It is the only writer of the cube's
// grid position.
type Roller struct {
	pos   Coord
	state RollState
	step  int // frames advanced in the current roll
	steps int // frames the current roll takes, fixed when it starts

	speed    int
	minSpeed int
	maxSpeed int

	smoothX float64
	smoothZ float64
}

// NewRoller creates an idle roller at the origin. speed is the number of
// frames per quarter turn and is clamped to [minSpeed, maxSpeed].
func NewRoller(speed, minSpeed, maxSpeed int) *Roller {
	minSpeed = max(1, minSpeed)
	maxSpeed = max(minSpeed, maxSpeed)
	r := &Roller{minSpeed: minSpeed, maxSpeed: maxSpeed}
	r.SetSpeed(speed)
	return r
}

// Idle reports whether a new move may start.
func (r *Roller) Idle() bool {
	return r.state == Idle
}

// Pos returns the cube's logical cell.
func (r *Roller) Pos() Coord {
	return r.pos
}

// State returns the current roll state.
func (r *Roller) State() RollState {
	return r.state
}

// Speed returns the frames per quarter turn used by the next roll.
func (r *Roller) Speed() int {
	return r.speed
}

// SetSpeed sets the frames per quarter turn, clamped to the configured bounds.
// A roll already in flight keeps the speed it started with.
func (r *Roller) SetSpeed(speed int) {
	r.speed = min(max(speed, r.minSpeed), r.maxSpeed)
}

// AdjustSpeed changes the speed by delta.
func (r *Roller) AdjustSpeed(delta int) {
	r.SetSpeed(r.speed + delta)
}

// Angle returns the current rotation in radians.
func (r *Roller) Angle() float64 {
	if r.state == Idle {
		return 0
	}
	swept := QuarterTurn * float64(r.step) / float64(r.steps)
	if r.state.reverse() {
		return QuarterTurn - swept
	}
	return swept
}

// Pose returns a read-only snapshot of the cube.
func (r *Roller) Pose() Pose {
	p := Pose{
		Pos:     r.pos,
		State:   r.state,
		Axis:    r.state.Axis(),
		Angle:   r.Angle(),
		SmoothX: r.smoothX,
		SmoothZ: r.smoothZ,
	}
	if r.state != Idle {
		p.Progress = float64(r.step) / float64(r.steps)
	}
	return p
}

// Start begins a roll. It returns false and changes nothing unless the
// roller is idle. Down and Left move the logical cell immediately and
// sweep the angle back from a quarter turn; Up and Right move it on landing.
func (r *Roller) Start(d Direction) bool {
	if r.state != Idle {
		return false
	}
	r.state = stateFor(d)
	r.step = 0
	r.steps = r.speed

	switch d {
	case DirDown:
		r.pos.X--
	case DirLeft:
		r.pos.Z++
	}
	return true
}

// Advance moves the roll forward one frame. It returns true on exactly
// the frame the roll lands and the roller becomes idle again.
func (r *Roller) Advance() bool {
	if r.state == Idle {
		return false
	}

	r.step++
	delta := 1 / float64(r.steps)
	switch r.state {
	case RollingUp:
		r.smoothX += delta
	case RollingDown:
		r.smoothX -= delta
	case RollingLeft:
		r.smoothZ += delta
	case RollingRight:
		r.smoothZ -= delta
	}

	if r.step < r.steps {
		return false
	}

	switch r.state {
	case RollingUp:
		r.pos.X++
	case RollingRight:
		r.pos.Z--
	}
	r.state = Idle
	r.step = 0
	r.steps = 0
	// Snap so float drift never accumulates across moves.
	r.smoothX = float64(r.pos.X)
	r.smoothZ = float64(r.pos.Z)
	return true
}

// Reset returns the cube to the origin, idle, discarding any roll in flight.
func (r *Roller) Reset() {
	r.pos = Coord{}
	r.state = Idle
	r.step = 0
	r.steps = 0
	r.smoothX = 0
	r.smoothZ = 0
}
