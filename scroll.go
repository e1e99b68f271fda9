package infinigrid

import (
	"math"
	"time"
)

// Direction is a discrete per-axis scroll direction.
type Direction int8

// Per-axis directions. Positive means rightward on X, downward on Y.
const (
	DirectionNegative Direction = -1
	DirectionPositive Direction = +1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionNegative:
		return "negative"
	case DirectionPositive:
		return "positive"
	default:
		return "unknown"
	}
}

// ScrollState is a snapshot of the tracker after a tick.
type ScrollState struct {
	// Current is the eased scroll position in input units (pixels).
	Current Point
	// Target is the position the eased motion converges toward.
	Target Point
	// Last is the eased position from the previous tick.
	Last Point

	// DirX and DirY are the discrete directions derived by strictly
	// comparing Current against Last. Ties keep the previous direction.
	DirX Direction
	DirY Direction

	// Moving is true while the displacement from Target exceeds the
	// tracker epsilon on either axis.
	Moving bool
	// Active is the debounced "actively scrolling" flag: it turns true as
	// soon as Moving does, and falls back to false only after the debounce
	// window elapses with no further movement.
	Active bool
}

// TrackerConfig holds configuration for a Tracker.
type TrackerConfig struct {
	// Ease is the per-tick interpolation factor toward the target.
	// Default: 0.05
	Ease float64

	// Epsilon is the displacement below which motion counts as settled.
	// Default: 0.01
	Epsilon float64

	// Debounce is how long after the last movement the Active flag holds.
	// Default: 100ms
	Debounce time.Duration

	// Clock supplies the current time; inject a fake for deterministic
	// tests. Default: time.Now
	Clock func() time.Time
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		Ease:     0.05,
		Epsilon:  0.01,
		Debounce: 100 * time.Millisecond,
	}
}

// Tracker maintains the eased scroll position and the discrete direction
// state the wrap engine consumes.
//
// External stimuli (AddScroll, SetTarget) mutate only the target; the eased
// current position changes exclusively in Tick. Callers must call Tick
// exactly once per frame before reading State or Velocity.
//
// Tracker is a two-state machine: Idle and Moving. The transition to Moving
// fires whenever the eased position is still more than epsilon away from the
// target; the transition back to Idle fires once the debounce window elapses
// without further movement.
type Tracker struct {
	cfg TrackerConfig

	current Point
	target  Point
	last    Point

	dirX Direction
	dirY Direction

	moving     bool
	active     bool
	lastMoving time.Time
}

// NewTracker creates a tracker with the given configuration.
// Zero-valued config fields fall back to defaults.
func NewTracker(cfg TrackerConfig) *Tracker {
	def := DefaultTrackerConfig()
	if cfg.Ease <= 0 {
		cfg.Ease = def.Ease
	}
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = def.Epsilon
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = def.Debounce
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Tracker{
		cfg:  cfg,
		dirX: DirectionPositive,
		dirY: DirectionPositive,
	}
}

// AddScroll shifts the scroll target by (dx, dy) input units.
func (t *Tracker) AddScroll(dx, dy float64) {
	t.target.X += dx
	t.target.Y += dy
}

// SetTarget replaces the scroll target.
func (t *Tracker) SetTarget(x, y float64) {
	t.target = Point{X: x, Y: y}
}

// Jump moves current, target and last to the same position at once,
// suppressing eased motion. Used when the grid is re-laid out.
func (t *Tracker) Jump(x, y float64) {
	p := Point{X: x, Y: y}
	t.current = p
	t.target = p
	t.last = p
	t.moving = false
}

// Tick advances the eased position by one frame and re-derives the
// direction and activity flags. Call exactly once per frame.
func (t *Tracker) Tick() {
	t.last = t.current
	t.current = t.current.Lerp(t.target, t.cfg.Ease)

	// Strict comparison: ties keep the previous direction.
	if t.current.X > t.last.X {
		t.dirX = DirectionPositive
	} else if t.current.X < t.last.X {
		t.dirX = DirectionNegative
	}
	if t.current.Y > t.last.Y {
		t.dirY = DirectionPositive
	} else if t.current.Y < t.last.Y {
		t.dirY = DirectionNegative
	}

	t.moving = math.Abs(t.current.X-t.target.X) > t.cfg.Epsilon ||
		math.Abs(t.current.Y-t.target.Y) > t.cfg.Epsilon

	now := t.cfg.Clock()
	if t.moving {
		t.active = true
		t.lastMoving = now
	} else if t.active && now.Sub(t.lastMoving) >= t.cfg.Debounce {
		t.active = false
	}
}

// State returns a snapshot of the tracker as of the most recent Tick.
func (t *Tracker) State() ScrollState {
	return ScrollState{
		Current: t.current,
		Target:  t.target,
		Last:    t.last,
		DirX:    t.dirX,
		DirY:    t.dirY,
		Moving:  t.moving,
		Active:  t.active,
	}
}

// Velocity returns current minus last from the most recent Tick.
// The value is stale by definition unless Tick ran this frame.
func (t *Tracker) Velocity() Point {
	return t.current.Sub(t.last)
}

// IsActive reports the debounced actively-scrolling flag.
func (t *Tracker) IsActive() bool { return t.active }
