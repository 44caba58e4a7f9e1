package config

// ActionID represents a logical movement key
type ActionID int

// Movement keys in the order they are applied each tick.
const (
	ActionMoveUp ActionID = iota
	ActionMoveLeft
	ActionMoveDown
	ActionMoveRight
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{"w", "a", "s", "d"}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
