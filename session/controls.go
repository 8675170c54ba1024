package session

// Command is a session wide control.
type Command uint8

const (
	CommandPause Command = iota
	CommandRestart
)

func (c Command) String() string {
	switch c {
	case CommandPause:
		return "pause"
	case CommandRestart:
		return "restart"
	}
	return "unknown"
}

// Controls reports session commands. Pressed reports an edge this frame.
type Controls interface {
	Pressed(Command) bool
}

// NoControls never issues a command.
type NoControls struct{}

func (NoControls) Pressed(Command) bool { return false }
