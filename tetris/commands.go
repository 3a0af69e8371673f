package tetris

// Command is a discrete player input.
type Command int

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
	CommandHardDrop
)

func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "move_left"
	case CommandMoveRight:
		return "move_right"
	case CommandSoftDrop:
		return "soft_drop"
	case CommandRotate:
		return "rotate"
	case CommandHardDrop:
		return "hard_drop"
	default:
		return "unknown"
	}
}

// Commands buffers input that arrives between ticks. The engine applies the
// buffered commands in arrival order at the start of the next Tick.
type Commands struct {
	pending []Command
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues a command.
func (c *Commands) Push(cmd Command) {
	c.pending = append(c.pending, cmd)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.pending)
}

// Flush applies every queued command to e in order and resets the buffer.
func (c *Commands) Flush(e *Engine) {
	for _, cmd := range c.pending {
		e.Apply(cmd)
	}
	c.pending = c.pending[:0]
}
