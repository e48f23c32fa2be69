package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Command is a viewer action decoded from a key press.
type Command int

const (
	CommandNone Command = iota
	CommandScrollUp
	CommandScrollDown
	CommandPageUp
	CommandPageDown
	CommandFirst
	CommandLast
	CommandRefresh
	CommandSuspend
	CommandHelp
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandScrollUp:
		return "scroll-up"
	case CommandScrollDown:
		return "scroll-down"
	case CommandPageUp:
		return "page-up"
	case CommandPageDown:
		return "page-down"
	case CommandFirst:
		return "first"
	case CommandLast:
		return "last"
	case CommandRefresh:
		return "refresh"
	case CommandSuspend:
		return "suspend"
	case CommandHelp:
		return "help"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

type keyID struct {
	key tcell.Key
	r   rune
}

// InputHandler converts tcell events to Commands
type InputHandler struct {
	debounce time.Duration
	now      func() time.Time

	lastKey  keyID
	lastTime time.Time
	hasLast  bool
}

// NewInputHandler creates a handler that drops a repeat of the same key
// arriving within debounce. Zero disables debouncing.
func NewInputHandler(debounce time.Duration) *InputHandler {
	return &InputHandler{
		debounce: debounce,
		now:      time.Now,
	}
}

// ProcessEvent converts a tcell event into a Command. Anything that is not a
// key press, mouse events included, yields CommandNone.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) Command {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return CommandNone
	}

	cmd := keyCommand(key)
	if cmd == CommandNone || cmd == CommandQuit || cmd == CommandSuspend {
		return cmd
	}
	if ih.debounced(key) {
		return CommandNone
	}
	return cmd
}

func (ih *InputHandler) debounced(ev *tcell.EventKey) bool {
	if ih.debounce <= 0 {
		return false
	}
	id := keyID{key: ev.Key()}
	if ev.Key() == tcell.KeyRune {
		id.r = ev.Rune()
	}
	now := ih.now()
	if ih.hasLast && id == ih.lastKey && now.Sub(ih.lastTime) < ih.debounce {
		return true
	}
	ih.lastKey = id
	ih.lastTime = now
	ih.hasLast = true
	return false
}

func keyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyUp:
		return CommandScrollUp
	case tcell.KeyDown:
		return CommandScrollDown
	case tcell.KeyLeft, tcell.KeyPgUp:
		return CommandPageUp
	case tcell.KeyRight, tcell.KeyPgDn:
		return CommandPageDown
	case tcell.KeyCtrlZ:
		return CommandSuspend
	case tcell.KeyHome:
		return CommandFirst
	case tcell.KeyEnd:
		return CommandLast
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if ev.Rune() == 'c' || ev.Rune() == 'C' {
				return CommandQuit
			}
			return CommandNone
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return CommandQuit
		case 'r', 'R':
			return CommandRefresh
		case 'k':
			return CommandScrollUp
		case 'j':
			return CommandScrollDown
		case 'g':
			return CommandFirst
		case 'G':
			return CommandLast
		case '?':
			return CommandHelp
		}
	}
	return CommandNone
}
