package game

// Mode is the session's top-level state.
type Mode int

const (
	ModeMenu     Mode = iota // Title screen
	ModePlaying              // Active gameplay
	ModeGameOver             // Ship destroyed with no lives left
	ModeExit                 // Absorbing; the frontend should shut down
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game-over"
	case ModeExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Trigger is an occurrence that may move the session to another Mode.
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerQuit
	TriggerRestart
	TriggerShipLost
)

// transitions is the full mode table. Pairs not listed leave the mode unchanged.
var transitions = map[Mode]map[Trigger]Mode{
	ModeMenu: {
		TriggerStart: ModePlaying,
		TriggerQuit:  ModeExit,
	},
	ModePlaying: {
		TriggerShipLost: ModeGameOver,
		TriggerQuit:     ModeMenu,
	},
	ModeGameOver: {
		TriggerRestart: ModePlaying,
		TriggerQuit:    ModeMenu,
	},
}

// NextMode returns the mode reached from m on t, and whether t applies to m.
func NextMode(m Mode, t Trigger) (Mode, bool) {
	next, ok := transitions[m][t]
	if !ok {
		return m, false
	}
	return next, true
}
