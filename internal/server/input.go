package server

import "unicode/utf8"

// Action is a viewer command decoded from terminal input.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionPause
	ActionFaster
	ActionSlower
	ActionRewind
	ActionQuit
)

// parseInput converts raw bytes into viewer actions.
// Handles arrow key escape sequences, A/D, space, +/-, R, Q and Ctrl-C.
func parseInput(data []byte) []Action {
	var actions []Action
	i := 0
	for i < len(data) {
		// Check for escape sequences (arrow keys)
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				actions = append(actions, ActionFaster)
			case 'B':
				actions = append(actions, ActionSlower)
			case 'C':
				actions = append(actions, ActionNext)
			case 'D':
				actions = append(actions, ActionPrev)
			}
			i += 3
			continue
		}

		// Single byte inputs
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'd', 'D', 'l', 'L':
			actions = append(actions, ActionNext)
		case 'a', 'A', 'h', 'H':
			actions = append(actions, ActionPrev)
		case ' ', 'p', 'P':
			actions = append(actions, ActionPause)
		case '+', '=':
			actions = append(actions, ActionFaster)
		case '-', '_':
			actions = append(actions, ActionSlower)
		case 'r', 'R':
			actions = append(actions, ActionRewind)
		case 'q', 'Q':
			actions = append(actions, ActionQuit)
		case 3: // Ctrl-C
			actions = append(actions, ActionQuit)
		}
		i += size
	}
	return actions
}
