package server

import (
	"reflect"
	"testing"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []Action
	}{
		{"arrows", []byte("\x1b[C\x1b[D\x1b[A\x1b[B"), []Action{ActionNext, ActionPrev, ActionFaster, ActionSlower}},
		{"letters", []byte("dahl"), []Action{ActionNext, ActionPrev, ActionPrev, ActionNext}},
		{"pause", []byte(" p"), []Action{ActionPause, ActionPause}},
		{"speed", []byte("+=-_"), []Action{ActionFaster, ActionFaster, ActionSlower, ActionSlower}},
		{"rewind", []byte("R"), []Action{ActionRewind}},
		{"quit", []byte("q"), []Action{ActionQuit}},
		{"ctrl-c", []byte{3}, []Action{ActionQuit}},
		{"unknown ignored", []byte("xyz☃"), nil},
		{"unknown escape", []byte("\x1b[Zd"), []Action{ActionNext}},
		{"truncated escape", []byte("\x1b["), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseInput(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseInput(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
