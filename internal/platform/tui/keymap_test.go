package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     Action
		wantQuit bool
	}{
		{"a moves left", keyRunes("a"), ActionLeft, false},
		{"left arrow moves left", tea.KeyMsg{Type: tea.KeyLeft}, ActionLeft, false},
		{"d moves right", keyRunes("d"), ActionRight, false},
		{"right arrow moves right", tea.KeyMsg{Type: tea.KeyRight}, ActionRight, false},
		{"space launches", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, ActionLaunch, false},
		{"p pauses", keyRunes("p"), ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, ActionPause, false},
		{"s saves", keyRunes("s"), ActionSave, false},
		{"r restarts", keyRunes("r"), ActionRestart, false},
		{"q quits", keyRunes("q"), ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit, true},
		{"unknown key does nothing", keyRunes("x"), ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotQuit := km.MapKey(tt.msg)
			if got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
			if gotQuit != tt.wantQuit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.msg.String(), gotQuit, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := NewInputFrame()

	km.MapKeyToFrame(keyRunes("a"), &frame)
	if !frame.Has(ActionLeft) {
		t.Error("Frame should record left after 'a'")
	}

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, &frame)
	if !frame.Has(ActionLaunch) {
		t.Error("Frame should record launch after space")
	}
	if !frame.Has(ActionLeft) {
		t.Error("Frame should keep earlier actions until cleared")
	}

	// Unknown keys leave the frame untouched
	km.MapKeyToFrame(keyRunes("x"), &frame)
	if frame.Has(ActionNone) {
		t.Error("Unknown keys should not be recorded")
	}
}

func TestInputFrame(t *testing.T) {
	frame := NewInputFrame()

	if frame.Has(ActionLeft) {
		t.Error("New frame should be empty")
	}

	frame.Set(ActionLeft)
	frame.Set(ActionLaunch)
	if !frame.Has(ActionLeft) || !frame.Has(ActionLaunch) {
		t.Error("Set actions should be reported by Has")
	}
	if frame.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}

	frame.Clear()
	if frame.Has(ActionLeft) || frame.Has(ActionLaunch) {
		t.Error("Clear should drop all actions")
	}

	// Frame stays usable after Clear
	frame.Set(ActionRight)
	if !frame.Has(ActionRight) {
		t.Error("Frame should accept actions after Clear")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionLaunch, "Launch"},
		{ActionPause, "Pause"},
		{ActionSave, "Save"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.action, got, tt.want)
		}
	}
}
