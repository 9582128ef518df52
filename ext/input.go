// Package ext provides widget extensions layered on top of the core
// Parent/Text/Grid variant sum: an editable input buffer, a selection
// list, and a glob-based name-path search helper. None of these
// are core variants — each is a thin client built from ordinary Text/Parent
// widgets plus a Key hook, the same way an application author would build
// one.
package ext

import (
	"github.com/atotto/clipboard"

	tuih "github.com/hfridholm/tui.h"
)

// Input is an editable single-line text buffer backed by a Text widget. It
// supports cursor movement, insertion/deletion, and clipboard paste/yank
// via github.com/atotto/clipboard.
type Input struct {
	Widget *tuih.Widget

	runes  []rune
	cursor int
}

// NewInput creates an Input and appends its underlying Text widget to
// parent.
func NewInput(parent *tuih.Widget, name string) *Input {
	in := &Input{}
	in.Widget = tuih.NewText(tuih.TextConfig{
		WidgetConfig: tuih.WidgetConfig{
			Name:       name,
			IsInteract: true,
			WGrow:      true,
		},
	})
	in.Widget.Hooks.Key = in.handleKey
	parent.AddChild(in.Widget)
	return in
}

// Text returns the current buffer contents.
func (in *Input) Text() string {
	return string(in.runes)
}

func (in *Input) handleKey(w *tuih.Widget, key tuih.Key) bool {
	switch key {
	case tuih.KeyLeft:
		if in.cursor > 0 {
			in.cursor--
		}
		return true
	case tuih.KeyRight:
		if in.cursor < len(in.runes) {
			in.cursor++
		}
		return true
	case tuih.KeyBackspace:
		if in.cursor > 0 {
			in.runes = append(in.runes[:in.cursor-1], in.runes[in.cursor:]...)
			in.cursor--
			in.sync()
		}
		return true
	}

	// Ctrl-U yanks the whole buffer to the system clipboard; Ctrl-Y pastes
	// from it. There is no dedicated Key constant for either; they are
	// matched as Key values equal to their raw control codes (21 and 25),
	// which are not printable. Neither bundled backend (TcellBackend,
	// TermBackend) decodes those control codes into keys.
	switch int(key) {
	case 21: // Ctrl-U
		clipboard.WriteAll(in.Text())
		return true
	case 25: // Ctrl-Y
		if s, err := clipboard.ReadAll(); err == nil {
			in.insert([]rune(s))
		}
		return true
	}

	if key.IsPrintable() {
		in.insert([]rune{rune(key)})
		return true
	}

	return false
}

func (in *Input) insert(text []rune) {
	head := append([]rune{}, in.runes[:in.cursor]...)
	head = append(head, text...)
	in.runes = append(head, in.runes[in.cursor:]...)
	in.cursor += len(text)
	in.sync()
}

func (in *Input) sync() {
	in.Widget.SetText(in.Text())
}
