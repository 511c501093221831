package selection

// Pure selection state over a fixed catalog: cursor, incremental text
// filter, and double-activate tracking. No I/O; the terminal loop owns
// all mutation.

import (
	"strings"

	"branchout/internal/models"
)

type Direction int

const (
	Up Direction = iota
	Down
)

// Activation is the result of registering an activation gesture.
// Two activations of the same visible item with no intervening cursor
// move or filter edit count as a double activation. The rule is
// positional, not wall-clock based, so behavior is deterministic.
type Activation int

const (
	SingleActivated Activation = iota
	DoubleActivated
)

type Selection struct {
	entries []models.Branch
	query   string
	view    []int // indices into entries matching the query
	cursor  int   // index into view; meaningless when view is empty
	lastAct int   // view index of the last activation, -1 when none
}

// New builds a selection over entries with the cursor placed at the
// catalog index start (the current branch), or 0 when start is out of
// range.
func New(entries []models.Branch, start int) *Selection {
	s := &Selection{
		entries: entries,
		lastAct: -1,
	}
	s.view = make([]int, len(entries))
	for i := range entries {
		s.view[i] = i
	}
	if start >= 0 && start < len(s.view) {
		s.cursor = start
	}
	return s
}

func (s *Selection) Query() string {
	return s.query
}

// SetQuery replaces the filter query and recomputes the visible view
// by case-insensitive substring match on display names. The cursor is
// kept when it still points inside the new view, otherwise clamped to
// 0. A query matching nothing is a valid, stable state.
func (s *Selection) SetQuery(q string) {
	if q == s.query {
		return
	}
	s.query = q
	s.lastAct = -1

	needle := strings.ToLower(q)
	s.view = s.view[:0]
	for i, b := range s.entries {
		if needle == "" || strings.Contains(strings.ToLower(b.DisplayName()), needle) {
			s.view = append(s.view, i)
		}
	}

	if s.cursor >= len(s.view) {
		s.cursor = 0
	}
}

// TypeRune appends one character to the query.
func (s *Selection) TypeRune(r rune) {
	s.SetQuery(s.query + string(r))
}

// Backspace removes the last query character, if any.
func (s *Selection) Backspace() {
	if s.query == "" {
		return
	}
	runes := []rune(s.query)
	s.SetQuery(string(runes[:len(runes)-1]))
}

// Move shifts the cursor one position, wrapping at both ends. A view
// of zero or one items is left untouched.
func (s *Selection) Move(d Direction) {
	n := len(s.view)
	if n <= 1 {
		return
	}
	s.lastAct = -1
	switch d {
	case Down:
		s.cursor = (s.cursor + 1) % n
	case Up:
		s.cursor = (s.cursor - 1 + n) % n
	}
}

// Len reports the size of the filtered view.
func (s *Selection) Len() int {
	return len(s.view)
}

// Cursor returns the cursor position within the filtered view. Only
// meaningful when Len() > 0.
func (s *Selection) Cursor() int {
	return s.cursor
}

// View returns the visible branches in order.
func (s *Selection) View() []models.Branch {
	out := make([]models.Branch, len(s.view))
	for i, idx := range s.view {
		out[i] = s.entries[idx]
	}
	return out
}

// Current returns the branch under the cursor. It reports false when
// the filtered view is empty, in which case no confirmation is
// possible.
func (s *Selection) Current() (models.Branch, bool) {
	if len(s.view) == 0 {
		return models.Branch{}, false
	}
	return s.entries[s.view[s.cursor]], true
}

// ActivateAt moves the cursor to view index i and registers an
// activation there. It reports false for an out-of-range index.
func (s *Selection) ActivateAt(i int) (Activation, bool) {
	if i < 0 || i >= len(s.view) {
		return SingleActivated, false
	}
	s.cursor = i
	act := SingleActivated
	if s.lastAct == i {
		act = DoubleActivated
	}
	s.lastAct = i
	return act, true
}
