package history

import "github.com/atomicstack/tilegrid/internal/logging/events"

// Manager owns the undo and redo stacks and mediates all command execution.
type Manager struct {
	undo      []*Command
	redo      []*Command
	limit     int
	executed  int
	discarded int
}

// Option customises a Manager.
type Option func(*Manager)

// WithLimit caps the undo stack depth. Zero or negative means unlimited.
// Entries dropped by the cap count as discarded.
func WithLimit(n int) Option {
	return func(m *Manager) {
		if n < 0 {
			n = 0
		}
		m.limit = n
	}
}

// New returns an empty history.
func New(opts ...Option) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Execute runs cmd, pushes it onto the undo stack and drops any pending redo
// history. Commands that were already executed are ignored.
func (m *Manager) Execute(cmd *Command) bool {
	if cmd == nil || !cmd.Apply(Execute) {
		return false
	}
	m.executed++
	m.undo = append(m.undo, cmd)
	if n := len(m.redo); n > 0 {
		m.discarded += n
		m.redo = nil
		events.History.Discard(n)
	}
	m.trim()
	events.History.Execute(cmd.Kind().String(), cmd.Description(), len(m.undo))
	return true
}

// Undo reverts the most recently done command. It reports false when there
// is nothing to undo.
func (m *Manager) Undo() bool {
	n := len(m.undo)
	if n == 0 {
		events.History.Empty("undo")
		return false
	}
	cmd := m.undo[n-1]
	m.undo[n-1] = nil
	m.undo = m.undo[:n-1]
	cmd.Apply(Undo)
	m.redo = append(m.redo, cmd)
	events.History.Undo(cmd.Kind().String(), cmd.Description(), len(m.redo))
	return true
}

// Redo re-applies the most recently undone command. It reports false when
// there is nothing to redo.
func (m *Manager) Redo() bool {
	n := len(m.redo)
	if n == 0 {
		events.History.Empty("redo")
		return false
	}
	cmd := m.redo[n-1]
	m.redo[n-1] = nil
	m.redo = m.redo[:n-1]
	cmd.Apply(Redo)
	m.undo = append(m.undo, cmd)
	events.History.Redo(cmd.Kind().String(), cmd.Description(), len(m.undo))
	return true
}

func (m *Manager) trim() {
	if m.limit <= 0 || len(m.undo) <= m.limit {
		return
	}
	excess := len(m.undo) - m.limit
	for i := 0; i < excess; i++ {
		m.undo[i] = nil
	}
	m.undo = append([]*Command(nil), m.undo[excess:]...)
	m.discarded += excess
	events.History.Trim(excess, m.limit)
}

// CanUndo reports whether Undo would do anything.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// UndoLen returns the depth of the undo stack.
func (m *Manager) UndoLen() int { return len(m.undo) }

// RedoLen returns the depth of the redo stack.
func (m *Manager) RedoLen() int { return len(m.redo) }

// Executed returns the number of commands ever executed.
func (m *Manager) Executed() int { return m.executed }

// Discarded returns the number of commands permanently dropped, either by a
// fresh action clearing the redo stack or by the depth limit.
func (m *Manager) Discarded() int { return m.discarded }

// Limit returns the configured undo depth, zero when unlimited.
func (m *Manager) Limit() int { return m.limit }

// PeekUndo returns the command Undo would revert, or nil.
func (m *Manager) PeekUndo() *Command {
	if len(m.undo) == 0 {
		return nil
	}
	return m.undo[len(m.undo)-1]
}

// PeekRedo returns the command Redo would re-apply, or nil.
func (m *Manager) PeekRedo() *Command {
	if len(m.redo) == 0 {
		return nil
	}
	return m.redo[len(m.redo)-1]
}

// Entry is a history listing row.
type Entry struct {
	Command *Command
	Undone  bool
}

// Entries lists done commands oldest first followed by undone commands in
// the order Redo would re-apply them.
func (m *Manager) Entries() []Entry {
	out := make([]Entry, 0, len(m.undo)+len(m.redo))
	for _, cmd := range m.undo {
		out = append(out, Entry{Command: cmd})
	}
	for i := len(m.redo) - 1; i >= 0; i-- {
		out = append(out, Entry{Command: m.redo[i], Undone: true})
	}
	return out
}
