package tui

import "fmt"

// SizeMenu lets the player pick the edge length of the next board.
// It opens on game over, or on request during play.
type SizeMenu struct {
	sizes       []int
	cursor      int
	active      bool
	dismissible bool
}

// Open shows the menu with the current size preselected. A dismissible
// menu can be closed without restarting.
func (m *SizeMenu) Open(current, minSize, maxSize int, dismissible bool) {
	m.sizes = m.sizes[:0]
	m.cursor = 0
	for s := minSize; s <= maxSize; s++ {
		if s == current {
			m.cursor = len(m.sizes)
		}
		m.sizes = append(m.sizes, s)
	}
	m.active = len(m.sizes) > 0
	m.dismissible = dismissible
}

// Close hides the menu.
func (m *SizeMenu) Close() {
	m.active = false
}

// Active reports whether the menu is shown.
func (m *SizeMenu) Active() bool {
	return m.active
}

// Dismissible reports whether Back closes the menu.
func (m *SizeMenu) Dismissible() bool {
	return m.dismissible
}

// Up moves the selection to the previous size, wrapping around.
func (m *SizeMenu) Up() {
	if len(m.sizes) == 0 {
		return
	}
	m.cursor = (m.cursor - 1 + len(m.sizes)) % len(m.sizes)
}

// Down moves the selection to the next size, wrapping around.
func (m *SizeMenu) Down() {
	if len(m.sizes) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.sizes)
}

// Selected returns the highlighted size.
func (m *SizeMenu) Selected() int {
	if len(m.sizes) == 0 {
		return 0
	}
	return m.sizes[m.cursor]
}

// Lines returns the menu entries with the selection marked.
func (m *SizeMenu) Lines() []string {
	lines := make([]string, len(m.sizes))
	for i, s := range m.sizes {
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		lines[i] = fmt.Sprintf("%s%dx%dx%d", prefix, s, s, s)
	}
	return lines
}
