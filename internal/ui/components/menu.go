package components

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry of a Menu. Disabled items are skipped by the
// cursor and cannot be activated.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical menu driven by arrow keys, Enter or the item number.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.nextEnabled(-1, 1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// SetDisabled enables or disables item i. The cursor leaves an item that
// becomes disabled.
func (m Menu) SetDisabled(i int, disabled bool) Menu {
	if i < 0 || i >= len(m.Items) {
		return m
	}
	items := make([]MenuItem, len(m.Items))
	copy(items, m.Items)
	items[i].Disabled = disabled
	m.Items = items

	if disabled && m.Selected == i {
		if next := m.nextEnabled(i, 1); next >= 0 {
			m.Selected = next
		} else if prev := m.nextEnabled(i, -1); prev >= 0 {
			m.Selected = prev
		}
	}
	return m
}

// Labels returns the item labels in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label
	}
	return labels
}

// IsDisabled reports whether item i is disabled.
func (m Menu) IsDisabled(i int) bool {
	return i >= 0 && i < len(m.Items) && m.Items[i].Disabled
}

// nextEnabled finds the first enabled item after from in direction dir,
// or -1.
func (m Menu) nextEnabled(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return -1
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if i := m.nextEnabled(m.Selected, -1); i >= 0 {
			m.Selected = i
		}
	case "down", "j":
		if i := m.nextEnabled(m.Selected, 1); i >= 0 {
			m.Selected = i
		}
	case "enter":
		return m, m.activate(m.Selected)
	default:
		// 1-9 jump to and activate the numbered item.
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Items) && !m.Items[n-1].Disabled {
			m.Selected = n - 1
			return m, m.activate(m.Selected)
		}
	}
	return m, nil
}
