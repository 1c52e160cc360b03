package hardware

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FormatTimestamp renders a timestamp the way screens print it.
func FormatTimestamp(t time.Time) string { return t.Format(time.UnixDate) }

// Display is a text surface. Safe for concurrent use.
type Display struct {
	mu   sync.Mutex
	name string
	text string
}

func NewDisplay(name string) *Display { return &Display{name: name} }

func (d *Display) Name() string { return d.name }

func (d *Display) SetText(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text = s
}

func (d *Display) AppendText(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text += s
}

func (d *Display) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.text
}

// Monitor shows computers on a display.
type Monitor struct {
	id      uuid.UUID
	display *Display
}

func NewMonitor(display *Display) *Monitor {
	return &Monitor{id: uuid.New(), display: display}
}

func (m *Monitor) ID() uuid.UUID { return m.id }

func (m *Monitor) Display() *Display { return m.display }

// Show replaces the display content with the computer's report.
func (m *Monitor) Show(c *Computer) {
	m.display.SetText(c.Render())
}

// StartRefresh appends one refresh line.
func (m *Monitor) StartRefresh(t time.Time) {
	m.display.AppendText(FormatTimestamp(t) + "\n")
}

func (m *Monitor) Info() string {
	var b strings.Builder
	b.WriteString("Monitor: " + m.id.String() + "\n")
	b.WriteString("Display: " + m.display.Name())
	return b.String()
}
