// Package cases walks through dependency injection one step at a time. Each
// case renders the text a screen would show, starting from hand-wired
// objects and ending with subcomponents and a dispatching injector.
package cases

import (
	"errors"
	"strings"
	"time"

	"github.com/km-arc/learn-di/app/hardware"
	"github.com/km-arc/learn-di/framework/clock"
	"github.com/km-arc/learn-di/framework/config"
	"github.com/km-arc/learn-di/framework/container"
)

// Env is what every case runs with.
type Env struct {
	// Application is the long-lived application component, built from
	// hardware.ApplicationComponent with ApplicationModules.
	Application *container.Component
	Clock       clock.Clock
	Serials     hardware.Serials
	Showcase    config.ShowcaseConfig
}

// Case is one step of the walkthrough.
type Case struct {
	ID    string
	Title string
	Run   func(env Env) (string, error)
}

var all = []Case{
	{ID: "01", Title: "Manual injection", Run: runManual},
	{ID: "02", Title: "Factory functions and members injector", Run: runFactories},
	{ID: "03", Title: "Modules wired by hand", Run: runModules},
	{ID: "04", Title: "Component, builder and required module", Run: runComponent},
	{ID: "05", Title: "Qualifiers", Run: runQualifiers},
	{ID: "06", Title: "Lazy, Provider and component accessors", Run: runLazy},
	{ID: "07", Title: "Scopes", Run: runScope},
	{ID: "08", Title: "Set and map multibindings", Run: runMultibindings},
	{ID: "09", Title: "Custom builder, bound instance and delegation", Run: runBuilder},
	{ID: "10", Title: "Subcomponents", Run: runSubcomponents},
	{ID: "11", Title: "Dispatching injector", Run: runDispatch},
}

// All returns every case in order.
func All() []Case {
	out := make([]Case, len(all))
	copy(out, all)
	return out
}

// Find returns the case with the given id.
func Find(id string) (Case, bool) {
	for _, c := range all {
		if c.ID == id {
			return c, true
		}
	}
	return Case{}, false
}

// ApplicationModules are the modules the application component needs for
// every case to run under it.
func ApplicationModules(name string, clk clock.Clock, serials hardware.Serials) []container.Module {
	return []container.Module{
		&hardware.ApplicationModule{AppName: name},
		&hardware.TimestampModule{Clock: clk},
		&hardware.SerialModule{Serials: serials},
	}
}

var errNoApplication = errors.New("cases: no application component")

// ── env helpers ──────────────────────────────────────────────────────────────

func (e Env) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock()
}

func (e Env) serials() hardware.Serials {
	if e.Serials == nil {
		return hardware.RandomSerials()
	}
	return e.Serials
}

// root returns a strict builder for a standalone component carrying the
// env's serials and clock.
func (e Env) root(def *container.Definition) *container.Builder {
	return def.Builder().
		Module(&hardware.SerialModule{Serials: e.serials()}).
		Module(&hardware.TimestampModule{Clock: e.Clock}).
		Strict(true)
}

// parts returns a function building a standalone parts component from def.
func (e Env) parts(def *container.Definition) func() (*container.Component, error) {
	return func() (*container.Component, error) { return e.root(def).Build() }
}

// ── screens ──────────────────────────────────────────────────────────────────

// screen shows one computer under a timestamp.
type screen struct {
	Computer  *hardware.Computer
	Timestamp time.Time
}

func (s *screen) InjectionPoints() []container.InjectionPoint {
	return []container.InjectionPoint{
		container.Field(&s.Computer),
		container.Field(&s.Timestamp),
	}
}

func (s *screen) render() string {
	return hardware.FormatTimestamp(s.Timestamp) + "\n" + s.Computer.Render()
}

// dualScreen shows a Windows and a Linux computer.
type dualScreen struct {
	Windows   *hardware.Computer
	Linux     *hardware.Computer
	Timestamp time.Time
}

func (s *dualScreen) InjectionPoints() []container.InjectionPoint {
	return []container.InjectionPoint{
		container.Field(&s.Windows, hardware.WindowsComputer),
		container.Field(&s.Linux, hardware.LinuxComputer),
		container.Field(&s.Timestamp),
	}
}

func (s *dualScreen) render() string {
	return hardware.FormatTimestamp(s.Timestamp) + "\n" + s.Windows.Render() + s.Linux.Render()
}

// lazyScreen builds computers only when one is shown and reads the time on
// every refresh.
type lazyScreen struct {
	Windows   *container.Lazy[*hardware.Computer]
	Linux     *container.Lazy[*hardware.Computer]
	Timestamp *container.Provider[time.Time]
}

func (s *lazyScreen) InjectionPoints() []container.InjectionPoint {
	return []container.InjectionPoint{
		container.Inject(&s.Windows, container.NeedLazy[*hardware.Computer](hardware.WindowsComputer)),
		container.Inject(&s.Linux, container.NeedLazy[*hardware.Computer](hardware.LinuxComputer)),
		container.Inject(&s.Timestamp, container.NeedProvider[time.Time]()),
	}
}

// pick chooses the computer by the parity of the current millisecond.
func (s *lazyScreen) pick(now time.Time) (*hardware.Computer, error) {
	if now.UnixMilli()%2 == 0 {
		return s.Linux.Get()
	}
	return s.Windows.Get()
}

// refresh appends n timestamps read from the provider.
func (s *lazyScreen) refresh(b *strings.Builder, n int) error {
	for range n {
		t, err := s.Timestamp.Get()
		if err != nil {
			return err
		}
		b.WriteString(hardware.FormatTimestamp(t) + "\n")
	}
	return nil
}

func cpuLine(cpu hardware.CPU) string {
	var b strings.Builder
	cpu.Execute(&b)
	return b.String()
}
