package cases

import (
	"fmt"
	"strings"
	"time"

	"github.com/km-arc/learn-di/app/hardware"
	"github.com/km-arc/learn-di/framework/container"
)

const (
	ScreenTitle   hardware.Qualifier = "screen-title"
	ActivityColor hardware.Qualifier = "activity-color"
	ActivityData  hardware.Qualifier = "activity-data"
)

// VirtualData is shared by every screen of one application.
type VirtualData struct {
	Created time.Time
	Serial  int
}

func (d VirtualData) String() string {
	return fmt.Sprintf("VirtualData(created=%s, serial=%d)", hardware.FormatTimestamp(d.Created), d.Serial)
}

// Screen is filled by whichever injector is registered for its name.
type Screen struct {
	name  string
	Title string
	Color string
	Data  VirtualData
}

func NewScreen(name string) *Screen { return &Screen{name: name} }

func (s *Screen) Name() string { return s.name }

func (s *Screen) InjectionPoints() []container.InjectionPoint {
	return []container.InjectionPoint{
		container.Field(&s.Title, ScreenTitle),
		container.Field(&s.Color, ActivityColor),
		container.Field(&s.Data, ActivityData),
	}
}

func (s *Screen) render() string {
	return "Title: " + s.Title + "\nColor: " + s.Color + "\nData: " + s.Data.String() + "\n"
}

// ScreenFactory builds the component that injects one kind of screen.
type ScreenFactory func(app *container.Component) (*container.Component, error)

// Dispatcher injects screens through the factory registered under their
// name in map[string]ScreenFactory.
type Dispatcher struct {
	app       *container.Component
	factories map[string]ScreenFactory
}

func NewDispatcher(app *container.Component) (*Dispatcher, error) {
	factories, err := container.GetMap[ScreenFactory](app)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{app: app, factories: factories}, nil
}

func (d *Dispatcher) Inject(s *Screen) error {
	factory, ok := d.factories[s.name]
	if !ok {
		return fmt.Errorf("cases: no injector for screen %q", s.name)
	}
	c, err := factory(d.app)
	if err != nil {
		return err
	}
	return c.Inject(s)
}

// titledScreen returns a factory for a screen component binding its title.
func titledScreen(name, title string) ScreenFactory {
	def := container.Define(name+"-screen",
		container.Installs(container.NewModule(name+"-title", func(b *container.Binder) {
			container.Provide(b, func() string { return title }).Qualified(ScreenTitle)
		})),
	)
	return func(app *container.Component) (*container.Component, error) {
		return app.NewChildBuilder(def).Build()
	}
}

// screenInjectors contributes one factory per screen name.
var screenInjectors = container.NewModule("screen-injectors", func(b *container.Binder) {
	container.DeclareMap[ScreenFactory](b)
	container.IntoMap(b, "one", func() ScreenFactory { return titledScreen("one", "Screen One") })
	container.IntoMap(b, "two", func() ScreenFactory { return titledScreen("two", "Screen Two") })
})

// activityData is created once per application.
var activityData = container.NewModule("activity-data", func(b *container.Binder) {
	container.Provide2(b, container.Need[time.Time](), container.Need[hardware.Serials](),
		func(now time.Time, serials hardware.Serials) VirtualData {
			return VirtualData{Created: now, Serial: serials()}
		}).Qualified(ActivityData).In(container.Singleton)
})

var dispatchApplication = container.Define("case11-application",
	container.HostsScopes(container.Singleton),
	container.Installs(screenInjectors, activityData),
	container.RequiresInstance[string](ActivityColor),
)

// 11: one application-level map of injector factories keyed by screen name
// builds a subcomponent per screen and injects it.
func runDispatch(env Env) (string, error) {
	b := env.root(dispatchApplication)
	container.BindsInstance(b, env.Showcase.ActivityColor, ActivityColor)
	app, err := b.Build()
	if err != nil {
		return "", err
	}
	dispatcher, err := NewDispatcher(app)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, name := range []string{"one", "two"} {
		s := NewScreen(name)
		if err := dispatcher.Inject(s); err != nil {
			return "", err
		}
		out.WriteString(s.render())
	}
	if err := dispatcher.Inject(NewScreen("three")); err != nil {
		out.WriteString("Screen three: " + err.Error() + "\n")
	}
	return out.String(), nil
}
