package cases

import (
	"fmt"

	"github.com/km-arc/learn-di/app/hardware"
	"github.com/km-arc/learn-di/framework/container"
)

// 01: every dependency is created and assigned by hand.
func runManual(env Env) (string, error) {
	computer := hardware.NewWindows(env.Showcase.WindowsPrice)
	computer.CPU = hardware.NewCPU(env.serials())
	computer.Memory = hardware.NewMemory(env.Showcase.MemorySize, "")
	return computer.Render(), nil
}

// 02: constructors become factories registered with the container, and a
// members injector fills the screen.
func runFactories(env Env) (string, error) {
	price, size := env.Showcase.WindowsPrice, env.Showcase.MemorySize
	def := container.Define("case02-screen",
		container.Implicit(hardware.Implicit),
		container.Implicit(func(b *container.Binder) {
			container.Provide1(b, container.Need[hardware.CPU](), func(cpu hardware.CPU) *hardware.Computer {
				c := hardware.NewWindows(price)
				c.CPU = cpu
				c.Memory = hardware.NewMemory(size, "")
				return c
			})
		}),
	)
	c, err := env.root(def).Build()
	if err != nil {
		return "", err
	}

	s := &screen{}
	if err := container.MembersInjectorFor[*screen](c).InjectMembers(s); err != nil {
		return "", err
	}
	return s.render(), nil
}

// 03: values come from module provide functions, still called by hand.
func runModules(env Env) (string, error) {
	memory := (&hardware.MemoryModule{Size: env.Showcase.MemorySize}).Provide()
	timestamp := (&hardware.TimestampModule{Clock: env.Clock}).Provide()

	computer := hardware.NewWindows(env.Showcase.WindowsPrice)
	computer.CPU = hardware.NewCPU(env.serials())
	computer.Memory = memory

	s := &screen{Computer: computer, Timestamp: timestamp}
	return s.render(), nil
}

// 04: a component built from a definition. The screen component requires a
// computer module; every computer assembles itself from a parts component.
func runComponent(env Env) (string, error) {
	parts := container.Define("case04-computer", container.Implicit(hardware.Implicit))
	screenDef := container.Define("case04-screen",
		container.RequiresModules("computer"),
		container.RequiresInstance[hardware.Assembler](),
	)

	assembler := hardware.ComponentAssembler(func() (*container.Component, error) {
		return env.root(parts).Module(&hardware.MemoryModule{Size: env.Showcase.MemorySize}).Build()
	})
	b := env.root(screenDef).Module(&hardware.FixedComputerModule{OS: hardware.Windows, Price: env.Showcase.WindowsPrice})
	container.BindsInstance(b, assembler)
	c, err := b.Build()
	if err != nil {
		return "", err
	}

	s, err := container.InjectAndReturn(c, &screen{})
	if err != nil {
		return "", err
	}

	incomplete := env.root(screenDef)
	container.BindsInstance(incomplete, assembler)
	_, missing := incomplete.Build()
	return s.render() + fmt.Sprintf("Without a computer module: %v\n", missing), nil
}

// 05: two computers of the same type told apart by qualifiers, each fitted
// with memory chosen by a MemoryType qualifier.
func runQualifiers(env Env) (string, error) {
	parts := container.Define("case05-computer",
		container.Installs(&hardware.VendorMemoryModule{}),
		container.Implicit(hardware.Implicit),
	)
	c, err := dualComputerComponent(env, "case05-screen", env.parts(parts))
	if err != nil {
		return "", err
	}

	s, err := container.InjectAndReturn(c, &dualScreen{})
	if err != nil {
		return "", err
	}
	return s.render(), nil
}

// dualComputerComponent builds a screen component providing qualified
// Windows and Linux computers, each assembled from a fresh parts component.
func dualComputerComponent(env Env, name string, parts func() (*container.Component, error), modules ...container.Module) (*container.Component, error) {
	screenDef := container.Define(name,
		container.HostsScopes(hardware.MonitorScope),
		container.RequiresModules("computer"),
		container.Implicit(hardware.Implicit),
	)
	b := env.root(screenDef).Module(&hardware.ComputerModule{
		WindowsPrice: env.Showcase.WindowsPrice,
		LinuxPrice:   env.Showcase.LinuxPrice,
	})
	for _, m := range modules {
		b.Module(m)
	}
	container.BindsInstance(b, hardware.ComponentAssembler(parts))
	return b.Build()
}
