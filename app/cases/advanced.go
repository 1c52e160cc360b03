package cases

import (
	"fmt"
	"strings"

	"github.com/km-arc/learn-di/app/hardware"
	"github.com/km-arc/learn-di/framework/container"
)

// 06: computers are built on first use, timestamps on every refresh, and
// the component hands out CPUs directly, lazily or through a provider.
func runLazy(env Env) (string, error) {
	parts := container.Define("case06-computer",
		container.Installs(&hardware.VendorMemoryModule{}),
		container.Implicit(hardware.Implicit),
	)
	c, err := dualComputerComponent(env, "case06-screen", env.parts(parts))
	if err != nil {
		return "", err
	}

	s := &lazyScreen{}
	if err := container.MembersInjectorFor[*lazyScreen](c).InjectMembers(s); err != nil {
		return "", err
	}

	var b strings.Builder
	computer, err := s.pick(env.now())
	if err != nil {
		return "", err
	}
	computer.Execute(&b)
	if err := s.refresh(&b, 3); err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "Windows built: %t, Linux built: %t\n", s.Windows.Resolved(), s.Linux.Resolved())

	cpu, err := container.Get[hardware.CPU](c)
	if err != nil {
		return "", err
	}
	b.WriteString("getCPU: " + cpuLine(cpu))

	lazy, err := container.GetLazy[hardware.CPU](c)
	if err != nil {
		return "", err
	}
	b.WriteString("getLazyCPU: " + cpuLine(lazy.MustGet()))
	b.WriteString("getLazyCPU again: " + cpuLine(lazy.MustGet()))

	provider, err := container.GetProvider[hardware.CPU](c)
	if err != nil {
		return "", err
	}
	b.WriteString("getProviderCPU: " + cpuLine(provider.MustGet()))
	b.WriteString("getProviderCPU again: " + cpuLine(provider.MustGet()))

	again, err := container.InjectAndReturn(c, &lazyScreen{})
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "injectAndReturn gives fresh lazies: %t\n", again.Windows != s.Windows)
	return b.String(), nil
}

// 07: the screen component hosts MonitorScope, so it owns exactly one
// monitor; the application name comes from the application component.
func runScope(env Env) (string, error) {
	if env.Application == nil {
		return "", errNoApplication
	}
	parts := container.Define("case07-computer",
		container.Installs(&hardware.VendorMemoryModule{}),
		container.Implicit(hardware.Implicit),
	)
	display := hardware.NewDisplay("case07")
	c, err := dualComputerComponent(env, "case07-screen", env.parts(parts), &hardware.MonitorModule{Display: display})
	if err != nil {
		return "", err
	}

	s, err := container.InjectAndReturn(c, &lazyScreen{})
	if err != nil {
		return "", err
	}
	monitor, err := container.Get[*hardware.Monitor](c)
	if err != nil {
		return "", err
	}
	computer, err := s.pick(env.now())
	if err != nil {
		return "", err
	}
	monitor.Show(computer)
	for range 3 {
		container.MustGet[*hardware.Monitor](c).StartRefresh(s.Timestamp.MustGet())
	}

	name, err := container.Get[string](env.Application, hardware.ApplicationName)
	if err != nil {
		return "", err
	}
	same := container.MustGet[*hardware.Monitor](c) == monitor
	return fmt.Sprintf("%s%s\nSame monitor: %t\nApp: %s\n", display.Text(), monitor.Info(), same, name), nil
}

// 08: computers receive every disk contributed to []Disk and every device
// contributed to map[string]Device.
func runMultibindings(env Env) (string, error) {
	parts := container.Define("case08-computer",
		container.Installs(&hardware.VendorMemoryModule{}, &hardware.DiskModule{}, &hardware.DeviceModule{}),
		container.Implicit(hardware.Implicit),
	)
	c, err := dualComputerComponent(env, "case08-screen", env.parts(parts))
	if err != nil {
		return "", err
	}

	s, err := container.InjectAndReturn(c, &dualScreen{})
	if err != nil {
		return "", err
	}
	return s.render(), nil
}
