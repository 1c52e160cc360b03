package cases

import (
	"fmt"
	"strings"

	"github.com/km-arc/learn-di/app/hardware"
	"github.com/km-arc/learn-di/framework/container"
)

// computerParts is the full parts list: vendor memory, declared and
// contributed disks and devices, bluetooth and an Intel processor. The
// bluetooth version must be bound on the builder.
func computerParts(name string) *container.Definition {
	return container.Define(name,
		container.Installs(
			&hardware.VendorMemoryModule{},
			&hardware.DiskSetModule{}, &hardware.DiskModule{},
			&hardware.DeviceMapModule{}, &hardware.DeviceModule{Bluetooth: true},
			&hardware.IntelCPUModule{},
		),
		container.RequiresInstance[string](hardware.BluetoothVersion),
		container.Implicit(hardware.Implicit),
	)
}

// 09: the parts builder takes the bluetooth version as a bound instance,
// the processor is chosen by delegation and empty aggregates are legal once
// declared.
func runBuilder(env Env) (string, error) {
	parts := computerParts("case09-computer")
	partsFor := func() (*container.Component, error) {
		b := env.root(parts)
		container.BindsInstance(b, env.Showcase.BluetoothVersion, hardware.BluetoothVersion)
		return b.Build()
	}

	display := hardware.NewDisplay("case09")
	screenDef := container.Define("case09-screen",
		container.HostsScopes(hardware.MonitorScope),
		container.Installs(&hardware.AMDCPUModule{}),
		container.RequiresModules("computer", "monitor"),
		container.Implicit(hardware.Implicit),
	)
	b := env.root(screenDef).
		Module(&hardware.ComputerModule{WindowsPrice: env.Showcase.WindowsPrice, LinuxPrice: env.Showcase.LinuxPrice}).
		Module(&hardware.MonitorModule{Display: display})
	container.BindsInstance(b, hardware.ComponentAssembler(partsFor))
	c, err := b.Build()
	if err != nil {
		return "", err
	}

	s, err := container.InjectAndReturn(c, &dualScreen{})
	if err != nil {
		return "", err
	}
	monitor, err := container.Get[*hardware.Monitor](c)
	if err != nil {
		return "", err
	}
	monitor.Show(s.Windows)

	var out strings.Builder
	out.WriteString(display.Text())

	cpu, err := container.Get[hardware.CPU](c)
	if err != nil {
		return "", err
	}
	out.WriteString("getCPU: " + cpuLine(cpu))

	p, err := partsFor()
	if err != nil {
		return "", err
	}
	bt, err := container.Get[*hardware.Bluetooth](p)
	if err != nil {
		return "", err
	}
	out.WriteString("getBluetooth: ")
	bt.Info(&out)

	declared, err := container.Define("case09-declared",
		container.Installs(&hardware.DiskSetModule{}, &hardware.DeviceMapModule{}),
	).Builder().Strict(true).Build()
	if err != nil {
		return "", err
	}
	disks, err := container.GetSet[hardware.Disk](declared)
	if err != nil {
		return "", err
	}
	devices, err := container.GetMap[hardware.Device](declared)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&out, "Declared without contributions: %d disks, %d devices\n", len(disks), len(devices))
	return out.String(), nil
}

// 10: the screen and every computer's parts are subcomponents of the
// application. Parts see the application's spare SSD and sound card, and
// the screen reads the application-scoped name.
func runSubcomponents(env Env) (string, error) {
	app := env.Application
	if app == nil {
		return "", errNoApplication
	}

	parts := computerParts("case10-computer")
	partsFor := func() (*container.Component, error) {
		b := app.NewChildBuilder(parts)
		container.BindsInstance(b, env.Showcase.BluetoothVersion, hardware.BluetoothVersion)
		return b.Build()
	}

	display := hardware.NewDisplay("case10")
	screenDef := container.Define("case10-screen",
		container.HostsScopes(hardware.MonitorScope),
		container.Installs(&hardware.AMDCPUModule{}),
		container.RequiresModules("computer", "monitor"),
	)
	b := app.NewChildBuilder(screenDef).
		Module(&hardware.ComputerModule{WindowsPrice: env.Showcase.WindowsPrice, LinuxPrice: env.Showcase.LinuxPrice}).
		Module(&hardware.MonitorModule{Display: display})
	container.BindsInstance(b, hardware.ComponentAssembler(partsFor))
	c, err := b.Build()
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
	monitor.StartRefresh(s.Timestamp.MustGet())

	cpu, err := container.Get[hardware.CPU](c)
	if err != nil {
		return "", err
	}
	name, err := container.Get[string](c, hardware.ApplicationName)
	if err != nil {
		return "", err
	}
	return display.Text() + "getCPU: " + cpuLine(cpu) + "App: " + name + "\n", nil
}
