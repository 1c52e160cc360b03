package hardware

import (
	"time"

	"github.com/km-arc/learn-di/framework/clock"
	"github.com/km-arc/learn-di/framework/container"
)

// ── Scopes & qualifiers ───────────────────────────────────────────────────────

const (
	// MonitorScope lives as long as one screen component.
	MonitorScope container.Scope = "monitor"
	// ApplicationScope lives as long as the application component.
	ApplicationScope container.Scope = "application"
)

// Qualifier tells apart bindings of the same type.
type Qualifier string

const (
	WindowsComputer  Qualifier = "windows"
	LinuxComputer    Qualifier = "linux"
	BluetoothVersion Qualifier = "bluetooth-version"
	ApplicationName  Qualifier = "application-name"
)

// Implicit registers the constructor-injectable parts: processors need
// nothing but a source of serial numbers.
func Implicit(b *container.Binder) {
	serials := container.Need[Serials]()
	container.Provide1(b, serials, NewCPU)
	container.Bind[CPU](b, container.Need[*GenericCPU]())
	container.Provide1(b, serials, NewIntel)
	container.Provide1(b, serials, NewAMD)
}

// ── Computers ─────────────────────────────────────────────────────────────────

// ComputerModule provides a Windows and a Linux computer, qualified by
// WindowsComputer and LinuxComputer, fitted with SamsungMemory. Both are
// assembled by the bound Assembler.
type ComputerModule struct {
	container.BaseModule
	WindowsPrice int
	LinuxPrice   int
}

func (m *ComputerModule) Name() string { return "computer" }

func (m *ComputerModule) Configure(b *container.Binder) {
	assembler := container.Need[Assembler]().Dependency()
	container.ProvideFunc(b, func(args container.Args) (*Computer, error) {
		return assemble(container.Arg[Assembler](args, 0), NewWindows(m.WindowsPrice).WithMemoryType(SamsungMemory))
	}, assembler).Qualified(WindowsComputer)
	container.ProvideFunc(b, func(args container.Args) (*Computer, error) {
		return assemble(container.Arg[Assembler](args, 0), NewLinux(m.LinuxPrice).WithMemoryType(SamsungMemory))
	}, assembler).Qualified(LinuxComputer)
}

// FixedComputerModule provides one unqualified computer. It carries the
// same module name as ComputerModule, so either satisfies a component that
// requires "computer".
type FixedComputerModule struct {
	container.BaseModule
	OS    OS
	Price int
}

func (m *FixedComputerModule) Name() string { return "computer" }

func (m *FixedComputerModule) Configure(b *container.Binder) {
	container.ProvideFunc(b, func(args container.Args) (*Computer, error) {
		return assemble(container.Arg[Assembler](args, 0), NewComputer(m.OS, m.Price))
	}, container.Need[Assembler]().Dependency())
}

// ── Parts ─────────────────────────────────────────────────────────────────────

// MemoryModule provides unqualified memory of a fixed size.
type MemoryModule struct {
	container.BaseModule
	Size int
}

func (m *MemoryModule) Name() string { return "memory" }

func (m *MemoryModule) Configure(b *container.Binder) {
	container.Provide(b, m.Provide)
}

func (m *MemoryModule) Provide() *Memory { return NewMemory(m.Size, "") }

// VendorMemoryModule provides every stick on offer, qualified by MemoryType.
type VendorMemoryModule struct {
	container.BaseModule
}

func (m *VendorMemoryModule) Name() string { return "vendor-memory" }

func (m *VendorMemoryModule) Configure(b *container.Binder) {
	for _, size := range []int{4096, 8192} {
		for _, vendor := range []Vendor{Kingston, Samsung} {
			t := MemoryType{Size: size, Vendor: vendor}
			container.Provide(b, func() *Memory { return NewMemory(t.Size, t.Vendor) }).Qualified(t)
		}
	}
}

// DiskModule contributes two hard disks and a pair of SSDs to []Disk.
type DiskModule struct {
	container.BaseModule
}

func (m *DiskModule) Name() string { return "disk" }

func (m *DiskModule) Configure(b *container.Binder) {
	container.IntoSet(b, func() Disk { return Disk{Type: HardDisk, Capacity: Small} })
	container.IntoSet(b, func() Disk { return Disk{Type: HardDisk, Capacity: Huge} })
	container.ElementsIntoSet(b, func() []Disk {
		return []Disk{{Type: SSD, Capacity: Small}, {Type: SSD, Capacity: Normal}}
	})
}

// DiskSetModule declares []Disk, so a component without disks still has one.
type DiskSetModule struct {
	container.BaseModule
}

func (m *DiskSetModule) Name() string { return "disk-set" }

func (m *DiskSetModule) Configure(b *container.Binder) { container.DeclareSet[Disk](b) }

// DeviceModule contributes a mouse, a keyboard and a sound card to
// map[string]Device. With Bluetooth set it also installs BluetoothModule.
type DeviceModule struct {
	Bluetooth bool
}

func (m *DeviceModule) Name() string { return "device" }

func (m *DeviceModule) Configure(b *container.Binder) {
	container.IntoMap(b, "Mouse", func() Device { return Mouse{} })
	container.IntoMap(b, "Keyboard", func() Device { return Keyboard{} })
	container.IntoMap(b, "Sound", func() Device { return Sound{} })
}

func (m *DeviceModule) Includes() []container.Module {
	if m.Bluetooth {
		return []container.Module{&BluetoothModule{}}
	}
	return nil
}

// DeviceMapModule declares map[string]Device.
type DeviceMapModule struct {
	container.BaseModule
}

func (m *DeviceMapModule) Name() string { return "device-map" }

func (m *DeviceMapModule) Configure(b *container.Binder) { container.DeclareMap[Device](b) }

// BluetoothModule builds the adapter from a version bound under BluetoothVersion.
type BluetoothModule struct {
	container.BaseModule
}

func (m *BluetoothModule) Name() string { return "bluetooth" }

func (m *BluetoothModule) Configure(b *container.Binder) {
	container.Provide1(b, container.Need[string](BluetoothVersion), NewBluetooth)
}

// ── Processors ────────────────────────────────────────────────────────────────

// IntelCPUModule binds CPU to the implicit *Intel.
type IntelCPUModule struct {
	container.BaseModule
}

func (m *IntelCPUModule) Name() string { return "intel-cpu" }

func (m *IntelCPUModule) Configure(b *container.Binder) {
	container.Bind[CPU](b, container.Need[*Intel]())
}

// AMDCPUModule binds CPU to the implicit *AMD.
type AMDCPUModule struct {
	container.BaseModule
}

func (m *AMDCPUModule) Name() string { return "amd-cpu" }

func (m *AMDCPUModule) Configure(b *container.Binder) {
	container.Bind[CPU](b, container.Need[*AMD]())
}

// CPUModule provides an Intel processor directly.
type CPUModule struct {
	container.BaseModule
}

func (m *CPUModule) Name() string { return "cpu" }

func (m *CPUModule) Configure(b *container.Binder) {
	container.Provide1(b, container.Need[Serials](), func(s Serials) CPU { return NewIntel(s) })
}

// SerialModule binds the serial number source.
type SerialModule struct {
	container.BaseModule
	Serials Serials
}

func (m *SerialModule) Name() string { return "serials" }

func (m *SerialModule) Configure(b *container.Binder) {
	serials := m.Serials
	if serials == nil {
		serials = RandomSerials()
	}
	container.BindInstance(b, serials)
}

// ── Screens & application ─────────────────────────────────────────────────────

// MonitorModule provides one Monitor per MonitorScope host, drawing on Display.
type MonitorModule struct {
	container.BaseModule
	Display *Display
}

func (m *MonitorModule) Name() string { return "monitor" }

func (m *MonitorModule) Configure(b *container.Binder) {
	display := m.Display
	container.Provide(b, func() *Monitor { return NewMonitor(display) }).In(MonitorScope)
}

// TimestampModule provides the current time, read afresh on every request.
type TimestampModule struct {
	container.BaseModule
	Clock clock.Clock
}

func (m *TimestampModule) Name() string { return "timestamp" }

func (m *TimestampModule) Configure(b *container.Binder) {
	container.Provide(b, m.Provide)
}

func (m *TimestampModule) Provide() time.Time {
	if m.Clock == nil {
		return time.Now()
	}
	return m.Clock()
}

// ApplicationModule provides the application name for the whole
// ApplicationScope, and contributes a spare SSD and sound card that every
// computer built below the application receives.
type ApplicationModule struct {
	container.BaseModule
	AppName string
}

func (m *ApplicationModule) Name() string { return "application" }

func (m *ApplicationModule) Configure(b *container.Binder) {
	name := m.AppName
	container.Provide(b, func() string { return name }).Qualified(ApplicationName).In(ApplicationScope)
	container.IntoSet(b, func() Disk { return Disk{Type: SSD, Capacity: Huge} })
	container.IntoMap(b, "Spare Sound", func() Device { return Sound{} })
}

// ApplicationComponent hosts singletons and the application scope.
var ApplicationComponent = container.Define("application",
	container.HostsScopes(container.Singleton, ApplicationScope),
	container.Implicit(Implicit),
)
