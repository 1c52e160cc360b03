package hardware_test

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/learn-di/app/hardware"
	"github.com/km-arc/learn-di/framework/clock"
	"github.com/km-arc/learn-di/framework/container"
)

// ── helpers ──────────────────────────────────────────────────────────────────

var parts = container.Define("parts",
	container.HostsScopes(container.Singleton, hardware.MonitorScope),
	container.Implicit(hardware.Implicit),
)

func buildParts(t *testing.T, modules ...container.Module) *container.Component {
	t.Helper()
	b := parts.Builder().Module(&hardware.SerialModule{Serials: hardware.SequentialSerials(1)})
	for _, m := range modules {
		b.Module(m)
	}
	container.BindsInstance(b, "2.3", hardware.BluetoothVersion)
	c, err := b.Strict(true).Build()
	require.NoError(t, err)
	return c
}

// ── Parts ────────────────────────────────────────────────────────────────────

func TestCPU_Execute(t *testing.T) {
	serials := hardware.SequentialSerials(7)
	tests := []struct {
		cpu  hardware.CPU
		want string
	}{
		{hardware.NewCPU(serials), "CPU Id: 7\n"},
		{hardware.NewIntel(serials), "Intel's CPU Id: 8\n"},
		{hardware.NewAMD(serials), "AMD's CPU Id: 9\n"},
	}
	for _, tt := range tests {
		var b strings.Builder
		tt.cpu.Execute(&b)
		assert.Equal(t, tt.want, b.String())
	}
}

func TestSequentialSerials_Concurrent(t *testing.T) {
	serials := hardware.SequentialSerials(1)
	seen := sync.Map{}
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, dup := seen.LoadOrStore(serials(), true)
			assert.False(t, dup)
		}()
	}
	wg.Wait()
}

func TestMemory_Execute(t *testing.T) {
	var b strings.Builder
	hardware.NewMemory(8192, "").Execute(&b)
	hardware.NewMemory(4096, hardware.Samsung).Execute(&b)
	assert.Equal(t, "Memory Size: 8192MB\nMemory Vendor: Samsung\nMemory Size: 4096MB\n", b.String())
}

func TestDiskAndDevices(t *testing.T) {
	var b strings.Builder
	hardware.Disk{Type: hardware.SSD, Capacity: hardware.Huge}.Mount(&b)
	hardware.Mouse{}.Connect(&b)
	hardware.Keyboard{}.Connect(&b)
	hardware.Sound{}.Connect(&b)
	hardware.NewBluetooth("5.0").Info(&b)
	assert.Equal(t, "1024G SSD mounted\nmove\npress\nplay\nBluetooth Version: 5.0\n", b.String())
}

// ── Computer ─────────────────────────────────────────────────────────────────

func TestComputer_ExecuteByHand(t *testing.T) {
	c := hardware.NewWindows(6666)
	c.CPU = hardware.NewCPU(hardware.SequentialSerials(42))
	c.Memory = hardware.NewMemory(8192, "")

	assert.Equal(t,
		"Computer OS: Windows\nComputer Price: 6666\nCPU Id: 42\nMemory Size: 8192MB\n",
		c.Render())
}

func TestComputer_NoCPU(t *testing.T) {
	assert.Contains(t, hardware.NewLinux(1).Render(), "None CPU exist!\n")
}

func TestComputer_InjectedFullyLoaded(t *testing.T) {
	c := buildParts(t,
		&hardware.VendorMemoryModule{},
		&hardware.DiskSetModule{}, &hardware.DiskModule{},
		&hardware.DeviceMapModule{}, &hardware.DeviceModule{Bluetooth: true},
		&hardware.IntelCPUModule{},
	)

	computer := hardware.NewLinux(8888).WithMemoryType(hardware.SamsungMemory)
	require.NoError(t, c.Inject(computer))

	assert.Equal(t, strings.Join([]string{
		"Computer OS: Linux",
		"Computer Price: 8888",
		"Intel's CPU Id: 1",
		"Memory Vendor: Samsung",
		"Memory Size: 4096MB",
		"256G HARD mounted",
		"1024G HARD mounted",
		"256G SSD mounted",
		"512G SSD mounted",
		"Mouse: move",
		"Keyboard: press",
		"Sound: play",
		"Bluetooth Version: 2.3",
		"",
	}, "\n"), computer.Render())
}

func TestComputer_OptionalPartsAbsent(t *testing.T) {
	c := buildParts(t, &hardware.MemoryModule{Size: 8192})

	computer := hardware.NewWindows(6666)
	require.NoError(t, c.Inject(computer))

	assert.False(t, computer.Disks.Present())
	assert.False(t, computer.Bluetooth.Present())
	assert.Equal(t, "Computer OS: Windows\nComputer Price: 6666\nCPU Id: 1\nMemory Size: 8192MB\n", computer.Render())
}

func TestComputer_DeclaredSetsAreEmptyNotAbsent(t *testing.T) {
	c := buildParts(t, &hardware.MemoryModule{Size: 1}, &hardware.DiskSetModule{}, &hardware.DeviceMapModule{})

	computer := hardware.NewWindows(1)
	require.NoError(t, c.Inject(computer))

	disks, ok := computer.Disks.Get()
	assert.True(t, ok)
	assert.Empty(t, disks)
}

func TestComputerModule_AssemblesBothQualifiedComputers(t *testing.T) {
	partsFor := func() (*container.Component, error) {
		return parts.Builder().
			Module(&hardware.SerialModule{Serials: hardware.SequentialSerials(100)}).
			Module(&hardware.VendorMemoryModule{}).
			Build()
	}
	b := parts.Builder().Module(&hardware.ComputerModule{WindowsPrice: 6666, LinuxPrice: 8888})
	container.BindsInstance(b, hardware.ComponentAssembler(partsFor))
	c, err := b.Strict(true).Build()
	require.NoError(t, err)

	windows := container.MustGet[*hardware.Computer](c, hardware.WindowsComputer)
	linux := container.MustGet[*hardware.Computer](c, hardware.LinuxComputer)

	assert.Equal(t, hardware.Windows, windows.OS)
	assert.Equal(t, 8888, linux.Price)
	assert.Equal(t, hardware.Samsung, linux.Memory.Vendor)
}

func TestComputerModule_AssemblyFailureSurfaces(t *testing.T) {
	boom := errors.New("no parts")
	b := parts.Builder().Module(&hardware.FixedComputerModule{OS: hardware.Windows, Price: 1})
	container.BindsInstance[hardware.Assembler](b, hardware.AssemblerFunc(func(*hardware.Computer) error { return boom }))
	c := b.MustBuild()

	_, err := container.Get[*hardware.Computer](c)
	assert.ErrorIs(t, err, boom)
}

// ── Modules ──────────────────────────────────────────────────────────────────

func TestVendorMemoryModule_QualifiedByType(t *testing.T) {
	c := buildParts(t, &hardware.VendorMemoryModule{})

	m := container.MustGet[*hardware.Memory](c, hardware.MemoryType{Size: 8192, Vendor: hardware.Kingston})
	assert.Equal(t, hardware.NewMemory(8192, hardware.Kingston), m)
	assert.Equal(t, hardware.Kingston, container.MustGet[*hardware.Memory](c, hardware.DefaultMemoryType).Vendor)

	_, err := container.Get[*hardware.Memory](c)
	var unsatisfied container.UnsatisfiedDependencyError
	assert.ErrorAs(t, err, &unsatisfied)
}

func TestCPUModules_BindSelectsImplementation(t *testing.T) {
	tests := []struct {
		name   string
		module container.Module
		prefix string
	}{
		{"implicit", nil, "CPU Id"},
		{"intel", &hardware.IntelCPUModule{}, "Intel's"},
		{"amd", &hardware.AMDCPUModule{}, "AMD's"},
		{"provided", &hardware.CPUModule{}, "Intel's"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c *container.Component
			if tt.module == nil {
				c = buildParts(t)
			} else {
				c = buildParts(t, tt.module)
			}
			var b strings.Builder
			container.MustGet[hardware.CPU](c).Execute(&b)
			assert.True(t, strings.HasPrefix(b.String(), tt.prefix), b.String())
		})
	}
}

func TestMonitorModule_OnePerScope(t *testing.T) {
	display := hardware.NewDisplay("screen")
	c := buildParts(t, &hardware.MonitorModule{Display: display})

	m := container.MustGet[*hardware.Monitor](c)
	assert.Same(t, m, container.MustGet[*hardware.Monitor](c))
	assert.Equal(t, "Monitor: "+m.ID().String()+"\nDisplay: screen", m.Info())

	other := buildParts(t, &hardware.MonitorModule{Display: display})
	assert.NotEqual(t, m.ID(), container.MustGet[*hardware.Monitor](other).ID())
}

func TestMonitor_ShowAndRefresh(t *testing.T) {
	display := hardware.NewDisplay("screen")
	m := hardware.NewMonitor(display)

	computer := hardware.NewWindows(1)
	computer.Memory = hardware.NewMemory(2, "")
	m.Show(computer)
	at := time.Date(2019, 5, 5, 10, 0, 0, 0, time.UTC)
	m.StartRefresh(at)

	assert.Equal(t, computer.Render()+hardware.FormatTimestamp(at)+"\n", display.Text())
}

func TestTimestampModule_ReadsClockEveryTime(t *testing.T) {
	start := time.Date(2019, 5, 5, 10, 0, 0, 0, time.UTC)
	c := buildParts(t, &hardware.TimestampModule{Clock: clock.SteppingClock(start, time.Second)})

	assert.Equal(t, start, container.MustGet[time.Time](c))
	assert.Equal(t, start.Add(time.Second), container.MustGet[time.Time](c))
}

func TestApplicationModule_ContributesToChildren(t *testing.T) {
	b := hardware.ApplicationComponent.Builder().
		Module(&hardware.ApplicationModule{AppName: "LearnDI"}).
		Module(&hardware.SerialModule{})
	app, err := b.Strict(true).Build()
	require.NoError(t, err)

	child, err := app.NewChildBuilder(container.Define("computer")).
		Module(&hardware.DiskSetModule{}).
		Module(&hardware.DiskModule{}).
		Build()
	require.NoError(t, err)

	disks := container.MustGet[[]hardware.Disk](child)
	require.Len(t, disks, 5)
	assert.Equal(t, hardware.Disk{Type: hardware.SSD, Capacity: hardware.Huge}, disks[0])
	assert.Equal(t, "LearnDI", container.MustGet[string](child, hardware.ApplicationName))
	assert.Contains(t, container.MustGet[map[string]hardware.Device](app), "Spare Sound")
}
