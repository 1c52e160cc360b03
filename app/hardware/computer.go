package hardware

import (
	"strconv"
	"strings"

	"github.com/km-arc/learn-di/framework/container"
)

type OS string

const (
	Windows OS = "Windows"
	Linux   OS = "Linux"
)

// Computer is assembled from parts after it is built. CPU and Memory are
// required; the remaining parts are fitted only when the assembling
// component binds them.
type Computer struct {
	OS    OS
	Price int

	CPU       CPU
	Memory    *Memory
	Disks     container.Optional[[]Disk]
	Devices   container.Optional[[]container.MapEntry[Device]]
	Bluetooth container.Optional[*Bluetooth]

	memoryType any
}

func NewComputer(os OS, price int) *Computer { return &Computer{OS: os, Price: price} }

func NewWindows(price int) *Computer { return NewComputer(Windows, price) }

func NewLinux(price int) *Computer { return NewComputer(Linux, price) }

// WithMemoryType makes the computer ask for memory qualified by t.
func (c *Computer) WithMemoryType(t MemoryType) *Computer {
	c.memoryType = t
	return c
}

func (c *Computer) InjectionPoints() []container.InjectionPoint {
	return []container.InjectionPoint{
		container.Field(&c.CPU),
		container.Field(&c.Memory, c.memoryType),
		container.Inject(&c.Disks, container.NeedOptional[[]Disk]()),
		container.Inject(&c.Devices, container.NeedOptional[[]container.MapEntry[Device]]()),
		container.Inject(&c.Bluetooth, container.NeedOptional[*Bluetooth]()),
	}
}

// Execute writes what the computer reports when switched on. Devices are
// listed in the order they were contributed.
func (c *Computer) Execute(b *strings.Builder) {
	b.WriteString("Computer OS: " + string(c.OS) + "\n")
	b.WriteString("Computer Price: " + strconv.Itoa(c.Price) + "\n")
	if c.CPU != nil {
		c.CPU.Execute(b)
	} else {
		b.WriteString("None CPU exist!\n")
	}
	if c.Memory != nil {
		c.Memory.Execute(b)
	}
	if disks, ok := c.Disks.Get(); ok {
		for _, d := range disks {
			d.Mount(b)
		}
	}
	if devices, ok := c.Devices.Get(); ok {
		for _, d := range devices {
			b.WriteString(d.Key + ": ")
			d.Value.Connect(b)
		}
	}
	if bt, ok := c.Bluetooth.Get(); ok {
		bt.Info(b)
	}
}

// Render returns Execute's output as a string.
func (c *Computer) Render() string {
	var b strings.Builder
	c.Execute(&b)
	return b.String()
}

// ── Assembly ─────────────────────────────────────────────────────────────────

// Assembler fits the parts into a freshly built computer.
type Assembler interface {
	Assemble(c *Computer) error
}

type AssemblerFunc func(c *Computer) error

func (f AssemblerFunc) Assemble(c *Computer) error { return f(c) }

// ComponentAssembler builds a parts component for every computer and injects
// the computer from it.
func ComponentAssembler(build func() (*container.Component, error)) Assembler {
	return AssemblerFunc(func(c *Computer) error {
		parts, err := build()
		if err != nil {
			return err
		}
		return parts.Inject(c)
	})
}

func assemble(a Assembler, c *Computer) (*Computer, error) {
	if err := a.Assemble(c); err != nil {
		return nil, err
	}
	return c, nil
}
