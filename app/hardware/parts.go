package hardware

import (
	"strconv"
	"strings"
)

// ── Memory ───────────────────────────────────────────────────────────────────

type Vendor string

const (
	Kingston Vendor = "Kingston"
	Samsung  Vendor = "Samsung"
)

// MemoryType qualifies a memory binding by size and vendor.
type MemoryType struct {
	Size   int
	Vendor Vendor
}

// DefaultMemoryType is the stick picked when only the kind of memory matters.
var DefaultMemoryType = MemoryType{Size: 4096, Vendor: Kingston}

// SamsungMemory is what the qualified computers are fitted with.
var SamsungMemory = MemoryType{Size: 4096, Vendor: Samsung}

func (t MemoryType) String() string {
	return strconv.Itoa(t.Size) + "MB " + string(t.Vendor)
}

// Memory is a RAM stick. An empty Vendor is not reported.
type Memory struct {
	Size   int
	Vendor Vendor
}

func NewMemory(size int, vendor Vendor) *Memory { return &Memory{Size: size, Vendor: vendor} }

func (m *Memory) Execute(b *strings.Builder) {
	if m.Vendor != "" {
		b.WriteString("Memory Vendor: " + string(m.Vendor) + "\n")
	}
	b.WriteString("Memory Size: " + strconv.Itoa(m.Size) + "MB\n")
}

// ── Disk ─────────────────────────────────────────────────────────────────────

type DiskType string

const (
	HardDisk DiskType = "HARD"
	SSD      DiskType = "SSD"
)

// Capacity is a disk size in gigabytes.
type Capacity int

const (
	Small  Capacity = 256
	Normal Capacity = 512
	Huge   Capacity = 1024
)

type Disk struct {
	Type     DiskType
	Capacity Capacity
}

func (d Disk) Mount(b *strings.Builder) {
	b.WriteString(strconv.Itoa(int(d.Capacity)) + "G " + string(d.Type) + " mounted\n")
}

// ── Devices ──────────────────────────────────────────────────────────────────

// Device is a peripheral plugged into a computer.
type Device interface {
	Connect(b *strings.Builder)
}

type Mouse struct{}

func (Mouse) Connect(b *strings.Builder) { b.WriteString("move\n") }

type Keyboard struct{}

func (Keyboard) Connect(b *strings.Builder) { b.WriteString("press\n") }

type Sound struct{}

func (Sound) Connect(b *strings.Builder) { b.WriteString("play\n") }

// ── Bluetooth ────────────────────────────────────────────────────────────────

type Bluetooth struct {
	Version string
}

func NewBluetooth(version string) *Bluetooth { return &Bluetooth{Version: version} }

func (bt *Bluetooth) Info(b *strings.Builder) {
	b.WriteString("Bluetooth Version: " + bt.Version + "\n")
}
