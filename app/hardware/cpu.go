package hardware

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync/atomic"
)

// Serials hands out CPU serial numbers.
type Serials func() int

// RandomSerials draws serials at random, like a factory would stamp them.
func RandomSerials() Serials {
	return func() int { return int(rand.Int32()) }
}

// SequentialSerials counts up from start. Safe for concurrent use.
func SequentialSerials(start int) Serials {
	var n atomic.Int64
	n.Store(int64(start) - 1)
	return func() int { return int(n.Add(1)) }
}

// CPU reports itself on a screen.
type CPU interface {
	Execute(b *strings.Builder)
}

// GenericCPU is an unbranded processor.
type GenericCPU struct {
	id int
}

func NewCPU(serials Serials) *GenericCPU { return &GenericCPU{id: serials()} }

func (c *GenericCPU) ID() int { return c.id }

func (c *GenericCPU) Execute(b *strings.Builder) {
	b.WriteString("CPU Id: ")
	b.WriteString(strconv.Itoa(c.id))
	b.WriteString("\n")
}

type Intel struct{ GenericCPU }

func NewIntel(serials Serials) *Intel { return &Intel{GenericCPU{id: serials()}} }

func (c *Intel) Execute(b *strings.Builder) {
	b.WriteString("Intel's ")
	c.GenericCPU.Execute(b)
}

type AMD struct{ GenericCPU }

func NewAMD(serials Serials) *AMD { return &AMD{GenericCPU{id: serials()}} }

func (c *AMD) Execute(b *strings.Builder) {
	b.WriteString("AMD's ")
	c.GenericCPU.Execute(b)
}
