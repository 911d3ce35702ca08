package inventory

import "fmt"

// Component is a hardware component attachable to a Computer. The
// variants are CPU, Memory and Disk; the unexported marker keeps the
// set closed to this package.
type Component interface {
	Node
	component()
}

// componentBase carries the value attribute shared by all component
// variants. None of the variants use it today; it is kept for parity
// with the component contract.
type componentBase struct {
	value int
}

func (componentBase) component() {}

// CPU describes a processor: core count and clock speed in MHz.
type CPU struct {
	componentBase
	cores    int
	clockMHz int
}

// NewCPU creates a CPU component.
func NewCPU(cores, clockMHz int) *CPU {
	return &CPU{cores: cores, clockMHz: clockMHz}
}

// Cores returns the core count.
func (c *CPU) Cores() int {
	return c.cores
}

// ClockMHz returns the clock speed in MHz.
func (c *CPU) ClockMHz() int {
	return c.clockMHz
}

// AppendTree renders the CPU row.
func (c *CPU) AppendTree(dst []string, prefix string, last bool) []string {
	return append(dst, fmt.Sprintf("%s%sCPU, %d cores @ %dMHz", prefix, branchGlyph(last), c.cores, c.clockMHz))
}

// Clone returns an independent copy of the CPU.
func (c *CPU) Clone() *CPU {
	cp := *c
	return &cp
}

// CloneNode implements Node.
func (c *CPU) CloneNode() Node {
	return c.Clone()
}

// Memory describes a RAM module with its capacity in MiB.
type Memory struct {
	componentBase
	capacityMiB int
}

// NewMemory creates a Memory component.
func NewMemory(capacityMiB int) *Memory {
	return &Memory{capacityMiB: capacityMiB}
}

// CapacityMiB returns the capacity in MiB.
func (m *Memory) CapacityMiB() int {
	return m.capacityMiB
}

// AppendTree renders the memory row.
func (m *Memory) AppendTree(dst []string, prefix string, last bool) []string {
	return append(dst, fmt.Sprintf("%s%sMemory, %d MiB", prefix, branchGlyph(last), m.capacityMiB))
}

// Clone returns an independent copy of the memory module.
func (m *Memory) Clone() *Memory {
	cp := *m
	return &cp
}

// CloneNode implements Node.
func (m *Memory) CloneNode() Node {
	return m.Clone()
}
