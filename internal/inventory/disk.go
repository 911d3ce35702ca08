package inventory

import "fmt"

// DiskKind identifies the storage technology of a Disk.
type DiskKind string

const (
	DiskSSD DiskKind = "SSD"
	DiskHDD DiskKind = "HDD"
)

// Partition is a (size, label) record on a Disk. Partitions are plain
// data, not tree nodes: the displayed partition index is the position
// in the disk's partition sequence.
type Partition struct {
	SizeGiB int
	Label   string
}

// Disk describes a storage device with an append-only ordered list of
// partitions.
type Disk struct {
	componentBase
	kind        DiskKind
	capacityGiB int
	partitions  []Partition
}

// NewDisk creates a Disk of the given kind and capacity in GiB.
func NewDisk(kind DiskKind, capacityGiB int) *Disk {
	return &Disk{kind: kind, capacityGiB: capacityGiB}
}

// Kind returns the storage technology.
func (d *Disk) Kind() DiskKind {
	return d.kind
}

// CapacityGiB returns the capacity in GiB.
func (d *Disk) CapacityGiB() int {
	return d.capacityGiB
}

// Partitions returns the partition sequence. Callers must not mutate it.
func (d *Disk) Partitions() []Partition {
	return d.partitions
}

// AddPartition appends a partition and returns the disk for chaining.
func (d *Disk) AddPartition(sizeGiB int, label string) *Disk {
	d.partitions = append(d.partitions, Partition{SizeGiB: sizeGiB, Label: label})
	return d
}

// AppendTree renders the disk row followed by one row per partition.
// Partition rows are indented two spaces past the disk's own prefix
// regardless of the disk's sibling position: partitions are leaf data,
// so the bar-vs-blank continuation rule does not apply to them.
func (d *Disk) AppendTree(dst []string, prefix string, last bool) []string {
	dst = append(dst, fmt.Sprintf("%s%s%s, %d GiB", prefix, branchGlyph(last), d.kind, d.capacityGiB))
	for i, p := range d.partitions {
		mark := branchGlyph(i == len(d.partitions)-1)
		dst = append(dst, fmt.Sprintf("%s  %s[%d]: %d GiB, %s", prefix, mark, i, p.SizeGiB, p.Label))
	}
	return dst
}

// Clone returns an independent copy of the disk, including a fresh
// partition sequence.
func (d *Disk) Clone() *Disk {
	cp := *d
	if d.partitions != nil {
		cp.partitions = make([]Partition, len(d.partitions))
		copy(cp.partitions, d.partitions)
	}
	return &cp
}

// CloneNode implements Node.
func (d *Disk) CloneNode() Node {
	return d.Clone()
}
