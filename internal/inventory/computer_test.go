package inventory

import (
	"reflect"
	"testing"
)

func TestComputer_AppendTree_CombinedChildOrder(t *testing.T) {
	host := NewComputer("box").
		AddAddress("10.0.0.1").
		AddAddress("10.0.0.2").
		AddComponent(NewCPU(2, 1800)).
		AddComponent(NewMemory(4096))

	got := host.AppendTree(nil, "", true)
	want := []string{
		`\-Host: box`,
		"  +-10.0.0.1",
		"  +-10.0.0.2",
		"  +-CPU, 2 cores @ 1800MHz",
		`  \-Memory, 4096 MiB`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AppendTree() = %q, want %q", got, want)
	}
}

func TestComputer_AppendTree_NonLastUsesBarPrefix(t *testing.T) {
	host := NewComputer("box").
		AddAddress("10.0.0.1").
		AddComponent(NewMemory(1024))

	got := host.AppendTree(nil, "", false)
	want := []string{
		"+-Host: box",
		"| +-10.0.0.1",
		`| \-Memory, 1024 MiB`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AppendTree() = %q, want %q", got, want)
	}
}

func TestComputer_AppendTree_Empty(t *testing.T) {
	host := NewComputer("bare")

	got := host.AppendTree(nil, "", true)
	want := []string{`\-Host: bare`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AppendTree() = %q, want %q", got, want)
	}
}

// A host whose last child is an address still renders that address with
// the "+-" glyph: Address ignores its sibling position. Kept for
// compatibility with the reference output.
func TestComputer_AppendTree_AddressesOnlyKeepBranchGlyph(t *testing.T) {
	host := NewComputer("box").
		AddAddress("10.0.0.1").
		AddAddress("10.0.0.2")

	got := host.AppendTree(nil, "", true)
	want := []string{
		`\-Host: box`,
		"  +-10.0.0.1",
		"  +-10.0.0.2",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AppendTree() = %q, want %q", got, want)
	}
}

func TestComputer_Clone_Independence(t *testing.T) {
	host := NewComputer("box").
		AddAddress("10.0.0.1").
		AddComponent(NewDisk(DiskSSD, 512).AddPartition(512, "root"))

	cloned := host.Clone()
	if cloned == host {
		t.Fatal("Clone() returned the original computer")
	}

	cloned.AddComponent(NewCPU(4, 2400))
	cloned.AddAddress("10.0.0.2")
	if len(host.Components()) != 1 {
		t.Errorf("original component count = %d after mutating clone, want 1", len(host.Components()))
	}
	if len(host.Addresses()) != 1 {
		t.Errorf("original address count = %d after mutating clone, want 1", len(host.Addresses()))
	}

	// Depth two: the cloned disk must not share partition storage.
	clonedDisk, ok := cloned.Components()[0].(*Disk)
	if !ok {
		t.Fatalf("cloned component type = %T, want *Disk", cloned.Components()[0])
	}
	clonedDisk.AddPartition(128, "scratch")
	origDisk := host.Components()[0].(*Disk)
	if len(origDisk.Partitions()) != 1 {
		t.Errorf("original partition count = %d after mutating clone, want 1", len(origDisk.Partitions()))
	}
}
