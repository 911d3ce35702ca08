package inventory

import (
	"fmt"
	"reflect"
	"testing"
)

func TestDisk_AppendTree_KindToken(t *testing.T) {
	tests := []struct {
		name string
		kind DiskKind
		want string
	}{
		{name: "ssd", kind: DiskSSD, want: "+-SSD, 512 GiB"},
		{name: "hdd", kind: DiskHDD, want: "+-HDD, 512 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDisk(tt.kind, 512)
			got := d.AppendTree(nil, "", false)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("AppendTree() = %q, want [%q]", got, tt.want)
			}
		})
	}
}

func TestDisk_AppendTree_PartitionIndexing(t *testing.T) {
	d := NewDisk(DiskHDD, 2000)
	for i := 0; i < 4; i++ {
		d.AddPartition(100*(i+1), fmt.Sprintf("part%d", i))
	}

	got := d.AppendTree(nil, "", true)
	want := []string{
		`\-HDD, 2000 GiB`,
		"  +-[0]: 100 GiB, part0",
		"  +-[1]: 200 GiB, part1",
		"  +-[2]: 300 GiB, part2",
		`  \-[3]: 400 GiB, part3`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AppendTree() = %q, want %q", got, want)
	}
}

// Partition rows are indented two literal spaces past the disk's own
// prefix, not by the bar/blank continuation rule.
func TestDisk_AppendTree_PartitionPrefixUnderNonLastDisk(t *testing.T) {
	d := NewDisk(DiskSSD, 100).AddPartition(100, "root")

	got := d.AppendTree(nil, "| ", false)
	want := []string{
		"| +-SSD, 100 GiB",
		`|   \-[0]: 100 GiB, root`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AppendTree() = %q, want %q", got, want)
	}
}

func TestDisk_Clone_PartitionIndependence(t *testing.T) {
	d := NewDisk(DiskHDD, 2000).
		AddPartition(500, "system").
		AddPartition(1500, "storage")

	cloned := d.Clone()
	if cloned == d {
		t.Fatal("Clone() returned the original disk")
	}
	if !reflect.DeepEqual(cloned.Partitions(), d.Partitions()) {
		t.Errorf("cloned partitions = %v, want %v", cloned.Partitions(), d.Partitions())
	}

	cloned.AddPartition(42, "swap")
	if len(d.Partitions()) != 2 {
		t.Errorf("original partition count = %d after mutating clone, want 2", len(d.Partitions()))
	}
}
