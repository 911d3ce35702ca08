package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"nettree/internal/inventory"
)

// InventoryFile is the top-level structure of a declarative inventory
// YAML file.
type InventoryFile struct {
	Network NetworkSpec `yaml:"network"`
}

// NetworkSpec describes a network and its hosts.
type NetworkSpec struct {
	Name  string     `yaml:"name"`
	Hosts []HostSpec `yaml:"hosts"`
}

// HostSpec describes a single host: its addresses and hardware
// components, in the order they should appear in the tree.
type HostSpec struct {
	Name       string          `yaml:"name"`
	Addresses  []string        `yaml:"addresses"`
	Components []ComponentSpec `yaml:"components"`
}

// ComponentSpec describes one hardware component. Type selects the
// variant (cpu, memory, disk); the remaining fields are variant
// specific and ignored by the others.
type ComponentSpec struct {
	Type string `yaml:"type"`

	// cpu
	Cores    int `yaml:"cores"`
	ClockMHz int `yaml:"clock_mhz"`

	// memory
	CapacityMiB int `yaml:"capacity_mib"`

	// disk
	Kind        string          `yaml:"kind"`
	CapacityGiB int             `yaml:"capacity_gib"`
	Partitions  []PartitionSpec `yaml:"partitions"`
}

// PartitionSpec describes one disk partition.
type PartitionSpec struct {
	SizeGiB int    `yaml:"size_gib"`
	Label   string `yaml:"label"`
}

// LoadInventory reads an inventory definition from the specified YAML
// file and builds the corresponding tree. Validation happens here, at
// the boundary: the tree mutators themselves accept whatever they are
// given.
func LoadInventory(path string) (*inventory.Network, error) {
	if path == "" {
		return nil, fmt.Errorf("inventory file path is required")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("inventory file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}

	var file InventoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse inventory file: %w", err)
	}

	return BuildInventory(&file.Network)
}

// BuildInventory validates a network spec and compiles it into a tree
// through the inventory mutators.
func BuildInventory(spec *NetworkSpec) (*inventory.Network, error) {
	if spec == nil || spec.Name == "" {
		return nil, fmt.Errorf("network name is required")
	}

	net := inventory.NewNetwork(spec.Name)
	for i, hostSpec := range spec.Hosts {
		if hostSpec.Name == "" {
			return nil, fmt.Errorf("host at index %d has no name", i)
		}

		host := inventory.NewComputer(hostSpec.Name)
		for _, endpoint := range hostSpec.Addresses {
			if endpoint == "" {
				return nil, fmt.Errorf("host %q has an empty address", hostSpec.Name)
			}
			host.AddAddress(endpoint)
		}

		for j, compSpec := range hostSpec.Components {
			comp, err := buildComponent(&compSpec)
			if err != nil {
				return nil, fmt.Errorf("host %q component at index %d: %w", hostSpec.Name, j, err)
			}
			host.AddComponent(comp)
		}

		net.AddComputer(host)
	}

	return net, nil
}

// buildComponent compiles one component spec into its variant.
func buildComponent(spec *ComponentSpec) (inventory.Component, error) {
	switch strings.ToLower(spec.Type) {
	case "cpu":
		return inventory.NewCPU(spec.Cores, spec.ClockMHz), nil
	case "memory":
		return inventory.NewMemory(spec.CapacityMiB), nil
	case "disk":
		kind, err := parseDiskKind(spec.Kind)
		if err != nil {
			return nil, err
		}
		disk := inventory.NewDisk(kind, spec.CapacityGiB)
		for i, p := range spec.Partitions {
			if p.Label == "" {
				return nil, fmt.Errorf("partition at index %d has no label", i)
			}
			disk.AddPartition(p.SizeGiB, p.Label)
		}
		return disk, nil
	case "":
		return nil, fmt.Errorf("component type is required")
	default:
		return nil, fmt.Errorf("unknown component type %q, must be one of: cpu, memory, disk", spec.Type)
	}
}

// parseDiskKind maps the spec token to a disk kind.
func parseDiskKind(kind string) (inventory.DiskKind, error) {
	switch strings.ToLower(kind) {
	case "ssd":
		return inventory.DiskSSD, nil
	case "hdd":
		return inventory.DiskHDD, nil
	default:
		return "", fmt.Errorf("unknown disk kind %q, must be one of: ssd, hdd", kind)
	}
}
