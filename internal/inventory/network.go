package inventory

import "strings"

// Network is the root of the inventory tree: a name plus an ordered
// list of hosts. It has no owner and no sibling context, so its own
// row renders without a branch glyph.
type Network struct {
	name  string
	hosts Collection[*Computer]
}

// NewNetwork creates an empty Network with the given name.
func NewNetwork(name string) *Network {
	return &Network{name: name}
}

// Name returns the network name.
func (n *Network) Name() string {
	return n.name
}

// Hosts returns the host sequence. Callers must not mutate it.
func (n *Network) Hosts() []*Computer {
	return n.hosts.Items()
}

// AddComputer appends a host and returns the network for chaining.
func (n *Network) AddComputer(host *Computer) *Network {
	n.hosts.Add(host)
	return n
}

// FindComputer returns the first host, in insertion order, whose name
// equals name. Host names are expected to be unique but this is not
// enforced; with duplicates the first match wins.
func (n *Network) FindComputer(name string) (*Computer, bool) {
	return n.hosts.Find(name)
}

// AppendTree renders the network row without a glyph, then each host in
// order. The last flag is ignored: the root has no siblings.
func (n *Network) AppendTree(dst []string, prefix string, _ bool) []string {
	dst = append(dst, prefix+"Network: "+n.name)
	hosts := n.hosts.Items()
	for i, host := range hosts {
		dst = host.AppendTree(dst, prefix, i == len(hosts)-1)
	}
	return dst
}

// Lines renders the full tree starting from an empty prefix.
func (n *Network) Lines() []string {
	return n.AppendTree(nil, "", true)
}

// String returns the rendered tree joined by newlines, with no trailing
// newline.
func (n *Network) String() string {
	return strings.Join(n.Lines(), "\n")
}

// Clone returns an independent deep copy of the network and every host
// below it.
func (n *Network) Clone() *Network {
	return &Network{name: n.name, hosts: n.hosts.Clone()}
}

// CloneNode implements Node.
func (n *Network) CloneNode() Node {
	return n.Clone()
}
