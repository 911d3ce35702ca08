package inventory

// Computer is a host in the network: an identifying name, an ordered
// list of addresses and an ordered list of hardware components. The
// computer owns both lists exclusively.
type Computer struct {
	name       string
	addresses  []*Address
	components Collection[Component]
}

// NewComputer creates a Computer with the given name and no children.
func NewComputer(name string) *Computer {
	return &Computer{name: name}
}

// Name returns the identifying name used for lookups.
func (c *Computer) Name() string {
	return c.name
}

// Addresses returns the address sequence. Callers must not mutate it.
func (c *Computer) Addresses() []*Address {
	return c.addresses
}

// Components returns the component sequence. Callers must not mutate it.
func (c *Computer) Components() []Component {
	return c.components.Items()
}

// AddAddress attaches a new Address for endpoint and returns the
// computer for chaining.
func (c *Computer) AddAddress(endpoint string) *Computer {
	c.addresses = append(c.addresses, NewAddress(endpoint))
	return c
}

// AddComponent attaches a component and returns the computer for
// chaining.
func (c *Computer) AddComponent(comp Component) *Computer {
	c.components.Add(comp)
	return c
}

// AppendTree renders the host row, then every address followed by every
// component. Addresses and components share a single sibling space:
// the overall last child is the last component when any exist,
// otherwise the last address.
func (c *Computer) AppendTree(dst []string, prefix string, last bool) []string {
	dst = append(dst, prefix+branchGlyph(last)+"Host: "+c.name)

	childPrefix := extendPrefix(prefix, last)
	total := len(c.addresses) + c.components.Len()
	idx := 0
	for _, addr := range c.addresses {
		idx++
		dst = addr.AppendTree(dst, childPrefix, idx == total)
	}
	for _, comp := range c.components.Items() {
		idx++
		dst = comp.AppendTree(dst, childPrefix, idx == total)
	}
	return dst
}

// Clone returns an independent deep copy of the computer: fresh address
// and component sequences holding cloned children.
func (c *Computer) Clone() *Computer {
	cp := &Computer{name: c.name, components: c.components.Clone()}
	if c.addresses != nil {
		cp.addresses = make([]*Address, len(c.addresses))
		for i, addr := range c.addresses {
			cp.addresses[i] = addr.Clone()
		}
	}
	return cp
}

// CloneNode implements Node.
func (c *Computer) CloneNode() Node {
	return c.Clone()
}
