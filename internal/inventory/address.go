package inventory

// Address is a network endpoint attached to a Computer. It is a leaf:
// it owns no children and is immutable after construction.
type Address struct {
	endpoint string
}

// NewAddress creates an Address for the given endpoint string.
func NewAddress(endpoint string) *Address {
	return &Address{endpoint: endpoint}
}

// Endpoint returns the endpoint string.
func (a *Address) Endpoint() string {
	return a.endpoint
}

// AppendTree renders the address row. The branch glyph is always "+-",
// even when the address is positionally the last child of its host;
// this matches the reference output and is kept deliberately (see the
// fixture in the network tests).
func (a *Address) AppendTree(dst []string, prefix string, _ bool) []string {
	return append(dst, prefix+glyphBranch+a.endpoint)
}

// Clone returns an independent copy of the address.
func (a *Address) Clone() *Address {
	return &Address{endpoint: a.endpoint}
}

// CloneNode implements Node.
func (a *Address) CloneNode() Node {
	return a.Clone()
}
