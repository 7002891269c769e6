package nodeid

import "slices"

// ID is the unique identifier of a graph node.
type ID string

// None is the zero ID. Steps use it when no node is current or touched.
const None ID = ""

// String returns the identifier as a plain string.
func (id ID) String() string {
	return string(id)
}

// IsNone reports whether id is the zero identifier.
func (id ID) IsNone() bool {
	return id == None
}

// Sort orders ids lexicographically in place.
func Sort(ids []ID) {
	slices.Sort(ids)
}

// Strings converts ids to their string form, preserving order.
func Strings(ids []ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
