/*
Package nodeid provides the identifier type shared by the graph model, the
traversal engine and the renderers.

An identifier is a short, non-empty token made of letters, digits, '_' or
'-', e.g. `A`, `B`, `n12`. Identifiers order lexicographically by byte value;
that ordering is what makes neighbor expansion deterministic.
*/
package nodeid
