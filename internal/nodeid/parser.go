package nodeid

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrEmpty is returned when an identifier is blank.
var ErrEmpty = errors.New("identifier cannot be empty")

// idRegex accepts the identifier alphabet, e.g. `A`, `node_1`, `n-2`.
var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Parse validates a raw identifier and returns it as an ID. Surrounding
// whitespace is ignored.
func Parse(raw string) (ID, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return None, ErrEmpty
	}
	if !idRegex.MatchString(s) {
		return None, fmt.Errorf("invalid node identifier: %q", raw)
	}
	return ID(s), nil
}

// MustParse is like Parse but panics on invalid input. Intended for tests and
// static tables.
func MustParse(raw string) ID {
	id, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return id
}
