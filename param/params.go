package param

import (
	"fmt"
	"sort"
	"strings"
)

// Params is an ordered set of parameters. Names are stored in lower case and
// are unique. The zero value is an empty set ready to use.
type Params struct {
	names  []string
	values map[string]string
}

// Len returns the number of parameters.
func (ps *Params) Len() int {
	return len(ps.names)
}

// Has returns true if a parameter with the given name is set.
func (ps *Params) Has(name string) bool {
	_, ok := ps.values[strings.ToLower(name)]
	return ok
}

// Get returns the value of the named parameter and whether it was set.
func (ps *Params) Get(name string) (string, bool) {
	v, ok := ps.values[strings.ToLower(name)]
	return v, ok
}

// Add inserts a new parameter. It returns ErrDuplicateParameter if a parameter
// with the same name is already set.
func (ps *Params) Add(name, value string) error {
	n := strings.ToLower(name)
	if _, dup := ps.values[n]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateParameter, n)
	}
	ps.insert(n, value)
	return nil
}

// Set inserts the parameter or replaces its value, keeping its original
// position.
func (ps *Params) Set(name, value string) {
	n := strings.ToLower(name)
	if _, ok := ps.values[n]; ok {
		ps.values[n] = value
		return
	}
	ps.insert(n, value)
}

func (ps *Params) insert(n, value string) {
	if ps.values == nil {
		ps.values = make(map[string]string)
	}
	ps.names = append(ps.names, n)
	ps.values[n] = value
}

// Delete removes the named parameter, if present.
func (ps *Params) Delete(name string) {
	n := strings.ToLower(name)
	if _, ok := ps.values[n]; !ok {
		return
	}
	delete(ps.values, n)
	for i, pn := range ps.names {
		if pn == n {
			ps.names = append(ps.names[:i:i], ps.names[i+1:]...)
			break
		}
	}
}

// Names returns the parameter names in insertion order.
func (ps *Params) Names() []string {
	return append([]string(nil), ps.names...)
}

// SortedNames returns the parameter names in ascending order.
func (ps *Params) SortedNames() []string {
	ns := ps.Names()
	sort.Strings(ns)
	return ns
}

// Map returns a copy of the parameters as a map.
func (ps *Params) Map() map[string]string {
	m := make(map[string]string, len(ps.names))
	for k, v := range ps.values {
		m[k] = v
	}
	return m
}

// Clone returns a deep copy of the parameter set.
func (ps *Params) Clone() Params {
	var c Params
	for _, n := range ps.names {
		c.insert(n, ps.values[n])
	}
	return c
}

// writeSorted writes each parameter to b as "; name=value" in ascending name order.
// Values that are tokens are written bare and all others as quoted-strings.
func (ps *Params) writeSorted(b *strings.Builder) {
	for _, n := range ps.SortedNames() {
		b.WriteString("; ")
		b.WriteString(n)
		b.WriteByte('=')
		WriteValue(b, ps.values[n])
	}
}

// WriteValue writes v to b bare if it is a token or as a quoted-string
// otherwise.
func WriteValue(b *strings.Builder, v string) {
	if IsToken(v) {
		b.WriteString(v)
		return
	}
	writeQuoted(b, v)
}
