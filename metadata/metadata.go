// Package metadata provides the open-ended table that buildpacks attach to
// build plan dependencies and layers.
package metadata

import "sort"

// Metadata is a table of arbitrary TOML values keyed by name.
// Values are those produced by the TOML decoder: string, int64, float64, bool,
// time.Time, []interface{} and map[string]interface{}.
type Metadata struct {
	table map[string]interface{}
}

func New() *Metadata {
	return &Metadata{table: map[string]interface{}{}}
}

// FromMap returns a Metadata holding a shallow copy of m.
func FromMap(m map[string]interface{}) *Metadata {
	md := New()
	for k, v := range m {
		md.table[k] = v
	}
	return md
}

func (m *Metadata) Insert(key string, value interface{}) {
	if m.table == nil {
		m.table = map[string]interface{}{}
	}
	m.table[key] = value
}

func (m *Metadata) Get(key string) (interface{}, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.table[key]
	return v, ok
}

func (m *Metadata) GetString(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}
	return len(m.table)
}

func (m *Metadata) IsEmpty() bool {
	return m.Len() == 0
}

func (m *Metadata) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m.table))
	for k := range m.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a shallow copy of the table, or nil when it is empty, so that
// encoders using `omitempty` leave it out.
func (m *Metadata) Map() map[string]interface{} {
	if m.IsEmpty() {
		return nil
	}
	out := make(map[string]interface{}, len(m.table))
	for k, v := range m.table {
		out[k] = v
	}
	return out
}
