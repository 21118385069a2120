// Package env models the environment variables a buildpack reads and the
// modifications its layers contribute for the build and launch phases.
package env

import (
	"errors"
	"sort"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

var (
	ErrNotPresent = errors.New("environment variable not found")
	ErrNotUnicode = errors.New("environment variable was not valid unicode")
)

// Vars maps variable names to values. Values are kept as raw bytes, so a value
// that is not valid UTF-8 can be stored and written back unchanged.
type Vars struct {
	vars map[string]string
}

func NewVars() *Vars {
	return &Vars{vars: map[string]string{}}
}

// NewVarsFromMap returns a Vars holding a copy of m.
func NewVarsFromMap(m map[string]string) *Vars {
	v := NewVars()
	for key, value := range m {
		v.vars[key] = value
	}
	return v
}

func (v *Vars) Set(key, value string) {
	if v.vars == nil {
		v.vars = map[string]string{}
	}
	v.vars[key] = value
}

func (v *Vars) Lookup(key string) (string, bool) {
	value, ok := v.vars[key]
	return value, ok
}

// Get returns ErrNotPresent if key is unset and ErrNotUnicode if its value cannot be
// represented as UTF-8 text.
func (v *Vars) Get(key string) (string, error) {
	value, ok := v.vars[key]
	if !ok {
		return "", ErrNotPresent
	}
	if !utf8.ValidString(value) {
		return "", ErrNotUnicode
	}
	return value, nil
}

// Each calls fn for every variable in no particular order, stopping at the first error.
func (v *Vars) Each(fn func(key, value string) error) error {
	for key, value := range v.vars {
		if err := fn(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (v *Vars) Keys() []string {
	keys := make([]string, 0, len(v.vars))
	for key := range v.vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (v *Vars) Len() int {
	return len(v.vars)
}

func (v *Vars) Clear() {
	v.vars = map[string]string{}
}

// List returns the variables as sorted KEY=value entries.
func (v *Vars) List() []string {
	var environ []string
	for _, key := range v.Keys() {
		environ = append(environ, key+"="+v.vars[key])
	}
	return environ
}

// Map returns a copy of the variables.
func (v *Vars) Map() map[string]string {
	out := make(map[string]string, len(v.vars))
	for key, value := range v.vars {
		out[key] = value
	}
	return out
}

// Apply sets every variable in environ, in key order. Every variable is attempted;
// the first failure is returned.
func (v *Vars) Apply(environ Environ) error {
	var first error
	for _, key := range v.Keys() {
		if err := environ.Setenv(key, v.vars[key]); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// String renders the variables as a dotenv document.
func (v *Vars) String() string {
	s, err := godotenv.Marshal(v.vars)
	if err != nil {
		return ""
	}
	return s
}
