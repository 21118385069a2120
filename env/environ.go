package env

import (
	"os"
	"sync"
)

// Environ is the process environment as seen by the stack and platform accessors.
type Environ interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// OS is the live process environment.
var OS Environ = osEnviron{}

type osEnviron struct{}

func (osEnviron) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnviron) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// Map is an in-memory Environ.
type Map struct {
	mu   sync.RWMutex
	vars map[string]string
}

func NewMap(vars map[string]string) *Map {
	m := &Map{vars: map[string]string{}}
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

func (m *Map) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[key]
	return v, ok
}

func (m *Map) Setenv(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vars == nil {
		m.vars = map[string]string{}
	}
	m.vars[key] = value
	return nil
}

// Vars returns a copy of the environment.
func (m *Map) Vars() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.vars))
	for k, v := range m.vars {
		out[k] = v
	}
	return out
}
