package layers

import "sort"

type Process struct {
	Type    string `toml:"type"`
	Command string `toml:"command"`
}

// Launch holds the processes the app image can start, at most one per type.
type Launch struct {
	processes map[string]Process
}

func NewLaunch() *Launch {
	return &Launch{processes: map[string]Process{}}
}

// AddProcess registers command under typ, replacing any command already registered.
func (l *Launch) AddProcess(typ, command string) {
	if l.processes == nil {
		l.processes = map[string]Process{}
	}
	l.processes[typ] = Process{Type: typ, Command: command}
}

func (l *Launch) Get(typ string) (string, bool) {
	p, ok := l.processes[typ]
	return p.Command, ok
}

func (l *Launch) Len() int {
	return len(l.processes)
}

// Processes returns the processes sorted by type.
func (l *Launch) Processes() []Process {
	out := make([]Process, 0, len(l.processes))
	for _, p := range l.processes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Type < out[j].Type
	})
	return out
}

type launchTOML struct {
	Processes []Process `toml:"processes,omitempty"`
}

func (l *Launch) file() launchTOML {
	return launchTOML{Processes: l.Processes()}
}
