package env

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/buildpacks/libbuildpack"
)

const (
	suffixAppend   = ".append"
	suffixOverride = ".override"
)

// Modifiers describe how a layer changes the environment of later buildpacks or of the
// launched app. A file named KEY prepends its value to KEY as a path list entry, KEY.append
// appends to KEY and KEY.override replaces it.
type Modifiers struct {
	Append     *Vars
	Override   *Vars
	AppendPath *Vars
}

func NewModifiers() *Modifiers {
	return &Modifiers{
		Append:     NewVars(),
		Override:   NewVars(),
		AppendPath: NewVars(),
	}
}

func (m *Modifiers) Clear() {
	m.Append.Clear()
	m.Override.Clear()
	m.AppendPath.Clear()
}

func (m *Modifiers) IsEmpty() bool {
	return m.Append.Len() == 0 && m.Override.Len() == 0 && m.AppendPath.Len() == 0
}

// WriteDir writes one file per modifier into dir, creating it if needed.
// Every file is attempted; the first failure is reported.
func (m *Modifiers) WriteDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return libbuildpack.NewError(errors.Wrapf(err, "creating env dir '%s'", dir), libbuildpack.ErrTypeIO)
	}
	var errs []error
	write := func(vars *Vars, suffix string) {
		for _, key := range vars.Keys() {
			value, _ := vars.Lookup(key)
			path := filepath.Join(dir, key+suffix)
			if err := os.WriteFile(path, []byte(value), 0644); err != nil {
				errs = append(errs, errors.Wrapf(err, "writing env file '%s'", path))
			}
		}
	}
	write(m.AppendPath, "")
	write(m.Append, suffixAppend)
	write(m.Override, suffixOverride)
	return libbuildpack.Combine(libbuildpack.ErrTypeIO, errs...)
}

// ReadDir replaces the modifiers with the contents of dir. A missing dir leaves them empty.
func (m *Modifiers) ReadDir(dir string) error {
	m.Clear()
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return libbuildpack.NewError(errors.Wrapf(err, "reading env dir '%s'", dir), libbuildpack.ErrTypeIO)
	}
	var errs []error
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		vars, key := m.AppendPath, f.Name()
		switch {
		case strings.HasSuffix(key, suffixAppend):
			vars, key = m.Append, strings.TrimSuffix(key, suffixAppend)
		case strings.HasSuffix(key, suffixOverride):
			vars, key = m.Override, strings.TrimSuffix(key, suffixOverride)
		}
		if key == "" || key == "." || key == ".." {
			continue
		}
		path := filepath.Join(dir, f.Name())
		value, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "reading env file '%s'", path))
			continue
		}
		vars.Set(key, string(value))
	}
	return libbuildpack.Combine(libbuildpack.ErrTypeIO, errs...)
}
