// Package platform exposes what the platform hands a buildpack: the variables under
// <platform>/env and the stack id.
package platform

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/buildpacks/libbuildpack"
	"github.com/buildpacks/libbuildpack/env"
	"github.com/buildpacks/libbuildpack/log"
)

const envDir = "env"

type Platform struct {
	Dir string
	Env *env.Vars

	logger log.Logger
}

// NewPlatform reads every regular file in <dir>/env into Env. The variable name is the
// file name without its extension and the value is the file content. A missing env dir
// yields no variables.
func NewPlatform(dir string, logger log.Logger) (*Platform, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	p := &Platform{Dir: dir, Env: env.NewVars(), logger: logger}

	path := filepath.Join(dir, envDir)
	files, err := os.ReadDir(path)
	if os.IsNotExist(err) {
		logger.Debugf("No platform env dir found at: %s", path)
		return p, nil
	} else if err != nil {
		return nil, libbuildpack.NewError(errors.Wrapf(err, "reading platform env dir '%s'", path), libbuildpack.ErrTypeIO)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		value, err := os.ReadFile(filepath.Join(path, f.Name()))
		if err != nil {
			return nil, libbuildpack.NewError(errors.Wrapf(err, "reading platform env file '%s'", f.Name()), libbuildpack.ErrTypeIO)
		}
		p.Env.Set(fileStem(f.Name()), string(value))
	}
	logger.Debugf("Platform environment:\n%s", p.Env)
	return p, nil
}

// ApplyTo sets every platform variable in environ. Use env.OS for the running process.
func (p *Platform) ApplyTo(environ env.Environ) error {
	if err := p.Env.Apply(environ); err != nil {
		return libbuildpack.NewError(errors.Wrap(err, "applying platform environment"), libbuildpack.ErrTypeIO)
	}
	return nil
}

// fileStem strips the last extension. A name whose only dot is the leading one is kept whole.
func fileStem(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return name
	}
	return name[:i]
}
