package platform

import (
	"github.com/pkg/errors"

	"github.com/buildpacks/libbuildpack"
	"github.com/buildpacks/libbuildpack/env"
)

// Stack identifies the build and run images the buildpack is running against.
type Stack struct {
	id string
}

// NewStack reads CNB_STACK_ID from environ.
func NewStack(environ env.Environ) (Stack, error) {
	vars := env.NewVars()
	if value, ok := environ.LookupEnv(EnvStackID); ok {
		vars.Set(EnvStackID, value)
	}
	id, err := vars.Get(EnvStackID)
	switch {
	case errors.Is(err, env.ErrNotPresent):
		return Stack{}, libbuildpack.NewError(errors.Wrap(err, EnvStackID), libbuildpack.ErrTypeEnvVarMissing)
	case errors.Is(err, env.ErrNotUnicode):
		return Stack{}, libbuildpack.NewError(errors.Wrap(err, EnvStackID), libbuildpack.ErrTypeEnvVarNotUnicode)
	}
	return Stack{id: id}, nil
}

func (s Stack) ID() string {
	return s.id
}

func (s Stack) String() string {
	return s.id
}
