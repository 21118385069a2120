package phase

import (
	"github.com/buildpacks/libbuildpack/buildpack"
	"github.com/buildpacks/libbuildpack/env"
	"github.com/buildpacks/libbuildpack/log"
	"github.com/buildpacks/libbuildpack/platform"
	"github.com/buildpacks/libbuildpack/platform/exit"
)

type DetectInputs struct {
	PlatformDir   string
	BuildPlanPath string
	Environ       env.Environ
	Logger        log.Logger
}

// Detect is handed to a buildpack's detect function. Returning Pass opts the buildpack
// into the build; returning Fail opts it out.
type Detect struct {
	BuildPlanPath string
	Platform      *platform.Platform
	Stack         platform.Stack
	Logger        log.Logger
}

func NewDetect(inputs DetectInputs) (*Detect, error) {
	if inputs.Environ == nil {
		inputs.Environ = env.OS
	}
	if inputs.Logger == nil {
		inputs.Logger = log.NewNopLogger()
	}

	stack, err := platform.NewStack(inputs.Environ)
	if err != nil {
		return nil, err
	}
	p, err := platform.NewPlatform(inputs.PlatformDir, inputs.Logger)
	if err != nil {
		return nil, err
	}
	return &Detect{
		BuildPlanPath: inputs.BuildPlanPath,
		Platform:      p,
		Stack:         stack,
		Logger:        inputs.Logger,
	}, nil
}

// Pass writes plan, if any, to the build plan path and returns the passing code.
func (d *Detect) Pass(plan *buildpack.BuildPlan) (int, error) {
	if plan != nil {
		d.Logger.Debugf("Writing build plan: %s", d.BuildPlanPath)
		if err := buildpack.WriteBuildPlan(d.BuildPlanPath, plan); err != nil {
			return exit.CodeForFailed, err
		}
	}
	d.Logger.Debugf("Detection passed. Exiting with %d.", exit.CodeForPass)
	return exit.CodeForPass, nil
}

func (d *Detect) Fail() int {
	d.Logger.Debugf("Detection failed. Exiting with %d.", exit.CodeForDetectFail)
	return exit.CodeForDetectFail
}

// Error returns code, which the lifecycle treats as a detect error unless it is 0 or 100.
func (d *Detect) Error(code int) int {
	d.Logger.Debugf("Detection produced an error. Exiting with %d.", code)
	return code
}
