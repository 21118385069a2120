package phase

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/buildpacks/libbuildpack"
	"github.com/buildpacks/libbuildpack/buildpack"
	"github.com/buildpacks/libbuildpack/env"
	"github.com/buildpacks/libbuildpack/layers"
	"github.com/buildpacks/libbuildpack/log"
	"github.com/buildpacks/libbuildpack/platform"
	"github.com/buildpacks/libbuildpack/platform/exit"
)

type BuildInputs struct {
	LayersDir        string
	PlatformDir      string
	BuildPlanPath    string
	AppDir           string    // defaults to the working directory
	DescriptorPath   string    // defaults to buildpack.toml next to the bin dir of os.Args[0]
	Stdin            io.Reader // defaults to os.Stdin
	DescriptorReader DescriptorReader
	Environ          env.Environ
	Logger           log.Logger
}

// Build is handed to a buildpack's build function.
type Build struct {
	AppDir        string
	Buildpack     *buildpack.Descriptor
	BuildPlan     *buildpack.BuildPlan
	BuildPlanPath string
	Layers        *layers.Layers
	Platform      *platform.Platform
	Stack         platform.Stack
	Logger        log.Logger
}

func NewBuild(inputs BuildInputs) (*Build, error) {
	if err := inputs.setDefaults(); err != nil {
		return nil, err
	}
	logger := inputs.Logger

	descriptor, err := inputs.DescriptorReader.ReadDescriptor(inputs.DescriptorPath)
	if err != nil {
		return nil, err
	}
	plan, err := buildpack.ReadBuildPlan(inputs.Stdin)
	if err != nil {
		return nil, err
	}
	l := layers.NewLayers(inputs.LayersDir, logger)
	p, err := platform.NewPlatform(inputs.PlatformDir, logger)
	if err != nil {
		return nil, err
	}
	stack, err := platform.NewStack(inputs.Environ)
	if err != nil {
		return nil, err
	}
	if len(descriptor.Stacks) > 0 && !descriptor.SupportsStack(stack.ID()) {
		logger.Warnf("Buildpack %s does not list stack %s", descriptor.Buildpack.ID, stack)
	}

	return &Build{
		AppDir:        inputs.AppDir,
		Buildpack:     descriptor,
		BuildPlan:     plan,
		BuildPlanPath: inputs.BuildPlanPath,
		Layers:        l,
		Platform:      p,
		Stack:         stack,
		Logger:        logger,
	}, nil
}

func (i *BuildInputs) setDefaults() error {
	if i.Environ == nil {
		i.Environ = env.OS
	}
	if i.Logger == nil {
		i.Logger = log.NewNopLogger()
	}
	if i.Stdin == nil {
		i.Stdin = os.Stdin
	}
	if i.DescriptorReader == nil {
		i.DescriptorReader = NewDescriptorReader()
	}
	if i.DescriptorPath == "" {
		var argv0 string
		if len(os.Args) > 0 {
			argv0 = os.Args[0]
		}
		path, err := buildpack.DescriptorPath(argv0)
		if err != nil {
			return err
		}
		i.DescriptorPath = path
	}
	if i.AppDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return libbuildpack.NewError(errors.Wrap(err, "getting working directory"), libbuildpack.ErrTypeIO)
		}
		i.AppDir = wd
	}
	return nil
}

// Success writes plan, if any, to the build plan path and returns the success code.
func (b *Build) Success(plan *buildpack.BuildPlan) (int, error) {
	if plan != nil {
		b.Logger.Debugf("Writing build plan: %s", b.BuildPlanPath)
		if err := buildpack.WriteBuildPlan(b.BuildPlanPath, plan); err != nil {
			return exit.CodeForFailed, err
		}
	}
	b.Logger.Debugf("Build succeeded. Exiting with %d.", exit.CodeForPass)
	return exit.CodeForPass, nil
}

func (b *Build) Fail(code int) int {
	b.Logger.Debugf("Build failed. Exiting with %d.", code)
	return code
}
