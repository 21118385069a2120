package phase

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/heroku/color"

	"github.com/buildpacks/libbuildpack/buildpack"
	"github.com/buildpacks/libbuildpack/env"
	"github.com/buildpacks/libbuildpack/log"
	"github.com/buildpacks/libbuildpack/platform"
	"github.com/buildpacks/libbuildpack/platform/exit"
)

type DetectFunc func(*Detect) (int, error)

type BuildFunc func(*Build) (int, error)

type runConfig struct {
	args    []string
	environ env.Environ
	stdin   io.Reader
	output  io.Writer
	reader  DescriptorReader
	exit    func(int)
}

type Option func(*runConfig)

// WithArgs replaces os.Args. args[0] selects the phase.
func WithArgs(args []string) Option {
	return func(c *runConfig) { c.args = args }
}

func WithEnviron(environ env.Environ) Option {
	return func(c *runConfig) { c.environ = environ }
}

func WithStdin(r io.Reader) Option {
	return func(c *runConfig) { c.stdin = r }
}

// WithOutput sets where log output goes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *runConfig) { c.output = w }
}

func WithDescriptorReader(r DescriptorReader) Option {
	return func(c *runConfig) { c.reader = r }
}

// WithExitHandler replaces os.Exit.
func WithExitHandler(fn func(int)) Option {
	return func(c *runConfig) { c.exit = fn }
}

// Run dispatches on the base name of args[0]: "detect <platform> <plan>" calls detect and
// "build <layers> <platform> <plan>" calls build. The returned code is passed to the exit
// handler.
func Run(detect DetectFunc, build BuildFunc, opts ...Option) {
	cfg := runConfig{
		args:    os.Args,
		environ: env.OS,
		stdin:   os.Stdin,
		output:  os.Stdout,
		exit:    os.Exit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.exit(run(detect, build, cfg))
}

func run(detect DetectFunc, build BuildFunc, cfg runConfig) int {
	logger := newLogger(cfg)

	if len(cfg.args) == 0 {
		logger.Error(exit.New(exit.CodeForInvalidArgs, "determine phase").Error())
		return exit.CodeForInvalidArgs
	}
	phase, args := filepath.Base(cfg.args[0]), cfg.args[1:]
	timer := log.NewTimer(phase, logger)
	defer timer.Stop()

	switch phase {
	case "detect":
		if len(args) != 2 {
			return invalidArgs(logger, "detect <platform> <plan>", args)
		}
		d, err := NewDetect(DetectInputs{
			PlatformDir:   args[0],
			BuildPlanPath: args[1],
			Environ:       cfg.environ,
			Logger:        logger,
		})
		if err != nil {
			return fail(logger, exit.CodeForFailed, err, "initialize detect")
		}
		code, err := detect(d)
		return fail(logger, code, err, "detect")
	case "build":
		if len(args) != 3 {
			return invalidArgs(logger, "build <layers> <platform> <plan>", args)
		}
		descriptor, err := buildpack.DescriptorPath(cfg.args[0])
		if err != nil {
			return fail(logger, exit.CodeForInvalidArgs, err, "locate buildpack.toml")
		}
		b, err := NewBuild(BuildInputs{
			LayersDir:        args[0],
			PlatformDir:      args[1],
			BuildPlanPath:    args[2],
			DescriptorPath:   descriptor,
			Stdin:            cfg.stdin,
			DescriptorReader: cfg.reader,
			Environ:          cfg.environ,
			Logger:           logger,
		})
		if err != nil {
			return fail(logger, exit.CodeForFailed, err, "initialize build")
		}
		code, err := build(b)
		return fail(logger, code, err, "build")
	default:
		logger.Errorf("unsupported phase %q: expected detect or build", phase)
		return exit.CodeForInvalidArgs
	}
}

func newLogger(cfg runConfig) *log.DefaultLogger {
	if noColor, ok := cfg.environ.LookupEnv(platform.EnvNoColor); ok {
		if b, err := strconv.ParseBool(noColor); err == nil && b {
			color.Disable(true)
		}
	}
	logger := log.NewDefaultLogger(cfg.output)
	if level, ok := cfg.environ.LookupEnv(platform.EnvLogLevel); ok {
		if err := logger.SetLevel(level); err != nil {
			logger.Warnf("Ignoring %s: %s", platform.EnvLogLevel, err)
		}
	}
	return logger
}

func invalidArgs(logger log.Logger, usage string, args []string) int {
	logger.Errorf("usage: %s (got %d arguments)", usage, len(args))
	return exit.CodeForInvalidArgs
}

// fail logs err and returns code, or the code carried by err when code is 0.
func fail(logger log.Logger, code int, err error, action string) int {
	if err == nil {
		return code
	}
	e := exit.Wrap(err, action)
	logger.Error(e.Error())
	if code == exit.CodeForPass {
		return e.Code
	}
	return code
}
