package phase_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/buildpacks/libbuildpack/buildpack"
	"github.com/buildpacks/libbuildpack/env"
	"github.com/buildpacks/libbuildpack/phase"
	"github.com/buildpacks/libbuildpack/phase/testmock"
	h "github.com/buildpacks/libbuildpack/testhelpers"
)

func TestRun(t *testing.T) {
	spec.Run(t, "Run", testRun, spec.Report(report.Terminal{}))
}

func testRun(t *testing.T, when spec.G, it spec.S) {
	var (
		mockController *gomock.Controller
		tmpDir         string
		bpDir          string
		out            *bytes.Buffer
		environ        *env.Map
		code           int
		detectCalls    int
		buildCalls     int
		detect         phase.DetectFunc
		build          phase.BuildFunc
	)

	it.Before(func() {
		mockController = gomock.NewController(t)
		tmpDir = h.TempDir(t, "phase.run")
		bpDir = filepath.Join(tmpDir, "bp")
		out = &bytes.Buffer{}
		environ = env.NewMap(map[string]string{"CNB_STACK_ID": "stack", "CNB_NO_COLOR": "true"})
		code = -1
		detectCalls, buildCalls = 0, 0
		detect = func(d *phase.Detect) (int, error) {
			detectCalls++
			return d.Fail(), nil
		}
		build = func(b *phase.Build) (int, error) {
			buildCalls++
			return b.Success(b.BuildPlan)
		}
	})

	it.After(func() {
		mockController.Finish()
		os.RemoveAll(tmpDir)
	})

	run := func(args []string, opts ...phase.Option) {
		opts = append([]phase.Option{
			phase.WithArgs(args),
			phase.WithEnviron(environ),
			phase.WithOutput(out),
			phase.WithStdin(strings.NewReader("")),
			phase.WithExitHandler(func(c int) { code = c }),
		}, opts...)
		phase.Run(detect, build, opts...)
	}

	when("detect", func() {
		it("exits with the detect result", func() {
			run([]string{filepath.Join(bpDir, "bin", "detect"), tmpDir, filepath.Join(tmpDir, "plan.toml")})

			h.AssertEq(t, detectCalls, 1)
			h.AssertEq(t, buildCalls, 0)
			h.AssertEq(t, code, 100)
		})

		it("exits with 3 on the wrong number of arguments", func() {
			run([]string{filepath.Join(bpDir, "bin", "detect"), tmpDir})

			h.AssertEq(t, detectCalls, 0)
			h.AssertEq(t, code, 3)
			h.AssertStringContains(t, out.String(), "usage: detect <platform> <plan>")
		})

		it("exits with 1 when detect returns an error", func() {
			detect = func(d *phase.Detect) (int, error) {
				return 0, errors.New("boom")
			}

			run([]string{filepath.Join(bpDir, "bin", "detect"), tmpDir, filepath.Join(tmpDir, "plan.toml")})

			h.AssertEq(t, code, 1)
			h.AssertStringContains(t, out.String(), "failed to detect: boom")
		})

		it("exits with 1 when the stack is missing", func() {
			environ = env.NewMap(nil)

			run([]string{filepath.Join(bpDir, "bin", "detect"), tmpDir, filepath.Join(tmpDir, "plan.toml")})

			h.AssertEq(t, detectCalls, 0)
			h.AssertEq(t, code, 1)
			h.AssertStringContains(t, out.String(), "CNB_STACK_ID")
		})

		it("does not log debug output by default", func() {
			run([]string{filepath.Join(bpDir, "bin", "detect"), tmpDir, filepath.Join(tmpDir, "plan.toml")})

			h.AssertStringDoesNotContain(t, out.String(), "Timer:")
		})

		it("logs debug output when CNB_LOG_LEVEL is debug", func() {
			h.AssertNil(t, environ.Setenv("CNB_LOG_LEVEL", "debug"))

			run([]string{filepath.Join(bpDir, "bin", "detect"), tmpDir, filepath.Join(tmpDir, "plan.toml")})

			h.AssertStringContains(t, out.String(), "Detection failed. Exiting with 100.")
			h.AssertStringContains(t, out.String(), "Timer: detect ran for")
		})
	})

	when("build", func() {
		it("builds with the plan from stdin", func() {
			reader := testmock.NewMockDescriptorReader(mockController)
			reader.EXPECT().ReadDescriptor(filepath.Join(bpDir, "buildpack.toml")).Return(&buildpack.Descriptor{}, nil)
			planPath := filepath.Join(tmpDir, "plan.toml")

			run([]string{filepath.Join(bpDir, "bin", "build"), filepath.Join(tmpDir, "layers"), tmpDir, planPath},
				phase.WithDescriptorReader(reader),
				phase.WithStdin(strings.NewReader("[ruby]\nversion = \"2.6.5\"\n")),
			)

			h.AssertEq(t, buildCalls, 1)
			h.AssertEq(t, code, 0)
			h.AssertEq(t, h.Rdfile(t, planPath), "[ruby]\nversion = \"2.6.5\"\n")
		})

		it("exits with 3 on the wrong number of arguments", func() {
			run([]string{filepath.Join(bpDir, "bin", "build"), tmpDir})

			h.AssertEq(t, buildCalls, 0)
			h.AssertEq(t, code, 3)
		})

		it("exits with 1 when buildpack.toml is missing", func() {
			run([]string{filepath.Join(bpDir, "bin", "build"), filepath.Join(tmpDir, "layers"), tmpDir, filepath.Join(tmpDir, "plan.toml")})

			h.AssertEq(t, buildCalls, 0)
			h.AssertEq(t, code, 1)
			h.AssertStringContains(t, out.String(), "failed to initialize build")
		})
	})

	when("the phase is unknown", func() {
		it("exits with 3", func() {
			run([]string{filepath.Join(bpDir, "bin", "release")})

			h.AssertEq(t, code, 3)
			h.AssertStringContains(t, out.String(), `unsupported phase "release"`)
		})
	})

	when("there are no arguments", func() {
		it("exits with 3", func() {
			run(nil)

			h.AssertEq(t, code, 3)
		})
	})
}
