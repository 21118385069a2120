package platform_test

import (
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/buildpacks/libbuildpack"
	"github.com/buildpacks/libbuildpack/env"
	"github.com/buildpacks/libbuildpack/platform"
	h "github.com/buildpacks/libbuildpack/testhelpers"
)

func TestStack(t *testing.T) {
	spec.Run(t, "Stack", testStack, spec.Report(report.Terminal{}))
}

func testStack(t *testing.T, when spec.G, it spec.S) {
	when(".NewStack", func() {
		it("reads CNB_STACK_ID", func() {
			stack, err := platform.NewStack(env.NewMap(map[string]string{"CNB_STACK_ID": "io.buildpacks.stacks.bionic"}))
			h.AssertNil(t, err)

			h.AssertEq(t, stack.ID(), "io.buildpacks.stacks.bionic")
			h.AssertEq(t, stack.String(), "io.buildpacks.stacks.bionic")
		})

		it("fails when CNB_STACK_ID is unset", func() {
			_, err := platform.NewStack(env.NewMap(nil))

			h.AssertEq(t, libbuildpack.IsType(err, libbuildpack.ErrTypeEnvVarMissing), true)
			h.AssertStringContains(t, err.Error(), "CNB_STACK_ID")
		})

		it("fails when CNB_STACK_ID is not valid UTF-8", func() {
			_, err := platform.NewStack(env.NewMap(map[string]string{"CNB_STACK_ID": "\xff"}))

			h.AssertEq(t, libbuildpack.IsType(err, libbuildpack.ErrTypeEnvVarNotUnicode), true)
		})
	})
}
