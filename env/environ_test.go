package env_test

import (
	"os"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/buildpacks/libbuildpack/env"
	h "github.com/buildpacks/libbuildpack/testhelpers"
)

func TestEnviron(t *testing.T) {
	spec.Run(t, "Environ", testEnviron, spec.Report(report.Terminal{}))
}

func testEnviron(t *testing.T, when spec.G, it spec.S) {
	when("Map", func() {
		it("does not share the source map", func() {
			src := map[string]string{"A": "1"}
			m := env.NewMap(src)
			h.AssertNil(t, m.Setenv("A", "2"))

			h.AssertEq(t, src["A"], "1")
			v, ok := m.LookupEnv("A")
			h.AssertEq(t, ok, true)
			h.AssertEq(t, v, "2")
		})

		it("works from the zero value", func() {
			var m env.Map
			h.AssertNil(t, m.Setenv("A", "1"))

			h.AssertEq(t, m.Vars(), map[string]string{"A": "1"})
		})
	})

	when("OS", func() {
		it("reads and writes the process environment", func() {
			key := "LIBBUILDPACK_TEST_" + h.RandString(6)
			defer os.Unsetenv(key)

			h.AssertNil(t, env.OS.Setenv(key, "value"))
			v, ok := env.OS.LookupEnv(key)
			h.AssertEq(t, ok, true)
			h.AssertEq(t, v, "value")
		})
	})
}
