package buildpack_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/buildpacks/libbuildpack"
	"github.com/buildpacks/libbuildpack/buildpack"
	h "github.com/buildpacks/libbuildpack/testhelpers"
)

func TestPlan(t *testing.T) {
	spec.Run(t, "BuildPlan", testPlan, spec.Report(report.Terminal{}))
}

func testPlan(t *testing.T, when spec.G, it spec.S) {
	when(".ParseBuildPlan", func() {
		it("parses a dependency version", func() {
			plan, err := buildpack.ParseBuildPlan("[ruby]\nversion = \"2.6.3\"\n")
			h.AssertNil(t, err)

			dep, ok := plan.Get("ruby")
			h.AssertEq(t, ok, true)
			h.AssertEq(t, dep.Version, "2.6.3")
			h.AssertEq(t, dep.Metadata.IsEmpty(), true)
		})

		it("copies dependency metadata", func() {
			plan, err := buildpack.ParseBuildPlan(`
[node]
version = "12.1.0"
ignored = true

[node.metadata]
build = true
vendor = "nodejs"
`)
			h.AssertNil(t, err)

			dep, ok := plan.Get("node")
			h.AssertEq(t, ok, true)
			h.AssertEq(t, dep.Metadata.Keys(), []string{"build", "vendor"})
			vendor, ok := dep.Metadata.GetString("vendor")
			h.AssertEq(t, ok, true)
			h.AssertEq(t, vendor, "nodejs")
		})

		it("returns an empty plan for empty input", func() {
			plan, err := buildpack.ParseBuildPlan("")
			h.AssertNil(t, err)
			h.AssertEq(t, plan.Len(), 0)
		})

		it("reports a missing version", func() {
			_, err := buildpack.ParseBuildPlan("[ruby]\nfoo = \"bar\"\n")

			var planErr *buildpack.PlanError
			h.AssertEq(t, errors.As(err, &planErr), true)
			h.AssertEq(t, planErr.Kind, buildpack.MissingField)
			h.AssertEq(t, planErr.Field, "version")
			h.AssertEq(t, libbuildpack.IsType(err, libbuildpack.ErrTypeDeserialization), true)
		})

		it("reports an entry that is not a table", func() {
			_, err := buildpack.ParseBuildPlan("ruby = \"2.6.3\"\n")

			var planErr *buildpack.PlanError
			h.AssertEq(t, errors.As(err, &planErr), true)
			h.AssertEq(t, planErr.Kind, buildpack.InvalidShape)
			h.AssertEq(t, planErr.Dependency, "ruby")
		})

		it("reports a version that is not a string", func() {
			_, err := buildpack.ParseBuildPlan("[ruby]\nversion = 2\n")

			var planErr *buildpack.PlanError
			h.AssertEq(t, errors.As(err, &planErr), true)
			h.AssertEq(t, planErr.Kind, buildpack.InvalidShape)
			h.AssertEq(t, planErr.Field, "version")
		})

		it("reports metadata that is not a table", func() {
			_, err := buildpack.ParseBuildPlan("[ruby]\nversion = \"1\"\nmetadata = 5\n")

			var planErr *buildpack.PlanError
			h.AssertEq(t, errors.As(err, &planErr), true)
			h.AssertEq(t, planErr.Field, "metadata")
		})

		it("reports invalid TOML as a deserialization error", func() {
			_, err := buildpack.ParseBuildPlan("[ruby\n")

			h.AssertEq(t, libbuildpack.IsType(err, libbuildpack.ErrTypeDeserialization), true)
		})
	})

	when(".ReadBuildPlan", func() {
		it("reads from the reader", func() {
			plan, err := buildpack.ReadBuildPlan(strings.NewReader("[ruby]\nversion = \"2.6.5\"\n"))
			h.AssertNil(t, err)

			dep, _ := plan.Get("ruby")
			h.AssertEq(t, dep.Version, "2.6.5")
		})
	})

	when("#Bytes", func() {
		it("encodes one table per dependency", func() {
			plan := buildpack.NewBuildPlan()
			plan.Insert("ruby", buildpack.NewDependency("2.6.3"))

			b, err := plan.Bytes()
			h.AssertNil(t, err)
			h.AssertEq(t, string(b), "[ruby]\nversion = \"2.6.3\"\n")
		})

		it("encodes an empty plan as an empty document", func() {
			b, err := buildpack.NewBuildPlan().Bytes()
			h.AssertNil(t, err)
			h.AssertEq(t, string(b), "")
		})

		it("round trips dependencies with metadata", func() {
			plan := buildpack.NewBuildPlan()
			node := buildpack.NewDependency("12.1.0")
			node.Metadata.Insert("launch", true)
			node.Metadata.Insert("vendor", "nodejs")
			plan.Insert("node", node)
			plan.Insert("ruby", buildpack.NewDependency("2.6.3"))

			var buf bytes.Buffer
			h.AssertNil(t, plan.Encode(&buf))

			read, err := buildpack.ReadBuildPlan(&buf)
			h.AssertNil(t, err)
			h.AssertEq(t, read.Names(), []string{"node", "ruby"})
			dep, _ := read.Get("node")
			h.AssertEq(t, dep.Version, "12.1.0")
			h.AssertEq(t, dep.Metadata.Map(), map[string]interface{}{"launch": true, "vendor": "nodejs"})
		})
	})

	when(".WriteBuildPlan", func() {
		var tmpDir string

		it.Before(func() {
			tmpDir = h.TempDir(t, "buildpack.plan")
		})

		it.After(func() {
			os.RemoveAll(tmpDir)
		})

		it("replaces the file", func() {
			path := filepath.Join(tmpDir, "plan.toml")
			h.Mkfile(t, "[old]\nversion = \"1\"\n", path)

			plan := buildpack.NewBuildPlan()
			plan.Insert("ruby", buildpack.NewDependency("2.6.3"))
			h.AssertNil(t, buildpack.WriteBuildPlan(path, plan))

			h.AssertEq(t, h.Rdfile(t, path), "[ruby]\nversion = \"2.6.3\"\n")
			h.AssertEq(t, h.ListDir(t, tmpDir), []string{"plan.toml"})
		})

		it("fails with an io error when the dir is missing", func() {
			err := buildpack.WriteBuildPlan(filepath.Join(tmpDir, "missing", "plan.toml"), buildpack.NewBuildPlan())

			h.AssertEq(t, libbuildpack.IsType(err, libbuildpack.ErrTypeIO), true)
		})
	})
}
