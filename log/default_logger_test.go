package log_test

import (
	"bytes"
	"testing"

	"github.com/heroku/color"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/buildpacks/libbuildpack/log"
	h "github.com/buildpacks/libbuildpack/testhelpers"
)

func TestDefaultLogger(t *testing.T) {
	color.Disable(true)
	defer color.Disable(false)
	spec.Run(t, "DefaultLogger", testDefaultLogger, spec.Report(report.Terminal{}))
}

func testDefaultLogger(t *testing.T, when spec.G, it spec.S) {
	var (
		out    *bytes.Buffer
		logger *log.DefaultLogger
	)

	it.Before(func() {
		out = &bytes.Buffer{}
		logger = log.NewDefaultLogger(out)
	})

	when("#HandleLog", func() {
		it("prefixes warnings and errors", func() {
			logger.Warn("careful")
			logger.Error("broken")

			h.AssertEq(t, out.String(), "Warning: careful\nERROR: broken\n")
		})

		it("does not double line feeds", func() {
			logger.Infof("already terminated\n")
			logger.Info("")

			h.AssertEq(t, out.String(), "already terminated\n\n")
		})
	})

	when("#SetLevel", func() {
		it("defaults to info", func() {
			logger.Debug("hidden")
			logger.Info("shown")

			h.AssertEq(t, out.String(), "shown\n")
		})

		it("enables debug output", func() {
			h.AssertNil(t, logger.SetLevel("debug"))
			logger.Debugf("value is %d", 3)

			h.AssertEq(t, out.String(), "value is 3\n")
		})

		it("rejects unknown levels", func() {
			h.AssertError(t, logger.SetLevel("chatty"), "failed to parse log level")
			logger.Debug("hidden")

			h.AssertEq(t, out.String(), "")
		})
	})

	when("#Phase", func() {
		it("prints a phase header", func() {
			logger.Phase("DETECTING")

			h.AssertEq(t, out.String(), "===> DETECTING\n")
		})
	})

	when("NewNopLogger", func() {
		it("discards everything", func() {
			nop := log.NewNopLogger()
			nop.Error("nothing")
			nop.Infof("nothing %s", "here")
		})
	})
}
