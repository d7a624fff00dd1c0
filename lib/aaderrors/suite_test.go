package aaderrors

import (
	"testing"

	"google.golang.org/grpc/status"
	"gopkg.in/check.v1"
)

func TestSuite(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (*S) TestNewCarriesRemediesAndTechnicalDetails(c *check.C) {
	detail := New(CodeTargetNotReachable, "device offline", "adb: no devices found", "corr-9",
		"plug in the device", "run aadk targets list")

	c.Assert(detail.TechnicalDetails, check.Equals, "adb: no devices found")
	c.Assert(detail.CorrelationID, check.Equals, "corr-9")
	c.Assert(detail.Remedies, check.DeepEquals, []string{"plug in the device", "run aadk targets list"})
}

func (*S) TestNewWithoutRemediesLeavesNilSlice(c *check.C) {
	detail := New(CodeInternal, "boom", "", "corr-1")
	c.Assert(detail.Remedies, check.HasLen, 0)
}

func (*S) TestAsGRPCStatusMessageMatchesError(c *check.C) {
	detail := New(CodeJobNotFound, "no such job", "", "corr-2")
	err := detail.AsGRPCStatus()

	s, ok := status.FromError(err)
	c.Assert(ok, check.Equals, true)
	c.Assert(s.Message(), check.Equals, detail.Error())
	c.Assert(s.Message(), check.Equals, "JobNotFound: no such job")
}
