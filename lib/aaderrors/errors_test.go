package aaderrors

import (
	"fmt"
	"testing"

	"github.com/gravitational/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeString(t *testing.T) {
	if got := CodeNotFound.String(); got != "NotFound" {
		t.Errorf("CodeNotFound.String() = %q, want NotFound", got)
	}
	if got := Code(999).String(); got != "Code(999)" {
		t.Errorf("unknown Code.String() = %q, want Code(999)", got)
	}
}

func TestToGRPCCode(t *testing.T) {
	cases := []struct {
		code Code
		want codes.Code
	}{
		{CodeInvalidArgument, codes.InvalidArgument},
		{CodeNotFound, codes.NotFound},
		{CodeJobNotFound, codes.NotFound},
		{CodeAlreadyExists, codes.AlreadyExists},
		{CodePermissionDenied, codes.PermissionDenied},
		{CodeFailedPrecondition, codes.FailedPrecondition},
		{CodeUnavailable, codes.Unavailable},
		{CodeCancelled, codes.Canceled},
		{CodeBuildFailed, codes.Internal},
		{CodeProjectCreateFailed, codes.Internal},
	}
	for _, c := range cases {
		if got := c.code.ToGRPCCode(); got != c.want {
			t.Errorf("%s.ToGRPCCode() = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestNewAndError(t *testing.T) {
	detail := New(CodeBuildFailed, "build failed", "exit status 1", "corr-1", "retry the build")
	if detail.Code != CodeBuildFailed {
		t.Errorf("Code = %v, want CodeBuildFailed", detail.Code)
	}
	if got, want := detail.Error(), "BuildFailed: build failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNilErrorDetail(t *testing.T) {
	var detail *ErrorDetail
	if got := detail.Error(); got != "" {
		t.Errorf("(nil).Error() = %q, want empty", got)
	}
	if got := detail.AsGRPCStatus(); got != nil {
		t.Errorf("(nil).AsGRPCStatus() = %v, want nil", got)
	}
}

func TestAsGRPCStatus(t *testing.T) {
	detail := New(CodeInvalidArgument, "bad input", "", "corr-1")
	err := detail.AsGRPCStatus()
	s, ok := status.FromError(err)
	if !ok {
		t.Fatal("AsGRPCStatus() did not return a status error")
	}
	if s.Code() != codes.InvalidArgument {
		t.Errorf("status code = %v, want InvalidArgument", s.Code())
	}
}

func TestFromTraceErrorNil(t *testing.T) {
	if got := FromTraceError(nil, ""); got != nil {
		t.Errorf("FromTraceError(nil) = %v, want nil", got)
	}
}

func TestFromTraceErrorPassthrough(t *testing.T) {
	original := New(CodeTargetNotReachable, "device gone", "", "corr-2")
	got := FromTraceError(original, "ignored")
	if got != original {
		t.Errorf("FromTraceError did not pass through an *ErrorDetail unchanged")
	}
}

func TestFromTraceErrorMapsTraceKinds(t *testing.T) {
	cases := []struct {
		err  error
		want Code
	}{
		{trace.NotFound("missing"), CodeNotFound},
		{trace.AlreadyExists("dup"), CodeAlreadyExists},
		{trace.BadParameter("bad"), CodeInvalidArgument},
		{trace.AccessDenied("denied"), CodePermissionDenied},
		{trace.CompareFailed("mismatch"), CodeFailedPrecondition},
		{trace.ConnectionProblem(fmt.Errorf("down"), "down"), CodeUnavailable},
		{fmt.Errorf("plain error"), CodeInternal},
	}
	for _, c := range cases {
		got := FromTraceError(c.err, "corr-3")
		if got.Code != c.want {
			t.Errorf("FromTraceError(%v).Code = %v, want %v", c.err, got.Code, c.want)
		}
		if got.CorrelationID != "corr-3" {
			t.Errorf("FromTraceError(%v).CorrelationID = %q, want corr-3", c.err, got.CorrelationID)
		}
	}
}

func TestIsGRPCUnavailableOrSimilar(t *testing.T) {
	if IsGRPCUnavailableOrSimilar(fmt.Errorf("not a status error")) {
		t.Error("non-status error reported as unavailable-like")
	}
	unavailable := status.Error(codes.Unavailable, "down")
	if !IsGRPCUnavailableOrSimilar(unavailable) {
		t.Error("codes.Unavailable not reported as unavailable-like")
	}
	notFound := status.Error(codes.NotFound, "missing")
	if IsGRPCUnavailableOrSimilar(notFound) {
		t.Error("codes.NotFound incorrectly reported as unavailable-like")
	}
}
