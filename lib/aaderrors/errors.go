// Package aaderrors implements the closed error-kind taxonomy of the
// control plane (spec §7): a fixed enumeration of error Codes, the
// ErrorDetail value every Failed event and RPC failure carries, and the
// glue that maps between them, github.com/gravitational/trace errors, and
// gRPC status codes. It plays the role the teacher's
// installpb.WrapServiceError / isErrorCode helpers play for gravity's RPC
// agent, generalized into an explicit, reusable Code type instead of an ad
// hoc set of grpc.Code checks.
package aaderrors

import (
	"fmt"

	"github.com/gravitational/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code is the closed enumeration of error kinds from spec §7.
type Code int32

const (
	// CodeUnspecified is the zero value; never intentionally produced.
	CodeUnspecified Code = iota
	CodeInvalidArgument
	CodeNotFound
	CodeAlreadyExists
	CodePermissionDenied
	CodeFailedPrecondition
	CodeUnavailable
	CodeCancelled
	CodeInternal
	// Domain-specific codes.
	CodeBuildFailed
	CodeToolchainInstallFailed
	CodeToolchainVerifyFailed
	CodeToolchainUpdateFailed
	CodeToolchainUninstallFailed
	CodeToolchainCacheCleanupFailed
	CodeToolchainIncompatibleHost
	CodeTargetNotReachable
	CodeJobNotFound
	CodeProjectCreateFailed
)

var codeNames = map[Code]string{
	CodeUnspecified:                 "Unspecified",
	CodeInvalidArgument:             "InvalidArgument",
	CodeNotFound:                    "NotFound",
	CodeAlreadyExists:               "AlreadyExists",
	CodePermissionDenied:            "PermissionDenied",
	CodeFailedPrecondition:          "FailedPrecondition",
	CodeUnavailable:                 "Unavailable",
	CodeCancelled:                   "Cancelled",
	CodeInternal:                    "Internal",
	CodeBuildFailed:                 "BuildFailed",
	CodeToolchainInstallFailed:      "ToolchainInstallFailed",
	CodeToolchainVerifyFailed:       "ToolchainVerifyFailed",
	CodeToolchainUpdateFailed:       "ToolchainUpdateFailed",
	CodeToolchainUninstallFailed:    "ToolchainUninstallFailed",
	CodeToolchainCacheCleanupFailed: "ToolchainCacheCleanupFailed",
	CodeToolchainIncompatibleHost:   "ToolchainIncompatibleHost",
	CodeTargetNotReachable:          "TargetNotReachable",
	CodeJobNotFound:                 "JobNotFound",
	CodeProjectCreateFailed:         "ProjectCreateFailed",
}

// String implements fmt.Stringer.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", c)
}

// ToGRPCCode maps a Code to the transport status code from spec §7's
// mapping table. Domain-specific codes map to Internal unless the
// condition is explicitly one of the named transport codes.
func (c Code) ToGRPCCode() codes.Code {
	switch c {
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeNotFound, CodeJobNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodePermissionDenied:
		return codes.PermissionDenied
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeUnavailable:
		return codes.Unavailable
	case CodeCancelled:
		return codes.Canceled
	default:
		return codes.Internal
	}
}

// ErrorDetail is the structured error payload from spec §3: code, a
// human-facing message, developer-facing technical details, optional
// remedies, and the correlation id tying it back to a run/job.
type ErrorDetail struct {
	Code             Code
	Message          string
	TechnicalDetails string
	Remedies         []string
	CorrelationID    string
}

// New builds an ErrorDetail, defaulting an empty correlationID is left as-is
// (callers are expected to pass the job id or workflow run's correlation
// id, per spec §7's "correlation_id equals the job_id...").
func New(code Code, message, technicalDetails, correlationID string, remedies ...string) *ErrorDetail {
	return &ErrorDetail{
		Code:             code,
		Message:          message,
		TechnicalDetails: technicalDetails,
		Remedies:         remedies,
		CorrelationID:    correlationID,
	}
}

// Error implements the error interface so an *ErrorDetail can be
// trace.Wrap'd and returned directly from Go code.
func (e *ErrorDetail) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsGRPCStatus converts the ErrorDetail into a gRPC status error suitable
// for returning from a unary or streaming RPC handler.
func (e *ErrorDetail) AsGRPCStatus() error {
	if e == nil {
		return nil
	}
	return status.Error(e.Code.ToGRPCCode(), e.Error())
}

// FromTraceError builds an ErrorDetail from a generic error, inspecting
// trace's predicate helpers the way the teacher's isErrorCode inspects
// gRPC status codes, and falling back to Internal.
func FromTraceError(err error, correlationID string) *ErrorDetail {
	if err == nil {
		return nil
	}
	if detail, ok := err.(*ErrorDetail); ok {
		return detail
	}
	if wrapped, ok := trace.Unwrap(err).(*ErrorDetail); ok {
		return wrapped
	}

	code := CodeInternal
	switch {
	case trace.IsNotFound(err):
		code = CodeNotFound
	case trace.IsAlreadyExists(err):
		code = CodeAlreadyExists
	case trace.IsBadParameter(err):
		code = CodeInvalidArgument
	case trace.IsAccessDenied(err):
		code = CodePermissionDenied
	case trace.IsCompareFailed(err):
		code = CodeFailedPrecondition
	case trace.IsConnectionProblem(err):
		code = CodeUnavailable
	}
	return &ErrorDetail{
		Code:             code,
		Message:          trace.UserMessage(err),
		TechnicalDetails: trace.DebugReport(err),
		CorrelationID:    correlationID,
	}
}

// BadParameter returns a trace.BadParameter error, the standard way this
// codebase reports CodeInvalidArgument conditions synchronously.
func BadParameter(format string, args ...interface{}) error {
	return trace.BadParameter(format, args...)
}

// NotFound returns a trace.NotFound error.
func NotFound(format string, args ...interface{}) error {
	return trace.NotFound(format, args...)
}

// AlreadyExists returns a trace.AlreadyExists error.
func AlreadyExists(format string, args ...interface{}) error {
	return trace.AlreadyExists(format, args...)
}

// Unavailable returns a trace.ConnectionProblem error, mapped to
// CodeUnavailable by FromTraceError.
func Unavailable(err error, format string, args ...interface{}) error {
	return trace.ConnectionProblem(err, format, args...)
}

// IsGRPCUnavailableOrSimilar reports whether err looks like a transient
// transport failure a worker's publish retry loop should retry on.
func IsGRPCUnavailableOrSimilar(err error) bool {
	s, ok := status.FromError(trace.Unwrap(err))
	if !ok {
		return false
	}
	switch s.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	default:
		return false
	}
}
