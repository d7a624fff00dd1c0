package commonpb

import (
	proto "github.com/gogo/protobuf/proto"

	"github.com/androiddevkit/aadk/lib/aaderrors"
)

// ErrorCode is the wire representation of the closed error taxonomy.
type ErrorCode int32

const (
	ErrorCodeUnspecified                ErrorCode = 0
	ErrorCodeInvalidArgument            ErrorCode = 1
	ErrorCodeNotFound                   ErrorCode = 2
	ErrorCodeAlreadyExists              ErrorCode = 3
	ErrorCodePermissionDenied           ErrorCode = 4
	ErrorCodeFailedPrecondition         ErrorCode = 5
	ErrorCodeUnavailable                ErrorCode = 6
	ErrorCodeCancelled                  ErrorCode = 7
	ErrorCodeInternal                   ErrorCode = 8
	ErrorCodeBuildFailed                ErrorCode = 9
	ErrorCodeToolchainInstallFailed     ErrorCode = 10
	ErrorCodeToolchainVerifyFailed      ErrorCode = 11
	ErrorCodeToolchainUpdateFailed      ErrorCode = 12
	ErrorCodeToolchainUninstallFailed   ErrorCode = 13
	ErrorCodeToolchainCacheCleanupFailed ErrorCode = 14
	ErrorCodeToolchainIncompatibleHost  ErrorCode = 15
	ErrorCodeTargetNotReachable         ErrorCode = 16
	ErrorCodeJobNotFound                ErrorCode = 17
)

var errorCodeToDomain = map[ErrorCode]aaderrors.Code{
	ErrorCodeUnspecified:                 aaderrors.CodeUnspecified,
	ErrorCodeInvalidArgument:             aaderrors.CodeInvalidArgument,
	ErrorCodeNotFound:                    aaderrors.CodeNotFound,
	ErrorCodeAlreadyExists:               aaderrors.CodeAlreadyExists,
	ErrorCodePermissionDenied:            aaderrors.CodePermissionDenied,
	ErrorCodeFailedPrecondition:          aaderrors.CodeFailedPrecondition,
	ErrorCodeUnavailable:                 aaderrors.CodeUnavailable,
	ErrorCodeCancelled:                   aaderrors.CodeCancelled,
	ErrorCodeInternal:                    aaderrors.CodeInternal,
	ErrorCodeBuildFailed:                 aaderrors.CodeBuildFailed,
	ErrorCodeToolchainInstallFailed:      aaderrors.CodeToolchainInstallFailed,
	ErrorCodeToolchainVerifyFailed:       aaderrors.CodeToolchainVerifyFailed,
	ErrorCodeToolchainUpdateFailed:       aaderrors.CodeToolchainUpdateFailed,
	ErrorCodeToolchainUninstallFailed:    aaderrors.CodeToolchainUninstallFailed,
	ErrorCodeToolchainCacheCleanupFailed: aaderrors.CodeToolchainCacheCleanupFailed,
	ErrorCodeToolchainIncompatibleHost:   aaderrors.CodeToolchainIncompatibleHost,
	ErrorCodeTargetNotReachable:          aaderrors.CodeTargetNotReachable,
	ErrorCodeJobNotFound:                 aaderrors.CodeJobNotFound,
}

var domainToErrorCode = func() map[aaderrors.Code]ErrorCode {
	out := make(map[aaderrors.Code]ErrorCode, len(errorCodeToDomain))
	for wire, domain := range errorCodeToDomain {
		out[domain] = wire
	}
	return out
}()

// ToDomain converts a wire ErrorCode to its domain aaderrors.Code.
func (c ErrorCode) ToDomain() aaderrors.Code {
	if d, ok := errorCodeToDomain[c]; ok {
		return d
	}
	return aaderrors.CodeInternal
}

// ErrorCodeFromDomain converts a domain aaderrors.Code to its wire form.
func ErrorCodeFromDomain(c aaderrors.Code) ErrorCode {
	if w, ok := domainToErrorCode[c]; ok {
		return w
	}
	return ErrorCodeInternal
}

// ErrorDetail is the wire form of aaderrors.ErrorDetail.
type ErrorDetail struct {
	Code             ErrorCode `protobuf:"varint,1,opt,name=code,proto3,enum=aadk.v1.ErrorCode" json:"code,omitempty"`
	Message          string    `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	TechnicalDetails string    `protobuf:"bytes,3,opt,name=technical_details,json=technicalDetails,proto3" json:"technical_details,omitempty"`
	Remedies         []string  `protobuf:"bytes,4,rep,name=remedies,proto3" json:"remedies,omitempty"`
	CorrelationId    string    `protobuf:"bytes,5,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
}

func (m *ErrorDetail) Reset()         { *m = ErrorDetail{} }
func (m *ErrorDetail) String() string { return proto.CompactTextString(m) }
func (*ErrorDetail) ProtoMessage()    {}

// ErrorDetailFromDomain converts the domain ErrorDetail to its wire form.
func ErrorDetailFromDomain(d *aaderrors.ErrorDetail) *ErrorDetail {
	if d == nil {
		return nil
	}
	return &ErrorDetail{
		Code:             ErrorCodeFromDomain(d.Code),
		Message:          d.Message,
		TechnicalDetails: d.TechnicalDetails,
		Remedies:         append([]string(nil), d.Remedies...),
		CorrelationId:    d.CorrelationID,
	}
}

// ToDomain converts the wire ErrorDetail back to the domain type.
func (m *ErrorDetail) ToDomain() *aaderrors.ErrorDetail {
	if m == nil {
		return nil
	}
	return &aaderrors.ErrorDetail{
		Code:             m.Code.ToDomain(),
		Message:          m.Message,
		TechnicalDetails: m.TechnicalDetails,
		Remedies:         append([]string(nil), m.Remedies...),
		CorrelationID:    m.CorrelationId,
	}
}
