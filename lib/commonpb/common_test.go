package commonpb

import (
	"reflect"
	"testing"

	"github.com/androiddevkit/aadk/lib/aaderrors"
)

func TestWrapUnwrapID(t *testing.T) {
	if got := WrapID(""); got != nil {
		t.Errorf("WrapID(\"\") = %v, want nil", got)
	}
	id := WrapID("job-1")
	if id == nil || id.Value != "job-1" {
		t.Fatalf("WrapID(job-1) = %v", id)
	}
	if got := UnwrapID(nil); got != "" {
		t.Errorf("UnwrapID(nil) = %q, want \"\"", got)
	}
	if got := UnwrapID(id); got != "job-1" {
		t.Errorf("UnwrapID(id) = %q, want job-1", got)
	}
}

func TestWrapUnwrapMillis(t *testing.T) {
	if got := WrapMillis(0); got != nil {
		t.Errorf("WrapMillis(0) = %v, want nil", got)
	}
	ts := WrapMillis(1234)
	if ts == nil || ts.UnixMillis != 1234 {
		t.Fatalf("WrapMillis(1234) = %v", ts)
	}
	if got := UnwrapMillis(nil); got != 0 {
		t.Errorf("UnwrapMillis(nil) = %d, want 0", got)
	}
	if got := UnwrapMillis(ts); got != 1234 {
		t.Errorf("UnwrapMillis(ts) = %d, want 1234", got)
	}
}

func TestKV(t *testing.T) {
	kv := KV("percent", 42)
	if kv.Key != "percent" || kv.Value != "42" {
		t.Errorf("KV(percent, 42) = %+v", kv)
	}
}

func TestKVList(t *testing.T) {
	got := KVList("a", 1, "b", "two")
	want := []*KeyValue{{Key: "a", Value: "1"}, {Key: "b", Value: "two"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KVList() = %+v, want %+v", got, want)
	}
}

func TestKVListOddArgsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("KVList with an odd number of arguments should panic")
		}
	}()
	KVList("a", 1, "b")
}

func TestErrorCodeRoundTrip(t *testing.T) {
	for wire, domain := range errorCodeToDomain {
		if got := ErrorCodeFromDomain(domain); got != wire {
			t.Errorf("ErrorCodeFromDomain(%v) = %v, want %v", domain, got, wire)
		}
		if got := wire.ToDomain(); got != domain {
			t.Errorf("%v.ToDomain() = %v, want %v", wire, got, domain)
		}
	}
}

func TestErrorCodeUnknownDefaultsToInternal(t *testing.T) {
	if got := ErrorCode(999).ToDomain(); got != aaderrors.CodeInternal {
		t.Errorf("unknown ErrorCode.ToDomain() = %v, want CodeInternal", got)
	}
	if got := ErrorCodeFromDomain(aaderrors.Code(9999)); got != ErrorCodeInternal {
		t.Errorf("ErrorCodeFromDomain(9999) = %v, want ErrorCodeInternal", got)
	}
}

func TestErrorDetailFromDomainNil(t *testing.T) {
	if got := ErrorDetailFromDomain(nil); got != nil {
		t.Errorf("ErrorDetailFromDomain(nil) = %v, want nil", got)
	}
}

func TestErrorDetailRoundTrip(t *testing.T) {
	domain := &aaderrors.ErrorDetail{
		Code:             aaderrors.CodeBuildFailed,
		Message:          "build failed",
		TechnicalDetails: "exit code 1",
		Remedies:         []string{"retry", "check logs"},
		CorrelationID:    "corr-1",
	}

	wire := ErrorDetailFromDomain(domain)
	if wire.Code != ErrorCodeBuildFailed || wire.Message != domain.Message ||
		wire.TechnicalDetails != domain.TechnicalDetails || wire.CorrelationId != domain.CorrelationID {
		t.Fatalf("ErrorDetailFromDomain() = %+v", wire)
	}
	if !reflect.DeepEqual(wire.Remedies, domain.Remedies) {
		t.Errorf("wire remedies = %v, want %v", wire.Remedies, domain.Remedies)
	}

	back := wire.ToDomain()
	if !reflect.DeepEqual(back, domain) {
		t.Errorf("round trip = %+v, want %+v", back, domain)
	}
}

func TestErrorDetailToDomainNil(t *testing.T) {
	var m *ErrorDetail
	if got := m.ToDomain(); got != nil {
		t.Errorf("nil ErrorDetail.ToDomain() = %v, want nil", got)
	}
}
