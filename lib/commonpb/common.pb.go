// Package commonpb holds the hand-maintained Go counterparts of
// proto/aadk/v1/common.proto and proto/aadk/v1/errors.proto: the
// id-wrapper, timestamp, key-value, and error-detail messages shared by
// every service's wire protocol. Each message implements the minimal
// gogo/protobuf Message contract (Reset/String/ProtoMessage) so it can be
// marshaled by github.com/gogo/protobuf/proto and sent over
// google.golang.org/grpc, following the shape of the teacher's own
// generated messages in lib/rpc/proto/discovery.pb.go.
package commonpb

import (
	fmt "fmt"

	proto "github.com/gogo/protobuf/proto"
)

// Id wraps a job identifier passed over the wire; other identifiers are
// plain strings.
type Id struct {
	Value string `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Id) Reset()         { *m = Id{} }
func (m *Id) String() string { return proto.CompactTextString(m) }
func (*Id) ProtoMessage()    {}

// GetValue returns the wrapped string, or "" for a nil Id.
func (m *Id) GetValue() string {
	if m != nil {
		return m.Value
	}
	return ""
}

// WrapID returns nil for an empty string and an *Id otherwise, matching
// the "trimmed-empty ↔ absent" convention at the wire boundary.
func WrapID(value string) *Id {
	if value == "" {
		return nil
	}
	return &Id{Value: value}
}

// UnwrapID returns "" for a nil Id.
func UnwrapID(id *Id) string {
	if id == nil {
		return ""
	}
	return id.Value
}

// Timestamp is a Unix-milliseconds wall-clock instant.
type Timestamp struct {
	UnixMillis int64 `protobuf:"varint,1,opt,name=unix_millis,json=unixMillis,proto3" json:"unix_millis,omitempty"`
}

func (m *Timestamp) Reset()         { *m = Timestamp{} }
func (m *Timestamp) String() string { return proto.CompactTextString(m) }
func (*Timestamp) ProtoMessage()    {}

// GetUnixMillis returns the millisecond value, or 0 for nil.
func (m *Timestamp) GetUnixMillis() int64 {
	if m != nil {
		return m.UnixMillis
	}
	return 0
}

// WrapMillis returns nil for a zero value and a *Timestamp otherwise.
func WrapMillis(ms int64) *Timestamp {
	if ms == 0 {
		return nil
	}
	return &Timestamp{UnixMillis: ms}
}

// UnwrapMillis returns 0 for a nil Timestamp.
func UnwrapMillis(ts *Timestamp) int64 {
	if ts == nil {
		return 0
	}
	return ts.UnixMillis
}

// KeyValue is a generic property-bag entry.
type KeyValue struct {
	Key   string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value string `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *KeyValue) Reset()         { *m = KeyValue{} }
func (m *KeyValue) String() string { return proto.CompactTextString(m) }
func (*KeyValue) ProtoMessage()    {}

func (m *KeyValue) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

func (m *KeyValue) GetValue() string {
	if m != nil {
		return m.Value
	}
	return ""
}

// KV is a small constructor used throughout the publisher/workflow code to
// build metric and summary entries without a struct literal at every call
// site.
func KV(key string, value interface{}) *KeyValue {
	return &KeyValue{Key: key, Value: fmt.Sprintf("%v", value)}
}

// KVList converts an ordered map-like slice of pairs; pairs must have an
// even length (key, value, key, value, ...). Panics on an odd length since
// that always indicates a programming error at the call site.
func KVList(pairs ...interface{}) []*KeyValue {
	if len(pairs)%2 != 0 {
		panic("commonpb.KVList: odd number of arguments")
	}
	out := make([]*KeyValue, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, KV(fmt.Sprintf("%v", pairs[i]), pairs[i+1]))
	}
	return out
}
