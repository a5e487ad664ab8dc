// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: sidepool/ingest/v1/ingest.proto

package ingestv1

import (
	v1 "SidePool/gen/go/sidepool/events/v1"
	_ "google.golang.org/genproto/googleapis/api/annotations"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SubmitEventRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Envelope      *v1.EventEnvelope      `protobuf:"bytes,1,opt,name=envelope,proto3" json:"envelope,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitEventRequest) Reset() {
	*x = SubmitEventRequest{}
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitEventRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitEventRequest) ProtoMessage() {}

func (x *SubmitEventRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitEventRequest.ProtoReflect.Descriptor instead.
func (*SubmitEventRequest) Descriptor() ([]byte, []int) {
	return file_sidepool_ingest_v1_ingest_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitEventRequest) GetEnvelope() *v1.EventEnvelope {
	if x != nil {
		return x.Envelope
	}
	return nil
}

type SubmitEventResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitEventResponse) Reset() {
	*x = SubmitEventResponse{}
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitEventResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitEventResponse) ProtoMessage() {}

func (x *SubmitEventResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitEventResponse.ProtoReflect.Descriptor instead.
func (*SubmitEventResponse) Descriptor() ([]byte, []int) {
	return file_sidepool_ingest_v1_ingest_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitEventResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type BindPoolRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PoolId        string                 `protobuf:"bytes,1,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
	AssetA        string                 `protobuf:"bytes,2,opt,name=asset_a,json=assetA,proto3" json:"asset_a,omitempty"`
	AssetB        string                 `protobuf:"bytes,3,opt,name=asset_b,json=assetB,proto3" json:"asset_b,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BindPoolRequest) Reset() {
	*x = BindPoolRequest{}
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BindPoolRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BindPoolRequest) ProtoMessage() {}

func (x *BindPoolRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BindPoolRequest.ProtoReflect.Descriptor instead.
func (*BindPoolRequest) Descriptor() ([]byte, []int) {
	return file_sidepool_ingest_v1_ingest_proto_rawDescGZIP(), []int{2}
}

func (x *BindPoolRequest) GetPoolId() string {
	if x != nil {
		return x.PoolId
	}
	return ""
}

func (x *BindPoolRequest) GetAssetA() string {
	if x != nil {
		return x.AssetA
	}
	return ""
}

func (x *BindPoolRequest) GetAssetB() string {
	if x != nil {
		return x.AssetB
	}
	return ""
}

type BindPoolResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BindPoolResponse) Reset() {
	*x = BindPoolResponse{}
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BindPoolResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BindPoolResponse) ProtoMessage() {}

func (x *BindPoolResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BindPoolResponse.ProtoReflect.Descriptor instead.
func (*BindPoolResponse) Descriptor() ([]byte, []int) {
	return file_sidepool_ingest_v1_ingest_proto_rawDescGZIP(), []int{3}
}

func (x *BindPoolResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type FundRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	PoolId         string                 `protobuf:"bytes,1,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
	DepositorId    string                 `protobuf:"bytes,2,opt,name=depositor_id,json=depositorId,proto3" json:"depositor_id,omitempty"`
	Asset          string                 `protobuf:"bytes,3,opt,name=asset,proto3" json:"asset,omitempty"`
	Amount         int64                  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	SourceSequence int64                  `protobuf:"varint,5,opt,name=source_sequence,json=sourceSequence,proto3" json:"source_sequence,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *FundRequest) Reset() {
	*x = FundRequest{}
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FundRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FundRequest) ProtoMessage() {}

func (x *FundRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FundRequest.ProtoReflect.Descriptor instead.
func (*FundRequest) Descriptor() ([]byte, []int) {
	return file_sidepool_ingest_v1_ingest_proto_rawDescGZIP(), []int{4}
}

func (x *FundRequest) GetPoolId() string {
	if x != nil {
		return x.PoolId
	}
	return ""
}

func (x *FundRequest) GetDepositorId() string {
	if x != nil {
		return x.DepositorId
	}
	return ""
}

func (x *FundRequest) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *FundRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *FundRequest) GetSourceSequence() int64 {
	if x != nil {
		return x.SourceSequence
	}
	return 0
}

type FundResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FundResponse) Reset() {
	*x = FundResponse{}
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FundResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FundResponse) ProtoMessage() {}

func (x *FundResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FundResponse.ProtoReflect.Descriptor instead.
func (*FundResponse) Descriptor() ([]byte, []int) {
	return file_sidepool_ingest_v1_ingest_proto_rawDescGZIP(), []int{5}
}

func (x *FundResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type DefundRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	PoolId         string                 `protobuf:"bytes,1,opt,name=pool_id,json=poolId,proto3" json:"pool_id,omitempty"`
	DepositorId    string                 `protobuf:"bytes,2,opt,name=depositor_id,json=depositorId,proto3" json:"depositor_id,omitempty"`
	Asset          string                 `protobuf:"bytes,3,opt,name=asset,proto3" json:"asset,omitempty"`
	Amount         int64                  `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	SourceSequence int64                  `protobuf:"varint,5,opt,name=source_sequence,json=sourceSequence,proto3" json:"source_sequence,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DefundRequest) Reset() {
	*x = DefundRequest{}
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DefundRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DefundRequest) ProtoMessage() {}

func (x *DefundRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DefundRequest.ProtoReflect.Descriptor instead.
func (*DefundRequest) Descriptor() ([]byte, []int) {
	return file_sidepool_ingest_v1_ingest_proto_rawDescGZIP(), []int{6}
}

func (x *DefundRequest) GetPoolId() string {
	if x != nil {
		return x.PoolId
	}
	return ""
}

func (x *DefundRequest) GetDepositorId() string {
	if x != nil {
		return x.DepositorId
	}
	return ""
}

func (x *DefundRequest) GetAsset() string {
	if x != nil {
		return x.Asset
	}
	return ""
}

func (x *DefundRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

func (x *DefundRequest) GetSourceSequence() int64 {
	if x != nil {
		return x.SourceSequence
	}
	return 0
}

type DefundResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DefundResponse) Reset() {
	*x = DefundResponse{}
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DefundResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DefundResponse) ProtoMessage() {}

func (x *DefundResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sidepool_ingest_v1_ingest_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DefundResponse.ProtoReflect.Descriptor instead.
func (*DefundResponse) Descriptor() ([]byte, []int) {
	return file_sidepool_ingest_v1_ingest_proto_rawDescGZIP(), []int{7}
}

func (x *DefundResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

var File_sidepool_ingest_v1_ingest_proto protoreflect.FileDescriptor

var file_sidepool_ingest_v1_ingest_proto_rawDesc = string([]byte{
	0x0a, 0x1f, 0x73, 0x69, 0x64, 0x65, 0x70, 0x6f, 0x6f, 0x6c, 0x2f, 0x69, 0x6e, 0x67, 0x65, 0x73,
	0x74, 0x2f, 0x76, 0x31, 0x2f, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x70, 0x72, 0x6f, 0x74,
	0x6f, 0x12, 0x12, 0x73, 0x69, 0x64, 0x65, 0x70, 0x6f, 0x6f, 0x6c, 0x2e, 0x69, 0x6e, 0x67, 0x65,
	0x73, 0x74, 0x2e, 0x76, 0x31, 0x1a, 0x1c, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x61, 0x70,
	0x69, 0x2f, 0x61, 0x6e, 0x6e, 0x6f, 0x74, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x1a, 0x1f, 0x73, 0x69, 0x64, 0x65, 0x70, 0x6f, 0x6f, 0x6c, 0x2f, 0x65, 0x76,
	0x65, 0x6e, 0x74, 0x73, 0x2f, 0x76, 0x31, 0x2f, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x22, 0x53, 0x0a, 0x12, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x45, 0x76,
	0x65, 0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x3d, 0x0a, 0x08, 0x65, 0x6e,
	0x76, 0x65, 0x6c, 0x6f, 0x70, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x21, 0x2e, 0x73,
	0x69, 0x64, 0x65, 0x70, 0x6f, 0x6f, 0x6c, 0x2e, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x2e, 0x76,
	0x31, 0x2e, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x45, 0x6e, 0x76, 0x65, 0x6c, 0x6f, 0x70, 0x65, 0x52,
	0x08, 0x65, 0x6e, 0x76, 0x65, 0x6c, 0x6f, 0x70, 0x65, 0x22, 0x31, 0x0a, 0x13, 0x53, 0x75, 0x62,
	0x6d, 0x69, 0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x1a, 0x0a, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x08, 0x52, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x22, 0x5c, 0x0a, 0x0f,
	0x42, 0x69, 0x6e, 0x64, 0x50, 0x6f, 0x6f, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x17, 0x0a, 0x07, 0x70, 0x6f, 0x6f, 0x6c, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x06, 0x70, 0x6f, 0x6f, 0x6c, 0x49, 0x64, 0x12, 0x17, 0x0a, 0x07, 0x61, 0x73, 0x73, 0x65,
	0x74, 0x5f, 0x61, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x61, 0x73, 0x73, 0x65, 0x74,
	0x41, 0x12, 0x17, 0x0a, 0x07, 0x61, 0x73, 0x73, 0x65, 0x74, 0x5f, 0x62, 0x18, 0x03, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x06, 0x61, 0x73, 0x73, 0x65, 0x74, 0x42, 0x22, 0x2e, 0x0a, 0x10, 0x42, 0x69,
	0x6e, 0x64, 0x50, 0x6f, 0x6f, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1a,
	0x0a, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08,
	0x52, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x22, 0xa0, 0x01, 0x0a, 0x0b, 0x46,
	0x75, 0x6e, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x70, 0x6f,
	0x6f, 0x6c, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x70, 0x6f, 0x6f,
	0x6c, 0x49, 0x64, 0x12, 0x21, 0x0a, 0x0c, 0x64, 0x65, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x6f, 0x72,
	0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x64, 0x65, 0x70, 0x6f, 0x73,
	0x69, 0x74, 0x6f, 0x72, 0x49, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x61, 0x73, 0x73, 0x65, 0x74, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x73, 0x73, 0x65, 0x74, 0x12, 0x16, 0x0a, 0x06,
	0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61, 0x6d,
	0x6f, 0x75, 0x6e, 0x74, 0x12, 0x27, 0x0a, 0x0f, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x5f, 0x73,
	0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0e, 0x73,
	0x6f, 0x75, 0x72, 0x63, 0x65, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x2a, 0x0a,
	0x0c, 0x46, 0x75, 0x6e, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1a, 0x0a,
	0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52,
	0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x22, 0xa2, 0x01, 0x0a, 0x0d, 0x44, 0x65,
	0x66, 0x75, 0x6e, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x70,
	0x6f, 0x6f, 0x6c, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x70, 0x6f,
	0x6f, 0x6c, 0x49, 0x64, 0x12, 0x21, 0x0a, 0x0c, 0x64, 0x65, 0x70, 0x6f, 0x73, 0x69, 0x74, 0x6f,
	0x72, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x64, 0x65, 0x70, 0x6f,
	0x73, 0x69, 0x74, 0x6f, 0x72, 0x49, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x61, 0x73, 0x73, 0x65, 0x74,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x61, 0x73, 0x73, 0x65, 0x74, 0x12, 0x16, 0x0a,
	0x06, 0x61, 0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x06, 0x61,
	0x6d, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x27, 0x0a, 0x0f, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x5f,
	0x73, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0e,
	0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x53, 0x65, 0x71, 0x75, 0x65, 0x6e, 0x63, 0x65, 0x22, 0x2c,
	0x0a, 0x0e, 0x44, 0x65, 0x66, 0x75, 0x6e, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x1a, 0x0a, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x08, 0x52, 0x08, 0x61, 0x63, 0x63, 0x65, 0x70, 0x74, 0x65, 0x64, 0x32, 0xdb, 0x03, 0x0a,
	0x0d, 0x49, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x75,
	0x0a, 0x0b, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x12, 0x26, 0x2e,
	0x73, 0x69, 0x64, 0x65, 0x70, 0x6f, 0x6f, 0x6c, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e,
	0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x27, 0x2e, 0x73, 0x69, 0x64, 0x65, 0x70, 0x6f, 0x6f, 0x6c,
	0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69,
	0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x15,
	0x82, 0xd3, 0xe4, 0x93, 0x02, 0x0f, 0x3a, 0x01, 0x2a, 0x22, 0x0a, 0x2f, 0x76, 0x31, 0x2f, 0x65,
	0x76, 0x65, 0x6e, 0x74, 0x73, 0x12, 0x6b, 0x0a, 0x08, 0x42, 0x69, 0x6e, 0x64, 0x50, 0x6f, 0x6f,
	0x6c, 0x12, 0x23, 0x2e, 0x73, 0x69, 0x64, 0x65, 0x70, 0x6f, 0x6f, 0x6c, 0x2e, 0x69, 0x6e, 0x67,
	0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x69, 0x6e, 0x64, 0x50, 0x6f, 0x6f, 0x6c, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x24, 0x2e, 0x73, 0x69, 0x64, 0x65, 0x70, 0x6f, 0x6f,
	0x6c, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x69, 0x6e, 0x64,
	0x50, 0x6f, 0x6f, 0x6c, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x14, 0x82, 0xd3,
	0xe4, 0x93, 0x02, 0x0e, 0x3a, 0x01, 0x2a, 0x22, 0x09, 0x2f, 0x76, 0x31, 0x2f, 0x70, 0x6f, 0x6f,
	0x6c, 0x73, 0x12, 0x6e, 0x0a, 0x04, 0x46, 0x75, 0x6e, 0x64, 0x12, 0x1f, 0x2e, 0x73, 0x69, 0x64,
	0x65, 0x70, 0x6f, 0x6f, 0x6c, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x46, 0x75, 0x6e, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x73, 0x69,
	0x64, 0x65, 0x70, 0x6f, 0x6f, 0x6c, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76, 0x31,
	0x2e, 0x46, 0x75, 0x6e, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x23, 0x82,
	0xd3, 0xe4, 0x93, 0x02, 0x1d, 0x3a, 0x01, 0x2a, 0x22, 0x18, 0x2f, 0x76, 0x31, 0x2f, 0x70, 0x6f,
	0x6f, 0x6c, 0x73, 0x2f, 0x7b, 0x70, 0x6f, 0x6f, 0x6c, 0x5f, 0x69, 0x64, 0x7d, 0x2f, 0x66, 0x75,
	0x6e, 0x64, 0x12, 0x76, 0x0a, 0x06, 0x44, 0x65, 0x66, 0x75, 0x6e, 0x64, 0x12, 0x21, 0x2e, 0x73,
	0x69, 0x64, 0x65, 0x70, 0x6f, 0x6f, 0x6c, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2e, 0x76,
	0x31, 0x2e, 0x44, 0x65, 0x66, 0x75, 0x6e, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a,
	0x22, 0x2e, 0x73, 0x69, 0x64, 0x65, 0x70, 0x6f, 0x6f, 0x6c, 0x2e, 0x69, 0x6e, 0x67, 0x65, 0x73,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x44, 0x65, 0x66, 0x75, 0x6e, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x22, 0x25, 0x82, 0xd3, 0xe4, 0x93, 0x02, 0x1f, 0x3a, 0x01, 0x2a, 0x22, 0x1a,
	0x2f, 0x76, 0x31, 0x2f, 0x70, 0x6f, 0x6f, 0x6c, 0x73, 0x2f, 0x7b, 0x70, 0x6f, 0x6f, 0x6c, 0x5f,
	0x69, 0x64, 0x7d, 0x2f, 0x64, 0x65, 0x66, 0x75, 0x6e, 0x64, 0x42, 0x2d, 0x5a, 0x2b, 0x53, 0x69,
	0x64, 0x65, 0x50, 0x6f, 0x6f, 0x6c, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x67, 0x6f, 0x2f, 0x73, 0x69,
	0x64, 0x65, 0x70, 0x6f, 0x6f, 0x6c, 0x2f, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x2f, 0x76, 0x31,
	0x3b, 0x69, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x33,
})

var (
	file_sidepool_ingest_v1_ingest_proto_rawDescOnce sync.Once
	file_sidepool_ingest_v1_ingest_proto_rawDescData []byte
)

func file_sidepool_ingest_v1_ingest_proto_rawDescGZIP() []byte {
	file_sidepool_ingest_v1_ingest_proto_rawDescOnce.Do(func() {
		file_sidepool_ingest_v1_ingest_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_sidepool_ingest_v1_ingest_proto_rawDesc), len(file_sidepool_ingest_v1_ingest_proto_rawDesc)))
	})
	return file_sidepool_ingest_v1_ingest_proto_rawDescData
}

var file_sidepool_ingest_v1_ingest_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_sidepool_ingest_v1_ingest_proto_goTypes = []any{
	(*SubmitEventRequest)(nil),  // 0: sidepool.ingest.v1.SubmitEventRequest
	(*SubmitEventResponse)(nil), // 1: sidepool.ingest.v1.SubmitEventResponse
	(*BindPoolRequest)(nil),     // 2: sidepool.ingest.v1.BindPoolRequest
	(*BindPoolResponse)(nil),    // 3: sidepool.ingest.v1.BindPoolResponse
	(*FundRequest)(nil),         // 4: sidepool.ingest.v1.FundRequest
	(*FundResponse)(nil),        // 5: sidepool.ingest.v1.FundResponse
	(*DefundRequest)(nil),       // 6: sidepool.ingest.v1.DefundRequest
	(*DefundResponse)(nil),      // 7: sidepool.ingest.v1.DefundResponse
	(*v1.EventEnvelope)(nil),    // 8: sidepool.events.v1.EventEnvelope
}
var file_sidepool_ingest_v1_ingest_proto_depIdxs = []int32{
	8, // 0: sidepool.ingest.v1.SubmitEventRequest.envelope:type_name -> sidepool.events.v1.EventEnvelope
	0, // 1: sidepool.ingest.v1.IngestService.SubmitEvent:input_type -> sidepool.ingest.v1.SubmitEventRequest
	2, // 2: sidepool.ingest.v1.IngestService.BindPool:input_type -> sidepool.ingest.v1.BindPoolRequest
	4, // 3: sidepool.ingest.v1.IngestService.Fund:input_type -> sidepool.ingest.v1.FundRequest
	6, // 4: sidepool.ingest.v1.IngestService.Defund:input_type -> sidepool.ingest.v1.DefundRequest
	1, // 5: sidepool.ingest.v1.IngestService.SubmitEvent:output_type -> sidepool.ingest.v1.SubmitEventResponse
	3, // 6: sidepool.ingest.v1.IngestService.BindPool:output_type -> sidepool.ingest.v1.BindPoolResponse
	5, // 7: sidepool.ingest.v1.IngestService.Fund:output_type -> sidepool.ingest.v1.FundResponse
	7, // 8: sidepool.ingest.v1.IngestService.Defund:output_type -> sidepool.ingest.v1.DefundResponse
	5, // [5:9] is the sub-list for method output_type
	1, // [1:5] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_sidepool_ingest_v1_ingest_proto_init() }
func file_sidepool_ingest_v1_ingest_proto_init() {
	if File_sidepool_ingest_v1_ingest_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_sidepool_ingest_v1_ingest_proto_rawDesc), len(file_sidepool_ingest_v1_ingest_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_sidepool_ingest_v1_ingest_proto_goTypes,
		DependencyIndexes: file_sidepool_ingest_v1_ingest_proto_depIdxs,
		MessageInfos:      file_sidepool_ingest_v1_ingest_proto_msgTypes,
	}.Build()
	File_sidepool_ingest_v1_ingest_proto = out.File
	file_sidepool_ingest_v1_ingest_proto_goTypes = nil
	file_sidepool_ingest_v1_ingest_proto_depIdxs = nil
}
