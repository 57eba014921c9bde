// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: scoring.proto

package scoring

import (
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

type StartSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AlphabetSize  int32                  `protobuf:"varint,1,opt,name=alphabet_size,json=alphabetSize,proto3" json:"alphabet_size,omitempty"` // 0 selects the engine default
	MaxOrder      int32                  `protobuf:"varint,2,opt,name=max_order,json=maxOrder,proto3" json:"max_order,omitempty"`
	Smoothing     float64                `protobuf:"fixed64,3,opt,name=smoothing,proto3" json:"smoothing,omitempty"`
	MixRate       float64                `protobuf:"fixed64,4,opt,name=mix_rate,json=mixRate,proto3" json:"mix_rate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartSessionRequest) Reset() {
	*x = StartSessionRequest{}
	mi := &file_scoring_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartSessionRequest) ProtoMessage() {}

func (x *StartSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartSessionRequest.ProtoReflect.Descriptor instead.
func (*StartSessionRequest) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{0}
}

func (x *StartSessionRequest) GetAlphabetSize() int32 {
	if x != nil {
		return x.AlphabetSize
	}
	return 0
}

func (x *StartSessionRequest) GetMaxOrder() int32 {
	if x != nil {
		return x.MaxOrder
	}
	return 0
}

func (x *StartSessionRequest) GetSmoothing() float64 {
	if x != nil {
		return x.Smoothing
	}
	return 0
}

func (x *StartSessionRequest) GetMixRate() float64 {
	if x != nil {
		return x.MixRate
	}
	return 0
}

type StartSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartSessionResponse) Reset() {
	*x = StartSessionResponse{}
	mi := &file_scoring_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartSessionResponse) ProtoMessage() {}

func (x *StartSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartSessionResponse.ProtoReflect.Descriptor instead.
func (*StartSessionResponse) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{1}
}

func (x *StartSessionResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type PredictRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PredictRequest) Reset() {
	*x = PredictRequest{}
	mi := &file_scoring_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PredictRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PredictRequest) ProtoMessage() {}

func (x *PredictRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PredictRequest.ProtoReflect.Descriptor instead.
func (*PredictRequest) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{2}
}

func (x *PredictRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type PredictResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Probabilities []float64              `protobuf:"fixed64,1,rep,packed,name=probabilities,proto3" json:"probabilities,omitempty"` // mixture distribution over the alphabet
	Weights       []float64              `protobuf:"fixed64,2,rep,packed,name=weights,proto3" json:"weights,omitempty"`             // current per-order mixture weights
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PredictResponse) Reset() {
	*x = PredictResponse{}
	mi := &file_scoring_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PredictResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PredictResponse) ProtoMessage() {}

func (x *PredictResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PredictResponse.ProtoReflect.Descriptor instead.
func (*PredictResponse) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{3}
}

func (x *PredictResponse) GetProbabilities() []float64 {
	if x != nil {
		return x.Probabilities
	}
	return nil
}

func (x *PredictResponse) GetWeights() []float64 {
	if x != nil {
		return x.Weights
	}
	return nil
}

type ObserveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Symbol        int32                  `protobuf:"varint,2,opt,name=symbol,proto3" json:"symbol,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ObserveRequest) Reset() {
	*x = ObserveRequest{}
	mi := &file_scoring_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ObserveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ObserveRequest) ProtoMessage() {}

func (x *ObserveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ObserveRequest.ProtoReflect.Descriptor instead.
func (*ObserveRequest) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{4}
}

func (x *ObserveRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *ObserveRequest) GetSymbol() int32 {
	if x != nil {
		return x.Symbol
	}
	return 0
}

type ObserveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MoveIndex     int32                  `protobuf:"varint,1,opt,name=move_index,json=moveIndex,proto3" json:"move_index,omitempty"`
	Probability   float64                `protobuf:"fixed64,2,opt,name=probability,proto3" json:"probability,omitempty"`
	SurpriseBits  float64                `protobuf:"fixed64,3,opt,name=surprise_bits,json=surpriseBits,proto3" json:"surprise_bits,omitempty"`
	Score         float64                `protobuf:"fixed64,4,opt,name=score,proto3" json:"score,omitempty"` // running calibrated score
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ObserveResponse) Reset() {
	*x = ObserveResponse{}
	mi := &file_scoring_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ObserveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ObserveResponse) ProtoMessage() {}

func (x *ObserveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ObserveResponse.ProtoReflect.Descriptor instead.
func (*ObserveResponse) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{5}
}

func (x *ObserveResponse) GetMoveIndex() int32 {
	if x != nil {
		return x.MoveIndex
	}
	return 0
}

func (x *ObserveResponse) GetProbability() float64 {
	if x != nil {
		return x.Probability
	}
	return 0
}

func (x *ObserveResponse) GetSurpriseBits() float64 {
	if x != nil {
		return x.SurpriseBits
	}
	return 0
}

func (x *ObserveResponse) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

type GetScoreRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScoreRequest) Reset() {
	*x = GetScoreRequest{}
	mi := &file_scoring_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScoreRequest) ProtoMessage() {}

func (x *GetScoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScoreRequest.ProtoReflect.Descriptor instead.
func (*GetScoreRequest) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{6}
}

func (x *GetScoreRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetScoreResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Score            float64                `protobuf:"fixed64,1,opt,name=score,proto3" json:"score,omitempty"`
	MeanSurpriseBits float64                `protobuf:"fixed64,2,opt,name=mean_surprise_bits,json=meanSurpriseBits,proto3" json:"mean_surprise_bits,omitempty"`
	Moves            int32                  `protobuf:"varint,3,opt,name=moves,proto3" json:"moves,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GetScoreResponse) Reset() {
	*x = GetScoreResponse{}
	mi := &file_scoring_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScoreResponse) ProtoMessage() {}

func (x *GetScoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScoreResponse.ProtoReflect.Descriptor instead.
func (*GetScoreResponse) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{7}
}

func (x *GetScoreResponse) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *GetScoreResponse) GetMeanSurpriseBits() float64 {
	if x != nil {
		return x.MeanSurpriseBits
	}
	return 0
}

func (x *GetScoreResponse) GetMoves() int32 {
	if x != nil {
		return x.Moves
	}
	return 0
}

type EndSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	Archive       bool                   `protobuf:"varint,2,opt,name=archive,proto3" json:"archive,omitempty"` // persist the stream to the session archive
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EndSessionRequest) Reset() {
	*x = EndSessionRequest{}
	mi := &file_scoring_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EndSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EndSessionRequest) ProtoMessage() {}

func (x *EndSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EndSessionRequest.ProtoReflect.Descriptor instead.
func (*EndSessionRequest) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{8}
}

func (x *EndSessionRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *EndSessionRequest) GetArchive() bool {
	if x != nil {
		return x.Archive
	}
	return false
}

type EndSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FinalScore    float64                `protobuf:"fixed64,1,opt,name=final_score,json=finalScore,proto3" json:"final_score,omitempty"`
	Moves         int32                  `protobuf:"varint,2,opt,name=moves,proto3" json:"moves,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EndSessionResponse) Reset() {
	*x = EndSessionResponse{}
	mi := &file_scoring_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EndSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EndSessionResponse) ProtoMessage() {}

func (x *EndSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scoring_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EndSessionResponse.ProtoReflect.Descriptor instead.
func (*EndSessionResponse) Descriptor() ([]byte, []int) {
	return file_scoring_proto_rawDescGZIP(), []int{9}
}

func (x *EndSessionResponse) GetFinalScore() float64 {
	if x != nil {
		return x.FinalScore
	}
	return 0
}

func (x *EndSessionResponse) GetMoves() int32 {
	if x != nil {
		return x.Moves
	}
	return 0
}

var File_scoring_proto protoreflect.FileDescriptor

const file_scoring_proto_rawDesc = "" +
	"\n" +
	"\rscoring.proto\x12\x12mindunbind.scoring\"\x90\x01\n" +
	"\x13StartSessionRequest\x12#\n" +
	"\ralphabet_size\x18\x01 \x01(\x05R\falphabetSize\x12\x1b\n" +
	"\tmax_order\x18\x02 \x01(\x05R\bmaxOrder\x12\x1c\n" +
	"\tsmoothing\x18\x03 \x01(\x01R\tsmoothing\x12\x19\n" +
	"\bmix_rate\x18\x04 \x01(\x01R\amixRate\"5\n" +
	"\x14StartSessionResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"/\n" +
	"\x0ePredictRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"Q\n" +
	"\x0fPredictResponse\x12$\n" +
	"\rprobabilities\x18\x01 \x03(\x01R\rprobabilities\x12\x18\n" +
	"\aweights\x18\x02 \x03(\x01R\aweights\"G\n" +
	"\x0eObserveRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x16\n" +
	"\x06symbol\x18\x02 \x01(\x05R\x06symbol\"\x8d\x01\n" +
	"\x0fObserveResponse\x12\x1d\n" +
	"\n" +
	"move_index\x18\x01 \x01(\x05R\tmoveIndex\x12 \n" +
	"\vprobability\x18\x02 \x01(\x01R\vprobability\x12#\n" +
	"\rsurprise_bits\x18\x03 \x01(\x01R\fsurpriseBits\x12\x14\n" +
	"\x05score\x18\x04 \x01(\x01R\x05score\"0\n" +
	"\x0fGetScoreRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"l\n" +
	"\x10GetScoreResponse\x12\x14\n" +
	"\x05score\x18\x01 \x01(\x01R\x05score\x12,\n" +
	"\x12mean_surprise_bits\x18\x02 \x01(\x01R\x10meanSurpriseBits\x12\x14\n" +
	"\x05moves\x18\x03 \x01(\x05R\x05moves\"L\n" +
	"\x11EndSessionRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x18\n" +
	"\aarchive\x18\x02 \x01(\bR\aarchive\"K\n" +
	"\x12EndSessionResponse\x12\x1f\n" +
	"\vfinal_score\x18\x01 \x01(\x01R\n" +
	"finalScore\x12\x14\n" +
	"\x05moves\x18\x02 \x01(\x05R\x05moves2\xcf\x03\n" +
	"\x0eScoringService\x12a\n" +
	"\fStartSession\x12'.mindunbind.scoring.StartSessionRequest\x1a(.mindunbind.scoring.StartSessionResponse\x12R\n" +
	"\aPredict\x12\".mindunbind.scoring.PredictRequest\x1a#.mindunbind.scoring.PredictResponse\x12R\n" +
	"\aObserve\x12\".mindunbind.scoring.ObserveRequest\x1a#.mindunbind.scoring.ObserveResponse\x12U\n" +
	"\bGetScore\x12#.mindunbind.scoring.GetScoreRequest\x1a$.mindunbind.scoring.GetScoreResponse\x12[\n" +
	"\n" +
	"EndSession\x12%.mindunbind.scoring.EndSessionRequest\x1a&.mindunbind.scoring.EndSessionResponseB9Z7github.com/mindunbind/mind-unbind/go-engine/gen/scoringb\x06proto3"

var (
	file_scoring_proto_rawDescOnce sync.Once
	file_scoring_proto_rawDescData []byte
)

func file_scoring_proto_rawDescGZIP() []byte {
	file_scoring_proto_rawDescOnce.Do(func() {
		file_scoring_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_scoring_proto_rawDesc), len(file_scoring_proto_rawDesc)))
	})
	return file_scoring_proto_rawDescData
}

var file_scoring_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_scoring_proto_goTypes = []any{
	(*StartSessionRequest)(nil),  // 0: mindunbind.scoring.StartSessionRequest
	(*StartSessionResponse)(nil), // 1: mindunbind.scoring.StartSessionResponse
	(*PredictRequest)(nil),       // 2: mindunbind.scoring.PredictRequest
	(*PredictResponse)(nil),      // 3: mindunbind.scoring.PredictResponse
	(*ObserveRequest)(nil),       // 4: mindunbind.scoring.ObserveRequest
	(*ObserveResponse)(nil),      // 5: mindunbind.scoring.ObserveResponse
	(*GetScoreRequest)(nil),      // 6: mindunbind.scoring.GetScoreRequest
	(*GetScoreResponse)(nil),     // 7: mindunbind.scoring.GetScoreResponse
	(*EndSessionRequest)(nil),    // 8: mindunbind.scoring.EndSessionRequest
	(*EndSessionResponse)(nil),   // 9: mindunbind.scoring.EndSessionResponse
}
var file_scoring_proto_depIdxs = []int32{
	0, // 0: mindunbind.scoring.ScoringService.StartSession:input_type -> mindunbind.scoring.StartSessionRequest
	2, // 1: mindunbind.scoring.ScoringService.Predict:input_type -> mindunbind.scoring.PredictRequest
	4, // 2: mindunbind.scoring.ScoringService.Observe:input_type -> mindunbind.scoring.ObserveRequest
	6, // 3: mindunbind.scoring.ScoringService.GetScore:input_type -> mindunbind.scoring.GetScoreRequest
	8, // 4: mindunbind.scoring.ScoringService.EndSession:input_type -> mindunbind.scoring.EndSessionRequest
	1, // 5: mindunbind.scoring.ScoringService.StartSession:output_type -> mindunbind.scoring.StartSessionResponse
	3, // 6: mindunbind.scoring.ScoringService.Predict:output_type -> mindunbind.scoring.PredictResponse
	5, // 7: mindunbind.scoring.ScoringService.Observe:output_type -> mindunbind.scoring.ObserveResponse
	7, // 8: mindunbind.scoring.ScoringService.GetScore:output_type -> mindunbind.scoring.GetScoreResponse
	9, // 9: mindunbind.scoring.ScoringService.EndSession:output_type -> mindunbind.scoring.EndSessionResponse
	5, // [5:10] is the sub-list for method output_type
	0, // [0:5] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_scoring_proto_init() }
func file_scoring_proto_init() {
	if File_scoring_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_scoring_proto_rawDesc), len(file_scoring_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_scoring_proto_goTypes,
		DependencyIndexes: file_scoring_proto_depIdxs,
		MessageInfos:      file_scoring_proto_msgTypes,
	}.Build()
	File_scoring_proto = out.File
	file_scoring_proto_goTypes = nil
	file_scoring_proto_depIdxs = nil
}
