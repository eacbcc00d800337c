// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: statements/v1/statements.proto

package statementspb

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

type ParseStatementRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Async         bool                   `protobuf:"varint,2,opt,name=async,proto3" json:"async,omitempty"` // queue the job and return immediately; poll with GetJob
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseStatementRequest) Reset() {
	*x = ParseStatementRequest{}
	mi := &file_statements_v1_statements_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseStatementRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseStatementRequest) ProtoMessage() {}

func (x *ParseStatementRequest) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseStatementRequest.ProtoReflect.Descriptor instead.
func (*ParseStatementRequest) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{0}
}

func (x *ParseStatementRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ParseStatementRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

type ParseStatementResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Deduplicated  bool                   `protobuf:"varint,3,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Result        *ParseResult           `protobuf:"bytes,4,opt,name=result,proto3" json:"result,omitempty"` // unset when async
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"` // job status at response time
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseStatementResponse) Reset() {
	*x = ParseStatementResponse{}
	mi := &file_statements_v1_statements_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseStatementResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseStatementResponse) ProtoMessage() {}

func (x *ParseStatementResponse) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseStatementResponse.ProtoReflect.Descriptor instead.
func (*ParseStatementResponse) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{1}
}

func (x *ParseStatementResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ParseStatementResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ParseStatementResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *ParseStatementResponse) GetResult() *ParseResult {
	if x != nil {
		return x.Result
	}
	return nil
}

func (x *ParseStatementResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_statements_v1_statements_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{2}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ParseJob              `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_statements_v1_statements_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobResponse) GetJob() *ParseJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetResultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetResultRequest) Reset() {
	*x = GetResultRequest{}
	mi := &file_statements_v1_statements_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetResultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetResultRequest) ProtoMessage() {}

func (x *GetResultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetResultRequest.ProtoReflect.Descriptor instead.
func (*GetResultRequest) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{4}
}

func (x *GetResultRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetResultResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *ParseResult           `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetResultResponse) Reset() {
	*x = GetResultResponse{}
	mi := &file_statements_v1_statements_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetResultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetResultResponse) ProtoMessage() {}

func (x *GetResultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetResultResponse.ProtoReflect.Descriptor instead.
func (*GetResultResponse) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{5}
}

func (x *GetResultResponse) GetResult() *ParseResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type ListResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Issuer        string                 `protobuf:"bytes,1,opt,name=issuer,proto3" json:"issuer,omitempty"` // empty = all issuers
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`  // 0 = server default
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResultsRequest) Reset() {
	*x = ListResultsRequest{}
	mi := &file_statements_v1_statements_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResultsRequest) ProtoMessage() {}

func (x *ListResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResultsRequest.ProtoReflect.Descriptor instead.
func (*ListResultsRequest) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{6}
}

func (x *ListResultsRequest) GetIssuer() string {
	if x != nil {
		return x.Issuer
	}
	return ""
}

func (x *ListResultsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*ParseResult         `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResultsResponse) Reset() {
	*x = ListResultsResponse{}
	mi := &file_statements_v1_statements_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResultsResponse) ProtoMessage() {}

func (x *ListResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResultsResponse.ProtoReflect.Descriptor instead.
func (*ListResultsResponse) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{7}
}

func (x *ListResultsResponse) GetResults() []*ParseResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type ExportTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsRequest) Reset() {
	*x = ExportTransactionsRequest{}
	mi := &file_statements_v1_statements_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsRequest) ProtoMessage() {}

func (x *ExportTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ExportTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{8}
}

func (x *ExportTransactionsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsResponse) Reset() {
	*x = ExportTransactionsResponse{}
	mi := &file_statements_v1_statements_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsResponse) ProtoMessage() {}

func (x *ExportTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ExportTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{9}
}

func (x *ExportTransactionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ParseJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Format        string                 `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	DecodeMethod  string                 `protobuf:"bytes,5,opt,name=decode_method,json=decodeMethod,proto3" json:"decode_method,omitempty"`
	Pages         int32                  `protobuf:"varint,6,opt,name=pages,proto3" json:"pages,omitempty"`
	OcrConfidence float64                `protobuf:"fixed64,7,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"`
	StartedAt     string                 `protobuf:"bytes,8,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`    // RFC 3339
	FinishedAt    string                 `protobuf:"bytes,9,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"` // RFC 3339, empty while running
	ErrorMessage  string                 `protobuf:"bytes,10,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseJob) Reset() {
	*x = ParseJob{}
	mi := &file_statements_v1_statements_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseJob) ProtoMessage() {}

func (x *ParseJob) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseJob.ProtoReflect.Descriptor instead.
func (*ParseJob) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{10}
}

func (x *ParseJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ParseJob) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ParseJob) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ParseJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ParseJob) GetDecodeMethod() string {
	if x != nil {
		return x.DecodeMethod
	}
	return ""
}

func (x *ParseJob) GetPages() int32 {
	if x != nil {
		return x.Pages
	}
	return 0
}

func (x *ParseJob) GetOcrConfidence() float64 {
	if x != nil {
		return x.OcrConfidence
	}
	return 0
}

func (x *ParseJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ParseJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *ParseJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type ParseResult struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId             string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Issuer            string                 `protobuf:"bytes,3,opt,name=issuer,proto3" json:"issuer,omitempty"`
	IssuerConfidence  float64                `protobuf:"fixed64,4,opt,name=issuer_confidence,json=issuerConfidence,proto3" json:"issuer_confidence,omitempty"`
	OverallConfidence float64                `protobuf:"fixed64,5,opt,name=overall_confidence,json=overallConfidence,proto3" json:"overall_confidence,omitempty"`
	Fields            []*ExtractedField      `protobuf:"bytes,6,rep,name=fields,proto3" json:"fields,omitempty"`
	Transactions      []*Transaction         `protobuf:"bytes,7,rep,name=transactions,proto3" json:"transactions,omitempty"`
	CreatedAt         string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ParseResult) Reset() {
	*x = ParseResult{}
	mi := &file_statements_v1_statements_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseResult) ProtoMessage() {}

func (x *ParseResult) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseResult.ProtoReflect.Descriptor instead.
func (*ParseResult) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{11}
}

func (x *ParseResult) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ParseResult) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ParseResult) GetIssuer() string {
	if x != nil {
		return x.Issuer
	}
	return ""
}

func (x *ParseResult) GetIssuerConfidence() float64 {
	if x != nil {
		return x.IssuerConfidence
	}
	return 0
}

func (x *ParseResult) GetOverallConfidence() float64 {
	if x != nil {
		return x.OverallConfidence
	}
	return 0
}

func (x *ParseResult) GetFields() []*ExtractedField {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ParseResult) GetTransactions() []*Transaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

func (x *ParseResult) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ExtractedField struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FieldId       string                 `protobuf:"bytes,1,opt,name=field_id,json=fieldId,proto3" json:"field_id,omitempty"`
	RawValue      string                 `protobuf:"bytes,2,opt,name=raw_value,json=rawValue,proto3" json:"raw_value,omitempty"`
	Value         string                 `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	Normalized    bool                   `protobuf:"varint,4,opt,name=normalized,proto3" json:"normalized,omitempty"`
	Confidence    float64                `protobuf:"fixed64,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Strategy      string                 `protobuf:"bytes,6,opt,name=strategy,proto3" json:"strategy,omitempty"`
	Snippet       string                 `protobuf:"bytes,7,opt,name=snippet,proto3" json:"snippet,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractedField) Reset() {
	*x = ExtractedField{}
	mi := &file_statements_v1_statements_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedField) ProtoMessage() {}

func (x *ExtractedField) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedField.ProtoReflect.Descriptor instead.
func (*ExtractedField) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{12}
}

func (x *ExtractedField) GetFieldId() string {
	if x != nil {
		return x.FieldId
	}
	return ""
}

func (x *ExtractedField) GetRawValue() string {
	if x != nil {
		return x.RawValue
	}
	return ""
}

func (x *ExtractedField) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *ExtractedField) GetNormalized() bool {
	if x != nil {
		return x.Normalized
	}
	return false
}

func (x *ExtractedField) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractedField) GetStrategy() string {
	if x != nil {
		return x.Strategy
	}
	return ""
}

func (x *ExtractedField) GetSnippet() string {
	if x != nil {
		return x.Snippet
	}
	return ""
}

type Transaction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Date          string                 `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"` // YYYY-MM-DD
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Amount        string                 `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"` // signed decimal string, credits negative
	Credit        bool                   `protobuf:"varint,4,opt,name=credit,proto3" json:"credit,omitempty"`
	Confidence    float64                `protobuf:"fixed64,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Page          int32                  `protobuf:"varint,6,opt,name=page,proto3" json:"page,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_statements_v1_statements_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_statements_v1_statements_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transaction.ProtoReflect.Descriptor instead.
func (*Transaction) Descriptor() ([]byte, []int) {
	return file_statements_v1_statements_proto_rawDescGZIP(), []int{13}
}

func (x *Transaction) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *Transaction) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Transaction) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Transaction) GetCredit() bool {
	if x != nil {
		return x.Credit
	}
	return false
}

func (x *Transaction) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Transaction) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

var File_statements_v1_statements_proto protoreflect.FileDescriptor

const file_statements_v1_statements_proto_rawDesc = "" +
	"\n" +
	"\x1estatements/v1/statements.proto\x12\rstatements.v1\"A\n" +
	"\x15ParseStatementRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x14\n" +
	"\x05async\x18\x02 \x01(\bR\x05async\"\xc0\x01\n" +
	"\x16ParseStatementResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\"\n" +
	"\fdeduplicated\x18\x03 \x01(\bR\fdeduplicated\x122\n" +
	"\x06result\x18\x04 \x01(\v2\x1a.statements.v1.ParseResultR\x06result\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\";\n" +
	"\x0eGetJobResponse\x12)\n" +
	"\x03job\x18\x01 \x01(\v2\x17.statements.v1.ParseJobR\x03job\")\n" +
	"\x10GetResultRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"G\n" +
	"\x11GetResultResponse\x122\n" +
	"\x06result\x18\x01 \x01(\v2\x1a.statements.v1.ParseResultR\x06result\"B\n" +
	"\x12ListResultsRequest\x12\x16\n" +
	"\x06issuer\x18\x01 \x01(\tR\x06issuer\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"K\n" +
	"\x13ListResultsResponse\x124\n" +
	"\aresults\x18\x01 \x03(\v2\x1a.statements.v1.ParseResultR\aresults\"2\n" +
	"\x19ExportTransactionsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"0\n" +
	"\x1aExportTransactionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xb2\x02\n" +
	"\bParseJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12#\n" +
	"\rdecode_method\x18\x05 \x01(\tR\fdecodeMethod\x12\x14\n" +
	"\x05pages\x18\x06 \x01(\x05R\x05pages\x12%\n" +
	"\x0eocr_confidence\x18\a \x01(\x01R\rocrConfidence\x12\x1d\n" +
	"\n" +
	"started_at\x18\b \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\t \x01(\tR\n" +
	"finishedAt\x12#\n" +
	"\rerror_message\x18\n" +
	" \x01(\tR\ferrorMessage\"\xbe\x02\n" +
	"\vParseResult\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06issuer\x18\x03 \x01(\tR\x06issuer\x12+\n" +
	"\x11issuer_confidence\x18\x04 \x01(\x01R\x10issuerConfidence\x12-\n" +
	"\x12overall_confidence\x18\x05 \x01(\x01R\x11overallConfidence\x125\n" +
	"\x06fields\x18\x06 \x03(\v2\x1d.statements.v1.ExtractedFieldR\x06fields\x12>\n" +
	"\ftransactions\x18\a \x03(\v2\x1a.statements.v1.TransactionR\ftransactions\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"\xd4\x01\n" +
	"\x0eExtractedField\x12\x19\n" +
	"\bfield_id\x18\x01 \x01(\tR\afieldId\x12\x1b\n" +
	"\traw_value\x18\x02 \x01(\tR\brawValue\x12\x14\n" +
	"\x05value\x18\x03 \x01(\tR\x05value\x12\x1e\n" +
	"\n" +
	"normalized\x18\x04 \x01(\bR\n" +
	"normalized\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x01R\n" +
	"confidence\x12\x1a\n" +
	"\bstrategy\x18\x06 \x01(\tR\bstrategy\x12\x18\n" +
	"\asnippet\x18\a \x01(\tR\asnippet\"\xa7\x01\n" +
	"\vTransaction\x12\x12\n" +
	"\x04date\x18\x01 \x01(\tR\x04date\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\tR\x06amount\x12\x16\n" +
	"\x06credit\x18\x04 \x01(\bR\x06credit\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x01R\n" +
	"confidence\x12\x12\n" +
	"\x04page\x18\x06 \x01(\x05R\x04page2\xca\x03\n" +
	"\x11StatementsService\x12]\n" +
	"\x0eParseStatement\x12$.statements.v1.ParseStatementRequest\x1a%.statements.v1.ParseStatementResponse\x12E\n" +
	"\x06GetJob\x12\x1c.statements.v1.GetJobRequest\x1a\x1d.statements.v1.GetJobResponse\x12N\n" +
	"\tGetResult\x12\x1f.statements.v1.GetResultRequest\x1a .statements.v1.GetResultResponse\x12T\n" +
	"\vListResults\x12!.statements.v1.ListResultsRequest\x1a\".statements.v1.ListResultsResponse\x12i\n" +
	"\x12ExportTransactions\x12(.statements.v1.ExportTransactionsRequest\x1a).statements.v1.ExportTransactionsResponseBYZWgithub.com/Shubh2310-developer/cc-statement-parser/gen/proto/statements/v1;statementspbb\x06proto3"

var (
	file_statements_v1_statements_proto_rawDescOnce sync.Once
	file_statements_v1_statements_proto_rawDescData []byte
)

func file_statements_v1_statements_proto_rawDescGZIP() []byte {
	file_statements_v1_statements_proto_rawDescOnce.Do(func() {
		file_statements_v1_statements_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_statements_v1_statements_proto_rawDesc), len(file_statements_v1_statements_proto_rawDesc)))
	})
	return file_statements_v1_statements_proto_rawDescData
}

var file_statements_v1_statements_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_statements_v1_statements_proto_goTypes = []any{
	(*ParseStatementRequest)(nil),      // 0: statements.v1.ParseStatementRequest
	(*ParseStatementResponse)(nil),     // 1: statements.v1.ParseStatementResponse
	(*GetJobRequest)(nil),              // 2: statements.v1.GetJobRequest
	(*GetJobResponse)(nil),             // 3: statements.v1.GetJobResponse
	(*GetResultRequest)(nil),           // 4: statements.v1.GetResultRequest
	(*GetResultResponse)(nil),          // 5: statements.v1.GetResultResponse
	(*ListResultsRequest)(nil),         // 6: statements.v1.ListResultsRequest
	(*ListResultsResponse)(nil),        // 7: statements.v1.ListResultsResponse
	(*ExportTransactionsRequest)(nil),  // 8: statements.v1.ExportTransactionsRequest
	(*ExportTransactionsResponse)(nil), // 9: statements.v1.ExportTransactionsResponse
	(*ParseJob)(nil),                   // 10: statements.v1.ParseJob
	(*ParseResult)(nil),                // 11: statements.v1.ParseResult
	(*ExtractedField)(nil),             // 12: statements.v1.ExtractedField
	(*Transaction)(nil),                // 13: statements.v1.Transaction
}
var file_statements_v1_statements_proto_depIdxs = []int32{
	11, // 0: statements.v1.ParseStatementResponse.result:type_name -> statements.v1.ParseResult
	10, // 1: statements.v1.GetJobResponse.job:type_name -> statements.v1.ParseJob
	11, // 2: statements.v1.GetResultResponse.result:type_name -> statements.v1.ParseResult
	11, // 3: statements.v1.ListResultsResponse.results:type_name -> statements.v1.ParseResult
	12, // 4: statements.v1.ParseResult.fields:type_name -> statements.v1.ExtractedField
	13, // 5: statements.v1.ParseResult.transactions:type_name -> statements.v1.Transaction
	0,  // 6: statements.v1.StatementsService.ParseStatement:input_type -> statements.v1.ParseStatementRequest
	2,  // 7: statements.v1.StatementsService.GetJob:input_type -> statements.v1.GetJobRequest
	4,  // 8: statements.v1.StatementsService.GetResult:input_type -> statements.v1.GetResultRequest
	6,  // 9: statements.v1.StatementsService.ListResults:input_type -> statements.v1.ListResultsRequest
	8,  // 10: statements.v1.StatementsService.ExportTransactions:input_type -> statements.v1.ExportTransactionsRequest
	1,  // 11: statements.v1.StatementsService.ParseStatement:output_type -> statements.v1.ParseStatementResponse
	3,  // 12: statements.v1.StatementsService.GetJob:output_type -> statements.v1.GetJobResponse
	5,  // 13: statements.v1.StatementsService.GetResult:output_type -> statements.v1.GetResultResponse
	7,  // 14: statements.v1.StatementsService.ListResults:output_type -> statements.v1.ListResultsResponse
	9,  // 15: statements.v1.StatementsService.ExportTransactions:output_type -> statements.v1.ExportTransactionsResponse
	11, // [11:16] is the sub-list for method output_type
	6,  // [6:11] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_statements_v1_statements_proto_init() }
func file_statements_v1_statements_proto_init() {
	if File_statements_v1_statements_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_statements_v1_statements_proto_rawDesc), len(file_statements_v1_statements_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_statements_v1_statements_proto_goTypes,
		DependencyIndexes: file_statements_v1_statements_proto_depIdxs,
		MessageInfos:      file_statements_v1_statements_proto_msgTypes,
	}.Build()
	File_statements_v1_statements_proto = out.File
	file_statements_v1_statements_proto_goTypes = nil
	file_statements_v1_statements_proto_depIdxs = nil
}
