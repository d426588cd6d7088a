// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: nutrition/v1/nutrition.proto

package nutritionpb

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

type NutrientFacts struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EnergyKj      *float64               `protobuf:"fixed64,1,opt,name=energy_kj,json=energyKj,proto3,oneof" json:"energy_kj,omitempty"`
	EnergyKcal    *float64               `protobuf:"fixed64,2,opt,name=energy_kcal,json=energyKcal,proto3,oneof" json:"energy_kcal,omitempty"`
	Protein       *float64               `protobuf:"fixed64,3,opt,name=protein,proto3,oneof" json:"protein,omitempty"`
	Fat           *float64               `protobuf:"fixed64,4,opt,name=fat,proto3,oneof" json:"fat,omitempty"`
	SaturatedFat  *float64               `protobuf:"fixed64,5,opt,name=saturated_fat,json=saturatedFat,proto3,oneof" json:"saturated_fat,omitempty"`
	Carbohydrate  *float64               `protobuf:"fixed64,6,opt,name=carbohydrate,proto3,oneof" json:"carbohydrate,omitempty"`
	Sugar         *float64               `protobuf:"fixed64,7,opt,name=sugar,proto3,oneof" json:"sugar,omitempty"`
	Fiber         *float64               `protobuf:"fixed64,8,opt,name=fiber,proto3,oneof" json:"fiber,omitempty"`
	Sodium        *float64               `protobuf:"fixed64,9,opt,name=sodium,proto3,oneof" json:"sodium,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NutrientFacts) Reset() {
	*x = NutrientFacts{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NutrientFacts) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NutrientFacts) ProtoMessage() {}

func (x *NutrientFacts) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NutrientFacts.ProtoReflect.Descriptor instead.
func (*NutrientFacts) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{0}
}

func (x *NutrientFacts) GetEnergyKj() float64 {
	if x != nil && x.EnergyKj != nil {
		return *x.EnergyKj
	}
	return 0
}

func (x *NutrientFacts) GetEnergyKcal() float64 {
	if x != nil && x.EnergyKcal != nil {
		return *x.EnergyKcal
	}
	return 0
}

func (x *NutrientFacts) GetProtein() float64 {
	if x != nil && x.Protein != nil {
		return *x.Protein
	}
	return 0
}

func (x *NutrientFacts) GetFat() float64 {
	if x != nil && x.Fat != nil {
		return *x.Fat
	}
	return 0
}

func (x *NutrientFacts) GetSaturatedFat() float64 {
	if x != nil && x.SaturatedFat != nil {
		return *x.SaturatedFat
	}
	return 0
}

func (x *NutrientFacts) GetCarbohydrate() float64 {
	if x != nil && x.Carbohydrate != nil {
		return *x.Carbohydrate
	}
	return 0
}

func (x *NutrientFacts) GetSugar() float64 {
	if x != nil && x.Sugar != nil {
		return *x.Sugar
	}
	return 0
}

func (x *NutrientFacts) GetFiber() float64 {
	if x != nil && x.Fiber != nil {
		return *x.Fiber
	}
	return 0
}

func (x *NutrientFacts) GetSodium() float64 {
	if x != nil && x.Sodium != nil {
		return *x.Sodium
	}
	return 0
}

type Detection struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId             string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"` // empty for anonymous scans
	DetectionType      string                 `protobuf:"bytes,3,opt,name=detection_type,json=detectionType,proto3" json:"detection_type,omitempty"`
	Status             string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	ImagePath          string                 `protobuf:"bytes,5,opt,name=image_path,json=imagePath,proto3" json:"image_path,omitempty"`
	RawText            string                 `protobuf:"bytes,6,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	Barcode            string                 `protobuf:"bytes,7,opt,name=barcode,proto3" json:"barcode,omitempty"`
	ProductName        string                 `protobuf:"bytes,8,opt,name=product_name,json=productName,proto3" json:"product_name,omitempty"`
	Brand              string                 `protobuf:"bytes,9,opt,name=brand,proto3" json:"brand,omitempty"`
	Category           string                 `protobuf:"bytes,10,opt,name=category,proto3" json:"category,omitempty"`
	Nutrients          *NutrientFacts         `protobuf:"bytes,11,opt,name=nutrients,proto3" json:"nutrients,omitempty"`
	OtherNutrientsJson string                 `protobuf:"bytes,12,opt,name=other_nutrients_json,json=otherNutrientsJson,proto3" json:"other_nutrients_json,omitempty"`
	HealthScore        *float64               `protobuf:"fixed64,13,opt,name=health_score,json=healthScore,proto3,oneof" json:"health_score,omitempty"`
	RiskLevel          string                 `protobuf:"bytes,14,opt,name=risk_level,json=riskLevel,proto3" json:"risk_level,omitempty"`
	HealthAdvice       string                 `protobuf:"bytes,15,opt,name=health_advice,json=healthAdvice,proto3" json:"health_advice,omitempty"`
	AnalysisJson       string                 `protobuf:"bytes,16,opt,name=analysis_json,json=analysisJson,proto3" json:"analysis_json,omitempty"`
	RiskFactorsJson    string                 `protobuf:"bytes,17,opt,name=risk_factors_json,json=riskFactorsJson,proto3" json:"risk_factors_json,omitempty"`
	OcrConfidence      *float32               `protobuf:"fixed32,18,opt,name=ocr_confidence,json=ocrConfidence,proto3,oneof" json:"ocr_confidence,omitempty"`
	ProcessingMs       *int64                 `protobuf:"varint,19,opt,name=processing_ms,json=processingMs,proto3,oneof" json:"processing_ms,omitempty"`
	ErrorMessage       string                 `protobuf:"bytes,20,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	UserRating         *int32                 `protobuf:"varint,21,opt,name=user_rating,json=userRating,proto3,oneof" json:"user_rating,omitempty"`
	UserFeedback       string                 `protobuf:"bytes,22,opt,name=user_feedback,json=userFeedback,proto3" json:"user_feedback,omitempty"`
	IsAccurate         *bool                  `protobuf:"varint,23,opt,name=is_accurate,json=isAccurate,proto3,oneof" json:"is_accurate,omitempty"`
	IsFavorite         bool                   `protobuf:"varint,24,opt,name=is_favorite,json=isFavorite,proto3" json:"is_favorite,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,25,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt          string                 `protobuf:"bytes,26,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	CompletedAt        string                 `protobuf:"bytes,27,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Detection) Reset() {
	*x = Detection{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Detection) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Detection) ProtoMessage() {}

func (x *Detection) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Detection.ProtoReflect.Descriptor instead.
func (*Detection) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{1}
}

func (x *Detection) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Detection) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Detection) GetDetectionType() string {
	if x != nil {
		return x.DetectionType
	}
	return ""
}

func (x *Detection) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Detection) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

func (x *Detection) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *Detection) GetBarcode() string {
	if x != nil {
		return x.Barcode
	}
	return ""
}

func (x *Detection) GetProductName() string {
	if x != nil {
		return x.ProductName
	}
	return ""
}

func (x *Detection) GetBrand() string {
	if x != nil {
		return x.Brand
	}
	return ""
}

func (x *Detection) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Detection) GetNutrients() *NutrientFacts {
	if x != nil {
		return x.Nutrients
	}
	return nil
}

func (x *Detection) GetOtherNutrientsJson() string {
	if x != nil {
		return x.OtherNutrientsJson
	}
	return ""
}

func (x *Detection) GetHealthScore() float64 {
	if x != nil && x.HealthScore != nil {
		return *x.HealthScore
	}
	return 0
}

func (x *Detection) GetRiskLevel() string {
	if x != nil {
		return x.RiskLevel
	}
	return ""
}

func (x *Detection) GetHealthAdvice() string {
	if x != nil {
		return x.HealthAdvice
	}
	return ""
}

func (x *Detection) GetAnalysisJson() string {
	if x != nil {
		return x.AnalysisJson
	}
	return ""
}

func (x *Detection) GetRiskFactorsJson() string {
	if x != nil {
		return x.RiskFactorsJson
	}
	return ""
}

func (x *Detection) GetOcrConfidence() float32 {
	if x != nil && x.OcrConfidence != nil {
		return *x.OcrConfidence
	}
	return 0
}

func (x *Detection) GetProcessingMs() int64 {
	if x != nil && x.ProcessingMs != nil {
		return *x.ProcessingMs
	}
	return 0
}

func (x *Detection) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Detection) GetUserRating() int32 {
	if x != nil && x.UserRating != nil {
		return *x.UserRating
	}
	return 0
}

func (x *Detection) GetUserFeedback() string {
	if x != nil {
		return x.UserFeedback
	}
	return ""
}

func (x *Detection) GetIsAccurate() bool {
	if x != nil && x.IsAccurate != nil {
		return *x.IsAccurate
	}
	return false
}

func (x *Detection) GetIsFavorite() bool {
	if x != nil {
		return x.IsFavorite
	}
	return false
}

func (x *Detection) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Detection) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *Detection) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

type AnalyzeImageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"` // optional, anonymous when empty
	Image         []byte                 `protobuf:"bytes,2,opt,name=image,proto3" json:"image,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeImageRequest) Reset() {
	*x = AnalyzeImageRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeImageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeImageRequest) ProtoMessage() {}

func (x *AnalyzeImageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeImageRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeImageRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{2}
}

func (x *AnalyzeImageRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AnalyzeImageRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *AnalyzeImageRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type AnalyzeTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	RawText       string                 `protobuf:"bytes,2,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeTextRequest) Reset() {
	*x = AnalyzeTextRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeTextRequest) ProtoMessage() {}

func (x *AnalyzeTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeTextRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeTextRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{3}
}

func (x *AnalyzeTextRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AnalyzeTextRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

type AnalyzeBarcodeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Barcode       string                 `protobuf:"bytes,2,opt,name=barcode,proto3" json:"barcode,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeBarcodeRequest) Reset() {
	*x = AnalyzeBarcodeRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeBarcodeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeBarcodeRequest) ProtoMessage() {}

func (x *AnalyzeBarcodeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeBarcodeRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeBarcodeRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{4}
}

func (x *AnalyzeBarcodeRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AnalyzeBarcodeRequest) GetBarcode() string {
	if x != nil {
		return x.Barcode
	}
	return ""
}

type DetectionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Detection     *Detection             `protobuf:"bytes,1,opt,name=detection,proto3" json:"detection,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetectionResponse) Reset() {
	*x = DetectionResponse{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectionResponse) ProtoMessage() {}

func (x *DetectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectionResponse.ProtoReflect.Descriptor instead.
func (*DetectionResponse) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{5}
}

func (x *DetectionResponse) GetDetection() *Detection {
	if x != nil {
		return x.Detection
	}
	return nil
}

type GetDetectionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDetectionRequest) Reset() {
	*x = GetDetectionRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDetectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDetectionRequest) ProtoMessage() {}

func (x *GetDetectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDetectionRequest.ProtoReflect.Descriptor instead.
func (*GetDetectionRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{6}
}

func (x *GetDetectionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GetDetectionRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListDetectionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`                                    // optional filter
	DetectionType string                 `protobuf:"bytes,3,opt,name=detection_type,json=detectionType,proto3" json:"detection_type,omitempty"` // optional filter
	FavoritesOnly bool                   `protobuf:"varint,4,opt,name=favorites_only,json=favoritesOnly,proto3" json:"favorites_only,omitempty"`
	Page          int32                  `protobuf:"varint,5,opt,name=page,proto3" json:"page,omitempty"`                         // 1-based, defaults to 1
	PageSize      int32                  `protobuf:"varint,6,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"` // defaults to 20, capped at 100
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDetectionsRequest) Reset() {
	*x = ListDetectionsRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDetectionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDetectionsRequest) ProtoMessage() {}

func (x *ListDetectionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDetectionsRequest.ProtoReflect.Descriptor instead.
func (*ListDetectionsRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{7}
}

func (x *ListDetectionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListDetectionsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListDetectionsRequest) GetDetectionType() string {
	if x != nil {
		return x.DetectionType
	}
	return ""
}

func (x *ListDetectionsRequest) GetFavoritesOnly() bool {
	if x != nil {
		return x.FavoritesOnly
	}
	return false
}

func (x *ListDetectionsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListDetectionsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListDetectionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Detections    []*Detection           `protobuf:"bytes,1,rep,name=detections,proto3" json:"detections,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	Page          int32                  `protobuf:"varint,3,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,4,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDetectionsResponse) Reset() {
	*x = ListDetectionsResponse{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDetectionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDetectionsResponse) ProtoMessage() {}

func (x *ListDetectionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDetectionsResponse.ProtoReflect.Descriptor instead.
func (*ListDetectionsResponse) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{8}
}

func (x *ListDetectionsResponse) GetDetections() []*Detection {
	if x != nil {
		return x.Detections
	}
	return nil
}

func (x *ListDetectionsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ListDetectionsResponse) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListDetectionsResponse) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type SubmitFeedbackRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Rating        *int32                 `protobuf:"varint,3,opt,name=rating,proto3,oneof" json:"rating,omitempty"` // 1..5
	Feedback      string                 `protobuf:"bytes,4,opt,name=feedback,proto3" json:"feedback,omitempty"`
	IsAccurate    *bool                  `protobuf:"varint,5,opt,name=is_accurate,json=isAccurate,proto3,oneof" json:"is_accurate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitFeedbackRequest) Reset() {
	*x = SubmitFeedbackRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitFeedbackRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitFeedbackRequest) ProtoMessage() {}

func (x *SubmitFeedbackRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitFeedbackRequest.ProtoReflect.Descriptor instead.
func (*SubmitFeedbackRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{9}
}

func (x *SubmitFeedbackRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SubmitFeedbackRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SubmitFeedbackRequest) GetRating() int32 {
	if x != nil && x.Rating != nil {
		return *x.Rating
	}
	return 0
}

func (x *SubmitFeedbackRequest) GetFeedback() string {
	if x != nil {
		return x.Feedback
	}
	return ""
}

func (x *SubmitFeedbackRequest) GetIsAccurate() bool {
	if x != nil && x.IsAccurate != nil {
		return *x.IsAccurate
	}
	return false
}

type SubmitFeedbackResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitFeedbackResponse) Reset() {
	*x = SubmitFeedbackResponse{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitFeedbackResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitFeedbackResponse) ProtoMessage() {}

func (x *SubmitFeedbackResponse) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitFeedbackResponse.ProtoReflect.Descriptor instead.
func (*SubmitFeedbackResponse) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{10}
}

type ToggleFavoriteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Favorite      bool                   `protobuf:"varint,3,opt,name=favorite,proto3" json:"favorite,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToggleFavoriteRequest) Reset() {
	*x = ToggleFavoriteRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToggleFavoriteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToggleFavoriteRequest) ProtoMessage() {}

func (x *ToggleFavoriteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToggleFavoriteRequest.ProtoReflect.Descriptor instead.
func (*ToggleFavoriteRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{11}
}

func (x *ToggleFavoriteRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ToggleFavoriteRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ToggleFavoriteRequest) GetFavorite() bool {
	if x != nil {
		return x.Favorite
	}
	return false
}

type ToggleFavoriteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IsFavorite    bool                   `protobuf:"varint,1,opt,name=is_favorite,json=isFavorite,proto3" json:"is_favorite,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToggleFavoriteResponse) Reset() {
	*x = ToggleFavoriteResponse{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToggleFavoriteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToggleFavoriteResponse) ProtoMessage() {}

func (x *ToggleFavoriteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToggleFavoriteResponse.ProtoReflect.Descriptor instead.
func (*ToggleFavoriteResponse) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{12}
}

func (x *ToggleFavoriteResponse) GetIsFavorite() bool {
	if x != nil {
		return x.IsFavorite
	}
	return false
}

type DeleteDetectionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDetectionRequest) Reset() {
	*x = DeleteDetectionRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDetectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDetectionRequest) ProtoMessage() {}

func (x *DeleteDetectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDetectionRequest.ProtoReflect.Descriptor instead.
func (*DeleteDetectionRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{13}
}

func (x *DeleteDetectionRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DeleteDetectionRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type DeleteDetectionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDetectionResponse) Reset() {
	*x = DeleteDetectionResponse{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDetectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDetectionResponse) ProtoMessage() {}

func (x *DeleteDetectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDetectionResponse.ProtoReflect.Descriptor instead.
func (*DeleteDetectionResponse) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{14}
}

type User struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Openid             string                 `protobuf:"bytes,2,opt,name=openid,proto3" json:"openid,omitempty"`
	Nickname           string                 `protobuf:"bytes,3,opt,name=nickname,proto3" json:"nickname,omitempty"`
	AvatarUrl          string                 `protobuf:"bytes,4,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
	Age                *int32                 `protobuf:"varint,5,opt,name=age,proto3,oneof" json:"age,omitempty"`
	HealthConditions   string                 `protobuf:"bytes,6,opt,name=health_conditions,json=healthConditions,proto3" json:"health_conditions,omitempty"`
	DietaryPreferences string                 `protobuf:"bytes,7,opt,name=dietary_preferences,json=dietaryPreferences,proto3" json:"dietary_preferences,omitempty"`
	Allergies          string                 `protobuf:"bytes,8,opt,name=allergies,proto3" json:"allergies,omitempty"`
	ScanCount          int32                  `protobuf:"varint,9,opt,name=scan_count,json=scanCount,proto3" json:"scan_count,omitempty"`
	LastScanAt         string                 `protobuf:"bytes,10,opt,name=last_scan_at,json=lastScanAt,proto3" json:"last_scan_at,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{15}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetOpenid() string {
	if x != nil {
		return x.Openid
	}
	return ""
}

func (x *User) GetNickname() string {
	if x != nil {
		return x.Nickname
	}
	return ""
}

func (x *User) GetAvatarUrl() string {
	if x != nil {
		return x.AvatarUrl
	}
	return ""
}

func (x *User) GetAge() int32 {
	if x != nil && x.Age != nil {
		return *x.Age
	}
	return 0
}

func (x *User) GetHealthConditions() string {
	if x != nil {
		return x.HealthConditions
	}
	return ""
}

func (x *User) GetDietaryPreferences() string {
	if x != nil {
		return x.DietaryPreferences
	}
	return ""
}

func (x *User) GetAllergies() string {
	if x != nil {
		return x.Allergies
	}
	return ""
}

func (x *User) GetScanCount() int32 {
	if x != nil {
		return x.ScanCount
	}
	return 0
}

func (x *User) GetLastScanAt() string {
	if x != nil {
		return x.LastScanAt
	}
	return ""
}

func (x *User) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *User) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type LoginRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"` // mini-program login code
	Nickname      string                 `protobuf:"bytes,2,opt,name=nickname,proto3" json:"nickname,omitempty"`
	AvatarUrl     string                 `protobuf:"bytes,3,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginRequest) Reset() {
	*x = LoginRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginRequest) ProtoMessage() {}

func (x *LoginRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginRequest.ProtoReflect.Descriptor instead.
func (*LoginRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{16}
}

func (x *LoginRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *LoginRequest) GetNickname() string {
	if x != nil {
		return x.Nickname
	}
	return ""
}

func (x *LoginRequest) GetAvatarUrl() string {
	if x != nil {
		return x.AvatarUrl
	}
	return ""
}

type LoginResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	IsNew         bool                   `protobuf:"varint,2,opt,name=is_new,json=isNew,proto3" json:"is_new,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoginResponse) Reset() {
	*x = LoginResponse{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoginResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoginResponse) ProtoMessage() {}

func (x *LoginResponse) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoginResponse.ProtoReflect.Descriptor instead.
func (*LoginResponse) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{17}
}

func (x *LoginResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *LoginResponse) GetIsNew() bool {
	if x != nil {
		return x.IsNew
	}
	return false
}

type GetProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileRequest) Reset() {
	*x = GetProfileRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileRequest) ProtoMessage() {}

func (x *GetProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileRequest.ProtoReflect.Descriptor instead.
func (*GetProfileRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{18}
}

func (x *GetProfileRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type UpdateProfileRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	UserId             string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Age                *int32                 `protobuf:"varint,2,opt,name=age,proto3,oneof" json:"age,omitempty"`
	HealthConditions   *string                `protobuf:"bytes,3,opt,name=health_conditions,json=healthConditions,proto3,oneof" json:"health_conditions,omitempty"`
	DietaryPreferences *string                `protobuf:"bytes,4,opt,name=dietary_preferences,json=dietaryPreferences,proto3,oneof" json:"dietary_preferences,omitempty"`
	Allergies          *string                `protobuf:"bytes,5,opt,name=allergies,proto3,oneof" json:"allergies,omitempty"`
	Nickname           *string                `protobuf:"bytes,6,opt,name=nickname,proto3,oneof" json:"nickname,omitempty"`
	AvatarUrl          *string                `protobuf:"bytes,7,opt,name=avatar_url,json=avatarUrl,proto3,oneof" json:"avatar_url,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *UpdateProfileRequest) Reset() {
	*x = UpdateProfileRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateProfileRequest) ProtoMessage() {}

func (x *UpdateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateProfileRequest.ProtoReflect.Descriptor instead.
func (*UpdateProfileRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{19}
}

func (x *UpdateProfileRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UpdateProfileRequest) GetAge() int32 {
	if x != nil && x.Age != nil {
		return *x.Age
	}
	return 0
}

func (x *UpdateProfileRequest) GetHealthConditions() string {
	if x != nil && x.HealthConditions != nil {
		return *x.HealthConditions
	}
	return ""
}

func (x *UpdateProfileRequest) GetDietaryPreferences() string {
	if x != nil && x.DietaryPreferences != nil {
		return *x.DietaryPreferences
	}
	return ""
}

func (x *UpdateProfileRequest) GetAllergies() string {
	if x != nil && x.Allergies != nil {
		return *x.Allergies
	}
	return ""
}

func (x *UpdateProfileRequest) GetNickname() string {
	if x != nil && x.Nickname != nil {
		return *x.Nickname
	}
	return ""
}

func (x *UpdateProfileRequest) GetAvatarUrl() string {
	if x != nil && x.AvatarUrl != nil {
		return *x.AvatarUrl
	}
	return ""
}

type UserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UserResponse) Reset() {
	*x = UserResponse{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UserResponse) ProtoMessage() {}

func (x *UserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UserResponse.ProtoReflect.Descriptor instead.
func (*UserResponse) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{20}
}

func (x *UserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type RiskCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RiskLevel     string                 `protobuf:"bytes,1,opt,name=risk_level,json=riskLevel,proto3" json:"risk_level,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RiskCount) Reset() {
	*x = RiskCount{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RiskCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RiskCount) ProtoMessage() {}

func (x *RiskCount) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RiskCount.ProtoReflect.Descriptor instead.
func (*RiskCount) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{21}
}

func (x *RiskCount) GetRiskLevel() string {
	if x != nil {
		return x.RiskLevel
	}
	return ""
}

func (x *RiskCount) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type DetectionStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Total         int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	Completed     int32                  `protobuf:"varint,2,opt,name=completed,proto3" json:"completed,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	AverageScore  *float64               `protobuf:"fixed64,4,opt,name=average_score,json=averageScore,proto3,oneof" json:"average_score,omitempty"`
	RiskCounts    []*RiskCount           `protobuf:"bytes,5,rep,name=risk_counts,json=riskCounts,proto3" json:"risk_counts,omitempty"`
	FavoriteCount int32                  `protobuf:"varint,6,opt,name=favorite_count,json=favoriteCount,proto3" json:"favorite_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetectionStats) Reset() {
	*x = DetectionStats{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectionStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectionStats) ProtoMessage() {}

func (x *DetectionStats) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectionStats.ProtoReflect.Descriptor instead.
func (*DetectionStats) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{22}
}

func (x *DetectionStats) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *DetectionStats) GetCompleted() int32 {
	if x != nil {
		return x.Completed
	}
	return 0
}

func (x *DetectionStats) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *DetectionStats) GetAverageScore() float64 {
	if x != nil && x.AverageScore != nil {
		return *x.AverageScore
	}
	return 0
}

func (x *DetectionStats) GetRiskCounts() []*RiskCount {
	if x != nil {
		return x.RiskCounts
	}
	return nil
}

func (x *DetectionStats) GetFavoriteCount() int32 {
	if x != nil {
		return x.FavoriteCount
	}
	return 0
}

type DailyStat struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Date          string                 `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"` // YYYY-MM-DD
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	AverageScore  *float64               `protobuf:"fixed64,3,opt,name=average_score,json=averageScore,proto3,oneof" json:"average_score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DailyStat) Reset() {
	*x = DailyStat{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DailyStat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DailyStat) ProtoMessage() {}

func (x *DailyStat) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DailyStat.ProtoReflect.Descriptor instead.
func (*DailyStat) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{23}
}

func (x *DailyStat) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *DailyStat) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *DailyStat) GetAverageScore() float64 {
	if x != nil && x.AverageScore != nil {
		return *x.AverageScore
	}
	return 0
}

type TodayStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TodayStatsRequest) Reset() {
	*x = TodayStatsRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TodayStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TodayStatsRequest) ProtoMessage() {}

func (x *TodayStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TodayStatsRequest.ProtoReflect.Descriptor instead.
func (*TodayStatsRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{24}
}

func (x *TodayStatsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type WeeklyStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WeeklyStatsRequest) Reset() {
	*x = WeeklyStatsRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WeeklyStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WeeklyStatsRequest) ProtoMessage() {}

func (x *WeeklyStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WeeklyStatsRequest.ProtoReflect.Descriptor instead.
func (*WeeklyStatsRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{25}
}

func (x *WeeklyStatsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type SummaryStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SummaryStatsRequest) Reset() {
	*x = SummaryStatsRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SummaryStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SummaryStatsRequest) ProtoMessage() {}

func (x *SummaryStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SummaryStatsRequest.ProtoReflect.Descriptor instead.
func (*SummaryStatsRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{26}
}

func (x *SummaryStatsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type StatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stats         *DetectionStats        `protobuf:"bytes,1,opt,name=stats,proto3" json:"stats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatsResponse) Reset() {
	*x = StatsResponse{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatsResponse) ProtoMessage() {}

func (x *StatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatsResponse.ProtoReflect.Descriptor instead.
func (*StatsResponse) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{27}
}

func (x *StatsResponse) GetStats() *DetectionStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

type WeeklyStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Days          []*DailyStat           `protobuf:"bytes,1,rep,name=days,proto3" json:"days,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WeeklyStatsResponse) Reset() {
	*x = WeeklyStatsResponse{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WeeklyStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WeeklyStatsResponse) ProtoMessage() {}

func (x *WeeklyStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WeeklyStatsResponse.ProtoReflect.Descriptor instead.
func (*WeeklyStatsResponse) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{28}
}

func (x *WeeklyStatsResponse) GetDays() []*DailyStat {
	if x != nil {
		return x.Days
	}
	return nil
}

type ExportDetectionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDetectionsRequest) Reset() {
	*x = ExportDetectionsRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDetectionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDetectionsRequest) ProtoMessage() {}

func (x *ExportDetectionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDetectionsRequest.ProtoReflect.Descriptor instead.
func (*ExportDetectionsRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{29}
}

func (x *ExportDetectionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExportDetectionsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportDetectionsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportDetectionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDetectionsResponse) Reset() {
	*x = ExportDetectionsResponse{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDetectionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDetectionsResponse) ProtoMessage() {}

func (x *ExportDetectionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDetectionsResponse.ProtoReflect.Descriptor instead.
func (*ExportDetectionsResponse) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{30}
}

func (x *ExportDetectionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportDetectionsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type Article struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Summary       string                 `protobuf:"bytes,3,opt,name=summary,proto3" json:"summary,omitempty"`
	Content       string                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	Category      string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	CoverUrl      string                 `protobuf:"bytes,6,opt,name=cover_url,json=coverUrl,proto3" json:"cover_url,omitempty"`
	ViewCount     int32                  `protobuf:"varint,7,opt,name=view_count,json=viewCount,proto3" json:"view_count,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Article) Reset() {
	*x = Article{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Article) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Article) ProtoMessage() {}

func (x *Article) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Article.ProtoReflect.Descriptor instead.
func (*Article) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{31}
}

func (x *Article) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Article) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Article) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *Article) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Article) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Article) GetCoverUrl() string {
	if x != nil {
		return x.CoverUrl
	}
	return ""
}

func (x *Article) GetViewCount() int32 {
	if x != nil {
		return x.ViewCount
	}
	return 0
}

func (x *Article) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListArticlesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Page          int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListArticlesRequest) Reset() {
	*x = ListArticlesRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListArticlesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListArticlesRequest) ProtoMessage() {}

func (x *ListArticlesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListArticlesRequest.ProtoReflect.Descriptor instead.
func (*ListArticlesRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{32}
}

func (x *ListArticlesRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ListArticlesRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListArticlesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListArticlesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Articles      []*Article             `protobuf:"bytes,1,rep,name=articles,proto3" json:"articles,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListArticlesResponse) Reset() {
	*x = ListArticlesResponse{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListArticlesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListArticlesResponse) ProtoMessage() {}

func (x *ListArticlesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListArticlesResponse.ProtoReflect.Descriptor instead.
func (*ListArticlesResponse) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{33}
}

func (x *ListArticlesResponse) GetArticles() []*Article {
	if x != nil {
		return x.Articles
	}
	return nil
}

func (x *ListArticlesResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type GetArticleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetArticleRequest) Reset() {
	*x = GetArticleRequest{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetArticleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetArticleRequest) ProtoMessage() {}

func (x *GetArticleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetArticleRequest.ProtoReflect.Descriptor instead.
func (*GetArticleRequest) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{34}
}

func (x *GetArticleRequest) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

type ArticleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Article       *Article               `protobuf:"bytes,1,opt,name=article,proto3" json:"article,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ArticleResponse) Reset() {
	*x = ArticleResponse{}
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ArticleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ArticleResponse) ProtoMessage() {}

func (x *ArticleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_nutrition_v1_nutrition_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ArticleResponse.ProtoReflect.Descriptor instead.
func (*ArticleResponse) Descriptor() ([]byte, []int) {
	return file_nutrition_v1_nutrition_proto_rawDescGZIP(), []int{35}
}

func (x *ArticleResponse) GetArticle() *Article {
	if x != nil {
		return x.Article
	}
	return nil
}

var File_nutrition_v1_nutrition_proto protoreflect.FileDescriptor

const file_nutrition_v1_nutrition_proto_rawDesc = "" +
	"\n" +
	"\x1cnutrition/v1/nutrition.proto\x12\fnutrition.v1\"\xa7\x03\n" +
	"\rNutrientFacts\x12 \n" +
	"\tenergy_kj\x18\x01 \x01(\x01H\x00R\benergyKj\x88\x01\x01\x12$\n" +
	"\venergy_kcal\x18\x02 \x01(\x01H\x01R\n" +
	"energyKcal\x88\x01\x01\x12\x1d\n" +
	"\aprotein\x18\x03 \x01(\x01H\x02R\aprotein\x88\x01\x01\x12\x15\n" +
	"\x03fat\x18\x04 \x01(\x01H\x03R\x03fat\x88\x01\x01\x12(\n" +
	"\rsaturated_fat\x18\x05 \x01(\x01H\x04R\fsaturatedFat\x88\x01\x01\x12'\n" +
	"\fcarbohydrate\x18\x06 \x01(\x01H\x05R\fcarbohydrate\x88\x01\x01\x12\x19\n" +
	"\x05sugar\x18\a \x01(\x01H\x06R\x05sugar\x88\x01\x01\x12\x19\n" +
	"\x05fiber\x18\b \x01(\x01H\aR\x05fiber\x88\x01\x01\x12\x1b\n" +
	"\x06sodium\x18\t \x01(\x01H\bR\x06sodium\x88\x01\x01B\f\n" +
	"\n" +
	"_energy_kjB\x0e\n" +
	"\f_energy_kcalB\n" +
	"\n" +
	"\b_proteinB\x06\n" +
	"\x04_fatB\x10\n" +
	"\x0e_saturated_fatB\x0f\n" +
	"\r_carbohydrateB\b\n" +
	"\x06_sugarB\b\n" +
	"\x06_fiberB\t\n" +
	"\a_sodium\"\x8a\b\n" +
	"\tDetection\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12%\n" +
	"\x0edetection_type\x18\x03 \x01(\tR\rdetectionType\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"image_path\x18\x05 \x01(\tR\timagePath\x12\x19\n" +
	"\braw_text\x18\x06 \x01(\tR\arawText\x12\x18\n" +
	"\abarcode\x18\a \x01(\tR\abarcode\x12!\n" +
	"\fproduct_name\x18\b \x01(\tR\vproductName\x12\x14\n" +
	"\x05brand\x18\t \x01(\tR\x05brand\x12\x1a\n" +
	"\bcategory\x18\n" +
	" \x01(\tR\bcategory\x129\n" +
	"\tnutrients\x18\v \x01(\v2\x1b.nutrition.v1.NutrientFactsR\tnutrients\x120\n" +
	"\x14other_nutrients_json\x18\f \x01(\tR\x12otherNutrientsJson\x12&\n" +
	"\fhealth_score\x18\r \x01(\x01H\x00R\vhealthScore\x88\x01\x01\x12\x1d\n" +
	"\n" +
	"risk_level\x18\x0e \x01(\tR\triskLevel\x12#\n" +
	"\rhealth_advice\x18\x0f \x01(\tR\fhealthAdvice\x12#\n" +
	"\ranalysis_json\x18\x10 \x01(\tR\fanalysisJson\x12*\n" +
	"\x11risk_factors_json\x18\x11 \x01(\tR\x0friskFactorsJson\x12*\n" +
	"\x0eocr_confidence\x18\x12 \x01(\x02H\x01R\rocrConfidence\x88\x01\x01\x12(\n" +
	"\rprocessing_ms\x18\x13 \x01(\x03H\x02R\fprocessingMs\x88\x01\x01\x12#\n" +
	"\rerror_message\x18\x14 \x01(\tR\ferrorMessage\x12$\n" +
	"\vuser_rating\x18\x15 \x01(\x05H\x03R\n" +
	"userRating\x88\x01\x01\x12#\n" +
	"\ruser_feedback\x18\x16 \x01(\tR\fuserFeedback\x12$\n" +
	"\vis_accurate\x18\x17 \x01(\bH\x04R\n" +
	"isAccurate\x88\x01\x01\x12\x1f\n" +
	"\vis_favorite\x18\x18 \x01(\bR\n" +
	"isFavorite\x12\x1d\n" +
	"\n" +
	"created_at\x18\x19 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x1a \x01(\tR\tupdatedAt\x12!\n" +
	"\fcompleted_at\x18\x1b \x01(\tR\vcompletedAtB\x0f\n" +
	"\r_health_scoreB\x11\n" +
	"\x0f_ocr_confidenceB\x10\n" +
	"\x0e_processing_msB\x0e\n" +
	"\f_user_ratingB\x0e\n" +
	"\f_is_accurate\"`\n" +
	"\x13AnalyzeImageRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05image\x18\x02 \x01(\fR\x05image\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\"H\n" +
	"\x12AnalyzeTextRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x19\n" +
	"\braw_text\x18\x02 \x01(\tR\arawText\"J\n" +
	"\x15AnalyzeBarcodeRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x18\n" +
	"\abarcode\x18\x02 \x01(\tR\abarcode\"J\n" +
	"\x11DetectionResponse\x125\n" +
	"\tdetection\x18\x01 \x01(\v2\x17.nutrition.v1.DetectionR\tdetection\">\n" +
	"\x13GetDetectionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"\xc7\x01\n" +
	"\x15ListDetectionsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12%\n" +
	"\x0edetection_type\x18\x03 \x01(\tR\rdetectionType\x12%\n" +
	"\x0efavorites_only\x18\x04 \x01(\bR\rfavoritesOnly\x12\x12\n" +
	"\x04page\x18\x05 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x06 \x01(\x05R\bpageSize\"\x98\x01\n" +
	"\x16ListDetectionsResponse\x127\n" +
	"\n" +
	"detections\x18\x01 \x03(\v2\x17.nutrition.v1.DetectionR\n" +
	"detections\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\x12\x12\n" +
	"\x04page\x18\x03 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x04 \x01(\x05R\bpageSize\"\xba\x01\n" +
	"\x15SubmitFeedbackRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1b\n" +
	"\x06rating\x18\x03 \x01(\x05H\x00R\x06rating\x88\x01\x01\x12\x1a\n" +
	"\bfeedback\x18\x04 \x01(\tR\bfeedback\x12$\n" +
	"\vis_accurate\x18\x05 \x01(\bH\x01R\n" +
	"isAccurate\x88\x01\x01B\t\n" +
	"\a_ratingB\x0e\n" +
	"\f_is_accurate\"\x18\n" +
	"\x16SubmitFeedbackResponse\"\\\n" +
	"\x15ToggleFavoriteRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfavorite\x18\x03 \x01(\bR\bfavorite\"9\n" +
	"\x16ToggleFavoriteResponse\x12\x1f\n" +
	"\vis_favorite\x18\x01 \x01(\bR\n" +
	"isFavorite\"A\n" +
	"\x16DeleteDetectionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\"\x19\n" +
	"\x17DeleteDetectionResponse\"\x83\x03\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06openid\x18\x02 \x01(\tR\x06openid\x12\x1a\n" +
	"\bnickname\x18\x03 \x01(\tR\bnickname\x12\x1d\n" +
	"\n" +
	"avatar_url\x18\x04 \x01(\tR\tavatarUrl\x12\x15\n" +
	"\x03age\x18\x05 \x01(\x05H\x00R\x03age\x88\x01\x01\x12+\n" +
	"\x11health_conditions\x18\x06 \x01(\tR\x10healthConditions\x12/\n" +
	"\x13dietary_preferences\x18\a \x01(\tR\x12dietaryPreferences\x12\x1c\n" +
	"\tallergies\x18\b \x01(\tR\tallergies\x12\x1d\n" +
	"\n" +
	"scan_count\x18\t \x01(\x05R\tscanCount\x12 \n" +
	"\flast_scan_at\x18\n" +
	" \x01(\tR\n" +
	"lastScanAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAtB\x06\n" +
	"\x04_age\"]\n" +
	"\fLoginRequest\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x1a\n" +
	"\bnickname\x18\x02 \x01(\tR\bnickname\x12\x1d\n" +
	"\n" +
	"avatar_url\x18\x03 \x01(\tR\tavatarUrl\"N\n" +
	"\rLoginResponse\x12&\n" +
	"\x04user\x18\x01 \x01(\v2\x12.nutrition.v1.UserR\x04user\x12\x15\n" +
	"\x06is_new\x18\x02 \x01(\bR\x05isNew\",\n" +
	"\x11GetProfileRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"\xf6\x02\n" +
	"\x14UpdateProfileRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x15\n" +
	"\x03age\x18\x02 \x01(\x05H\x00R\x03age\x88\x01\x01\x120\n" +
	"\x11health_conditions\x18\x03 \x01(\tH\x01R\x10healthConditions\x88\x01\x01\x124\n" +
	"\x13dietary_preferences\x18\x04 \x01(\tH\x02R\x12dietaryPreferences\x88\x01\x01\x12!\n" +
	"\tallergies\x18\x05 \x01(\tH\x03R\tallergies\x88\x01\x01\x12\x1f\n" +
	"\bnickname\x18\x06 \x01(\tH\x04R\bnickname\x88\x01\x01\x12\"\n" +
	"\n" +
	"avatar_url\x18\a \x01(\tH\x05R\tavatarUrl\x88\x01\x01B\x06\n" +
	"\x04_ageB\x14\n" +
	"\x12_health_conditionsB\x16\n" +
	"\x14_dietary_preferencesB\f\n" +
	"\n" +
	"_allergiesB\v\n" +
	"\t_nicknameB\r\n" +
	"\v_avatar_url\"6\n" +
	"\fUserResponse\x12&\n" +
	"\x04user\x18\x01 \x01(\v2\x12.nutrition.v1.UserR\x04user\"@\n" +
	"\tRiskCount\x12\x1d\n" +
	"\n" +
	"risk_level\x18\x01 \x01(\tR\triskLevel\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\"\xf9\x01\n" +
	"\x0eDetectionStats\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12\x1c\n" +
	"\tcompleted\x18\x02 \x01(\x05R\tcompleted\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\x12(\n" +
	"\raverage_score\x18\x04 \x01(\x01H\x00R\faverageScore\x88\x01\x01\x128\n" +
	"\vrisk_counts\x18\x05 \x03(\v2\x17.nutrition.v1.RiskCountR\n" +
	"riskCounts\x12%\n" +
	"\x0efavorite_count\x18\x06 \x01(\x05R\rfavoriteCountB\x10\n" +
	"\x0e_average_score\"q\n" +
	"\tDailyStat\x12\x12\n" +
	"\x04date\x18\x01 \x01(\tR\x04date\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\x12(\n" +
	"\raverage_score\x18\x03 \x01(\x01H\x00R\faverageScore\x88\x01\x01B\x10\n" +
	"\x0e_average_score\",\n" +
	"\x11TodayStatsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"-\n" +
	"\x12WeeklyStatsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\".\n" +
	"\x13SummaryStatsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"C\n" +
	"\rStatsResponse\x122\n" +
	"\x05stats\x18\x01 \x01(\v2\x1c.nutrition.v1.DetectionStatsR\x05stats\"B\n" +
	"\x13WeeklyStatsResponse\x12+\n" +
	"\x04days\x18\x01 \x03(\v2\x17.nutrition.v1.DailyStatR\x04days\"h\n" +
	"\x17ExportDetectionsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"J\n" +
	"\x18ExportDetectionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\xda\x01\n" +
	"\aArticle\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x18\n" +
	"\asummary\x18\x03 \x01(\tR\asummary\x12\x18\n" +
	"\acontent\x18\x04 \x01(\tR\acontent\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12\x1b\n" +
	"\tcover_url\x18\x06 \x01(\tR\bcoverUrl\x12\x1d\n" +
	"\n" +
	"view_count\x18\a \x01(\x05R\tviewCount\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"b\n" +
	"\x13ListArticlesRequest\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\"_\n" +
	"\x14ListArticlesResponse\x121\n" +
	"\barticles\x18\x01 \x03(\v2\x15.nutrition.v1.ArticleR\barticles\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"#\n" +
	"\x11GetArticleRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\"B\n" +
	"\x0fArticleResponse\x12/\n" +
	"\aarticle\x18\x01 \x01(\v2\x15.nutrition.v1.ArticleR\aarticle2\xdb\x05\n" +
	"\x10DetectionService\x12R\n" +
	"\fAnalyzeImage\x12!.nutrition.v1.AnalyzeImageRequest\x1a\x1f.nutrition.v1.DetectionResponse\x12P\n" +
	"\vAnalyzeText\x12 .nutrition.v1.AnalyzeTextRequest\x1a\x1f.nutrition.v1.DetectionResponse\x12V\n" +
	"\x0eAnalyzeBarcode\x12#.nutrition.v1.AnalyzeBarcodeRequest\x1a\x1f.nutrition.v1.DetectionResponse\x12R\n" +
	"\fGetDetection\x12!.nutrition.v1.GetDetectionRequest\x1a\x1f.nutrition.v1.DetectionResponse\x12[\n" +
	"\x0eListDetections\x12#.nutrition.v1.ListDetectionsRequest\x1a$.nutrition.v1.ListDetectionsResponse\x12[\n" +
	"\x0eSubmitFeedback\x12#.nutrition.v1.SubmitFeedbackRequest\x1a$.nutrition.v1.SubmitFeedbackResponse\x12[\n" +
	"\x0eToggleFavorite\x12#.nutrition.v1.ToggleFavoriteRequest\x1a$.nutrition.v1.ToggleFavoriteResponse\x12^\n" +
	"\x0fDeleteDetection\x12$.nutrition.v1.DeleteDetectionRequest\x1a%.nutrition.v1.DeleteDetectionResponse2\xeb\x01\n" +
	"\vUserService\x12@\n" +
	"\x05Login\x12\x1a.nutrition.v1.LoginRequest\x1a\x1b.nutrition.v1.LoginResponse\x12I\n" +
	"\n" +
	"GetProfile\x12\x1f.nutrition.v1.GetProfileRequest\x1a\x1a.nutrition.v1.UserResponse\x12O\n" +
	"\rUpdateProfile\x12\".nutrition.v1.UpdateProfileRequest\x1a\x1a.nutrition.v1.UserResponse2\xe1\x02\n" +
	"\fStatsService\x12J\n" +
	"\n" +
	"TodayStats\x12\x1f.nutrition.v1.TodayStatsRequest\x1a\x1b.nutrition.v1.StatsResponse\x12R\n" +
	"\vWeeklyStats\x12 .nutrition.v1.WeeklyStatsRequest\x1a!.nutrition.v1.WeeklyStatsResponse\x12N\n" +
	"\fSummaryStats\x12!.nutrition.v1.SummaryStatsRequest\x1a\x1b.nutrition.v1.StatsResponse\x12a\n" +
	"\x10ExportDetections\x12%.nutrition.v1.ExportDetectionsRequest\x1a&.nutrition.v1.ExportDetectionsResponse2\xb7\x01\n" +
	"\x10EducationService\x12U\n" +
	"\fListArticles\x12!.nutrition.v1.ListArticlesRequest\x1a\".nutrition.v1.ListArticlesResponse\x12L\n" +
	"\n" +
	"GetArticle\x12\x1f.nutrition.v1.GetArticleRequest\x1a\x1d.nutrition.v1.ArticleResponseBKZIgithub.com/nutriscan/nutrition-scanner/gen/proto/nutrition/v1;nutritionpbb\x06proto3"

var (
	file_nutrition_v1_nutrition_proto_rawDescOnce sync.Once
	file_nutrition_v1_nutrition_proto_rawDescData []byte
)

func file_nutrition_v1_nutrition_proto_rawDescGZIP() []byte {
	file_nutrition_v1_nutrition_proto_rawDescOnce.Do(func() {
		file_nutrition_v1_nutrition_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_nutrition_v1_nutrition_proto_rawDesc), len(file_nutrition_v1_nutrition_proto_rawDesc)))
	})
	return file_nutrition_v1_nutrition_proto_rawDescData
}

var file_nutrition_v1_nutrition_proto_msgTypes = make([]protoimpl.MessageInfo, 36)
var file_nutrition_v1_nutrition_proto_goTypes = []any{
	(*NutrientFacts)(nil),            // 0: nutrition.v1.NutrientFacts
	(*Detection)(nil),                // 1: nutrition.v1.Detection
	(*AnalyzeImageRequest)(nil),      // 2: nutrition.v1.AnalyzeImageRequest
	(*AnalyzeTextRequest)(nil),       // 3: nutrition.v1.AnalyzeTextRequest
	(*AnalyzeBarcodeRequest)(nil),    // 4: nutrition.v1.AnalyzeBarcodeRequest
	(*DetectionResponse)(nil),        // 5: nutrition.v1.DetectionResponse
	(*GetDetectionRequest)(nil),      // 6: nutrition.v1.GetDetectionRequest
	(*ListDetectionsRequest)(nil),    // 7: nutrition.v1.ListDetectionsRequest
	(*ListDetectionsResponse)(nil),   // 8: nutrition.v1.ListDetectionsResponse
	(*SubmitFeedbackRequest)(nil),    // 9: nutrition.v1.SubmitFeedbackRequest
	(*SubmitFeedbackResponse)(nil),   // 10: nutrition.v1.SubmitFeedbackResponse
	(*ToggleFavoriteRequest)(nil),    // 11: nutrition.v1.ToggleFavoriteRequest
	(*ToggleFavoriteResponse)(nil),   // 12: nutrition.v1.ToggleFavoriteResponse
	(*DeleteDetectionRequest)(nil),   // 13: nutrition.v1.DeleteDetectionRequest
	(*DeleteDetectionResponse)(nil),  // 14: nutrition.v1.DeleteDetectionResponse
	(*User)(nil),                     // 15: nutrition.v1.User
	(*LoginRequest)(nil),             // 16: nutrition.v1.LoginRequest
	(*LoginResponse)(nil),            // 17: nutrition.v1.LoginResponse
	(*GetProfileRequest)(nil),        // 18: nutrition.v1.GetProfileRequest
	(*UpdateProfileRequest)(nil),     // 19: nutrition.v1.UpdateProfileRequest
	(*UserResponse)(nil),             // 20: nutrition.v1.UserResponse
	(*RiskCount)(nil),                // 21: nutrition.v1.RiskCount
	(*DetectionStats)(nil),           // 22: nutrition.v1.DetectionStats
	(*DailyStat)(nil),                // 23: nutrition.v1.DailyStat
	(*TodayStatsRequest)(nil),        // 24: nutrition.v1.TodayStatsRequest
	(*WeeklyStatsRequest)(nil),       // 25: nutrition.v1.WeeklyStatsRequest
	(*SummaryStatsRequest)(nil),      // 26: nutrition.v1.SummaryStatsRequest
	(*StatsResponse)(nil),            // 27: nutrition.v1.StatsResponse
	(*WeeklyStatsResponse)(nil),      // 28: nutrition.v1.WeeklyStatsResponse
	(*ExportDetectionsRequest)(nil),  // 29: nutrition.v1.ExportDetectionsRequest
	(*ExportDetectionsResponse)(nil), // 30: nutrition.v1.ExportDetectionsResponse
	(*Article)(nil),                  // 31: nutrition.v1.Article
	(*ListArticlesRequest)(nil),      // 32: nutrition.v1.ListArticlesRequest
	(*ListArticlesResponse)(nil),     // 33: nutrition.v1.ListArticlesResponse
	(*GetArticleRequest)(nil),        // 34: nutrition.v1.GetArticleRequest
	(*ArticleResponse)(nil),          // 35: nutrition.v1.ArticleResponse
}
var file_nutrition_v1_nutrition_proto_depIdxs = []int32{
	0,  // 0: nutrition.v1.Detection.nutrients:type_name -> nutrition.v1.NutrientFacts
	1,  // 1: nutrition.v1.DetectionResponse.detection:type_name -> nutrition.v1.Detection
	1,  // 2: nutrition.v1.ListDetectionsResponse.detections:type_name -> nutrition.v1.Detection
	15, // 3: nutrition.v1.LoginResponse.user:type_name -> nutrition.v1.User
	15, // 4: nutrition.v1.UserResponse.user:type_name -> nutrition.v1.User
	21, // 5: nutrition.v1.DetectionStats.risk_counts:type_name -> nutrition.v1.RiskCount
	22, // 6: nutrition.v1.StatsResponse.stats:type_name -> nutrition.v1.DetectionStats
	23, // 7: nutrition.v1.WeeklyStatsResponse.days:type_name -> nutrition.v1.DailyStat
	31, // 8: nutrition.v1.ListArticlesResponse.articles:type_name -> nutrition.v1.Article
	31, // 9: nutrition.v1.ArticleResponse.article:type_name -> nutrition.v1.Article
	2,  // 10: nutrition.v1.DetectionService.AnalyzeImage:input_type -> nutrition.v1.AnalyzeImageRequest
	3,  // 11: nutrition.v1.DetectionService.AnalyzeText:input_type -> nutrition.v1.AnalyzeTextRequest
	4,  // 12: nutrition.v1.DetectionService.AnalyzeBarcode:input_type -> nutrition.v1.AnalyzeBarcodeRequest
	6,  // 13: nutrition.v1.DetectionService.GetDetection:input_type -> nutrition.v1.GetDetectionRequest
	7,  // 14: nutrition.v1.DetectionService.ListDetections:input_type -> nutrition.v1.ListDetectionsRequest
	9,  // 15: nutrition.v1.DetectionService.SubmitFeedback:input_type -> nutrition.v1.SubmitFeedbackRequest
	11, // 16: nutrition.v1.DetectionService.ToggleFavorite:input_type -> nutrition.v1.ToggleFavoriteRequest
	13, // 17: nutrition.v1.DetectionService.DeleteDetection:input_type -> nutrition.v1.DeleteDetectionRequest
	16, // 18: nutrition.v1.UserService.Login:input_type -> nutrition.v1.LoginRequest
	18, // 19: nutrition.v1.UserService.GetProfile:input_type -> nutrition.v1.GetProfileRequest
	19, // 20: nutrition.v1.UserService.UpdateProfile:input_type -> nutrition.v1.UpdateProfileRequest
	24, // 21: nutrition.v1.StatsService.TodayStats:input_type -> nutrition.v1.TodayStatsRequest
	25, // 22: nutrition.v1.StatsService.WeeklyStats:input_type -> nutrition.v1.WeeklyStatsRequest
	26, // 23: nutrition.v1.StatsService.SummaryStats:input_type -> nutrition.v1.SummaryStatsRequest
	29, // 24: nutrition.v1.StatsService.ExportDetections:input_type -> nutrition.v1.ExportDetectionsRequest
	32, // 25: nutrition.v1.EducationService.ListArticles:input_type -> nutrition.v1.ListArticlesRequest
	34, // 26: nutrition.v1.EducationService.GetArticle:input_type -> nutrition.v1.GetArticleRequest
	5,  // 27: nutrition.v1.DetectionService.AnalyzeImage:output_type -> nutrition.v1.DetectionResponse
	5,  // 28: nutrition.v1.DetectionService.AnalyzeText:output_type -> nutrition.v1.DetectionResponse
	5,  // 29: nutrition.v1.DetectionService.AnalyzeBarcode:output_type -> nutrition.v1.DetectionResponse
	5,  // 30: nutrition.v1.DetectionService.GetDetection:output_type -> nutrition.v1.DetectionResponse
	8,  // 31: nutrition.v1.DetectionService.ListDetections:output_type -> nutrition.v1.ListDetectionsResponse
	10, // 32: nutrition.v1.DetectionService.SubmitFeedback:output_type -> nutrition.v1.SubmitFeedbackResponse
	12, // 33: nutrition.v1.DetectionService.ToggleFavorite:output_type -> nutrition.v1.ToggleFavoriteResponse
	14, // 34: nutrition.v1.DetectionService.DeleteDetection:output_type -> nutrition.v1.DeleteDetectionResponse
	17, // 35: nutrition.v1.UserService.Login:output_type -> nutrition.v1.LoginResponse
	20, // 36: nutrition.v1.UserService.GetProfile:output_type -> nutrition.v1.UserResponse
	20, // 37: nutrition.v1.UserService.UpdateProfile:output_type -> nutrition.v1.UserResponse
	27, // 38: nutrition.v1.StatsService.TodayStats:output_type -> nutrition.v1.StatsResponse
	28, // 39: nutrition.v1.StatsService.WeeklyStats:output_type -> nutrition.v1.WeeklyStatsResponse
	27, // 40: nutrition.v1.StatsService.SummaryStats:output_type -> nutrition.v1.StatsResponse
	30, // 41: nutrition.v1.StatsService.ExportDetections:output_type -> nutrition.v1.ExportDetectionsResponse
	33, // 42: nutrition.v1.EducationService.ListArticles:output_type -> nutrition.v1.ListArticlesResponse
	35, // 43: nutrition.v1.EducationService.GetArticle:output_type -> nutrition.v1.ArticleResponse
	27, // [27:44] is the sub-list for method output_type
	10, // [10:27] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_nutrition_v1_nutrition_proto_init() }
func file_nutrition_v1_nutrition_proto_init() {
	if File_nutrition_v1_nutrition_proto != nil {
		return
	}
	file_nutrition_v1_nutrition_proto_msgTypes[0].OneofWrappers = []any{}
	file_nutrition_v1_nutrition_proto_msgTypes[1].OneofWrappers = []any{}
	file_nutrition_v1_nutrition_proto_msgTypes[9].OneofWrappers = []any{}
	file_nutrition_v1_nutrition_proto_msgTypes[15].OneofWrappers = []any{}
	file_nutrition_v1_nutrition_proto_msgTypes[19].OneofWrappers = []any{}
	file_nutrition_v1_nutrition_proto_msgTypes[22].OneofWrappers = []any{}
	file_nutrition_v1_nutrition_proto_msgTypes[23].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_nutrition_v1_nutrition_proto_rawDesc), len(file_nutrition_v1_nutrition_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   36,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_nutrition_v1_nutrition_proto_goTypes,
		DependencyIndexes: file_nutrition_v1_nutrition_proto_depIdxs,
		MessageInfos:      file_nutrition_v1_nutrition_proto_msgTypes,
	}.Build()
	File_nutrition_v1_nutrition_proto = out.File
	file_nutrition_v1_nutrition_proto_goTypes = nil
	file_nutrition_v1_nutrition_proto_depIdxs = nil
}
