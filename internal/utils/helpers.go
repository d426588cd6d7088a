package utils

import (
	"time"

	"github.com/nutriscan/nutrition-scanner/constants"
	"github.com/nutriscan/nutrition-scanner/gen/ent"
	nutritionpb "github.com/nutriscan/nutrition-scanner/gen/proto/nutrition/v1"
	"github.com/nutriscan/nutrition-scanner/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func jsonOrEmpty(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return string(b)
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ParseYMD parses a YYYY-MM-DD string into midnight UTC.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToDetection(e *ent.Detection) *entity.Detection {
	detType, _ := constants.ParseDetectionType(e.DetectionType)
	status, _ := constants.ParseDetectionStatus(e.Status)
	risk, _ := constants.ParseRiskLevel(e.RiskLevel)
	return &entity.Detection{
		ID:             e.ID,
		UserID:         e.UserID,
		DetectionType:  detType,
		Status:         status,
		ImagePath:      e.ImagePath,
		RawText:        e.RawText,
		Barcode:        e.Barcode,
		ProductName:    e.ProductName,
		Brand:          e.Brand,
		Category:       e.Category,
		EnergyKJ:       e.EnergyKj,
		EnergyKcal:     e.EnergyKcal,
		Protein:        e.Protein,
		Fat:            e.Fat,
		SaturatedFat:   e.SaturatedFat,
		Carbohydrate:   e.Carbohydrate,
		Sugar:          e.Sugar,
		Fiber:          e.Fiber,
		Sodium:         e.Sodium,
		OtherNutrients: e.OtherNutrients,
		HealthScore:    e.HealthScore,
		RiskLevel:      risk,
		HealthAdvice:   e.HealthAdvice,
		Analysis:       e.Analysis,
		RiskFactors:    e.RiskFactors,
		OCRConfidence:  e.OcrConfidence,
		ProcessingMS:   e.ProcessingMs,
		ErrorMessage:   e.ErrorMessage,
		UserRating:     e.UserRating,
		UserFeedback:   e.UserFeedback,
		IsAccurate:     e.IsAccurate,
		IsFavorite:     e.IsFavorite,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
		CompletedAt:    e.CompletedAt,
	}
}

func ToUser(e *ent.User) *entity.User {
	return &entity.User{
		ID:        e.ID,
		OpenID:    e.Openid,
		Nickname:  e.Nickname,
		AvatarURL: e.AvatarURL,
		HealthProfile: entity.HealthProfile{
			Age:                e.Age,
			HealthConditions:   e.HealthConditions,
			DietaryPreferences: e.DietaryPreferences,
			Allergies:          e.Allergies,
		},
		ScanCount:   e.ScanCount,
		LastScanAt:  e.LastScanAt,
		LastLoginAt: e.LastLoginAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToArticle(e *ent.Article) *entity.Article {
	return &entity.Article{
		ID:          e.ID,
		Title:       e.Title,
		Summary:     e.Summary,
		Content:     e.Content,
		Category:    e.Category,
		CoverURL:    e.CoverURL,
		ViewCount:   e.ViewCount,
		IsPublished: e.IsPublished,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToPBDetection(d *entity.Detection) *nutritionpb.Detection {
	pb := &nutritionpb.Detection{
		Id:            d.ID.String(),
		DetectionType: string(d.DetectionType),
		Status:        string(d.Status),
		ImagePath:     strOrEmpty(d.ImagePath),
		RawText:       strOrEmpty(d.RawText),
		Barcode:       strOrEmpty(d.Barcode),
		ProductName:   strOrEmpty(d.ProductName),
		Brand:         strOrEmpty(d.Brand),
		Category:      strOrEmpty(d.Category),
		Nutrients: &nutritionpb.NutrientFacts{
			EnergyKj:     d.EnergyKJ,
			EnergyKcal:   d.EnergyKcal,
			Protein:      d.Protein,
			Fat:          d.Fat,
			SaturatedFat: d.SaturatedFat,
			Carbohydrate: d.Carbohydrate,
			Sugar:        d.Sugar,
			Fiber:        d.Fiber,
			Sodium:       d.Sodium,
		},
		OtherNutrientsJson: jsonOrEmpty(d.OtherNutrients),
		HealthScore:        d.HealthScore,
		RiskLevel:          string(d.RiskLevel),
		HealthAdvice:       strOrEmpty(d.HealthAdvice),
		AnalysisJson:       jsonOrEmpty(d.Analysis),
		RiskFactorsJson:    jsonOrEmpty(d.RiskFactors),
		OcrConfidence:      d.OCRConfidence,
		ProcessingMs:       d.ProcessingMS,
		ErrorMessage:       strOrEmpty(d.ErrorMessage),
		UserFeedback:       strOrEmpty(d.UserFeedback),
		IsAccurate:         d.IsAccurate,
		IsFavorite:         d.IsFavorite,
		CreatedAt:          d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          d.UpdatedAt.UTC().Format(time.RFC3339),
		CompletedAt:        timeOrEmpty(d.CompletedAt),
	}
	if d.UserID != nil {
		pb.UserId = d.UserID.String()
	}
	if d.UserRating != nil {
		rating := int32(*d.UserRating)
		pb.UserRating = &rating
	}
	return pb
}

func ToPBUser(u *entity.User) *nutritionpb.User {
	pb := &nutritionpb.User{
		Id:                 u.ID.String(),
		Openid:             u.OpenID,
		Nickname:           strOrEmpty(u.Nickname),
		AvatarUrl:          strOrEmpty(u.AvatarURL),
		HealthConditions:   strOrEmpty(u.HealthConditions),
		DietaryPreferences: strOrEmpty(u.DietaryPreferences),
		Allergies:          strOrEmpty(u.Allergies),
		ScanCount:          int32(u.ScanCount),
		LastScanAt:         timeOrEmpty(u.LastScanAt),
		CreatedAt:          u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          u.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if u.Age != nil {
		age := int32(*u.Age)
		pb.Age = &age
	}
	return pb
}

func ToPBArticle(a *entity.Article) *nutritionpb.Article {
	return &nutritionpb.Article{
		Id:        int32(a.ID),
		Title:     a.Title,
		Summary:   strOrEmpty(a.Summary),
		Content:   a.Content,
		Category:  strOrEmpty(a.Category),
		CoverUrl:  strOrEmpty(a.CoverURL),
		ViewCount: int32(a.ViewCount),
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBStats(s *entity.DetectionStats) *nutritionpb.DetectionStats {
	pb := &nutritionpb.DetectionStats{
		Total:         int32(s.Total),
		Completed:     int32(s.Completed),
		Failed:        int32(s.Failed),
		AverageScore:  s.AverageScore,
		FavoriteCount: int32(s.FavoriteCount),
	}
	for _, level := range constants.RiskLevels {
		if n, ok := s.RiskCounts[constants.RiskLevel(level)]; ok && n > 0 {
			pb.RiskCounts = append(pb.RiskCounts, &nutritionpb.RiskCount{
				RiskLevel: level,
				Count:     int32(n),
			})
		}
	}
	return pb
}

func ToPBDailyStat(d *entity.DailyStat) *nutritionpb.DailyStat {
	return &nutritionpb.DailyStat{
		Date:         d.Date.Format("2006-01-02"),
		Count:        int32(d.Count),
		AverageScore: d.AverageScore,
	}
}
