package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	nutritionpb "github.com/nutriscan/nutrition-scanner/gen/proto/nutrition/v1"
	"github.com/nutriscan/nutrition-scanner/internal/common"
	"github.com/nutriscan/nutrition-scanner/internal/repository"
	"github.com/nutriscan/nutrition-scanner/internal/utils"
)

// EducationServer serves published nutrition articles.
type EducationServer struct {
	nutritionpb.UnimplementedEducationServiceServer
	articles repository.ArticleRepository
	logger   *slog.Logger
}

func NewEducationServer(articles repository.ArticleRepository, logger *slog.Logger) *EducationServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &EducationServer{articles: articles, logger: logger}
}

func (s *EducationServer) ListArticles(ctx context.Context, req *nutritionpb.ListArticlesRequest) (*nutritionpb.ListArticlesResponse, error) {
	page := int(req.GetPage())
	if page < 1 {
		page = 1
	}
	size := int(req.GetPageSize())
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	recs, total, err := s.articles.List(ctx, strings.TrimSpace(req.GetCategory()), (page-1)*size, size)
	if err != nil {
		return nil, statusFromError(err)
	}

	out := make([]*nutritionpb.Article, 0, len(recs))
	for _, a := range recs {
		out = append(out, utils.ToPBArticle(a))
	}
	return &nutritionpb.ListArticlesResponse{Articles: out, Total: int32(total)}, nil
}

func (s *EducationServer) GetArticle(ctx context.Context, req *nutritionpb.GetArticleRequest) (*nutritionpb.ArticleResponse, error) {
	if req.GetId() < 1 {
		return nil, common.InvalidArgumentError("id must be positive")
	}
	a, err := s.articles.GetByID(ctx, int(req.GetId()))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("article not found")
		}
		return nil, statusFromError(err)
	}
	return &nutritionpb.ArticleResponse{Article: utils.ToPBArticle(a)}, nil
}
