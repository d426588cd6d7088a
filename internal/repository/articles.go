package repository

import (
	"context"
	"log/slog"

	"github.com/nutriscan/nutrition-scanner/gen/ent"
	"github.com/nutriscan/nutrition-scanner/gen/ent/article"
	"github.com/nutriscan/nutrition-scanner/internal/common"
	"github.com/nutriscan/nutrition-scanner/internal/entity"
	"github.com/nutriscan/nutrition-scanner/internal/utils"
)

type ArticleRepository interface {
	List(ctx context.Context, category string, offset, limit int) ([]*entity.Article, int, error)
	GetByID(ctx context.Context, id int) (*entity.Article, error)
}

type articleRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewArticleRepository(client *ent.Client, logger *slog.Logger) ArticleRepository {
	return &articleRepository{
		client: client,
		logger: logger,
	}
}

func (r *articleRepository) List(ctx context.Context, category string, offset, limit int) ([]*entity.Article, int, error) {
	q := r.client.Article.Query().Where(article.IsPublished(true))
	if category != "" {
		q = q.Where(article.CategoryEQ(category))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count articles", "error", err)
		return nil, 0, common.WrapError(err, common.ErrDatabase)
	}

	q = q.Order(ent.Desc(article.FieldCreatedAt))
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	recs, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list articles", "error", err)
		return nil, 0, common.WrapError(err, common.ErrDatabase)
	}

	result := make([]*entity.Article, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToArticle(rec)
	}
	return result, total, nil
}

func (r *articleRepository) GetByID(ctx context.Context, id int) (*entity.Article, error) {
	rec, err := r.client.Article.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get article", "article_id", id, "error", err)
		return nil, common.WrapError(err, common.ErrDatabase)
	}
	if !rec.IsPublished {
		return nil, common.ErrNotFound
	}
	// view count is best effort, readers should not fail on it
	if err := r.client.Article.UpdateOneID(id).AddViewCount(1).Exec(ctx); err != nil {
		r.logger.Warn("failed to bump view count", "article_id", id, "error", err)
	}
	return utils.ToArticle(rec), nil
}
