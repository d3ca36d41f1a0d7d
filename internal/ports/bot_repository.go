package ports

import (
	"context"

	"github.com/bnema/onebot-cli/internal/domain"
)

type BotRepository interface {
	GetByID(ctx context.Context, id domain.BotID) (domain.BotProfile, error)
	List(ctx context.Context) ([]domain.BotProfile, error)
	Save(ctx context.Context, profile domain.BotProfile) error
}
