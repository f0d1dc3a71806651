package contract

import (
	"context"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

type IMessageRepository interface {
	CreateMessage(ctx context.Context, msg *entity.Message) error
	GetMessages(ctx context.Context) ([]*entity.Message, error)
	MarkAsRead(ctx context.Context, messageID string) error
	DeleteMessage(ctx context.Context, messageID string) error
}
