package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
)

type IMessageUseCase interface {
	SubmitMessage(ctx context.Context, name, email, message string) (*entity.Message, error)
	GetMessages(ctx context.Context) ([]*entity.Message, error)
	MarkAsRead(ctx context.Context, messageID string) error
	DeleteMessage(ctx context.Context, messageID string) error
}
