package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

const (
	messageNameMaxLength = 100
	messageBodyMaxLength = 5000
	notifyTimeout        = 10 * time.Second
)

type MessageUseCase struct {
	messageRepo contract.IMessageRepository
	mailService contract.IEmailService
	validator   usecasecontract.IValidator
	uuidgen     contract.IUUIDGenerator
	config      usecasecontract.IConfigProvider
	logger      usecasecontract.IAppLogger
}

var _ usecasecontract.IMessageUseCase = (*MessageUseCase)(nil)

// NewMessageUseCase accepts a nil mailService when SMTP is not configured.
func NewMessageUseCase(
	messageRepo contract.IMessageRepository,
	mailService contract.IEmailService,
	validator usecasecontract.IValidator,
	uuidgen contract.IUUIDGenerator,
	cfg usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		mailService: mailService,
		validator:   validator,
		uuidgen:     uuidgen,
		config:      cfg,
		logger:      logger,
	}
}

// SubmitMessage stores a contact form message and notifies the owner by
// mail when configured. A failed notification does not fail the request.
func (uc *MessageUseCase) SubmitMessage(ctx context.Context, name, email, message string) (*entity.Message, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || len([]rune(name)) > messageNameMaxLength {
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters", entity.ErrInvalidInput, messageNameMaxLength)
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", entity.ErrInvalidInput)
	}
	if message == "" || len([]rune(message)) > messageBodyMaxLength {
		return nil, fmt.Errorf("%w: message is required and must be at most %d characters", entity.ErrInvalidInput, messageBodyMaxLength)
	}

	msg := &entity.Message{
		ID:        uc.uuidgen.NewUUID(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := uc.messageRepo.CreateMessage(ctx, msg); err != nil {
		uc.logger.Errorf("failed to save message: %v", err)
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	uc.notify(ctx, msg)
	return msg, nil
}

func (uc *MessageUseCase) notify(ctx context.Context, msg *entity.Message) {
	to := uc.config.GetNotifyEmail()
	if uc.mailService == nil || to == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	subject := fmt.Sprintf("New message from %s", msg.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	if err := uc.mailService.SendEmail(ctx, to, subject, body); err != nil {
		uc.logger.Warningf("failed to send message notification: %v", err)
	}
}

func (uc *MessageUseCase) GetMessages(ctx context.Context) ([]*entity.Message, error) {
	return uc.messageRepo.GetMessages(ctx)
}

func (uc *MessageUseCase) MarkAsRead(ctx context.Context, messageID string) error {
	return uc.messageRepo.MarkAsRead(ctx, messageID)
}

func (uc *MessageUseCase) DeleteMessage(ctx context.Context, messageID string) error {
	return uc.messageRepo.DeleteMessage(ctx, messageID)
}
