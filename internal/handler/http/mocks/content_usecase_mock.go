package mocks

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// MockHeroUsecase is a mock implementation of IHeroUseCase
type MockHeroUsecase struct {
	ShouldFailGet    bool
	ShouldFailUpdate bool

	Hero entity.HeroContent
}

var _ usecasecontract.IHeroUseCase = (*MockHeroUsecase)(nil)

func (m *MockHeroUsecase) GetHero(ctx context.Context) (*entity.HeroContent, error) {
	if m.ShouldFailGet {
		return nil, errors.New("find failed")
	}
	hero := m.Hero
	if hero.Title == "" {
		hero = entity.DefaultHeroContent()
	}
	return &hero, nil
}

func (m *MockHeroUsecase) UpdateHero(ctx context.Context, hero entity.HeroContent) (*entity.HeroContent, error) {
	if m.ShouldFailUpdate {
		return nil, errors.New("upsert failed")
	}
	m.Hero = hero
	return &hero, nil
}

// MockMessageUsecase is a mock implementation of IMessageUseCase
type MockMessageUsecase struct {
	ShouldFailSubmit bool
	NotFound         bool

	Messages []*entity.Message
	ReadIDs  []string
}

var _ usecasecontract.IMessageUseCase = (*MockMessageUsecase)(nil)

func (m *MockMessageUsecase) SubmitMessage(ctx context.Context, name, email, message string) (*entity.Message, error) {
	if m.ShouldFailSubmit {
		return nil, errors.New("insert failed")
	}
	msg := &entity.Message{ID: "msg-1", Name: name, Email: email, Message: message, CreatedAt: time.Now()}
	m.Messages = append(m.Messages, msg)
	return msg, nil
}

func (m *MockMessageUsecase) GetMessages(ctx context.Context) ([]*entity.Message, error) {
	return m.Messages, nil
}

func (m *MockMessageUsecase) MarkAsRead(ctx context.Context, messageID string) error {
	if m.NotFound {
		return entity.ErrMessageNotFound
	}
	m.ReadIDs = append(m.ReadIDs, messageID)
	return nil
}

func (m *MockMessageUsecase) DeleteMessage(ctx context.Context, messageID string) error {
	if m.NotFound {
		return entity.ErrMessageNotFound
	}
	return nil
}

// MockMediaUsecase is a mock implementation of IMediaUseCase
type MockMediaUsecase struct {
	Err error

	LastFilename string
	LastBody     []byte
}

var _ usecasecontract.IMediaUseCase = (*MockMediaUsecase)(nil)

func (m *MockMediaUsecase) UploadImage(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	m.LastFilename = filename
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.LastBody = body
	if m.Err != nil {
		return "", m.Err
	}
	return "/uploads/" + filename, nil
}
