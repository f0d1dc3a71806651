package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// MockTagUsecase is a mock implementation of ITagUseCase
type MockTagUsecase struct {
	// Control mock behavior
	ShouldFailCreate    bool
	DuplicateOnCreate   bool
	ShouldFailList      bool
	ShouldFailRecount   bool
	InUseCount          int
	DeleteNotFound      bool
	InvalidNameOnCreate bool

	// Return values
	MockTag     entity.Tag
	MockTags    []entity.Tag
	Recounted   int
	DeletedTags []string
}

var _ usecasecontract.ITagUseCase = (*MockTagUsecase)(nil)

func NewMockTagUsecase() *MockTagUsecase {
	return &MockTagUsecase{
		MockTag: entity.Tag{ID: "tag-1", Name: "golang"},
		MockTags: []entity.Tag{
			{ID: "tag-1", Name: "golang", Count: 2},
			{ID: "tag-2", Name: "mongodb", Count: 0},
		},
	}
}

func (m *MockTagUsecase) CreateTag(ctx context.Context, name string) (*entity.Tag, error) {
	switch {
	case m.ShouldFailCreate:
		return nil, errors.New("connection reset")
	case m.DuplicateOnCreate:
		return nil, entity.ErrDuplicateTag
	case m.InvalidNameOnCreate:
		return nil, entity.ErrInvalidTagName
	}
	tag := m.MockTag
	tag.Name = entity.NormalizeTagName(name)
	return &tag, nil
}

func (m *MockTagUsecase) GetTagByID(ctx context.Context, tagID string) (*entity.Tag, error) {
	if tagID != m.MockTag.ID {
		return nil, entity.ErrTagNotFound
	}
	return &m.MockTag, nil
}

func (m *MockTagUsecase) GetTagByName(ctx context.Context, name string) (*entity.Tag, error) {
	if entity.NormalizeTagName(name) != m.MockTag.Name {
		return nil, entity.ErrTagNotFound
	}
	return &m.MockTag, nil
}

func (m *MockTagUsecase) ListTags(ctx context.Context) ([]entity.Tag, error) {
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	return m.MockTags, nil
}

func (m *MockTagUsecase) UsageReport(ctx context.Context) ([]entity.TagUsage, error) {
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	out := make([]entity.TagUsage, 0, len(m.MockTags))
	for _, t := range m.MockTags {
		out = append(out, entity.TagUsage{Tag: t, Stored: t.Count, Live: t.Count})
	}
	return out, nil
}

func (m *MockTagUsecase) DeleteTag(ctx context.Context, tagID string) error {
	if m.DeleteNotFound {
		return entity.ErrTagNotFound
	}
	if m.InUseCount > 0 {
		return &entity.TagInUseError{TagID: tagID, Count: m.InUseCount}
	}
	m.DeletedTags = append(m.DeletedTags, tagID)
	return nil
}

func (m *MockTagUsecase) RecountTags(ctx context.Context) (int, error) {
	if m.ShouldFailRecount {
		return 0, errors.New("recount failed")
	}
	return m.Recounted, nil
}
