package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"github.com/mikiasgoitom/portfolio/internal/domain/contract"
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// sniffLength is how much of an upload is read to detect its type.
const sniffLength = 3072

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/avif": true,
}

type MediaUseCase struct {
	storage contract.IImageStorage
	randgen contract.IRandomGenerator
	config  usecasecontract.IConfigProvider
	logger  usecasecontract.IAppLogger
}

var _ usecasecontract.IMediaUseCase = (*MediaUseCase)(nil)

func NewMediaUseCase(storage contract.IImageStorage, randgen contract.IRandomGenerator, cfg usecasecontract.IConfigProvider, logger usecasecontract.IAppLogger) *MediaUseCase {
	return &MediaUseCase{storage: storage, randgen: randgen, config: cfg, logger: logger}
}

// UploadImage checks size and content type, then stores the image under a
// random name. The client supplied filename is only logged.
func (uc *MediaUseCase) UploadImage(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	limit := uc.config.GetMaxUploadSize()
	if size > limit {
		return "", entity.ErrFileTooLarge
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return "", fmt.Errorf("%w: empty file", entity.ErrInvalidInput)
	}

	mtype := mimetype.Detect(head)
	if !allowedImageTypes[mtype.String()] {
		uc.logger.Warningf("rejected upload %q: detected %s", filename, mtype.String())
		return "", entity.ErrUnsupportedMediaType
	}

	name, err := uc.randgen.RandomHex(16)
	if err != nil {
		return "", fmt.Errorf("failed to name upload: %w", err)
	}
	name += mtype.Extension()

	body := io.MultiReader(bytes.NewReader(head), io.LimitReader(r, limit-int64(n)))
	url, err := uc.storage.Save(ctx, name, body)
	if err != nil {
		uc.logger.Errorf("failed to store upload %q: %v", filename, err)
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	uc.logger.Infof("image uploaded: %s as %s", filename, name)
	return url, nil
}
