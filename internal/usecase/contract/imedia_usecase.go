package usecasecontract

import (
	"context"
	"io"
)

type IMediaUseCase interface {
	UploadImage(ctx context.Context, filename string, size int64, r io.Reader) (string, error)
}
