package contract

import (
	"context"
	"io"
)

// IUUIDGenerator generates unique identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}

// IHasher hashes and checks passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

// IImageStorage persists an uploaded image and returns its public URL.
type IImageStorage interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// IEmailService sends outbound mail.
type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// ITxRunner runs fn so that every store write made with the passed context
// commits or aborts together, when the deployment supports it.
type ITxRunner interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// IRandomGenerator produces url and filename safe random strings.
type IRandomGenerator interface {
	// RandomHex returns 2*n lowercase hex characters drawn from n random bytes.
	RandomHex(n int) (string, error)
}
