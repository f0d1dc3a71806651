package entity

import (
	"errors"
	"fmt"
)

var (
	ErrTagNotFound         = errors.New("tag not found")
	ErrDuplicateTag        = errors.New("tag already exists")
	ErrInvalidTagName      = fmt.Errorf("tag name must be between %d and %d characters", TagNameMinLength, TagNameMaxLength)
	ErrInvalidTagReference = errors.New("invalid tag reference")
	ErrTagInUse            = errors.New("tag is in use")

	ErrBlogPostNotFound = errors.New("blog post not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrHeroNotFound     = errors.New("hero content not found")
	ErrMessageNotFound  = errors.New("message not found")
	// ErrConcurrentUpdate means the stored tags changed between read and write.
	ErrConcurrentUpdate = errors.New("content was modified concurrently")

	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnsupportedMediaType = errors.New("only image uploads are allowed")
	ErrFileTooLarge         = errors.New("file is too large")

	ErrInvalidInput = errors.New("invalid input")
)

// TagInUseError is returned when deleting a tag that content still references.
type TagInUseError struct {
	TagID string
	Count int
}

func (e *TagInUseError) Error() string {
	return fmt.Sprintf("cannot delete tag as it is being used in %d posts", e.Count)
}

func (e *TagInUseError) Unwrap() error {
	return ErrTagInUse
}
