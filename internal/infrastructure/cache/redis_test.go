package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisFromURL_InvalidURL(t *testing.T) {
	_, err := NewRedisFromURL(context.Background(), "http://not-redis")
	assert.ErrorContains(t, err, "invalid redis url")
}
