package usecasecontract

import "time"

// IConfigProvider exposes the configuration values usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetMaxUploadSize() int64
	GetNotifyEmail() string
	GetCacheTTL() time.Duration
}
