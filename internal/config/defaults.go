package config

import "time"

const (
	DefaultTokenIssuer    = "mood-journal"
	DefaultShareTokenTTL  = 7 * 24 * time.Hour
	DefaultBcryptCost     = 10
	DefaultShareURLPrefix = "/api/mood/shared/"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultPublicBoardTTL = time.Minute
	DefaultLogLevel       = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    DefaultTokenIssuer,
			ShareTokenTTL:  DefaultShareTokenTTL,
			BcryptCost:     DefaultBcryptCost,
			ShareURLPrefix: DefaultShareURLPrefix,
			Version:        "dev",
		},
		Storage: Storage{
			Cache: Cache{PublicBoardTTL: DefaultPublicBoardTTL},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
