package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		ShareTokenTTL  Duration `json:"share_token_ttl"`
		BcryptCost     int      `json:"bcrypt_cost"`
		ShareURLPrefix string   `json:"share_url_prefix"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Cache struct {
			Addr           string   `json:"redis_addr"`
			Password       string   `json:"redis_password"`
			DB             int      `json:"redis_db"`
			PublicBoardTTL Duration `json:"public_board_ttl"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			ShareTokenTTL:  time.Duration(jsonCfg.App.ShareTokenTTL),
			BcryptCost:     jsonCfg.App.BcryptCost,
			ShareURLPrefix: jsonCfg.App.ShareURLPrefix,
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Cache: Cache{
				Addr:           jsonCfg.Storage.Cache.Addr,
				Password:       jsonCfg.Storage.Cache.Password,
				DB:             jsonCfg.Storage.Cache.DB,
				PublicBoardTTL: time.Duration(jsonCfg.Storage.Cache.PublicBoardTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
