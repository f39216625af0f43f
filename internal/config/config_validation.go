// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	}
	if cfg.App.ShareTokenTTL <= 0 {
		return fmt.Errorf("%w: share token ttl must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Cache.Addr != "" && cfg.Storage.Cache.PublicBoardTTL <= 0 {
		return fmt.Errorf("%w: public board ttl must be positive when cache is enabled", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidServerConfigs)
	}

	return nil
}
