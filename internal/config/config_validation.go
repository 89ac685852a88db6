// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig] before it is mapped to the
// client view. Empty fields are allowed here since defaults are applied
// afterwards, but a label language given by any source must be known.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Labels {
	case "", LabelsEnglish, LabelsSpanish:
		return nil
	default:
		return fmt.Errorf("%w: unknown labels %q", ErrInvalidAppConfigs, cfg.App.Labels)
	}
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" || strings.TrimSpace(cfg.Storage.Key) == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.App.Labels {
	case LabelsEnglish, LabelsSpanish:
	default:
		return ErrInvalidAppConfigs
	}

	return nil
}
