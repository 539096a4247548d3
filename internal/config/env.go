// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment using its `env` and `envPrefix`
// tags. The light client and the mock node read the same variables
// (ADDRESS, DRIVER, SYNC_INTERVAL, ...); each picks its own fields later in
// [NewClientConfig] or [NewMockNodeConfig].
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse light client env config: %w", err)
	}

	return nil
}
