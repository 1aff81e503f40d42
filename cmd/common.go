/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/valpere/restyle/internal/provider"
)

// setting returns the flag value when set, otherwise the config/env value
// under the given key. Flags always win.
func setting(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(key)
}

// buildService constructs one generation service from CLI parameters.
func buildService(name, apiKey, baseURL, model string) (provider.GenerationService, error) {
	switch name {
	case "openai":
		return provider.NewOpenAIService(apiKey, baseURL, model), nil
	case "ollama":
		return provider.NewOllamaService(baseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown service: %s (supported: openai, ollama)", name)
	}
}

// buildClient wraps a service in the retry layer using CLI overrides.
func buildClient(svc provider.GenerationService, maxRetries int, timeout time.Duration) *provider.Client {
	policy := provider.DefaultRetryPolicy()
	if maxRetries > 0 {
		policy.MaxAttempts = maxRetries
	}
	if timeout > 0 {
		policy.AttemptTimeout = timeout
	}
	return provider.NewClient(svc, policy)
}
