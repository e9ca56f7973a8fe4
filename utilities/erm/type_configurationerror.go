// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package erm

import (
	"fmt"
	"strings"
)

// ConfigurationError carries every rule violated by a configuration
type ConfigurationError struct {
	Messages []string
}

// Error lists all violations, one per line
func (configurationError *ConfigurationError) Error() string {
	return fmt.Sprintf("erm invalid configuration, %d violation(s):\n%s",
		len(configurationError.Messages),
		strings.Join(configurationError.Messages, "\n"))
}

// Add appends one violation
func (configurationError *ConfigurationError) Add(format string, a ...interface{}) {
	configurationError.Messages = append(configurationError.Messages, fmt.Sprintf(format, a...))
}

// Append appends already formatted violations
func (configurationError *ConfigurationError) Append(messages ...string) {
	configurationError.Messages = append(configurationError.Messages, messages...)
}

// ErrorOrNil returns nil when no violation has been recorded
func (configurationError *ConfigurationError) ErrorOrNil() error {
	if configurationError == nil || len(configurationError.Messages) == 0 {
		return nil
	}
	return configurationError
}
