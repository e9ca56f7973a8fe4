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
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUnitConfigurationError(t *testing.T) {
	var testCases = []struct {
		name             string
		messages         []string
		wantNil          bool
		wantMsgContains  []string
		wantMessageCount int
	}{
		{
			name:    "noViolation",
			wantNil: true,
		},
		{
			name:             "oneViolation",
			messages:         []string{"indicators/errors metric_kind invalid"},
			wantMessageCount: 1,
			wantMsgContains:  []string{"1 violation(s)", "indicators/errors metric_kind invalid"},
		},
		{
			name:             "twoViolations",
			messages:         []string{"first", "second"},
			wantMessageCount: 2,
			wantMsgContains:  []string{"2 violation(s)", "first\nsecond"},
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var configurationError ConfigurationError
			configurationError.Append(tc.messages...)
			err := configurationError.ErrorOrNil()
			if tc.wantNil {
				if err != nil {
					t.Errorf("Want NO error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Should send back an error and is NOT")
			}
			wrapped := fmt.Errorf("validate %w", err)
			var target *ConfigurationError
			if !errors.As(wrapped, &target) {
				t.Fatalf("Want errors.As to find a ConfigurationError")
			}
			if len(target.Messages) != tc.wantMessageCount {
				t.Errorf("Want %d messages, got %d", tc.wantMessageCount, len(target.Messages))
			}
			for _, expectedString := range tc.wantMsgContains {
				if !strings.Contains(err.Error(), expectedString) {
					t.Errorf("Error message should contains '%s' and is\n%s", expectedString, err.Error())
				}
			}
		})
	}
}

func TestUnitConfigurationErrorAdd(t *testing.T) {
	var configurationError ConfigurationError
	configurationError.Add("policies/%s severity '%s' invalid", "p1", "FATAL")
	if configurationError.Messages[0] != "policies/p1 severity 'FATAL' invalid" {
		t.Errorf("Want formatted message, got '%s'", configurationError.Messages[0])
	}
}
