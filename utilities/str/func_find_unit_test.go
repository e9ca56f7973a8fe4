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

package str

import (
	"testing"
)

func TestUnitFind(t *testing.T) {
	var testCases = []struct {
		name       string
		slice      []string
		val        string
		shouldPass bool
	}{
		{
			name:       "FindSeverity",
			slice:      []string{"INFO", "WARNING", "ERROR", "CRITICAL"},
			val:        "CRITICAL",
			shouldPass: true,
		},
		{
			name:       "DoNotFindSeverity",
			slice:      []string{"INFO", "WARNING", "ERROR", "CRITICAL"},
			val:        "FATAL",
			shouldPass: false,
		},
		{
			name:       "CaseSensitive",
			slice:      []string{"INFO", "WARNING", "ERROR", "CRITICAL"},
			val:        "error",
			shouldPass: false,
		},
		{
			name:       "DoNotFindInEmptySlice",
			slice:      []string{},
			val:        "INFO",
			shouldPass: false,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := Find(tc.slice, tc.val)
			if tc.shouldPass != result {
				if tc.shouldPass {
					t.Errorf("Should find string '%s' in slice %v", tc.val, tc.slice)
				} else {
					t.Errorf("Should NOT find string '%s' in slice %v", tc.val, tc.slice)
				}
			}
		})
	}
}
