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

package mon

import (
	"log"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestUnitPolicyParametersValidate(t *testing.T) {
	type testcases []struct {
		Name         string
		Key          string           `yaml:"key"`
		Policy       PolicyParameters `yaml:"policy"`
		WantErrorMsg string           `yaml:"wantErrorMsg"`
	}
	var testCases testcases

	yamlBytes := []byte(`---
- name: metrics
  key: payments
  policy:
    metrics:
    - m1
    - m2
- name: filter
  key: payments
  policy:
    filter: resource.type="cloud_run_revision"
- name: empty filter is set
  key: payments
  policy:
    filter: ""
- name: neither metrics nor filter
  key: payments
  policy:
    display_name: Payments
  wantErrorMsg: at least one of metrics or filter
- name: bad key
  key: pay.ments
  policy:
    metrics:
    - m1
  wantErrorMsg: key should match
- name: bad severity
  key: payments
  policy:
    severity: FATAL
    metrics:
    - m1
  wantErrorMsg: severity
- name: bad condition settings duration
  key: payments
  policy:
    metrics:
    - m1
    condition_settings:
      duration: 5 minutes
  wantErrorMsg: duration
`)
	err := yaml.Unmarshal(yamlBytes, &testCases)
	if err != nil {
		log.Fatalf("Unmarshal yamlBytes %v", err)
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-reference-to-loop-iterator-variable
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			violations := tc.Policy.Validate(tc.Key)
			if tc.WantErrorMsg == "" {
				if len(violations) != 0 {
					t.Errorf("want no violation got %v", violations)
				}
				return
			}
			if !strings.Contains(strings.Join(violations, "\n"), tc.WantErrorMsg) {
				t.Errorf("want a violation containing '%s' got %v", tc.WantErrorMsg, violations)
			}
		})
	}
}
