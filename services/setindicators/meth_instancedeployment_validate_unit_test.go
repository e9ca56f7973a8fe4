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

package setindicators

import (
	"errors"
	"strings"
	"testing"

	"github.com/BrunoReboul/runmon/utilities/erm"
)

func TestUnitInstanceDeploymentValidate(t *testing.T) {
	testCases := []struct {
		name          string
		instanceYAML  string
		wantErrorMsgs []string
	}{
		{
			name:         "valid service",
			instanceYAML: "service_name: svc\nindicators:" + errorsIndicatorYAML,
		},
		{
			name:         "valid job with policies",
			instanceYAML: "job_name: nightly\nenable_advanced_log_based_json_indicators: true\nindicators:" + errorsIndicatorYAML + "policies:\n  p:\n    metrics:\n    - errors\n",
		},
		{
			name:          "both service and job",
			instanceYAML:  "service_name: svc\njob_name: nightly\nindicators:" + errorsIndicatorYAML,
			wantErrorMsgs: []string{"got both"},
		},
		{
			name:          "no target",
			instanceYAML:  "indicators:" + errorsIndicatorYAML,
			wantErrorMsgs: []string{"got none"},
		},
		{
			name: "duplicate display name across indicator and combined policies",
			instanceYAML: `service_name: svc
enable_advanced_log_based_json_indicators: true
indicators:` + errorsIndicatorYAML + `policies:
  all:
    display_name: Metric-svc-errors
    metrics:
    - errors
  again:
    display_name: Metric-svc-errors
    metrics:
    - errors
`,
			wantErrorMsgs: []string{
				"policies/again display name 'Metric-svc-errors' already used by indicators/errors/alert_condition",
				"policies/all display name 'Metric-svc-errors' already used by indicators/errors/alert_condition",
			},
		},
		{
			name:          "derived metric name too long",
			instanceYAML:  "service_name: s01234567890123456789012345678901234567890123456789abcdefghi\nindicators:\n  k01234567890123456789012345678901234567890123456789abcdefghi:\n    metric_kind: DELTA\n    value_type: INT64\n",
			wantErrorMsgs: []string{"should NOT be longer than 100 characters, is 121"},
		},
		{
			name: "every violation is reported",
			instanceYAML: `service_name: svc
indicators:
  bad-key:
    filter: severity>=ERROR
    label_extractors:
      status: EXTRACT(httpRequest.status)
    metric_kind: SUMMARY
    value_type: INT64
    labels:
    - key: status
    alert_condition:
      duration: "60"
      threshold: -1
      aligner: ALIGN_RATE
      reducer: REDUCE_SUM
policies:
  empty:
    severity: FATAL
`,
			wantErrorMsgs: []string{
				"indicators/bad-key metric name should match",
				"indicators/bad-key 'metric_kind'",
				"indicators/bad-key/alert_condition 'duration'",
				"indicators/bad-key/alert_condition 'threshold'",
				"policies/empty 'severity'",
				"policies/empty at least one of metrics or filter",
			},
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-reference-to-loop-iterator-variable
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			instanceDeployment := newTestInstanceDeployment(t, tc.instanceYAML)
			err := instanceDeployment.Validate()
			if len(tc.wantErrorMsgs) == 0 {
				if err != nil {
					t.Errorf("want no error got %v", err)
				}
				return
			}
			var configurationError *erm.ConfigurationError
			if !errors.As(err, &configurationError) {
				t.Fatalf("want an *erm.ConfigurationError got %v", err)
			}
			if len(configurationError.Messages) < len(tc.wantErrorMsgs) {
				t.Errorf("want at least %d messages got %d", len(tc.wantErrorMsgs), len(configurationError.Messages))
			}
			for _, wantErrorMsg := range tc.wantErrorMsgs {
				if !strings.Contains(err.Error(), wantErrorMsg) {
					t.Errorf("want error containing '%s' got\n%s", wantErrorMsg, err.Error())
				}
			}
		})
	}
}

func TestUnitInstanceDeploymentValidateIsDeterministic(t *testing.T) {
	instanceYAML := `service_name: svc
indicators:
  a.b:
    metric_kind: DELTA
    value_type: INT64
  c.d:
    metric_kind: DELTA
    value_type: INT64
  e.f:
    metric_kind: DELTA
    value_type: INT64
`
	first := newTestInstanceDeployment(t, instanceYAML).Validate()
	if first == nil {
		t.Fatalf("want an error got nil")
	}
	for i := 0; i < 10; i++ {
		err := newTestInstanceDeployment(t, instanceYAML).Validate()
		if err == nil || err.Error() != first.Error() {
			t.Fatalf("want the same error text on every run got\n%v\nthen\n%v", first, err)
		}
	}
	if strings.Index(first.Error(), "indicators/a.b") > strings.Index(first.Error(), "indicators/e.f") {
		t.Errorf("want violations sorted by key got\n%s", first.Error())
	}
}

func TestUnitInstanceDeploymentValidateMissingProject(t *testing.T) {
	instanceDeployment := newTestInstanceDeployment(t, "service_name: svc\nindicators:"+errorsIndicatorYAML)
	instanceDeployment.Core.SolutionSettings.Hosting.ProjectID = ""
	err := instanceDeployment.Validate()
	if err == nil || !strings.Contains(err.Error(), "projectID") {
		t.Errorf("want a projectID violation got %v", err)
	}
}
