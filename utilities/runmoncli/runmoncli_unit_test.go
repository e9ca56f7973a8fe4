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

package runmoncli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrunoReboul/runmon/services/setindicators"
	"github.com/BrunoReboul/runmon/utilities/ffo"
	"gopkg.in/yaml.v2"
)

const testSolutionYAML = `hosting:
  projectIDs:
    dev: runmon-dev
    prd: runmon-prd
monitoring:
  default_runbook_url: https://runbooks.example.com/default
`

const testInstanceYAML = `service_name: svc
enable_advanced_log_based_json_indicators: true
indicators:
  errors:
    filter: resource.type="cloud_run_revision" AND severity>=ERROR
    label_extractors:
      error_type: EXTRACT(jsonPayload.error_type)
    metric_kind: DELTA
    value_type: INT64
    labels:
    - key: error_type
    alert_condition:
      duration: 60s
      threshold: 1
      aligner: ALIGN_RATE
      reducer: REDUCE_SUM
policies:
  all:
    metrics:
    - errors
`

const testInvalidInstanceYAML = `service_name: svc
job_name: nightly
indicators:
  errors:
    metric_kind: DELTA
    value_type: INT64
`

func writeTestRepo(t *testing.T, instances map[string]string) string {
	t.Helper()
	repo := t.TempDir()
	if err := os.WriteFile(filepath.Join(repo, "solution.yaml"), []byte(testSolutionYAML), 0644); err != nil {
		t.Fatalf("os.WriteFile %v", err)
	}
	for instanceName, instanceYAML := range instances {
		folder := filepath.Join(repo, "instances", instanceName)
		if err := os.MkdirAll(folder, 0755); err != nil {
			t.Fatalf("os.MkdirAll %v", err)
		}
		if err := os.WriteFile(filepath.Join(folder, "instance.yaml"), []byte(instanceYAML), 0644); err != nil {
			t.Fatalf("os.WriteFile %v", err)
		}
	}
	return repo
}

func runCommand(args ...string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestUnitValidateCommand(t *testing.T) {
	testCases := []struct {
		name         string
		instances    map[string]string
		args         []string
		wantErrorMsg string
	}{
		{
			name:      "valid",
			instances: map[string]string{"svc": testInstanceYAML},
		},
		{
			name:         "one invalid instance out of two",
			instances:    map[string]string{"svc": testInstanceYAML, "broken": testInvalidInstanceYAML},
			wantErrorMsg: "1 invalid instance(s) out of 2",
		},
		{
			name:      "selected instance only",
			instances: map[string]string{"svc": testInstanceYAML, "broken": testInvalidInstanceYAML},
			args:      []string{"--instance", "svc"},
		},
		{
			name:         "unknown environment has no project",
			instances:    map[string]string{"svc": testInstanceYAML},
			args:         []string{"--environment", "qa"},
			wantErrorMsg: "invalid instance",
		},
		{
			name:         "no instance",
			instances:    map[string]string{},
			wantErrorMsg: "runmoncli list instances",
		},
		{
			name:         "unknown field",
			instances:    map[string]string{"svc": testInstanceYAML + "unknown_field: true\n"},
			wantErrorMsg: "runmoncli load instance svc",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-reference-to-loop-iterator-variable
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := writeTestRepo(t, tc.instances)
			err := runCommand(append([]string{"validate", "--repo", repo, "--log-level", "error"}, tc.args...)...)
			if tc.wantErrorMsg == "" {
				if err != nil {
					t.Errorf("want no error got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErrorMsg) {
				t.Errorf("want error containing '%s' got %v", tc.wantErrorMsg, err)
			}
		})
	}
}

func TestUnitPlanCommandDump(t *testing.T) {
	repo := writeTestRepo(t, map[string]string{"svc": testInstanceYAML})
	if err := runCommand("plan", "--repo", repo, "--dump", "--log-level", "error"); err != nil {
		t.Fatalf("plan %v", err)
	}
	specsPath := filepath.Join(repo, "instances", "svc", "specs.yaml")
	b, err := os.ReadFile(specsPath)
	if err != nil {
		t.Fatalf("os.ReadFile %v", err)
	}
	var artifacts struct {
		LogMetrics map[string]struct {
			Name string `yaml:"name"`
		} `yaml:"logMetrics"`
		AlertPolicies map[string]struct {
			DisplayName   string `yaml:"displayName"`
			Documentation struct {
				Content string `yaml:"content"`
			} `yaml:"documentation"`
		} `yaml:"alertPolicies"`
		CombinedAlertPolicies map[string]interface{} `yaml:"combinedAlertPolicies"`
	}
	if err := yaml.Unmarshal(b, &artifacts); err != nil {
		t.Fatalf("yaml.Unmarshal %v", err)
	}
	for _, apiOnly := range []string{"forcesendfields", "nullfields", "forceSendFields"} {
		if strings.Contains(string(b), apiOnly) {
			t.Errorf("want no %s in specs.yaml got\n%s", apiOnly, string(b))
		}
	}
	if artifacts.LogMetrics["errors"].Name != "svc-errors" {
		t.Errorf("want log metric svc-errors got %v", artifacts.LogMetrics)
	}
	if artifacts.AlertPolicies["errors"].DisplayName != "Metric-svc-errors" {
		t.Errorf("want alert policy Metric-svc-errors got %v", artifacts.AlertPolicies)
	}
	if artifacts.AlertPolicies["errors"].Documentation.Content != "Runbook: https://runbooks.example.com/default" {
		t.Errorf("want the default runbook got %v", artifacts.AlertPolicies["errors"].Documentation)
	}
	if _, ok := artifacts.CombinedAlertPolicies["all"]; !ok {
		t.Errorf("want combined alert policy all got %v", artifacts.CombinedAlertPolicies)
	}
}

func TestUnitPlanCommandWithoutDump(t *testing.T) {
	repo := writeTestRepo(t, map[string]string{"svc": testInstanceYAML})
	if err := runCommand("plan", "--repo", repo, "--log-level", "error"); err != nil {
		t.Fatalf("plan %v", err)
	}
	if _, err := os.Stat(filepath.Join(repo, "instances", "svc", "specs.yaml")); !os.IsNotExist(err) {
		t.Errorf("want no specs.yaml without --dump got %v", err)
	}
}

func TestUnitLogLevel(t *testing.T) {
	repo := writeTestRepo(t, map[string]string{"svc": testInstanceYAML})
	err := runCommand("validate", "--repo", repo, "--log-level", "verbose")
	if err == nil || !strings.Contains(err.Error(), "log-level") {
		t.Errorf("want a log level error got %v", err)
	}
}

func TestUnitLoadInstanceDeployments(t *testing.T) {
	repo := writeTestRepo(t, map[string]string{"svc2": testInstanceYAML, "svc1": testInstanceYAML})
	s := &settings{RepositoryPath: repo, EnvironmentName: "prd"}
	instanceDeployments, err := loadInstanceDeployments(context.Background(), s)
	if err != nil {
		t.Fatalf("loadInstanceDeployments %v", err)
	}
	if len(instanceDeployments) != 2 {
		t.Fatalf("want 2 instances got %d", len(instanceDeployments))
	}
	var names []string
	for _, instanceDeployment := range instanceDeployments {
		names = append(names, instanceDeployment.Core.InstanceName)
		if instanceDeployment.Core.SolutionSettings.Hosting.ProjectID != "runmon-prd" {
			t.Errorf("want project runmon-prd got %s", instanceDeployment.Core.SolutionSettings.Hosting.ProjectID)
		}
	}
	if strings.Join(names, ",") != "svc1,svc2" {
		t.Errorf("want instances in name order got %v", names)
	}
	if instanceDeployments[0].Core.RunID == "" || instanceDeployments[0].Core.RunID != instanceDeployments[1].Core.RunID {
		t.Errorf("want one run ID shared by all instances")
	}
	var settingsBack setindicators.InstanceParameters
	if err := ffo.ReadUnmarshalYAML(filepath.Join(repo, "instances", "svc1", "instance.yaml"), &settingsBack); err != nil {
		t.Fatalf("ReadUnmarshalYAML %v", err)
	}
	if settingsBack.ServiceName != "svc" {
		t.Errorf("want service svc got %s", settingsBack.ServiceName)
	}
}
