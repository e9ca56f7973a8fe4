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
	"context"
	"fmt"
	"testing"

	"github.com/BrunoReboul/runmon/utilities/deploy"
	"google.golang.org/api/logging/v2"
	"google.golang.org/api/monitoring/v3"
	"gopkg.in/yaml.v2"
)

type provisionerCall struct {
	kind string
	key  string
}

// fakeProvisioner records calls and fails on failKey
type fakeProvisioner struct {
	calls   []provisionerCall
	failKey string
	failErr error
}

func (fake *fakeProvisioner) CreateLogMetric(ctx context.Context, key string, logMetric *logging.LogMetric) (string, error) {
	fake.calls = append(fake.calls, provisionerCall{kind: "logMetric", key: key})
	if key == fake.failKey {
		return "", fake.failErr
	}
	return fmt.Sprintf("projects/runmon-dev/metrics/%s", logMetric.Name), nil
}

func (fake *fakeProvisioner) CreateAlertPolicy(ctx context.Context, key string, alertPolicy *monitoring.AlertPolicy) (string, error) {
	fake.calls = append(fake.calls, provisionerCall{kind: "alertPolicy", key: key})
	if key == fake.failKey {
		return "", fake.failErr
	}
	return fmt.Sprintf("projects/runmon-dev/alertPolicies/%s", alertPolicy.DisplayName), nil
}

func newTestInstanceDeployment(t *testing.T, instanceYAML string) *InstanceDeployment {
	t.Helper()
	instanceDeployment := NewInstanceDeployment()
	instanceDeployment.Core = &deploy.Core{
		InstanceName:    "test",
		EnvironmentName: "dev",
		Ctx:             context.Background(),
	}
	instanceDeployment.Core.SolutionSettings.Hosting.ProjectID = "runmon-dev"
	err := yaml.UnmarshalStrict([]byte(instanceYAML), &instanceDeployment.Settings.Instance)
	if err != nil {
		t.Fatalf("yaml.UnmarshalStrict %v", err)
	}
	return instanceDeployment
}

const errorsIndicatorYAML = `
  errors:
    filter: resource.type="cloud_run_revision" AND severity>=ERROR
    label_extractors:
      error_type: EXTRACT(jsonPayload.error_type)
    metric_kind: DELTA
    value_type: INT64
    labels:
    - key: error_type
      value_type: STRING
    alert_condition:
      duration: 60s
      threshold: 1
      aligner: ALIGN_RATE
      reducer: REDUCE_SUM
`
