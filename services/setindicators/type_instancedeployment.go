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
	"github.com/BrunoReboul/runmon/utilities/deploy"
	"github.com/BrunoReboul/runmon/utilities/glo"
	"github.com/BrunoReboul/runmon/utilities/mon"
	"google.golang.org/api/logging/v2"
	"google.golang.org/api/monitoring/v3"
)

// InstanceDeployment settings and artifacts structure
type InstanceDeployment struct {
	Artifacts struct {
		LogMetrics            map[string]*logging.LogMetric      `yaml:"logMetrics" json:"logMetrics"`
		AlertPolicies         map[string]*monitoring.AlertPolicy `yaml:"alertPolicies" json:"alertPolicies"`
		CombinedAlertPolicies map[string]*monitoring.AlertPolicy `yaml:"combinedAlertPolicies" json:"combinedAlertPolicies"`
	}
	Core     *deploy.Core
	Settings struct {
		Instance InstanceParameters
	}
}

// InstanceParameters one monitored Cloud Run target, set exactly one of service_name or job_name
type InstanceParameters struct {
	ServiceName                          string                             `yaml:"service_name,omitempty"`
	JobName                              string                             `yaml:"job_name,omitempty"`
	EnableAdvancedLogBasedJSONIndicators bool                               `yaml:"enable_advanced_log_based_json_indicators"`
	Indicators                           map[string]glo.IndicatorParameters `yaml:"indicators"`
	Policies                             map[string]mon.PolicyParameters    `yaml:"policies,omitempty"`
}

// NewInstanceDeployment create deployment structure
func NewInstanceDeployment() *InstanceDeployment {
	return &InstanceDeployment{}
}
