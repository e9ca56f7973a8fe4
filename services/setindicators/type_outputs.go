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

// Outputs resource names by indicator or policy key
type Outputs struct {
	RunID                 string            `yaml:"runID"`
	LogMetrics            map[string]string `yaml:"logMetrics"`
	AlertPolicies         map[string]string `yaml:"alertPolicies"`
	CombinedAlertPolicies map[string]string `yaml:"combinedAlertPolicies"`
}

func newOutputs(runID string) Outputs {
	return Outputs{
		RunID:                 runID,
		LogMetrics:            make(map[string]string),
		AlertPolicies:         make(map[string]string),
		CombinedAlertPolicies: make(map[string]string),
	}
}
