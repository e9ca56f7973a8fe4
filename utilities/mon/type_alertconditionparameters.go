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

// AlertConditionParameters alert condition attached to one indicator
type AlertConditionParameters struct {
	Duration       string   `yaml:"duration" valid:"isDuration"`
	Threshold      float64  `yaml:"threshold" valid:"isNotNegative"`
	Aligner        string   `yaml:"aligner" valid:"isAligner"`
	Reducer        string   `yaml:"reducer" valid:"isReducer"`
	Filter         string   `yaml:"filter,omitempty"`
	GroupByFields  []string `yaml:"group_by_fields,omitempty"`
	PolicyName     string   `yaml:"policy_name,omitempty" valid:"isPolicyName,omitempty"`
	PolicySeverity string   `yaml:"policy_severity,omitempty" valid:"isOneOf,INFO|WARNING|ERROR|CRITICAL,omitempty"`
	RunbookURL     string   `yaml:"runbook_url,omitempty"`
}

// conditionSettings exposes the condition as a settings layer
func (alertCondition AlertConditionParameters) conditionSettings() *ConditionSettings {
	threshold := alertCondition.Threshold
	layer := ConditionSettings{
		Threshold:     &threshold,
		GroupByFields: alertCondition.GroupByFields,
	}
	if alertCondition.Duration != "" {
		duration := alertCondition.Duration
		layer.Duration = &duration
	}
	if alertCondition.Aligner != "" {
		aligner := alertCondition.Aligner
		layer.Aligner = &aligner
	}
	if alertCondition.Reducer != "" {
		reducer := alertCondition.Reducer
		layer.Reducer = &reducer
	}
	return &layer
}
