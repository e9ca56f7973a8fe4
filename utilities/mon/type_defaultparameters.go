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

// DefaultParameters solution wide defaults for alert policies
type DefaultParameters struct {
	GroupByFields []string
	RunbookURL    string
}

// DefaultConditionSettings the bottom layer: hardcoded defaults, group by fields from the solution when set
func DefaultConditionSettings(defaults DefaultParameters) *ConditionSettings {
	duration := defaultDuration
	threshold := defaultThreshold
	aligner := defaultAligner
	reducer := defaultReducer
	groupByFields := getDefaultGroupByFields()
	if len(defaults.GroupByFields) > 0 {
		groupByFields = defaults.GroupByFields
	}
	return &ConditionSettings{
		Duration:      &duration,
		Threshold:     &threshold,
		Aligner:       &aligner,
		Reducer:       &reducer,
		GroupByFields: groupByFields,
	}
}
