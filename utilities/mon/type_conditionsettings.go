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

// ConditionSettings a layer of condition settings, a nil field is not set
type ConditionSettings struct {
	Duration      *string  `yaml:"duration,omitempty" valid:"isDuration,omitempty"`
	Threshold     *float64 `yaml:"threshold,omitempty"`
	Aligner       *string  `yaml:"aligner,omitempty"`
	Reducer       *string  `yaml:"reducer,omitempty"`
	GroupByFields []string `yaml:"group_by_fields,omitempty"`
}

// ResolvedConditionSettings condition settings once all layers are merged
type ResolvedConditionSettings struct {
	Duration      string
	Threshold     float64
	Aligner       string
	Reducer       string
	GroupByFields []string
}
