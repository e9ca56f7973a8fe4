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

package crun

import "fmt"

// Identity of the monitored resource as used in filters and names
type Identity struct {
	ResourceType string `yaml:"resourceType"`
	LabelKey     string `yaml:"labelKey"`
	Value        string `yaml:"value"`
}

// MetricName log based metric name for an indicator key
func (identity Identity) MetricName(key string) string {
	return fmt.Sprintf("%s-%s", identity.Value, key)
}

// MetricType fully qualified metric type of the log based metric for an indicator key
func (identity Identity) MetricType(key string) string {
	return fmt.Sprintf("logging.googleapis.com/user/%s", identity.MetricName(key))
}

// MetricFilter monitoring filter selecting the time series of the log based metric for an indicator key
func (identity Identity) MetricFilter(key string) string {
	return fmt.Sprintf(`metric.type="%s" AND resource.type="%s" AND resource.label.%s="%s"`,
		identity.MetricType(key),
		identity.ResourceType,
		identity.LabelKey,
		identity.Value)
}
