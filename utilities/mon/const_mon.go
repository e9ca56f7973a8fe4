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

const (
	defaultDuration  = "60s"
	defaultThreshold = 1.0
	defaultAligner   = "ALIGN_RATE"
	defaultReducer   = "REDUCE_SUM"
	// DefaultSeverity applies when a policy severity is not set
	DefaultSeverity = "ERROR"

	alignmentPeriod   = "60s"
	comparison        = "COMPARISON_GT"
	triggerCount      = 1
	autoClose         = "86400s"
	renotifyInterval  = "86400s"
	combiner          = "OR"
	documentationMime = "text/markdown"
)

func getDefaultGroupByFields() []string {
	return []string{"resource.label.location"}
}
