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

// ResolveConditionSettings merges layers left to right, each set field overrides the previous layers
func ResolveConditionSettings(layers ...*ConditionSettings) (resolved ResolvedConditionSettings) {
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if layer.Duration != nil && *layer.Duration != "" {
			resolved.Duration = *layer.Duration
		}
		if layer.Threshold != nil {
			resolved.Threshold = *layer.Threshold
		}
		if layer.Aligner != nil && *layer.Aligner != "" {
			resolved.Aligner = *layer.Aligner
		}
		if layer.Reducer != nil && *layer.Reducer != "" {
			resolved.Reducer = *layer.Reducer
		}
		if len(layer.GroupByFields) > 0 {
			resolved.GroupByFields = append([]string(nil), layer.GroupByFields...)
		}
	}
	return resolved
}

// ResolveRunbookURL returns the last non empty URL, layers ordered from the most generic to the most specific
func ResolveRunbookURL(layers ...string) (runbookURL string) {
	for _, layer := range layers {
		if layer != "" {
			runbookURL = layer
		}
	}
	return runbookURL
}
