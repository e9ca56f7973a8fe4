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

import (
	"reflect"
	"testing"
)

func TestUnitResolveConditionSettings(t *testing.T) {
	threshold := 10.0
	zero := 0.0
	duration := "300s"
	emptyAligner := ""
	testCases := []struct {
		name   string
		layers []*ConditionSettings
		want   ResolvedConditionSettings
	}{
		{
			name:   "threshold only keeps the other defaults",
			layers: []*ConditionSettings{DefaultConditionSettings(DefaultParameters{}), {Threshold: &threshold}},
			want: ResolvedConditionSettings{
				Duration:      "60s",
				Threshold:     10,
				Aligner:       "ALIGN_RATE",
				Reducer:       "REDUCE_SUM",
				GroupByFields: []string{"resource.label.location"},
			},
		},
		{
			name:   "nil layer",
			layers: []*ConditionSettings{DefaultConditionSettings(DefaultParameters{}), nil},
			want: ResolvedConditionSettings{
				Duration:      "60s",
				Threshold:     1,
				Aligner:       "ALIGN_RATE",
				Reducer:       "REDUCE_SUM",
				GroupByFields: []string{"resource.label.location"},
			},
		},
		{
			name: "zero threshold, empty aligner and empty group by",
			layers: []*ConditionSettings{DefaultConditionSettings(DefaultParameters{}), {
				Threshold:     &zero,
				Duration:      &duration,
				Aligner:       &emptyAligner,
				GroupByFields: []string{},
			}},
			want: ResolvedConditionSettings{
				Duration:      "300s",
				Threshold:     0,
				Aligner:       "ALIGN_RATE",
				Reducer:       "REDUCE_SUM",
				GroupByFields: []string{"resource.label.location"},
			},
		},
		{
			name: "solution group by fields",
			layers: []*ConditionSettings{DefaultConditionSettings(DefaultParameters{
				GroupByFields: []string{"resource.label.service_name"},
			})},
			want: ResolvedConditionSettings{
				Duration:      "60s",
				Threshold:     1,
				Aligner:       "ALIGN_RATE",
				Reducer:       "REDUCE_SUM",
				GroupByFields: []string{"resource.label.service_name"},
			},
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-reference-to-loop-iterator-variable
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ResolveConditionSettings(tc.layers...)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("want %v got %v", tc.want, got)
			}
		})
	}
}

func TestUnitResolveRunbookURL(t *testing.T) {
	testCases := []struct {
		name   string
		layers []string
		want   string
	}{
		{name: "condition wins", layers: []string{"https://default", "https://condition"}, want: "https://condition"},
		{name: "default when condition empty", layers: []string{"https://default", ""}, want: "https://default"},
		{name: "none", layers: []string{"", ""}, want: ""},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-reference-to-loop-iterator-variable
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ResolveRunbookURL(tc.layers...)
			if got != tc.want {
				t.Errorf("want %s got %s", tc.want, got)
			}
		})
	}
}
