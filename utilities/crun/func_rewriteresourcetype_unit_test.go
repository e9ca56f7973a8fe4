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

import (
	"testing"
)

func TestUnitRewriteResourceType(t *testing.T) {
	var testCases = []struct {
		name   string
		filter string
		target Target
		want   string
	}{
		{
			name:   "jobRewritesRevision",
			filter: `resource.type="cloud_run_revision" AND severity>=ERROR`,
			target: Job("batch"),
			want:   `resource.type="cloud_run_job" AND severity>=ERROR`,
		},
		{
			name:   "serviceKeepsRevision",
			filter: `resource.type="cloud_run_revision" AND severity>=ERROR`,
			target: Service("svc"),
			want:   `resource.type="cloud_run_revision" AND severity>=ERROR`,
		},
		{
			name:   "everyOccurrence",
			filter: `(resource.type="cloud_run_revision" AND a) OR (resource.type="cloud_run_revision" AND b)`,
			target: Job("batch"),
			want:   `(resource.type="cloud_run_job" AND a) OR (resource.type="cloud_run_job" AND b)`,
		},
		{
			name:   "spacedVariantIsNotRewritten",
			filter: `resource.type = "cloud_run_revision"`,
			target: Job("batch"),
			want:   `resource.type = "cloud_run_revision"`,
		},
		{
			name:   "otherResourceTypeUntouched",
			filter: `resource.type="cloud_function" jsonPayload.message=~"cloud_run_revision"`,
			target: Job("batch"),
			want:   `resource.type="cloud_function" jsonPayload.message=~"cloud_run_revision"`,
		},
		{
			name:   "empty",
			filter: "",
			target: Job("batch"),
			want:   "",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := RewriteResourceType(tc.filter, Resolve(tc.target))
			if got != tc.want {
				t.Errorf("Want '%s' have '%s'", tc.want, got)
			}
		})
	}
}
