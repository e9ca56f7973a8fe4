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
	"fmt"
	"strings"
)

// revisionResourceTypeClause is the only substring rewritten in user filters
var revisionResourceTypeClause = fmt.Sprintf(`resource.type="%s"`, RevisionResourceType)

// RewriteResourceType replaces each literal resource.type="cloud_run_revision" by the identity resource type
// Anything else in the filter is left untouched
func RewriteResourceType(filter string, identity Identity) string {
	return strings.ReplaceAll(filter,
		revisionResourceTypeClause,
		fmt.Sprintf(`resource.type="%s"`, identity.ResourceType))
}
