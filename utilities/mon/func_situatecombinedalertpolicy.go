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
	"github.com/BrunoReboul/runmon/utilities/crun"
	"google.golang.org/api/monitoring/v3"
)

// SituateCombinedAlertPolicy builds a combined alert policy
// A custom filter gives one condition, else there is one condition per metric, in the metrics order
func SituateCombinedAlertPolicy(key string, policy PolicyParameters, identity crun.Identity, defaults DefaultParameters) *monitoring.AlertPolicy {
	displayName := CombinedPolicyDisplayName(key, policy, identity)
	settings := ResolveConditionSettings(DefaultConditionSettings(defaults), policy.ConditionSettings)
	var conditions []*monitoring.Condition
	if policy.Filter != nil {
		conditions = []*monitoring.Condition{
			buildCondition(conditionDisplayName(key), crun.RewriteResourceType(*policy.Filter, identity), settings),
		}
	} else {
		conditions = make([]*monitoring.Condition, 0, len(policy.Metrics))
		for _, metricKey := range policy.Metrics {
			conditions = append(conditions, buildCondition(conditionDisplayName(metricKey), identity.MetricFilter(metricKey), settings))
		}
	}
	return buildAlertPolicy(displayName,
		policy.Severity,
		conditions,
		ResolveRunbookURL(defaults.RunbookURL, policy.RunbookURL))
}
