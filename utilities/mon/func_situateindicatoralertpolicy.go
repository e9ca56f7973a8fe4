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

// SituateIndicatorAlertPolicy builds the alert policy of one indicator
// Without a custom filter, the condition watches the indicator log based metric
func SituateIndicatorAlertPolicy(key string, alertCondition AlertConditionParameters, identity crun.Identity, defaults DefaultParameters) *monitoring.AlertPolicy {
	displayName := IndicatorPolicyDisplayName(key, alertCondition, identity)
	filter := identity.MetricFilter(key)
	if alertCondition.Filter != "" {
		filter = crun.RewriteResourceType(alertCondition.Filter, identity)
	}
	settings := ResolveConditionSettings(DefaultConditionSettings(defaults), alertCondition.conditionSettings())
	conditions := []*monitoring.Condition{buildCondition(conditionDisplayName(key), filter, settings)}
	return buildAlertPolicy(displayName,
		alertCondition.PolicySeverity,
		conditions,
		ResolveRunbookURL(defaults.RunbookURL, alertCondition.RunbookURL))
}
