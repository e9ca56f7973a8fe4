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
	"fmt"

	"github.com/BrunoReboul/runmon/utilities/crun"
)

// IndicatorPolicyDisplayName policy_name when set, else Metric-{resource}-{key}
func IndicatorPolicyDisplayName(key string, alertCondition AlertConditionParameters, identity crun.Identity) string {
	if alertCondition.PolicyName != "" {
		return alertCondition.PolicyName
	}
	return fmt.Sprintf("Metric-%s", identity.MetricName(key))
}

// CombinedPolicyDisplayName display_name when set, else Policy-{resource}-{key}
func CombinedPolicyDisplayName(key string, policy PolicyParameters, identity crun.Identity) string {
	if policy.DisplayName != "" {
		return policy.DisplayName
	}
	return fmt.Sprintf("Policy-%s-%s", identity.Value, key)
}
