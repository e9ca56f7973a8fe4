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

package setindicators

import (
	"fmt"

	"github.com/BrunoReboul/runmon/utilities/crun"
	"github.com/BrunoReboul/runmon/utilities/erm"
	"github.com/BrunoReboul/runmon/utilities/mon"
)

// Validate returns nil or an *erm.ConfigurationError listing every violated rule
func (instanceDeployment *InstanceDeployment) Validate() error {
	var configurationError erm.ConfigurationError
	configurationError.Append(instanceDeployment.Core.SolutionSettings.Validate()...)

	instance := instanceDeployment.Settings.Instance
	var identity crun.Identity
	target, err := crun.NewTarget(instance.ServiceName, instance.JobName)
	if err != nil {
		configurationError.Add("instance %v", err)
	} else {
		identity = crun.Resolve(target)
	}
	for _, key := range sortedKeys(instance.Indicators) {
		configurationError.Append(instance.Indicators[key].Validate(key, identity)...)
	}
	for _, key := range sortedKeys(instance.Policies) {
		configurationError.Append(instance.Policies[key].Validate(key)...)
	}
	if err == nil {
		configurationError.Append(instance.validateDisplayNames(identity)...)
	}
	return configurationError.ErrorOrNil()
}

// validateDisplayNames alert policies are matched by display name, so each one must be unique in the instance
func (instance InstanceParameters) validateDisplayNames(identity crun.Identity) (violations []string) {
	owners := make(map[string]string)
	check := func(pedigree string, displayName string) {
		if owner, ok := owners[displayName]; ok {
			violations = append(violations, fmt.Sprintf("%s display name '%s' already used by %s", pedigree, displayName, owner))
			return
		}
		owners[displayName] = pedigree
	}
	for _, key := range sortedKeys(instance.Indicators) {
		alertCondition := instance.Indicators[key].AlertCondition
		if alertCondition != nil {
			check(fmt.Sprintf("indicators/%s/alert_condition", key), mon.IndicatorPolicyDisplayName(key, *alertCondition, identity))
		}
	}
	for _, key := range sortedKeys(instance.Policies) {
		check(fmt.Sprintf("policies/%s", key), mon.CombinedPolicyDisplayName(key, instance.Policies[key], identity))
	}
	return violations
}
