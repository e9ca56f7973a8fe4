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
	"github.com/BrunoReboul/runmon/utilities/glo"
	"github.com/BrunoReboul/runmon/utilities/mon"
	"google.golang.org/api/logging/v2"
	"google.golang.org/api/monitoring/v3"
)

// Situate builds the specifications from the instance and solution settings, to be called on a valid configuration
func (instanceDeployment *InstanceDeployment) Situate() (err error) {
	instance := instanceDeployment.Settings.Instance
	target, err := crun.NewTarget(instance.ServiceName, instance.JobName)
	if err != nil {
		return fmt.Errorf("setindicators %v", err)
	}
	identity := crun.Resolve(target)
	monitoringSettings := instanceDeployment.Core.SolutionSettings.Monitoring
	defaults := mon.DefaultParameters{
		GroupByFields: monitoringSettings.DefaultGroupByFields,
		RunbookURL:    monitoringSettings.DefaultRunbookURL,
	}

	artifacts := &instanceDeployment.Artifacts
	artifacts.LogMetrics = make(map[string]*logging.LogMetric, len(instance.Indicators))
	artifacts.AlertPolicies = make(map[string]*monitoring.AlertPolicy)
	artifacts.CombinedAlertPolicies = make(map[string]*monitoring.AlertPolicy)

	for _, key := range sortedKeys(instance.Indicators) {
		indicator := instance.Indicators[key]
		artifacts.LogMetrics[key] = glo.SituateLogMetric(key, indicator, identity)
		if instance.EnableAdvancedLogBasedJSONIndicators && indicator.AlertCondition != nil {
			artifacts.AlertPolicies[key] = mon.SituateIndicatorAlertPolicy(key, *indicator.AlertCondition, identity, defaults)
		}
	}
	if !instance.EnableAdvancedLogBasedJSONIndicators {
		return nil
	}
	for _, key := range sortedKeys(instance.Policies) {
		artifacts.CombinedAlertPolicies[key] = mon.SituateCombinedAlertPolicy(key, instance.Policies[key], identity, defaults)
	}
	return nil
}
