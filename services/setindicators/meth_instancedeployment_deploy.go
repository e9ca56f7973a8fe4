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
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Deploy validates and situates the instance, then applies the specifications through the provisioner
// Nothing is applied on an invalid configuration. The first provisioner error stops the deployment,
// outputs then hold the resources applied so far
func (instanceDeployment *InstanceDeployment) Deploy(ctx context.Context, provisioner Provisioner) (outputs Outputs, err error) {
	core := instanceDeployment.Core
	if core.RunID == "" {
		core.RunID = uuid.New().String()
	}
	logger := core.Logger()
	outputs = newOutputs(core.RunID)

	if err = instanceDeployment.Validate(); err != nil {
		return outputs, err
	}
	if err = instanceDeployment.Situate(); err != nil {
		return outputs, err
	}
	artifacts := instanceDeployment.Artifacts

	for _, key := range sortedKeys(artifacts.LogMetrics) {
		name, err := provisioner.CreateLogMetric(ctx, key, artifacts.LogMetrics[key])
		if err != nil {
			return outputs, fmt.Errorf("%s setindicators log metric %s %w", core.InstanceName, key, err)
		}
		outputs.LogMetrics[key] = name
		logger.Info().Str("key", key).Str("name", name).Msgf("%s setindicators log metric applied %s", core.InstanceName, key)
	}
	for _, key := range sortedKeys(artifacts.AlertPolicies) {
		name, err := provisioner.CreateAlertPolicy(ctx, key, artifacts.AlertPolicies[key])
		if err != nil {
			return outputs, fmt.Errorf("%s setindicators alert policy %s %w", core.InstanceName, key, err)
		}
		outputs.AlertPolicies[key] = name
		logger.Info().Str("key", key).Str("name", name).Msgf("%s setindicators alert policy applied %s", core.InstanceName, key)
	}
	for _, key := range sortedKeys(artifacts.CombinedAlertPolicies) {
		name, err := provisioner.CreateAlertPolicy(ctx, key, artifacts.CombinedAlertPolicies[key])
		if err != nil {
			return outputs, fmt.Errorf("%s setindicators combined alert policy %s %w", core.InstanceName, key, err)
		}
		outputs.CombinedAlertPolicies[key] = name
		logger.Info().Str("key", key).Str("name", name).Msgf("%s setindicators combined alert policy applied %s", core.InstanceName, key)
	}
	logger.Info().
		Int("log_metrics", len(outputs.LogMetrics)).
		Int("alert_policies", len(outputs.AlertPolicies)).
		Int("combined_alert_policies", len(outputs.CombinedAlertPolicies)).
		Msgf("%s setindicators deployed", core.InstanceName)
	return outputs, nil
}
