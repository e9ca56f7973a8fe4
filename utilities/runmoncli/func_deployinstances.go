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

package runmoncli

import (
	"context"
	"fmt"

	"github.com/BrunoReboul/runmon/services/setindicators"
)

func deployInstances(ctx context.Context, s *settings) (err error) {
	instanceDeployments, err := loadInstanceDeployments(ctx, s)
	if err != nil {
		return err
	}
	// validate all instances before applying any
	for _, instanceDeployment := range instanceDeployments {
		if err = instanceDeployment.Validate(); err != nil {
			return fmt.Errorf("%s %w", instanceDeployment.Core.InstanceName, err)
		}
	}
	for _, instanceDeployment := range instanceDeployments {
		core := instanceDeployment.Core
		if err = setServices(ctx, core); err != nil {
			return err
		}
		if core.Commands.Dump {
			if err = planInstance(s, instanceDeployment); err != nil {
				return err
			}
		}
		outputs, err := instanceDeployment.Deploy(ctx, setindicators.NewGCPProvisioner(core))
		if err != nil {
			return err
		}
		logger := core.Logger()
		for _, key := range sortedNames(outputs.LogMetrics) {
			logger.Info().Str("key", key).Str("name", outputs.LogMetrics[key]).Msgf("%s runmoncli log metric", core.InstanceName)
		}
		for _, key := range sortedNames(outputs.AlertPolicies) {
			logger.Info().Str("key", key).Str("name", outputs.AlertPolicies[key]).Msgf("%s runmoncli alert policy", core.InstanceName)
		}
		for _, key := range sortedNames(outputs.CombinedAlertPolicies) {
			logger.Info().Str("key", key).Str("name", outputs.CombinedAlertPolicies[key]).Msgf("%s runmoncli combined alert policy", core.InstanceName)
		}
	}
	return nil
}
