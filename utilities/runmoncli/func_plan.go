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
	"path/filepath"

	"github.com/BrunoReboul/runmon/services/setindicators"
	"github.com/BrunoReboul/runmon/utilities/ffo"
	"github.com/BrunoReboul/runmon/utilities/solution"
)

func plan(ctx context.Context, s *settings) (err error) {
	instanceDeployments, err := loadInstanceDeployments(ctx, s)
	if err != nil {
		return err
	}
	for _, instanceDeployment := range instanceDeployments {
		if err = planInstance(s, instanceDeployment); err != nil {
			return err
		}
	}
	return nil
}

func planInstance(s *settings, instanceDeployment *setindicators.InstanceDeployment) (err error) {
	core := instanceDeployment.Core
	logger := core.Logger()
	if err = instanceDeployment.Validate(); err != nil {
		return fmt.Errorf("%s %w", core.InstanceName, err)
	}
	if err = instanceDeployment.Situate(); err != nil {
		return fmt.Errorf("%s %w", core.InstanceName, err)
	}
	artifacts := instanceDeployment.Artifacts
	logger.Info().
		Int("log_metrics", len(artifacts.LogMetrics)).
		Int("alert_policies", len(artifacts.AlertPolicies)).
		Int("combined_alert_policies", len(artifacts.CombinedAlertPolicies)).
		Msgf("%s runmoncli planned", core.InstanceName)
	if !core.Commands.Dump {
		return nil
	}
	specsPath := filepath.Join(instanceFolderPath(s, core.InstanceName), solution.SpecificationsFileName)
	specifications, err := jsonDocument(artifacts)
	if err != nil {
		return fmt.Errorf("%s %w", core.InstanceName, err)
	}
	if err = ffo.MarshalYAMLWrite(specsPath, specifications); err != nil {
		return fmt.Errorf("%s runmoncli dump specifications %w", core.InstanceName, err)
	}
	logger.Info().Str("path", specsPath).Msgf("%s runmoncli specifications written", core.InstanceName)
	return nil
}
