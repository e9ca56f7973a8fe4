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
	"errors"
	"fmt"

	"google.golang.org/api/monitoring/v3"
)

var errFoundAlertPolicy = errors.New("found_alert_policy")

// Deploy alert policy, identified by its display name, returns the policy resource name
func (alertPolicyDeployment AlertPolicyDeployment) Deploy() (name string, err error) {
	core := alertPolicyDeployment.Core
	logger := core.Logger()
	alertPolicy := alertPolicyDeployment.Artifacts.AlertPolicy
	alertPoliciesService := monitoring.NewProjectsAlertPoliciesService(core.Services.MonitoringService)
	parent := fmt.Sprintf("projects/%s", core.SolutionSettings.Hosting.ProjectID)

	var retrievedAlertPolicy *monitoring.AlertPolicy
	err = alertPoliciesService.List(parent).
		Filter(fmt.Sprintf("display_name=%q", alertPolicy.DisplayName)).
		Pages(core.Ctx, func(response *monitoring.ListAlertPoliciesResponse) error {
			for _, policy := range response.AlertPolicies {
				if policy.DisplayName == alertPolicy.DisplayName {
					retrievedAlertPolicy = policy
					return errFoundAlertPolicy
				}
			}
			return nil
		})
	if err != nil && !errors.Is(err, errFoundAlertPolicy) {
		return "", fmt.Errorf("alertPoliciesService.List %w", err)
	}

	if retrievedAlertPolicy == nil {
		if core.Commands.Check {
			return "", fmt.Errorf("%s mon alert policy NOT found '%s'", core.InstanceName, alertPolicy.DisplayName)
		}
		createdAlertPolicy, err := alertPoliciesService.Create(parent, &alertPolicy).Context(core.Ctx).Do()
		if err != nil {
			return "", fmt.Errorf("alertPoliciesService.Create %w", err)
		}
		logger.Info().Str("name", createdAlertPolicy.Name).Msgf("%s mon alert policy created '%s'", core.InstanceName, createdAlertPolicy.DisplayName)
		return createdAlertPolicy.Name, nil
	}

	logger.Debug().Str("name", retrievedAlertPolicy.Name).Msgf("%s mon found alert policy '%s'", core.InstanceName, retrievedAlertPolicy.DisplayName)
	if err = checkAlertPolicy(&alertPolicy, retrievedAlertPolicy); err != nil {
		if core.Commands.Check {
			return "", fmt.Errorf("%s %v", core.InstanceName, err)
		}
		alertPolicy.Name = retrievedAlertPolicy.Name
		updatedAlertPolicy, err := alertPoliciesService.Patch(retrievedAlertPolicy.Name, &alertPolicy).Context(core.Ctx).Do()
		if err != nil {
			return "", fmt.Errorf("alertPoliciesService.Patch %w", err)
		}
		logger.Info().Str("name", updatedAlertPolicy.Name).Msgf("%s mon alert policy updated '%s'", core.InstanceName, updatedAlertPolicy.DisplayName)
		return updatedAlertPolicy.Name, nil
	}
	logger.Info().Str("name", retrievedAlertPolicy.Name).Msgf("%s mon alert policy is up-to-date '%s'", core.InstanceName, retrievedAlertPolicy.DisplayName)
	return retrievedAlertPolicy.Name, nil
}
