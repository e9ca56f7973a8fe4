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

package gsu

import (
	"fmt"
	"strings"
	"time"

	"github.com/BrunoReboul/runmon/utilities/str"
	"google.golang.org/api/serviceusage/v1"
)

// Deploy activates APIs
func (apiDeployment *APIDeployment) Deploy() (err error) {
	core := apiDeployment.Core
	logger := core.Logger()
	servicesService := core.Services.ServiceusageService.Services
	parent := fmt.Sprintf("projects/%s", core.SolutionSettings.Hosting.ProjectID)

	activeAPIs := make([]string, 0)
	err = servicesService.List(parent).Filter("state:ENABLED").PageSize(200).Pages(core.Ctx, func(response *serviceusage.ListServicesResponse) error {
		activeAPIs = append(activeAPIs, getAPINames(response)...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("servicesService.List %w", err)
	}

	for _, apiName := range apiDeployment.Settings.APIList {
		if str.Find(activeAPIs, apiName) {
			logger.Info().Str("api", apiName).Msgf("%s gsu API already active %s", core.InstanceName, apiName)
			continue
		}
		if core.Commands.Check {
			return fmt.Errorf("%s gsu API NOT active %s", core.InstanceName, apiName)
		}
		if err = apiDeployment.activateAPI(servicesService, apiName); err != nil {
			return err
		}
	}
	return nil
}

// getAPINames the API name is the last segment of the service resource name
func getAPINames(response *serviceusage.ListServicesResponse) (apiNames []string) {
	for _, service := range response.Services {
		parts := strings.Split(service.Name, "/")
		apiNames = append(apiNames, parts[len(parts)-1])
	}
	return apiNames
}

func (apiDeployment *APIDeployment) activateAPI(servicesService *serviceusage.ServicesService, apiName string) (err error) {
	core := apiDeployment.Core
	logger := core.Logger()
	name := fmt.Sprintf("projects/%s/services/%s", core.SolutionSettings.Hosting.ProjectID, apiName)
	var request serviceusage.EnableServiceRequest
	operation, err := servicesService.Enable(name, &request).Context(core.Ctx).Do()
	if err != nil {
		return fmt.Errorf("servicesService.Enable %w", err)
	}
	logger.Info().Str("api", apiName).Str("operation", operation.Name).Msgf("%s gsu API %s activation started", core.InstanceName, apiName)

	// Operation GET returns 404, poll the service state instead
	pollInterval := apiDeployment.Settings.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-core.Ctx.Done():
			return fmt.Errorf("%s gsu API %s activation %w", core.InstanceName, apiName, core.Ctx.Err())
		case <-ticker.C:
		}
		service, err := servicesService.Get(name).Context(core.Ctx).Do()
		if err != nil {
			return fmt.Errorf("servicesService.Get %w", err)
		}
		if service.State == "ENABLED" {
			break
		}
	}
	logger.Info().Str("api", apiName).Msgf("%s gsu API %s is active", core.InstanceName, apiName)
	return nil
}
