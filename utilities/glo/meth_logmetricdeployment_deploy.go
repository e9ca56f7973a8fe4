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

package glo

import (
	"fmt"

	"github.com/BrunoReboul/runmon/utilities/erm"
	"google.golang.org/api/logging/v2"
)

// Deploy log based metric, returns the metric resource name
func (logMetricDeployment LogMetricDeployment) Deploy() (name string, err error) {
	core := logMetricDeployment.Core
	logger := core.Logger()
	logMetric := logMetricDeployment.Artifacts.LogMetric
	projectMetricsService := logging.NewProjectsMetricsService(core.Services.LoggingService)
	parent := fmt.Sprintf("projects/%s", core.SolutionSettings.Hosting.ProjectID)
	name = fmt.Sprintf("%s/metrics/%s", parent, logMetric.Name)

	retrievedLogMetric, err := projectMetricsService.Get(name).Context(core.Ctx).Do()
	if err != nil {
		if !erm.IsNotFound(err) {
			return "", fmt.Errorf("projectMetricsService.Get %w", err)
		}
		if core.Commands.Check {
			return "", fmt.Errorf("%s glo log based metric NOT found %s", core.InstanceName, name)
		}
		createdLogMetric, err := projectMetricsService.Create(parent, &logMetric).Context(core.Ctx).Do()
		if err != nil {
			return "", fmt.Errorf("projectMetricsService.Create %w", err)
		}
		logger.Info().Str("name", name).Msgf("%s glo metric created %s", core.InstanceName, createdLogMetric.Name)
		return name, nil
	}

	logger.Debug().Str("name", name).Msgf("%s glo found log metric %s", core.InstanceName, retrievedLogMetric.Name)
	if err = checkLogMetric(&logMetric, retrievedLogMetric); err != nil {
		if core.Commands.Check {
			return "", fmt.Errorf("%s %v", core.InstanceName, err)
		}
		logger.Debug().Str("name", name).Msgf("%s glo metric need to be updated %v", core.InstanceName, err)
		updatedLogMetric, err := projectMetricsService.Update(name, &logMetric).Context(core.Ctx).Do()
		if err != nil {
			return "", fmt.Errorf("projectMetricsService.Update %w", err)
		}
		logger.Info().Str("name", name).Msgf("%s glo metric updated %s", core.InstanceName, updatedLogMetric.Name)
		return name, nil
	}
	logger.Info().Str("name", name).Msgf("%s glo metric is up-to-date %s", core.InstanceName, retrievedLogMetric.Name)
	return name, nil
}
