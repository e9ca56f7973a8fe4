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
	"github.com/BrunoReboul/runmon/utilities/deploy"
	"github.com/BrunoReboul/runmon/utilities/ffo"
	"github.com/BrunoReboul/runmon/utilities/solution"
	"github.com/google/uuid"
)

func loadSolutionSettings(s *settings) (solutionSettings solution.Settings, err error) {
	err = ffo.ReadUnmarshalYAML(filepath.Join(s.RepositoryPath, solution.SettingsFileName), &solutionSettings)
	if err != nil {
		return solutionSettings, fmt.Errorf("runmoncli load solution settings %w", err)
	}
	solutionSettings.Situate(s.EnvironmentName)
	return solutionSettings, nil
}

// getInstanceNames all instances in name order, or the one selected with --instance
func getInstanceNames(s *settings) (instanceNames []string, err error) {
	if s.InstanceName != "" {
		return []string{s.InstanceName}, nil
	}
	instanceNames, err = ffo.GetChild(s.RepositoryPath, solution.InstancesFolderName)
	if err != nil {
		return instanceNames, fmt.Errorf("runmoncli list instances %w", err)
	}
	if len(instanceNames) == 0 {
		return instanceNames, fmt.Errorf("runmoncli no instance found in %s", filepath.Join(s.RepositoryPath, solution.InstancesFolderName))
	}
	return instanceNames, nil
}

func instanceFolderPath(s *settings, instanceName string) string {
	return filepath.Join(s.RepositoryPath, solution.InstancesFolderName, instanceName)
}

// loadInstanceDeployments one deployment per instance sharing the solution settings and the run ID
func loadInstanceDeployments(ctx context.Context, s *settings) (instanceDeployments []*setindicators.InstanceDeployment, err error) {
	solutionSettings, err := loadSolutionSettings(s)
	if err != nil {
		return instanceDeployments, err
	}
	instanceNames, err := getInstanceNames(s)
	if err != nil {
		return instanceDeployments, err
	}
	runID := uuid.New().String()
	for _, instanceName := range instanceNames {
		instanceDeployment := setindicators.NewInstanceDeployment()
		instanceDeployment.Core = &deploy.Core{
			SolutionSettings: solutionSettings,
			Ctx:              ctx,
			EnvironmentName:  s.EnvironmentName,
			InstanceName:     instanceName,
			RepositoryPath:   s.RepositoryPath,
			RunID:            runID,
		}
		instanceDeployment.Core.Commands.Check = s.Commands.Check
		instanceDeployment.Core.Commands.Dump = s.Commands.Dump
		err = ffo.ReadUnmarshalYAML(filepath.Join(instanceFolderPath(s, instanceName), solution.InstanceSettingsFileName),
			&instanceDeployment.Settings.Instance)
		if err != nil {
			return instanceDeployments, fmt.Errorf("runmoncli load instance %s %w", instanceName, err)
		}
		instanceDeployments = append(instanceDeployments, instanceDeployment)
	}
	return instanceDeployments, nil
}
