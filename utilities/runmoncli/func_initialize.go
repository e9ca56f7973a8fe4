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

	"github.com/BrunoReboul/runmon/utilities/deploy"
	"github.com/BrunoReboul/runmon/utilities/gsu"
	"github.com/google/uuid"
)

// initialize enables the common APIs on the hosting project of the environment
func initialize(ctx context.Context, s *settings) (err error) {
	solutionSettings, err := loadSolutionSettings(s)
	if err != nil {
		return err
	}
	if violations := solutionSettings.Validate(); len(violations) > 0 {
		return fmt.Errorf("runmoncli invalid solution settings %v", violations)
	}
	core := &deploy.Core{
		SolutionSettings: solutionSettings,
		Ctx:              ctx,
		EnvironmentName:  s.EnvironmentName,
		InstanceName:     "solution",
		RepositoryPath:   s.RepositoryPath,
		RunID:            uuid.New().String(),
	}
	core.Commands.Check = s.Commands.Check
	if err = setServices(ctx, core); err != nil {
		return err
	}
	apiDeployment := gsu.NewAPIDeployment()
	apiDeployment.Core = core
	apiDeployment.Settings.APIList = deploy.GetCommonAPIlist()
	return apiDeployment.Deploy()
}
