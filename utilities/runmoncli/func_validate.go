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

	"github.com/rs/zerolog/log"
)

// validate all instances before reporting, so one run shows every violation
func validate(ctx context.Context, s *settings) (err error) {
	instanceDeployments, err := loadInstanceDeployments(ctx, s)
	if err != nil {
		return err
	}
	invalidCount := 0
	for _, instanceDeployment := range instanceDeployments {
		logger := instanceDeployment.Core.Logger()
		if err := instanceDeployment.Validate(); err != nil {
			invalidCount++
			logger.Error().Err(err).Msgf("%s runmoncli invalid instance", instanceDeployment.Core.InstanceName)
			continue
		}
		logger.Info().Msgf("%s runmoncli valid instance", instanceDeployment.Core.InstanceName)
	}
	if invalidCount > 0 {
		return fmt.Errorf("runmoncli %d invalid instance(s) out of %d", invalidCount, len(instanceDeployments))
	}
	log.Info().Int("instances", len(instanceDeployments)).Msg("runmoncli all instances are valid")
	return nil
}
