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
	"time"

	"github.com/BrunoReboul/runmon/utilities/deploy"
)

const defaultPollInterval = 5 * time.Second

// APIDeployment struct
type APIDeployment struct {
	Core     *deploy.Core
	Settings struct {
		APIList      []string
		PollInterval time.Duration
	}
}

// NewAPIDeployment create deployment structure
func NewAPIDeployment() *APIDeployment {
	apiDeployment := &APIDeployment{}
	apiDeployment.Settings.PollInterval = defaultPollInterval
	return apiDeployment
}
