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

package deploy

import (
	"context"

	"github.com/BrunoReboul/runmon/utilities/solution"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/logging/v2"
	"google.golang.org/api/monitoring/v3"
	"google.golang.org/api/serviceusage/v1"
)

// Core is the context of one instance deployment
type Core struct {
	SolutionSettings solution.Settings
	Ctx              context.Context `yaml:"-"`
	EnvironmentName  string
	InstanceName     string
	RepositoryPath   string
	RunID            string
	Services         struct {
		LoggingService      *logging.Service      `yaml:"-"`
		MonitoringService   *monitoring.Service   `yaml:"-"`
		ServiceusageService *serviceusage.Service `yaml:"-"`
	} `yaml:"-"`
	Commands struct {
		Check bool
		Dump  bool
	} `yaml:"-"`
}

// Logger returns the global logger enriched with the instance and run identifiers
func (core *Core) Logger() zerolog.Logger {
	return log.With().
		Str("instance", core.InstanceName).
		Str("environment", core.EnvironmentName).
		Str("run_id", core.RunID).
		Logger()
}
