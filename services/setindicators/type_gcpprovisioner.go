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

package setindicators

import (
	"context"

	"github.com/BrunoReboul/runmon/utilities/deploy"
	"github.com/BrunoReboul/runmon/utilities/glo"
	"github.com/BrunoReboul/runmon/utilities/mon"
	"google.golang.org/api/logging/v2"
	"google.golang.org/api/monitoring/v3"
)

// GCPProvisioner applies specifications with the Cloud Logging and Cloud Monitoring APIs
// An existing resource with a different configuration is updated, with the check command it is an error instead
type GCPProvisioner struct {
	core *deploy.Core
}

// NewGCPProvisioner the core carries the API services, the hosting project and the commands
func NewGCPProvisioner(core *deploy.Core) *GCPProvisioner {
	return &GCPProvisioner{core: core}
}

// CreateLogMetric creates or updates a log based metric
func (gcpProvisioner *GCPProvisioner) CreateLogMetric(ctx context.Context, key string, logMetric *logging.LogMetric) (name string, err error) {
	logMetricDeployment := glo.NewLogMetricDeployment()
	logMetricDeployment.Core = gcpProvisioner.coreWithContext(ctx)
	logMetricDeployment.Artifacts.LogMetric = *logMetric
	return logMetricDeployment.Deploy()
}

// CreateAlertPolicy creates or updates an alert policy identified by its display name
func (gcpProvisioner *GCPProvisioner) CreateAlertPolicy(ctx context.Context, key string, alertPolicy *monitoring.AlertPolicy) (name string, err error) {
	alertPolicyDeployment := mon.NewAlertPolicyDeployment()
	alertPolicyDeployment.Core = gcpProvisioner.coreWithContext(ctx)
	alertPolicyDeployment.Artifacts.AlertPolicy = *alertPolicy
	return alertPolicyDeployment.Deploy()
}

func (gcpProvisioner *GCPProvisioner) coreWithContext(ctx context.Context) *deploy.Core {
	core := *gcpProvisioner.core
	core.Ctx = ctx
	return &core
}
