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
	"golang.org/x/oauth2/google"
	"google.golang.org/api/logging/v2"
	"google.golang.org/api/monitoring/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/serviceusage/v1"
)

// setServices builds the API clients from the application default credentials
func setServices(ctx context.Context, core *deploy.Core) (err error) {
	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		return fmt.Errorf("google.FindDefaultCredentials %w", err)
	}
	core.Services.LoggingService, err = logging.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return fmt.Errorf("logging.NewService %w", err)
	}
	core.Services.MonitoringService, err = monitoring.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return fmt.Errorf("monitoring.NewService %w", err)
	}
	core.Services.ServiceusageService, err = serviceusage.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return fmt.Errorf("serviceusage.NewService %w", err)
	}
	return nil
}
