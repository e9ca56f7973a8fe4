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

	"google.golang.org/api/logging/v2"
	"google.golang.org/api/monitoring/v3"
)

// Provisioner applies fully formed specifications and returns the name of the resulting resources
type Provisioner interface {
	CreateLogMetric(ctx context.Context, key string, logMetric *logging.LogMetric) (name string, err error)
	CreateAlertPolicy(ctx context.Context, key string, alertPolicy *monitoring.AlertPolicy) (name string, err error)
}
