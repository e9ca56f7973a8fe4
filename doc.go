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

/*
Package runmon Cloud Run log based indicators and alert policies

## What

Declare, per Cloud Run service or job, the indicators to extract from its logs and how to alert on them.
runmon validates the whole configuration, expands it into Cloud Logging log based metrics and
Cloud Monitoring alert policies, then applies them in the hosting project.

### Use cases

1. Count application errors by type from structured JSON logs, alert when the rate exceeds a threshold
2. Combine several indicators in one alert policy, one condition per indicator
3. Alert on a custom monitoring filter, written once for services, reused for jobs

## How

- `utilities/crun` resolves the monitored resource type and label of a service or a job
- `utilities/glo` builds and applies log based metrics
- `utilities/mon` builds and applies alert policies
- `services/setindicators` validates, expands and deploys one instance
- `utilities/runmoncli` is the command line, `cmd/runmoncli` its entry point
*/
package runmon
