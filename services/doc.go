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
Package services structure

All service packages share a consistent structure

## One type and three methods

### `InstanceDeployment` type

- `Settings` what the user declares for one instance, read from `instances/<instance>/instance.yaml`
- `Core` solution settings, environment, API clients and commands, shared by the deployments of one run
- `Artifacts` what the service builds from the settings, ready to be applied

### `Validate` method

- Checks the whole configuration, reports every violation at once in an `erm.ConfigurationError`
- Nothing is built nor applied on an invalid configuration

### `Situate` method

- Builds the artifacts, taking in account the situation: solution settings, environment, monitored resource
- Pure, the same settings always give the same artifacts

### `Deploy` method

- Validates, situates, then applies the artifacts in a fixed order
- Stops on the first error, no retry nor rollback

*/
package services
