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
Package setindicators turns the indicators and combined policies of one Cloud Run service or job into log based metrics and alert policies

- Validate checks the whole instance configuration and reports every violation at once
- Situate expands the configuration into log based metric and alert policy specifications
- Deploy validates, situates, then hands the specifications to a Provisioner:
  log based metrics first, then indicator alert policies, then combined alert policies, each in key order

Alert policies are only built when the instance enables advanced log based JSON indicators.
*/
package setindicators
