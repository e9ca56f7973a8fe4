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
Package mon Cloud Monitoring alert policies

Builds alert policy specifications from indicator alert conditions and from combined policies,
then deploys them with the monitoring v3 API.

Condition settings are resolved by layers, merged left to right, each field on its own:

 hardcoded defaults < solution defaults (group by) < user settings

Runbook documentation follows the same rule: condition runbook URL < solution default runbook URL < none.
*/
package mon
