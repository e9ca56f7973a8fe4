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

package crun

import "fmt"

// NewTarget builds the target from the two exclusive settings, exactly one must be set
func NewTarget(serviceName, jobName string) (Target, error) {
	switch {
	case serviceName != "" && jobName != "":
		return nil, fmt.Errorf("crun exactly one of service_name or job_name must be set, got both '%s' and '%s'", serviceName, jobName)
	case serviceName != "":
		return Service(serviceName), nil
	case jobName != "":
		return Job(jobName), nil
	}
	return nil, fmt.Errorf("crun exactly one of service_name or job_name must be set, got none")
}
