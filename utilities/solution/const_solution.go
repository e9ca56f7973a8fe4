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

package solution

const (
	// SettingsFileName solution settings file, at the repository root
	SettingsFileName = "solution.yaml"
	// InstancesFolderName folder holding one subfolder per monitored Cloud Run target
	InstancesFolderName = "instances"
	// InstanceSettingsFileName instance settings file, in each instance folder
	InstanceSettingsFileName = "instance.yaml"
	// SpecificationsFileName resolved specifications written by plan
	SpecificationsFileName = "specs.yaml"
	// DevelopmentEnvironmentName default environment
	DevelopmentEnvironmentName = "dev"
)
