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
Package runmoncli is the runmon command line

A runmon repository holds the solution settings at its root and one folder per monitored Cloud Run service or job:

	solution.yaml
	instances/<instance>/instance.yaml

Commands

- validate: validate every instance, report all violations at once
- plan: validate and expand every instance, write the specifications to instances/<instance>/specs.yaml with --dump
- deploy: validate, expand and apply every instance in the hosting project, --check only reports differences
- init: enable the APIs runmon needs in the hosting project
*/
package runmoncli
