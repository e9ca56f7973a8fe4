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

package itst

import (
	"context"
	"os"
	"strings"
	"testing"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
)

// ProjectIDEnvVar names the project where integration tests create and delete resources
const ProjectIDEnvVar = "RUNMON_INTEG_PROJECT_ID"

const projectNameMarker = "runmon-build"

// GetIntegrationTestsProjectID skips the test when no integration project is configured,
// fails it when the project name does not contain 'runmon-build',
// so that integration tests never create or delete resources in a project not dedicated to that purpose
func GetIntegrationTestsProjectID(t *testing.T) (projectID string, creds *google.Credentials) {
	t.Helper()
	projectID = os.Getenv(ProjectIDEnvVar)
	if projectID == "" {
		t.Skipf("%s not set", ProjectIDEnvVar)
	}
	ctx := context.Background()
	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		t.Fatalf("google.FindDefaultCredentials %v", err)
	}
	cloudresourcemanagerService, err := cloudresourcemanager.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		t.Fatalf("cloudresourcemanager.NewService %v", err)
	}
	project, err := cloudresourcemanagerService.Projects.Get(projectID).Context(ctx).Do()
	if err != nil {
		t.Fatalf("cloudresourcemanagerService.Projects.Get %v", err)
	}
	if !strings.Contains(project.Name, projectNameMarker) {
		t.Fatalf("The project used to run runmon integration tests MUST have a name that contains '%s', got '%s'", projectNameMarker, project.Name)
	}
	return project.ProjectId, creds
}
