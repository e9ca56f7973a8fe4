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

const (
	// RevisionResourceType monitored resource type of Cloud Run services
	RevisionResourceType = "cloud_run_revision"
	// JobResourceType monitored resource type of Cloud Run jobs
	JobResourceType = "cloud_run_job"
	// ServiceLabelKey resource label holding the service name
	ServiceLabelKey = "service_name"
	// JobLabelKey resource label holding the job name
	JobLabelKey = "job_name"
)

// Target is the monitored Cloud Run resource, implemented by Service and Job only
type Target interface {
	identity() Identity
}

// Service a Cloud Run service name
type Service string

// Job a Cloud Run job name
type Job string

func (service Service) identity() Identity {
	return Identity{
		ResourceType: RevisionResourceType,
		LabelKey:     ServiceLabelKey,
		Value:        string(service),
	}
}

func (job Job) identity() Identity {
	return Identity{
		ResourceType: JobResourceType,
		LabelKey:     JobLabelKey,
		Value:        string(job),
	}
}
