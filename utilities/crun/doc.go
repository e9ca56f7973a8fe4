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
Package crun resolves the identity of the Cloud Run resource being monitored

A target is either a Cloud Run service or a Cloud Run job, never both. Its identity provides the
monitored resource type, the resource label key and the resource label value used in every filter
and every metric name.

 service: resource.type="cloud_run_revision" resource.label.service_name="<name>"
 job:     resource.type="cloud_run_job"      resource.label.job_name="<name>"
*/
package crun
