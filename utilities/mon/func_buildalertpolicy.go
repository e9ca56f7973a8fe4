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

package mon

import (
	"fmt"

	"google.golang.org/api/monitoring/v3"
)

func buildCondition(displayName string, filter string, settings ResolvedConditionSettings) *monitoring.Condition {
	return &monitoring.Condition{
		DisplayName: displayName,
		ConditionThreshold: &monitoring.MetricThreshold{
			Filter:         filter,
			Comparison:     comparison,
			Duration:       protobufDuration(settings.Duration),
			ThresholdValue: settings.Threshold,
			Trigger: &monitoring.Trigger{
				Count: triggerCount,
			},
			Aggregations: []*monitoring.Aggregation{
				{
					AlignmentPeriod:    alignmentPeriod,
					PerSeriesAligner:   settings.Aligner,
					CrossSeriesReducer: settings.Reducer,
					GroupByFields:      append([]string(nil), settings.GroupByFields...),
				},
			},
			// a zero threshold is meaningful
			ForceSendFields: []string{"ThresholdValue"},
		},
	}
}

func buildAlertPolicy(displayName string, severity string, conditions []*monitoring.Condition, runbookURL string) *monitoring.AlertPolicy {
	if severity == "" {
		severity = DefaultSeverity
	}
	return &monitoring.AlertPolicy{
		DisplayName: displayName,
		Combiner:    combiner,
		Severity:    severity,
		Conditions:  conditions,
		AlertStrategy: &monitoring.AlertStrategy{
			AutoClose: autoClose,
			NotificationChannelStrategy: []*monitoring.NotificationChannelStrategy{
				{
					RenotifyInterval: renotifyInterval,
				},
			},
		},
		Documentation: getDocumentation(runbookURL),
	}
}

// getDocumentation nil when there is no runbook
func getDocumentation(runbookURL string) *monitoring.Documentation {
	if runbookURL == "" {
		return nil
	}
	return &monitoring.Documentation{
		Content:  fmt.Sprintf("Runbook: %s", runbookURL),
		MimeType: documentationMime,
	}
}

func conditionDisplayName(key string) string {
	return fmt.Sprintf("%s monitoring", key)
}
