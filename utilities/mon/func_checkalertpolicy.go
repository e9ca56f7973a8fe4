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
	"reflect"

	"google.golang.org/api/monitoring/v3"
)

func checkAlertPolicy(alertPolicy, retrievedAlertPolicy *monitoring.AlertPolicy) (err error) {
	var s string
	if alertPolicy.DisplayName != retrievedAlertPolicy.DisplayName {
		s = fmt.Sprintf("%sdisplayName\nwant %s\nhave %s\n", s,
			alertPolicy.DisplayName,
			retrievedAlertPolicy.DisplayName)
	}
	if alertPolicy.Combiner != retrievedAlertPolicy.Combiner {
		s = fmt.Sprintf("%scombiner\nwant %s\nhave %s\n", s,
			alertPolicy.Combiner,
			retrievedAlertPolicy.Combiner)
	}
	if alertPolicy.Severity != retrievedAlertPolicy.Severity {
		s = fmt.Sprintf("%sseverity\nwant %s\nhave %s\n", s,
			alertPolicy.Severity,
			retrievedAlertPolicy.Severity)
	}
	if documentationContent(alertPolicy) != documentationContent(retrievedAlertPolicy) {
		s = fmt.Sprintf("%sdocumentation\nwant %s\nhave %s\n", s,
			documentationContent(alertPolicy),
			documentationContent(retrievedAlertPolicy))
	}
	if alertPolicy.AlertStrategy != nil {
		if retrievedAlertPolicy.AlertStrategy != nil {
			if alertPolicy.AlertStrategy.AutoClose != retrievedAlertPolicy.AlertStrategy.AutoClose {
				s = fmt.Sprintf("%salertStrategy.autoClose\nwant %s\nhave %s\n", s,
					alertPolicy.AlertStrategy.AutoClose,
					retrievedAlertPolicy.AlertStrategy.AutoClose)
			}
			if renotifyIntervalOf(alertPolicy) != renotifyIntervalOf(retrievedAlertPolicy) {
				s = fmt.Sprintf("%salertStrategy.renotifyInterval\nwant %s\nhave %s\n", s,
					renotifyIntervalOf(alertPolicy),
					renotifyIntervalOf(retrievedAlertPolicy))
			}
		} else {
			s = fmt.Sprintf("%snot found retrievedAlertPolicy.AlertStrategy\n", s)
		}
	}
	if len(alertPolicy.Conditions) != len(retrievedAlertPolicy.Conditions) {
		s = fmt.Sprintf("%sconditions count\nwant %d\nhave %d\n", s,
			len(alertPolicy.Conditions),
			len(retrievedAlertPolicy.Conditions))
	} else {
		for i := range alertPolicy.Conditions {
			s = s + checkCondition(i, alertPolicy.Conditions[i], retrievedAlertPolicy.Conditions[i])
		}
	}
	if len(s) > 0 {
		return fmt.Errorf("mon invalid alert policy configuration:\n%s", s)
	}
	return nil
}

func checkCondition(i int, condition, retrievedCondition *monitoring.Condition) (s string) {
	if condition.DisplayName != retrievedCondition.DisplayName {
		s = fmt.Sprintf("%sconditions[%d].displayName\nwant %s\nhave %s\n", s, i,
			condition.DisplayName,
			retrievedCondition.DisplayName)
	}
	threshold := condition.ConditionThreshold
	retrievedThreshold := retrievedCondition.ConditionThreshold
	if threshold == nil {
		return s
	}
	if retrievedThreshold == nil {
		return fmt.Sprintf("%snot found retrievedCondition[%d].ConditionThreshold\n", s, i)
	}
	if threshold.Filter != retrievedThreshold.Filter {
		s = fmt.Sprintf("%sconditions[%d].filter\nwant %s\nhave %s\n", s, i,
			threshold.Filter,
			retrievedThreshold.Filter)
	}
	if threshold.Comparison != retrievedThreshold.Comparison {
		s = fmt.Sprintf("%sconditions[%d].comparison\nwant %s\nhave %s\n", s, i,
			threshold.Comparison,
			retrievedThreshold.Comparison)
	}
	if protobufDuration(threshold.Duration) != protobufDuration(retrievedThreshold.Duration) {
		s = fmt.Sprintf("%sconditions[%d].duration\nwant %s\nhave %s\n", s, i,
			threshold.Duration,
			retrievedThreshold.Duration)
	}
	if threshold.ThresholdValue != retrievedThreshold.ThresholdValue {
		s = fmt.Sprintf("%sconditions[%d].thresholdValue\nwant %v\nhave %v\n", s, i,
			threshold.ThresholdValue,
			retrievedThreshold.ThresholdValue)
	}
	if triggerCountOf(threshold) != triggerCountOf(retrievedThreshold) {
		s = fmt.Sprintf("%sconditions[%d].trigger.count\nwant %d\nhave %d\n", s, i,
			triggerCountOf(threshold),
			triggerCountOf(retrievedThreshold))
	}
	if len(threshold.Aggregations) != len(retrievedThreshold.Aggregations) {
		return fmt.Sprintf("%sconditions[%d].aggregations count\nwant %d\nhave %d\n", s, i,
			len(threshold.Aggregations),
			len(retrievedThreshold.Aggregations))
	}
	for j, aggregation := range threshold.Aggregations {
		retrievedAggregation := retrievedThreshold.Aggregations[j]
		if aggregation.AlignmentPeriod != retrievedAggregation.AlignmentPeriod ||
			aggregation.PerSeriesAligner != retrievedAggregation.PerSeriesAligner ||
			aggregation.CrossSeriesReducer != retrievedAggregation.CrossSeriesReducer ||
			!reflect.DeepEqual(aggregation.GroupByFields, retrievedAggregation.GroupByFields) {
			s = fmt.Sprintf("%sconditions[%d].aggregations[%d]\nwant %s %s %s %v\nhave %s %s %s %v\n", s, i, j,
				aggregation.AlignmentPeriod, aggregation.PerSeriesAligner, aggregation.CrossSeriesReducer, aggregation.GroupByFields,
				retrievedAggregation.AlignmentPeriod, retrievedAggregation.PerSeriesAligner, retrievedAggregation.CrossSeriesReducer, retrievedAggregation.GroupByFields)
		}
	}
	return s
}

func documentationContent(alertPolicy *monitoring.AlertPolicy) string {
	if alertPolicy.Documentation == nil {
		return ""
	}
	return alertPolicy.Documentation.Content
}

func renotifyIntervalOf(alertPolicy *monitoring.AlertPolicy) string {
	if alertPolicy.AlertStrategy == nil || len(alertPolicy.AlertStrategy.NotificationChannelStrategy) == 0 {
		return ""
	}
	return alertPolicy.AlertStrategy.NotificationChannelStrategy[0].RenotifyInterval
}

func triggerCountOf(threshold *monitoring.MetricThreshold) int64 {
	if threshold.Trigger == nil {
		return 0
	}
	return threshold.Trigger.Count
}
