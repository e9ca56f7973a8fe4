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

package glo

import (
	"fmt"
	"sort"

	"github.com/BrunoReboul/runmon/utilities/crun"
	"github.com/BrunoReboul/runmon/utilities/validater"
)

const maxMetricNameLength = 100

// Validate returns one message per rule violated by an indicator
// The length limit applies to the log based metric name derived from identity, or to the key when the target is unknown
func (indicator IndicatorParameters) Validate(key string, identity crun.Identity) (violations []string) {
	pedigree := fmt.Sprintf("indicators/%s", key)
	if !validater.Matches("isKey", key) {
		violations = append(violations, fmt.Sprintf("%s key should match %s", pedigree, validater.PatternString("isKey")))
	}
	if !validater.Matches("isMetricName", key) {
		violations = append(violations, fmt.Sprintf("%s metric name should match %s", pedigree, validater.PatternString("isMetricName")))
	}
	metricName := key
	if identity.Value != "" {
		metricName = identity.MetricName(key)
	}
	if len(metricName) > maxMetricNameLength {
		violations = append(violations, fmt.Sprintf("%s metric name '%s' should NOT be longer than %d characters, is %d", pedigree, metricName, maxMetricNameLength, len(metricName)))
	}
	violations = append(violations, validater.GetViolations(indicator, pedigree)...)
	violations = append(violations, indicator.validateLabels(pedigree)...)
	if indicator.BucketOptions != nil {
		violations = append(violations, indicator.BucketOptions.validate(pedigree)...)
	}
	if indicator.AlertCondition != nil {
		violations = append(violations, indicator.AlertCondition.Validate(pedigree+"/alert_condition")...)
	}
	return violations
}

// validateLabels labels and label extractors must have the same keys
func (indicator IndicatorParameters) validateLabels(pedigree string) (violations []string) {
	extractorKeys := make([]string, 0, len(indicator.LabelExtractors))
	for extractorKey := range indicator.LabelExtractors {
		extractorKeys = append(extractorKeys, extractorKey)
	}
	sort.Strings(extractorKeys)
	for _, extractorKey := range extractorKeys {
		if !validater.Matches("isLabelKey", extractorKey) {
			violations = append(violations, fmt.Sprintf("%s label_extractors key '%s' should match %s", pedigree, extractorKey, validater.PatternString("isLabelKey")))
		}
	}

	if len(indicator.Labels) != len(indicator.LabelExtractors) {
		violations = append(violations, fmt.Sprintf("%s labels and label_extractors should have the same count, got %d labels and %d label_extractors",
			pedigree,
			len(indicator.Labels),
			len(indicator.LabelExtractors)))
	}
	labelKeys := make(map[string]bool)
	for i, label := range indicator.Labels {
		if labelKeys[label.Key] {
			violations = append(violations, fmt.Sprintf("%s/labels[%d] duplicate key '%s'", pedigree, i, label.Key))
		}
		labelKeys[label.Key] = true
		if _, ok := indicator.LabelExtractors[label.Key]; !ok {
			violations = append(violations, fmt.Sprintf("%s/labels[%d] key '%s' has no label extractor", pedigree, i, label.Key))
		}
	}
	for _, extractorKey := range extractorKeys {
		if !labelKeys[extractorKey] {
			violations = append(violations, fmt.Sprintf("%s label_extractors key '%s' has no label", pedigree, extractorKey))
		}
	}
	return violations
}

func (bucketOptions BucketOptionsParameters) validate(pedigree string) (violations []string) {
	count := 0
	if bucketOptions.ExplicitBuckets != nil {
		count++
	}
	if bucketOptions.ExponentialBuckets != nil {
		count++
	}
	if bucketOptions.LinearBuckets != nil {
		count++
	}
	if count != 1 {
		violations = append(violations, fmt.Sprintf("%s/bucket_options exactly one of explicit_buckets, exponential_buckets or linear_buckets must be set, got %d", pedigree, count))
	}
	return violations
}
