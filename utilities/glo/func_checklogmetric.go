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
	"reflect"

	"github.com/BrunoReboul/runmon/utilities/str"
	"google.golang.org/api/logging/v2"
)

func checkLogMetric(logMetric, retrievedLogMetric *logging.LogMetric) (err error) {
	var s string
	if logMetric.Description != retrievedLogMetric.Description {
		s = fmt.Sprintf("%sdescription\nwant %s\nhave %s\n", s,
			logMetric.Description,
			retrievedLogMetric.Description)
	}
	if logMetric.Filter != retrievedLogMetric.Filter {
		s = fmt.Sprintf("%sfilter\nwant %s\nhave %s\n", s,
			logMetric.Filter,
			retrievedLogMetric.Filter)
	}
	if logMetric.ValueExtractor != retrievedLogMetric.ValueExtractor {
		s = fmt.Sprintf("%svalueExtractor\nwant %s\nhave %s\n", s,
			logMetric.ValueExtractor,
			retrievedLogMetric.ValueExtractor)
	}
	if len(logMetric.LabelExtractors) > 0 || len(retrievedLogMetric.LabelExtractors) > 0 {
		if !reflect.DeepEqual(logMetric.LabelExtractors, retrievedLogMetric.LabelExtractors) {
			s = fmt.Sprintf("%slabelExtractors\nwant %s\nhave %s\n", s,
				str.FlattenMapStringString(logMetric.LabelExtractors),
				str.FlattenMapStringString(retrievedLogMetric.LabelExtractors))
		}
	}
	if logMetric.BucketOptions != nil {
		if retrievedLogMetric.BucketOptions != nil {
			s = s + checkBucketOptions(logMetric.BucketOptions, retrievedLogMetric.BucketOptions)
		} else {
			s = fmt.Sprintf("%snot found retrievedLogMetric.BucketOptions\n", s)
		}
	}
	if logMetric.MetricDescriptor != nil {
		if retrievedLogMetric.MetricDescriptor != nil {
			s = s + checkMetricDescriptor(logMetric.MetricDescriptor, retrievedLogMetric.MetricDescriptor)
		} else {
			s = fmt.Sprintf("%snot found retrievedLogMetric.MetricDescriptor\n", s)
		}
	}
	if len(s) > 0 {
		return fmt.Errorf("glo invalid log based metric configuration:\n%s", s)
	}
	return nil
}

func checkBucketOptions(bucketOptions, retrievedBucketOptions *logging.BucketOptions) (s string) {
	switch {
	case bucketOptions.ExplicitBuckets != nil:
		if retrievedBucketOptions.ExplicitBuckets == nil {
			return "not found retrievedLogMetric.BucketOptions.ExplicitBuckets\n"
		}
		if !reflect.DeepEqual(bucketOptions.ExplicitBuckets.Bounds, retrievedBucketOptions.ExplicitBuckets.Bounds) {
			s = fmt.Sprintf("%sexplicitBuckets.bounds\nwant %v\nhave %v\n", s,
				bucketOptions.ExplicitBuckets.Bounds,
				retrievedBucketOptions.ExplicitBuckets.Bounds)
		}
	case bucketOptions.ExponentialBuckets != nil:
		want := bucketOptions.ExponentialBuckets
		have := retrievedBucketOptions.ExponentialBuckets
		if have == nil {
			return "not found retrievedLogMetric.BucketOptions.ExponentialBuckets\n"
		}
		if want.GrowthFactor != have.GrowthFactor {
			s = fmt.Sprintf("%sexponentialBuckets.growthFactor\nwant %v\nhave %v\n", s, want.GrowthFactor, have.GrowthFactor)
		}
		if want.NumFiniteBuckets != have.NumFiniteBuckets {
			s = fmt.Sprintf("%sexponentialBuckets.numFiniteBuckets\nwant %v\nhave %v\n", s, want.NumFiniteBuckets, have.NumFiniteBuckets)
		}
		if want.Scale != have.Scale {
			s = fmt.Sprintf("%sexponentialBuckets.scale\nwant %v\nhave %v\n", s, want.Scale, have.Scale)
		}
	case bucketOptions.LinearBuckets != nil:
		want := bucketOptions.LinearBuckets
		have := retrievedBucketOptions.LinearBuckets
		if have == nil {
			return "not found retrievedLogMetric.BucketOptions.LinearBuckets\n"
		}
		if want.NumFiniteBuckets != have.NumFiniteBuckets {
			s = fmt.Sprintf("%slinearBuckets.numFiniteBuckets\nwant %v\nhave %v\n", s, want.NumFiniteBuckets, have.NumFiniteBuckets)
		}
		if want.Offset != have.Offset {
			s = fmt.Sprintf("%slinearBuckets.offset\nwant %v\nhave %v\n", s, want.Offset, have.Offset)
		}
		if want.Width != have.Width {
			s = fmt.Sprintf("%slinearBuckets.width\nwant %v\nhave %v\n", s, want.Width, have.Width)
		}
	}
	return s
}

// checkMetricDescriptor the descriptor name is server assigned and not compared
func checkMetricDescriptor(metricDescriptor, retrievedMetricDescriptor *logging.MetricDescriptor) (s string) {
	if metricDescriptor.Type != retrievedMetricDescriptor.Type {
		s = fmt.Sprintf("%smetricDescriptor.type\nwant %s\nhave %s\n", s,
			metricDescriptor.Type,
			retrievedMetricDescriptor.Type)
	}
	if metricDescriptor.Description != retrievedMetricDescriptor.Description {
		s = fmt.Sprintf("%smetricDescriptor.description\nwant %s\nhave %s\n", s,
			metricDescriptor.Description,
			retrievedMetricDescriptor.Description)
	}
	if metricDescriptor.LaunchStage != retrievedMetricDescriptor.LaunchStage {
		s = fmt.Sprintf("%smetricDescriptor.launchStage\nwant %s\nhave %s\n", s,
			metricDescriptor.LaunchStage,
			retrievedMetricDescriptor.LaunchStage)
	}
	if metricDescriptor.MetricKind != retrievedMetricDescriptor.MetricKind {
		s = fmt.Sprintf("%smetricDescriptor.metricKind\nwant %s\nhave %s\n", s,
			metricDescriptor.MetricKind,
			retrievedMetricDescriptor.MetricKind)
	}
	if metricDescriptor.Unit != retrievedMetricDescriptor.Unit {
		s = fmt.Sprintf("%smetricDescriptor.unit\nwant %s\nhave %s\n", s,
			metricDescriptor.Unit,
			retrievedMetricDescriptor.Unit)
	}
	if metricDescriptor.ValueType != retrievedMetricDescriptor.ValueType {
		s = fmt.Sprintf("%smetricDescriptor.valueType\nwant %s\nhave %s\n", s,
			metricDescriptor.ValueType,
			retrievedMetricDescriptor.ValueType)
	}
	if metricDescriptor.Labels != nil {
		if retrievedMetricDescriptor.Labels == nil {
			return fmt.Sprintf("%snot found retrievedLogMetric.MetricDescriptor.Labels\n", s)
		}
		retrievedLabels := make(map[string]*logging.LabelDescriptor, len(retrievedMetricDescriptor.Labels))
		for _, retrievedLabel := range retrievedMetricDescriptor.Labels {
			retrievedLabels[retrievedLabel.Key] = retrievedLabel
		}
		for _, label := range metricDescriptor.Labels {
			retrievedLabel, ok := retrievedLabels[label.Key]
			if !ok {
				s = fmt.Sprintf("%snot found metricDescriptor.labels key %s\n", s, label.Key)
				continue
			}
			if label.Description != retrievedLabel.Description {
				s = fmt.Sprintf("%smetricDescriptor.labels[%s].description\nwant %s\nhave %s\n", s, label.Key,
					label.Description,
					retrievedLabel.Description)
			}
			if labelValueType(label) != labelValueType(retrievedLabel) {
				s = fmt.Sprintf("%smetricDescriptor.labels[%s].valueType\nwant %s\nhave %s\n", s, label.Key,
					labelValueType(label),
					labelValueType(retrievedLabel))
			}
		}
	}
	return s
}

// labelValueType the API omits the STRING default
func labelValueType(label *logging.LabelDescriptor) string {
	if label.ValueType == "" {
		return defaultLabelValueType
	}
	return label.ValueType
}
