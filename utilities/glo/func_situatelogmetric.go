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

	"github.com/BrunoReboul/runmon/utilities/crun"
	"google.golang.org/api/logging/v2"
)

const defaultLabelValueType = "STRING"

// SituateLogMetric builds the log based metric of one indicator for the monitored resource
func SituateLogMetric(key string, indicator IndicatorParameters, identity crun.Identity) *logging.LogMetric {
	description := indicator.Description
	if description == "" {
		description = fmt.Sprintf("Custom metric for %s", key)
	}
	labelExtractors := make(map[string]string, len(indicator.LabelExtractors))
	for labelKey, extractor := range indicator.LabelExtractors {
		labelExtractors[labelKey] = extractor
	}
	labels := make([]*logging.LabelDescriptor, 0, len(indicator.Labels))
	for _, label := range indicator.Labels {
		valueType := label.ValueType
		if valueType == "" {
			valueType = defaultLabelValueType
		}
		labels = append(labels, &logging.LabelDescriptor{
			Key:         label.Key,
			ValueType:   valueType,
			Description: label.Description,
		})
	}
	return &logging.LogMetric{
		Name:            identity.MetricName(key),
		Description:     description,
		Filter:          crun.RewriteResourceType(indicator.Filter, identity),
		LabelExtractors: labelExtractors,
		ValueExtractor:  indicator.ValueExtractor,
		BucketOptions:   indicator.BucketOptions.bucketOptions(),
		MetricDescriptor: &logging.MetricDescriptor{
			Type:        identity.MetricType(key),
			Description: description,
			MetricKind:  indicator.MetricKind,
			ValueType:   indicator.ValueType,
			Unit:        indicator.Unit,
			Labels:      labels,
		},
	}
}

// bucketOptions nil safe conversion to the logging API type
func (bucketOptions *BucketOptionsParameters) bucketOptions() *logging.BucketOptions {
	if bucketOptions == nil {
		return nil
	}
	var b logging.BucketOptions
	if bucketOptions.ExplicitBuckets != nil {
		b.ExplicitBuckets = &logging.Explicit{
			Bounds: append([]float64(nil), bucketOptions.ExplicitBuckets.Bounds...),
		}
	}
	if bucketOptions.ExponentialBuckets != nil {
		b.ExponentialBuckets = &logging.Exponential{
			GrowthFactor:     bucketOptions.ExponentialBuckets.GrowthFactor,
			NumFiniteBuckets: bucketOptions.ExponentialBuckets.NumFiniteBuckets,
			Scale:            bucketOptions.ExponentialBuckets.Scale,
		}
	}
	if bucketOptions.LinearBuckets != nil {
		b.LinearBuckets = &logging.Linear{
			NumFiniteBuckets: bucketOptions.LinearBuckets.NumFiniteBuckets,
			Offset:           bucketOptions.LinearBuckets.Offset,
			Width:            bucketOptions.LinearBuckets.Width,
		}
	}
	return &b
}
