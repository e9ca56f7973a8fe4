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

import "github.com/BrunoReboul/runmon/utilities/mon"

// IndicatorParameters a user defined indicator: a log based metric and an optional alert condition
type IndicatorParameters struct {
	Description     string                        `yaml:"description,omitempty" valid:"maxLength,256"`
	Filter          string                        `yaml:"filter" valid:"isNotZeroValue"`
	LabelExtractors map[string]string             `yaml:"label_extractors" valid:"isNotZeroValue"`
	MetricKind      string                        `yaml:"metric_kind" valid:"isOneOf,GAUGE|DELTA|CUMULATIVE"`
	ValueType       string                        `yaml:"value_type" valid:"isOneOf,BOOL|INT64|DOUBLE|STRING|DISTRIBUTION|MONEY"`
	Unit            string                        `yaml:"unit,omitempty"`
	ValueExtractor  string                        `yaml:"value_extractor,omitempty"`
	BucketOptions   *BucketOptionsParameters      `yaml:"bucket_options,omitempty"`
	Labels          []LabelParameters             `yaml:"labels"`
	AlertCondition  *mon.AlertConditionParameters `yaml:"alert_condition,omitempty" valid:"-"`
}

// LabelParameters one label of the metric descriptor
type LabelParameters struct {
	Key         string `yaml:"key" valid:"isLabelKey"`
	ValueType   string `yaml:"value_type,omitempty" valid:"isOneOf,STRING|BOOL|INT64,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// BucketOptionsParameters distribution buckets, only one kind is expected
type BucketOptionsParameters struct {
	ExplicitBuckets    *ExplicitBucketsParameters    `yaml:"explicit_buckets,omitempty"`
	ExponentialBuckets *ExponentialBucketsParameters `yaml:"exponential_buckets,omitempty"`
	LinearBuckets      *LinearBucketsParameters      `yaml:"linear_buckets,omitempty"`
}

// ExplicitBucketsParameters buckets bounds
type ExplicitBucketsParameters struct {
	Bounds []float64 `yaml:"bounds,omitempty"`
}

// ExponentialBucketsParameters buckets with exponentially growing width
type ExponentialBucketsParameters struct {
	GrowthFactor     float64 `yaml:"growth_factor,omitempty"`
	NumFiniteBuckets int64   `yaml:"num_finite_buckets,omitempty"`
	Scale            float64 `yaml:"scale,omitempty"`
}

// LinearBucketsParameters buckets of the same width
type LinearBucketsParameters struct {
	NumFiniteBuckets int64   `yaml:"num_finite_buckets,omitempty"`
	Offset           float64 `yaml:"offset,omitempty"`
	Width            float64 `yaml:"width,omitempty"`
}
