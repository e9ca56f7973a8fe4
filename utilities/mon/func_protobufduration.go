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
	"strconv"
)

var durationUnitSeconds = map[byte]int64{
	's': 1,
	'm': 60,
	'h': 3600,
	'd': 86400,
}

// protobufDuration converts a duration like 5m to the seconds form used by the Monitoring API, 300s
// Values not matching the duration pattern are returned unchanged
func protobufDuration(duration string) string {
	if duration == "" {
		return duration
	}
	unitSeconds, ok := durationUnitSeconds[duration[len(duration)-1]]
	if !ok {
		return duration
	}
	count, err := strconv.ParseInt(duration[:len(duration)-1], 10, 64)
	if err != nil || count < 0 {
		return duration
	}
	return fmt.Sprintf("%ds", count*unitSeconds)
}
