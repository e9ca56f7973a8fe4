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

package runmoncli

import (
	"encoding/json"
	"fmt"
)

// jsonDocument returns v as decoded from its JSON encoding
// API types only carry json tags and custom MarshalJSON, so this keeps dumps aligned on request bodies
func jsonDocument(v interface{}) (document interface{}, err error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("runmoncli json.Marshal %w", err)
	}
	if err = json.Unmarshal(b, &document); err != nil {
		return nil, fmt.Errorf("runmoncli json.Unmarshal %w", err)
	}
	return document, nil
}
