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

package ffo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetChild returns the sorted names of the subfolders of basePath/relativeFolderPath
func GetChild(basePath string, relativeFolderPath string) (childNames []string, err error) {
	folderPath := filepath.Join(basePath, relativeFolderPath)
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		return childNames, fmt.Errorf("ffo read folder %s %w", folderPath, err)
	}
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			childNames = append(childNames, entry.Name())
		}
	}
	return childNames, nil
}
