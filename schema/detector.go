/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import (
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// DetectionConfig provides configuration for dialect detection.
type DetectionConfig struct {
	// DefaultVersion is used when the content has no token leaves to inspect.
	DefaultVersion Version
}

// DetectVersion detects the dialect from file content.
// Priority order:
// 1. A "$value" leaf anywhere marks DTCG
// 2. A "value" leaf anywhere marks Legacy
// 3. Config default version
// 4. Default to Legacy
func DetectVersion(content []byte, config *DetectionConfig) (Version, error) {
	var data map[string]any
	if err := yaml.Unmarshal(jsonc.ToJSON(content), &data); err != nil {
		return Unknown, fmt.Errorf("invalid YAML/JSON: %w", err)
	}

	if hasFeature(data, "$value") {
		return DTCG, nil
	}
	if hasFeature(data, "value") {
		return Legacy, nil
	}

	if config != nil && config.DefaultVersion != Unknown {
		return config.DefaultVersion, nil
	}

	return Legacy, nil
}

// hasFeature checks if a feature (field name) exists anywhere in the structure.
func hasFeature(data map[string]any, featureName string) bool {
	if _, exists := data[featureName]; exists {
		return true
	}
	for _, value := range data {
		if v, ok := value.(map[string]any); ok && hasFeature(v, featureName) {
			return true
		}
	}
	return false
}
