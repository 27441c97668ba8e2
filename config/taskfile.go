// Copyright 2026 The Oasis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cpmech/oasis/oasiserr"
)

// TaskFile is a component's opaque per-component configuration (spec.md §6:
// "consumed opaquely by that component's plugin"). oasis itself only loads
// and hands the raw map to the component; it never interprets the keys.
type TaskFile map[string]interface{}

// LoadTaskFile reads and decodes the YAML task file at path.
func LoadTaskFile(path string) (TaskFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, oasiserr.NewConfigError("task file: cannot read %q: %v", path, err)
	}
	var tf TaskFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, oasiserr.NewConfigError("task file: invalid YAML in %q: %v", path, err)
	}
	return tf, nil
}

// String returns the string value at key, or "" if absent or not a string.
func (tf TaskFile) String(key string) string {
	v, ok := tf[key].(string)
	if !ok {
		return ""
	}
	return v
}

// Float returns the float64 value at key, or 0 if absent or not numeric.
func (tf TaskFile) Float(key string) float64 {
	switch v := tf[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
