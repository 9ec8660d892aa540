// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFileMissing(t *testing.T) {
	config, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want defaults %+v", *config, defaultConfig)
	}
}

func TestLoadConfigFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "values:\n  numeric: true\nfilter:\n  bloom_hashes: 0\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if !config.Values.Numeric {
		t.Error("values.numeric not read")
	}
	if !config.Values.TrimSpace {
		t.Error("values.trim_space default lost")
	}
	if config.Filter.BloomHashes != defaultConfig.Filter.BloomHashes {
		t.Errorf("bloom_hashes = %d; want default %d", config.Filter.BloomHashes, defaultConfig.Filter.BloomHashes)
	}
	if config.Log.Level != "debug" {
		t.Errorf("log.level = %q; want debug", config.Log.Level)
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("values: [not, a, map"), 0644); err != nil {
		t.Fatal(err)
	}
	config, err := loadConfigFile(path)
	if err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
	if *config != defaultConfig {
		t.Error("malformed config did not fall back to defaults")
	}
}

func TestWriteDefaultConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := writeDefaultConfigFile(path); err != nil {
		t.Fatalf("writeDefaultConfigFile: %v", err)
	}
	config, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want %+v", *config, defaultConfig)
	}
}
