// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"testing"

	"gopkg.in/yaml.v2"
)

func TestConfigCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "--verbosity", "debug", "config")
	if err != nil {
		t.Fatal(err)
	}

	var settings map[string]interface{}
	if err := yaml.Unmarshal([]byte(out), &settings); err != nil {
		t.Fatal(err)
	}

	for key, want := range map[string]interface{}{
		"verbosity": "debug",
		"api-addr":  ":1733",
		"raw":       false,
		"unchecked": false,
	} {
		if got := settings[key]; got != want {
			t.Errorf("got %s %v, want %v", key, got, want)
		}
	}
	if _, ok := settings["key"]; ok {
		t.Error("private key option is printed")
	}
}
