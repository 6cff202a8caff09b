// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"testing"
)

func TestOSReader(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	testKey := "HUBCLEAN_TEST_ENV_VARIABLE"
	testValue := "test_value_123"

	originalValue, wasSet := os.LookupEnv(testKey)
	os.Setenv(testKey, testValue)
	t.Cleanup(func() {
		if wasSet {
			os.Setenv(testKey, originalValue)
		} else {
			os.Unsetenv(testKey)
		}
	})

	reader := &OSReader{}

	if got := reader.Getenv(testKey); got != testValue {
		t.Errorf("OSReader.Getenv() = %v, want %v", got, testValue)
	}
	if got := reader.Getenv("NONEXISTENT_ENV_VAR_TESTING_12345"); got != "" {
		t.Errorf("OSReader.Getenv() = %v, want empty", got)
	}

	if got, ok := reader.LookupEnv(testKey); !ok || got != testValue {
		t.Errorf("OSReader.LookupEnv() = %v, %v, want %v, true", got, ok, testValue)
	}
	if _, ok := reader.LookupEnv("NONEXISTENT_ENV_VAR_TESTING_12345"); ok {
		t.Error("OSReader.LookupEnv() reported a nonexistent variable as set")
	}
}

func TestMapReader(t *testing.T) {
	t.Parallel()

	reader := MapReader{"PRESENT": "value", "EMPTY": ""}

	if got := reader.Getenv("PRESENT"); got != "value" {
		t.Errorf("MapReader.Getenv() = %v, want value", got)
	}
	if got := reader.Getenv("ABSENT"); got != "" {
		t.Errorf("MapReader.Getenv() = %v, want empty", got)
	}

	if _, ok := reader.LookupEnv("EMPTY"); !ok {
		t.Error("MapReader.LookupEnv() reported an empty-but-set variable as unset")
	}
	if _, ok := reader.LookupEnv("ABSENT"); ok {
		t.Error("MapReader.LookupEnv() reported an absent variable as set")
	}
}
