// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access.
type Reader interface {
	// Getenv returns the value of the variable, or "" if it is unset.
	Getenv(key string) string

	// LookupEnv returns the value of the variable and whether it is set,
	// distinguishing an unset variable from one set to the empty string.
	LookupEnv(key string) (string, bool)
}

// OSReader implements Reader using the standard os package.
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupEnv reports the value of the environment variable named by the key
// and whether it is present in the environment.
func (*OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapReader implements Reader over a fixed map. It is intended for tests
// that need deterministic environment values without mutating the process
// environment.
type MapReader map[string]string

// Getenv returns the mapped value for key, or "" if absent.
func (m MapReader) Getenv(key string) string {
	return m[key]
}

// LookupEnv returns the mapped value for key and whether it is present.
func (m MapReader) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
