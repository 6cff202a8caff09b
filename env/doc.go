// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("MY_VAR")

Use LookupEnv where an unset variable must be distinguished from one set to
the empty string, such as required configuration values.

# Testing

The Reader interface allows injecting a substitute in tests to avoid relying
on the real process environment. MapReader serves most tests:

	reader := env.MapReader{"MY_VAR": "test-value"}

A generated gomock mock is available in the mocks sub-package for tests that
need to assert on access patterns.
*/
package env
