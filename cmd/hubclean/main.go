// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Command hubclean deletes Docker Hub tags whose scheduled deletion date
// has passed, reconciling a declarative deletion list (JSON, YAML, and/or
// a Markdown table) against the repository's live tags.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
