// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads the run-wide configuration from the environment.

Every option is an environment variable; only DOCKERHUB_REPOSITORY is
required. The recognized variables:

	DOCKERHUB_REPOSITORY     org/repo to clean (required)
	DOCKERHUB_API_BASE_URL   API base URL (default https://hub.docker.com/v2)
	DOCKERHUB_USERNAME       registry username
	DOCKERHUB_PASSWORD       registry password or access token
	JSON_FILE                path to a JSON deletion list (omit to skip)
	YAML_FILE                path to a YAML deletion list (omit to skip)
	MARKDOWN_FILE            path to a Markdown file with a deletion table
	MARKDOWN_BEGIN_STRING    table region start sentinel
	MARKDOWN_END_STRING      table region end sentinel
	MARKDOWN_TAG_COLUMN      1-based tag column index (default 1)
	MARKDOWN_DATE_COLUMN     1-based date column index (default 2)
	DATE_FORMAT              strftime-style date pattern (default "%B %d, %Y")
	DRY_RUN                  report without deleting when true

Load accepts an env.Reader so tests can inject a fixed environment. The
returned Config is immutable for the duration of the run.
*/
package config
