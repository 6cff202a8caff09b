// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"

	"github.com/stacklok/hubclean/env"
	"github.com/stacklok/hubclean/schedule"
	"github.com/stacklok/hubclean/validation"
)

// Defaults for optional environment values.
const (
	DefaultBaseURL       = "https://hub.docker.com/v2"
	DefaultMarkdownBegin = "<!-- BEGIN deletion_table -->"
	DefaultMarkdownEnd   = "<!-- END deletion_table -->"
	DefaultTagColumn     = 1
	DefaultDateColumn    = 2
	DefaultDateFormat    = "%B %d, %Y"
)

// ErrRepositoryRequired is returned when DOCKERHUB_REPOSITORY is unset.
var ErrRepositoryRequired = errors.New("DOCKERHUB_REPOSITORY is required")

// Repository identifies a Docker Hub repository by organization and name.
type Repository struct {
	Organization string
	Name         string
}

// String returns the "org/repo" form.
func (r Repository) String() string {
	return r.Organization + "/" + r.Name
}

// Image returns the fully qualified image reference for a tag.
func (r Repository) Image(tag string) string {
	return r.String() + ":" + tag
}

// Config holds the run-wide configuration, populated once at startup from
// the environment and read-only afterwards.
type Config struct {
	Repository Repository
	BaseURL    string
	Username   string
	Password   string

	JSONFile     string
	YAMLFile     string
	MarkdownFile string

	MarkdownBegin string
	MarkdownEnd   string
	TagColumn     int
	DateColumn    int

	// DateFormat is the strftime-style pattern as configured; DateLayout is
	// its Go reference-time equivalent, used for parsing.
	DateFormat string
	DateLayout string

	DryRun bool
}

// Load builds a Config from the environment. It fails fast on a missing or
// malformed repository, an invalid base URL, a non-numeric column index, or
// an unsupported date format.
func Load(envReader env.Reader) (*Config, error) {
	repo, err := parseRepository(envReader)
	if err != nil {
		return nil, err
	}

	baseURL := getDefault(envReader, "DOCKERHUB_API_BASE_URL", DefaultBaseURL)
	if err := validation.ValidateBaseURL(baseURL); err != nil {
		return nil, fmt.Errorf("DOCKERHUB_API_BASE_URL: %w", err)
	}

	tagColumn, err := getColumn(envReader, "MARKDOWN_TAG_COLUMN", DefaultTagColumn)
	if err != nil {
		return nil, err
	}
	dateColumn, err := getColumn(envReader, "MARKDOWN_DATE_COLUMN", DefaultDateColumn)
	if err != nil {
		return nil, err
	}

	dateFormat := getDefault(envReader, "DATE_FORMAT", DefaultDateFormat)
	dateLayout, err := schedule.LayoutFromStrftime(dateFormat)
	if err != nil {
		return nil, fmt.Errorf("DATE_FORMAT: %w", err)
	}

	dryRun, err := getBool(envReader, "DRY_RUN")
	if err != nil {
		return nil, err
	}

	return &Config{
		Repository:    repo,
		BaseURL:       strings.TrimRight(baseURL, "/"),
		Username:      envReader.Getenv("DOCKERHUB_USERNAME"),
		Password:      envReader.Getenv("DOCKERHUB_PASSWORD"),
		JSONFile:      envReader.Getenv("JSON_FILE"),
		YAMLFile:      envReader.Getenv("YAML_FILE"),
		MarkdownFile:  envReader.Getenv("MARKDOWN_FILE"),
		MarkdownBegin: getDefault(envReader, "MARKDOWN_BEGIN_STRING", DefaultMarkdownBegin),
		MarkdownEnd:   getDefault(envReader, "MARKDOWN_END_STRING", DefaultMarkdownEnd),
		TagColumn:     tagColumn,
		DateColumn:    dateColumn,
		DateFormat:    dateFormat,
		DateLayout:    dateLayout,
		DryRun:        dryRun,
	}, nil
}

// Sources returns the configured schedule sources in evaluation order:
// JSON, then YAML, then Markdown. Unconfigured sources are skipped.
func (c *Config) Sources() []schedule.Source {
	var sources []schedule.Source
	if c.JSONFile != "" {
		sources = append(sources, &schedule.JSONSource{Path: c.JSONFile})
	}
	if c.YAMLFile != "" {
		sources = append(sources, &schedule.YAMLSource{Path: c.YAMLFile})
	}
	if c.MarkdownFile != "" {
		sources = append(sources, &schedule.MarkdownSource{
			Path:       c.MarkdownFile,
			Begin:      c.MarkdownBegin,
			End:        c.MarkdownEnd,
			TagColumn:  c.TagColumn,
			DateColumn: c.DateColumn,
		})
	}
	return sources
}

// parseRepository reads and validates DOCKERHUB_REPOSITORY. The value must
// be a well-formed "org/repo" reference.
func parseRepository(envReader env.Reader) (Repository, error) {
	value, ok := envReader.LookupEnv("DOCKERHUB_REPOSITORY")
	if !ok || value == "" {
		return Repository{}, ErrRepositoryRequired
	}

	if _, err := name.NewRepository(value, name.WithDefaultRegistry("")); err != nil {
		return Repository{}, fmt.Errorf("DOCKERHUB_REPOSITORY %q: %w", value, err)
	}

	parts := strings.Split(value, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, fmt.Errorf("DOCKERHUB_REPOSITORY %q: expected org/repo", value)
	}

	return Repository{Organization: parts[0], Name: parts[1]}, nil
}

func getDefault(envReader env.Reader, key, fallback string) string {
	if value, ok := envReader.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getColumn(envReader env.Reader, key string, fallback int) (int, error) {
	value, ok := envReader.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	column, err := strconv.Atoi(value)
	if err != nil || column < 1 {
		return 0, fmt.Errorf("%s %q: expected a positive column index", key, value)
	}
	return column, nil
}

func getBool(envReader env.Reader, key string) (bool, error) {
	value, ok := envReader.LookupEnv(key)
	if !ok || value == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s %q: expected a boolean", key, value)
	}
	return parsed, nil
}
