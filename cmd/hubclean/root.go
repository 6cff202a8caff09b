// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stacklok/hubclean/config"
	"github.com/stacklok/hubclean/env"
	"github.com/stacklok/hubclean/hub"
	"github.com/stacklok/hubclean/logger"
	"github.com/stacklok/hubclean/reaper"
)

var (
	version = "dev"

	repositoryFlag   string
	jsonFileFlag     string
	yamlFileFlag     string
	markdownFileFlag string
	dryRunFlag       bool
	debugFlag        bool
)

var rootCmd = &cobra.Command{
	Use:   "hubclean",
	Short: "Delete expired Docker Hub tags from a deletion schedule",
	Long: `hubclean reads a list of tag glob patterns with scheduled deletion dates
from a JSON file, a YAML file, and/or a Markdown table, and deletes the
matching tags from a Docker Hub repository once their date has passed.

Configuration comes from the environment (see the config package); flags
override the corresponding variables.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&repositoryFlag, "repository", "r", "",
		"org/repo to clean (overrides DOCKERHUB_REPOSITORY)")
	rootCmd.Flags().StringVar(&jsonFileFlag, "json-file", "",
		"path to a JSON deletion list (overrides JSON_FILE)")
	rootCmd.Flags().StringVar(&yamlFileFlag, "yaml-file", "",
		"path to a YAML deletion list (overrides YAML_FILE)")
	rootCmd.Flags().StringVar(&markdownFileFlag, "markdown-file", "",
		"path to a Markdown file with a deletion table (overrides MARKDOWN_FILE)")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false,
		"report the tags that would be deleted without deleting them")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false,
		"enable debug logging")
}

// overlayReader answers from flag values first and falls back to the real
// environment, so flags override the corresponding variables without any
// separate merge step in config.
type overlayReader struct {
	flags map[string]string
	base  env.Reader
}

func (o *overlayReader) Getenv(key string) string {
	if v, ok := o.flags[key]; ok {
		return v
	}
	return o.base.Getenv(key)
}

func (o *overlayReader) LookupEnv(key string) (string, bool) {
	if v, ok := o.flags[key]; ok {
		return v, true
	}
	return o.base.LookupEnv(key)
}

func run(cmd *cobra.Command, _ []string) error {
	logger.Initialize(debugFlag)

	flags := map[string]string{}
	if repositoryFlag != "" {
		flags["DOCKERHUB_REPOSITORY"] = repositoryFlag
	}
	if jsonFileFlag != "" {
		flags["JSON_FILE"] = jsonFileFlag
	}
	if yamlFileFlag != "" {
		flags["YAML_FILE"] = yamlFileFlag
	}
	if markdownFileFlag != "" {
		flags["MARKDOWN_FILE"] = markdownFileFlag
	}
	if dryRunFlag {
		flags["DRY_RUN"] = "true"
	}

	cfg, err := config.Load(&overlayReader{flags: flags, base: &env.OSReader{}})
	if err != nil {
		logger.Errorf("configuration: %v", err)
		return err
	}

	client := hub.NewClient(cfg.BaseURL,
		hub.WithCredentials(cfg.Username, cfg.Password))

	report, runErr := reaper.New(client, cfg, time.Now).Run(cmd.Context())

	// Confirmations for tags deleted before any failure are still printed;
	// those deletions have already been applied.
	for _, tag := range report.Deleted {
		fmt.Fprintf(cmd.OutOrStdout(), "> Deleted %s\n", cfg.Repository.Image(tag))
	}
	for _, tag := range report.WouldDelete {
		fmt.Fprintf(cmd.OutOrStdout(), "> Would delete %s\n", cfg.Repository.Image(tag))
	}

	if runErr != nil {
		logger.Errorf("run aborted: %v", runErr)
		return runErr
	}

	if report.Empty() {
		fmt.Fprintln(cmd.OutOrStdout(), "There are no tags to delete.")
	}
	return nil
}
