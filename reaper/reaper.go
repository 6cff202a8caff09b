// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package reaper

import (
	"context"
	"time"

	"github.com/stacklok/hubclean/config"
	"github.com/stacklok/hubclean/hub"
	"github.com/stacklok/hubclean/logger"
	"github.com/stacklok/hubclean/schedule"
)

// Report is the outcome of one run.
type Report struct {
	// Deleted lists the tags removed, in deletion order.
	Deleted []string

	// WouldDelete lists the tags a dry run would have removed.
	WouldDelete []string
}

// Empty reports whether the run found nothing to delete.
func (r *Report) Empty() bool {
	return len(r.Deleted) == 0 && len(r.WouldDelete) == 0
}

// Reaper drives one cleanup run: read the schedule, work out which records
// are due, match their patterns against the repository's live tags, and
// delete the matches.
type Reaper struct {
	registry hub.TagAPI
	sources  []schedule.Source
	repo     config.Repository
	layout   string
	clock    schedule.Clock
	dryRun   bool
}

// New creates a Reaper for the given registry client and configuration.
// The clock is injected so tests can pin "now"; production callers pass
// time.Now.
func New(registry hub.TagAPI, cfg *config.Config, clock schedule.Clock) *Reaper {
	return &Reaper{
		registry: registry,
		sources:  cfg.Sources(),
		repo:     cfg.Repository,
		layout:   cfg.DateLayout,
		clock:    clock,
		dryRun:   cfg.DryRun,
	}
}

// Run executes one cleanup pass and returns what was deleted.
//
// The current time is captured once, so every record is classified against
// the same instant. The live tag list is fetched once and shared by all due
// records; matching is pure, so the matched set is identical to fetching
// per record. Matched names are deduplicated (first occurrence wins)
// before deletion: Docker Hub answers 404 for a tag that is already gone,
// which would otherwise turn a duplicate entry into a spurious failure.
//
// Deletions happen strictly in matched order. The first failure aborts the
// run; the returned Report still lists the tags deleted before the failure,
// which stay deleted (re-running after fixing the cause is safe).
func (r *Reaper) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	records, err := schedule.ReadAll(r.sources...)
	if err != nil {
		return report, err
	}

	due, err := r.dueRecords(records)
	if err != nil {
		return report, err
	}
	if len(due) == 0 {
		logger.Debugf("no records are due")
		return report, nil
	}

	liveTags, err := r.registry.ListTags(ctx, r.repo.Organization, r.repo.Name)
	if err != nil {
		return report, err
	}
	logger.Debugw("fetched live tags", "repository", r.repo.String(), "count", len(liveTags))

	var matched []string
	for _, rec := range due {
		names, err := schedule.Match(rec.Patterns, liveTags)
		if err != nil {
			return report, err
		}
		matched = append(matched, names...)
	}
	matched = dedupe(matched)

	if len(matched) == 0 {
		return report, nil
	}

	if r.dryRun {
		report.WouldDelete = matched
		for _, tag := range matched {
			logger.Infow("would delete", "image", r.repo.Image(tag))
		}
		return report, nil
	}

	for _, tag := range matched {
		if err := r.registry.DeleteTag(ctx, r.repo.Organization, r.repo.Name, tag); err != nil {
			return report, err
		}
		report.Deleted = append(report.Deleted, tag)
		logger.Debugw("deleted", "image", r.repo.Image(tag))
	}

	return report, nil
}

// dueRecords filters the schedule to records whose date has passed,
// logging each due record with its scheduled date. A date that fails to
// parse aborts the run before any deletion is attempted.
func (r *Reaper) dueRecords(records []schedule.Record) ([]schedule.Record, error) {
	eval := &schedule.Evaluator{Layout: r.layout, Now: r.clock()}

	var due []schedule.Record
	for _, rec := range records {
		isDue, when, err := eval.Due(rec)
		if err != nil {
			return nil, err
		}
		if isDue {
			logger.Infow("record due",
				"patterns", rec.Patterns,
				"scheduled", when.Format(time.DateOnly))
			due = append(due, rec)
		}
	}
	return due, nil
}

// dedupe removes repeated names, keeping the first occurrence of each.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
