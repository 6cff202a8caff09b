// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package reaper orchestrates one tag-cleanup run end to end: read the
deletion schedule, filter it to records whose date has passed, expand the
due patterns against the repository's live tags, and delete the matches in
order.

The run is stateless and synchronous. Nothing is remembered between runs;
every invocation re-reads the schedule and re-fetches the tag list, and a
failed run can simply be retried by the next scheduled invocation. The
first deletion failure aborts the run, so the registry is never left with a
silently skipped tail of deletions.
*/
package reaper
