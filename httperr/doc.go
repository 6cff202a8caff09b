// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr provides error types with HTTP status codes for registry API
error handling.

The hub client wraps every non-2xx response in a CodedError via FromResponse,
and callers branch on the status without string matching:

	if err := client.DeleteTag(ctx, repo, tag); err != nil {
		if httperr.IsStatus(err, http.StatusNotFound) {
			// tag already gone
		}
	}

Code returns 0 for errors that carry no status (transport failures), so a
connection error is never confused with a server response.
*/
package httperr
