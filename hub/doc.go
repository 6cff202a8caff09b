// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package hub is a minimal client for the Docker Hub v2 API, covering the
three operations tag cleanup needs: obtaining a bearer token, listing a
repository's tags, and deleting a tag by name.

The wire protocol is REST over HTTPS with JSON bodies:

	POST   {base}/users/login
	GET    {base}/namespaces/{org}/repositories/{repo}/tags?page_size=100&ordering=name
	DELETE {base}/namespaces/{org}/repositories/{repo}/tags/{tag}

Tag listing follows the server's "next" links; a 404 on a page request is
treated as the end of pagination, matching the Hub API's behavior when a
page number runs past the last page.

The TagAPI interface decouples consumers from the concrete client; a
generated gomock mock is available in the mocks sub-package.
*/
package hub
