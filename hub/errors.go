// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package hub

import "errors"

// ErrAuth is returned when the registry rejects the configured credentials.
var ErrAuth = errors.New("registry authentication failed")
