// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the feed server has
// no HTTP address to serve on. The server fails at startup on it.
var errNoHandlersAreCreated = errors.New("no handlers are created")
