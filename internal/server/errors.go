// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoNodeTransports is returned when the mock node config enables neither
// the HTTP nor the gRPC node API.
var errNoNodeTransports = errors.New("mock node has no HTTP or gRPC address to serve the node API on")
