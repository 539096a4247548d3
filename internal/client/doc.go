// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the light client process runtime.
//
// It wires the local store, the node RPC client, the sync services and the
// background workers (periodic state sync and the optional Prometheus
// endpoint) into a single process lifecycle.
package client
