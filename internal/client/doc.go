// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It turns command-line arguments into calls on an [adapter.ServerAdapter]
// and prints the results, logging in first when a protected command is run
// without a token.
package client
