// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandler      = errors.New("no bridge handler provided")
	errEmptyAddress   = errors.New("empty bridge address")
	errAlreadyRunning = errors.New("bridge server already running")
)
