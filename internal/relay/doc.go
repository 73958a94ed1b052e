// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package relay forwards automation lifecycle events to an observer.
//
// Both deployment shapes share [Attach]; they differ only in the observer:
// [ConsoleObserver] for the console shape, [WindowObserver] for the windowed
// shape, which additionally pushes authentication outcomes to the UI.
package relay
