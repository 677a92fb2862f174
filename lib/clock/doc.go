// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source so that timeouts in
// the privileged command transcript can be tested without real waits.
//
// Production code holds a [Clock] and calls [Real] by default. Tests
// use [Fake], start the code under test in a goroutine, call
// [FakeClock.WaitForTimers] until the code has armed its deadline, and
// then [FakeClock.Advance] past it:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	go func() { done <- transcript.Expect(pattern, 5*time.Second) }()
//	fake.WaitForTimers(1)
//	fake.Advance(5 * time.Second)
package clock
