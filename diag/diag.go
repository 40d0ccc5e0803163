// Copyright 2018 The Gowater Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diag implements the channel for non-fatal diagnostics (warnings)
package diag

import (
	"sync"

	"github.com/cpmech/gosl/io"
)

// Sink receives one diagnostic message
type Sink func(msg string)

// Default prints msg to the console as a warning
func Default(msg string) {
	io.PfYel("***WARNING*** %s\n", msg)
}

// Silent discards all messages
func Silent(msg string) {}

// Or returns s if not nil; otherwise Default
func Or(s Sink) Sink {
	if s == nil {
		return Default
	}
	return s
}

// Warning emits a formatted message to sink if condition is true. It returns condition.
func Warning(sink Sink, condition bool, msg string, prm ...interface{}) bool {
	if condition {
		Or(sink)(io.Sf(msg, prm...))
	}
	return condition
}

// Recorder collects messages; it is safe for concurrent use
type Recorder struct {
	mu   sync.Mutex
	msgs []string
}

// Sink returns a Sink appending to this recorder
func (o *Recorder) Sink() Sink {
	return func(msg string) {
		o.mu.Lock()
		o.msgs = append(o.msgs, msg)
		o.mu.Unlock()
	}
}

// Messages returns a copy of all recorded messages
func (o *Recorder) Messages() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.msgs...)
}

// Len returns the number of recorded messages
func (o *Recorder) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.msgs)
}

// Reset clears all messages
func (o *Recorder) Reset() {
	o.mu.Lock()
	o.msgs = nil
	o.mu.Unlock()
}
