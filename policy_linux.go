// Copyright 2025 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

//go:build linux

package sched

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Policy is a task scheduling policy, such as the time-shared [Normal]
// policy or the real-time [Fifo] and [RoundRobin] policies. See also
// [sched(7)].
//
// [sched(7)]: https://man7.org/linux/man-pages/man7/sched.7.html
type Policy int

// The scheduling policies of the [GetPolicy] and [SetPolicy] operations.
const (
	Normal     Policy = unix.SCHED_NORMAL   // standard time-shared round-robin
	Fifo       Policy = unix.SCHED_FIFO     // real-time, first-in first-out
	RoundRobin Policy = unix.SCHED_RR       // real-time, round-robin
	Batch      Policy = unix.SCHED_BATCH    // time-shared, for CPU-intensive batch work
	Idle       Policy = unix.SCHED_IDLE     // for very low priority background work
	Deadline   Policy = unix.SCHED_DEADLINE // deadline-based, see sched_setattr(2)
)

// String returns the name of this scheduling policy.
func (p Policy) String() string {
	switch p {
	case Normal:
		return "Normal"
	case Fifo:
		return "Fifo"
	case RoundRobin:
		return "RoundRobin"
	case Batch:
		return "Batch"
	case Idle:
		return "Idle"
	case Deadline:
		return "Deadline"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// UnknownPolicyError is returned when the kernel reports a scheduling
// policy this package does not know about, such as a policy class added in
// a newer kernel, or a policy combined with the SCHED_RESET_ON_FORK flag.
type UnknownPolicyError int

// Error returns a description including the unknown policy value.
func (e UnknownPolicyError) Error() string {
	return fmt.Sprintf("unknown scheduling policy %d", int(e))
}

// schedParam is the kernel's sched_param with its single static priority
// field.
type schedParam struct {
	priority int32
}

// SetPolicy sets the scheduling policy of the process with the passed pid,
// together with the static priority. If pid is zero, the policy of the
// calling thread is set (make sure to have the OS-level thread locked to
// the calling go routine in this case). The static priority must be in the
// range 1..99 for the real-time [Fifo] and [RoundRobin] policies, and zero
// for all other policies.
func SetPolicy(pid int, policy Policy, priority int) error {
	param := schedParam{priority: int32(priority)}
	_, _, e := unix.RawSyscall(unix.SYS_SCHED_SETSCHEDULER,
		uintptr(pid), uintptr(policy), uintptr(unsafe.Pointer(&param)))
	if e != 0 {
		return e
	}
	return nil
}

// GetPolicy returns the scheduling policy of the process with the passed
// pid, with a pid of zero interpreted as for [SetPolicy]. A policy reported
// by the kernel but not known to this package is returned as an
// [UnknownPolicyError] instead.
func GetPolicy(pid int) (Policy, error) {
	r, _, e := unix.RawSyscall(unix.SYS_SCHED_GETSCHEDULER,
		uintptr(pid), 0, 0)
	if e != 0 {
		return 0, e
	}
	policy := Policy(r)
	switch policy {
	case Normal, Fifo, RoundRobin, Batch, Idle, Deadline:
		return policy, nil
	}
	return 0, UnknownPolicyError(policy)
}
