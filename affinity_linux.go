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
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// SetAffinity sets the CPU affinities for the specified task/process.
// Otherwise, it returns an error. If tid is zero, then the affinity of the
// calling thread is set (make sure to have the OS-level thread locked to
// the calling go routine in this case). It is an error trying to set no
// affinities.
//
// Notes:
//   - we don't use [unix.SchedSetaffinity] as this is tied to the fixed
//     size [unix.CPUSet] type, whereas a [Set] sizes itself to the CPUs it
//     actually covers.
//   - we use RawSyscall here instead of Syscall as we know that
//     SYS_SCHED_SETAFFINITY does not block, following Go's stdlib
//     implementation.
//
// See also [sched_setaffinity(2)].
//
// [sched_setaffinity(2)]: https://man7.org/linux/man-pages/man2/sched_setaffinity.2.html
func SetAffinity(tid int, cpus Set) error {
	if len(cpus) == 0 {
		return syscall.EINVAL
	}
	_, _, e := unix.RawSyscall(unix.SYS_SCHED_SETAFFINITY,
		uintptr(tid), uintptr(cpus.ByteSize()), uintptr(unsafe.Pointer(&cpus[0])))
	if e != 0 {
		return e
	}
	return nil
}

// Pin the specified task/process to this Set's CPUs. If tid is zero, the
// calling thread is pinned.
func (s Set) Pin(tid int) error {
	return SetAffinity(tid, s)
}

// Affinity returns the affinity Set of the task/process with the passed
// tid, with the returned Set sized for at least numCPUs CPUs. If tid is
// zero, then the affinity Set of the calling thread is returned (make sure
// to have the OS-level thread locked to the calling go routine in this
// case).
//
// The kernel rejects sets smaller than its own internal mask size with
// EINVAL, so size numCPUs generously rather than sparingly.
func Affinity(tid int, numCPUs uint) (Set, error) {
	set := New(numCPUs)
	_, _, e := unix.RawSyscall(unix.SYS_SCHED_GETAFFINITY,
		uintptr(tid), uintptr(set.ByteSize()), uintptr(unsafe.Pointer(&set[0])))
	if e != 0 {
		return nil, e
	}
	return set, nil
}
