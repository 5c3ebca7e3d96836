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

	"golang.org/x/sys/unix"
)

// Which selects the kind of target a priority operation applies to: a
// single process, a process group, or all processes of a user.
type Which int

// The kinds of targets of the [Priority] and [SetPriority] operations. See
// also [getpriority(2)].
//
// [getpriority(2)]: https://man7.org/linux/man-pages/man2/getpriority.2.html
const (
	Process Which = unix.PRIO_PROCESS // a single process, identified by its PID
	Group   Which = unix.PRIO_PGRP    // a process group, identified by its PGID
	User    Which = unix.PRIO_USER    // all processes of a user, identified by their (real) UID
)

// String returns the name of this target kind.
func (w Which) String() string {
	switch w {
	case Process:
		return "Process"
	case Group:
		return "Group"
	case User:
		return "User"
	}
	return fmt.Sprintf("Which(%d)", int(w))
}

// SetPriority sets the nice value for the process, process group, or user
// identified by who. A who of zero denotes the calling process, the process
// group of the calling process, or the real user ID of the calling process,
// respectively. Nice values usually range from -20 (most favorable) to 19
// (least favorable).
func SetPriority(which Which, who int, nice int) error {
	return unix.Setpriority(int(which), who, nice)
}

// Priority returns the nice value for the process, process group, or user
// identified by who, with a who of zero interpreted as for [SetPriority].
// For Group and User targets covering multiple processes, the lowest nice
// value (highest priority) of any of them is returned.
//
// Negative nice values are legitimate results and cleanly separated from
// the error return: the kernel reports nice values biased into 1..40 so
// that its syscall return never collides with an error, and this is undone
// here again.
func Priority(which Which, who int) (int, error) {
	prio, err := unix.Getpriority(int(which), who)
	if err != nil {
		return 0, err
	}
	return 20 - prio, nil
}
