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

package sched

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/thediveo/faf"
)

// List is a list of CPU [from...to] ranges. CPU numbers are starting from
// zero. This is the textual representation used by several procfs pseudo
// files, such as the “Cpus_allowed_list” field of /proc/[pid]/status.
type List [][2]uint

// String returns the CPU list in textual format, with the individual ranges
// “x-y” separated by “,” and single CPU ranges collapsed into “x” (instead
// of “x-x”).
func (l List) String() string {
	var b strings.Builder
	for idx, cpurange := range l {
		if idx > 0 {
			b.WriteByte(',')
		}
		if cpurange[0] == cpurange[1] {
			fmt.Fprintf(&b, "%d", cpurange[0])
			continue
		}
		fmt.Fprintf(&b, "%d-%d", cpurange[0], cpurange[1])
	}
	return b.String()
}

// NewList returns a new CPU List for the given textual list format. If the
// text is malformed then an error is returned instead.
func NewList(b []byte) (List, error) {
	bs := faf.NewBytestring(b)
	l := List{}
	for {
		if bs.EOL() {
			return l, nil
		}
		from, ok := bs.Uint64()
		if !ok {
			return nil, errors.New("expected unsigned integer number")
		}
		if bs.EOL() {
			return append(l, [2]uint{uint(from), uint(from)}), nil
		}
		switch ch, _ := bs.Next(); ch {
		case '-':
			// the “-to” part of a from-to range; afterwards, either the text
			// ends or another CPU number or range follows after a “,”.
			to, ok := bs.Uint64()
			if !ok {
				return nil, errors.New("expected unsigned integer number")
			}
			l = append(l, [2]uint{uint(from), uint(to)})
			if bs.EOL() {
				return l, nil
			}
			if ch, _ := bs.Next(); ch != ',' {
				return nil, errors.New("expected ','")
			}
		case ',':
			// a single CPU, with more CPUs or ranges to follow.
			l = append(l, [2]uint{uint(from), uint(from)})
		default:
			return nil, errors.New("expected '-' or ','")
		}
	}
}

// Set returns the CPU Set corresponding with this list.
func (l List) Set() Set {
	if len(l) == 0 {
		return New(0)
	}
	// Size the set for the highest CPU up front to allocate only once.
	s := New(l[len(l)-1][1] + 1)
	for _, cpurange := range l {
		for cpu := cpurange[0]; cpu <= cpurange[1]; cpu++ {
			s = s.Add(cpu)
		}
	}
	return s
}

// Remove the lowest CPU from the specified List, returning the CPU number
// together with a new List of remaining CPUs.
//
// The Remove operation is useful to pick an individual and available CPU
// after first getting the List of CPU affinities for a task/process.
func (l List) Remove() (cpu uint, remaining List) {
	if len(l) == 0 {
		panic("cannot remove from empty List")
	}
	lowest := l[0]
	cpu = lowest[0]
	if lowest[0] < lowest[1] {
		// more CPUs remain in the lowest range.
		return cpu, append(List{{cpu + 1, lowest[1]}}, l[1:]...)
	}
	return cpu, slices.Clone(l[1:])
}
