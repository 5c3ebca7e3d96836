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
	"unsafe"
)

// Set is a CPU bit string, such as used for CPU affinity masks. Bit number
// cpu set means that the CPU with that 0-based number is a member of the
// set. A Set's in-memory layout matches the kernel's cpu_set_t bitmask, so
// it can be handed directly to the affinity syscalls; in contrast to
// cpu_set_t, a Set is not limited to a fixed number of CPUs, but instead
// grows as needed. See also [sched_getaffinity(2)].
//
// Sets have value semantics and carry no locking; callers sharing a Set
// between go routines need to serialize access themselves.
//
// [sched_getaffinity(2)]: https://man7.org/linux/man-pages/man2/sched_getaffinity.2.html
type Set []uint64

var wordbytesize = uint(unsafe.Sizeof(Set{0}[0]))
var bitsperword = wordbytesize * 8

// ErrOverflow is returned when a Set covers more CPUs than the requested
// scalar mask type can represent.
var ErrOverflow = errors.New("CPU set too large for scalar mask")

func wordIndex(cpu uint) int {
	return int(cpu / bitsperword)
}

func bitMask(cpu uint) uint64 {
	return uint64(1) << (cpu % bitsperword)
}

// New returns a Set with room for at least numCPUs CPUs, with no CPU in the
// set. A Set always occupies at least one word, even when asked for zero
// CPUs. This is the CPU_ALLOC analog.
func New(numCPUs uint) Set {
	words := int((numCPUs + bitsperword - 1) / bitsperword)
	if words < 1 {
		words = 1
	}
	return make(Set, words)
}

// FromMask returns a Set created from the passed fixed-width scalar mask,
// such as a uint8 or uint64 literal. The new Set is sized for exactly the
// mask's width and its leading bytes are the mask's native in-memory byte
// representation.
func FromMask[T ~uint8 | ~uint16 | ~uint32 | ~uint64](mask T) Set {
	s := New(8 * uint(unsafe.Sizeof(mask)))
	*(*T)(unsafe.Pointer(&s[0])) = mask
	return s
}

// Single returns a Set with exactly the single passed CPU in it, sized to
// cover just that CPU.
func Single(cpu uint) Set {
	return New(cpu + 1).Add(cpu)
}

// Add adds the passed CPU to this set, returning an updated Set. The
// updated Set may or may not be the original Set: if cpu lies beyond the
// set's current capacity, the set grows by all-zero words up to and
// including the word covering cpu. This is the CPU_SET analog.
func (s Set) Add(cpu uint) Set {
	word := wordIndex(cpu)
	for word >= len(s) {
		s = append(s, 0)
	}
	s[word] |= bitMask(cpu)
	return s
}

// Clear removes the passed CPU from this set. Clearing a CPU beyond the
// set's capacity is a no-op; the set never grows on Clear. Clearing a CPU
// not in the set leaves it out of the set. This is the CPU_CLR analog.
func (s Set) Clear(cpu uint) {
	word := wordIndex(cpu)
	if word >= len(s) {
		return
	}
	s[word] &^= bitMask(cpu)
}

// IsSet reports whether the passed CPU is in this set. CPUs beyond the
// set's capacity report false. This is the CPU_ISSET analog.
func (s Set) IsSet(cpu uint) bool {
	word := wordIndex(cpu)
	if word >= len(s) {
		return false
	}
	return s[word]&bitMask(cpu) != 0
}

// ByteSize returns the size of this set's bitmask in bytes, as passed to
// the affinity syscalls. This is the CPU_ALLOC_SIZE analog.
func (s Set) ByteSize() int {
	return len(s) * int(wordbytesize)
}

// Uint64 returns this set as a compact uint64 mask. It returns
// [ErrOverflow] if the set covers more CPUs than a uint64 can represent;
// CPUs beyond the first 64 are never silently dropped.
func (s Set) Uint64() (uint64, error) {
	if s.ByteSize() > int(unsafe.Sizeof(uint64(0))) {
		return 0, ErrOverflow
	}
	if len(s) == 0 {
		return 0, nil
	}
	return s[0], nil
}

// List returns the list of CPU ranges corresponding with this CPU set.
func (s Set) List() List {
	l := List{}
	inrange := false
	var from uint
	for cpu := uint(0); cpu < uint(len(s))*bitsperword; cpu++ {
		if s.IsSet(cpu) {
			if !inrange {
				from = cpu
				inrange = true
			}
			continue
		}
		if inrange {
			l = append(l, [2]uint{from, cpu - 1})
			inrange = false
		}
	}
	if inrange {
		l = append(l, [2]uint{from, uint(len(s))*bitsperword - 1})
	}
	return l
}

// String returns the CPUs in this set in textual list format. In list
// format, individual CPU ranges “x-y” are separated by “,”, and single CPU
// ranges collapsed into “x”.
func (s Set) String() string {
	return s.List().String()
}
