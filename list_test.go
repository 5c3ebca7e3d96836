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
	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/ginkgo/v2/dsl/table"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("cpu lists", func() {

	DescribeTable("generating textual representations",
		func(list List, expected string) {
			Expect(list.String()).To(Equal(expected))
		},
		Entry(nil, List{}, ""),
		Entry(nil, List{{2, 42}}, "2-42"),
		Entry(nil, List{{2, 42}, {777, 778}}, "2-42,777-778"),
		Entry(nil, List{{1, 1}, {2, 42}, {666, 666}}, "1,2-42,666"),
	)

	When("parsing lists from text", func() {

		It("returns nothing from nothing", func() {
			Expect(NewList([]byte(""))).To(Equal(List{}))
		})

		It("returns a single cpu", func() {
			Expect(NewList([]byte("42"))).To(Equal(List{{42, 42}}))
		})

		It("returns a single range", func() {
			Expect(NewList([]byte("42-666"))).To(Equal(List{{42, 666}}))
		})

		It("returns multiple individual CPUs", func() {
			Expect(NewList([]byte("42,666"))).To(Equal(List{{42, 42}, {666, 666}}))
		})

		It("altogether", func() {
			Expect(NewList([]byte("1-42,666,1000-1001"))).To(
				Equal(List{{1, 42}, {666, 666}, {1000, 1001}}))
		})

		DescribeTable("parsing errors",
			func(s string, msg string) {
				Expect(NewList([]byte(s))).Error().To(MatchError(msg))
			},
			Entry(nil, "abc", "expected unsigned integer number"),
			Entry(nil, "0abc", "expected '-' or ','"),
			Entry(nil, "1-z", "expected unsigned integer number"),
			Entry(nil, "0-0abc", "expected ','"),
		)

	})

	It("converts a list into a set and back", func() {
		Expect(List{}.Set().List()).To(Equal(List{}))
		Expect(Successful(NewList([]byte("3,5,666"))).Set().String()).To(Equal("3,5,666"))
		Expect(Successful(NewList([]byte("0-64"))).Set().List()).To(Equal(List{{0, 64}}))
	})

	It("removes the lowest CPU", func() {
		cpu, remaining := (List{{3, 4}, {7, 7}}).Remove()
		Expect(cpu).To(Equal(uint(3)))
		Expect(remaining).To(Equal(List{{4, 4}, {7, 7}}))

		cpu, remaining = remaining.Remove()
		Expect(cpu).To(Equal(uint(4)))
		Expect(remaining).To(Equal(List{{7, 7}}))

		cpu, remaining = remaining.Remove()
		Expect(cpu).To(Equal(uint(7)))
		Expect(remaining).To(BeEmpty())
	})

	It("panics when removing from an empty list", func() {
		Expect(func() { List{}.Remove() }).To(PanicWith("cannot remove from empty List"))
	})
})
