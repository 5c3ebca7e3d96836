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
	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/ginkgo/v2/dsl/table"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("scheduling priorities", func() {

	DescribeTable("stringifying target kinds",
		func(which Which, expected string) {
			Expect(which.String()).To(Equal(expected))
		},
		Entry(nil, Process, "Process"),
		Entry(nil, Group, "Group"),
		Entry(nil, User, "User"),
		Entry(nil, Which(42), "Which(42)"),
	)

	It("gets the nice value for each target kind", func() {
		for _, which := range []Which{Process, Group, User} {
			nice := Successful(Priority(which, 0))
			Expect(nice).To(BeNumerically(">=", -20), "target kind %s", which)
			Expect(nice).To(BeNumerically("<=", 19), "target kind %s", which)
		}
	})

	It("sets this process's nice value", func() {
		nice := Successful(Priority(Process, 0))
		Expect(SetPriority(Process, 0, nice)).To(Succeed())
		Expect(Successful(Priority(Process, 0))).To(Equal(nice))
	})

	It("reports non-existing processes", func() {
		Expect(Priority(Process, nonexistingPID)).Error().To(HaveOccurred())
		Expect(SetPriority(Process, nonexistingPID, 0)).NotTo(Succeed())
	})
})
