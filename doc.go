/*
Package sched controls the scheduling properties of processes and tasks:
the set of CPUs they are allowed to run on (their CPU “affinity”), their
nice value, and their scheduling policy.

[Set] is a CPU bitmask with one bit per logical CPU, where each logical CPU
is identified by its 0-based CPU number. A Set's in-memory layout matches
the kernel's cpu_set_t bitmask, so Sets are handed directly to the affinity
syscalls; in contrast to cpu_set_t, Sets are not limited to a fixed number
of CPUs and instead grow as needed. [List] is the equivalent
list-of-CPU-ranges representation, such as 1-4,8-15, as used by several
procfs pseudo files. [Set.List] and [List.Set] convert between the two
representations.

[Affinity] and [SetAffinity] query and change the CPUs a process or task is
allowed to run on. [Priority] and [SetPriority] query and change the nice
value of a process, a process group, or all processes of a user. And
finally [GetPolicy] and [SetPolicy] query and change the scheduling policy,
from the time-shared [Normal] policy up to the real-time [Fifo] and
[RoundRobin] policies.

The syscall-backed operations are available on Linux only; the [Set] and
[List] types build on any platform.
*/
package sched
