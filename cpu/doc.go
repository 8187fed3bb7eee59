// Package cpu implements the DDP-24 processor core of the Viking lander
// guidance computer emulator.
//
// The DDP-24 is a 24-bit sign-magnitude machine: two accumulators (A and B),
// three usable 15-bit index registers (X1-X3; X0 is hardwired to zero), a
// 15-bit program counter, and 32K words of core memory. Step executes a
// single instruction and returns its cycle cost; Run drives Step until the
// machine halts or a cycle budget expires.
package cpu
