package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

// XEC_LIMIT bounds the depth of XEC execute chains. A chain deeper than
// this halts the machine as a decode error.
const XEC_LIMIT = 64

var _cpu_defines = map[string]uint32{
	"WORD_MASK":      uint32(WORD_MASK),
	"SIGN_BIT":       uint32(SIGN_BIT),
	"MAGNITUDE_MASK": uint32(MAGNITUDE_MASK),
	"ADDR_MASK":      uint32(ADDR_MASK),
	"MEM_SIZE":       MEM_SIZE,
	"XEC_LIMIT":      XEC_LIMIT,
}

// Cpu is the simulation context for the DDP-24 processor.
//
// All state is exported for inspection by tests and debuggers. The step
// and run methods own the state for the duration of the call; callers that
// inspect concurrently must serialize externally.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	A  Word    // Accumulator A.
	B  Word    // Accumulator B.
	X  [4]Word // 15-bit index registers. X[0] is hardwired to zero.
	PC Word    // 15-bit program counter.

	Memory [MEM_SIZE]Word // Core memory.

	Overflow   bool // Sticky overflow and improper-divide indicator.
	Halted     bool // Set by HLT and by decode errors.
	IntEnabled bool // Interrupt enable. Stored, never acted upon.

	Cycles uint64 // Accumulated cycle cost of all executed instructions.

	depth int // Current XEC chain depth.
}

// NewCpu creates a machine with all registers, flags, and memory zeroed.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Defines returns the machine constants, for expression evaluators.
func (cpu *Cpu) Defines() iter.Seq2[string, uint32] {
	return maps.All(_cpu_defines)
}

// Reset clears the registers, flags, and cycle counter. Memory is preserved.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.A = 0
	cpu.B = 0
	clear(cpu.X[:])
	cpu.PC = 0
	cpu.Overflow = false
	cpu.Halted = false
	cpu.IntEnabled = false
	cpu.Cycles = 0
	cpu.depth = 0
}

// Read returns the memory word at addr. The address wraps modulo the
// memory size; the value is masked to 24 bits.
func (cpu *Cpu) Read(addr Word) Word {
	return cpu.Memory[addr&ADDR_MASK] & WORD_MASK
}

// Write stores value at addr, truncated to 24 bits.
func (cpu *Cpu) Write(addr, value Word) {
	cpu.Memory[addr&ADDR_MASK] = value & WORD_MASK
}

// ea computes the effective address of an instruction word: the 15-bit
// address field, plus the selected index register (X[0] reads as zero),
// then one level of indirection.
func (cpu *Cpu) ea(instr Word) (addr Word) {
	addr = instr.Address()

	if idx := instr.Index(); idx > 0 {
		addr = (addr + cpu.X[idx]) & ADDR_MASK
	}

	if instr.Indirect() {
		addr = cpu.Read(addr) & ADDR_MASK
	}

	return
}

// Step executes a single instruction and returns its cycle cost.
// Stepping a halted machine does nothing and costs nothing.
func (cpu *Cpu) Step() int {
	if cpu.Halted {
		return 0
	}

	return cpu.execute(cpu.Read(cpu.PC))
}

// Execute runs one instruction word supplied directly, bypassing the
// memory fetch. The PC advances past the current location exactly as a
// fetched instruction would, so jumps, skips, and the HLT rewind all
// behave identically to Step. A halted machine does nothing.
func (cpu *Cpu) Execute(instr Word) int {
	if cpu.Halted {
		return 0
	}

	return cpu.execute(instr & WORD_MASK)
}

// execute decodes and dispatches a single instruction word, advancing
// the PC and accumulating its cycle cost.
func (cpu *Cpu) execute(instr Word) int {
	fetch := cpu.PC
	cpu.PC = (cpu.PC + 1) & ADDR_MASK

	op := instr.Op()
	ea := cpu.ea(instr)
	cycles := 5

	if cpu.Verbose {
		log.Printf("cpu: %05o: %08o %v ea=%05o", uint32(fetch), uint32(instr), op, uint32(ea))
	}

	switch op {
	case OP_HLT:
		cpu.Halted = true
		cpu.PC = (cpu.PC - 1) & ADDR_MASK // stay at the HLT for resume

	case OP_NOP:

	case OP_LDA:
		cpu.A = cpu.Read(ea)
		cycles = 10

	case OP_LDB:
		cpu.B = cpu.Read(ea)
		cycles = 10

	case OP_STA:
		cpu.Write(ea, cpu.A)
		cycles = 10

	case OP_STB:
		cpu.Write(ea, cpu.B)
		cycles = 10

	case OP_ADD:
		sum := ToSigned(cpu.A) + ToSigned(cpu.Read(ea))
		if sum > 0x7FFFFF || sum < -0x7FFFFF {
			cpu.Overflow = true
		}
		cpu.A = FromSigned(sum)
		cycles = 10

	case OP_SUB:
		diff := ToSigned(cpu.A) - ToSigned(cpu.Read(ea))
		if diff > 0x7FFFFF || diff < -0x7FFFFF {
			cpu.Overflow = true
		}
		cpu.A = FromSigned(diff)
		cycles = 10

	case OP_ANA:
		cpu.A = (cpu.A & cpu.Read(ea)) & WORD_MASK
		cycles = 10

	case OP_ORA:
		cpu.A = (cpu.A | cpu.Read(ea)) & WORD_MASK
		cycles = 10

	case OP_ERA:
		cpu.A = (cpu.A ^ cpu.Read(ea)) & WORD_MASK
		cycles = 10

	case OP_MPY:
		// 23-bit * 23-bit = 46-bit product, split across A (high) and
		// B (low). The algebraic sign goes on both halves, suppressed
		// when the product is zero so +0 inputs never produce -0.
		operand := cpu.Read(ea)
		neg := cpu.B.Negative() != operand.Negative()
		product := uint64(cpu.B.Magnitude()) * uint64(operand.Magnitude())
		cpu.A = Word(product>>23) & MAGNITUDE_MASK
		cpu.B = Word(product) & MAGNITUDE_MASK
		if neg && product != 0 {
			cpu.A |= SIGN_BIT
			cpu.B |= SIGN_BIT
		}
		cycles = 28

	case OP_DIV:
		cycles = 44
		operand := cpu.Read(ea)
		am := cpu.A.Magnitude()
		dm := operand.Magnitude()
		if am >= dm {
			// Improper divide: the quotient would not fit in 23
			// bits. A and B are left untouched.
			cpu.Overflow = true
			break
		}
		dividend := uint64(am)<<23 | uint64(cpu.B.Magnitude())
		quotient := Word(dividend / uint64(dm))
		remainder := Word(dividend % uint64(dm))
		qneg := cpu.A.Negative() != operand.Negative()
		rneg := cpu.A.Negative()
		cpu.B = quotient
		if qneg && quotient != 0 {
			cpu.B |= SIGN_BIT
		}
		cpu.A = remainder
		if rneg && remainder != 0 {
			cpu.A |= SIGN_BIT
		}

	case OP_JMP:
		cpu.PC = ea

	case OP_JPL:
		if !cpu.A.Negative() && cpu.A.Magnitude() != 0 {
			cpu.PC = ea
		}
		cycles = 6

	case OP_JMI:
		if cpu.A.Negative() {
			cpu.PC = ea
		}
		cycles = 6

	case OP_JZE:
		if cpu.A.Magnitude() == 0 {
			cpu.PC = ea
		}
		cycles = 6

	case OP_JNZ:
		if cpu.A.Magnitude() != 0 {
			cpu.PC = ea
		}
		cycles = 6

	case OP_JSL:
		cpu.Write(ea, cpu.PC)
		cpu.PC = (ea + 1) & ADDR_MASK
		cycles = 10

	case OP_SKG:
		if ToSigned(cpu.A) > ToSigned(cpu.Read(ea)) {
			cpu.PC = (cpu.PC + 1) & ADDR_MASK
		}
		cycles = 10

	case OP_SKN:
		if cpu.A != cpu.Read(ea) {
			cpu.PC = (cpu.PC + 1) & ADDR_MASK
		}
		cycles = 10

	case OP_TAB:
		cpu.B = cpu.A

	case OP_IAB:
		cpu.A, cpu.B = cpu.B, cpu.A
		cycles = 10

	case OP_LDX:
		if idx := instr.Index(); idx > 0 {
			cpu.X[idx] = cpu.Read(ea) & ADDR_MASK
		}

	case OP_SIX:
		cpu.Write(ea, cpu.X[instr.Index()])
		cycles = 10

	case OP_ARS:
		count := ea & 0x1F
		cpu.A = cpu.A&SIGN_BIT | cpu.A.Magnitude()>>count
		cycles = 5 + int(count)

	case OP_ALS:
		count := ea & 0x1F
		cpu.A = cpu.A&SIGN_BIT | (cpu.A.Magnitude()<<count)&MAGNITUDE_MASK
		cycles = 5 + int(count)

	case OP_XEC:
		// Execute out of line: resume at ea+1 and take one step there.
		// Any PC change the executed instruction makes stands.
		cpu.PC = (ea + 1) & ADDR_MASK
		if cpu.depth >= XEC_LIMIT {
			log.Printf("cpu: XEC chain deeper than %v at PC=%05o", XEC_LIMIT, uint32(fetch))
			cpu.Halted = true
			break
		}
		cpu.depth++
		cycles = 5 + cpu.Step()
		cpu.depth--

	default:
		log.Printf("cpu: unimplemented opcode %02o at PC=%05o", uint32(op), uint32(fetch))
		cpu.Halted = true
	}

	cpu.Cycles += uint64(cycles)
	return cycles
}

// Run steps the machine until it halts or the cycle budget is exhausted.
// A budget of zero or less means run until halt. Returns the cycles
// consumed by this invocation.
func (cpu *Cpu) Run(budget int) (total int) {
	for !cpu.Halted && (budget <= 0 || total < budget) {
		total += cpu.Step()
	}

	return
}

// String returns the current machine state as an octal dump.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("PC: %05o  A: %08o  B: %08o\n",
		uint32(cpu.PC), uint32(cpu.A), uint32(cpu.B))
	text += fmt.Sprintf("X1: %05o  X2: %05o  X3: %05o\n",
		uint32(cpu.X[1]), uint32(cpu.X[2]), uint32(cpu.X[3]))

	var flags string
	if cpu.Overflow {
		flags += "OVF "
	}
	if cpu.Halted {
		flags += "HLT "
	}
	if cpu.IntEnabled {
		flags += "INT "
	}
	text += fmt.Sprintf("Flags: %v\n", flags)
	text += fmt.Sprintf("Cycles: %v\n", cpu.Cycles)

	return
}
