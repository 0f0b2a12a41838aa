package vm

import (
	"io"
	"log"
)

// Word is the native 16-bit storage unit. Arithmetic on it wraps modulo 2^16.
type Word uint16

// Flag is the value of the condition register.
type Flag Word

// general purpose registers
const (
	R0 = 0b000
	R1 = 0b001
	R2 = 0b010
	R3 = 0b011
	R4 = 0b100
	R5 = 0b101
	R6 = 0b110
	R7 = 0b111
)

// flags
const (
	FlagPos Flag = 0b001
	FlagZro Flag = 0b010
	FlagNeg Flag = 0b100
)

// Opcode is the top nibble of an instruction.
type Opcode Word

//go:generate stringer -type=Opcode -trimprefix=Op

// opcodes
const (
	OpBR Opcode = iota
	OpADD
	OpLD
	OpST
	OpJSR
	OpAND
	OpLDR
	OpSTR
	OpRTI
	OpNOT
	OpLDI
	OpSTI
	OpJMP
	OpRES
	OpLEA
	OpTRAP
)

type cpu struct {
	running           bool
	memory            *Memory
	internalRegisters struct {
		pc   Word
		cond Flag
	}
	generalPurposeRegisters [8]Word
	keyboard                Keyboard
	stdoutWriter            io.Writer
	tracer                  *log.Logger
}

func newCpu(memory *Memory, keyboard Keyboard, stdout io.Writer, tracer *log.Logger) cpu {
	c := cpu{
		memory:       memory,
		keyboard:     keyboard,
		stdoutWriter: stdout,
		tracer:       tracer,
	}
	c.reset()
	return c
}

func (cpu *cpu) reset() {
	cpu.internalRegisters.pc = UserSpaceStart
	cpu.internalRegisters.cond = FlagZro
}

func (cpu *cpu) start() {
	cpu.running = true
	for cpu.running {
		cpu.step()
	}
}

func (cpu *cpu) stop() {
	cpu.running = false
}

func (cpu *cpu) step() {
	instruction := cpu.memory.Read(cpu.internalRegisters.pc)
	cpu.internalRegisters.pc++
	cpu.decodeAndExecuteInstruction(instruction)
}

func (cpu *cpu) trace(format string, v ...any) {
	if cpu.tracer != nil {
		cpu.tracer.Printf(format, v...)
	}
}

func (cpu *cpu) decodeAndExecuteInstruction(instruction Word) {
	pc := cpu.internalRegisters.pc
	reg := &cpu.generalPurposeRegisters

	switch op := Opcode(instruction >> 12); op {
	case OpADD:
		dr := (instruction >> 9) & 0b111
		sr1 := (instruction >> 6) & 0b111
		immFlag := (instruction >> 5) & 0b1

		if immFlag == 1 {
			imm5 := instruction & 0x1F
			cpu.trace("0x%04x ADD: dr=%03b sr1=%03b imm5=0x%02x", pc, dr, sr1, imm5)
			reg[dr] = reg[sr1] + sext(imm5, 5)
		} else {
			sr2 := instruction & 0b111
			cpu.trace("0x%04x ADD: dr=%03b sr1=%03b sr2=%03b", pc, dr, sr1, sr2)
			reg[dr] = reg[sr1] + reg[sr2]
		}
		cpu.updateFlags(dr)

	case OpAND:
		dr := (instruction >> 9) & 0b111
		sr1 := (instruction >> 6) & 0b111
		immFlag := (instruction >> 5) & 0b1

		if immFlag == 1 {
			imm5 := instruction & 0x1F
			cpu.trace("0x%04x AND: dr=%03b sr1=%03b imm5=0x%02x", pc, dr, sr1, imm5)
			reg[dr] = reg[sr1] & sext(imm5, 5)
		} else {
			sr2 := instruction & 0b111
			cpu.trace("0x%04x AND: dr=%03b sr1=%03b sr2=%03b", pc, dr, sr1, sr2)
			reg[dr] = reg[sr1] & reg[sr2]
		}
		cpu.updateFlags(dr)

	case OpNOT:
		dr := (instruction >> 9) & 0b111
		sr := (instruction >> 6) & 0b111
		cpu.trace("0x%04x NOT: dr=%03b sr=%03b", pc, dr, sr)

		reg[dr] = ^reg[sr]
		cpu.updateFlags(dr)

	case OpBR:
		nzp := (instruction >> 9) & 0b111
		pcoffset9 := instruction & 0x1FF
		cpu.trace("0x%04x BR: nzp=%03b pcoffset9=0x%03x", pc, nzp, pcoffset9)

		if nzp&Word(cpu.internalRegisters.cond) != 0 {
			cpu.internalRegisters.pc += sext(pcoffset9, 9)
		}

	case OpJMP:
		br := (instruction >> 6) & 0b111
		cpu.trace("0x%04x JMP: br=%03b", pc, br)

		cpu.internalRegisters.pc = reg[br]

	case OpJSR:
		reg[R7] = pc

		if (instruction>>11)&0b1 == 1 {
			pcoffset11 := instruction & 0x7FF
			cpu.trace("0x%04x JSR: pcoffset11=0x%03x", pc, pcoffset11)
			cpu.internalRegisters.pc += sext(pcoffset11, 11)
		} else {
			br := (instruction >> 6) & 0b111
			cpu.trace("0x%04x JSRR: br=%03b", pc, br)
			cpu.internalRegisters.pc = reg[br]
		}

	case OpLD:
		dr := (instruction >> 9) & 0b111
		pcoffset9 := instruction & 0x1FF
		cpu.trace("0x%04x LD: dr=%03b pcoffset9=0x%03x", pc, dr, pcoffset9)

		reg[dr] = cpu.memory.Read(pc + sext(pcoffset9, 9))
		cpu.updateFlags(dr)

	case OpLDI:
		dr := (instruction >> 9) & 0b111
		pcoffset9 := instruction & 0x1FF
		cpu.trace("0x%04x LDI: dr=%03b pcoffset9=0x%03x", pc, dr, pcoffset9)

		reg[dr] = cpu.memory.Read(cpu.memory.Read(pc + sext(pcoffset9, 9)))
		cpu.updateFlags(dr)

	case OpLDR:
		dr := (instruction >> 9) & 0b111
		br := (instruction >> 6) & 0b111
		offset6 := instruction & 0x3F
		cpu.trace("0x%04x LDR: dr=%03b br=%03b offset6=0x%02x", pc, dr, br, offset6)

		reg[dr] = cpu.memory.Read(reg[br] + sext(offset6, 6))
		cpu.updateFlags(dr)

	case OpLEA:
		dr := (instruction >> 9) & 0b111
		pcoffset9 := instruction & 0x1FF
		cpu.trace("0x%04x LEA: dr=%03b pcoffset9=0x%03x", pc, dr, pcoffset9)

		reg[dr] = pc + sext(pcoffset9, 9)
		cpu.updateFlags(dr)

	case OpST:
		sr := (instruction >> 9) & 0b111
		pcoffset9 := instruction & 0x1FF
		cpu.trace("0x%04x ST: sr=%03b pcoffset9=0x%03x", pc, sr, pcoffset9)

		cpu.memory.Write(pc+sext(pcoffset9, 9), reg[sr])

	case OpSTI:
		sr := (instruction >> 9) & 0b111
		pcoffset9 := instruction & 0x1FF
		cpu.trace("0x%04x STI: sr=%03b pcoffset9=0x%03x", pc, sr, pcoffset9)

		cpu.memory.Write(cpu.memory.Read(pc+sext(pcoffset9, 9)), reg[sr])

	case OpSTR:
		sr := (instruction >> 9) & 0b111
		br := (instruction >> 6) & 0b111
		offset6 := instruction & 0x3F
		cpu.trace("0x%04x STR: sr=%03b br=%03b offset6=0x%02x", pc, sr, br, offset6)

		cpu.memory.Write(reg[br]+sext(offset6, 6), reg[sr])

	case OpRTI, OpRES, OpTRAP:
		// Reserved opcodes share the trap path.
		cpu.trap(instruction)
	}
}

func (cpu *cpu) updateFlags(r Word) {
	switch v := cpu.generalPurposeRegisters[r&0b111]; {
	case v == 0:
		cpu.internalRegisters.cond = FlagZro
	case v>>15 != 0:
		cpu.internalRegisters.cond = FlagNeg
	default:
		cpu.internalRegisters.cond = FlagPos
	}
}

// sext sign extends the low bitCount bits of x to a full Word.
func sext(x, bitCount Word) Word {
	if (x>>(bitCount-1))&0b1 != 0 {
		x |= 0xFFFF << bitCount
	}
	return x
}
