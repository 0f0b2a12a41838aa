package vm

// TrapVector selects a system call in the low byte of a TRAP instruction.
type TrapVector Word

//go:generate stringer -type=TrapVector -trimprefix=Trap

const (
	TrapGETC  TrapVector = 0x20 /* get character from keyboard, not echoed onto the terminal */
	TrapOUT   TrapVector = 0x21 /* output a character */
	TrapPUTS  TrapVector = 0x22 /* output a word string */
	TrapIN    TrapVector = 0x23 /* get character from keyboard, echoed onto the terminal */
	TrapPUTSP TrapVector = 0x24 /* output a byte string */
	TrapHALT  TrapVector = 0x25 /* halt the program */
)

const (
	inPrompt   = "Enter a character: "
	haltNotice = "HALT\n"
)

func (cpu *cpu) trap(instruction Word) {
	vector := TrapVector(instruction & 0xFF)
	cpu.trace("0x%04x TRAP: %v", cpu.internalRegisters.pc, vector)

	cpu.generalPurposeRegisters[R7] = cpu.internalRegisters.pc

	switch vector {
	case TrapGETC:
		cpu.generalPurposeRegisters[R0] = readChar(cpu.keyboard)
		cpu.updateFlags(R0)

	case TrapOUT:
		cpu.write([]byte{byte(cpu.generalPurposeRegisters[R0])})

	case TrapPUTS:
		var out []byte
		addr := cpu.generalPurposeRegisters[R0]
		for i := 0; i < MemorySize; i++ {
			c := cpu.memory.Read(addr)
			if c == 0 {
				break
			}
			out = append(out, byte(c))
			addr++
		}
		cpu.write(out)

	case TrapIN:
		cpu.write([]byte(inPrompt))
		c := readChar(cpu.keyboard)
		if c != eofChar {
			cpu.write([]byte{byte(c)})
		}
		cpu.generalPurposeRegisters[R0] = c
		cpu.updateFlags(R0)

	case TrapPUTSP:
		var out []byte
		addr := cpu.generalPurposeRegisters[R0]
		for i := 0; i < MemorySize; i++ {
			w := cpu.memory.Read(addr)
			if w&0xFF == 0 {
				break
			}
			out = append(out, byte(w))
			if hi := byte(w >> 8); hi != 0 {
				out = append(out, hi)
			}
			addr++
		}
		cpu.write(out)

	case TrapHALT:
		cpu.write([]byte(haltNotice))
		cpu.stop()

	default:
		cpu.trace("0x%04x TRAP: unknown vector 0x%02x ignored", cpu.internalRegisters.pc, Word(vector))
	}
}

// write sends p to the host. Output failures never stop the machine.
func (cpu *cpu) write(p []byte) {
	if len(p) == 0 {
		return
	}
	if _, err := cpu.stdoutWriter.Write(p); err != nil {
		cpu.trace("error writing output: %v", err)
	}
}
