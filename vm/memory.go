package vm

const MemorySize = 1 << 16

const (
	TrapVectorTableStart       = 0x0000
	InterruptVectorTableStart  = 0x0100
	SystemSpaceStart           = 0x0200
	UserSpaceStart             = 0x3000
	MemoryMappedRegistersStart = 0xFE00
)

// memory mapped register addresses
const (
	KBSR Word = MemoryMappedRegistersStart          /* keyboard status register */
	KBDR Word = MemoryMappedRegistersStart + 0x0002 /* keyboard data register */
)

// kbsrReady is the KBSR bit reporting that KBDR holds a fresh character.
const kbsrReady Word = 1 << 15

// eofChar is the character value reported when the host input fails.
const eofChar Word = 0xFFFF

// Memory is the 64K word address space. Reads of KBSR poll the keyboard and
// refresh the device registers.
type Memory struct {
	ram      [MemorySize]Word
	keyboard Keyboard
}

func newMemory(keyboard Keyboard) *Memory {
	return &Memory{keyboard: keyboard}
}

func (mem *Memory) Read(addr Word) Word {
	if addr == KBSR {
		if mem.keyboard.KeyAvailable() {
			mem.ram[KBSR] = kbsrReady
			mem.ram[KBDR] = readChar(mem.keyboard)
		} else {
			mem.ram[KBSR] = 0
		}
	}
	return mem.ram[addr]
}

func (mem *Memory) Write(addr, value Word) {
	mem.ram[addr] = value
}

// readChar reads one character from the keyboard, zero extended.
func readChar(keyboard Keyboard) Word {
	c, err := keyboard.ReadKey()
	if err != nil {
		return eofChar
	}
	return Word(c)
}
