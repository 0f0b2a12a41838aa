package vm

import (
	"bytes"
	"io"
)

// scriptedKeyboard hands out input one byte at a time. The first delay
// polls report no key.
type scriptedKeyboard struct {
	input []byte
	delay int
	polls int
}

func (kb *scriptedKeyboard) KeyAvailable() bool {
	kb.polls++
	if kb.polls <= kb.delay {
		return false
	}
	return len(kb.input) > 0
}

func (kb *scriptedKeyboard) ReadKey() (byte, error) {
	if len(kb.input) == 0 {
		return 0, io.EOF
	}
	c := kb.input[0]
	kb.input = kb.input[1:]
	return c, nil
}

// brokenKeyboard claims a key is ready but fails to deliver it.
type brokenKeyboard struct{}

func (brokenKeyboard) KeyAvailable() bool { return true }
func (brokenKeyboard) ReadKey() (byte, error) { return 0, io.ErrUnexpectedEOF }

func newTestVM(input string) (*VM, *scriptedKeyboard, *bytes.Buffer) {
	kb := &scriptedKeyboard{input: []byte(input)}
	out := &bytes.Buffer{}
	return New(WithKeyboard(kb), WithOutput(out)), kb, out
}

// place writes words consecutively from addr.
func (vm *VM) place(addr Word, words ...Word) {
	for i, w := range words {
		vm.memory.Write(addr+Word(i), w)
	}
}

func (vm *VM) setReg(r int, value Word) {
	vm.cpu.generalPurposeRegisters[r] = value
}

// exec runs a single instruction placed at the current PC.
func (vm *VM) exec(instruction Word) {
	vm.memory.Write(vm.cpu.internalRegisters.pc, instruction)
	vm.cpu.step()
}

func encode(op Opcode, fields Word) Word {
	return Word(op)<<12 | fields&0x0FFF
}

func encADD(dr, sr1, sr2 Word) Word { return encode(OpADD, dr<<9|sr1<<6|sr2) }
func encADDImm(dr, sr1 Word, imm int) Word {
	return encode(OpADD, dr<<9|sr1<<6|1<<5|Word(imm)&0x1F)
}
func encAND(dr, sr1, sr2 Word) Word { return encode(OpAND, dr<<9|sr1<<6|sr2) }
func encANDImm(dr, sr1 Word, imm int) Word {
	return encode(OpAND, dr<<9|sr1<<6|1<<5|Word(imm)&0x1F)
}
func encNOT(dr, sr Word) Word { return encode(OpNOT, dr<<9|sr<<6|0x3F) }
func encBR(nzp Word, off int) Word { return encode(OpBR, nzp<<9|Word(off)&0x1FF) }
func encJMP(base Word) Word { return encode(OpJMP, base<<6) }
func encJSR(off int) Word { return encode(OpJSR, 1<<11|Word(off)&0x7FF) }
func encJSRR(base Word) Word { return encode(OpJSR, base<<6) }
func encLD(dr Word, off int) Word { return encode(OpLD, dr<<9|Word(off)&0x1FF) }
func encLDI(dr Word, off int) Word { return encode(OpLDI, dr<<9|Word(off)&0x1FF) }
func encLEA(dr Word, off int) Word { return encode(OpLEA, dr<<9|Word(off)&0x1FF) }
func encST(sr Word, off int) Word { return encode(OpST, sr<<9|Word(off)&0x1FF) }
func encSTI(sr Word, off int) Word { return encode(OpSTI, sr<<9|Word(off)&0x1FF) }
func encTRAP(vector TrapVector) Word { return encode(OpTRAP, Word(vector)&0xFF) }
func encLDR(dr, base Word, off int) Word {
	return encode(OpLDR, dr<<9|base<<6|Word(off)&0x3F)
}
func encSTR(sr, base Word, off int) Word {
	return encode(OpSTR, sr<<9|base<<6|Word(off)&0x3F)
}
