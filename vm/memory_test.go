package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryReadWrite(t *testing.T) {
	assert := assert.New(t)

	mem := newMemory(&scriptedKeyboard{})
	for _, addr := range []Word{0x0000, 0x3000, KBDR, 0xFFFF} {
		assert.Equal(Word(0), mem.Read(addr))
		mem.Write(addr, addr^0xA5A5)
		assert.Equal(addr^0xA5A5, mem.Read(addr))
	}
}

func TestMemoryKeyboardStatus(t *testing.T) {
	assert := assert.New(t)

	kb := &scriptedKeyboard{input: []byte("a"), delay: 1}
	mem := newMemory(kb)

	assert.Equal(Word(0), mem.Read(KBSR))
	assert.Equal(1, kb.polls)

	assert.Equal(kbsrReady, mem.Read(KBSR))
	assert.Equal(Word('a'), mem.Read(KBDR))

	// Reading KBDR does not poll.
	assert.Equal(Word('a'), mem.Read(KBDR))
	assert.Equal(2, kb.polls)

	// Input is drained, so the next poll clears the status.
	assert.Equal(Word(0), mem.Read(KBSR))
	assert.Equal(Word('a'), mem.Read(KBDR))
}

func TestMemoryKeyboardWriteNotIntercepted(t *testing.T) {
	assert := assert.New(t)

	kb := &scriptedKeyboard{input: []byte("z")}
	mem := newMemory(kb)

	mem.Write(KBSR, 0x1234)
	mem.Write(KBDR, 0x5678)
	assert.Equal(0, kb.polls)
	assert.Equal(Word(0x5678), mem.Read(KBDR))
	assert.Equal([]byte("z"), kb.input)
}

func TestMemoryKeyboardReadError(t *testing.T) {
	assert := assert.New(t)

	mem := newMemory(brokenKeyboard{})
	assert.Equal(kbsrReady, mem.Read(KBSR))
	assert.Equal(eofChar, mem.Read(KBDR))
}
