package vm

import (
	"encoding/binary"
	"io"
	"log"
	"os"
)

// VM is one simulated machine: its memory and the cpu that owns it.
type VM struct {
	memory *Memory
	cpu    cpu
}

type config struct {
	keyboard Keyboard
	stdout   io.Writer
	tracer   *log.Logger
}

// Option configures a VM built by New.
type Option func(*config)

// WithKeyboard sets the device behind KBSR/KBDR and the input traps.
func WithKeyboard(keyboard Keyboard) Option {
	return func(c *config) { c.keyboard = keyboard }
}

// WithOutput sets where the output traps write.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.stdout = w }
}

// WithTracer logs every executed instruction to l.
func WithTracer(l *log.Logger) Option {
	return func(c *config) { c.tracer = l }
}

// New returns a VM with zeroed memory. Without options it uses the
// process's stdin and stdout.
func New(opts ...Option) *VM {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.keyboard == nil || cfg.stdout == nil {
		console := NewConsole(os.Stdin, os.Stdout)
		if cfg.keyboard == nil {
			cfg.keyboard = console
		}
		if cfg.stdout == nil {
			cfg.stdout = console
		}
	}

	mem := newMemory(cfg.keyboard)
	return &VM{
		memory: mem,
		cpu:    newCpu(mem, cfg.keyboard, cfg.stdout, cfg.tracer),
	}
}

// Run executes from UserSpaceStart with the condition register at zero and
// returns once the program halts.
func (vm *VM) Run() {
	vm.cpu.reset()
	vm.cpu.start()
}

// Memory exposes the address space, e.g. for a loader.
func (vm *VM) Memory() *Memory {
	return vm.memory
}

// Register returns general purpose register r.
func (vm *VM) Register(r int) Word {
	return vm.cpu.generalPurposeRegisters[r&0b111]
}

func (vm *VM) PC() Word {
	return vm.cpu.internalRegisters.pc
}

func (vm *VM) Cond() Flag {
	return vm.cpu.internalRegisters.cond
}

// LoadFile loads the image at path. See Load.
func (vm *VM) LoadFile(path string) (origin Word, n int, err error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, &ErrImage{Path: path, Err: err}
	}
	origin, n, err = vm.readProgramFile(file)
	if err != nil {
		return 0, 0, &ErrImage{Path: path, Err: err}
	}
	if vm.cpu.tracer != nil {
		vm.cpu.tracer.Printf("loaded %v: origin=0x%04x words=%d", path, origin, n)
	}
	return origin, n, nil
}

// Load reads a big-endian image: the origin word followed by the words to
// place from the origin onwards. It returns the origin and the number of
// words placed. Words past the end of memory are dropped.
func (vm *VM) Load(r io.Reader) (origin Word, n int, err error) {
	file, err := io.ReadAll(r)
	if err != nil {
		return 0, 0, err
	}
	return vm.readProgramFile(file)
}

func (vm *VM) readProgramFile(file []byte) (origin Word, n int, err error) {
	if len(file) < 4 {
		return 0, 0, ErrImageTooShort
	}

	origin = Word(binary.BigEndian.Uint16(file))
	maxRead := MemorySize - int(origin)

	for j := 2; j+1 < len(file) && n < maxRead; j += 2 {
		vm.memory.Write(origin+Word(n), Word(binary.BigEndian.Uint16(file[j:])))
		n++
	}
	return origin, n, nil
}
