package vm

import (
	"bufio"
	goIO "io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Keyboard is the host input device behind KBSR/KBDR and the GETC and IN
// traps.
type Keyboard interface {
	// KeyAvailable reports whether ReadKey would return without blocking.
	KeyAvailable() bool
	// ReadKey blocks until a character is available.
	ReadKey() (byte, error)
}

// Console is a Keyboard and output writer backed by a host terminal.
type Console struct {
	stdin                  *os.File
	stdinReader            *bufio.Reader
	stdoutWriter           goIO.Writer
	originalTerminalConfig unix.Termios
	rawMode                bool
}

func NewConsole(stdin *os.File, stdout goIO.Writer) *Console {
	return &Console{
		stdin:        stdin,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
	}
}

func (c *Console) KeyAvailable() bool {
	if c.stdinReader.Buffered() > 0 {
		return true
	}

	fd := int(c.stdin.Fd())
	var readfds unix.FdSet
	readfds.Zero()
	readfds.Set(fd)
	timeout := unix.Timeval{}

	n, err := unix.Select(fd+1, &readfds, nil, nil, &timeout)
	return err == nil && n > 0
}

func (c *Console) ReadKey() (byte, error) {
	return c.stdinReader.ReadByte()
}

func (c *Console) Write(p []byte) (int, error) {
	return c.stdoutWriter.Write(p)
}

// EnableRawMode turns off line buffering and echo on the terminal. It does
// nothing when stdin is not a terminal.
func (c *Console) EnableRawMode() error {
	fd := c.stdin.Fd()
	if !term.IsTerminal(int(fd)) {
		return nil
	}

	if err := termios.Tcgetattr(fd, &c.originalTerminalConfig); err != nil {
		return err
	}
	newTermios := c.originalTerminalConfig
	newTermios.Lflag &^= unix.ICANON | unix.ECHO
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &newTermios); err != nil {
		return err
	}
	c.rawMode = true
	return nil
}

// DisableRawMode restores the terminal settings saved by EnableRawMode.
func (c *Console) DisableRawMode() error {
	if !c.rawMode {
		return nil
	}
	c.rawMode = false
	return termios.Tcsetattr(c.stdin.Fd(), termios.TCSANOW, &c.originalTerminalConfig)
}
