// Command lulu runs LC-3 program images.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tebeka/atexit"

	"github.com/aryanA101a/lulu/vm"
)

// exitInterrupted is the status after an interrupt, as a shell reports SIGINT.
const exitInterrupted = 130

func main() {
	log.SetPrefix("lulu: ")
	log.SetFlags(0)

	var (
		traceFlag = flag.Bool("trace", false, "log every executed instruction")
		logFlag   = flag.String("log", "", "write the trace to `file` instead of stderr")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-trace] [-log file] <image-file1> ...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}

	console := vm.NewConsole(os.Stdin, os.Stdout)
	opts := []vm.Option{vm.WithKeyboard(console), vm.WithOutput(console)}

	if *traceFlag {
		var w io.Writer = os.Stderr
		if *logFlag != "" {
			f, err := os.OpenFile(*logFlag, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			if err != nil {
				log.Fatalf("error opening file: %v", err)
			}
			atexit.Register(func() { f.Close() })
			w = f
		}
		opts = append(opts, vm.WithTracer(log.New(w, "", log.Lmicroseconds)))
	}

	machine := vm.New(opts...)
	for _, arg := range flag.Args() {
		if _, _, err := machine.LoadFile(arg); err != nil {
			atexit.Fatalf("failed to load image: %s: %v", arg, err)
		}
	}

	if err := console.EnableRawMode(); err != nil {
		atexit.Fatalf("enabling raw mode: %v", err)
	}
	atexit.Register(func() {
		if err := console.DisableRawMode(); err != nil {
			log.Printf("disabling raw mode: %v", err)
		}
	})

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stdout)
		atexit.Exit(exitInterrupted)
	}()

	machine.Run()
	atexit.Exit(0)
}
