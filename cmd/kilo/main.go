package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/kilo/editor"
	"github.com/lixenwraith/kilo/terminal"
)

var debugFlag = flag.Bool("debug", false, "Write a diagnostic log under "+logDir+"/")

func main() {
	// Panic recovery: restore the terminal to a sane state even if the
	// viewer crashes mid-frame
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Use \r\n in case raw mode output was still active
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mKILO CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(flag.Arg(0)); err != nil {
		log.Printf("Fatal: %v", err)
		terminal.ClearScreen(os.Stdout)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run owns the raw-mode lifecycle: the terminal is restored on every
// return path, and a restore failure is reported like any other fatal
// error.
func run(path string) (err error) {
	term, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := term.Close(); err == nil {
			err = cerr
		}
	}()

	e, err := editor.New(term)
	if err != nil {
		return err
	}
	if path != "" {
		if err := e.OpenFile(path); err != nil {
			return err
		}
	}
	return e.Run()
}
