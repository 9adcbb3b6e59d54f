package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/2over12/rlox"
)

func main() {
	switch len(os.Args) {
	case 1:
		runPrompt()
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: rlox [script]")
		os.Exit(64)
	}
}

// runFile executes a script file. The exit status is 65 if the script was
// rejected before running and 70 if it failed at runtime.
func runFile(path string) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(66)
	}
	src, err := rlox.DecodeSource(b)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(65)
	}
	if err := rlox.New().Run(src); err != nil {
		if err == rlox.ErrStatic {
			os.Exit(65)
		}
		os.Exit(70)
	}
}

// runPrompt reads and runs a line at a time. One interpreter runs every
// line, so definitions persist for the session, and an error on one line
// does not end it. The prompt appears only when standard input is a
// terminal.
func runPrompt() {
	in := rlox.New()
	tty := isTerminal(os.Stdin)
	stdin := bufio.NewScanner(os.Stdin)
	for {
		if tty {
			fmt.Print("> ")
		}
		if !stdin.Scan() {
			break
		}
		in.Run(stdin.Text())
	}
	if err := stdin.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if tty {
		fmt.Println()
	}
}
