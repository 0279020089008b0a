package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	jay "github.com/jaylang/jay"
)

const (
	appName     = "jay"
	historyFile = ".jay_history"
	prompt      = "   "
)

var banner = fmt.Sprintf("jay %s, a tiny J-like array calculator\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit, :help for the verb table.", jay.Version)

const helpText = `Verbs can be used monadically (prefix) or dyadically (infix).

  verb  monadic                 dyadic
   +    identity:  +1 2 3       addition:     1 2 3 + 10
   ~    negate:    ~5           -
   -    negate:    -5           subtraction:  5 - 1 2 3
   #    tally:     #1 2 3       reshape:      2 3 # 1 2 3 4 5 6
   {    shape:     {2 2#1       index:        0 2 { 10 20 30 40
   ,    ravel:     ,2 2#1       concatenate:  1 2 , 3 4
   <    box:       <1 2 3       -

Evaluation is right-to-left: 1+2+3 is 1+(2+3); parentheses group.
Variables are the single letters a-z:  x = 2 3 # ~6

REPL commands:
  :help    Show this text
  :quit    Exit the REPL
`

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl())
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "version":
		fmt.Println(jay.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`jay %s (built %s)

Usage:
  %s               Start the REPL.
  %s repl          Start the REPL.
  %s run <file>    Evaluate a script line by line.
  %s version       Print the compiled version.

`, jay.Version, jay.BuildDate, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file>\n", appName)
		return 2
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, args[0], err)
		return 1
	}
	defer f.Close()

	ip := jay.NewInterpreter()
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out, err := ip.Evaluate(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: %s\n", args[0], lineNo, err.Error())
			return 1
		}
		fmt.Println(out)
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: reading %s: %v\n", appName, args[0], err)
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := jay.NewInterpreter()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}

		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit":
				return 0
			case ":help":
				fmt.Print(helpText)
			default:
				fmt.Println("unknown command. Type :quit to exit, :help for help.")
			}
			continue
		}

		out, err := ip.Evaluate(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(blue(out))
		ln.AppendHistory(code)
	}
}
