// Command lebedev inspects, exports and verifies Lebedev quadrature rules.
//
// Usage:
//
//	lebedev catalog    [flags]
//	lebedev points     [flags]
//	lebedev generators [flags]
//	lebedev integrate  [flags] -i I -j J -k K
//	lebedev verify     [flags] [-all]
//
// Common flags: -config, -order, -degree, -format, -o, -workers, -radius,
// -tolerance, -log-level. Flags override the config file; LEBEDEV_LOG_*
// environment variables override both for logging.
package main

import (
	"fmt"
	"io"
	"os"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "lebedev: unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}

	return cmd(args[1:], stdout, stderr)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: lebedev <catalog|points|generators|integrate|verify> [flags]")
}
