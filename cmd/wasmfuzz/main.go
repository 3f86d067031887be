// Command wasmfuzz reads an arbitrary byte blob and deterministically
// translates it into a valid WebAssembly module, the same "any bytes in,
// a valid module out" contract wasm-opt's --translate-to-fuzz pass offers,
// packaged as its own small CLI.
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdout, os.Stderr))
}

// doMain is separated from main for the purpose of unit testing.
func doMain(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	// pflag reads a single-dash word as a cluster of one-letter flags, so the
	// multi-letter aliases -ttf/-fe/-fb/-ejw are rewritten to their
	// double-dash spellings before parsing.
	norm := make([]string, len(args))
	copy(norm, args)
	for i, a := range norm {
		if a == "--" {
			break
		}
		switch a {
		case "-ttf", "-fe", "-fb", "-ejw":
			norm[i] = "-" + a
		}
	}
	cmd.SetArgs(norm)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}
