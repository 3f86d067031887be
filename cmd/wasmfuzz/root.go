package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wasmfuzz/translate/internal/entropy"
	"github.com/wasmfuzz/translate/internal/fuzzgen"
	"github.com/wasmfuzz/translate/internal/jswrapper"
	"github.com/wasmfuzz/translate/internal/wasmbinary"
	"github.com/wasmfuzz/translate/internal/wasmir"
	"github.com/wasmfuzz/translate/internal/wasmvalidate"
	"github.com/wasmfuzz/translate/internal/wattext"
)

type options struct {
	translateToFuzz bool
	emitText        bool
	debugInfo       bool
	output          string
	fuzzExec        bool
	fuzzBinary      bool
	emitJSWrapper   string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "wasmfuzz INFILE",
		Short:         "Translate an arbitrary byte blob into a valid WebAssembly module",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.BoolVarP(&opts.translateToFuzz, "translate-to-fuzz", "t", false,
		"Translate the input bytes into a valid module (the only pass this tool implements; wasm-opt itself supports many others)")
	cmd.Flags().BoolVar(&opts.translateToFuzz, "ttf", false, "Alias of --translate-to-fuzz")
	flags.BoolVarP(&opts.emitText, "emit-text", "S", false, "Emit WebAssembly text format instead of binary")
	flags.BoolVarP(&opts.debugInfo, "debuginfo", "g", false, "Print debug info about the generation to stderr")
	flags.StringVarP(&opts.output, "output", "o", "", "Write output to this path instead of stdout")
	flags.BoolVar(&opts.fuzzExec, "fuzz-exec", false, "Also emit a JS harness that executes every export")
	cmd.Flags().BoolVar(&opts.fuzzExec, "fe", false, "Alias of --fuzz-exec")
	flags.BoolVar(&opts.fuzzBinary, "fuzz-binary", false, "Also emit a JS harness targeting the binary output")
	cmd.Flags().BoolVar(&opts.fuzzBinary, "fb", false, "Alias of --fuzz-binary")
	flags.StringVar(&opts.emitJSWrapper, "emit-js-wrapper", "", "Write a JS harness that instantiates the module and calls every export to this path")
	cmd.Flags().StringVar(&opts.emitJSWrapper, "ejw", "", "Alias of --emit-js-wrapper")

	return cmd
}

func run(opts *options, infile string, stdout, stderr io.Writer) error {
	if !opts.translateToFuzz {
		return errors.New("wasmfuzz: pass --translate-to-fuzz (this tool implements no other pass)")
	}

	data, err := os.ReadFile(infile)
	if err != nil {
		return fmt.Errorf("wasmfuzz: reading %s: %w", infile, err)
	}

	cfg := fuzzgen.NewConfig()
	stream := entropy.New(data)
	module := fuzzgen.GenerateModule(cfg, stream)

	if opts.debugInfo {
		fmt.Fprintf(stderr, "wasmfuzz: read %d input bytes, generated %d function(s)\n", len(data), len(module.Functions))
	}

	if verr := wasmvalidate.Validate(module); verr != nil {
		fmt.Fprintln(stderr, "wasmfuzz: generated module failed validation (generator bug):")
		fmt.Fprintln(stderr, verr)
		// Dump the offending module so there is something to look at while
		// chasing the generator bug. Best effort.
		fmt.Fprintln(stderr, wattext.Serialize(module))
		return verr
	}

	if err := writeModule(opts, module, stdout); err != nil {
		return err
	}

	if opts.emitJSWrapper != "" || opts.fuzzExec || opts.fuzzBinary {
		return writeJSWrapper(opts, module, stdout)
	}
	return nil
}

// writeModule serializes module per opts.emitText, writing to opts.output
// if given, stdout otherwise.
func writeModule(opts *options, module *wasmir.Module, stdout io.Writer) error {
	var data []byte
	if opts.emitText {
		data = []byte(wattext.Serialize(module))
	} else {
		data = wasmbinary.Encode(module)
	}
	if opts.output == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(opts.output, data, 0o644)
}

// writeJSWrapper emits a JS harness alongside the module output: to the
// --emit-js-wrapper path when given, to opts.output+".js" when the module
// itself went to a file, or straight to stdout otherwise.
func writeJSWrapper(opts *options, module *wasmir.Module, stdout io.Writer) error {
	binPath := opts.output
	if binPath == "" {
		binPath = "a.wasm"
	}
	js := jswrapper.Generate(module, binPath)
	switch {
	case opts.emitJSWrapper != "":
		return os.WriteFile(opts.emitJSWrapper, []byte(js), 0o644)
	case opts.output != "":
		return os.WriteFile(opts.output+".js", []byte(js), 0o644)
	default:
		_, err := fmt.Fprint(stdout, js)
		return err
	}
}
