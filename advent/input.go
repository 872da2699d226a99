package main

import (
	"errors"
	"io"
	"os"

	"github.com/felixge/fgprof"
)

// openInput returns the input for the named solution: the file named by
// args, or else stdin. If stdin is a terminal and an input directory is
// configured, the default input file is used instead.
func openInput(name string, args []string) (io.ReadCloser, error) {
	switch len(args) {
	case 0:
	case 1:
		return os.Open(args[0])
	default:
		return nil, errors.New("need at most 1 arg (input file)")
	}
	if isTerminal(os.Stdin.Fd()) {
		if path, ok := cfg.inputPath(name); ok {
			return os.Open(path)
		}
	}
	return io.NopCloser(os.Stdin), nil
}

// startProfile starts an fgprof profile written to filename. The returned
// function stops profiling and closes the file.
func startProfile(filename string) (stop func() error, err error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		if err := stopProfile(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
