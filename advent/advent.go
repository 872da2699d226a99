package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

func main() {
	log.SetFlags(0)

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configFile := fs.String("config", "", "INI config file (default $ADVENT_CONFIG, then ~/.advent.ini)")
	profileFile := fs.String("fgprof", "", "Write an fgprof profile of the run to this file")
	fs.Usage = func() { usage(fs) }
	fs.Parse(os.Args[1:])
	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}

	fn, ok := solutions[fs.Arg(0)]
	if !ok {
		log.Fatalf("unknown solution %q", fs.Arg(0))
	}
	var err error
	cfg, err = loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	var stop func() error
	if *profileFile != "" {
		stop, err = startProfile(*profileFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	err = fn(fs.Args()[1:])
	if stop != nil {
		if err := stop(); err != nil {
			log.Println("Error writing profile:", err)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [args...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range solutionNames() {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	fs.PrintDefaults()
}

var solutions = make(map[string]func([]string) error)

func register(name string, fn func([]string) error) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	splitName(name) // validate
	solutions[name] = fn
}

func solutionNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	y0, d0, s0 := splitName(name0)
	y1, d1, s1 := splitName(name1)
	if y0 != y1 {
		return y0 < y1
	}
	if d0 != d1 {
		return d0 < d1
	}
	return s0 < s1
}

// splitName splits a solution name such as "2021-10" or "2017-3b" into
// its year, day, and part suffix.
func splitName(name string) (year, day int, suffix string) {
	ys, rest, ok := strings.Cut(name, "-")
	if !ok {
		panic(fmt.Sprintf("solution name %q is not of the form year-day", name))
	}
	i := 0
	for ; i < len(rest); i++ {
		c := rest[i]
		if c < '0' || c > '9' {
			break
		}
	}
	var err error
	year, err = strconv.Atoi(ys)
	if err != nil {
		panic(err)
	}
	day, err = strconv.Atoi(rest[:i])
	if err != nil {
		panic(err)
	}
	return year, day, rest[i:]
}
