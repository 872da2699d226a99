package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vaughan0/go-ini"
)

// cfg is loaded by main before any solution runs.
var cfg = new(config)

type config struct {
	// inputDir holds default puzzle inputs, laid out as <year>/<day>.txt.
	inputDir string
	verbose  bool
}

// loadConfig reads the INI config file at path. If path is empty, it tries
// $ADVENT_CONFIG and then ~/.advent.ini; a missing ~/.advent.ini is not an
// error.
func loadConfig(path string) (*config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv("ADVENT_CONFIG")
	}
	if path == "" {
		explicit = false
		home, err := os.UserHomeDir()
		if err != nil {
			return new(config), nil
		}
		path = filepath.Join(home, ".advent.ini")
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return new(config), nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	c, err := parseConfig(file)
	if err != nil {
		return nil, fmt.Errorf("bad config (%s): %s", path, err)
	}
	return c, nil
}

func parseConfig(file ini.File) (*config, error) {
	c := new(config)
	if dir, ok := file.Get("input", "dir"); ok {
		c.inputDir = dir
	}
	if v, ok := file.Get("output", "verbose"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("output.verbose: %s", err)
		}
		c.verbose = b
	}
	return c, nil
}

// inputPath returns the default input file for the named solution, if an
// input directory is configured.
func (c *config) inputPath(name string) (string, bool) {
	if c.inputDir == "" {
		return "", false
	}
	year, day, _ := splitName(name)
	return filepath.Join(c.inputDir, strconv.Itoa(year), strconv.Itoa(day)+".txt"), true
}
