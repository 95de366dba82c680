// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "groupmaker.log"
	defaultLogDirname  = "logs"
	defaultGroupSize   = 5
	defaultMode        = "random"
)

var (
	groupmakerHomeDir = btcutil.AppDataDir("groupmaker", false)
	defaultLogDir     = filepath.Join(groupmakerHomeDir, defaultLogDirname)

	// Default global config.
	cfg = &config{
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		OutDir:     ".",
	}
)

// config defines the global configuration options.
type config struct {
	LogDir        string `long:"logdir" description:"Directory to log output"`
	NoFileLogging bool   `long:"nofilelogging" description:"Disable file logging"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	OutDir        string `short:"o" long:"outdir" description:"Directory the output CSV files are written to"`
	Seed          uint64 `long:"seed" description:"Seed for the random node priorities, which makes the random grouping reproducible -- 0 picks a new seed on every run"`
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(groupmakerHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace":
		fallthrough
	case "debug":
		fallthrough
	case "info":
		fallthrough
	case "warn":
		fallthrough
	case "error":
		fallthrough
	case "critical":
		return true
	}
	return false
}

// errShowSubsystems is returned by parseAndSetDebugLevels when the special
// show level is requested.
var errShowSubsystems = errors.New("subsystems listed")

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// Special show command to list supported subsystems.
	if debugLevel == "show" {
		fmt.Printf("Supported subsystems %v\n", supportedSubsystems())
		return errShowSubsystems
	}

	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		setLogLevels(debugLevel)

		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsytems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// setupGlobalConfig examines the global configuration options for any
// conditions which are invalid as well as performs any addition setup
// necessary after the initial parse, such as starting the log rotator.
func setupGlobalConfig() error {
	// Set the default log level before anything else so the subsystem
	// specific levels override it.
	setLogLevels(defaultLogLevel)
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return err
	}

	cfg.OutDir = cleanAndExpandPath(cfg.OutDir)
	if err := os.MkdirAll(cfg.OutDir, 0700); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if cfg.NoFileLogging {
		return nil
	}
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	return initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
}

// prioritySource returns the source of treap node priorities selected by the
// seed option.  A nil source makes the treap use the process-wide generator.
func prioritySource() rand.Source {
	if cfg.Seed == 0 {
		return nil
	}
	log.Debugf("Using priority seed %d", cfg.Seed)
	return rand.NewPCG(cfg.Seed, cfg.Seed)
}

// outputPath returns the path of the named output file inside the output
// directory.
func outputPath(name string) string {
	return filepath.Join(cfg.OutDir, name)
}
