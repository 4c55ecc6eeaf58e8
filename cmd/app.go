// Package cmd implements the exps CLI application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/menu"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

const (
	// EnvStoreFile is the env variable that holds the expense store path.
	EnvStoreFile = "EXPS_STORE_FILE"
	// EnvBackupDir is the env variable that holds the backup directory.
	EnvBackupDir = "EXPS_BACKUP_DIR"
	// EnvStrictAmounts is the env variable that enables strict amounts when true.
	EnvStrictAmounts = "EXPS_STRICT_AMOUNTS"
	// EnvVerbose is the env variable that enables debug logging when true.
	EnvVerbose = "EXPS_VERBOSE"
)

// Commands lists the subcommands, in help order.
var Commands = []subcommands.Command{
	&menuCmd{},
	&viewCmd{},
	&backupCmd{},
	&initCmd{},
	&queryCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	for _, cmd := range Commands {
		c.Register(cmd, "expenses")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", "", "Path to the expense store. Defaults to $"+EnvStoreFile+" or "+expenses.DefaultStoreFile+".")
var backupDir = flag.String("backup-dir", "", "Directory for backups. Defaults to $"+EnvBackupDir+" or "+expenses.DefaultBackupDir+".")
var strictAmounts = flag.Bool("strict-amounts", false, "Reject non-numeric amounts instead of recording them as 0.00. Defaults to $"+EnvStrictAmounts+".")
var Verbose = flag.Bool("v", false, "Log debug information to stderr. Defaults to $"+EnvVerbose+".")

// the standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// LoadEnv loads the .env file of the working directory, if any.
// Variables already set in the environment take precedence.
func LoadEnv() {
	_ = godotenv.Load()
}

// SetupLogger installs the default structured logger on stderr.
func SetupLogger() *slog.Logger {
	level := slog.LevelWarn
	if IsVerbose() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// StorePath returns the expense store file path.
func StorePath() string {
	return firstNonEmpty(*storeFile, os.Getenv(EnvStoreFile), expenses.DefaultStoreFile)
}

// BackupDir returns the backup directory.
func BackupDir() string {
	return firstNonEmpty(*backupDir, os.Getenv(EnvBackupDir), expenses.DefaultBackupDir)
}

// StrictAmounts reports whether non-numeric amounts are rejected.
func StrictAmounts() bool {
	return *strictAmounts || envBool(EnvStrictAmounts)
}

// IsVerbose reports whether debug logging is on.
func IsVerbose() bool {
	return *Verbose || envBool(EnvVerbose)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// envBool returns the boolean value of the env variable key, false if unset or invalid.
func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return v
}

// reportError prints err, and the operation it comes from, to stderr.
func reportError(err error) subcommands.ExitStatus {
	op := expenses.Operation(err)
	var merr *menu.Error
	if op == "" && errors.As(err, &merr) {
		op = merr.State.String()
	}
	if op == "" {
		op = "unknown"
	}
	fmt.Fprintf(stderr, "Error: %v\nMethod name: %s\n", err, op)
	slog.Debug("exiting", "error", err, "operation", op, "code", int(subcommands.ExitFailure))
	return subcommands.ExitFailure
}
