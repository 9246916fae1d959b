package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

const (
	EnvLedgerFile = "HL_LEDGER_FILE"
	EnvLogLevel   = "HL_LOG_LEVEL"
	EnvLogFormat  = "HL_LOG_FORMAT"
	EnvStyle      = "HL_STYLE"
	EnvVerbose    = "HL_VERBOSE"
)

// RunExtension attempts to find and execute an external hl-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "hl-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Debug().Err(err).Str("extension", name).Msg("external command not found")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv()...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv passes the effective configuration to extensions, so that the
// global flags given to hl apply to them too.
func extensionEnv() []string {
	return []string{
		EnvLedgerFile + "=" + config.LedgerFile,
		EnvLogLevel + "=" + config.LogLevel,
		EnvLogFormat + "=" + config.LogFormat,
		EnvStyle + "=" + config.Style,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}
