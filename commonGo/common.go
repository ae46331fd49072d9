package commonGo

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-logger-go/file"
)

// AttachFileLogger attaches, if required, a log file
func AttachFileLogger(
	log logger.Logger,
	defaultLogsPath string,
	logFilePrefix string,
	saveLogFile bool,
	workingDir string) (FileLoggingHandler, error) {
	var err error
	var logFile FileLoggingHandler
	if saveLogFile {
		argsFileLogging := file.ArgsFileLogging{
			WorkingDir:      workingDir,
			DefaultLogsPath: defaultLogsPath,
			LogFilePrefix:   logFilePrefix,
		}
		logFile, err = file.NewFileLogging(argsFileLogging)
		if err != nil {
			return nil, fmt.Errorf("%w creating a log file", err)
		}
	}

	err = logger.SetDisplayByteSlice(logger.ToHex)
	log.LogIfError(err)

	return logFile, nil
}

// LoadOptionalEnvFile loads the provided .env file into the process environment. A missing file is not an error,
// the values already present in the environment are never overwritten.
func LoadOptionalEnvFile(envFile string) error {
	if len(envFile) == 0 {
		return nil
	}

	_, err := os.Stat(envFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	return godotenv.Load(envFile)
}

// ReadEnvValues fills the provided map with the values found in the environment for its keys. Keys that are not
// set keep their current (default) value.
func ReadEnvValues(m map[string]string) {
	for k := range m {
		val := os.Getenv(k)
		if len(val) == 0 {
			continue
		}

		m[k] = val
	}
}
