package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/fga-eps-mds/2023-1-CAPJu-Front/commonGo"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/common"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/config"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/engine"
	"github.com/fga-eps-mds/2023-1-CAPJu-Front/services/fetcher/factory"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"
)

const (
	defaultLogsPath      = "logs"
	logFilePrefix        = "sonar-metrics"
	logFileLifeSpanInSec = 86400 // 24h
	logFileLifeSpanInMB  = 1024  // 1GB
	defaultEnvFile       = "./.env"
)

// appVersion should be populated at build time using ldflags
// Usage examples:
// Linux/macOS:
//
//	go build -v -ldflags="-X main.appVersion=$(git describe --all | cut -c7-32)
var appVersion = "undefined"
var fileLogging commonGo.FileLoggingHandler

// errMissingArguments is returned when the repository name or version is not provided
var errMissingArguments = errors.New("expected 2 arguments: <repositoryName> <repositoryVersion>")

var (
	fetcherHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}} {{.ArgsUsage}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`

	log = logger.GetOrCreate("main")

	// logLevel defines the logger level
	logLevel = cli.StringFlag{
		Name: "log-level",
		Usage: "This flag specifies the logger `level(s)`. It can contain multiple comma-separated value. For example" +
			", if set to *:INFO the logs for all packages will have the INFO level. However, if set to *:INFO,client:DEBUG" +
			" the logs for all packages will have the INFO level, excepting the client package which will receive a DEBUG" +
			" log level.",
		Value: "*:" + logger.LogInfo.String(),
	}
	// logFile is used when the log output needs to be logged in a file
	logSaveFile = cli.BoolFlag{
		Name:  "log-save",
		Usage: "Boolean option for enabling log saving. If set, it will automatically save all the logs into a file.",
	}
	// workingDirectory defines a flag for the path for the working directory.
	workingDirectory = cli.StringFlag{
		Name:  "working-directory",
		Usage: "This flag specifies the `directory` where the logs will be stored.",
		Value: "",
	}
	// configFile defines the optional TOML configuration
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "The optional `path` of a TOML config file. When missing, the built-in SonarCloud defaults are used.",
		Value: "",
	}
	// envFile defines the optional .env file holding overrides
	envFile = cli.StringFlag{
		Name:  "env-file",
		Usage: "The optional `path` of a .env file holding SONAR_METRICS_* overrides.",
		Value: defaultEnvFile,
	}
)

func main() {
	err := redirectLogs(os.Stderr)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	app := newApp(os.Stdout, os.Stderr)

	defer func() {
		if fileLogging != nil {
			_ = fileLogging.Close()
		}
	}()

	err = app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

// redirectLogs replaces the default console observer so that only the snapshot filename reaches stdout
func redirectLogs(w io.Writer) error {
	logger.ClearLogObservers()

	return logger.AddLogObserver(w, &logger.ConsoleFormatter{})
}

func newApp(stdout io.Writer, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	cli.AppHelpTemplate = fetcherHelpTemplate
	app.Name = "SonarCloud metrics fetcher"
	app.Version = fmt.Sprintf("%s/%s/%s-%s", appVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "Fetches the SonarCloud metrics of a repository and stores them in a timestamped JSON file"
	app.ArgsUsage = "<repositoryName> <repositoryVersion>"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		logLevel,
		logSaveFile,
		workingDirectory,
		configFile,
		envFile,
	}
	app.Authors = []cli.Author{
		{
			Name: "fga-eps-mds",
		},
	}

	app.Action = run

	return app
}

func run(ctx *cli.Context) error {
	query, err := parseQuery(ctx.Args())
	if err != nil {
		return err
	}

	saveLogFile := ctx.GlobalBool(logSaveFile.Name)
	workingDir := ctx.GlobalString(workingDirectory.Name)

	err = logger.SetLogLevel(ctx.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	fileLogging, err = commonGo.AttachFileLogger(log, defaultLogsPath, logFilePrefix, saveLogFile, workingDir)
	if err != nil {
		return err
	}

	if !check.IfNil(fileLogging) {
		timeLogLifeSpan := time.Second * time.Duration(logFileLifeSpanInSec)
		sizeLogLifeSpanInMB := uint64(logFileLifeSpanInMB)
		err = fileLogging.ChangeFileLifeSpan(timeLogLifeSpan, sizeLogLifeSpanInMB)
		if err != nil {
			return err
		}
	}

	log.Debug("starting metrics fetcher", "version", appVersion, "pid", os.Getpid())

	err = commonGo.LoadOptionalEnvFile(ctx.GlobalString(envFile.Name))
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(ctx.GlobalString(configFile.Name))
	if err != nil {
		return err
	}
	config.ApplyEnvOverrides(cfg)

	components, err := factory.NewComponentsHandler(*cfg, ctx.App.Writer)
	if err != nil {
		return err
	}
	defer components.Close()

	_, err = components.GetEngine().Process(context.Background(), query)

	return err
}

func parseQuery(args cli.Args) (common.MetricsQuery, error) {
	if len(args) < 2 {
		return common.MetricsQuery{}, errMissingArguments
	}
	if len(args.Get(0)) == 0 {
		return common.MetricsQuery{}, engine.ErrEmptyRepositoryName
	}

	return common.MetricsQuery{
		RepositoryName:    args.Get(0),
		RepositoryVersion: args.Get(1),
	}, nil
}
