// Command algebra runs a JSON job of dense-matrix operations and prints the
// matrices its display steps select.
//
//	algebra -config job.json [-dev]
//	algebra -sample job.json
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/algebra/config"
)

func main() {
	configPath := flag.String("config", "", "path to the job file")
	samplePath := flag.String("sample", "", "write a sample job file to this path and exit")
	dev := flag.Bool("dev", false, "human-readable development logging")
	flag.Parse()

	level := config.LogLevelInfo.Zap()
	logger, err := newLogger(level, *dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err = run(logger, level, *configPath, *samplePath); err != nil {
		logger.Error("algebra failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger, level zap.AtomicLevel, configPath, samplePath string) error {
	if samplePath != "" {
		if err := config.CreateSample(samplePath); err != nil {
			return err
		}
		logger.Info("sample job written", zap.String("path", samplePath))
		return nil
	}
	if configPath == "" {
		return fmt.Errorf("one of -config or -sample is required")
	}

	raw, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	cfg, err := config.ParseConfig(raw)
	if err != nil {
		return err
	}
	level.SetLevel(cfg.LogLevel.Zap().Level())

	return Run(cfg, os.Stdout, logger)
}

// newLogger builds a production (JSON) or development (console) zap logger
// writing to stderr at the given level.
func newLogger(level zap.AtomicLevel, dev bool) (*zap.Logger, error) {
	var zc zap.Config
	if dev {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level
	return zc.Build()
}
