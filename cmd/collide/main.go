// Command collide evaluates a collision scene file and reports checks whose
// result differs from their expectation.
//
// Usage:
//
//	collide [-debug] [-sample n] -scene arena.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mysimplegame/geom/internal/scene"
)

var (
	scenePath = flag.String("scene", "", "scene file (YAML)")
	debug     = flag.Bool("debug", false, "human-readable debug logging")
	samples   = flag.Int("sample", scene.DefaultSteps, "steps for samples that don't set their own")
)

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopmentConfig().Build()
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

func main() {
	flag.Parse()
	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "usage: collide [-debug] [-sample n] -scene file")
		flag.PrintDefaults()
		os.Exit(2)
	}

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "building logger:", err)
		os.Exit(2)
	}

	code := run(log, *scenePath, *samples)
	_ = log.Sync()
	os.Exit(code)
}

func run(log *zap.Logger, path string, steps int) int {
	f, err := os.Open(path)
	if err != nil {
		log.Error("opening scene", zap.Error(err))
		return 2
	}
	defer f.Close()

	s, err := scene.LoadYAML(f)
	if err != nil {
		log.Error("decoding scene", zap.String("path", path), zap.Error(err))
		return 2
	}

	r := scene.Runner{Log: log, Steps: steps}
	rep, err := r.Run(s)
	if err != nil {
		log.Error("running scene", zap.String("path", path), zap.Error(err))
		return 2
	}

	log.Info("scene done",
		zap.String("path", path),
		zap.Int("checks", len(rep.Results)),
		zap.Int("samples", len(rep.Samples)),
		zap.Int("mismatches", rep.Mismatches))
	if rep.Mismatches > 0 {
		return 1
	}
	return 0
}
