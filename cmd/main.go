package main

import (
	"flag"
	"math"

	"github.com/roeezis/sgl"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "points.yaml", "path to the YAML point list")
	flag.Parse()

	cfg, err := LoadConfigFile(*configPath)
	if err != nil {
		bootstrap, _ := newLogger("info")
		bootstrap.Fatal("load config", zap.String("path", *configPath), zap.Error(err))
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	points := cfg.Point3s()
	total := walk(logger, points, cfg.Weight)
	logger.Info("path finished", zap.Int("points", len(points)), zap.Float64("length", total))

	translate(points, cfg.OffsetVector())
	for i, p := range points {
		logger.Debug("translated", zap.Int("index", i), zap.Stringer("point", p))
	}

	if math.IsNaN(total) {
		logger.Warn("path length is not a number")
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

// walk logs the distance and the blend at weight for each consecutive pair
// and returns the summed length.
func walk(logger *zap.Logger, points []sgl.Point3, weight float64) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		p, q := points[i-1], points[i]
		d := p.DistanceTo(q)
		total += d
		logger.Info("segment",
			zap.Stringer("from", p),
			zap.Stringer("to", q),
			zap.Float64("distance", d),
			zap.Stringer("blend", p.Affine(weight, q)),
		)
	}
	return total
}

func translate(points []sgl.Point3, offset sgl.Vector3) {
	for i := range points {
		points[i].PlusEquals(offset)
	}
}
