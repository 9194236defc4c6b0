package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/astrokit/streakfinder/internal/pipeline"
	"github.com/astrokit/streakfinder/pkg/streak"
)

const (
	configFileName = "streakfinder"
	configFileType = "yaml"
)

// Config keys, shared between the YAML config file and the detect flags.
const (
	cfgKeyContourThreshold = "contour-threshold"
	cfgKeyClipSigma        = "clip-sigma"
	cfgKeySmoothSigma      = "smooth-sigma"
	cfgKeyMinPoints        = "min-points"
	cfgKeyShapeMax         = "shape-max"
	cfgKeyRadiusDevMin     = "radius-dev-min"
	cfgKeyAreaMin          = "area-min"
	cfgKeyAreaMax          = "area-max"
	cfgKeyPerimeterMin     = "perimeter-min"
	cfgKeySlopeTolerance   = "slope-tolerance"
	cfgKeyOffsetMax        = "offset-max"
	cfgKeyOutput           = "output"
)

// loadConfig builds the viper instance backing a run. Defaults come from
// pipeline.DefaultConfig. An explicit --config file must exist; a missing
// streakfinder.yaml in the working directory is not an error.
func loadConfig(configFile string) (*viper.Viper, error) {
	v := viper.New()

	def := pipeline.DefaultConfig()
	v.SetDefault(cfgKeyContourThreshold, def.ContourThreshold)
	v.SetDefault(cfgKeyClipSigma, def.ClipSigma)
	v.SetDefault(cfgKeySmoothSigma, def.SmoothSigma)
	v.SetDefault(cfgKeyMinPoints, def.Params.MinPoints)
	v.SetDefault(cfgKeyShapeMax, def.Params.ShapeFactorMax)
	v.SetDefault(cfgKeyRadiusDevMin, def.Params.RadiusDeviationMin)
	v.SetDefault(cfgKeyAreaMin, def.Params.AreaMin)
	v.SetDefault(cfgKeyAreaMax, def.Params.AreaMax)
	v.SetDefault(cfgKeyPerimeterMin, def.Params.PerimeterMin)
	v.SetDefault(cfgKeySlopeTolerance, def.Params.SlopeToleranceDeg)
	v.SetDefault(cfgKeyOffsetMax, def.Params.MaxColinearOffset)
	v.SetDefault(cfgKeyOutput, def.OutputDir)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return v, nil
}

// pipelineConfig assembles the detection configuration from the resolved
// settings.
func pipelineConfig(v *viper.Viper) pipeline.Config {
	return pipeline.Config{
		ContourThreshold: v.GetFloat64(cfgKeyContourThreshold),
		ClipSigma:        v.GetFloat64(cfgKeyClipSigma),
		SmoothSigma:      v.GetFloat64(cfgKeySmoothSigma),
		Params: streak.Params{
			MinPoints:          v.GetInt(cfgKeyMinPoints),
			ShapeFactorMax:     v.GetFloat64(cfgKeyShapeMax),
			RadiusDeviationMin: v.GetFloat64(cfgKeyRadiusDevMin),
			AreaMin:            v.GetFloat64(cfgKeyAreaMin),
			AreaMax:            v.GetFloat64(cfgKeyAreaMax),
			PerimeterMin:       v.GetFloat64(cfgKeyPerimeterMin),
			SlopeToleranceDeg:  v.GetFloat64(cfgKeySlopeTolerance),
			MaxColinearOffset:  v.GetFloat64(cfgKeyOffsetMax),
		},
		OutputDir: v.GetString(cfgKeyOutput),
	}
}
