package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"
)

const (
	ConfigWidth          = "width"
	ConfigHeight         = "height"
	ConfigStepsPerSecond = "steps_per_second"
	ConfigAnimate        = "animate"
	ConfigStyled         = "styled"
	ConfigSeed           = "seed"
	ConfigGenerator      = "generator"
	ConfigSolver         = "solver"
	ConfigLogLevel       = "log_level"
	ConfigStressRuns     = "stress_runs"
	ConfigStressWorkers  = "stress_workers"
)

// MazeConfig is the validated view of the viper settings used by the binaries.
type MazeConfig struct {
	Width          int    `mapstructure:"width" validate:"gt=0"`
	Height         int    `mapstructure:"height" validate:"gt=0"`
	StepsPerSecond int    `mapstructure:"steps_per_second" validate:"gt=0,lte=1000"`
	Animate        bool   `mapstructure:"animate"`
	Styled         bool   `mapstructure:"styled"`
	Seed           int64  `mapstructure:"seed"`
	Generator      string `mapstructure:"generator" validate:"required,oneof=rds"`
	Solver         string `mapstructure:"solver" validate:"required,oneof=astar"`
	LogLevel       string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	StressRuns     int    `mapstructure:"stress_runs" validate:"gt=0"`
	StressWorkers  int    `mapstructure:"stress_workers" validate:"gt=0,lte=256"`
}

func SetDefaults() {
	viper.SetDefault(ConfigWidth, 20)
	viper.SetDefault(ConfigHeight, 10)
	viper.SetDefault(ConfigStepsPerSecond, 10)
	viper.SetDefault(ConfigAnimate, true)
	viper.SetDefault(ConfigStyled, true)
	viper.SetDefault(ConfigSeed, 0)
	viper.SetDefault(ConfigGenerator, "rds")
	viper.SetDefault(ConfigSolver, "astar")
	viper.SetDefault(ConfigLogLevel, "warn")
	viper.SetDefault(ConfigStressRuns, 200)
	viper.SetDefault(ConfigStressWorkers, 4)
}

// ReadConfig loads defaults, MAZEX_* env vars and an optional config file.
// A missing config file is not an error; a malformed one is.
func ReadConfig(configFile string) error {
	SetDefaults()
	viper.SetEnvPrefix("MAZEX")
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./data/")
		viper.AddConfigPath("$HOME/.mazex")
	}

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

// LoadMazeConfig unmarshals the current viper state and validates it.
func LoadMazeConfig() (MazeConfig, error) {
	var cfg MazeConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, WrapErrorf(err, ErrBadParamInput, "unable to decode config")
	}
	if err := ValidateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func ValidateConfig(cfg MazeConfig) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	vv := translateError(err, trans)
	vvString := []string{}
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	return WrapErrorf(nil, ErrBadParamInput, "validation error: %v", vvString)
}

func translateError(err error, trans ut.Translator) []error {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	errs := make([]error, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
