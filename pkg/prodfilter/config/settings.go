// Package config loads the settings file and resolves filter thresholds.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

// ErrSettings indicates the settings could not be loaded at all.
var ErrSettings = eris.New("settings unavailable")

// EnvPrefix is the prefix of environment overrides, e.g. PRODFILTER_INPUT_PATH.
const EnvPrefix = "PRODFILTER"

// Settings keys as they appear in the INI file.
const (
	keyInput        = "paths.input"
	keyOutput       = "paths.output"
	keySaveFiles    = "images.save_files"
	keyAvailability = "minimum values.offers_0_availability"
	keyROI          = "minimum values.roi"
	keyOfferCount   = "minimum values.offercount"
	keyRating       = "minimum values.rating"
	keyReviewCount  = "minimum values.reviewcount"
	keyAmazonPrice  = "minimum values.amazonprice"
)

// Settings holds the raw, unresolved settings values.
type Settings struct {
	// InputPath is the directory holding input workbooks.
	InputPath string `validate:"required"`
	// OutputPath is the directory receiving filtered workbooks.
	OutputPath string `validate:"required"`
	// SaveImageFiles is the raw "save image files" flag.
	SaveImageFiles string
	// Availability is the raw availability directive.
	Availability string
	// MinROI, MinOfferCount, MinRating, MinReviewCount and MinAmazonPrice
	// are the raw threshold strings.
	MinROI         string
	MinOfferCount  string
	MinRating      string
	MinReviewCount string
	MinAmazonPrice string
}

// Options configures settings loading.
type Options struct {
	// SettingsFile is the INI settings path.
	SettingsFile string
	// EnvFile is an optional dotenv file loaded before env overrides.
	EnvFile string
	// InputPath overrides the input directory when non-empty.
	InputPath string
	// OutputPath overrides the output directory when non-empty.
	OutputPath string
	// SaveImages overrides the images flag when non-nil.
	SaveImages *bool
}

type envOverrides struct {
	InputPath  string `envconfig:"INPUT_PATH"`
	OutputPath string `envconfig:"OUTPUT_PATH"`
	SaveImages string `envconfig:"SAVE_IMAGES"`
}

// Load reads the settings file, then applies environment and explicit
// overrides and validates the result. Any failure here is fatal to a run.
func Load(opts Options) (*Settings, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !os.IsNotExist(err) {
			return nil, eris.Wrapf(err, "failed to load env file %s", opts.EnvFile)
		}
	}

	v := viper.New()
	v.SetConfigFile(opts.SettingsFile)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return nil, eris.Wrapf(ErrSettings, "read %s: %v", opts.SettingsFile, err)
	}

	s := fromViper(v)

	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, eris.Wrapf(ErrSettings, "environment overrides: %v", err)
	}
	s.apply(env.InputPath, env.OutputPath, env.SaveImages)

	var save string
	if opts.SaveImages != nil {
		save = "false"
		if *opts.SaveImages {
			save = "true"
		}
	}
	s.apply(opts.InputPath, opts.OutputPath, save)

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(s); err != nil {
		return nil, eris.Wrapf(ErrSettings, "invalid settings: %v", err)
	}

	return s, nil
}

func fromViper(v *viper.Viper) *Settings {
	get := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}
	return &Settings{
		InputPath:      get(keyInput),
		OutputPath:     get(keyOutput),
		SaveImageFiles: get(keySaveFiles),
		Availability:   get(keyAvailability),
		MinROI:         get(keyROI),
		MinOfferCount:  get(keyOfferCount),
		MinRating:      get(keyRating),
		MinReviewCount: get(keyReviewCount),
		MinAmazonPrice: get(keyAmazonPrice),
	}
}

func (s *Settings) apply(input, output, saveImages string) {
	if input != "" {
		s.InputPath = input
	}
	if output != "" {
		s.OutputPath = output
	}
	if saveImages != "" {
		s.SaveImageFiles = saveImages
	}
}
