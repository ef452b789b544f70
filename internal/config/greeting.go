package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"coffeeapi/internal/model"
)

// GreetingPrefix is the configuration prefix bound into model.Greeting.
const GreetingPrefix = "greeting"

var greetingKeys = []string{GreetingPrefix + ".name", GreetingPrefix + ".coffee"}

// NewViper builds the key/value source for application settings.
//
// Sources, lowest to highest precedence: empty defaults, the config file,
// environment variables (greeting.name -> GREETING_NAME) and flags.
// When configFile is empty an application.{yaml,json,toml} file in the
// working directory is used if present.
func NewViper(configFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	for _, k := range greetingKeys {
		v.SetDefault(k, "")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("application")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if flags != nil {
		for _, k := range greetingKeys {
			f := flags.Lookup(k)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(k, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", k, err)
			}
		}
	}

	return v, nil
}

// BindGreeting unmarshals everything under the greeting prefix.
// Missing keys yield empty strings.
func BindGreeting(v *viper.Viper) (model.Greeting, error) {
	var wrapper struct {
		Greeting model.Greeting `mapstructure:"greeting"`
	}
	if err := v.Unmarshal(&wrapper); err != nil {
		return model.Greeting{}, fmt.Errorf("bind %s: %w", GreetingPrefix, err)
	}
	return wrapper.Greeting, nil
}

// RegisterGreetingFlags adds --greeting.name and --greeting.coffee to fs.
func RegisterGreetingFlags(fs *pflag.FlagSet) {
	fs.String(GreetingPrefix+".name", "", "value returned by GET /greeting")
	fs.String(GreetingPrefix+".coffee", "", "value returned by GET /greeting/coffee")
}
