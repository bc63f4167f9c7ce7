// Package xviper keeps the process wide settings on top of viper.
package xviper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshyorko/mansion/common"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ColorlessKey = `colorless`
	IconicKey    = `iconic`
	DebugKey     = `debug`
	TraceKey     = `trace`
	SilentKey    = `silent`

	envPrefix   = `MANSION`
	defaultName = `.mansion`
)

var (
	config = fresh()
)

func fresh() *viper.Viper {
	it := viper.New()
	it.SetEnvPrefix(envPrefix)
	it.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	it.AutomaticEnv()
	it.SetDefault(ColorlessKey, false)
	it.SetDefault(IconicKey, true)
	it.SetDefault(DebugKey, false)
	it.SetDefault(TraceKey, false)
	it.SetDefault(SilentKey, false)
	return it
}

// Reset drops every loaded value and binding.
func Reset() {
	config = fresh()
}

// Load reads settings from filename. Without a filename the optional
// $HOME/.mansion.yaml is used when it exists.
func Load(filename string) error {
	if len(filename) > 0 {
		config.SetConfigFile(filename)
		if err := config.ReadInConfig(); err != nil {
			return fmt.Errorf("reading settings %q: %w", filename, err)
		}
		common.Trace("Settings loaded from %q.", config.ConfigFileUsed())
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		common.Trace("No home directory for settings: %v", err)
		return nil
	}
	config.SetConfigName(defaultName)
	config.SetConfigType("yaml")
	config.AddConfigPath(home)
	err = config.ReadInConfig()
	var missing viper.ConfigFileNotFoundError
	if errors.As(err, &missing) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading settings %q: %w", filepath.Join(home, defaultName+".yaml"), err)
	}
	common.Trace("Settings loaded from %q.", config.ConfigFileUsed())
	return nil
}

// BindFlag makes an explicitly given command line flag win over file and
// environment values for key.
func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("binding %q: no such flag", key)
	}
	return config.BindPFlag(key, flag)
}

func ConfigFileUsed() string {
	return config.ConfigFileUsed()
}

func GetBool(key string) bool {
	return config.GetBool(key)
}
