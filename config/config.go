// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/curtain-cli/curtain/constant"
	"github.com/curtain-cli/curtain/filesystem"
	"github.com/curtain-cli/curtain/where"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Curtain)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Curtain)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// Watch calls onChange with the changed keys whenever the config file is written.
// It does nothing when no config file was loaded.
func Watch(onChange func(changed []string)) {
	if viper.ConfigFileUsed() == "" {
		return
	}

	snapshot := settings()
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		current := settings()
		changed := Diff(snapshot, current)
		snapshot = current
		if len(changed) > 0 {
			onChange(changed)
		}
	})
	viper.WatchConfig()
}

func settings() map[string]any {
	values := make(map[string]any, len(Default))
	for name := range Default {
		values[name] = viper.Get(name)
	}
	return values
}
