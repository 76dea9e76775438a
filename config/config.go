// Package config wires registered defaults, the TOML config file and
// environment variables into the global viper instance.
package config

import (
	"strings"

	"github.com/vgrab-cli/vgrab/constant"
	"github.com/vgrab-cli/vgrab/filesystem"
	"github.com/vgrab-cli/vgrab/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps dotted config keys to their environment variable form,
// e.g. download.path becomes VGRAB_DOWNLOAD_PATH with the prefix applied.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, environment bindings and the config file, in that
// order of increasing precedence. A missing config file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Vgrab)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Vgrab)
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
