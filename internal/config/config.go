// Package config holds the command line surface of mirror. Every flag can
// also be set from a config file or a MIRROR_ environment variable.
package config

import (
	"github.com/Alia5/mirror/internal/cmd"

	"github.com/alecthomas/kong"
)

type CLI struct {
	ConfigFile string           `name:"config" help:"Config file (json, yaml or toml) loaded before the default locations" type:"path" env:"MIRROR_CONFIG"`
	Log        Log              `embed:"" prefix:"log."`
	Version    kong.VersionFlag `help:"Print version and exit"`

	Arity     cmd.Arity         `cmd:"" help:"Report the inferred arity of struct types"`
	Gen       cmd.Gen           `cmd:"" help:"Generate projection code"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Manage configuration files"`
}

type Log struct {
	Level    string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"MIRROR_LOG_LEVEL"`
	File     string `help:"Also write logs to this file" env:"MIRROR_LOG_FILE"`
	Format   string `help:"Console log format" enum:"auto,text,json" default:"auto" env:"MIRROR_LOG_FORMAT"`
	DumpFile string `help:"Write unformatted generated source to this file" env:"MIRROR_LOG_DUMP_FILE"`
}
