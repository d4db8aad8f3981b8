package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags mirrors the named flags into viper so SPIDER_-prefixed
// environment variables can override them.
func bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		if flag := flags.Lookup(name); flag != nil {
			_ = viper.BindPFlag(flag.Name, flag)
		}
	}
}
