package cli

import (
	"errors"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/preston-bernstein/player-lookup/internal/config"
)

const configName = ".player-lookup"

// Config file keys. Flags bind to the same keys so a flag beats the file.
const (
	keyProvider       = "provider"
	keyBaseURL        = "base_url"
	keyTimeout        = "timeout"
	keyRetryMax       = "retry_max"
	keyGroupPreview   = "group_preview"
	keyInitialLimit   = "initial_limit"
	keyDiscardStale   = "discard_stale"
	keyResetExpansion = "reset_expansion"
	keyCollateLang    = "collate_lang"
	keyMetricsEnabled = "metrics.enabled"
	keyMetricsPort    = "metrics.port"
	keyLogLevel       = "log_level"
	keyLogFormat      = "log_format"
)

// loadSettings layers the config file and flags over the environment:
// flag > config file > env > built-in default.
func loadSettings(cfgFile string, flags *pflag.FlagSet) (config.Config, error) {
	base := config.Load()
	v := viper.New()

	v.SetDefault(keyProvider, base.Provider)
	v.SetDefault(keyBaseURL, base.PlayerAPI.BaseURL)
	v.SetDefault(keyTimeout, base.PlayerAPI.Timeout)
	v.SetDefault(keyRetryMax, base.PlayerAPI.RetryMax)
	v.SetDefault(keyGroupPreview, base.Lookup.GroupPreview)
	v.SetDefault(keyInitialLimit, base.Lookup.InitialLimit)
	v.SetDefault(keyDiscardStale, base.Lookup.DiscardStale)
	v.SetDefault(keyResetExpansion, base.Lookup.ResetExpansion)
	v.SetDefault(keyCollateLang, base.Lookup.CollateLanguage)
	v.SetDefault(keyMetricsEnabled, base.Metrics.Enabled)
	v.SetDefault(keyMetricsPort, base.Metrics.Port)
	v.SetDefault(keyLogLevel, base.Log.Level)
	v.SetDefault(keyLogFormat, base.Log.Format)

	if err := readConfigFile(v, cfgFile); err != nil {
		return config.Config{}, err
	}
	if flags != nil {
		for key, name := range map[string]string{
			keyProvider: "provider",
			keyBaseURL:  "base-url",
			keyLogLevel: "loglevel",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return config.Config{}, err
				}
			}
		}
	}

	cfg := base
	cfg.Provider = v.GetString(keyProvider)
	cfg.PlayerAPI.BaseURL = v.GetString(keyBaseURL)
	cfg.PlayerAPI.Timeout = v.GetDuration(keyTimeout)
	cfg.PlayerAPI.RetryMax = max(v.GetInt(keyRetryMax), 0)
	cfg.Lookup.GroupPreview = v.GetInt(keyGroupPreview)
	cfg.Lookup.InitialLimit = v.GetInt(keyInitialLimit)
	cfg.Lookup.DiscardStale = v.GetBool(keyDiscardStale)
	cfg.Lookup.ResetExpansion = v.GetBool(keyResetExpansion)
	cfg.Lookup.CollateLanguage = v.GetString(keyCollateLang)
	cfg.Metrics.Enabled = v.GetBool(keyMetricsEnabled)
	cfg.Metrics.Port = v.GetString(keyMetricsPort)
	cfg.Log.Level = v.GetString(keyLogLevel)
	cfg.Log.Format = v.GetString(keyLogFormat)
	return cfg, nil
}

// readConfigFile reads cfgFile, or $HOME/.player-lookup.yaml when cfgFile is
// empty. A missing default file is not an error; a missing explicit one is.
func readConfigFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		return v.ReadInConfig()
	}

	home, err := homedir.Dir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}
