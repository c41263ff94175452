package console

import (
	"github.com/spf13/viper"
)

// Config carries the front end's settings.
type Config struct {
	ConfigFile      string `mapstructure:"config_file"`
	LogDB           string `mapstructure:"log_db"`     // audit database file name
	LogToDB         bool   `mapstructure:"log_to_db"`  // write audit events to SQLite
	APIListenAddr   string `mapstructure:"api_listen_address"`
	UppercaseOutput bool   `mapstructure:"uppercase_output"` // render hex output upper-case
}

func DefaultConfig() *Config {
	return &Config{
		ConfigFile:    "cofb.yaml",
		LogDB:         "cofb.db",
		APIListenAddr: ":7890",
	}
}

// LoadConfig loads configuration from file and environment, in that
// order of precedence. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("cofb")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/cofb-go/")
	viper.AddConfigPath("$HOME/.cofb-go")
	viper.SetEnvPrefix("COFB") // COFB_LOG_DB, COFB_API_LISTEN_ADDRESS, ...
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	} else {
		cfg.ConfigFile = viper.ConfigFileUsed()
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
