package config

import (
	"fmt"
	"strings"

	"github.com/btcq-org/rewardpool/constants"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. VOUCHER_SIGNER_LISTEN_ADDR.
const EnvPrefix = "VOUCHER_SIGNER"

type Config struct {
	ListenAddr    string `mapstructure:"listen_addr" json:"listen_addr"`
	RootPath      string `mapstructure:"root_path" json:"root_path"`
	KeyName       string `mapstructure:"key_name" json:"key_name"`
	JournalPath   string `mapstructure:"journal_path" json:"journal_path"`
	AddressPrefix string `mapstructure:"address_prefix" json:"address_prefix"`
	// AccountPrefix is the chain's account prefix for claimants, when it
	// differs from AddressPrefix
	AccountPrefix string `mapstructure:"account_prefix" json:"account_prefix"`
	// Denom, when set, restricts issued vouchers to one denomination
	Denom string `mapstructure:"denom" json:"denom"`
	// CompactOnInit compacts the journal when the service starts
	CompactOnInit bool `mapstructure:"compact_on_init" json:"compact_on_init"`
}

func DefaultConfig() *Config {
	return &Config{
		ListenAddr:    "127.0.0.1:8480",
		RootPath:      ".voucher-signer",
		KeyName:       "voucher-signer-key",
		JournalPath:   ".voucher-signer/journal",
		AddressPrefix: constants.DefaultAddressPrefix,
	}
}

// GetConfig loads the configuration from cfgFile (JSON), then environment
// overrides, falling back to DefaultConfig for anything unset. An empty
// cfgFile skips the file.
func GetConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("listen_addr", def.ListenAddr)
	v.SetDefault("root_path", def.RootPath)
	v.SetDefault("key_name", def.KeyName)
	v.SetDefault("journal_path", def.JournalPath)
	v.SetDefault("address_prefix", def.AddressPrefix)
	v.SetDefault("account_prefix", def.AccountPrefix)
	v.SetDefault("denom", def.Denom)
	v.SetDefault("compact_on_init", def.CompactOnInit)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if cfg.AddressPrefix == "" {
		return nil, fmt.Errorf("address_prefix cannot be empty")
	}
	return &cfg, nil
}

// AccountHRP returns the bech32 prefix claimant addresses must carry.
func (c Config) AccountHRP() string {
	if c.AccountPrefix != "" {
		return c.AccountPrefix
	}
	return c.AddressPrefix
}
