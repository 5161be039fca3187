package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Will be set by go-build
var (
	Version string
	Rev     string
)

//go:embed coin_chat.example.yml
var exampleConfig string

// flag name -> config key, flags win over the config file
var flagKeys = map[string]string{
	"debug":      "debug",
	"timeout":    "timeout",
	"proxy":      "proxy",
	"api-url":    "api_url",
	"whole-word": "whole_word",
	"quote":      "quote",
	"show":       "show",
	"refresh":    "refresh",
	"list-coins": "list_coins",
	"telegram":   "telegram.enabled",
}

func Parse() *Config {
	// Set log format
	formatter := &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	}
	logrus.SetFormatter(formatter)
	logrus.SetOutput(colorable.NewColorableStderr()) // For Windows

	// .env is optional, it is where people usually keep their bot token
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("Failed to load .env file: %v", err)
	}

	showVersion := pflag.BoolP("version", "v", false, "Show version number")
	showHelp := pflag.BoolP("help", "h", false, "Show usage message")
	pflag.CommandLine.MarkHidden("help")
	var configFile string
	pflag.StringVarP(&configFile, "config-file", "c", "", `Config file path, use "--example-config-file <path>" `+
		"to generate an example config file,\n"+
		"by default coin-chat uses \"coin_chat.yml\" in current directory or $HOME as config file")
	var exampleConfigFile string
	pflag.StringVar(&exampleConfigFile, "example-config-file", "",
		"Generate example config file to the specified file path, by default it outputs to stdout")
	pflag.Lookup("example-config-file").NoOptDefVal = "-"
	defineFlags(pflag.CommandLine)
	pflag.CommandLine.SortFlags = false
	pflag.Usage = showUsageAndExit
	pflag.Parse()

	if *showHelp {
		showUsageAndExit()
	}

	if *showVersion {
		fmt.Fprintf(os.Stderr, "Version %s", Version)
		if Rev != "" {
			fmt.Fprintf(os.Stderr, ", build %s", Rev)
		}
		fmt.Fprintln(os.Stderr)
		os.Exit(0)
	}

	if exampleConfigFile != "" {
		writeExampleConfig(exampleConfigFile)
		os.Exit(0)
	}

	cfg, err := load(viper.GetViper(), pflag.CommandLine, configFile)
	if err != nil {
		logrus.Fatalf("Failed to parse %q, error: %s\n", viper.ConfigFileUsed(), err)
	}
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.Debugln("Using config file:", viper.ConfigFileUsed())
	return cfg
}

func defineFlags(fs *pflag.FlagSet) {
	fs.BoolP("debug", "d", false, "Enable debug mode")
	fs.IntP("timeout", "t", 10, "HTTP request timeout in seconds")
	fs.StringP("proxy", "p", "", "Proxy used when sending HTTP request \n(eg. "+
		"\"http://localhost:7777\", \"https://localhost:7777\", \"socks5://localhost:1080\")")
	fs.String("api-url", DefaultAPIURL, "Base URL of the CoinGecko compatible price API")
	fs.Bool("whole-word", false, "Match greetings and coin names on whole words only")
	fs.StringSliceP("quote", "q", nil, "Render a price table of comma-separated coins and exit (eg. \"btc,eth,solana\")")
	fs.StringSliceP("show", "s", SupportedColumns(), "Only show comma-separated columns in the price table")
	fs.IntP("refresh", "r", 0, "Auto refresh the price table on every specified seconds, "+
		"\nnote the API has a rate limit, too frequent refresh may get your IP banned")
	fs.BoolP("list-coins", "l", false, "List coin names and tickers the bot understands")
	fs.Bool("telegram", false, "Run as a Telegram bot, token is read from config or TELEGRAM_TOKEN")
}

// load merges defaults, the config file, env and fs into a Config.
func load(v *viper.Viper, fs *pflag.FlagSet, configFile string) (*Config, error) {
	v.SetDefault("timeout", 10)
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("show", SupportedColumns())
	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "bind flag %s", name)
			}
		}
	}
	if err := v.BindEnv("telegram.token", "TELEGRAM_TOKEN"); err != nil {
		return nil, errors.Wrap(err, "bind env TELEGRAM_TOKEN")
	}

	// Set configure file
	v.SetConfigName("coin_chat") // name of config file (without extension)
	v.AddConfigPath(".")         // path to look for the config file in
	v.AddConfigPath("$HOME")     // optionally look for config in the HOME directory
	v.AddConfigPath("/etc")      // and /etc
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if err := v.ReadInConfig(); err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			// Flags and defaults are enough to chat
		default:
			if configFile != "" {
				return nil, errors.Wrap(err, "read config file")
			}
			logrus.Warnf("Error reading config file: %v", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	for _, col := range cfg.Columns {
		if !isSupportedColumn(col) {
			return nil, errors.Errorf("unknown column %q, supported columns are %s",
				col, strings.Join(SupportedColumns(), ", "))
		}
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	cfg.Question = strings.TrimSpace(strings.Join(fs.Args(), " "))
	return &cfg, nil
}

func showUsageAndExit() {
	// Print usage message and exit
	fmt.Fprintf(os.Stderr, "\nUsage: %s [Options] [Question]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "\nAsk about cryptocurrency prices in plain words, in the terminal or on Telegram")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	pflag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "\nQuestion:")
	fmt.Fprintln(os.Stderr, "  Answer one question and exit (eg. \"How much is ETH?\"), "+
		"without it coin-chat reads questions from stdin until \"bye\".")
	fmt.Fprintln(os.Stderr, "\nFind help/updates from here - https://github.com/polyrabbit/coin-chat")
	os.Exit(0)
}

func writeExampleConfig(fpath string) {
	fout, err := os.Stdout, error(nil)
	if fpath != "-" {
		if _, err := os.Stat(fpath); err == nil {
			logrus.Warnf("%s already exists, skipping", fpath)
			return
		}
		if fout, err = os.Create(fpath); err != nil {
			logrus.Errorf("Failed to create config file %s, error: %v", fpath, err)
			return
		}
		defer fout.Close()
	}
	if _, err := fout.WriteString(exampleConfig); err != nil {
		logrus.Errorf("Failed to write config file %s, error: %v", fpath, err)
	} else if fout != os.Stdout {
		logrus.Infof("Write example config file to %s", fpath)
	}
}
