package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

func MustLoadBaseConfig(path string) Config {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err = toml.Unmarshal(raw, &conf); err != nil {
		panic(err)
	}
	return conf
}

func LoadBaseConfigFromENV() Config {
	var c Config
	c.FromENV()
	return c
}

type Config struct {
	Log     Log     `toml:"log"`
	Analyze Analyze `toml:"analyze"`
}

func (c *Config) FromENV() {
	c.Log.FromENV()
	c.Analyze.FromENV()
}

type Analyze struct {
	CaseFold bool `toml:"case_fold"`
	TopN     int  `toml:"top_n"`
}

func (a *Analyze) FromENV() {
	a.CaseFold = os.Getenv("TEXTLAB_ANALYZE_CASE_FOLD") == "true"
	if n, err := strconv.Atoi(os.Getenv("TEXTLAB_ANALYZE_TOP_N")); err == nil {
		a.TopN = n
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("TEXTLAB_LOG_LEVEL")
	l.Path = os.Getenv("TEXTLAB_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
