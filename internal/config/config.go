// Package config loads server settings from flags with environment fallbacks.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type Config struct {
	Addr         string
	AllowOrigins string
	LogLevel     log.Level
	WSBufferSize int
}

var levels = map[string]log.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

// Load parses args (without the program name). Flags override the
// CHESS_* environment variables, which override the defaults.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	addr := fs.String("addr", getenv("CHESS_ADDR", ":3000"), "listen address")
	origins := fs.String("allow-origins", getenv("CHESS_ALLOW_ORIGINS", "http://localhost:5173"), "comma-separated CORS origins")
	level := fs.String("log-level", getenv("CHESS_LOG_LEVEL", "info"), "trace, debug, info, warn or error")
	buf := fs.String("ws-buffer", getenv("CHESS_WS_BUFFER", "1024"), "websocket read/write buffer size in bytes")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	lvl, ok := levels[strings.ToLower(strings.TrimSpace(*level))]
	if !ok {
		return Config{}, fmt.Errorf("invalid log level %q", *level)
	}
	size, err := strconv.Atoi(*buf)
	if err != nil || size <= 0 {
		return Config{}, fmt.Errorf("invalid websocket buffer size %q", *buf)
	}

	return Config{
		Addr:         *addr,
		AllowOrigins: *origins,
		LogLevel:     lvl,
		WSBufferSize: size,
	}, nil
}

// Origins splits AllowOrigins into its entries.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
