package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BeatGlow/crt"
	"github.com/BeatGlow/crt/effect"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("CRT_DEBUG") != "" {
		level = slog.LevelDebug
	}
	crt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := crt.Run(crt.DefaultDevice, effect.DefaultParams); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(crt.ExitCode(err))
}
