/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package main demonstrates usage of the errctx package.
//
//	go run ./example --config missing.toml
//	go run ./example --mode structural
//	go run ./example --log
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"dirpx.dev/errctx"
	"dirpx.dev/errctx/logx"
)

type config struct {
	raw  []byte
	home string
}

func readConfig(path string) ([]byte, error) {
	return errctx.From(os.ReadFile(path)).
		WithDynErrContext(func() any { return fmt.Sprintf("Failed to read file %q", path) })
}

func loadConfig(path string) (config, error) {
	raw, err := errctx.From(readConfig(path)).WithErrContext("Failed to load configuration")
	if err != nil {
		return config{}, err
	}
	if _, err := errctx.ErrorIfTrue(len(raw) == 0, "Configuration file is empty"); err != nil {
		return config{}, errctx.WithErrContext(err, "Failed to load configuration")
	}
	home, err := errctx.Lookup(os.LookupEnv("HOME")).WithErrContext("HOME is not set")
	if err != nil {
		return config{}, errctx.WithErrContext(err, "Failed to load configuration")
	}
	return config{raw: raw, home: home}, nil
}

func run(path string) error {
	_, err := loadConfig(path)
	return errctx.WithErrContext(err, "Failed to start the program")
}

func main() {
	var (
		mode    errctx.Mode
		path    = pflag.StringP("config", "c", "config.toml", "configuration file to load")
		asJSON  = pflag.Bool("json", false, "print the error chain as JSON")
		useLogs = pflag.Bool("log", false, "report the error through zerolog")
	)
	pflag.VarP(&mode, "mode", "m", "rendering: pretty or structural")
	pflag.Parse()

	err := run(*path)
	if err == nil {
		fmt.Println("configuration loaded")
		return
	}

	switch {
	case *useLogs:
		logx.Install()
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
		log.Error().Err(err).Msg("startup failed")
	case *asJSON:
		b, jerr := json.MarshalIndent(err, "", "  ")
		if jerr != nil {
			fmt.Fprintln(os.Stderr, errctx.WithContext("Failed to encode error", jerr))
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, string(b))
	default:
		fmt.Fprintln(os.Stderr, errctx.Render(err, mode))
	}
	os.Exit(1)
}
