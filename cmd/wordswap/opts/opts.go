// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package opts

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/wordswap/pkg/config"
	"github.com/walteh/wordswap/pkg/log"
	"github.com/walteh/wordswap/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// RootOpts holds the values of the persistent flags. Commands read it when
// they run, after cobra has parsed the flags.
type RootOpts struct {
	ConfigFile string
	Debug      bool
}

// 📦 Job is a loaded config together with its merged dictionary
type Job struct {
	Config     *config.Config
	Dictionary text.Dictionary
}

// Load reads the config file and builds the dictionary it describes
func (o *RootOpts) Load(ctx context.Context) (*Job, error) {
	cfg, err := config.Load(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	dict, err := cfg.BuildDictionary(ctx)
	if err != nil {
		return nil, errors.Errorf("building dictionary: %w", err)
	}

	return &Job{Config: cfg, Dictionary: dict}, nil
}

// Logger creates the console logger used by the operations
func (o *RootOpts) Logger(console io.Writer) *log.Logger {
	level := zerolog.WarnLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}
	return log.New(console, level)
}
