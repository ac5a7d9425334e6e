// Package vclog generates a changelog between two version points in git
// history, grouped by conventional commit type, with optional AI
// summarization.
//
// Related packages: config, commit, runner, model, vcs, vcs/gitcli, ai
package vclog

import "github.com/vclog/vclog/config"

// Config holds most of the configuration variables for vclog. This struct
// is intended for command-line use, so not all of its attributes are
// applicable to every operation.
//
// See "go doc github.com/vclog/vclog/config Config" for more information.
type Config = config.Config
