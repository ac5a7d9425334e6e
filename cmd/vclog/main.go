package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/imdario/mergo"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/vclog/vclog/ai"
	"github.com/vclog/vclog/commit"
	"github.com/vclog/vclog/config"
	"github.com/vclog/vclog/runner"
	"github.com/vclog/vclog/vcs/gitcli"
)

var (
	// overridden by go build -X
	Version = "dev"
)

// listMax caps --list output at the newest versions.
const listMax = 20

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string) error {
	cfg := config.New(nil)

	var help bool
	var version bool
	var cfgFile string
	var latest bool
	var list bool
	var withAI bool
	var copyOut bool
	var doDiff bool
	var doStats bool
	var doConfig bool
	flags := pflag.NewFlagSet("vclog", pflag.ExitOnError)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.BoolVarP(&latest, "latest", "l", false, "changelog for the two most recent versions")
	flags.BoolVar(&list, "list", false, "list known versions, newest first")
	flags.BoolVarP(&withAI, "ai", "a", false, "summarize with the configured AI endpoint")
	flags.BoolVarP(&copyOut, "copy", "c", false, "copy output to the clipboard")
	flags.BoolVarP(&doDiff, "diff", "d", false, "print the diff between the boundaries")
	flags.BoolVarP(&doStats, "stats", "S", false, "print commit stats for the range")
	flags.BoolVar(&doConfig, "config", false, "configure the AI endpoint interactively")
	flags.StringVarP(&cfg.Format, "format", "f", "text", "output `format` (text or md)")
	flags.StringVar(&cfgFile, "config-file", "", "specify config `file`")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print as little as necessary")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}
	args := flags.Args()[1:]

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}

	fileCfg, err := config.ReadFile(cfgFile)
	if err != nil {
		return err
	}
	if cfg, err = mergeConfig(cfg, fileCfg, flags); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// done setting up config

	if doConfig {
		return configure(cfg, cfgFile)
	}

	git := gitcli.New(cfg, "")
	rnr := runner.New(cfg, git)
	ctx := context.Background()

	if list {
		vers, err := rnr.List(ctx, listMax)
		if err != nil {
			return err
		}
		for _, v := range vers {
			fmt.Fprintln(cfg.Term.Stdout, v.Raw)
		}
		return nil
	}

	if len(args) > 2 {
		return fmt.Errorf("expected at most 2 version arguments, got %d", len(args))
	}
	if latest && len(args) > 0 {
		return errors.New("--latest takes no version arguments")
	}
	tokens := args

	// --diff and --stats with no versions operate on the latest pair.
	if doDiff {
		out, err := rnr.Diff(ctx, tokens)
		if err != nil {
			return err
		}
		fmt.Fprint(cfg.Term.Stdout, out)
		return nil
	}
	if doStats {
		stats, err := rnr.Stats(ctx, tokens)
		if err != nil {
			return err
		}
		return stats.TextSummary(cfg.Term.Stdout)
	}

	if !latest && len(args) == 0 {
		usage(cfg, flags)
		return errors.New("two versions or --latest required")
	}

	cl, err := rnr.Changelog(ctx, tokens)
	if err != nil {
		return err
	}
	format, err := commit.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	if withAI {
		summary, err := summarize(ctx, cfg, rnr, cl)
		if err != nil {
			aiErr := ai.Error{}
			if !errors.As(err, &aiErr) {
				return err
			}
			cfg.Errorf("ai summarization failed, falling back: %v", err)
		} else {
			cl.Summary = summary
		}
	}

	out, err := cl.RenderString(format)
	if err != nil {
		return err
	}
	fmt.Fprint(cfg.Term.Stdout, out)

	if copyOut {
		if err := rnr.Copy(out); err != nil {
			cfg.Errorf("(could not copy to clipboard: %v)", err)
		} else {
			cfg.Errorf("(copied to clipboard)")
		}
	}
	return nil
}

// mergeConfig layers the config file under the command line: file
// values fill in whatever the flags left at their defaults, and a flag
// passed explicitly always wins over the file.
func mergeConfig(cfg config.Config, fileCfg *config.Config, flags *pflag.FlagSet) (config.Config, error) {
	if fileCfg == nil {
		return cfg, nil
	}
	flagCfg := cfg
	if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
		return cfg, err
	}
	if flags.Changed("format") {
		cfg.Format = flagCfg.Format
	}
	if flags.Changed("verbose") {
		cfg.Verbose = flagCfg.Verbose
	}
	if flags.Changed("quiet") {
		cfg.Quiet = flagCfg.Quiet
	}
	return cfg, nil
}

// summarize wraps the AI request with a spinner when stdout is a
// terminal.
func summarize(ctx context.Context, cfg config.Config, rnr *runner.Runner, cl *commit.Changelog) (string, error) {
	var spin *spinner.Spinner
	if isatty.IsTerminal(os.Stdout.Fd()) && !cfg.Quiet {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		spin.Suffix = " summarizing..."
		spin.Start()
		defer spin.Stop()
	}
	return rnr.Summarize(ctx, cl)
}

func configure(cfg config.Config, cfgFile string) error {
	existing, err := config.ReadFile(cfgFile)
	if err != nil {
		return err
	}
	if existing == nil {
		existing = &config.Config{}
	}
	if existing.Model == "" {
		existing.Model = config.DefaultModel
	}
	if existing.Lang == "" {
		existing.Lang = "zh"
	}

	cfg.Printf("Configure AI API")
	cfg.Printf("URL should be the full path, e.g. https://api.openai.com/v1/chat/completions\n")

	scanner := bufio.NewScanner(cfg.Term.Stdin)
	prompt := func(label, display, current string) string {
		cfg.Term.Printf("%s [%s]: ", label, display)
		if !scanner.Scan() {
			return current
		}
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			return s
		}
		return current
	}

	out := config.Config{}
	out.URL = prompt("API URL", existing.URL, existing.URL)
	out.Key = prompt("API Key", truncateKey(existing.Key), existing.Key)
	out.Model = prompt("Model", existing.Model, existing.Model)
	out.Lang = prompt("Language (zh/en)", existing.Lang, existing.Lang)
	if err := out.Validate(); err != nil {
		return err
	}

	p, err := config.WriteFile(cfgFile, out)
	if err != nil {
		return err
	}
	cfg.Printf("config saved to %s", p)
	return nil
}

// truncateKey shows enough of a credential to recognize it.
func truncateKey(k string) string {
	if k == "" {
		return ""
	}
	if len(k) <= 8 {
		return k + "..."
	}
	return k[:8] + "..."
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s [older] [newer]

Generate a changelog between two version points in git history, grouped
by conventional commit type.

FLAGS
%s
EXAMPLES

# changelog between two explicit versions
$ vclog 1.0.0+68 1.0.1+71

# changelog for the two most recent versions, as markdown
$ vclog --latest -f md

# summarize with the configured AI endpoint and copy to the clipboard
$ vclog --latest --ai --copy

# list known versions
$ vclog --list

# diff between the two most recent versions
$ vclog --diff
`, os.Args[0], flags.FlagUsages())
}
