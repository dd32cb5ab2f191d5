// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvpal/palindrome"
	"github.com/katalvlaran/lvpal/symbols"
)

// envPrefix namespaces environment overrides, e.g. LVPAL_MODE=rolling.
const envPrefix = "LVPAL"

// Flag names double as viper keys.
const (
	flagFile      = "file"
	flagMode      = "mode"
	flagNormalize = "normalize"
	flagFold      = "fold"
	flagAlnum     = "alnum"
	flagOutput    = "output"
	flagTrace     = "trace"
	flagLogLevel  = "log-level"
)

type rootOptions struct {
	file      string
	mode      string
	normalize string
	fold      bool
	alnum     bool
	output    string
	trace     bool
	logLevel  string
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "lvpal [flags] [TEXT]",
		Short: "Print the longest palindromic substring of a text",
		Long: `Print the longest palindromic substring of a text.

TEXT is taken from the argument, else from --file, else from stdin. A
trailing newline on file or stdin input is ignored. Among several longest
palindromes the leftmost one is printed. Indices count symbols (runes
after the optional --normalize/--alnum preparation).

Every flag can also be set through the environment with the LVPAL_
prefix, e.g. LVPAL_MODE=rolling or LVPAL_LOG_LEVEL=info. Flags win.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, loadOptions(v))
		},
	}

	addFlags(cmd.Flags())
	bindConfig(v, cmd.Flags())

	return cmd
}

func addFlags(f *pflag.FlagSet) {
	f.StringP(flagFile, "f", "", "Read the text from this file (memory-mapped)")
	f.StringP(flagMode, "m", palindrome.FullTable.String(), "DP table storage: full or rolling")
	f.String(flagNormalize, "none", "Unicode normalization before scanning: none, nfc, nfd, nfkc, nfkd")
	f.Bool(flagFold, false, "Compare symbols case-insensitively")
	f.Bool(flagAlnum, false, "Ignore everything but letters and digits")
	f.StringP(flagOutput, "o", "text", "Output format: text, json or yaml")
	f.Bool(flagTrace, false, "Log every decided DP cell (and the final table in full mode) at debug level")
	f.String(flagLogLevel, logrus.WarnLevel.String(), "Log level: panic, fatal, error, warning, info, debug, trace")
}

// bindConfig makes every flag readable through v, with environment
// fallback for flags left unset on the command line.
func bindConfig(v *viper.Viper, f *pflag.FlagSet) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// BindPFlags only fails on a nil flag set.
	_ = v.BindPFlags(f)
}

func loadOptions(v *viper.Viper) rootOptions {
	return rootOptions{
		file:      v.GetString(flagFile),
		mode:      v.GetString(flagMode),
		normalize: v.GetString(flagNormalize),
		fold:      v.GetBool(flagFold),
		alnum:     v.GetBool(flagAlnum),
		output:    v.GetString(flagOutput),
		trace:     v.GetBool(flagTrace),
		logLevel:  v.GetString(flagLogLevel),
	}
}

// run validates every option before touching the input, then prepares,
// scans and renders.
func run(cmd *cobra.Command, args []string, o rootOptions) error {
	log, err := newLogger(cmd.ErrOrStderr(), o.logLevel, o.trace)
	if err != nil {
		return err
	}

	mode, err := palindrome.ParseMemoryMode(o.mode)
	if err != nil {
		return err
	}
	normalize, err := symbols.ParseNormalization(o.normalize)
	if err != nil {
		return err
	}
	render, err := rendererFor(o.output)
	if err != nil {
		return err
	}

	text, source, err := readInput(args, o.file, cmd.InOrStdin())
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"source": source, "bytes": len(text)}).Info("input loaded")

	prep := []symbols.Option{normalize}
	if o.fold {
		prep = append(prep, symbols.WithCaseFold())
	}
	if o.alnum {
		prep = append(prep, symbols.WithAlphanumericOnly())
	}
	seq := symbols.Prepare(text, prep...)

	scanOpts := []palindrome.Option{palindrome.WithMemoryMode(mode)}
	if o.trace {
		scanOpts = append(scanOpts, palindrome.WithOnCell(cellTracer(log)))
	}

	var r palindrome.Result
	if o.trace && mode == palindrome.FullTable {
		var t *palindrome.Table
		t, r = palindrome.Scan(seq.Keys, scanOpts...)
		log.WithField("palindromes", t.Count()).Debugf("table:\n%s", t)
	} else {
		r = palindrome.Longest(seq.Keys, scanOpts...)
	}

	rep, err := newReport(seq, r, mode)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"symbols": rep.Symbols,
		"begin":   rep.Begin,
		"length":  rep.Length,
		"mode":    rep.Mode,
	}).Info("scan finished")

	return render(cmd.OutOrStdout(), rep)
}
