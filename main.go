// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cybrota/avlmap/avl"
)

const banner = `
 ▄▀█ █░█ █░░ █▀▄▀█ ▄▀█ █▀█
 █▀█ ▀▄▀ █▄▄ █░▀░█ █▀█ █▀▀
A self-balancing ordered map you can poke at [Version: %s%s%s]

`

// parseBuildArg splits "K" or "K=V"; a bare key uses itself as the value.
func parseBuildArg(arg string) (int, string, error) {
	keyPart, value, found := strings.Cut(arg, "=")
	key, err := parseKey(keyPart)
	if err != nil {
		return 0, "", err
	}
	if !found {
		value = keyPart
	}
	return key, value, nil
}

// buildFromArgs upserts every K[=V] argument in order into a fresh map.
func buildFromArgs(args []string) (*avl.Tree[string], error) {
	tree := avl.New[string]()
	for _, arg := range args {
		key, value, err := parseBuildArg(arg)
		if err != nil {
			return nil, err
		}
		tree.Upsert(key, value)
	}
	return tree, nil
}

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

// colorEnabled reports whether plain output may carry escape codes.
func colorEnabled(config *Config, args []string) bool {
	return config.Display.Color && !slices.Contains(args, "--no-color")
}

func bannerText() string {
	return fmt.Sprintf(banner, Green, version, Reset)
}

func main() {
	InitializeColors()
	useColor := colorEnabled(loadConfigOrDefault(), os.Args[1:])
	if !useColor {
		DisableColors()
	}
	logo := bannerText()

	var cmdBuild = &cobra.Command{
		Use:   "build K[=V] ...",
		Short: "Upsert keys from the arguments and print the tree",
		Long:  fmt.Sprintf("%s\n%s", logo, "Build upserts every argument in order and prints the resulting tree shape"),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			applyDisplayFlags(cmd, &config.Display)

			tree, err := buildFromArgs(args)
			if err != nil {
				log.Fatalf("Error parsing argument: %v", err)
			}
			fmt.Print(renderTree(tree, config.Display))
			fmt.Printf("entries=%d height=%d\n", tree.Len(), tree.Height())
		},
	}
	addDisplayFlags(cmdBuild)

	var cmdRun = &cobra.Command{
		Use:   "run FILE",
		Short: "Run a script file against an empty map",
		Long:  fmt.Sprintf("%s\n%s", logo, "Run executes a script line by line. Use - to read from standard input."),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			applyDisplayFlags(cmd, &config.Display)

			in := os.Stdin
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					log.Fatalf("Error opening script: %v", err)
				}
				defer file.Close()
				in = file
			}

			if err := RunScript(in, NewSession(os.Stdout, config.Display)); err != nil {
				log.Fatalf("Error running script: %v", err)
			}
		},
	}
	addDisplayFlags(cmdRun)

	var cmdREPL = &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive prompt",
		Long:  fmt.Sprintf("%s\n%s", logo, "Repl reads script commands from the terminal. Type quit or press Esc to leave. Piped input is read line by line."),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			applyDisplayFlags(cmd, &config.Display)
			runREPL(config)
		},
	}
	addDisplayFlags(cmdREPL)

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Upsert many keys and validate every invariant",
		Long:  fmt.Sprintf("%s\n%s", logo, "Stress upserts a generated key sequence and validates ordering, balance and height after each step"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			opts := stressOptionsFromFlags(cmd, config.Stress)

			report, err := Stress(opts)
			if err != nil {
				log.Fatalf("Stress run failed: %v", err)
			}
			fmt.Println(reportLine(report, useColor))
		},
	}
	addStressFlags(cmdStress)

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avlmap configuration",
		Long:  fmt.Sprintf("%s\n%s", logo, "Settings prints the configuration file, creating it with defaults if missing"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlmap usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the avlmap CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlmap version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlmap",
		Version: version,
		Long:    logo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interactive prompt when no subcommand is provided
			runREPL(loadConfigOrDefault())
		},
	}
	rootCmd.AddCommand(cmdBuild, cmdRun, cmdREPL, cmdStress, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runREPL(config *Config) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		if err := runBubbleTeaREPL(config.Display); err != nil {
			log.Fatalf("Error running interactive prompt: %v", err)
		}
		return
	}

	fmt.Printf("avlmap %s. Type \"quit\" to leave, \"avlmap usage\" lists the commands.\n", version)
	if err := RunREPL(os.Stdin, NewSession(os.Stdout, config.Display), "avl> "); err != nil {
		log.Fatalf("Error reading input: %v", err)
	}
}

// reportLine formats a finished stress run for the terminal.
func reportLine(report *StressReport, color bool) string {
	line := "✅ " + report.String()
	if !color {
		return line
	}
	return GetColorScheme().Success.Render(line)
}

func addStressFlags(cmd *cobra.Command) {
	cmd.Flags().Int("count", 0, "number of upserts (default from config)")
	cmd.Flags().Uint64("seed", 0, "seed for the random order (default from config)")
	cmd.Flags().String("order", "", "random, ascending or descending (default from config)")
	cmd.Flags().Int("every", 0, "validate after every N upserts (default from config)")
	cmd.Flags().Bool("no-progress", false, "hide the progress bar")
	cmd.Flags().Bool("no-color", false, "disable colored output")
}

func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("values", false, "show values next to keys")
	cmd.Flags().Bool("no-balance", false, "hide balance factors")
	cmd.Flags().Bool("no-color", false, "disable colored output")
}

func applyDisplayFlags(cmd *cobra.Command, display *DisplayConfig) {
	if v, _ := cmd.Flags().GetBool("values"); v {
		display.ShowValues = true
	}
	if v, _ := cmd.Flags().GetBool("no-balance"); v {
		display.ShowBalance = false
	}
	if v, _ := cmd.Flags().GetBool("no-color"); v {
		display.Color = false
	}
}

func stressOptionsFromFlags(cmd *cobra.Command, defaults StressConfig) StressOptions {
	opts := StressOptions{
		Count:         defaults.Count,
		Seed:          defaults.Seed,
		Order:         defaults.Order,
		ValidateEvery: defaults.ValidateEvery,
		ShowProgress:  defaults.ShowProgress,
		Out:           os.Stderr,
	}
	if cmd.Flags().Changed("count") {
		opts.Count, _ = cmd.Flags().GetInt("count")
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("order") {
		opts.Order, _ = cmd.Flags().GetString("order")
	}
	if cmd.Flags().Changed("every") {
		opts.ValidateEvery, _ = cmd.Flags().GetInt("every")
	}
	if v, _ := cmd.Flags().GetBool("no-progress"); v {
		opts.ShowProgress = false
	}
	return opts
}
