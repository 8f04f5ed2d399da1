package main

import (
	"fmt"

	"github.com/lintang-b-s/mazex/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var configFile string

var (
	rootCmd = &cobra.Command{
		Use:   "maze",
		Short: "Generate and solve mazes in the terminal",
		Long: `maze carves perfect mazes with a randomized depth-first search and solves
them with A*, animating every step with box-drawing characters.

Without a subcommand it opens the interactive menu.`,
		SilenceUsage: true,
		RunE:         runMenu,
	}
	menuCmd = &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive generator/solver menu",
		RunE:  runMenu,
	}
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Carve a maze and print it",
		RunE:  runGenerate,
	}
	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Carve a maze, then find and print the shortest path through it",
		RunE:  runSolve,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default ./data/config.yaml or $HOME/.mazex/config.yaml)")
	pf.Int("width", 20, "maze width in cells")
	pf.Int("height", 10, "maze height in cells")
	pf.Int64("seed", 0, "random seed, 0 seeds from the clock")
	pf.Bool("animate", true, "animate every step")
	pf.Bool("styled", true, "draw colors and transient markers")
	pf.Int("cps", 10, "animation steps per second")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")

	mustBind(util.ConfigWidth, "width")
	mustBind(util.ConfigHeight, "height")
	mustBind(util.ConfigSeed, "seed")
	mustBind(util.ConfigAnimate, "animate")
	mustBind(util.ConfigStyled, "styled")
	mustBind(util.ConfigStepsPerSecond, "cps")
	mustBind(util.ConfigLogLevel, "log-level")

	rootCmd.AddCommand(menuCmd, generateCmd, solveCmd, versionCmd)
}

func mustBind(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}
