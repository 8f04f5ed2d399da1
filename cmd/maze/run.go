package main

import (
	"io"
	"os"

	"github.com/lintang-b-s/mazex/pkg/animation"
	"github.com/lintang-b-s/mazex/pkg/cli"
	"github.com/lintang-b-s/mazex/pkg/engine"
	log "github.com/lintang-b-s/mazex/pkg/logger"
	"github.com/lintang-b-s/mazex/pkg/maze"
	"github.com/lintang-b-s/mazex/pkg/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type session struct {
	cfg     util.MazeConfig
	logger  *zap.Logger
	engine  *engine.Engine
	display *cli.TerminalDisplay
	styler  maze.Styler

	maxWidth  int
	maxHeight int
}

func newSession(out io.Writer) (*session, error) {
	if err := util.ReadConfig(configFile); err != nil {
		return nil, err
	}
	cfg, err := util.LoadMazeConfig()
	if err != nil {
		return nil, err
	}
	logger, err := log.NewWithLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var styler maze.Styler = maze.PlainStyler{}
	if cfg.Styled {
		styler = cli.NewPalette()
	}
	display := cli.NewTerminalDisplay(out, cfg.Animate, "")

	opts := []engine.Option{
		engine.WithSeed(uint64(cfg.Seed)),
		engine.WithGenerator(cfg.Generator),
		engine.WithSolver(cfg.Solver),
	}
	maxWidth, maxHeight := cli.MaxMazeSize(cli.TerminalSize())
	opts = append(opts, engine.WithSizeLimit(maxWidth, maxHeight))
	if cfg.Animate {
		opts = append(opts, engine.WithAnimator(animation.NewAnimator(display, float64(cfg.StepsPerSecond),
			animation.WithStyler(styler),
			animation.WithStyled(cfg.Styled),
			animation.WithLogger(logger),
		)))
	}

	e, err := engine.NewEngine(logger, opts...)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:       cfg,
		logger:    logger,
		engine:    e,
		display:   display,
		styler:    styler,
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
	}, nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer s.logger.Sync()

	app := cli.NewApp(s.engine, cli.NewPrompter(os.Stdin, cmd.OutOrStdout()), s.display, s.styler, s.logger,
		cli.AppConfig{
			Styled:    s.cfg.Styled,
			Animate:   s.cfg.Animate,
			MaxWidth:  s.maxWidth,
			MaxHeight: s.maxHeight,
		})
	return app.Run()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer s.logger.Sync()

	g, err := s.generate(s.engine)
	if err != nil {
		return err
	}
	g.Show(s.display, s.styler, s.cfg.Styled)
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer s.logger.Sync()

	g, err := s.generate(s.engine.Quiet())
	if err != nil {
		return err
	}
	res, err := s.engine.Solve(g)
	if err != nil {
		return err
	}
	res.Grid.Show(s.display, s.styler, s.cfg.Styled)
	if !res.Found {
		return util.WrapErrorf(nil, util.ErrNotFound, "maze has no path from start to end")
	}
	return nil
}

// generate carves the configured maze. A fixed seed always yields the same maze, whichever
// command asks for it.
func (s *session) generate(e *engine.Engine) (*engine.BaseGrid, error) {
	if s.cfg.Seed != 0 {
		return e.GenerateSeeded(s.cfg.Width, s.cfg.Height, uint64(s.cfg.Seed))
	}
	return e.Generate(s.cfg.Width, s.cfg.Height)
}
