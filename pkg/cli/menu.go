package cli

import (
	"fmt"

	"github.com/lintang-b-s/mazex/pkg/engine"
	"github.com/lintang-b-s/mazex/pkg/maze"
	"go.uber.org/zap"
)

var (
	mainMenuOptions      = []string{"Generators", "Solvers"}
	generatorMenuOptions = []string{"RDS"}
	solverMenuOptions    = []string{"A*"}
)

// App drives the interactive menus.
type App struct {
	engine   *engine.Engine
	prompter Prompter
	display  *TerminalDisplay
	styler   maze.Styler
	logger   *zap.Logger

	styled  bool
	animate bool

	maxWidth  int
	maxHeight int
	banner    string
}

type AppConfig struct {
	Styled    bool
	Animate   bool
	MaxWidth  int
	MaxHeight int
}

func NewApp(e *engine.Engine, prompter Prompter, display *TerminalDisplay, styler maze.Styler,
	logger *zap.Logger, cfg AppConfig) *App {
	return &App{
		engine:    e,
		prompter:  prompter,
		display:   display,
		styler:    styler,
		logger:    logger,
		styled:    cfg.Styled,
		animate:   cfg.Animate,
		maxWidth:  cfg.MaxWidth,
		maxHeight: cfg.MaxHeight,
		banner:    Banner(cfg.Styled),
	}
}

// Run shows the main menu and dispatches to the chosen flow.
func (a *App) Run() error {
	a.showBanner()
	choice, err := a.prompter.Choose("Hello! What would you like to do? Choose the option you prefer:", mainMenuOptions)
	if err != nil {
		return err
	}
	switch choice {
	case 0:
		return a.generatorsMenu()
	case 1:
		return a.solversMenu()
	}
	return nil
}

func (a *App) generatorsMenu() error {
	a.showBanner()
	choice, err := a.prompter.Choose("Select a generator:", generatorMenuOptions)
	if err != nil {
		return err
	}
	if choice == 0 {
		return a.RunGenerator()
	}
	return nil
}

func (a *App) solversMenu() error {
	a.showBanner()
	choice, err := a.prompter.Choose("Select a solver:", solverMenuOptions)
	if err != nil {
		return err
	}
	if choice == 0 {
		return a.RunSolver()
	}
	return nil
}

// RunGenerator asks for a size, animates the carving and optionally shows the clean result.
func (a *App) RunGenerator() error {
	width, height, err := a.readSize()
	if err != nil {
		return err
	}

	g, err := a.engine.Generate(width, height)
	if err != nil {
		return err
	}

	if a.animate {
		show, err := a.prompter.ReadBool("\nShow final result?", true)
		if err != nil {
			return err
		}
		if !show {
			return nil
		}
	}
	a.display.Clear()
	g.Show(a.display, a.styler, a.styled)
	return nil
}

// RunSolver carves a maze without animation, then animates the search on it.
func (a *App) RunSolver() error {
	width, height, err := a.readSize()
	if err != nil {
		return err
	}

	g, err := a.engine.Quiet().Generate(width, height)
	if err != nil {
		return err
	}

	res, err := a.engine.Solve(g)
	if err != nil {
		return err
	}
	if !a.animate {
		res.Grid.Show(a.display, a.styler, a.styled)
	}
	if !res.Found {
		a.logger.Warn("no path found", zap.Int("width", width), zap.Int("height", height))
	}
	return nil
}

func (a *App) readSize() (int, int, error) {
	a.display.Clear()
	width, err := a.prompter.ReadInt(sizePrompt("width", a.maxWidth))
	if err != nil {
		return 0, 0, err
	}
	a.display.Clear()
	height, err := a.prompter.ReadInt(sizePrompt("height", a.maxHeight))
	if err != nil {
		return 0, 0, err
	}
	if err := a.engine.CheckSize(width, height); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func sizePrompt(dim string, limit int) string {
	if limit <= 0 {
		return fmt.Sprintf("Maze %s : ", dim)
	}
	return fmt.Sprintf("Maze %s (max: %d) : ", dim, limit)
}

func (a *App) showBanner() {
	a.display.Clear()
	fmt.Fprint(a.display.out, a.banner)
}
