package engine

import (
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/mazex/pkg/animation"
	"github.com/lintang-b-s/mazex/pkg/generator"
	"github.com/lintang-b-s/mazex/pkg/maze"
	"github.com/lintang-b-s/mazex/pkg/solver"
	"github.com/lintang-b-s/mazex/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

type BaseGrid = maze.Grid[*maze.Cell, *maze.Wall]

type Generator interface {
	Generate(width, height int) (*BaseGrid, error)
}

type Solver interface {
	Solve(base *BaseGrid) (*solver.Result, error)
}

type GeneratorFactory func(logger *zap.Logger, rnd generator.RandomSource, animator *animation.Animator) Generator

type SolverFactory func(logger *zap.Logger, animator *animation.Animator) Solver

var generators = map[string]GeneratorFactory{
	"rds": func(logger *zap.Logger, rnd generator.RandomSource, animator *animation.Animator) Generator {
		return generator.NewRDS(logger, rnd, animator)
	},
}

var solvers = map[string]SolverFactory{
	"astar": func(logger *zap.Logger, animator *animation.Animator) Solver {
		return solver.NewAStar(logger, animator)
	},
}

// Generators lists the registered generator names.
func Generators() []string {
	return registryNames(generators)
}

// Solvers lists the registered solver names.
func Solvers() []string {
	return registryNames(solvers)
}

func registryNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const defaultCacheSize = 64

type seededKey struct {
	width, height int
	seed          uint64
}

// Engine owns the random source and the pacing shared by every run, and hands grids from
// the generator to the solver by clone.
type Engine struct {
	logger   *zap.Logger
	animator *animation.Animator
	rnd      *rand.Rand

	generatorName string
	solverName    string

	maxWidth  int // 0 means unlimited
	maxHeight int

	seeded *lru.Cache[seededKey, *BaseGrid]
}

type Option func(e *Engine)

func WithAnimator(a *animation.Animator) Option {
	return func(e *Engine) {
		e.animator = a
	}
}

// WithSeed fixes the random source. 0 seeds from the clock.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		e.rnd = rand.New(rand.NewSource(seed))
	}
}

func WithGenerator(name string) Option {
	return func(e *Engine) {
		e.generatorName = name
	}
}

func WithSolver(name string) Option {
	return func(e *Engine) {
		e.solverName = name
	}
}

// WithSizeLimit caps maze dimensions. Non-positive values leave a dimension unlimited.
func WithSizeLimit(maxWidth, maxHeight int) Option {
	return func(e *Engine) {
		e.maxWidth = maxWidth
		e.maxHeight = maxHeight
	}
}

func NewEngine(logger *zap.Logger, opts ...Option) (*Engine, error) {
	e := &Engine{
		logger:        logger,
		generatorName: "rds",
		solverName:    "astar",
		rnd:           rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, opt := range opts {
		opt(e)
	}

	if _, ok := generators[e.generatorName]; !ok {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "unknown generator %q", e.generatorName)
	}
	if _, ok := solvers[e.solverName]; !ok {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "unknown solver %q", e.solverName)
	}

	cache, err := lru.New[seededKey, *BaseGrid](defaultCacheSize)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInvalidState, "failed to create maze cache")
	}
	e.seeded = cache

	logger.Debug("engine ready",
		zap.String("generator", e.generatorName),
		zap.String("solver", e.solverName),
		zap.Int("maxWidth", e.maxWidth),
		zap.Int("maxHeight", e.maxHeight),
	)
	return e, nil
}

// Quiet returns an engine sharing this one's random source and cache but without animation.
func (e *Engine) Quiet() *Engine {
	q := *e
	q.animator = nil
	return &q
}

// CheckSize validates maze dimensions against the configured limits.
func (e *Engine) CheckSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "maze size must be positive, got %dx%d", width, height)
	}
	if e.maxWidth > 0 && width > e.maxWidth {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "width %d exceeds the limit of %d", width, e.maxWidth)
	}
	if e.maxHeight > 0 && height > e.maxHeight {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "height %d exceeds the limit of %d", height, e.maxHeight)
	}
	return nil
}

// Generate carves a new W×H maze with the engine's random source.
func (e *Engine) Generate(width, height int) (*BaseGrid, error) {
	return e.generate(width, height, e.rnd)
}

// GenerateSeeded carves the maze a given seed produces. Results are memoized per
// (width, height, seed); every call returns a private clone.
func (e *Engine) GenerateSeeded(width, height int, seed uint64) (*BaseGrid, error) {
	key := seededKey{width: width, height: height, seed: seed}
	if g, ok := e.seeded.Get(key); ok {
		e.logger.Debug("seeded maze cache hit", zap.Uint64("seed", seed))
		return maze.Normalize(g), nil
	}

	g, err := e.generate(width, height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	e.seeded.Add(key, maze.Normalize(g))
	return g, nil
}

func (e *Engine) generate(width, height int, rnd generator.RandomSource) (*BaseGrid, error) {
	if err := e.CheckSize(width, height); err != nil {
		return nil, err
	}
	e.logger.Info("generating maze",
		zap.String("generator", e.generatorName),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	gen := generators[e.generatorName](e.logger, rnd, e.animator)
	g, err := gen.Generate(width, height)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInvalidState, "generator %s failed", e.generatorName)
	}
	return g, nil
}

// Solve runs the configured solver on a clone of grid.
func (e *Engine) Solve(grid *BaseGrid) (*solver.Result, error) {
	if grid == nil {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "maze must not be nil")
	}
	e.logger.Info("solving maze",
		zap.String("solver", e.solverName),
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
	)
	res, err := solvers[e.solverName](e.logger, e.animator).Solve(grid)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		e.logger.Warn("maze has no path from start to end")
	}
	return res, nil
}

func (e *Engine) GeneratorName() string {
	return e.generatorName
}

func (e *Engine) SolverName() string {
	return e.solverName
}
