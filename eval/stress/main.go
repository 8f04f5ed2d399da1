package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lintang-b-s/mazex/pkg/concurrent"
	"github.com/lintang-b-s/mazex/pkg/engine"
	log "github.com/lintang-b-s/mazex/pkg/logger"
	"github.com/lintang-b-s/mazex/pkg/maze"
	"github.com/lintang-b-s/mazex/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

var (
	configFile = flag.String("config", "", "config file, defaults to ./data/config.yaml")
	runs       = flag.Int("runs", 0, "number of random mazes, 0 takes stress_runs from config")
	workers    = flag.Int("workers", 0, "number of workers, 0 takes stress_workers from config")
	maxSize    = flag.Int("max_size", 40, "largest width/height to draw")
	seed       = flag.Uint64("seed", 0, "master seed, 0 seeds from the clock")
)

type stressJob struct {
	id            int
	width, height int
	seed          uint64
}

type stressResult struct {
	job      stressJob
	hops     int
	bfsHops  int
	settled  int
	failures []string
	err      error
}

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configFile); err != nil {
		panic(err)
	}
	logger, err := log.NewWithLevel(viper.GetString(util.ConfigLogLevel))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	numRuns := viper.GetInt(util.ConfigStressRuns)
	if *runs > 0 {
		numRuns = *runs
	}
	numWorkers := viper.GetInt(util.ConfigStressWorkers)
	if *workers > 0 {
		numWorkers = *workers
	}

	masterSeed := *seed
	if masterSeed == 0 {
		masterSeed = uint64(time.Now().UnixNano())
	}
	rd := rand.New(rand.NewSource(masterSeed))

	logger.Info("starting stress run",
		zap.Int("runs", numRuns),
		zap.Int("workers", numWorkers),
		zap.Uint64("seed", masterSeed),
	)

	wp := concurrent.NewWorkerPool[stressJob, stressResult](numWorkers, numRuns)
	wp.Start(func(job stressJob) stressResult {
		return check(logger, job)
	})

	g := errgroup.Group{}
	g.Go(func() error {
		for i := 0; i < numRuns; i++ {
			wp.AddJob(stressJob{
				id:     i,
				width:  1 + rd.Intn(*maxSize),
				height: 1 + rd.Intn(*maxSize),
				seed:   rd.Uint64() | 1,
			})
		}
		wp.Close()
		wp.Wait()
		return nil
	})

	failed := 0
	settled := 0
	for res := range wp.CollectResults() {
		settled += res.settled
		if res.err == nil && len(res.failures) == 0 {
			continue
		}
		failed++
		logger.Error("counterexample",
			zap.Int("run", res.job.id),
			zap.Int("width", res.job.width),
			zap.Int("height", res.job.height),
			zap.Uint64("seed", res.job.seed),
			zap.Int("hops", res.hops),
			zap.Int("bfsHops", res.bfsHops),
			zap.Strings("failures", res.failures),
			zap.Error(res.err),
		)
	}
	if err := g.Wait(); err != nil {
		logger.Fatal("stress run aborted", zap.Error(err))
	}

	fmt.Printf("runs: %d, failed: %d, settled nodes: %d\n", numRuns, failed, settled)
	if failed > 0 {
		os.Exit(1)
	}
}

func check(logger *zap.Logger, job stressJob) stressResult {
	res := stressResult{job: job}

	e, err := engine.NewEngine(logger, engine.WithSeed(job.seed))
	if err != nil {
		res.err = err
		return res
	}
	grid, err := e.Generate(job.width, job.height)
	if err != nil {
		res.err = err
		return res
	}

	cells := job.width * job.height
	if p := maze.Passages(grid); p != cells-1 {
		res.failures = append(res.failures, fmt.Sprintf("%d passages, want %d", p, cells-1))
	}
	if r := maze.Reachable(grid, grid.StartNode()); r != cells {
		res.failures = append(res.failures, fmt.Sprintf("%d reachable cells, want %d", r, cells))
	}

	sol, err := e.Solve(grid)
	if err != nil {
		res.err = err
		return res
	}
	res.settled = sol.NumSettledNodes
	res.hops = sol.Hops()
	res.bfsHops = maze.ShortestHops(grid, grid.StartNode(), grid.EndNode())

	if !sol.Found {
		res.failures = append(res.failures, "no path found")
		return res
	}
	if res.hops != res.bfsHops {
		res.failures = append(res.failures, "A* path is not shortest")
	}
	if !maze.IsWalkable(sol.Grid, sol.Path) {
		res.failures = append(res.failures, "path crosses a wall")
	}
	if sol.Path[0] != sol.Grid.StartNode() || sol.Path[len(sol.Path)-1] != sol.Grid.EndNode() {
		res.failures = append(res.failures, "path does not join start and end")
	}
	return res
}
