package cmd

import (
	"fmt"

	"github.com/akawashiro/BriCA1/pkg/config"
	"github.com/akawashiro/BriCA1/pkg/logging"
	"github.com/akawashiro/BriCA1/pkg/scheduler"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run a configured schedule over demo components",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if configPath != "" {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
		}
		if steps > 0 {
			cfg.Steps = steps
		}
		if traceFile != "" {
			cfg.TraceFile = traceFile
		}

		logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

		sched, err := newScheduler(cfg)
		if err != nil {
			return err
		}
		rec := scheduler.NewRecorder(sched, cfg.TraceFile)
		logger = logger.With("run_id", rec.RunID(), "scheduler", cfg.Scheduler)

		src := demoSource(cfg.Components)
		if err := rec.Update(src); err != nil {
			return fmt.Errorf("failed to bind components: %w", err)
		}
		logger.Info("schedule bound", "components", len(src.AllComponents()), "steps", cfg.Steps)

		for i := 0; i < cfg.Steps; i++ {
			t, err := rec.Step()
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			logger.Debug("step complete", "step", i+1, "time", t)
		}

		logger.Info("schedule complete", "steps", rec.NumSteps(), "time", rec.Time())
		if cfg.TraceFile != "" {
			if err := rec.Flush(); err != nil {
				return err
			}
			logger.Info("trace written", "file", cfg.TraceFile, "records", len(rec.Trace()))
		}
		return nil
	},
}

var configPath string
var steps int
var traceFile string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"path of run configuration file")
	runCmd.Flags().IntVarP(&steps, "steps", "n", 0,
		"override number of steps to run")
	runCmd.Flags().StringVarP(&traceFile, "trace", "t", "",
		"override step trace output file")
}

func newScheduler(cfg config.Config) (scheduler.Scheduler, error) {
	switch cfg.Scheduler {
	case config.KindVirtualTimeSync:
		return scheduler.NewVirtualTimeSync(cfg.Interval), nil
	case config.KindVirtualTime:
		return scheduler.NewVirtualTime(), nil
	case config.KindRealTimeSync:
		return scheduler.NewRealTimeSync(cfg.Interval, nil)
	default:
		return nil, fmt.Errorf("unknown scheduler kind %q", cfg.Scheduler)
	}
}
