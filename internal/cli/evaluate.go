package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vvka-141/metaqa/internal/config"
	"github.com/vvka-141/metaqa/internal/evaluate"
	"github.com/vvka-141/metaqa/internal/files"
	"github.com/vvka-141/metaqa/internal/logging"
	"github.com/vvka-141/metaqa/internal/reader"
	"github.com/vvka-141/metaqa/internal/report"
	"github.com/vvka-141/metaqa/internal/schema"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

var (
	evalConfig   string
	evalOutput   string
	evalParallel int
	evalFailOn   string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [project_dir]",
	Short: "Evaluate metadata quality for a project",
	Long: `Evaluate every source configured in metaqa.yaml and print a report.

Paths in the configuration are relative to the project directory. A .env
file in the project directory is loaded first; METAQA_PARALLEL,
METAQA_OUTPUT and METAQA_FAIL_ON override the configuration and flags
override both.

Examples:
  # Evaluate the current directory
  metaqa evaluate

  # Markdown report, failing on any warning
  metaqa evaluate ./catalog --output markdown --fail-on warning

  # Use a configuration file outside the project
  metaqa evaluate ./catalog --config ./ci/metaqa.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVar(&evalConfig, "config", "", "Configuration file (default <project_dir>/metaqa.yaml)")
	evaluateCmd.Flags().StringVarP(&evalOutput, "output", "o", "", "Report format: text, markdown, json or csv")
	evaluateCmd.Flags().IntVar(&evalParallel, "parallel", 0, "Number of sources evaluated concurrently")
	evaluateCmd.Flags().StringVar(&evalFailOn, "fail-on", "", "Exit with code 13 on findings at this level: none, error or warning")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	project := files.NewFSProvider(os.DirFS(dir))
	cfg, err := loadConfig(project)
	if err != nil {
		return err
	}
	cfg.ApplyDefaults()
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	applyEvaluateFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	w, err := report.ForFormat(cfg.Output)
	if err != nil {
		return err
	}
	w = fitToTerminal(w, cmd.OutOrStdout())

	runner := evaluate.NewRunner(project, schemaProvider(project, cfg.Schemas), readerFactory(project), reader.NewLookupBuilder(project), logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rep, err := runner.Run(ctx, cfg)
	if err != nil {
		logger.Error("evaluation failed: %v", err)
		return err
	}

	if err := w.Write(cmd.OutOrStdout(), rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if level, ok := cfg.GateLevel(); ok {
		return rep.Gate(level)
	}
	return nil
}

// fitToTerminal wraps the description column of text reports written to a
// terminal so finding rows stay on screen.
func fitToTerminal(w report.Writer, out io.Writer) report.Writer {
	tw, ok := w.(report.TableWriter)
	if !ok || tw.Mode != report.ModeText {
		return w
	}
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return w
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return w
	}
	tw.MaxDescription = max(width/3, minDescriptionWidth)
	return tw
}

const minDescriptionWidth = 24

func loadConfig(project files.Provider) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if evalConfig != "" {
		cfg, err = config.LoadFile(files.NewOSProvider(), evalConfig)
	} else {
		cfg, err = config.Load(project, ".")
	}
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: %w", metaqa.ErrInvalidConfig, err)
	}
	return cfg, err
}

func applyEvaluateFlags(cfg *config.Config) {
	if evalOutput != "" {
		cfg.Output = evalOutput
	}
	if evalParallel != 0 {
		cfg.Parallel = evalParallel
	}
	if evalFailOn != "" {
		cfg.FailOn = evalFailOn
	}
}

// schemaProvider reads project schemas from dir, falling back to the
// builtin ones for kinds the project does not define.
func schemaProvider(project files.Provider, dir string) schema.Provider {
	if dir == "" {
		return schema.Builtin()
	}
	return schema.NewFileProvider(project, dir, schema.Builtin())
}

func readerFactory(p files.Provider) evaluate.ReaderFactory {
	return func(format string) (evaluate.RecordReader, error) {
		a, err := reader.NewAuto(p, format)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}
