package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/generator"
	"svw.info/nsudoku/internal/hint"
	"svw.info/nsudoku/internal/infrastructure/storage"
	"svw.info/nsudoku/internal/ports"
	"svw.info/nsudoku/internal/puzzleio"
	"svw.info/nsudoku/internal/solver"
	"svw.info/nsudoku/internal/usecase"
	"svw.info/nsudoku/internal/validator"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nsudoku",
	Short: "Generalized N×N Sudoku solver",
	Long: `nsudoku solves square Sudoku boards of any perfect-square side
length (9, 16, 25, ...) by exhaustive backtracking search.

Puzzle files hold the side length N on the first line followed by N
rows of N whitespace-separated values, 0 denoting an empty cell.
Solutions are written next to the input as <name>Solution<ext>.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// newSolver maps the --solver and --strategy flags to an engine.
func newSolver(kind, strategy string) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		s := solver.NewBacktrackingSolver()
		switch strings.ToLower(strings.TrimSpace(strategy)) {
		case "", "first-empty":
		case "fewest", "mrv":
			s.Next = solver.FewestCandidates
		default:
			return nil, fmt.Errorf("unknown strategy %q (want first-empty or fewest)", strategy)
		}
		return s, nil
	case "", "bitset":
		if strategy != "" && strategy != "first-empty" {
			return nil, fmt.Errorf("the bitset solver has a fixed first-empty cell order")
		}
		return solver.NewBitsetSolver(), nil
	default:
		return nil, fmt.Errorf("unknown solver %q (want bitset or backtrack)", kind)
	}
}

var solveCmd = &cobra.Command{
	Use:   "solve <puzzle-file>",
	Short: "Solve a puzzle file and write <name>Solution<ext>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("solver")
		strategy, _ := cmd.Flags().GetString("strategy")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		noSave, _ := cmd.Flags().GetBool("no-save")

		s, err := newSolver(kind, strategy)
		if err != nil {
			return err
		}
		g, err := puzzleio.Load(args[0])
		if err != nil {
			return err
		}
		logger.Info("puzzle loaded",
			zap.String("file", args[0]),
			zap.Int("size", g.Size()),
			zap.Int("empty", g.CountEmpty()))
		fmt.Fprintln(cmd.OutOrStdout(), puzzleio.Render(g))

		uc := usecase.NewService(s, nil, validator.New(), nil, nil)
		ctx := cmd.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		out, st, err := uc.Solve(ctx, g)
		if err != nil {
			var conflict *usecase.ConflictError
			if errors.As(err, &conflict) {
				for _, c := range conflict.Conflicts {
					fmt.Fprintf(cmd.OutOrStdout(), "conflicting given at row %d, col %d\n", c.Row, c.Col)
				}
			}
			return err
		}
		logger.Info("search finished",
			zap.String("outcome", out.String()),
			zap.Int("nodes", st.Nodes),
			zap.Duration("duration", st.Duration))

		switch out {
		case domain.Solved:
			fmt.Fprintln(cmd.OutOrStdout(), puzzleio.Render(g))
			fmt.Fprintf(cmd.OutOrStdout(), "solved in %v (%d nodes)\n", st.Duration.Round(time.Microsecond), st.Nodes)
			if !noSave {
				path, err := puzzleio.SaveSolution(args[0], g, st)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "solution saved to %s\n", path)
			}
		case domain.Unsolvable:
			fmt.Fprintln(cmd.OutOrStdout(), "no solution exists for this puzzle")
		case domain.Aborted:
			fmt.Fprintf(cmd.OutOrStdout(), "search aborted after %v without an answer\n", st.Duration.Round(time.Millisecond))
		}
		return nil
	},
}

var emptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Write an all-empty N×N puzzle file for timing runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("size")
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("sudoku_%d_empty.txt", n)
		}
		if err := puzzleio.WriteEmpty(n, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s (%d×%d empty grid)\n", out, n, n)
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle with a unique solution",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("size")
		diffStr, _ := cmd.Flags().GetString("difficulty")
		seed, _ := cmd.Flags().GetInt64("seed")
		out, _ := cmd.Flags().GetString("out")
		dataDir, _ := cmd.Flags().GetString("data")
		persist, _ := cmd.Flags().GetBool("save")

		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		diff := parseDifficulty(diffStr)
		s := solver.NewBitsetSolver()
		gen := generator.NewUniqueGenerator(s)
		p, st, err := gen.Generate(cmd.Context(), n, seed, diff)
		if err != nil {
			return err
		}
		g, err := p.Board()
		if err != nil {
			return err
		}
		logger.Info("puzzle generated",
			zap.Int("size", n),
			zap.Int64("seed", seed),
			zap.String("difficulty", diff.String()),
			zap.Int("givens", n*n-g.CountEmpty()),
			zap.Duration("duration", st.Duration))
		fmt.Fprintln(cmd.OutOrStdout(), puzzleio.Render(g))
		if out != "" {
			if err := puzzleio.SavePuzzle(out, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "puzzle saved to %s\n", out)
		}
		if persist {
			store := storage.NewFS(dataDir)
			if err := store.Save(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "puzzle stored as %s\n", p.ID)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <puzzle-file>",
	Short: "Check a puzzle file for constraint violations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := puzzleio.Load(args[0])
		if err != nil {
			return err
		}
		ok, conflicts, err := validator.New().Validate(cmd.Context(), g)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintln(cmd.OutOrStdout(), "ok: no constraint violations")
			return nil
		}
		for _, c := range conflicts {
			fmt.Fprintf(cmd.OutOrStdout(), "conflict at row %d, col %d\n", c.Row, c.Col)
		}
		return fmt.Errorf("%d constraint violation(s)", len(conflicts))
	},
}

var hintCmd = &cobra.Command{
	Use:   "hint <puzzle-file>",
	Short: "Suggest the next naked single",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := puzzleio.Load(args[0])
		if err != nil {
			return err
		}
		h, found, err := hint.NewSingles().Hint(cmd.Context(), g, domain.StrategySingles)
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintln(cmd.OutOrStdout(), "no naked single found")
			return nil
		}
		c := h.Cells[0]
		fmt.Fprintf(cmd.OutOrStdout(), "row %d, col %d: %s\n", c.Row, c.Col, h.Message)
		return nil
	},
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	solveCmd.Flags().String("solver", "bitset", "engine: bitset|backtrack")
	solveCmd.Flags().String("strategy", "", "cell selection for backtrack: first-empty|fewest")
	solveCmd.Flags().Duration("timeout", 0, "abort the search after this long (0 = no limit)")
	solveCmd.Flags().Bool("no-save", false, "skip writing the Solution file")

	emptyCmd.Flags().IntP("size", "n", 9, "side length (perfect square)")
	emptyCmd.Flags().StringP("out", "o", "", "output file (default sudoku_<n>_empty.txt)")

	generateCmd.Flags().IntP("size", "n", 9, "side length (perfect square)")
	generateCmd.Flags().String("difficulty", "medium", "easy|medium|hard|expert")
	generateCmd.Flags().Int64("seed", 0, "random seed (0 = time-based)")
	generateCmd.Flags().StringP("out", "o", "", "write the puzzle to this file")
	generateCmd.Flags().Bool("save", false, "persist the puzzle to the JSON store")
	generateCmd.Flags().String("data", "./data", "JSON store directory")

	rootCmd.AddCommand(solveCmd, emptyCmd, generateCmd, validateCmd, hintCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
