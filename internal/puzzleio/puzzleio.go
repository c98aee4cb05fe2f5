// Package puzzleio reads and writes the textual puzzle format: a size
// header line holding N, then N rows of N whitespace-separated values,
// 0 denoting an empty cell.
package puzzleio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"svw.info/nsudoku/internal/domain"
	"svw.info/nsudoku/internal/ports"
)

// Parse reads a puzzle from r and builds a validated grid.
func Parse(r io.Reader) (*domain.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty puzzle input")
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return nil, fmt.Errorf("size header: %w", err)
	}
	if n < 1 || n > domain.MaxSize {
		return nil, fmt.Errorf("size header %d: must be in [1,%d]", n, domain.MaxSize)
	}
	rows := make([][]uint8, 0, n)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]uint8, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", len(rows), err)
			}
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("row %d: value %d out of range", len(rows), v)
			}
			row = append(row, uint8(v))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) != n {
		return nil, fmt.Errorf("declared size %d but got %d rows", n, len(rows))
	}
	g, err := domain.FromRows(rows)
	if err != nil {
		return nil, err
	}
	if g.Size() != n {
		return nil, fmt.Errorf("declared size %d but rows form a %d×%d grid", n, g.Size(), g.Size())
	}
	return g, nil
}

// Load reads a puzzle file.
func Load(path string) (*domain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// SolutionPath derives the output name for an input puzzle file:
// "sudoku_16.txt" becomes "sudoku_16Solution.txt".
func SolutionPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + "Solution" + ext
}

// WriteSolution writes the solved rows followed by the timing and
// space footer.
func WriteSolution(w io.Writer, g *domain.Grid, st ports.Stats) error {
	bw := bufio.NewWriter(w)
	if err := writeRows(bw, g); err != nil {
		return err
	}
	fmt.Fprintf(bw, "\nTime complexity: %.6f seconds\n", st.Duration.Seconds())
	fmt.Fprintf(bw, "Space complexity: %d bytes\n", g.Footprint())
	return bw.Flush()
}

// SaveSolution writes the solution file next to the input file and
// returns its path.
func SaveSolution(inputPath string, g *domain.Grid, st ports.Stats) (string, error) {
	out := SolutionPath(inputPath)
	f, err := os.Create(out)
	if err != nil {
		return "", err
	}
	if err := WriteSolution(f, g, st); err != nil {
		f.Close()
		return "", err
	}
	return out, f.Close()
}

// WriteEmpty writes an all-zero n×n puzzle file, used to produce
// synthetic worst-case inputs for timing runs.
func WriteEmpty(n int, path string) error {
	if _, err := domain.NewGrid(n); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "%d\n", n)
	row := strings.TrimSuffix(strings.Repeat("0 ", n), " ")
	for i := 0; i < n; i++ {
		fmt.Fprintln(bw, row)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SavePuzzle writes g in the input format, header included.
func SavePuzzle(path string, g *domain.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "%d\n", g.Size())
	if err := writeRows(bw, g); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeRows(w io.Writer, g *domain.Grid) error {
	n := g.Size()
	for r := 0; r < n; r++ {
		parts := make([]string, n)
		for c := 0; c < n; c++ {
			parts[c] = strconv.Itoa(int(g.At(r, c)))
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}
