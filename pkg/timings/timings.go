package timings

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
)

// Extension of timing files: one integer nanosecond duration per line
const Extension = ".time"

var (
	ErrNoSamples = errors.New("no timing samples")
	ErrBadSample = errors.New("invalid timing sample")
)

// Summary describes the running time of one dataset
type Summary struct {
	Samples  int
	Mean     float64
	StdDev   float64 // population standard deviation
	ErrorBar float64 // half the standard deviation
}

// Path returns the timing file of a dataset
func Path(dir, name string) string {
	return filepath.Join(dir, name+Extension)
}

// Append adds one measured duration to the dataset's timing file, creating it
// if needed. Previous samples are kept.
func Append(dir, name string, d time.Duration) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create times directory: %w", err)
	}

	f, err := os.OpenFile(Path(dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open timing file: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%d\n", d.Nanoseconds()); err != nil {
		f.Close()
		return fmt.Errorf("failed to append timing: %w", err)
	}
	return f.Close()
}

// List returns the names of datasets that have a timing file in dir, sorted
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list timing files: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Extension))
	}
	return names, nil
}

// Read returns every sample of a timing file. Blank lines are ignored.
func Read(path string) ([]int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var samples []int64
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %q", ErrBadSample, path, lineNum, line)
		}
		samples = append(samples, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return samples, nil
}

// Summarize computes mean and population standard deviation of samples
func Summarize(samples []int64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrNoSamples
	}

	data := stats.LoadRawData(samples)
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to compute mean: %w", err)
	}
	sd, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to compute standard deviation: %w", err)
	}

	return Summary{
		Samples:  len(samples),
		Mean:     mean,
		StdDev:   sd,
		ErrorBar: sd / 2,
	}, nil
}

// Load reads and summarizes the timing file of a dataset
func Load(dir, name string) (Summary, error) {
	samples, err := Read(Path(dir, name))
	if err != nil {
		return Summary{}, err
	}
	s, err := Summarize(samples)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}
