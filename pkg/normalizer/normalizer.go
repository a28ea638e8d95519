package normalizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/gilchrisn/graph-datasets/pkg/graph"
	"github.com/gilchrisn/graph-datasets/pkg/sizes"
	"github.com/gilchrisn/graph-datasets/pkg/utils"
)

// EdgeListExtension is the extension of normalized edge-list files
const EdgeListExtension = ".edges"

var (
	ErrMalformedLine  = errors.New("malformed edge line")
	ErrShortHeader    = errors.New("file ends before header lines are skipped")
	ErrEmptySeparator = errors.New("empty separator")
	ErrNegativeSkip   = errors.New("negative header skip count")
)

// maxLineSize bounds a single input line
const maxLineSize = 1 << 20

// Dataset describes where a raw dataset lives and how its lines are laid out
type Dataset struct {
	Path      string // directory under the download root, e.g. "com-amazon/"
	Name      string // file name without extension; also the dataset key
	Extension string // e.g. ".txt", ".csv", ".edges"
	Separator string // literal field separator
	Skip      int    // header lines to discard
}

// Source returns the raw file location under root
func (d Dataset) Source(root string) string {
	return filepath.Join(root, d.Path, d.Name+d.Extension)
}

// Normalizer converts raw datasets into bidirectional edge lists and records
// their sizes in the shared store
type Normalizer struct {
	DownloadDir string
	InputDir    string
	SizesFile   string

	logger zerolog.Logger
}

// NewNormalizer creates a normalizer reading from downloadDir, writing edge
// lists into inputDir and sizes into sizesFile
func NewNormalizer(downloadDir, inputDir, sizesFile string, logger zerolog.Logger) *Normalizer {
	return &Normalizer{
		DownloadDir: downloadDir,
		InputDir:    inputDir,
		SizesFile:   sizesFile,
		logger:      logger,
	}
}

// EdgeListPath returns the normalized edge-list path of a dataset in dir
func EdgeListPath(dir, name string) string {
	return filepath.Join(dir, name+EdgeListExtension)
}

// Destination returns the edge-list path for a dataset name
func (n *Normalizer) Destination(name string) string {
	return EdgeListPath(n.InputDir, name)
}

// Normalize converts ds and records its size. The whole input is parsed
// before anything is written, so a malformed line leaves the previous edge
// list and store untouched.
func (n *Normalizer) Normalize(ds Dataset) (sizes.Size, error) {
	src := ds.Source(n.DownloadDir)
	log := n.logger.With().Str("dataset", ds.Name).Logger()
	log.Debug().Str("source", src).Msg("Reading dataset")

	if err := utils.CheckFilesExist(src); err != nil {
		return sizes.Size{}, fmt.Errorf("dataset %s not downloaded: %w", ds.Name, err)
	}

	file, err := os.Open(src)
	if err != nil {
		return sizes.Size{}, fmt.Errorf("failed to open dataset %s: %w", ds.Name, err)
	}
	defer file.Close()

	g, err := Parse(file, ds.Separator, ds.Skip)
	if err != nil {
		return sizes.Size{}, fmt.Errorf("failed to parse %s: %w", src, err)
	}

	dest := n.Destination(ds.Name)
	err = utils.WriteFileAtomic(dest, func(w io.Writer) error {
		return WriteEdgeList(w, g)
	})
	if err != nil {
		return sizes.Size{}, fmt.Errorf("failed to write edge list for %s: %w", ds.Name, err)
	}

	size := sizes.Size{N: g.NumNodes(), M: g.NumEdges()}
	if _, err := sizes.Update(n.SizesFile, ds.Name, size); err != nil {
		return sizes.Size{}, fmt.Errorf("failed to record size of %s: %w", ds.Name, err)
	}

	log.Info().
		Str("nodes", humanize.Comma(int64(size.N))).
		Str("edges", humanize.Comma(int64(size.M))).
		Str("path", dest).
		Msg("Dataset normalized")

	return size, nil
}

// Parse reads an edge list whose first skip lines are headers. Each
// remaining non-empty line must split on sep into at least two fields; the
// first two are the edge endpoints and the rest are ignored.
func Parse(r io.Reader, sep string, skip int) (*graph.Graph, error) {
	if sep == "" {
		return nil, ErrEmptySeparator
	}
	if skip < 0 {
		return nil, ErrNegativeSkip
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for i := 0; i < skip; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("error reading header: %w", err)
			}
			return nil, fmt.Errorf("%w: wanted %d, got %d", ErrShortHeader, skip, i)
		}
	}

	g := graph.NewGraph()
	lineNum := skip
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, sep, 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNum, line)
		}
		g.AddEdge(parts[0], parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading line %d: %w", lineNum+1, err)
	}

	return g, nil
}

// WriteEdgeList writes both directions of every edge, "u v" then "v u", in
// the graph's edge order
func WriteEdgeList(w io.Writer, g *graph.Graph) error {
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "%s %s\n%s %s\n", e.From, e.To, e.To, e.From); err != nil {
			return err
		}
	}
	return nil
}

// ReadEdgeList loads a normalized edge-list file
func ReadEdgeList(path string) (*graph.Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	g, err := Parse(file, " ", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return g, nil
}
