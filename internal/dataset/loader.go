package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"go-dashboard-pipeline/internal/model"

	"github.com/go-gota/gota/dataframe"
)

// Candidate file names per dataset, probed in order. The first existing file
// wins; the pre-cleaned ratings file is preferred over the raw one.
var (
	ComplaintCandidates = []string{"cybercrime_top10.csv", "cybercrime.csv"}
	RatingCandidates    = []string{"movie_ratings.csv", "movie_ratings_EC.csv"}
)

// Dataset is one loaded and normalized source table. Frame holds the
// synthesized (complaints) or exploded (ratings) view that every downstream
// filter and aggregate runs against; it is treated as immutable after load.
type Dataset struct {
	Kind    Kind
	Path    string
	Frame   dataframe.DataFrame
	RawRows int
}

// Resolve probes the candidate file names under dir and returns the first
// that exists. All candidates absent is a fatal condition surfaced as a
// MissingFileError naming every expected file.
func Resolve(dir string, candidates []string) (string, error) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", &model.MissingFileError{Dir: dir, Candidates: candidates}
}

// Load reads the table at path, detects its schema and dispatches to the
// matching normalization routine.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.NaNValues([]string{"", "NA", "NaN", "nan"}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to read CSV %s: %w", path, df.Err)
	}

	kind, err := DetectKind(path, df)
	if err != nil {
		return nil, err
	}

	var ds *Dataset
	switch kind {
	case KindComplaints:
		ds, err = normalizeComplaints(path, df)
	case KindRatings:
		ds, err = explodeRatings(path, df)
	}
	if err != nil {
		return nil, err
	}

	fmt.Printf("📄 Loaded %s dataset from %s: %d raw rows → %d rows\n",
		ds.Kind, path, ds.RawRows, ds.Frame.Nrow())
	return ds, nil
}

// LoadDir resolves the candidate file names under dir and loads the winner.
func LoadDir(dir string, candidates []string) (*Dataset, error) {
	path, err := Resolve(dir, candidates)
	if err != nil {
		return nil, err
	}
	return Load(path)
}
