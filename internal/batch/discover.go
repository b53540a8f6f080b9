package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/revisor"
	"github.com/tsawler/revisor/internal/config"
)

// lockFilePrefix marks the owner files Word leaves beside open documents.
const lockFilePrefix = "~$"

var (
	// ErrNoDocuments is returned when discovery finds nothing to analyze.
	ErrNoDocuments = errors.New("no documents found")

	// ErrOutputConflict is returned when two documents would write the same
	// report file.
	ErrOutputConflict = errors.New("documents share a report path")
)

// Job is one document to analyze and where its report goes.
type Job struct {
	Input  string
	Output string
}

// Discover lists the documents in the given paths. A directory contributes
// its direct entries with a configured extension, in name order; a file is
// taken as is. Word lock files and repeated inputs are skipped.
//
// Documents whose reports would share a path, such as thesis.docx and
// thesis.odt, get the source extension in the report name
// (thesis_docx_analysis.txt). If reports still collide, Discover fails with
// ErrOutputConflict.
func Discover(paths []string, cfg *config.Config) ([]Job, error) {
	var jobs []Job
	inputs := make(map[string]bool)
	add := func(input string) {
		if key := filepath.Clean(input); !inputs[key] {
			inputs[key] = true
			jobs = append(jobs, newJob(input, cfg))
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", path, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || strings.HasPrefix(name, lockFilePrefix) || !cfg.IsDocument(name) {
				continue
			}
			add(filepath.Join(path, name))
		}
	}

	if len(jobs) == 0 {
		return nil, ErrNoDocuments
	}
	if err := separateOutputs(jobs, cfg); err != nil {
		return nil, err
	}
	return jobs, nil
}

// newJob derives the report path for input. Reports sit next to their
// document unless an output directory is configured.
func newJob(input string, cfg *config.Config) Job {
	output := revisor.OutputPath(input, cfg.Suffix)
	if cfg.OutputDir != "" {
		output = filepath.Join(cfg.OutputDir, filepath.Base(output))
	}
	return Job{Input: input, Output: output}
}

// separateOutputs renames the reports of jobs that share an output path to
// include their source extension, then checks that every path is unique.
func separateOutputs(jobs []Job, cfg *config.Config) error {
	shared := make(map[string]int, len(jobs))
	for _, job := range jobs {
		shared[filepath.Clean(job.Output)]++
	}
	for i := range jobs {
		if shared[filepath.Clean(jobs[i].Output)] > 1 {
			jobs[i].Output = extensionOutput(jobs[i], cfg.Suffix)
		}
	}

	owners := make(map[string]string, len(jobs))
	for _, job := range jobs {
		key := filepath.Clean(job.Output)
		if prev, ok := owners[key]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", ErrOutputConflict, prev, job.Input, job.Output)
		}
		owners[key] = job.Input
	}
	return nil
}

// extensionOutput returns the report path of job with the lower-cased
// source extension added to the stem.
func extensionOutput(job Job, suffix string) string {
	base := filepath.Base(job.Input)
	ext := filepath.Ext(base)
	tag := strings.ToLower(strings.TrimPrefix(ext, "."))
	if tag == "" {
		return job.Output
	}
	name := strings.TrimSuffix(base, ext) + "_" + tag + suffix + revisor.ReportExtension
	return filepath.Join(filepath.Dir(job.Output), name)
}
