package ingest

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/search-ingest/models"
	"github.com/dtnitsch/search-ingest/pkg/processor"
	"github.com/dtnitsch/search-ingest/pkg/store"
)

// Job defines a page for a worker to process.
type Job struct {
	URL      string
	FilePath string
}

// Result holds the outcome of a processed job.
type Result struct {
	URL       string
	Document  *models.Document
	Error     error
	ErrorType string
}

// BatchAction processes every HTML file in a directory through a worker
// pool and saves the results to the document store.
func BatchAction(c *cli.Context) error {
	dir := c.String("dir")
	if dir == "" {
		return fmt.Errorf("missing required flag: dir")
	}
	urlPrefix := strings.TrimSuffix(c.String("url-prefix"), "/")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	st, err := store.Open(c.String("store"))
	if err != nil {
		return err
	}
	defer st.Close()

	numWorkers := c.Int("workers")
	if numWorkers < 1 {
		numWorkers = 4
	}

	jobs := make(chan Job, numWorkers)
	results := make(chan Result, numWorkers)

	proc := processor.New(cfg)
	var wg sync.WaitGroup
	for i := 1; i <= numWorkers; i++ {
		wg.Add(1)
		go worker(i, proc, &wg, jobs, results)
	}

	go func() {
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || (!strings.HasSuffix(name, ".html") && !strings.HasSuffix(name, ".htm")) {
				continue
			}
			jobs <- Job{
				URL:      urlPrefix + "/" + name,
				FilePath: filepath.Join(dir, name),
			}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	processed, failed := 0, 0
	for result := range results {
		if result.Error != nil {
			failed++
			log.Printf("Error (%s) for %s: %s", result.ErrorType, result.URL, result.Error)
			continue
		}
		if err := st.Save(result.URL, result.Document); err != nil {
			failed++
			log.Printf("Error (save_error) for %s: %s", result.URL, err)
			continue
		}
		processed++
	}

	log.Printf("Batch complete: %d processed, %d failed", processed, failed)
	return nil
}

// worker processes jobs from the jobs channel and sends results to the
// results channel.
func worker(id int, proc *processor.Processor, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		log.Printf("Worker %d started job for URL: %s", id, job.URL)
		result := Result{URL: job.URL}

		data, err := os.ReadFile(job.FilePath)
		if err != nil {
			result.Error = err
			result.ErrorType = "read_error"
			results <- result
			continue
		}

		doc, err := proc.Process(string(data), job.URL)
		if err != nil {
			result.Document = processor.EmptyDocument()
			result.Error = err
			result.ErrorType = "process_error"
			results <- result
			continue
		}

		result.Document = doc
		results <- result
		log.Printf("Worker %d finished job for URL: %s", id, job.URL)
	}
}
