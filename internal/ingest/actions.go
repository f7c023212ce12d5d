// Package ingest binds the processing pipeline to the CLI.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/search-ingest/models"
	"github.com/dtnitsch/search-ingest/pkg/metadata"
	"github.com/dtnitsch/search-ingest/pkg/processor"
	"github.com/dtnitsch/search-ingest/pkg/store"
)

// ProcessAction processes one HTML page from a file or stdin.
func ProcessAction(c *cli.Context) error {
	rawURL := c.String("url")
	if rawURL == "" {
		return fmt.Errorf("missing required flag: url")
	}

	html, err := readInput(c.String("file"))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	profile := metadata.FullProfile
	if c.Bool("minimal") {
		profile = metadata.MinimalProfile
	}

	proc := processor.New(cfg)
	doc, err := proc.ProcessWithProfile(html, rawURL, profile)
	if err != nil {
		// Emit the placeholder shape so stream consumers still receive
		// a document record for the failed URL.
		if werr := writeDocument(c.App.Writer, processor.EmptyDocument(), c.String("format")); werr != nil {
			return werr
		}
		return err
	}

	if dbPath := c.String("store"); dbPath != "" {
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Save(rawURL, doc); err != nil {
			return err
		}
		log.Printf("Saved document for %s to %s", rawURL, st.Path())
	}

	return writeDocument(c.App.Writer, doc, c.String("format"))
}

// ListAction prints stored URLs ordered by quality score.
func ListAction(c *cli.Context) error {
	st, err := store.Open(c.String("store"))
	if err != nil {
		return err
	}
	defer st.Close()

	urls, err := st.ListURLs(c.Int("limit"))
	if err != nil {
		return err
	}
	for _, u := range urls {
		fmt.Fprintln(c.App.Writer, u)
	}
	return nil
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

func loadConfig(path string) (models.Config, error) {
	if path == "" {
		return models.DefaultConfig(), nil
	}
	return models.LoadConfig(path)
}

func writeDocument(w io.Writer, doc *models.Document, format string) error {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
}
