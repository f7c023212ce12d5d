package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/search-ingest/internal/ingest"
)

func main() {
	app := &cli.App{
		Name:  "search-ingest",
		Usage: "Convert raw HTML pages into normalized, search-indexable documents",
		Commands: []*cli.Command{
			{
				Name:   "process",
				Usage:  "Process one HTML page from a file or stdin",
				Action: ingest.ProcessAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "url",
						Usage:    "Source URL of the page (used for heuristics and scoring)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "file",
						Usage: "HTML input file (reads stdin when omitted)",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file with pipeline limits",
					},
					&cli.StringFlag{
						Name:  "store",
						Usage: "SQLite database to save the document to",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: json or yaml",
						Value: "json",
					},
					&cli.BoolFlag{
						Name:  "minimal",
						Usage: "Skip category and content-type analysis",
					},
				},
			},
			{
				Name:   "batch",
				Usage:  "Process every HTML file in a directory into the store",
				Action: ingest.BatchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "dir",
						Usage:    "Directory of .html files",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "url-prefix",
						Usage: "URL prefix each file name is joined to",
						Value: "https://localhost",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file with pipeline limits",
					},
					&cli.StringFlag{
						Name:     "store",
						Usage:    "SQLite database to save documents to",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent workers",
						Value: 4,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List stored document URLs by quality score",
				Action: ingest.ListAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "store",
						Usage:    "SQLite database to read",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of URLs to print",
						Value: 20,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
