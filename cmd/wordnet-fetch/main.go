// Command wordnet-fetch downloads the WordNet 3.0 data files embedded by
// internal/dictionary. It runs from go generate in that package.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-small-safe/internal/dictionary"
	"github.com/MKhiriev/go-small-safe/internal/logger"
)

func main() {
	out := flag.String("out", "data", "directory receiving data.adj, data.adv, data.noun and data.verb")
	url := flag.String("url", dictionary.WordNetURL, "WordNet database archive (tar.gz)")
	flag.Parse()

	log := logger.NewFileLogger("wordnet-fetch", "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dictionary.Fetch(ctx, *url, *out, log); err != nil {
		log.Error().Err(err).Msg("error fetching word dictionary")
		os.Exit(1)
	}
}
