// Command armada-server serves games over a JSON HTTP API.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/armadachess/armada/internal/config"
	"github.com/armadachess/armada/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	listenAddr := flag.String("listen", "", "listen address (overrides config)")
	flag.Parse()

	logger := log.New(os.Stderr, "armada-server: ", log.LstdFlags)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal(err)
		}
		cfg = loaded
	}
	if *listenAddr != "" {
		cfg.Server.ListenAddr = *listenAddr
	}

	h := server.NewHandler(server.NewManager(), cfg.Server.WindowMax, logger)
	logger.Printf("listening on %s", cfg.Server.ListenAddr)
	if err := http.ListenAndServe(cfg.Server.ListenAddr, h.Router()); err != nil {
		logger.Fatal(err)
	}
}
