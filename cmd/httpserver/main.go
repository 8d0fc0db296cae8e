// Command httpserver serves static files from a document root, one
// worker per connection.
//
// usage: httpserver -p <port> -r <webroot> [-i <indexFile>] [options]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nareshv/http-server/config"
	"github.com/nareshv/http-server/server"
)

func main() {
	cfg := config.Default()

	flag.IntVar(&cfg.Port, "p", 0, "port to listen on")
	flag.StringVar(&cfg.Root, "r", "", "directory to serve")
	flag.StringVar(&cfg.IndexFile, "i", config.DefaultIndexFile, "index file served for directory requests")
	flag.IntVar(&cfg.UID, "u", 1000, "uid to run as when started as root")
	flag.IntVar(&cfg.GID, "g", 1000, "gid to run as when started as root")
	flag.IntVar(&cfg.Backlog, "backlog", config.DefaultBacklog, "listen backlog depth")
	noIndex := flag.Bool("no-index", false, "answer directory requests with 403 instead of the index file")
	compatPaths := flag.Bool("compat-paths", false, "join request paths without normalization")
	serialize := flag.Bool("serialize", false, "handle one connection at a time")
	noRequireHost := flag.Bool("no-require-host", false, "accept requests without a Host header")
	flag.Parse()

	cfg.ServeIndex = !*noIndex
	cfg.Hardened = !*compatPaths
	cfg.Serialize = *serialize
	cfg.RequireHost = !*noRequireHost

	logger := log.New(os.Stderr, "", 0)

	if cfg.Port == 0 || cfg.Root == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -p <port> -r <webroot> [-i <indexFile>]\n", os.Args[0])
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Printf("[error] %v", err)
		os.Exit(1)
	}

	srv := server.New(cfg, logger)
	if err := srv.Listen(); err != nil {
		logger.Printf("[fatal] %v", err)
		os.Exit(1)
	}

	// Privileges are dropped after bind so low ports still work.
	if err := dropPrivileges(cfg.UID, cfg.GID); err != nil {
		logger.Printf("[fatal] %v", err)
		os.Exit(1)
	}

	if err := srv.Serve(); err != nil {
		os.Exit(1)
	}
}
