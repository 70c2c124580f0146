package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"course-aggregator/internal/aggregator"
	"course-aggregator/internal/config"
	"course-aggregator/internal/server"
)

func main() {
	var addr = flag.String("addr", "", "listen address (default :$PORT)")
	flag.Parse()

	cfg := config.Load()

	listen := *addr
	if listen == "" {
		listen = fmt.Sprintf(":%d", cfg.Port)
	}

	agg := aggregator.New(cfg)
	handler := server.New(agg)

	mux := http.NewServeMux()
	mux.Handle("/api/courses", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	log.Printf("listening on %s (sources=%d)", listen, len(agg.Sources))
	if err := http.ListenAndServe(listen, mux); err != nil {
		log.Fatal(err)
	}
}
