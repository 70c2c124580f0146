package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"course-aggregator/internal/aggregator"
	"course-aggregator/internal/concurrency"
	"course-aggregator/internal/config"
	"course-aggregator/internal/domain"
	"course-aggregator/internal/export"
	"course-aggregator/internal/sftpclient"
)

func main() {
	var (
		outPath    = flag.String("out", "courses", "output path without extension")
		format     = flag.String("format", "csv", "output format: csv, xml or both")
		query      = flag.String("q", "", "search query passed to the sources")
		uploadSFTP = flag.Bool("sftp", false, "upload the generated file(s) via SFTP")
	)
	flag.Parse()

	rootCtx, rootCancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer rootCancel()

	cfg := config.Load()

	// asegura dir de salida
	if dir := filepath.Dir(*outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}

	agg := aggregator.New(cfg)
	courses := agg.Search(rootCtx, strings.TrimSpace(*query))
	log.Printf("fetched %d courses from %d sources", len(courses), len(agg.Sources))

	written, err := writeArtifacts(*outPath, *format, courses)
	if err != nil {
		log.Fatal(err)
	}
	for _, f := range written {
		log.Printf("wrote %s", f)
	}

	if *uploadSFTP {
		upCfg := sftpclient.Config{
			Host:                  cfg.SFTPHost,
			Port:                  cfg.SFTPPort,
			User:                  cfg.SFTPUser,
			Pass:                  cfg.SFTPPass,
			RemoteDir:             cfg.SFTPDir,
			InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		}

		upCtx, upCancel := context.WithTimeout(rootCtx, 2*time.Minute)
		defer upCancel()

		_, errs := concurrency.Settle(upCtx, written, func(ctx context.Context, _ int, local string) (struct{}, error) {
			return struct{}{}, sftpclient.UploadFile(ctx, upCfg, local, filepath.Base(local))
		})
		for i, err := range errs {
			if err != nil {
				log.Fatalf("upload %s: %v", written[i], err)
			}
			log.Printf("uploaded sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, filepath.Base(written[i]))
		}
	}
}

func writeArtifacts(outPath, format string, courses []domain.Course) ([]string, error) {
	var written []string

	writeOne := func(ext string, write func(f *os.File) error) error {
		name := outPath + "." + ext
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := write(f); err != nil {
			return err
		}
		written = append(written, name)
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		if err := writeOne("csv", func(f *os.File) error { return export.WriteCatalogCSV(f, courses) }); err != nil {
			return nil, err
		}
	case "xml":
		if err := writeOne("xml", func(f *os.File) error { return export.WriteCatalogXML(f, courses) }); err != nil {
			return nil, err
		}
	case "both":
		if err := writeOne("csv", func(f *os.File) error { return export.WriteCatalogCSV(f, courses) }); err != nil {
			return nil, err
		}
		if err := writeOne("xml", func(f *os.File) error { return export.WriteCatalogXML(f, courses) }); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %q (want csv, xml or both)", format)
	}

	return written, nil
}
