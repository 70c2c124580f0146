package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// RapidAPI (gates the Udemy source: no key, no source)
	RapidAPIKey  string
	RapidAPIHost string

	// Source endpoints (overridable for tests/staging)
	CourseraBaseURL     string
	ClassCentralFeedURL string
	FCCCurriculumURL    string
	GFGFeedURL          string

	// Outbound HTTP
	HTTPTimeout time.Duration

	// Server
	Port int

	// SFTP (export upload)
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
}

func Load() Config {
	return Config{
		// RapidAPI
		RapidAPIKey:  os.Getenv("RAPIDAPI_KEY"),
		RapidAPIHost: getenv("RAPIDAPI_HOST", "udemy-course-scrapper-api.p.rapidapi.com"),

		// Sources
		CourseraBaseURL:     getenv("COURSERA_BASE_URL", "https://api.coursera.org"),
		ClassCentralFeedURL: getenv("CLASSCENTRAL_FEED_URL", "https://www.classcentral.com/api/courses/feed.json"),
		FCCCurriculumURL:    getenv("FCC_CURRICULUM_URL", "https://www.freecodecamp.org/curriculum.json"),
		GFGFeedURL:          getenv("GFG_FEED_URL", "https://www.geeksforgeeks.org/feed/"),

		HTTPTimeout: time.Duration(getenvInt("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,

		Port: getenvInt("PORT", 8080),

		// SFTP
		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/catalog"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", true),
	}
}

// UdemyEnabled reports whether the paid-course source should be wired in.
func (c Config) UdemyEnabled() bool {
	return c.RapidAPIKey != ""
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
