package main

import (
	"flag"
)

var flagBaseURL string
var flagAPIKey string
var flagLogLevel string

// flags override the env-loaded config when set
func parseFlags() {
	flag.StringVar(&flagBaseURL, "b", "", "contacts API base URL")
	flag.StringVar(&flagAPIKey, "k", "", "contacts API key")
	flag.StringVar(&flagLogLevel, "l", "", "log level")
	flag.Parse()
}
