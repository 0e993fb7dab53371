// Reqcheck is a demo service for request document validation.
//
// Usage:
//
//	# Serve POST /v1/projects, /metrics and /healthz
//	reqcheck serve
//
//	# Validate a project document offline, messages in German
//	reqcheck check --lang de project.json
//	cat project.json | reqcheck check
//
// Configuration is read from the environment (and an optional .env file).
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
