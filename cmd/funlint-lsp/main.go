package main

import (
	"log"
	"os"
)

func main() {
	// Stdout carries the protocol, so logging goes to stderr.
	log.SetOutput(os.Stderr)
	log.SetPrefix("funlint-lsp: ")

	NewLanguageServer(os.Stdout).Start()
}
