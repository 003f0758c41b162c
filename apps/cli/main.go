package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	logger := log.New(os.Stderr, "CLI : ", log.LstdFlags)

	if err := stdout().run(os.Args); err != nil {
		if err != errHelp && err != flag.ErrHelp {
			logger.Printf("error: %s\n", err)
		}
		os.Exit(1)
	}
}
