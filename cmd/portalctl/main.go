package main

import (
	"os"

	"github.com/AshuKumar2005/CityAcces/pkg/logger"
)

func main() {
	logger.Init(logger.Options{Level: os.Getenv("LOG_LEVEL"), Pretty: true, Service: "portalctl"})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
