package main

import (
	"log"
	"os"

	"riskprojection/cmd"
	"riskprojection/internal/logger"
)

func main() {
	logger.Info("starting api, commit %s", os.Getenv("commit_hash"))
	apiHandler, port, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	err = apiHandler.StartApi(port)
	cmd.CloseDependencies(apiHandler)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
