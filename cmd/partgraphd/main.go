package main

import (
	"log"

	"github.com/ficsit-tools/partgraph/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
