package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/syncforge/core/pkg/domain/file_generators"
	pb "github.com/syncforge/core/pkg/types/pb"
)

func main() {
	inputFile := flag.String("input", "", "Path to input JSON file (StandardizedActivity)")
	outputFile := flag.String("output", "output.fit", "Path to output FIT file")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	// 1. Read JSON
	data, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	// 2. Unmarshal to the activity struct
	var activity pb.StandardizedActivity
	if err := json.Unmarshal(data, &activity); err != nil {
		log.Fatalf("Failed to parse JSON: %v", err)
	}

	// 3. Generate FIT
	fitData, err := file_generators.GenerateFitFile(&activity)
	if err != nil {
		log.Fatalf("Failed to generate FIT file: %v", err)
	}

	// 5. Write Output
	if err := os.WriteFile(*outputFile, fitData, 0644); err != nil {
		log.Fatalf("Failed to write output file: %v", err)
	}

	fmt.Printf("Successfully wrote FIT file to %s (%d bytes)\n", *outputFile, len(fitData))
}
