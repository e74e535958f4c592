package main

import (
	"flag"
	"log"

	"github.com/df07/go-strip-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to run the web server on")
	flag.Parse()

	srv := server.NewServer(*port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
