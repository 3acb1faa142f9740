package main

import (
	"fmt"
	"log"
	"maps"
	"net"
	"slices"

	"github.com/nhdewitt/screenshare/internal/config"
	"github.com/nhdewitt/screenshare/internal/request"
)

func main() {
	cfg := config.Default()

	listener, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		log.Fatalf("error listening: %v", err.Error())
	}
	defer listener.Close()

	fmt.Println("Listening for TCP traffic on", cfg.Address())
	for {
		c, err := listener.Accept()
		if err != nil {
			log.Fatalf("error accepting connection: %v", err)
		}
		log.Println("Connection accepted:", c.RemoteAddr())

		req, err := request.RequestFromReaderSize(c, cfg.ReadChunkSize, cfg.MaxRequestSize)
		if err != nil {
			log.Printf("error parsing request: %v", err)
			c.Close()
			continue
		}

		fmt.Println("Request line:")
		fmt.Printf("- Method: %s\n", req.RequestLine.Method)
		fmt.Printf("- Target: %s\n", req.RequestLine.RequestTarget)
		fmt.Printf("- Version: %s\n", req.RequestLine.HttpVersion)
		fmt.Println("Headers:")
		for _, k := range slices.Sorted(maps.Keys(req.Headers)) {
			fmt.Printf("- %s: %s\n", k, req.Headers[k])
		}

		c.Close()
		fmt.Println("Connection to", c.RemoteAddr(), "closed")
	}
}
