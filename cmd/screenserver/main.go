package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nhdewitt/screenshare/internal/config"
	"github.com/nhdewitt/screenshare/internal/display"
	"github.com/nhdewitt/screenshare/internal/route"
	"github.com/nhdewitt/screenshare/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 1
	}

	screens := display.Screens{}
	displays, err := display.Enumerate(screens)
	if err != nil {
		log.Printf("Error enumerating displays: %v", err)
		return 1
	}
	if displays.Len() == 0 {
		log.Println("No active displays found, every request will get 404")
	}
	for _, d := range displays.All() {
		log.Println("Found", d)
	}

	srv, err := server.Listen(cfg, route.NewResponder(displays, screens).Respond)
	if err != nil {
		log.Printf("Error starting server: %v", err)
		return 1
	}
	log.Println("Server started on", srv.Addr())

	// the worker owns the whole accept loop; this goroutine only waits
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("worker panic: %v", r)
			}
		}()
		done <- srv.Serve()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		_ = srv.Close()
		log.Printf("Server stopped unexpectedly: %v", err)
		return 1
	case sig := <-sigChan:
		log.Printf("Received %v, shutting down", sig)
	}

	if err := srv.Close(); err != nil {
		log.Printf("Error closing listener: %v", err)
	}
	// a connection in progress is finished first
	if err := <-done; err != nil {
		log.Printf("Server stopped with error: %v", err)
		return 1
	}
	log.Println("Server gracefully stopped")
	return 0
}
