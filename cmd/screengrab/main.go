package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
)

func main() {
	var (
		addr = flag.String("addr", "localhost:8000", "screen server address")
		path = flag.String("path", "/", "request path, e.g. /screen/2")
		out  = flag.String("out", "screen.png", "file to write the PNG to")
	)
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		log.Fatalf("error connecting: %v", err)
	}
	defer conn.Close()

	if _, err := fmt.Fprintf(conn, "GET %s HTTP/1.1\r\nHost: %s\r\n\r\n", *path, *addr); err != nil {
		log.Fatalf("write error: %v", err)
	}

	// the server closes the connection after one response
	raw, err := io.ReadAll(conn)
	if err != nil {
		log.Fatalf("read error: %v", err)
	}

	head, body, ok := bytes.Cut(raw, []byte("\r\n\r\n"))
	if !ok {
		log.Fatalf("malformed response: %q", raw)
	}
	statusLine, _, _ := bytes.Cut(head, []byte("\r\n"))
	fmt.Println(string(statusLine))

	if !bytes.HasPrefix(statusLine, []byte("HTTP/1.1 200 ")) {
		os.Exit(1)
	}
	if err := os.WriteFile(*out, body, 0o644); err != nil {
		log.Fatalf("error writing %s: %v", *out, err)
	}
	fmt.Printf("wrote %d bytes to %s\n", len(body), *out)
}
