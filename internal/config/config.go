package config

import (
	"fmt"
	"net"
	"strconv"
)

const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 8000
	DefaultReadChunkSize  = 4096
	DefaultMaxRequestSize = 64 * 1024
)

// Config holds the fixed server settings. There is no file, flag or
// environment layer; callers start from Default.
type Config struct {
	Host string
	Port int

	// ReadChunkSize is the size of each socket read. A read shorter than
	// this ends the request.
	ReadChunkSize int
	// MaxRequestSize caps the bytes accumulated for a single request.
	MaxRequestSize int
}

func Default() *Config {
	return &Config{
		Host:           DefaultHost,
		Port:           DefaultPort,
		ReadChunkSize:  DefaultReadChunkSize,
		MaxRequestSize: DefaultMaxRequestSize,
	}
}

func (c *Config) Validate() error {
	// 0 asks the OS for an ephemeral port
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.ReadChunkSize <= 0 {
		return fmt.Errorf("invalid read chunk size: %d", c.ReadChunkSize)
	}
	if c.MaxRequestSize < c.ReadChunkSize {
		return fmt.Errorf("max request size %d is smaller than read chunk size %d", c.MaxRequestSize, c.ReadChunkSize)
	}
	return nil
}

// Address returns host:port for net.Listen.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
