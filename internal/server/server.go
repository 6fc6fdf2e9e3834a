// Package server exposes the device capabilities as MCP tools.
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/mj1618/mobile-cli/internal/model"
	"github.com/mj1618/mobile-cli/internal/platform"
)

// DeviceSource lists devices and resolves the robot for a device id.
// *platform.Provider satisfies it.
type DeviceSource interface {
	Devices(ctx context.Context) ([]model.Device, error)
	Robot(ctx context.Context, deviceID string) (platform.Robot, model.Device, error)
}

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
	Version   string
}

// Server wraps the MCP server with the device source and element cache.
type Server struct {
	devices DeviceSource
	cache   *ElementCache
	log     *zap.Logger
	mcp     *mcpserver.MCPServer

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates and configures an MCP server with all device tools.
func New(devices DeviceSource, cfg Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}

	s := &Server{
		devices: devices,
		cache:   NewElementCache(cfg.CacheTTL),
		log:     log,
		locks:   make(map[string]*sync.Mutex),
	}
	s.mcp = mcpserver.NewMCPServer("mobile-cli", cfg.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio", "":
		s.log.Info("mcp server running", zap.String("transport", "stdio"))
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", cfg.Port)
		s.log.Info("mcp server running", zap.String("transport", cfg.Transport), zap.String("addr", addr))
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

// deviceLock serializes calls against one device. Distinct devices run
// concurrently.
func (s *Server) deviceLock(deviceID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[deviceID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[deviceID] = l
	}
	return l
}
