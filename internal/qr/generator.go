// Package qr renders download URLs into QR code artifacts.
package qr

import (
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"qr-kiosk/internal/logger"
	"qr-kiosk/internal/netaddr"

	"github.com/mdp/qrterminal/v3"
	"github.com/skip2/go-qrcode"
)

// Block characters for the half-block terminal rendering
const (
	blackWhite = "\u2584"
	blackBlack = " "
	whiteBlack = "\u2580"
	whiteWhite = "\u2588"
)

type AddressResolver interface {
	Resolve() netaddr.Address
}

type Result struct {
	Path    string
	URL     string
	Address netaddr.Address
}

type Generator struct {
	resolver AddressResolver
	port     int
	outPath  string
	pixels   int
	terminal io.Writer
	logger   logger.Logger
}

func NewGenerator(resolver AddressResolver, port int, outPath string, pixels int, log logger.Logger) *Generator {
	return &Generator{
		resolver: resolver,
		port:     port,
		outPath:  outPath,
		pixels:   pixels,
		logger:   log,
	}
}

// EchoTo additionally prints every generated code as block characters to w.
func (g *Generator) EchoTo(w io.Writer) {
	g.terminal = w
}

func DownloadURL(host string, port int, filename string) string {
	u := url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/download/" + filename,
	}
	return u.String()
}

// Generate encodes the download URL for imagePath and overwrites the artifact.
func (g *Generator) Generate(imagePath string) (*Result, error) {
	filename := filepath.Base(imagePath)
	addr := g.resolver.Resolve()
	link := DownloadURL(addr.IP, g.port, filename)

	png, err := qrcode.Encode(link, qrcode.Medium, g.pixels)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	if dir := filepath.Dir(g.outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create QR directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(g.outPath, png, 0644); err != nil {
		return nil, fmt.Errorf("failed to write QR code %s: %w", g.outPath, err)
	}

	if addr.Fallback {
		g.logger.Warning("QRGenerator", "local address unresolved, using loopback", map[string]interface{}{
			"url": link,
		})
	}
	g.logger.Debug("QRGenerator", "QR code written", map[string]interface{}{
		"path": g.outPath,
		"url":  link,
	})

	if g.terminal != nil {
		qrterminal.GenerateWithConfig(link, qrterminal.Config{
			Level:          qrterminal.M,
			Writer:         g.terminal,
			HalfBlocks:     true,
			BlackChar:      blackBlack,
			WhiteBlackChar: whiteBlack,
			WhiteChar:      whiteWhite,
			BlackWhiteChar: blackWhite,
			QuietZone:      1,
		})
	}

	return &Result{Path: g.outPath, URL: link, Address: addr}, nil
}
