package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultImagesDir    = "createdimg"
	DefaultExtension    = ".png"
	DefaultPort         = 5000
	DefaultQRPath       = "qr/qr.png"
	DefaultQRPixels     = 256
	DefaultImageDisplay = 400
	DefaultQRDisplay    = 300
	DefaultProbeAddress = "8.8.8.8:80"
)

// Environment switches, in the spirit of the debug toggles the app has always read at start.
const (
	EnvConfigPath = "KIOSK_CONFIG"
	EnvDebug      = "KIOSK_DEBUG"
	EnvJSONLogs   = "KIOSK_JSON_LOGS"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	ImagesDir    string `yaml:"imagesDir"`
	Extension    string `yaml:"extension"`
	Port         int    `yaml:"port"`
	QRPath       string `yaml:"qrPath"`
	QRPixels     int    `yaml:"qrPixels"`
	ImageDisplay int    `yaml:"imageDisplaySize"`
	QRDisplay    int    `yaml:"qrDisplaySize"`
	ProbeAddress string `yaml:"probeAddress"`
	TerminalQR   bool   `yaml:"terminalQR"`
	LogLevel     string `yaml:"logLevel"`
	JSONLogs     bool   `yaml:"jsonLogs"`
}

func Default() *Config {
	return &Config{
		ImagesDir:    DefaultImagesDir,
		Extension:    DefaultExtension,
		Port:         DefaultPort,
		QRPath:       DefaultQRPath,
		QRPixels:     DefaultQRPixels,
		ImageDisplay: DefaultImageDisplay,
		QRDisplay:    DefaultQRDisplay,
		ProbeAddress: DefaultProbeAddress,
		LogLevel:     "info",
	}
}

// LoadConfig loads configuration from the specified YAML file on top of the defaults
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// FromEnvironment returns the defaults, or the file named by KIOSK_CONFIG, with the
// logging switches applied.
func FromEnvironment() (*Config, error) {
	config := Default()

	if path := os.Getenv(EnvConfigPath); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if os.Getenv(EnvDebug) == "true" {
		config.LogLevel = "debug"
	}
	if os.Getenv(EnvJSONLogs) == "true" {
		config.JSONLogs = true
	}

	return config, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.ImagesDir) == "" {
		return fmt.Errorf("imagesDir must not be empty")
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if strings.TrimSpace(c.QRPath) == "" {
		return fmt.Errorf("qrPath must not be empty")
	}
	if c.QRPixels <= 0 || c.ImageDisplay <= 0 || c.QRDisplay <= 0 {
		return fmt.Errorf("image sizes must be positive")
	}
	if strings.TrimSpace(c.ProbeAddress) == "" {
		return fmt.Errorf("probeAddress must not be empty")
	}
	return nil
}
