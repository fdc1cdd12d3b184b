package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	// Glyph is the base name of exported files.
	Glyph string
	// Scale is the number of font units per terminal column. A row is
	// twice as tall.
	Scale float64
	// ImageSize is the side length of exported PNG images.
	ImageSize int
}

func defaultConfig() *Config {
	return &Config{
		Glyph:     "roundshape",
		Scale:     10,
		ImageSize: 512,
	}
}

// loadConfig reads the config file at path, or ~/.roundshaperc if path is
// empty. A missing or unreadable file yields the defaults.
func loadConfig(path string) *Config {
	homeDir, _ := os.UserHomeDir()
	if path == "" {
		if homeDir == "" {
			return defaultConfig()
		}
		path = filepath.Join(homeDir, ".roundshaperc")
	}
	file, err := os.Open(path)
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()
	return parseConfig(file, homeDir)
}

func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "glyph", "name":
			if value != "" {
				config.Glyph = value
			}
		case "scale":
			if v, err := strconv.ParseFloat(value, 64); err == nil && v > 0 {
				config.Scale = v
			}
		case "imagesize", "image_size":
			if v, err := strconv.Atoi(value); err == nil && v > 0 {
				config.ImageSize = v
			}
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// SavePath returns the path of an exported file, creating the save
// directory if necessary.
func (c *Config) SavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("failed to create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
