package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	Confirmations bool
	Divisions     int
	Color         int
	Thickness     float64
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		Confirmations: true,
		Divisions:     defaultDivisions,
		Color:         defaultColor,
		Thickness:     defaultThickness,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	return loadConfigFile(config, filepath.Join(homeDir, ".thrumrc"), homeDir)
}

func loadConfigFile(config *Config, path, homeDir string) *Config {
	file, err := os.Open(path)
	if err != nil {
		return config
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
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
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.SaveDirectory = value
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "divisions":
			if n, err := strconv.Atoi(value); err == nil {
				if n < minDivisions {
					n = minDivisions
				}
				if n > maxDivisions {
					n = maxDivisions
				}
				config.Divisions = n
			}
		case "color":
			if c, err := strconv.Atoi(value); err == nil && c >= 0 && c < numColors {
				config.Color = c
			}
		case "thickness":
			if t, err := strconv.ParseFloat(value, 64); err == nil && t >= minThickness && t <= maxThickness {
				config.Thickness = t
			}
		}
	}

	return config
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
