package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the simulation host's configuration values.
type Config struct {
	MazeFile       string // Path to a maze file to load; empty means generate instead
	MazeWidth      int    // Width (in cells) to generate if MazeFile is empty
	MazeHeight     int    // Height (in cells) to generate if MazeFile is empty
	MazeSeed       uint32 // 32-bit seed for the generator
	BotCommand     string // Shell command line used to spawn the bot process
	BotWorkDir     string // Working directory for the bot process
	TickIntervalMs int    // Milliseconds between ticks of the movement state machine
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MazeFile:       getEnvWithDefault("MAZE_FILE", ""),
		MazeWidth:      getEnvAsIntWithDefault("MAZE_WIDTH", 16),
		MazeHeight:     getEnvAsIntWithDefault("MAZE_HEIGHT", 16),
		MazeSeed:       uint32(getEnvAsIntWithDefault("MAZE_SEED", 1)),
		BotCommand:     getEnvWithDefault("BOT_COMMAND", ""),
		BotWorkDir:     getEnvWithDefault("BOT_WORKDIR", ""),
		TickIntervalMs: getEnvAsIntWithDefault("TICK_INTERVAL_MS", 50),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as
// an integer, falling back to defaultValue if unset or unparsable.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be an integer, using default %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
