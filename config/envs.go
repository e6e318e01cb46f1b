package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the service configuration values.
type Config struct {
	HostIP        string // Host IP for the server
	RESTPort      int    // Port for the REST API
	DBHost        string // Hostname or IP address for the database
	DBPort        int    // Port number for the database
	DBUser        string // Username for the database
	DBPassword    string // Password for the database
	DBName        string // Name of the database
	RedisHost     string // Hostname or IP address for the solution cache
	RedisPort     int    // Port number for the solution cache
	RedisPassword string // Password for the solution cache
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret     string // Secret key for JWT signing
	JWTIssuer     string // Issuer claim for JWTs

	Solver SolverConfig
}

// SolverConfig holds the search defaults shared by the CLI and the service.
type SolverConfig struct {
	Strategy        string // Default search strategy (dfs, bfs, astar)
	ExpansionLimit  int    // Maximum frontier removals per solve; 0 is unlimited
	CacheTTLSeconds int    // Lifetime of cached solutions
	MaxMazeBytes    int    // Largest maze body the service accepts
}

// Envs holds the service configuration once Load has run.
var Envs Config

// Load reads the .env file if present and populates Envs from the
// environment. Missing required variables are fatal.
func Load() Config {
	loadDotEnv()

	Envs = Config{
		DBHost:        mustGetEnv("DB_HOST"),
		DBPort:        mustGetEnvAsInt("DB_PORT"),
		DBUser:        mustGetEnv("DB_USER"),
		DBPassword:    mustGetEnv("DB_PASS"),
		DBName:        mustGetEnv("DB_NAME"),
		RedisHost:     mustGetEnv("REDIS_HOST"),
		RedisPort:     mustGetEnvAsInt("REDIS_PORT"),
		RedisPassword: getEnvWithDefault("REDIS_PASS", ""),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:     mustGetEnv("JWT_SECRET"),
		JWTIssuer:     mustGetEnv("JWT_ISSUER"),
		HostIP:        mustGetEnv("HOST_IP"),
		RESTPort:      mustGetEnvAsInt("REST_PORT"),
		Solver:        LoadSolver(),
	}
	return Envs
}

// LoadSolver reads the solver defaults. Every value is optional.
func LoadSolver() SolverConfig {
	loadDotEnv()

	return SolverConfig{
		Strategy:        getEnvWithDefault("SOLVER_STRATEGY", "astar"),
		ExpansionLimit:  getEnvAsIntWithDefault("SOLVER_EXPANSION_LIMIT", 0),
		CacheTTLSeconds: getEnvAsIntWithDefault("SOLVER_CACHE_TTL_SECONDS", 3600),
		MaxMazeBytes:    getEnvAsIntWithDefault("SOLVER_MAX_MAZE_BYTES", 1<<20),
	}
}

// loadDotEnv loads the .env file if available. Existing variables win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
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

// getEnvAsIntWithDefault is getEnvWithDefault for integers. Unparsable values fall back to the default.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
