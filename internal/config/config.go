package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultRunAddr      = ":8080"
	defaultLogLevel     = "info"
	defaultFeedbackRate = 5
)

type Options struct {
	runAddr      string
	logLevel     string
	dataBaseDSN  string
	catalogFile  string
	shuffleSeed  int64
	feedbackRate int
}

func NewOptions() *Options {
	return new(Options)
}

// ParseFlags handles command line arguments
// and stores their values in the corresponding variables.
func (o *Options) ParseFlags() {
	// Load environment variables from the .env file
	loadEnvFile()

	if err := o.parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// parse registers the options on fs with environment defaults and parses args.
func (o *Options) parse(fs *flag.FlagSet, args []string) error {
	fs.StringVar(&o.runAddr, "a", getEnvOrDefault("RUN_ADDRESS", defaultRunAddr), "address and port to run server")
	fs.StringVar(&o.logLevel, "l", getEnvOrDefault("LOG_LEVEL", defaultLogLevel), "log level")
	fs.StringVar(&o.dataBaseDSN, "d", getEnvOrDefault("DATABASE_URI", ""), "database connection string")
	fs.StringVar(&o.catalogFile, "c", getEnvOrDefault("CATALOG_FILE", ""), "YAML catalog file")
	fs.Int64Var(&o.shuffleSeed, "s", getEnvInt64OrDefault("SHUFFLE_SEED", 0), "shuffle seed, 0 for a random seed")
	fs.IntVar(&o.feedbackRate, "r", int(getEnvInt64OrDefault("FEEDBACK_RATE", defaultFeedbackRate)), "feedback submissions per minute per client")

	return fs.Parse(args)
}

func (o *Options) RunAddr() string {
	return o.runAddr
}

func (o *Options) LogLevel() string {
	return o.logLevel
}

func (o *Options) DataBaseDSN() string {
	return o.dataBaseDSN
}

func (o *Options) CatalogFile() string {
	return o.catalogFile
}

func (o *Options) ShuffleSeed() int64 {
	return o.shuffleSeed
}

func (o *Options) FeedbackRate() int {
	if o.feedbackRate <= 0 {
		return defaultFeedbackRate
	}
	return o.feedbackRate
}

// getEnvOrDefault reads an environment variable or returns a default value if the variable is not set or is empty.
func getEnvOrDefault(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	value := getEnvOrDefault(key, "")
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, value, err)
		return defaultValue
	}
	return n
}

// loadEnvFile loads environment variables from a .env file in the working directory
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	envPath := filepath.Join(cwd, ".env")

	// Variables already set in the environment take precedence
	err = godotenv.Load(envPath)
	if err != nil {
		log.Printf("No .env file found at %s, proceeding without it", envPath)
	} else {
		log.Printf(".env file loaded from %s", envPath)
	}
}
