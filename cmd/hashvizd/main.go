// Command hashvizd serves and generates hash-collision puzzles.
//
//	hashvizd serve                 # HTTP API on :5050 (or HASHVIZ_PORT / --port)
//	hashvizd generate -t chaining  # print one puzzle as JSON to stdout
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/hashviz/keygen"
	"github.com/katalvlaran/hashviz/puzzle"
	"github.com/katalvlaran/hashviz/server"
)

var (
	verbose bool
	logger  *zap.Logger

	// serve flags
	port string

	// generate flags
	technique  string
	difficulty string
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:   "hashvizd",
	Short: "hashviz - hash table collision puzzle generator",
	Long: `hashviz generates instructional hash table puzzles: small key sets
engineered to collide, replayed step by step under linear probing,
quadratic probing, double hashing or separate chaining, with the
arithmetic partially redacted so a learner can fill in the blanks.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP puzzle API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := server.ConfigFromEnv()
		if port != "" {
			cfg.Port = port
		}

		return server.Run(cfg, logger)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single puzzle and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		result, err := puzzle.Generate(technique, difficulty, keygen.NewRand(seed))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(result)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides HASHVIZ_PORT)")
	generateCmd.Flags().StringVarP(&technique, "technique", "t", "linear_probing",
		"linear_probing | quadratic_probing | double_hashing | chaining")
	generateCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "easy", "easy | medium | hard")
	generateCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "RNG seed; 0 draws a time-based seed")
	rootCmd.AddCommand(serveCmd, generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
