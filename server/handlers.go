package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/hashviz/keygen"
	"github.com/katalvlaran/hashviz/puzzle"
)

// GetPuzzle handles GET /api/puzzle. Parameter parsing and defaulting
// live here, not in the engine: technique defaults to linear_probing
// (and unrecognized values fall through to the engine's documented
// linear-probing fallback), difficulty defaults to easy, and an unknown
// difficulty is the one hard failure — a 400 with an error document.
func GetPuzzle(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		technique := c.DefaultQuery("technique", "linear_probing")
		difficulty := c.DefaultQuery("difficulty", "easy")
		seed := parseSeed(c.Query("seed"))

		result, err := puzzle.Generate(technique, difficulty, keygen.NewRand(seed))
		if err != nil {
			if errors.Is(err, keygen.ErrUnknownDifficulty) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty: " + difficulty})

				return
			}
			logger.Error("puzzle generation failed",
				zap.String("technique", technique),
				zap.String("difficulty", difficulty),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "puzzle generation failed"})

			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// parseSeed interprets the optional seed query parameter. Empty, zero
// or unparsable input draws a fresh time-based seed, so only an
// explicit non-zero seed produces a reproducible puzzle.
func parseSeed(raw string) int64 {
	if raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil && seed != 0 {
			return seed
		}
	}

	return time.Now().UnixNano()
}

// Health handles GET /healthz. The engine has no dependencies to probe,
// so alive means healthy.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Index handles GET / with a static page describing the API.
func Index() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
	}
}
