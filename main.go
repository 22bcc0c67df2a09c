package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ScanCacheTTL is the time-to-live for the serve-mode scan cache
var ScanCacheTTL = 5 * time.Minute

// Globals for serve mode
var (
	scanCache        *ScanCache
	activeClassifier *Classifier
)

func main() {
	limit := flag.Int("limit", 0, "maximum number of bills processed per run (default 50)")
	output := flag.String("output", "", "report file path (default bills_output.csv)")
	delay := flag.Duration("delay", -1, "pause between bill requests (default 800ms)")
	sectorsPath := flag.String("sectors", "", "optional YAML file overriding the sector keyword table")
	serve := flag.Bool("serve", false, "start the HTTP API instead of running a one-shot scan")
	addr := flag.String("addr", ":8001", "listen address for serve mode")
	flag.Parse()

	// Load configuration
	LoadConfig()

	// Flags take precedence over environment configuration
	if *limit > 0 {
		DefaultLinkLimit = *limit
	}
	if *output != "" {
		OutputCSV = *output
	}
	if *delay >= 0 {
		RequestDelay = *delay
	}

	// Build the classifier from the built-in or overridden sector table
	sectorCfg := DefaultSectorConfig()
	if *sectorsPath != "" {
		cfg, err := LoadSectorConfig(*sectorsPath)
		if err != nil {
			log.Fatalf("Failed to load sector config: %v", err)
		}
		sectorCfg = cfg
		log.Printf("Loaded sector table from %s (%d sectors)", *sectorsPath, len(cfg.Sectors))
	}
	activeClassifier = NewClassifier(sectorCfg)

	if *serve {
		runServer(*addr)
		return
	}

	runBatch()
}

// runBatch executes one scan and writes the CSV report.
// An empty scan leaves any previous report untouched.
func runBatch() {
	result, err := RunScan(context.Background(), ScanOptions{
		Limit:      DefaultLinkLimit,
		Delay:      RequestDelay,
		Classifier: activeClassifier,
	})
	if err != nil {
		log.Fatalf("Scan aborted: %v", err)
	}

	if len(result.Rows) == 0 {
		log.Println("Nothing saved - no bills were collected")
		return
	}

	if err := WriteReport(result.Rows, OutputCSV); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	saved := len(result.Rows)
	if saved > MaxReportRows {
		saved = MaxReportRows
	}
	log.Printf("Saved %d records to %s", saved, OutputCSV)
}

// runServer starts the read-only HTTP API around the scan pipeline.
func runServer(addr string) {
	// Initialize scan cache
	scanCache = NewScanCache(ScanCacheTTL)

	// Create Gin router
	router := gin.Default()

	// CORS middleware with dynamic origin validation
	router.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			// In production, use environment-configured origins
			if len(CORSAllowedOrigins) > 0 && CORSAllowedOrigins[0] != "" {
				for _, allowedOrigin := range CORSAllowedOrigins {
					if origin == allowedOrigin {
						return true
					}
				}
				return false
			}
			// In development, allow any localhost/127.0.0.1 origin
			return len(origin) > 0 && (len(origin) >= 16 && origin[:16] == "http://localhost" ||
				len(origin) >= 14 && origin[:14] == "http://127.0.0")
		},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	// Routes
	router.GET("/", healthCheck)
	router.GET("/api/scan", getScanHandler)
	router.GET("/api/report.csv", getReportCSVHandler)

	// Start server
	log.Printf("Starting legislative monitor API on %s...", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// healthCheck returns a simple health check response.
// GET / - Returns service status information.
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "Legislative Monitor API",
	})
}

// currentScan returns the cached scan result, or runs a fresh scan when the
// cache is empty, expired, or a refresh was forced.
func currentScan(ctx context.Context, limit int, forceRefresh bool) (*ScanResult, error) {
	if !forceRefresh {
		if cached, ok := scanCache.Get(); ok {
			log.Printf("Returning scan %s from cache (%d rows)", cached.ID, len(cached.Rows))
			return cached, nil
		}
	}

	log.Println("Running fresh portal scan...")
	result, err := RunScan(ctx, ScanOptions{
		Limit:      limit,
		Delay:      RequestDelay,
		Classifier: activeClassifier,
	})
	if err != nil {
		return nil, err
	}

	scanCache.Set(result)
	return result, nil
}

// getScanHandler returns the latest scan result as JSON.
// GET /api/scan - Query params: ?refresh=true (force re-scan), ?limit=N
func getScanHandler(c *gin.Context) {
	forceRefresh := c.Query("refresh") == "true"

	limit := DefaultLinkLimit
	if q := c.Query("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Invalid limit: %q", q),
			})
			return
		}
		limit = n
		// A custom limit always bypasses the shared cache
		forceRefresh = true
	}

	result, err := currentScan(c.Request.Context(), limit, forceRefresh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("Scan failed: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// getReportCSVHandler streams the latest scan as a CSV attachment.
// GET /api/report.csv - Query params: ?refresh=true (force re-scan)
func getReportCSVHandler(c *gin.Context) {
	forceRefresh := c.Query("refresh") == "true"

	result, err := currentScan(c.Request.Context(), DefaultLinkLimit, forceRefresh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("Scan failed: %v", err),
		})
		return
	}

	if len(result.Rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No bills were collected",
		})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="bills_output.csv"`)
	c.Status(http.StatusOK)

	if err := WriteReportTo(c.Writer, result.Rows); err != nil {
		log.Printf("Failed to stream CSV report: %v", err)
	}
}
