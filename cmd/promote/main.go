// Command promote approves or rejects pending plant submissions from the
// command line.
//
// Usage:
//
//	promote -ids 1,2,3
//	promote -ids 4,5 -reject
//
// Exit codes: 0 = every submission handled, 1 = error or at least one
// promotion failed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SillyFizy/grow/internal/app"
	"github.com/SillyFizy/grow/internal/config"
)

func main() {
	rawIDs := flag.String("ids", "", "comma-separated submission ids")
	reject := flag.Bool("reject", false, "reject instead of approving")
	flag.Parse()

	ids, err := parseIDs(*rawIDs)
	if err != nil || len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: promote -ids 1,2,3 [-reject]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("initialize", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close() //nolint:errcheck

	if *reject {
		count, err := c.Promotion.Reject(ctx, ids)
		if err != nil {
			logger.Error("reject failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Rejected %d of %d submissions.\n", count, len(ids))
		return
	}

	result, err := c.Promotion.PromoteMany(ctx, ids)
	if result != nil {
		for _, s := range result.Succeeded {
			line := fmt.Sprintf("submission %d -> plant %d", s.SubmissionID, s.PlantID)
			if s.ImageError != "" {
				line += " (image not moved: " + s.ImageError + ")"
			}
			fmt.Println(line)
		}
		for _, f := range result.Failed {
			fmt.Printf("submission %d failed: %s\n", f.ID, f.Reason)
		}
		fmt.Printf("Promoted %d, failed %d.\n", len(result.Succeeded), len(result.Failed))
	}
	if err != nil {
		logger.Error("batch interrupted", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(result.Failed) > 0 {
		os.Exit(1)
	}
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
