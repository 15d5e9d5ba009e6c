package submission

import (
	"context"
	"fmt"
	"log/slog"
)

// CleanupOrphans deletes temporary images that are older than the orphan
// age and not referenced by any pending submission. It returns how many
// were deleted.
func (s *Service) CleanupOrphans(ctx context.Context) (int, error) {
	referenced, err := s.submissions.PendingImagePaths(ctx)
	if err != nil {
		return 0, fmt.Errorf("pending image paths: %w", err)
	}
	keep := make(map[string]struct{}, len(referenced))
	for _, p := range referenced {
		keep[p] = struct{}{}
	}

	objects, err := s.blobs.ListTemp(ctx)
	if err != nil {
		return 0, fmt.Errorf("list temporary images: %w", err)
	}

	cutoff := s.now().Add(-s.orphanAge)
	deleted := 0
	for _, obj := range objects {
		if _, ok := keep[obj.Path]; ok || obj.ModTime.After(cutoff) {
			continue
		}
		if err := s.blobs.Delete(ctx, obj.Path); err != nil {
			return deleted, fmt.Errorf("delete %s: %w", obj.Path, err)
		}
		deleted++
	}

	s.log.InfoContext(ctx, "orphaned images removed",
		slog.Int("scanned", len(objects)),
		slog.Int("deleted", deleted),
	)
	return deleted, nil
}
