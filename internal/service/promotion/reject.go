package promotion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SillyFizy/grow/internal/domain"
)

// Reject rejects every pending submission among ids and returns how many
// were transitioned. Submissions in any other status are left untouched.
func (s *Service) Reject(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	now := s.now()

	var rejected []int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		rejected, err = s.submissions.RejectPending(txCtx, ids, domain.RejectionNote(now))
		if err != nil {
			return fmt.Errorf("reject submissions: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "submissions rejected",
		slog.Int("requested", len(ids)),
		slog.Int("rejected", len(rejected)),
	)

	s.events.SubmissionsRejected(ctx, rejected, now)

	return len(rejected), nil
}
