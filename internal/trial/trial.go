package trial

import (
	"fmt"
	"time"

	"github.com/julianstephens/tododia/internal/constants"
	"github.com/julianstephens/tododia/internal/logger"
	"github.com/julianstephens/tododia/internal/storage"
)

// Status describes where a user stands in their trial period.
type Status struct {
	Expired  bool
	DaysLeft int
}

// Gate computes trial state from a user's activation timestamp. The
// timestamp is fixed at first activation and survives logout.
type Gate struct {
	store storage.Provider
}

// New creates a trial gate backed by the given store.
func New(store storage.Provider) *Gate {
	return &Gate{store: store}
}

// Activate records the trial start for a user if none exists yet and
// returns the activation timestamp in epoch milliseconds. Calling it
// again for an already-activated user is a no-op.
func (g *Gate) Activate(username string, now time.Time) (int64, error) {
	startDate, err := g.store.GetStartDate(username)
	if err != nil {
		return 0, fmt.Errorf("failed to read activation for %s: %w", username, err)
	}
	if startDate != 0 {
		return startDate, nil
	}

	startDate = now.UnixMilli()
	if err := g.store.SetStartDate(username, startDate); err != nil {
		return 0, fmt.Errorf("failed to record activation for %s: %w", username, err)
	}
	return startDate, nil
}

// Check returns the trial status for a user at the given instant. A user
// with no recorded activation is treated as not expired with the full
// trial remaining.
func (g *Gate) Check(username string, now time.Time) (Status, error) {
	startDate, err := g.store.GetStartDate(username)
	if err != nil {
		return Status{}, fmt.Errorf("failed to read activation for %s: %w", username, err)
	}
	if startDate == 0 {
		return Status{Expired: false, DaysLeft: constants.TrialDays}, nil
	}
	return Compute(startDate, now), nil
}

// Compute derives trial status from an activation timestamp (epoch
// milliseconds). DaysLeft is clamped to [0, TrialDays]; a clamp firing
// means the elapsed arithmetic disagreed with the expiry check and is
// logged as a bug signal.
func Compute(startDateMs int64, now time.Time) Status {
	elapsed := now.Sub(time.UnixMilli(startDateMs))
	if elapsed > constants.TrialDuration {
		return Status{Expired: true, DaysLeft: 0}
	}

	remaining := constants.TrialDuration - elapsed
	daysLeft := int((remaining + 24*time.Hour - 1) / (24 * time.Hour))
	if daysLeft < 0 {
		logger.Warn("Trial daysLeft computed negative", "startDate", startDateMs, "daysLeft", daysLeft)
		daysLeft = 0
	}
	if daysLeft > constants.TrialDays {
		daysLeft = constants.TrialDays
	}
	return Status{Expired: false, DaysLeft: daysLeft}
}
