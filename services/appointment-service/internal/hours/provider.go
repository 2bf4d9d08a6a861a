//go:build !protogen

package hours

import (
	"context"
	"fmt"
	"time"

	"github.com/crmdesk/crmdesk/libs/schedule"
)

// Config carries one business's working day: opening clock times, an
// optional break and the slot step used when enumerating openings.
type Config struct {
	Hours           schedule.BusinessHours
	SlotStepMinutes int
}

type Provider interface {
	DayHours(ctx context.Context, businessID string, date string) (Config, error)
}

type staticProvider struct {
	cfg Config
}

func NewStaticProvider(cfg Config) Provider {
	return &staticProvider{cfg: cfg}
}

func (p *staticProvider) DayHours(_ context.Context, _ string, _ string) (Config, error) {
	return p.cfg, nil
}

// NewBusinessHoursProvider builds the provider used when the business
// service's RPC surface is not compiled in: a static configuration
// from the environment.
func NewBusinessHoursProvider(cfg Config, _ string) (Provider, error) {
	return NewStaticProvider(cfg), nil
}

// ParseClock reads an HH:MM wall-clock string onto the zero date, the
// shape OpenSlots re-anchors per day.
func ParseClock(value string) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", value, err)
	}
	return t, nil
}
