//go:build protogen

package hours

import (
	"context"
	"fmt"
	"time"

	"github.com/crmdesk/crmdesk/libs/grpcx"
	"github.com/crmdesk/crmdesk/libs/schedule"
	businessv1 "github.com/crmdesk/crmdesk/protos/gen/business/v1"
)

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

type grpcProvider struct {
	client   businessv1.BusinessServiceClient
	fallback Config
}

// NewBusinessHoursProvider dials the business service when an address
// is configured and falls back to the static environment hours when
// it is not.
func NewBusinessHoursProvider(cfg Config, addr string) (Provider, error) {
	if addr == "" {
		return NewStaticProvider(cfg), nil
	}
	conn, err := grpcx.Dial(context.Background(), addr, grpcx.DialOptions{Timeout: 3 * time.Second})
	if err != nil {
		return nil, err
	}
	return &grpcProvider{client: businessv1.NewBusinessServiceClient(conn), fallback: cfg}, nil
}

func (p *grpcProvider) DayHours(ctx context.Context, businessID string, date string) (Config, error) {
	resp, err := p.client.GetBusinessHours(ctx, &businessv1.BusinessHoursRequest{
		BusinessId: businessID,
		Date:       date,
	})
	if err != nil {
		return Config{}, err
	}

	open, err := ParseClock(resp.GetOpenTime())
	if err != nil {
		return Config{}, err
	}
	closeAt, err := ParseClock(resp.GetCloseTime())
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Hours:           schedule.BusinessHours{Open: open, Close: closeAt},
		SlotStepMinutes: int(resp.GetSlotStepMinutes()),
	}
	if resp.GetBreakStart() != "" && resp.GetBreakEnd() != "" {
		bs, err := ParseClock(resp.GetBreakStart())
		if err != nil {
			return Config{}, err
		}
		be, err := ParseClock(resp.GetBreakEnd())
		if err != nil {
			return Config{}, err
		}
		cfg.Hours.Break = &schedule.Interval{Start: bs, End: be}
	}
	if cfg.SlotStepMinutes <= 0 {
		cfg.SlotStepMinutes = p.fallback.SlotStepMinutes
	}
	return cfg, nil
}

func ParseClock(value string) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock time %q: %w", value, err)
	}
	return t, nil
}
