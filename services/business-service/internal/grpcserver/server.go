//go:build protogen

package grpcserver

import (
	"context"
	"strings"

	"github.com/crmdesk/crmdesk/libs/db"
	businessv1 "github.com/crmdesk/crmdesk/protos/gen/business/v1"
	"github.com/crmdesk/crmdesk/services/business-service/internal/storage"
	"google.golang.org/grpc"
)

type server struct {
	businessv1.UnimplementedBusinessServiceServer
	pool *db.Pool
	repo *storage.Repository
}

func Register(grpcServer *grpc.Server, pool *db.Pool, repo *storage.Repository) {
	businessv1.RegisterBusinessServiceServer(grpcServer, &server{pool: pool, repo: repo})
}

func (s *server) GetBusinessProfile(ctx context.Context, req *businessv1.BusinessProfileRequest) (*businessv1.BusinessProfileResponse, error) {
	resp := &businessv1.BusinessProfileResponse{
		BusinessId: req.GetBusinessId(),
		Name:       "Demo Business",
		Timezone:   "UTC",
	}
	if s.repo == nil || req.GetBusinessId() == "" {
		return resp, nil
	}

	p, err := s.repo.GetOrCreateProfile(ctx, req.GetBusinessId())
	if err != nil {
		return resp, nil
	}
	if strings.TrimSpace(p.Name) != "" {
		resp.Name = strings.TrimSpace(p.Name)
	}
	if strings.TrimSpace(p.Timezone) != "" {
		resp.Timezone = strings.TrimSpace(p.Timezone)
	}
	for _, v := range p.OffsetsMins {
		if v > 0 {
			resp.ReminderOffsetsMinutes = append(resp.ReminderOffsetsMinutes, int32(v))
		}
	}
	if len(resp.ReminderOffsetsMinutes) == 0 {
		resp.ReminderOffsetsMinutes = []int32{1440, 60}
	}
	return resp, nil
}

// GetBusinessHours serves the opening window the appointment service uses
// for slot generation. Hours are clock times; the caller anchors them onto
// the requested date.
func (s *server) GetBusinessHours(ctx context.Context, req *businessv1.BusinessHoursRequest) (*businessv1.BusinessHoursResponse, error) {
	hours, err := s.repo.GetHours(ctx, req.GetBusinessId())
	if err != nil {
		return nil, err
	}
	return &businessv1.BusinessHoursResponse{
		BusinessId:      hours.BusinessID,
		OpenTime:        hours.OpenTime,
		CloseTime:       hours.CloseTime,
		BreakStart:      hours.BreakStart,
		BreakEnd:        hours.BreakEnd,
		SlotStepMinutes: int32(hours.SlotStepMinutes),
	}, nil
}
