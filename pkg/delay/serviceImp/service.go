package serviceImp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"wms/entities"
	"wms/pkg/delay"
	"wms/pkg/delay/repository"
	svc "wms/pkg/delay/service"
)

type service struct {
	repo repository.Repo
	now  func() time.Time
}

func New(r repository.Repo) svc.Service { return &service{repo: r, now: time.Now} }

func (s *service) Record(ctx context.Context, orderID uuid.UUID, in delay.Input) (*entities.DelayHistory, *entities.Order, error) {
	if err := in.Validate(); err != nil {
		return nil, nil, err
	}
	start := s.now()
	if in.StartTime != nil {
		start = *in.StartTime
	}
	kind := in.DelayType
	if kind == "" {
		kind = "Manual"
	}
	h := &entities.DelayHistory{
		OId:       orderID,
		StartTime: start,
		DelayTime: in.Hours,
		Reason:    in.Reason,
		DelayType: kind,
		IsAdvance: in.IsAdvance,
	}
	o, err := s.repo.Record(ctx, h)
	if err != nil {
		return nil, nil, err
	}
	logrus.WithFields(logrus.Fields{
		"order":   orderID,
		"hours":   in.Hours,
		"advance": in.IsAdvance,
	}).Info("delay recorded")
	return h, o, nil
}

func (s *service) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.DelayHistory, error) {
	return s.repo.ListByOrder(ctx, orderID)
}
