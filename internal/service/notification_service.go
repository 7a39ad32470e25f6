package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/team7/classroom-informer-api/internal/availability"
	"github.com/team7/classroom-informer-api/internal/dto"
	"github.com/team7/classroom-informer-api/internal/models"
	appErrors "github.com/team7/classroom-informer-api/pkg/errors"
)

type reservationRepository interface {
	ListConfirmedAt(ctx context.Context, roomID int64, at time.Time) ([]models.Reservation, error)
}

// CheckAvailabilityRequest carries the look-ahead for a favorites check.
type CheckAvailabilityRequest struct {
	MinutesBefore int `json:"minutes_before" validate:"gte=0,lte=1440"`
}

// NotificationService evaluates which of a user's favorite rooms will be free
// a few minutes from now, and hands the resulting alerts to the dispatcher.
type NotificationService struct {
	favorites     favoriteRepository
	timetable     timetableRepository
	reservations  reservationRepository
	dispatcher    AlertDispatcher
	validate      *validator.Validate
	location      *time.Location
	defaultLookup int
	logger        *zap.Logger

	now func() time.Time
}

// NewNotificationService instantiates NotificationService. The location fixes
// which wall clock "now" means; minutes is the default look-ahead.
func NewNotificationService(favorites favoriteRepository, timetable timetableRepository, reservations reservationRepository, dispatcher AlertDispatcher, validate *validator.Validate, location *time.Location, defaultMinutes int, logger *zap.Logger) *NotificationService {
	if validate == nil {
		validate = validator.New()
	}
	if location == nil {
		location = time.UTC
	}
	if defaultMinutes <= 0 {
		defaultMinutes = 10
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		favorites:     favorites,
		timetable:     timetable,
		reservations:  reservations,
		dispatcher:    dispatcher,
		validate:      validate,
		location:      location,
		defaultLookup: defaultMinutes,
		logger:        logger,
		now:           time.Now,
	}
}

// CheckFavorites evaluates every favorite of the user at now+minutes and
// returns an alert per room that will be free then. Alerts follow the
// favorite ordering, so output is deterministic per room set.
func (s *NotificationService) CheckFavorites(ctx context.Context, userID string, req CheckAvailabilityRequest) (*dto.AvailabilityCheckResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "minutes_before must be between 0 and 1440")
	}

	minutes := req.MinutesBefore
	if minutes <= 0 {
		minutes = s.defaultLookup
	}

	now := s.now().In(s.location)
	target := now.Add(time.Duration(minutes) * time.Minute)
	targetDay := availability.WeekdayOf(target.Weekday())
	targetTime := availability.FromTime(target)

	favorites, err := s.favorites.ListWithRooms(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list favorites")
	}

	alerts := make([]models.Alert, 0, len(favorites))
	for _, fav := range favorites {
		free, err := s.roomFreeAt(ctx, fav.RoomID, targetDay, targetTime, target)
		if err != nil {
			return nil, err
		}
		if !free {
			continue
		}

		roomName := fmt.Sprintf("%s관 %s호", fav.BuildingCode, fav.RoomNumber)
		alert := models.Alert{
			RoomID:      fav.RoomID,
			RoomName:    roomName,
			TargetTime:  targetTime.String(),
			MinutesLeft: minutes,
			Message:     fmt.Sprintf("곧 %s관 %s호가 빕니다! (%d분 후)", fav.BuildingCode, fav.RoomNumber, minutes),
		}
		alerts = append(alerts, alert)
		s.dispatch(ctx, userID, alert)
	}

	return &dto.AvailabilityCheckResponse{
		CheckedAt:   now.Format(time.RFC3339),
		AlertsCount: len(alerts),
		Alerts:      alerts,
	}, nil
}

// roomFreeAt combines recurring timetable occupancy on the target weekday
// with confirmed reservations covering the target instant.
func (s *NotificationService) roomFreeAt(ctx context.Context, roomID int64, day availability.Weekday, at availability.TimeOfDay, instant time.Time) (bool, error) {
	entries, err := s.timetable.ListByRoom(ctx, roomID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}

	occupied := make([]availability.Interval, 0, len(entries))
	for _, entry := range entries {
		entryDay, iv, err := availability.NormalizeTimetableRow(entry.Day, entry.StartTime, entry.EndTime)
		if err != nil {
			s.logger.Warn("skipping malformed timetable row",
				zap.Int64("room_id", roomID), zap.Int64("entry_id", entry.ID), zap.Error(err))
			continue
		}
		if entryDay == day {
			occupied = append(occupied, iv)
		}
	}

	reservations, err := s.reservations.ListConfirmedAt(ctx, roomID, instant)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load reservations")
	}
	for _, res := range reservations {
		_, iv, err := availability.NormalizeReservation(res.StartAt, res.EndAt, s.location)
		if err != nil {
			if errors.Is(err, availability.ErrCrossMidnight) {
				s.logger.Warn("reservation crosses midnight, excluded from occupancy",
					zap.Int64("room_id", roomID), zap.String("reservation_id", res.ID))
				continue
			}
			return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to normalize reservation")
		}
		occupied = append(occupied, iv)
	}

	return availability.InstantFree(occupied, at), nil
}

func (s *NotificationService) dispatch(ctx context.Context, userID string, alert models.Alert) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Dispatch(ctx, userID, alert); err != nil {
		s.logger.Warn("alert dispatch failed",
			zap.String("user_id", userID), zap.Int64("room_id", alert.RoomID), zap.Error(err))
	}
}
