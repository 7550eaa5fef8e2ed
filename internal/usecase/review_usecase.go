package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrReviewNotFound            = errors.New("review not found")
	ErrReviewForbidden           = errors.New("not authorized for this review")
	ErrReviewBookingNotCompleted = errors.New("can only review completed bookings")
	ErrReviewExists              = errors.New("review already exists for this booking")
	ErrInvalidReviewInput        = errors.New("invalid review input")
)

// IReviewUseCase guards review creation and owns the mechanic rating
// aggregate.
//
// A review requires a Completed booking owned by the reviewer, and at most one
// review per booking (first-writer-wins). Every created review triggers a full
// recomputation of the mechanic's average rating.
type IReviewUseCase interface {
	Create(ctx context.Context, userID string, in CreateReviewInput) (entities.Review, error)
	ListByMechanic(ctx context.Context, mechanicID string) ([]entities.Review, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Review, error)
	MechanicRespond(ctx context.Context, actorUserID, reviewID, response string) (entities.Review, error)
	VoteHelpful(ctx context.Context, reviewID string) (entities.Review, error)
}

type CreateReviewInput struct {
	BookingID string
	Rating    int
	Comment   string
}

type ReviewUseCase struct {
	reviews   interfaces.IReviewRepository
	bookings  interfaces.IBookingRepository
	mechanics interfaces.IMechanicRepository
	notifier  interfaces.INotifier
	log       *zap.SugaredLogger
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(
	reviews interfaces.IReviewRepository,
	bookings interfaces.IBookingRepository,
	mechanics interfaces.IMechanicRepository,
	notifier interfaces.INotifier,
	log *zap.SugaredLogger,
) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, bookings: bookings, mechanics: mechanics, notifier: notifier, log: log}
}

func (u *ReviewUseCase) Create(ctx context.Context, userID string, in CreateReviewInput) (entities.Review, error) {
	in.BookingID = strings.TrimSpace(in.BookingID)
	if in.BookingID == "" || in.Rating < 1 || in.Rating > 5 {
		return entities.Review{}, ErrInvalidReviewInput
	}

	booking, err := u.bookings.GetByID(ctx, in.BookingID)
	if err != nil {
		return entities.Review{}, err
	}
	if booking.ID == "" {
		return entities.Review{}, ErrBookingNotFound
	}
	if booking.UserID != userID {
		return entities.Review{}, ErrReviewForbidden
	}
	if booking.Status != entities.BookingStatusCompleted {
		return entities.Review{}, ErrReviewBookingNotCompleted
	}

	existing, err := u.reviews.GetByBookingID(ctx, in.BookingID)
	if err != nil {
		return entities.Review{}, err
	}
	if existing.ID != "" {
		return entities.Review{}, ErrReviewExists
	}

	now := time.Now().UTC()
	rv := entities.Review{
		ID:         uuid.NewString(),
		UserID:     userID,
		MechanicID: booking.MechanicID,
		BookingID:  in.BookingID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
		// A completed booking implies the service occurred.
		Verified:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.reviews.Create(ctx, rv)
	if err != nil {
		// The conditional put on booking_id closes the window between the
		// pre-read above and the write.
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Review{}, ErrReviewExists
		}
		return entities.Review{}, err
	}

	if err := u.recomputeMechanicRating(ctx, booking.MechanicID); err != nil {
		u.log.Errorw("mechanic rating recompute failed", "mechanic_id", booking.MechanicID, "err", err)
	}

	if mech, merr := u.mechanics.GetByID(ctx, booking.MechanicID); merr == nil && mech.UserID != "" {
		u.notify(ctx, mech.UserID, entities.NotificationReviewReceived,
			"New review", "You received a new review", created.ID)
	}
	return created, nil
}

func (u *ReviewUseCase) ListByMechanic(ctx context.Context, mechanicID string) ([]entities.Review, error) {
	mechanicID = strings.TrimSpace(mechanicID)
	if mechanicID == "" {
		return nil, ErrInvalidReviewInput
	}
	return u.reviews.ListByMechanicID(ctx, mechanicID)
}

func (u *ReviewUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Review, error) {
	return u.reviews.ListByUserID(ctx, userID)
}

func (u *ReviewUseCase) MechanicRespond(ctx context.Context, actorUserID, reviewID, response string) (entities.Review, error) {
	reviewID = strings.TrimSpace(reviewID)
	response = strings.TrimSpace(response)
	if reviewID == "" || response == "" {
		return entities.Review{}, ErrInvalidReviewInput
	}

	rv, err := u.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return entities.Review{}, err
	}
	if rv.ID == "" {
		return entities.Review{}, ErrReviewNotFound
	}

	mech, err := u.mechanics.GetByUserID(ctx, actorUserID)
	if err != nil {
		return entities.Review{}, err
	}
	if mech.ID == "" || mech.ID != rv.MechanicID {
		return entities.Review{}, ErrReviewForbidden
	}

	return u.reviews.SetMechanicResponse(ctx, reviewID, response)
}

func (u *ReviewUseCase) VoteHelpful(ctx context.Context, reviewID string) (entities.Review, error) {
	reviewID = strings.TrimSpace(reviewID)
	if reviewID == "" {
		return entities.Review{}, ErrInvalidReviewInput
	}

	rv, err := u.reviews.IncrementHelpfulVotes(ctx, reviewID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Review{}, ErrReviewNotFound
		}
		return entities.Review{}, err
	}
	return rv, nil
}

// recomputeMechanicRating runs a full aggregate over the mechanic's reviews
// rather than an incremental running average, so backfilled or corrected
// reviews always land on the right value.
func (u *ReviewUseCase) recomputeMechanicRating(ctx context.Context, mechanicID string) error {
	all, err := u.reviews.ListByMechanicID(ctx, mechanicID)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return nil
	}

	sum := 0
	for _, rv := range all {
		sum += rv.Rating
	}
	avg := math.Round(float64(sum)/float64(len(all))*10) / 10

	_, err = u.mechanics.SetRating(ctx, mechanicID, entities.Rating{Average: avg, Count: len(all)})
	return err
}

func (u *ReviewUseCase) notify(ctx context.Context, userID string, t entities.NotificationType, title, message, entityID string) {
	if u.notifier == nil || userID == "" {
		return
	}
	if err := u.notifier.Notify(ctx, userID, t, title, message, entityID); err != nil {
		u.log.Warnw("notification delivery failed", "user_id", userID, "type", t, "err", err)
	}
}
