package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrQuoteForbidden     = errors.New("not authorized for this quote")
	ErrQuoteNotPending    = errors.New("quote has already been responded to")
	ErrQuoteNotAcceptable = errors.New("quote cannot be accepted in its current status")
	ErrQuoteTerminal      = errors.New("quote is already finalized")
	ErrNoQuotesFound      = errors.New("no quotes found")
	ErrInvalidQuoteInput  = errors.New("invalid quote input")
)

// IQuoteUseCase exposes the quote lifecycle.
//
// State machine:
//
//	Pending --respond--> Quoted --accept--> Accepted (terminal)
//	Pending/Quoted --reject--> Rejected (terminal)
//
// Every transition is a conditional write on the expected prior status, so
// concurrent actors cannot both win the same transition.
type IQuoteUseCase interface {
	RequestQuote(ctx context.Context, userID string, in RequestQuoteInput) (entities.Quote, error)
	RequestQuotesBatch(ctx context.Context, userID string, in RequestQuotesBatchInput) ([]entities.Quote, error)
	RespondToQuote(ctx context.Context, actorUserID, quoteID string, in QuoteResponseInput) (entities.Quote, error)
	AcceptQuote(ctx context.Context, actorUserID, quoteID string, in AcceptQuoteInput) (entities.Booking, entities.Quote, error)
	RejectQuote(ctx context.Context, actorUserID, quoteID string) (entities.Quote, error)
	CompareQuotes(ctx context.Context, userID string, quoteIDs []string) (QuoteComparison, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Quote, error)
	ListByMechanicUser(ctx context.Context, actorUserID string) ([]entities.Quote, error)
}

type RequestQuoteInput struct {
	MechanicID  string
	VehicleID   string
	ServiceType string
	Description string
}

type RequestQuotesBatchInput struct {
	MechanicIDs []string
	VehicleID   string
	ServiceType string
	Description string
}

type QuoteResponseInput struct {
	Amount            float64
	Currency          string
	EstimatedDuration string
	ValidUntil        time.Time
	Notes             string
}

type AcceptQuoteInput struct {
	Date string
	Time string
}

// QuoteComparison is the visibility-filtered comparison result: only the
// requester's own quotes are returned, plus summary statistics.
type QuoteComparison struct {
	Quotes                []entities.Quote             `json:"quotes"`
	Total                 int                          `json:"total"`
	CountByStatus         map[entities.QuoteStatus]int `json:"count_by_status"`
	LowestQuotedPrice     float64                      `json:"lowest_quoted_price,omitempty"`
	HighestMechanicRating float64                      `json:"highest_mechanic_rating,omitempty"`
}

type QuoteUseCase struct {
	quotes    interfaces.IQuoteRepository
	mechanics interfaces.IMechanicRepository
	vehicles  interfaces.IVehicleRepository
	notifier  interfaces.INotifier
	log       *zap.SugaredLogger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	mechanics interfaces.IMechanicRepository,
	vehicles interfaces.IVehicleRepository,
	notifier interfaces.INotifier,
	log *zap.SugaredLogger,
) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:    quotes,
		mechanics: mechanics,
		vehicles:  vehicles,
		notifier:  notifier,
		log:       log,
	}
}

func (u *QuoteUseCase) RequestQuote(ctx context.Context, userID string, in RequestQuoteInput) (entities.Quote, error) {
	in.MechanicID = strings.TrimSpace(in.MechanicID)
	in.ServiceType = strings.TrimSpace(in.ServiceType)
	if in.MechanicID == "" || in.ServiceType == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	mech, err := u.mechanics.GetByID(ctx, in.MechanicID)
	if err != nil {
		return entities.Quote{}, err
	}
	if mech.ID == "" {
		return entities.Quote{}, ErrMechanicNotFound
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		UserID:      userID,
		MechanicID:  in.MechanicID,
		VehicleID:   strings.TrimSpace(in.VehicleID),
		ServiceType: in.ServiceType,
		Description: strings.TrimSpace(in.Description),
		Status:      entities.QuoteStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	u.notify(ctx, mech.UserID, entities.NotificationQuoteRequested,
		"New quote request", "You have a new quote request for "+created.ServiceType, created.ID)
	return created, nil
}

func (u *QuoteUseCase) RequestQuotesBatch(ctx context.Context, userID string, in RequestQuotesBatchInput) ([]entities.Quote, error) {
	in.ServiceType = strings.TrimSpace(in.ServiceType)
	if len(in.MechanicIDs) == 0 || in.ServiceType == "" {
		return nil, ErrInvalidQuoteInput
	}

	// All-or-nothing: every mechanic must resolve before any quote is created.
	mechs := make([]entities.Mechanic, 0, len(in.MechanicIDs))
	for _, id := range in.MechanicIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, ErrInvalidQuoteInput
		}
		m, err := u.mechanics.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if m.ID == "" {
			return nil, ErrMechanicNotFound
		}
		mechs = append(mechs, m)
	}

	now := time.Now().UTC()
	out := make([]entities.Quote, 0, len(mechs))
	for _, m := range mechs {
		q := entities.Quote{
			ID:          uuid.NewString(),
			UserID:      userID,
			MechanicID:  m.ID,
			VehicleID:   strings.TrimSpace(in.VehicleID),
			ServiceType: in.ServiceType,
			Description: strings.TrimSpace(in.Description),
			Status:      entities.QuoteStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		created, err := u.quotes.Create(ctx, q)
		if err != nil {
			return nil, err
		}
		u.notify(ctx, m.UserID, entities.NotificationQuoteRequested,
			"New quote request", "You have a new quote request for "+created.ServiceType, created.ID)
		out = append(out, created)
	}
	return out, nil
}

func (u *QuoteUseCase) RespondToQuote(ctx context.Context, actorUserID, quoteID string, in QuoteResponseInput) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" || in.Amount <= 0 {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	mech, err := u.mechanics.GetByUserID(ctx, actorUserID)
	if err != nil {
		return entities.Quote{}, err
	}
	if mech.ID == "" || mech.ID != q.MechanicID {
		return entities.Quote{}, ErrQuoteForbidden
	}

	if q.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrQuoteNotPending
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = entities.DefaultQuoteCurrency
	}
	price := entities.QuotedPrice{Amount: in.Amount, Currency: currency}

	updated, err := u.quotes.SetResponseIf(ctx, quoteID, entities.QuoteStatusPending,
		price, strings.TrimSpace(in.EstimatedDuration), in.ValidUntil, strings.TrimSpace(in.Notes))
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Quote{}, ErrQuoteNotPending
		}
		return entities.Quote{}, err
	}

	u.notify(ctx, q.UserID, entities.NotificationQuoteResponded,
		"Quote received", "A mechanic has quoted your "+q.ServiceType+" request", q.ID)
	return updated, nil
}

// AcceptQuote flips the quote Quoted -> Accepted and writes the derived
// booking in one repository transaction, so the pair either fully lands or
// leaves the quote untouched. The transaction's status condition picks a
// single winner among concurrent accepts.
func (u *QuoteUseCase) AcceptQuote(ctx context.Context, actorUserID, quoteID string, in AcceptQuoteInput) (entities.Booking, entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Booking{}, entities.Quote{}, ErrInvalidQuoteInput
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Booking{}, entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Booking{}, entities.Quote{}, ErrQuoteNotFound
	}
	if q.UserID != actorUserID {
		return entities.Booking{}, entities.Quote{}, ErrQuoteForbidden
	}
	if q.Status != entities.QuoteStatusQuoted || q.QuotedPrice.Amount <= 0 {
		return entities.Booking{}, entities.Quote{}, ErrQuoteNotAcceptable
	}

	mech, err := u.mechanics.GetByID(ctx, q.MechanicID)
	if err != nil {
		return entities.Booking{}, entities.Quote{}, err
	}

	var vehicle entities.Vehicle
	if q.VehicleID != "" {
		vehicle, err = u.vehicles.GetByID(ctx, q.VehicleID)
		if err != nil {
			return entities.Booking{}, entities.Quote{}, err
		}
	}

	now := time.Now().UTC()
	booking := BuildBookingFromQuote(q, mech, vehicle, in.Date, in.Time, now)
	if err := u.quotes.AcceptWithBooking(ctx, quoteID, booking); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Booking{}, entities.Quote{}, ErrQuoteNotAcceptable
		}
		return entities.Booking{}, entities.Quote{}, err
	}
	u.log.Infow("quote accepted", "quote_id", quoteID, "user_id", actorUserID, "booking_id", booking.ID)

	accepted := q
	accepted.Status = entities.QuoteStatusAccepted
	accepted.UpdatedAt = now

	u.notify(ctx, mech.UserID, entities.NotificationQuoteAccepted,
		"Quote accepted", "Your quote for "+q.ServiceType+" was accepted", q.ID)
	return booking, accepted, nil
}

func (u *QuoteUseCase) RejectQuote(ctx context.Context, actorUserID, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	// Either the requesting user or the owning mechanic may reject.
	authorized := q.UserID == actorUserID
	if !authorized {
		mech, err := u.mechanics.GetByUserID(ctx, actorUserID)
		if err != nil {
			return entities.Quote{}, err
		}
		authorized = mech.ID != "" && mech.ID == q.MechanicID
	}
	if !authorized {
		return entities.Quote{}, ErrQuoteForbidden
	}

	if q.Status.IsTerminal() {
		return entities.Quote{}, ErrQuoteTerminal
	}

	updated, err := u.quotes.UpdateStatusIf(ctx, quoteID, q.Status, entities.QuoteStatusRejected)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Quote{}, ErrQuoteTerminal
		}
		return entities.Quote{}, err
	}
	return updated, nil
}

func (u *QuoteUseCase) CompareQuotes(ctx context.Context, userID string, quoteIDs []string) (QuoteComparison, error) {
	if len(quoteIDs) == 0 {
		return QuoteComparison{}, ErrInvalidQuoteInput
	}

	cmp := QuoteComparison{CountByStatus: map[entities.QuoteStatus]int{}}
	for _, id := range quoteIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		q, err := u.quotes.GetByID(ctx, id)
		if err != nil {
			return QuoteComparison{}, err
		}
		// Visibility filter, not an authorization error: quotes belonging to
		// other users are silently dropped.
		if q.ID == "" || q.UserID != userID {
			continue
		}
		cmp.Quotes = append(cmp.Quotes, q)
		cmp.CountByStatus[q.Status]++
		if q.QuotedPrice.Amount > 0 && (cmp.LowestQuotedPrice == 0 || q.QuotedPrice.Amount < cmp.LowestQuotedPrice) {
			cmp.LowestQuotedPrice = q.QuotedPrice.Amount
		}
	}
	if len(cmp.Quotes) == 0 {
		return QuoteComparison{}, ErrNoQuotesFound
	}
	cmp.Total = len(cmp.Quotes)

	seen := map[string]bool{}
	for _, q := range cmp.Quotes {
		if seen[q.MechanicID] {
			continue
		}
		seen[q.MechanicID] = true
		m, err := u.mechanics.GetByID(ctx, q.MechanicID)
		if err != nil {
			return QuoteComparison{}, err
		}
		if m.Rating.Average > cmp.HighestMechanicRating {
			cmp.HighestMechanicRating = m.Rating.Average
		}
	}
	return cmp, nil
}

func (u *QuoteUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Quote, error) {
	return u.quotes.ListByUserID(ctx, userID)
}

func (u *QuoteUseCase) ListByMechanicUser(ctx context.Context, actorUserID string) ([]entities.Quote, error) {
	mech, err := u.mechanics.GetByUserID(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if mech.ID == "" {
		return nil, ErrMechanicProfileNotFound
	}
	return u.quotes.ListByMechanicID(ctx, mech.ID)
}

func (u *QuoteUseCase) notify(ctx context.Context, userID string, t entities.NotificationType, title, message, entityID string) {
	if u.notifier == nil || userID == "" {
		return
	}
	if err := u.notifier.Notify(ctx, userID, t, title, message, entityID); err != nil {
		u.log.Warnw("notification delivery failed", "user_id", userID, "type", t, "err", err)
	}
}
