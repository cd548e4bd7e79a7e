package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/travelbanza/destination-catalog/internal/domain"
	"github.com/travelbanza/destination-catalog/internal/infrastructure/timeutil"
)

// Default booking values.
const (
	DefaultProcessingDelay = 2 * time.Second
	DefaultBookingTimeout  = 5 * time.Second
)

// BookingUseCase defines the booking operations. Bookings are simulated:
// nothing is persisted and no payment is processed.
type BookingUseCase interface {
	// Quote prices a stay at the destination for the given party size.
	Quote(ctx context.Context, destinationID string, travelers int) (*domain.Quote, error)

	// Book confirms a booking after the simulated processing delay.
	// Cancellation or expiry of ctx aborts the booking and is returned as is.
	Book(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error)
}

// BookingConfig contains configuration options for the booking use case.
type BookingConfig struct {
	// ProcessingDelay simulates payment processing; zero disables it.
	ProcessingDelay time.Duration

	// Timeout bounds a whole Book call, delay included.
	Timeout time.Duration

	// Location is the timezone "today" is computed in for travel dates.
	Location *time.Location
}

// DefaultBookingConfig returns the default configuration.
func DefaultBookingConfig() BookingConfig {
	return BookingConfig{
		ProcessingDelay: DefaultProcessingDelay,
		Timeout:         DefaultBookingTimeout,
		Location:        time.UTC,
	}
}

type bookingUseCase struct {
	catalog  domain.Catalog
	calendar timeutil.Calendar
	cfg      BookingConfig
	logger   zerolog.Logger
	newID    func() string
}

// NewBookingUseCase creates a new BookingUseCase.
// If config is nil, defaults are used; a nil clock means the system clock.
func NewBookingUseCase(catalog domain.Catalog, clock timeutil.Clock, config *BookingConfig, logger zerolog.Logger) BookingUseCase {
	cfg := DefaultBookingConfig()
	if config != nil {
		if config.ProcessingDelay >= 0 {
			cfg.ProcessingDelay = config.ProcessingDelay
		}
		if config.Timeout > 0 {
			cfg.Timeout = config.Timeout
		}
		if config.Location != nil {
			cfg.Location = config.Location
		}
	}
	return &bookingUseCase{
		catalog:  catalog,
		calendar: timeutil.NewCalendar(clock, cfg.Location),
		cfg:      cfg,
		logger:   logger,
		newID:    newConfirmationID,
	}
}

// newConfirmationID returns a short upper-case reference such as "TB-1A2B3C4D".
func newConfirmationID() string {
	id := uuid.New()
	return fmt.Sprintf("TB-%X", id[:4])
}

// Quote implements BookingUseCase.Quote.
func (uc *bookingUseCase) Quote(ctx context.Context, destinationID string, travelers int) (*domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	travelers, err := resolveTravelers(travelers)
	if err != nil {
		return nil, err
	}

	d, err := uc.catalog.Get(destinationID)
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}

	quote := domain.NewQuote(d, travelers)
	return &quote, nil
}

// Book implements BookingUseCase.Book.
func (uc *bookingUseCase) Book(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.Timeout)
	defer cancel()

	travelers, err := resolveTravelers(req.Travelers)
	if err != nil {
		return nil, err
	}
	if err := uc.checkTravelDate(req.TravelDate); err != nil {
		return nil, err
	}

	d, err := uc.catalog.Get(req.DestinationID)
	if err != nil {
		return nil, fmt.Errorf("book: %w", err)
	}
	quote := domain.NewQuote(d, travelers)

	log := uc.logger.With().
		Str("destination_id", d.ID).
		Int("travelers", quote.Travelers).
		Logger()
	log.Debug().Dur("delay", uc.cfg.ProcessingDelay).Msg("Processing booking")

	if err := uc.wait(ctx); err != nil {
		log.Debug().Err(err).Msg("Booking aborted")
		return nil, err
	}

	confirmation := &domain.BookingConfirmation{
		ConfirmationID: uc.newID(),
		Status:         domain.BookingStatusConfirmed,
		Quote:          quote,
		TravelDate:     req.TravelDate,
		LeadTraveler:   req.Contact.FullName(),
		Email:          req.Contact.Email,
		Payment:        domain.SummarizePayment(req.Payment),
		BookedAt:       uc.calendar.Clock.Now().UTC(),
	}

	log.Info().Str("confirmation_id", confirmation.ConfirmationID).Msg("Booking confirmed")
	return confirmation, nil
}

// wait blocks for the processing delay or until ctx is done.
func (uc *bookingUseCase) wait(ctx context.Context) error {
	if uc.cfg.ProcessingDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(uc.cfg.ProcessingDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (uc *bookingUseCase) checkTravelDate(date string) error {
	if date == "" {
		return nil
	}

	travel, err := uc.calendar.Parse(date)
	if err != nil {
		return domain.NewFieldError("travel_date", "Travel date must be in YYYY-MM-DD format", nil)
	}
	if uc.calendar.InPast(travel) {
		return domain.NewFieldError("travel_date", "Travel date cannot be in the past", domain.ErrTravelDateInPast)
	}
	return nil
}

// resolveTravelers applies DefaultTravelers to an unset party size and
// rejects sizes outside 1..MaxTravelers.
func resolveTravelers(travelers int) (int, error) {
	if travelers == 0 {
		return domain.DefaultTravelers, nil
	}
	if travelers < 1 || travelers > domain.MaxTravelers {
		return 0, domain.NewFieldError("travelers",
			fmt.Sprintf("Travelers must be between 1 and %d", domain.MaxTravelers), nil)
	}
	return travelers, nil
}

// Ensure bookingUseCase implements BookingUseCase at compile time.
var _ BookingUseCase = (*bookingUseCase)(nil)
