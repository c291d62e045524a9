package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/minegocio/pos-web/internal/domain/model"
	apperrors "github.com/minegocio/pos-web/internal/errors"
	"github.com/minegocio/pos-web/internal/observability/metrics"
	"github.com/minegocio/pos-web/internal/observability/statsd"
	"github.com/minegocio/pos-web/internal/ports"
)

// CartServiceOptions groups dependencies for CartService.
type CartServiceOptions struct {
	Carts  ports.CartStore
	Sales  ports.SalesAPI
	Logger *slog.Logger
	// Metrics is optional: sale counters (StatsD-compatible).
	Metrics statsd.Sink
}

// CartService runs the point-of-sale flow: cart edits persisted per session,
// payment selection, and checkout against the backend.
type CartService struct {
	carts   ports.CartStore
	sales   ports.SalesAPI
	logger  *slog.Logger
	metrics statsd.Sink
}

// NewCartService constructs a CartService.
func NewCartService(opts CartServiceOptions) *CartService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CartService{
		carts:   opts.Carts,
		sales:   opts.Sales,
		logger:  logger,
		metrics: opts.Metrics,
	}
}

// State loads the persisted cart state for a session.
func (s *CartService) State(ctx context.Context, sessionID string) (ports.CartState, error) {
	state, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return ports.CartState{}, fmt.Errorf("load cart: %w", err)
	}
	return state, nil
}

// AddProduct adds qty units of a product to the session's cart. The cart
// rejects additions that would exceed stock; on rejection nothing changes.
func (s *CartService) AddProduct(ctx context.Context, sessionID string, p model.Product, qty int) error {
	state, err := s.State(ctx, sessionID)
	if err != nil {
		return err
	}

	if addErr := state.Cart.Add(p, qty); addErr != nil {
		return addErr
	}

	return s.save(ctx, sessionID, state)
}

// SetQuantity sets a line to an exact quantity. Values above stock clamp to
// stock; zero or negative removes the line. The returned change tells the
// caller which of those happened so the view can warn.
func (s *CartService) SetQuantity(
	ctx context.Context,
	sessionID string,
	productID int64,
	qty int,
) (model.QuantityChange, error) {
	state, err := s.State(ctx, sessionID)
	if err != nil {
		return model.QuantityChange{}, err
	}

	change, setErr := state.Cart.SetQuantity(productID, qty)
	if setErr != nil {
		return model.QuantityChange{}, setErr
	}

	if saveErr := s.save(ctx, sessionID, state); saveErr != nil {
		return model.QuantityChange{}, saveErr
	}
	return change, nil
}

// RemoveLine drops a product from the cart.
func (s *CartService) RemoveLine(ctx context.Context, sessionID string, productID int64) error {
	state, err := s.State(ctx, sessionID)
	if err != nil {
		return err
	}

	state.Cart.Remove(productID)
	return s.save(ctx, sessionID, state)
}

// Clear empties the cart and resets the payment selections.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.carts.DeleteCart(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// SelectPaymentMethod records the chosen payment method for checkout.
func (s *CartService) SelectPaymentMethod(ctx context.Context, sessionID string, methodID int64) error {
	state, err := s.State(ctx, sessionID)
	if err != nil {
		return err
	}

	state.PaymentMethodID = methodID
	return s.save(ctx, sessionID, state)
}

// SetCashReceived records the tendered cash amount for checkout.
func (s *CartService) SetCashReceived(ctx context.Context, sessionID, amount string) error {
	state, err := s.State(ctx, sessionID)
	if err != nil {
		return err
	}

	state.CashReceived = amount
	return s.save(ctx, sessionID, state)
}

// SearchOutcome is the result of a product search in the POS view. Exactly
// one of the fields is meaningful: Added when a single match went straight
// into the cart, Matches when the cashier must pick one, neither when nothing
// matched.
type SearchOutcome struct {
	Added   *model.Product
	Matches []model.Product
}

// SearchAndAdd searches active products by name or SKU. A single match is
// added to the cart immediately; several matches come back for the cashier to
// choose from; no match is reported as not found.
func (s *CartService) SearchAndAdd(
	ctx context.Context,
	sessionID, query string,
	products []model.Product,
) (SearchOutcome, error) {
	matches := model.SearchProducts(model.ActiveProducts(products), query)
	switch len(matches) {
	case 0:
		return SearchOutcome{}, apperrors.NotFound(fmt.Sprintf("No product matches %q.", query))
	case 1:
		if err := s.AddProduct(ctx, sessionID, matches[0], 1); err != nil {
			return SearchOutcome{}, err
		}
		return SearchOutcome{Added: &matches[0]}, nil
	default:
		return SearchOutcome{Matches: matches}, nil
	}
}

// CheckoutResult reports a completed sale with the amounts the receipt shows.
type CheckoutResult struct {
	Sale      model.Sale
	Total     decimal.Decimal
	ChangeDue decimal.Decimal
}

// Checkout records the sale with the backend. The cart is cleared only after
// the backend acknowledges the sale; any failure leaves the cart intact so
// the cashier can retry.
func (s *CartService) Checkout(
	ctx context.Context,
	sessionID, token string,
	methods []model.PaymentMethod,
) (CheckoutResult, error) {
	state, err := s.State(ctx, sessionID)
	if err != nil {
		return CheckoutResult{}, err
	}

	if state.Cart.IsEmpty() {
		return CheckoutResult{}, apperrors.Validation("The cart is empty.")
	}
	method, ok := model.FindPaymentMethod(methods, state.PaymentMethodID)
	if !ok {
		return CheckoutResult{}, apperrors.Validation("Choose a payment method.")
	}

	total := state.Cart.Total(method)
	change := decimal.Zero
	if method.RequiresTender() {
		cash, parseErr := decimal.NewFromString(state.CashReceived)
		if parseErr != nil {
			return CheckoutResult{}, apperrors.Validation("Enter the cash received.")
		}
		if cash.LessThan(total) {
			return CheckoutResult{}, apperrors.Validation("The cash received does not cover the total.")
		}
		change = state.Cart.ChangeDue(method, cash)
	}

	payload := model.BuildNewSale(&state.Cart, method.ID)
	sale, err := s.sales.RecordSale(ctx, token, payload)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("record sale: %w", err)
	}

	if clearErr := s.carts.DeleteCart(ctx, sessionID); clearErr != nil {
		// The sale went through; a stale cart is an annoyance, not a failure.
		s.logger.WarnContext(ctx, "cart cleanup after sale failed",
			"session_id", sessionID, "sale_id", sale.ID, "error", clearErr)
	}

	s.logger.InfoContext(ctx, "sale recorded",
		"session_id", sessionID,
		"sale_id", sale.ID,
		"total", total.StringFixed(2),
		"payment_method", method.Name)
	metrics.EmitSale(s.metrics, method.Name, total)

	return CheckoutResult{Sale: sale, Total: total, ChangeDue: change}, nil
}

// CancelSale voids a recorded sale so stock is restored.
func (s *CartService) CancelSale(ctx context.Context, token string, saleID int64) error {
	if err := s.sales.CancelSale(ctx, token, saleID); err != nil {
		return fmt.Errorf("cancel sale: %w", err)
	}
	s.logger.InfoContext(ctx, "sale canceled", "sale_id", saleID)
	metrics.EmitSaleCanceled(s.metrics)
	return nil
}

func (s *CartService) save(ctx context.Context, sessionID string, state ports.CartState) error {
	if err := s.carts.SaveCart(ctx, sessionID, state); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
