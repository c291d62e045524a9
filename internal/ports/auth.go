package ports

import (
	"context"

	domainauth "github.com/minegocio/pos-web/internal/domain/auth"
	"github.com/minegocio/pos-web/internal/domain/model"
)

// SessionStore persists and retrieves browser sessions. Stores persist only
// the token pair; claims are re-derived from the access token on every load.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// CartStore persists the in-progress cart for a browser session.
type CartStore interface {
	SaveCart(ctx context.Context, sessionID string, cart CartState) error
	GetCart(ctx context.Context, sessionID string) (CartState, error)
	DeleteCart(ctx context.Context, sessionID string) error
}

// CartState is the persisted POS view state: the cart lines plus the
// selections that accompany them.
type CartState struct {
	Cart            model.Cart `json:"cart"`
	PaymentMethodID int64      `json:"payment_method_id"`
	CashReceived    string     `json:"cash_received"`
}
