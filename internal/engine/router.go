// Package engine maps inbound chat events to cart mutations, view
// transitions and order finalization. It owns no transport details and no
// catalog content; both come in through interfaces.
package engine

import (
	"context"
	"log"
	"strings"

	"github.com/example/storefront-bot/internal/cart"
	"github.com/example/storefront-bot/internal/catalog"
	"github.com/example/storefront-bot/internal/checkout"
	"github.com/example/storefront-bot/internal/ordersink"
	"github.com/example/storefront-bot/internal/view"
)

// Router dispatches inbound events against an ordered rule set. It is the
// only writer of cart and checkout state.
type Router struct {
	catalog   *catalog.Store
	carts     *cart.Store
	checkout  *checkout.Tracker
	transport Transport
	orders    ordersink.Sink
	notifier  Notifier
}

// New wires a router. notifier may be nil, in which case operator
// notification is skipped.
func New(
	cat *catalog.Store,
	carts *cart.Store,
	tracker *checkout.Tracker,
	transport Transport,
	orders ordersink.Sink,
	notifier Notifier,
) *Router {
	return &Router{
		catalog:   cat,
		carts:     carts,
		checkout:  tracker,
		transport: transport,
		orders:    orders,
		notifier:  notifier,
	}
}

// HandleEvent processes one inbound event to completion. Domain failures
// (unknown category, stale product id, empty cart) are surfaced to the user
// as alerts and never returned; only transport errors propagate, for the
// dispatch loop to log.
func (r *Router) HandleEvent(ctx context.Context, ev Event) error {
	switch e := ev.(type) {
	case TextMessage:
		return r.handleText(ctx, e)
	case ChoiceSelected:
		return r.handleChoice(ctx, e)
	case ContactShared:
		return r.handleContact(ctx, e)
	}
	return nil
}

// handleText matches free-form text in rule order: start command, catalog
// keyword, cart keyword, then the exact main-menu labels. First match wins;
// unmatched text is ignored.
func (r *Router) handleText(ctx context.Context, e TextMessage) error {
	lower := strings.ToLower(strings.TrimSpace(e.Text))
	switch {
	case lower == "/start" || lower == "start":
		return r.transport.SendView(ctx, e.UserID, view.MainMenu())
	case strings.Contains(lower, "каталог"):
		return r.transport.SendView(ctx, e.UserID, view.CategoryList(r.catalog.Categories()))
	case strings.Contains(lower, "корзина"):
		return r.sendCart(ctx, e.UserID)
	case e.Text == view.PartnershipLabel:
		return r.transport.SendView(ctx, e.UserID, view.View{Text: view.PartnershipText})
	case e.Text == view.AboutLabel:
		return r.transport.SendView(ctx, e.UserID, view.View{Text: view.AboutText})
	}
	return nil
}

func (r *Router) sendCart(ctx context.Context, userID int64) error {
	lines, total := r.carts.Total(userID, r.catalog)
	if len(lines) == 0 {
		return r.transport.SendView(ctx, userID, view.View{Text: view.EmptyCartText})
	}
	entries := r.carts.Entries(userID)
	return r.transport.SendView(ctx, userID, view.Cart(entries, lines, total, r.catalog))
}

// handleChoice interprets a navigation token. Prefix checks run in rule
// order; tokens from stale keyboards that no longer resolve degrade to an
// alert, never an error.
func (r *Router) handleChoice(ctx context.Context, e ChoiceSelected) error {
	token := e.Token
	switch {
	case strings.HasPrefix(token, "category:"):
		return r.showProducts(ctx, e, strings.TrimPrefix(token, "category:"))

	case token == "back:categories":
		if err := r.transport.SendView(ctx, e.UserID, view.CategoryList(r.catalog.Categories())); err != nil {
			return err
		}
		return r.transport.Acknowledge(ctx, e.Reply, "")

	case strings.HasPrefix(token, "back:products:"):
		id := strings.TrimPrefix(token, "back:products:")
		name, ok := r.catalog.CategoryOf(id)
		if !ok {
			return r.transport.Alert(ctx, e.Reply, view.ProductNotFound)
		}
		return r.showProducts(ctx, e, name)

	case strings.HasPrefix(token, "product:"):
		id := strings.TrimPrefix(token, "product:")
		p, ok := r.catalog.FindProduct(id)
		if !ok {
			return r.transport.Alert(ctx, e.Reply, view.ProductNotFound)
		}
		if err := r.transport.SendView(ctx, e.UserID, view.ProductDetail(p)); err != nil {
			return err
		}
		return r.transport.Acknowledge(ctx, e.Reply, "")

	case strings.HasPrefix(token, "add:"):
		r.carts.Add(e.UserID, strings.TrimPrefix(token, "add:"), 1)
		if err := r.transport.Acknowledge(ctx, e.Reply, view.AddedToast); err != nil {
			return err
		}
		return r.transport.SendView(ctx, e.UserID, view.View{Text: view.AddedFollowUp})

	case strings.HasPrefix(token, "cart:inc:"):
		r.carts.Add(e.UserID, strings.TrimPrefix(token, "cart:inc:"), 1)
		return r.editCart(ctx, e, view.IncrementedToast)

	case strings.HasPrefix(token, "cart:dec:"):
		id := strings.TrimPrefix(token, "cart:dec:")
		if qty := r.carts.Quantity(e.UserID, id); qty > 0 {
			r.carts.SetQuantity(e.UserID, id, qty-1)
		}
		return r.editCart(ctx, e, view.DecrementedToast)

	case strings.HasPrefix(token, "cart:del:"):
		r.carts.Remove(e.UserID, strings.TrimPrefix(token, "cart:del:"))
		return r.editCart(ctx, e, view.RemovedToast)

	case token == "cart:clear":
		r.carts.Clear(e.UserID)
		if err := r.transport.Acknowledge(ctx, e.Reply, view.ClearedToast); err != nil {
			return err
		}
		return r.transport.EditView(ctx, e.Reply, view.View{Text: view.EmptyCartText})

	case token == "cart:checkout":
		if r.carts.IsEmpty(e.UserID) {
			return r.transport.Alert(ctx, e.Reply, view.CartIsEmptyAlert)
		}
		r.checkout.Begin(e.UserID)
		if err := r.transport.RequestContact(ctx, e.UserID, view.ContactPrompt); err != nil {
			return err
		}
		return r.transport.Acknowledge(ctx, e.Reply, "")

	default:
		// Catch-all so a stale or unknown button never kills the turn.
		log.Printf("[Engine] Unrecognized token: %s", token)
		return r.transport.Acknowledge(ctx, e.Reply, "")
	}
}

func (r *Router) showProducts(ctx context.Context, e ChoiceSelected, name string) error {
	products, err := r.catalog.ProductsIn(name)
	if err != nil {
		return r.transport.Alert(ctx, e.Reply, view.CategoryNotFound)
	}
	if err := r.transport.SendView(ctx, e.UserID, view.ProductList(name, products)); err != nil {
		return err
	}
	return r.transport.Acknowledge(ctx, e.Reply, "")
}

// editCart answers the press and re-renders the cart message in place.
func (r *Router) editCart(ctx context.Context, e ChoiceSelected, toast string) error {
	if err := r.transport.Acknowledge(ctx, e.Reply, toast); err != nil {
		return err
	}
	lines, total := r.carts.Total(e.UserID, r.catalog)
	entries := r.carts.Entries(e.UserID)
	return r.transport.EditView(ctx, e.Reply, view.Cart(entries, lines, total, r.catalog))
}

// handleContact completes checkout. The flag is consumed first: a contact
// share with no checkout in progress is silently dropped. The order is
// confirmed to the user, relayed to the operator (best effort), appended to
// the order sink, and only then is the cart cleared.
func (r *Router) handleContact(ctx context.Context, e ContactShared) error {
	if !r.checkout.Consume(e.UserID) {
		log.Printf("[Engine] Contact from user %d with no checkout in progress, ignoring", e.UserID)
		return nil
	}

	lines, total := r.carts.Total(e.UserID, r.catalog)
	rec := ordersink.NewRecord(e.UserID, e.PhoneNumber, lines, total)

	confirmation := view.OrderConfirmation(lines, total, e.PhoneNumber)
	if err := r.transport.SendView(ctx, e.UserID, view.View{Text: confirmation}); err != nil {
		log.Printf("[Engine] Failed to send order confirmation to user %d: %v", e.UserID, err)
	}

	if r.notifier != nil {
		if err := r.notifier.NotifyOperator(ctx, rec.Text()); err != nil {
			log.Printf("[Engine] Operator notification failed for order %s: %v", rec.ID, err)
		}
	} else {
		log.Printf("[Engine] No operator configured, skipping notification for order %s", rec.ID)
	}

	if err := r.orders.Append(ctx, rec); err != nil {
		// The order sink is the durability guarantee; this must not pass
		// unnoticed.
		log.Printf("[Engine] ORDER SINK FAILURE for order %s (user %d, total %d): %v", rec.ID, e.UserID, total, err)
	}

	r.carts.Clear(e.UserID)
	return nil
}
