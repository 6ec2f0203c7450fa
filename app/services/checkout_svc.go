package services

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/models"
	"github.com/yaarastore/backend/app/repositories"
)

type CartLine struct {
	ProductID   uint            `json:"productId"`
	Handle      string          `json:"handle"`
	Title       string          `json:"title"`
	ImageURL    string          `json:"imageUrl"`
	ImageAlt    string          `json:"imageAlt"`
	Quantity    int             `json:"quantity"`
	UnitAmount  decimal.Decimal `json:"unitAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type CartPayload struct {
	TotalQuantity int             `json:"totalQuantity"`
	Cost          decimal.Decimal `json:"cost"`
	Lines         []CartLine      `json:"lines"`
}

type CheckoutPayload struct {
	Name  string       `json:"name" validate:"required"`
	Email string       `json:"email" validate:"required,email"`
	Phone string       `json:"phone" validate:"required"`
	Cart  *CartPayload `json:"cart" validate:"required"`
}

// OrderMailer sends the confirmation mail for a persisted order.
type OrderMailer interface {
	SendOrderConfirmation(order *models.Order) error
}

// WhatsAppNotifier alerts the store owner about a new order.
type WhatsAppNotifier interface {
	SendNewOrderAlert(orderID uint) error
}

type CheckoutService struct {
	orderRepo repositories.OrderRepository
	mailer    OrderMailer
	whatsapp  WhatsAppNotifier
	notify    bool
}

func NewCheckoutService(orderRepo repositories.OrderRepository, mailer OrderMailer, whatsapp WhatsAppNotifier, notify bool) *CheckoutService {
	return &CheckoutService{
		orderRepo: orderRepo,
		mailer:    mailer,
		whatsapp:  whatsapp,
		notify:    notify,
	}
}

// PlaceOrder persists the cart as an order with snapshot items. The cart
// lines are copied verbatim; checkout trusts the client-supplied amounts
// and never recomputes them against current product rows. Notifications
// are sent inline after commit and their failures never reach the caller.
func (s *CheckoutService) PlaceOrder(ctx context.Context, payload CheckoutPayload) (*models.Order, error) {
	if payload.Cart == nil || len(payload.Cart.Lines) == 0 {
		return nil, helpers.ErrNoItems
	}

	items := make([]models.OrderItem, len(payload.Cart.Lines))
	for i, line := range payload.Cart.Lines {
		items[i] = models.OrderItem{
			ProductID:   line.ProductID,
			Handle:      line.Handle,
			Title:       line.Title,
			ImageURL:    line.ImageURL,
			ImageAlt:    line.ImageAlt,
			Quantity:    line.Quantity,
			UnitAmount:  line.UnitAmount,
			TotalAmount: line.TotalAmount,
		}
	}

	order := &models.Order{
		Name:          payload.Name,
		Email:         payload.Email,
		Phone:         payload.Phone,
		TotalQuantity: payload.Cart.TotalQuantity,
		Cost:          payload.Cart.Cost,
		Status:        models.OrderStatusNew,
		Items:         items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.notify {
		if err := s.mailer.SendOrderConfirmation(order); err != nil {
			log.Printf("❌ Email sending failed: %v", err)
		}
		if err := s.whatsapp.SendNewOrderAlert(order.ID); err != nil {
			log.Printf("❌ WhatsApp failed: %v", err)
		}
	}

	return order, nil
}
