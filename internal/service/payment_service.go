package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/price"
	"github.com/stripe/stripe-go/v74/product"
	"github.com/tamsou/portfolio-backend/internal/models"
	"github.com/tamsou/portfolio-backend/internal/repository"
	"github.com/tamsou/portfolio-backend/pkg/logger"
	"github.com/tamsou/portfolio-backend/pkg/payment"
)

type PaymentService struct {
	stripeService *payment.StripeService
	userRepo      *repository.UserRepository
	purchaseRepo  *repository.PurchaseRepository
}

func NewPaymentService(
	stripeService *payment.StripeService,
	userRepo *repository.UserRepository,
	purchaseRepo *repository.PurchaseRepository,
) *PaymentService {
	return &PaymentService{
		stripeService: stripeService,
		userRepo:      userRepo,
		purchaseRepo:  purchaseRepo,
	}
}

func (s *PaymentService) GetProducts() []models.Product {
	return models.ShopProducts
}

// CreateCheckoutSession opens a Stripe Checkout session for one shop
// product and records a pending purchase keyed by the session id. The
// purchase only becomes visible history once the webhook completes it.
func (s *PaymentService) CreateCheckoutSession(userID uint, productID uint) (*models.CheckoutSession, error) {
	shopProduct := models.FindProduct(productID)
	if shopProduct == nil {
		return nil, errors.New("product not found")
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	productParams := &stripe.ProductParams{
		Name:        stripe.String(shopProduct.Title),
		Description: stripe.String(shopProduct.Description),
	}
	prod, err := product.New(productParams)
	if err != nil {
		return nil, err
	}

	priceParams := &stripe.PriceParams{
		Product:    stripe.String(prod.ID),
		UnitAmount: stripe.Int64(int64(shopProduct.Price * 100)), // EUR to cents
		Currency:   stripe.String(string(stripe.CurrencyEUR)),
	}
	p, err := price.New(priceParams)
	if err != nil {
		return nil, err
	}

	sess, err := s.stripeService.CreateCheckoutSession(
		user.Email,
		p.ID,
		map[string]string{
			"user_id":    fmt.Sprintf("%d", userID),
			"product_id": fmt.Sprintf("%d", productID),
		},
	)
	if err != nil {
		return nil, err
	}

	purchase := &models.PurchaseHistory{
		UserID:          userID,
		Amount:          shopProduct.Price,
		StripeSessionID: sess.ID,
		Status:          models.PurchaseStatusPending,
	}
	if shopProduct.Kind == models.ProductKindAlbum {
		purchase.AlbumID = &shopProduct.TargetID
	} else {
		purchase.PhotoID = &shopProduct.TargetID
	}

	if err := s.purchaseRepo.Create(purchase); err != nil {
		return nil, err
	}

	return &models.CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

// HandleStripeWebhook is the only writer of completed purchases: payment
// success and purchase history meet here, not in any client callback.
func (s *PaymentService) HandleStripeWebhook(event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		purchase, err := s.purchaseRepo.GetBySessionID(session.ID)
		if err != nil {
			return err
		}

		purchase.Status = models.PurchaseStatusCompleted
		if err := s.purchaseRepo.Update(purchase); err != nil {
			return err
		}

		logger.L.Infow("purchase completed", "session_id", session.ID, "user_id", purchase.UserID)
		return nil

	case "checkout.session.expired", "checkout.session.async_payment_failed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		purchase, err := s.purchaseRepo.GetBySessionID(session.ID)
		if err != nil {
			return err
		}

		purchase.Status = models.PurchaseStatusFailed
		return s.purchaseRepo.Update(purchase)
	}

	return nil
}

func (s *PaymentService) GetUserPurchaseHistory(userID uint) ([]models.PurchaseHistory, error) {
	return s.purchaseRepo.GetUserPurchaseHistory(userID)
}
