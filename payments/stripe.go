package payments

import (
	"fmt"
	"log"
	"os"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/refund"
)

// Init sets the Stripe API key from the environment. Called once from main.
func Init() {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		log.Println("Warning: STRIPE_SECRET_KEY is not set, payments will fail")
	}
}

// CreateBookingIntent creates a PaymentIntent for a booking's total amount
// (whole currency units) and returns it. The client confirms it with the
// payment sheet using the intent's client secret.
func CreateBookingIntent(amount int64, currency, bookingCode, customerEmail string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(amount * 100),
		Currency:     stripe.String(currency),
		Description:  stripe.String(fmt.Sprintf("Booking %s", bookingCode)),
		ReceiptEmail: stripe.String(customerEmail),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_code", bookingCode)
	return paymentintent.New(params)
}

// CancelIntent voids an unconfirmed PaymentIntent. Used when the renter
// abandons the payment sheet and the pending booking is deleted.
func CancelIntent(intentID string) error {
	_, err := paymentintent.Cancel(intentID, nil)
	return err
}

// RefundIntent refunds a captured PaymentIntent in full. Used when a
// confirmed booking is canceled.
func RefundIntent(intentID string) error {
	_, err := refund.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(intentID),
	})
	return err
}
