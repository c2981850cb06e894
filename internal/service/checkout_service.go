package service

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Nisand-KB/FRESH-MART/internal/domain"
	"github.com/Nisand-KB/FRESH-MART/internal/i18n"
)

var (
	// ErrMissingDetails blocks checkout until mobile and address are filled
	ErrMissingDetails = errors.New("missing customer details")
	// ErrEmptyCart blocks checkout when there is nothing to order
	ErrEmptyCart = errors.New("cart is empty")
)

// Order is a compiled, transport-ready order message
type Order struct {
	Reference  string `json:"reference"`
	Total      int64  `json:"total"`
	Transcript string `json:"transcript"`
	Link       string `json:"link"`
}

// CheckoutService validates customer details and compiles the cart into a
// shareable WhatsApp order message. The recipient number is fixed
// configuration, never derived from user input.
type CheckoutService struct {
	cart      *CartService
	recipient string
}

func NewCheckoutService(cart *CartService, recipient string) *CheckoutService {
	return &CheckoutService{cart: cart, recipient: recipient}
}

// rupees are grouped Indian-style (1,00,000) regardless of the UI locale
var rupeePrinter = message.NewPrinter(language.MustParse("en-IN"))

func formatRupees(amount int64) string {
	return rupeePrinter.Sprintf("%d", amount)
}

// Checkout compiles the current cart for the given customer details and
// locale. Validation failures block the order and leave all state
// untouched; the caller may correct and retry.
func (s *CheckoutService) Checkout(details domain.CustomerDetails, lang domain.Language) (*Order, error) {
	if details.Mobile == "" || details.Address == "" {
		return nil, ErrMissingDetails
	}
	cart := s.cart.Cart()
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	transcript := formatTranscript(cart, details, lang)
	return &Order{
		Reference:  uuid.NewString(),
		Total:      cart.Total(),
		Transcript: transcript,
		Link:       fmt.Sprintf("https://wa.me/%s?text=%s", s.recipient, transcript),
	}, nil
}

// formatTranscript lays out the order message in fixed section order:
// title, itemized list in cart order, grand total, delivery block,
// attribution. Only label text varies with the locale; numbers and
// structure do not. Every line is percent-escaped and lines are joined
// with the escaped newline token so the result drops straight into a
// ?text= query parameter.
func formatTranscript(cart domain.Cart, details domain.CustomerDetails, lang domain.Language) string {
	lines := []string{
		"*" + i18n.Label(lang, i18n.KeyOrderTitle) + "*",
		"",
		"*" + i18n.Label(lang, i18n.KeyItems) + ":*",
	}
	for _, it := range cart {
		lines = append(lines, fmt.Sprintf("- %s x %d (₹%s)", it.Name, it.Quantity, formatRupees(it.Subtotal())))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("*%s:* ₹%s", i18n.Label(lang, i18n.KeyAmountToPay), formatRupees(cart.Total())),
		"",
		"*"+i18n.Label(lang, i18n.KeyDeliveryInfo)+":*",
		fmt.Sprintf("- %s: %s", i18n.Label(lang, i18n.KeyContactNumber), details.Mobile),
		fmt.Sprintf("- %s: %s", i18n.Label(lang, i18n.KeyEmailAddress), orNA(details.Email)),
		fmt.Sprintf("- %s: %s", i18n.Label(lang, i18n.KeyStreetAddress), details.Address),
	)
	if details.Location != nil {
		lines = append(lines, "Location Link: https://www.google.com/maps?q="+formatCoords(*details.Location))
	}
	lines = append(lines, "", "_Sent via FreshMart App_")

	escaped := make([]string, len(lines))
	for i, line := range lines {
		escaped[i] = escapeLine(line)
	}
	return strings.Join(escaped, "%0A")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatCoords(loc domain.Location) string {
	return strconv.FormatFloat(loc.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(loc.Lng, 'f', -1, 64)
}

// escapeLine percent-escapes a single line for query embedding; spaces
// become %20, not +. Commas stay literal (legal in a query, and map
// links keep their "lat,lng" shape readable).
func escapeLine(s string) string {
	s = strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	return strings.ReplaceAll(s, "%2C", ",")
}
