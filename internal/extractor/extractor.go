package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Bhooomika2605/Cashflow/internal/domain"
)

// Currency-marked amount: token before number or number before token.
// The left-to-right scan means the first form that appears wins. The
// fraction is exactly two digits; anything shorter is dropped and anything
// longer is cut at the second digit.
var amountPattern = regexp.MustCompile(`(?:rs\.?|rupees?|₹)\s*(\d+(?:\.\d{2})?)|(\d+(?:\.\d{2})?)\s*(?:rs\.?|rupees?|₹)`)

// Integer immediately followed by a unit word.
var quantityPattern = regexp.MustCompile(`(\d+)\s*(?:kg\.?|kilos?|packets?|units?|pieces?)`)

// DefaultCatalog is the ordered item vocabulary. Order is a deliberate
// tie-break: when a text mentions two items, the earlier entry wins.
var DefaultCatalog = []string{"rice", "wheat", "sugar", "oil", "dal", "tea", "salt", "milk", "biscuit"}

// DefaultPurchaseKeywords mark a transaction as a purchase. Matching is by
// substring, not token.
var DefaultPurchaseKeywords = []string{"buy", "purchase", "bought", "supplier"}

// Config holds the extraction vocabulary.
type Config struct {
	Catalog          []string
	PurchaseKeywords []string
}

// Extractor turns free-text utterances into transaction candidates.
type Extractor struct {
	catalog          []string
	purchaseKeywords []string
}

// New creates an Extractor. Empty config fields fall back to the defaults.
func New(cfg Config) *Extractor {
	catalog := cfg.Catalog
	if len(catalog) == 0 {
		catalog = DefaultCatalog
	}

	keywords := cfg.PurchaseKeywords
	if len(keywords) == 0 {
		keywords = DefaultPurchaseKeywords
	}

	return &Extractor{
		catalog:          catalog,
		purchaseKeywords: keywords,
	}
}

// Extract parses a transaction candidate out of raw text. It never fails:
// every field a pattern misses is filled with its default instead.
func (e *Extractor) Extract(text string) domain.ParsedTransaction {
	text = strings.ToLower(text)

	return domain.ParsedTransaction{
		Item:          e.extractItem(text),
		Amount:        extractAmount(text),
		Type:          e.extractType(text),
		Quantity:      extractQuantity(text),
		PaymentMethod: domain.DefaultPaymentMethod,
	}
}

func extractAmount(text string) decimal.Decimal {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero
	}

	raw := m[1]
	if raw == "" {
		raw = m[2]
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}

	return amount
}

func (e *Extractor) extractType(text string) domain.TransactionType {
	for _, kw := range e.purchaseKeywords {
		if strings.Contains(text, kw) {
			return domain.TransactionTypePurchase
		}
	}

	return domain.TransactionTypeSale
}

func (e *Extractor) extractItem(text string) string {
	for _, item := range e.catalog {
		if strings.Contains(text, item) {
			return item
		}
	}

	return domain.DefaultItem
}

func extractQuantity(text string) int {
	m := quantityPattern.FindStringSubmatch(text)
	if m == nil {
		return 1
	}

	qty, err := strconv.Atoi(m[1])
	if err != nil || qty < 1 {
		return 1
	}

	return qty
}
