package acquirer

import (
	"fmt"
	"time"

	"sepapay/internal/shared/biztime"
)

const ProviderStripe = "stripe"

// Acquirer is one payment-gateway integration instance: credentials and
// checkout branding. Created at setup time and mutated only by an
// administrator.
type Acquirer struct {
	id       uint
	provider string

	companyName      string
	secretKey        string
	publishableKey   string
	checkoutImageURL string

	captureManually bool
	enabled         bool

	createdAt time.Time
	updatedAt time.Time
}

func NewAcquirer(provider, companyName, secretKey, publishableKey string) (*Acquirer, error) {
	if provider == "" {
		return nil, fmt.Errorf("provider is required")
	}
	if secretKey == "" {
		return nil, fmt.Errorf("secret key is required")
	}
	if publishableKey == "" {
		return nil, fmt.Errorf("publishable key is required")
	}

	now := biztime.NowUTC()

	return &Acquirer{
		provider:       provider,
		companyName:    companyName,
		secretKey:      secretKey,
		publishableKey: publishableKey,
		enabled:        true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// SupportsTokenization reports whether the provider can store payment
// data in a reusable token.
func (a *Acquirer) SupportsTokenization() bool {
	return a.provider == ProviderStripe
}

func (a *Acquirer) SetCheckoutImageURL(url string) {
	a.checkoutImageURL = url
	a.updatedAt = biztime.NowUTC()
}

func (a *Acquirer) SetCaptureManually(v bool) {
	a.captureManually = v
	a.updatedAt = biztime.NowUTC()
}

func (a *Acquirer) SetEnabled(v bool) {
	a.enabled = v
	a.updatedAt = biztime.NowUTC()
}

func (a *Acquirer) ID() uint {
	return a.id
}

func (a *Acquirer) Provider() string {
	return a.provider
}

func (a *Acquirer) CompanyName() string {
	return a.companyName
}

func (a *Acquirer) SecretKey() string {
	return a.secretKey
}

func (a *Acquirer) PublishableKey() string {
	return a.publishableKey
}

func (a *Acquirer) CheckoutImageURL() string {
	return a.checkoutImageURL
}

func (a *Acquirer) CaptureManually() bool {
	return a.captureManually
}

func (a *Acquirer) Enabled() bool {
	return a.enabled
}

func (a *Acquirer) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Acquirer) UpdatedAt() time.Time {
	return a.updatedAt
}

// SetID sets the acquirer ID after persistence (used by repository after Create)
func (a *Acquirer) SetID(id uint) {
	a.id = id
}

func ReconstructAcquirer(id uint, provider, companyName, secretKey, publishableKey, checkoutImageURL string, captureManually, enabled bool, createdAt, updatedAt time.Time) *Acquirer {
	return &Acquirer{
		id:               id,
		provider:         provider,
		companyName:      companyName,
		secretKey:        secretKey,
		publishableKey:   publishableKey,
		checkoutImageURL: checkoutImageURL,
		captureManually:  captureManually,
		enabled:          enabled,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}
