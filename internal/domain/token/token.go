package token

import (
	"fmt"
	"time"

	"sepapay/internal/shared/biztime"
)

// Token is a reusable reference to a bank-debit source stored at the
// gateway. acquirerRef holds the gateway customer id wrapping the
// source, name the gateway source id itself.
type Token struct {
	id         uint
	acquirerID uint
	partnerID  uint

	acquirerRef string
	name        string
	shortName   string
	verified    bool

	createdAt time.Time
	updatedAt time.Time
}

func NewToken(acquirerID, partnerID uint, acquirerRef, name, shortName string) (*Token, error) {
	if acquirerID == 0 {
		return nil, fmt.Errorf("acquirer ID is required")
	}
	if partnerID == 0 {
		return nil, fmt.Errorf("partner ID is required")
	}
	if acquirerRef == "" {
		return nil, fmt.Errorf("acquirer reference is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := biztime.NowUTC()

	return &Token{
		acquirerID:  acquirerID,
		partnerID:   partnerID,
		acquirerRef: acquirerRef,
		name:        name,
		shortName:   shortName,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// MarkVerified flips the verified flag; it happens on the first
// successful pending-charge response and is never undone.
func (t *Token) MarkVerified() {
	if t.verified {
		return
	}
	t.verified = true
	t.updatedAt = biztime.NowUTC()
}

func (t *Token) ID() uint {
	return t.id
}

func (t *Token) AcquirerID() uint {
	return t.acquirerID
}

func (t *Token) PartnerID() uint {
	return t.partnerID
}

func (t *Token) AcquirerRef() string {
	return t.acquirerRef
}

func (t *Token) Name() string {
	return t.name
}

func (t *Token) ShortName() string {
	return t.shortName
}

func (t *Token) Verified() bool {
	return t.verified
}

func (t *Token) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Token) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID sets the token ID after persistence (used by repository after Create)
func (t *Token) SetID(id uint) {
	t.id = id
}

func ReconstructToken(id, acquirerID, partnerID uint, acquirerRef, name, shortName string, verified bool, createdAt, updatedAt time.Time) *Token {
	return &Token{
		id:          id,
		acquirerID:  acquirerID,
		partnerID:   partnerID,
		acquirerRef: acquirerRef,
		name:        name,
		shortName:   shortName,
		verified:    verified,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}
