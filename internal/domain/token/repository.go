package token

import "context"

type TokenRepository interface {
	Create(ctx context.Context, tk *Token) error
	Update(ctx context.Context, tk *Token) error
	GetByID(ctx context.Context, id uint) (*Token, error)
	GetByPartnerID(ctx context.Context, partnerID uint) ([]*Token, error)
}
