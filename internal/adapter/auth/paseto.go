package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/shopease/backend/internal/adapter/config"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
)

type PasetoToken struct {
	parser   *paseto.Parser
	key      *paseto.V4SymmetricKey
	duration time.Duration
}

func New(conf *config.Auth) (port.TokenService, error) {
	duration, err := time.ParseDuration(conf.TokenDuration)
	if err != nil {
		return nil, domain.ErrTokenCreation
	}

	parser := paseto.NewParser()
	key := paseto.NewV4SymmetricKey()

	s := PasetoToken{
		parser:   &parser,
		key:      &key,
		duration: duration,
	}

	return &s, nil
}

func (p *PasetoToken) CreateToken(user *domain.User) (string, error) {
	token := paseto.NewToken()
	token.SetExpiration(time.Now().Add(p.duration))

	payload := port.TokenPayload{Email: user.Email, Role: user.Role}
	err := token.Set("payload", payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get("payload", &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
