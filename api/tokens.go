package api

import (
	"crypto/rand"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	tokenIssuer  = "eduproject-catalog"
	adminSubject = "admin"
)

// adminClaims are carried by the bearer token handed out after a successful
// access code check.
type adminClaims struct {
	jwt.RegisteredClaims
}

type tokenSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// newTokenSigner signs with secret. An empty secret gets a random one, so
// tokens do not survive a restart.
func newTokenSigner(secret string, ttl time.Duration) tokenSigner {
	key := []byte(secret)
	if len(key) == 0 {
		log.Warn().Msg("ADMIN_TOKEN_SECRET not set, using a random secret")
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			log.Fatal().Err(err).Msg("failed to generate token secret")
		}
	}
	return tokenSigner{secret: key, ttl: ttl, now: time.Now}
}

func (s tokenSigner) issue() (string, time.Time, error) {
	now := s.now()
	expires := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   adminSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "signing admin token")
	}
	return signed, expires, nil
}

// verify returns the subject of a valid token.
func (s tokenSigner) verify(tokenString string) (string, error) {
	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}
