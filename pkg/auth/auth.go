package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	JWTKey   string        `yaml:"jwtKey" envconfig:"JWT_KEY" default:"car-rent-dev-key"`
	TokenTTL time.Duration `yaml:"tokenTTL" envconfig:"JWT_TTL" default:"24h"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Actor is the authenticated identity passed explicitly into every
// service operation.
type Actor struct {
	UserUID  string
	Username string
	Role     string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type Profile struct {
	UserUID  string `json:"userUid"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	Email   string  `json:"email"`
	jwt.RegisteredClaims
}

func (c *Claims) Actor() Actor {
	return Actor{
		UserUID:  c.Profile.UserUID,
		Username: c.Profile.Username,
		Role:     c.Profile.Role,
	}
}

func NewToken(cfg Config, profile Profile, email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(cfg.TokenTTL)
	claims := &Claims{
		Profile: profile,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func ParseToken(cfg Config, tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	return claims, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
