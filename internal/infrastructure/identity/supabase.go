package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/detailchatbotai/chatbot-api/internal/application/ports"
	"github.com/detailchatbotai/chatbot-api/pkg/config"
)

var _ ports.IdentityService = (*SupabaseService)(nil)

// SupabaseService adaptador del puerto IdentityService contra Supabase Auth.
// Si hay JWTSecret configurado los tokens se verifican localmente (HS256);
// si no, se delega en el endpoint /auth/v1/user del proyecto.
type SupabaseService struct {
	projectURL     string
	serviceRoleKey string
	jwtSecret      string
	client         *http.Client
}

func NewSupabaseService(cfg config.SupabaseConfig) *SupabaseService {
	return &SupabaseService{
		projectURL:     strings.TrimRight(cfg.ProjectURL, "/"),
		serviceRoleKey: cfg.ServiceRoleKey,
		jwtSecret:      cfg.JWTSecret,
		client:         &http.Client{Timeout: 10 * time.Second},
	}
}

// VerifyToken valida el access token y devuelve la identidad del usuario.
func (s *SupabaseService) VerifyToken(ctx context.Context, token string) (*ports.Identity, error) {
	if s.jwtSecret != "" {
		return s.verifyLocal(token)
	}
	return s.verifyRemote(ctx, token)
}

type supabaseClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *SupabaseService) verifyLocal(tokenStr string) (*ports.Identity, error) {
	claims := &supabaseClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithAudience("authenticated"))
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("verify token: invalid claims")
	}
	return &ports.Identity{ID: claims.Subject, Email: claims.Email}, nil
}

func (s *SupabaseService) verifyRemote(ctx context.Context, token string) (*ports.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.projectURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", s.serviceRoleKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase user request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("supabase user request: status %d", resp.StatusCode)
	}

	var body struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}
	if body.ID == "" {
		return nil, fmt.Errorf("supabase user request: empty user id")
	}
	return &ports.Identity{ID: body.ID, Email: body.Email}, nil
}

// DeleteUser elimina el usuario con la admin API (requiere service role key).
func (s *SupabaseService) DeleteUser(ctx context.Context, userID string) error {
	url := fmt.Sprintf("%s/auth/v1/admin/users/%s", s.projectURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceRoleKey)
	req.Header.Set("apikey", s.serviceRoleKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("supabase delete user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("supabase delete user: status %d", resp.StatusCode)
	}
	return nil
}
