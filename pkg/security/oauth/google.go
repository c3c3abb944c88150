package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/hirebase/recruiting/pkg/auth"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleClient exchanges Google OAuth authorization codes for a
// provider-agnostic identity.
type GoogleClient struct {
	config *oauth2.Config
}

func NewGoogleClient(clientID, clientSecret, redirectURL string) *GoogleClient {
	return &GoogleClient{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"openid",
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (s *GoogleClient) AuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (s *GoogleClient) Exchange(ctx context.Context, code string) (auth.OAuthUserInfo, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return auth.OAuthUserInfo{}, fmt.Errorf("exchange code: %w", err)
	}
	client := s.config.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return auth.OAuthUserInfo{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return auth.OAuthUserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return auth.OAuthUserInfo{}, fmt.Errorf("failed to get google user info: %s", resp.Status)
	}

	var userResponse struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userResponse); err != nil {
		return auth.OAuthUserInfo{}, err
	}
	if userResponse.ID == "" {
		return auth.OAuthUserInfo{}, fmt.Errorf("google user info is empty")
	}

	info := auth.OAuthUserInfo{
		Provider:    "google",
		AccountID:   userResponse.ID,
		Email:       userResponse.Email,
		Name:        userResponse.Name,
		PictureURL:  userResponse.Picture,
		AccessToken: token.AccessToken,
	}
	if token.RefreshToken != "" {
		rt := token.RefreshToken
		info.RefreshToken = &rt
	}
	if !token.Expiry.IsZero() {
		exp := token.Expiry.Unix()
		info.ExpiresAt = &exp
	}
	return info, nil
}
