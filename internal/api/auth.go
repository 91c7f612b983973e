package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/yourorg/hceweb/internal/models"
	"github.com/yourorg/hceweb/internal/validation"
)

// Login obtiene un token con el grant password de OAuth2 contra /auth/token,
// pide el perfil a /auth/me y guarda ambos slots de la sesión.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, &RequestFailedError{Status: http.StatusBadRequest, Message: "Usuario y contraseña son requeridos"}
	}

	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.ResolveURL(c.tokenPath),
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	tok, err := conf.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return nil, &RequestFailedError{
				Status:  retrieveErr.Response.StatusCode,
				Message: detailMessage(retrieveErr.Body),
			}
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	// El token va primero para que /auth/me salga autorizado
	if err := c.session.SetToken(tok.AccessToken); err != nil {
		return nil, err
	}

	user, err := c.Me(ctx)
	if err != nil {
		c.session.Clear()
		return nil, err
	}
	if err := c.session.Save(tok.AccessToken, *user); err != nil {
		c.session.Clear()
		return nil, err
	}

	log.Printf("✅ [AUTH] Sesión iniciada: %s (%s)", user.Username, user.Rol)
	return user, nil
}

// Me retorna el perfil del usuario dueño del token actual
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.GetJSON(ctx, c.mePath, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword valida localmente las reglas del backend y luego envía
// POST /auth/change-password. Retorna el mensaje de confirmación.
func (c *Client) ChangePassword(ctx context.Context, current, next string) (string, error) {
	if err := validation.ValidatePassword(next); err != nil {
		return "", err
	}

	var resp models.MessageResponse
	err := c.PostJSON(ctx, "/auth/change-password", models.ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}
