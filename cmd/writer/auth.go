package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const tokenCookieName = "ef-admin"

type TokenAuth struct {
	serverKey    []byte
	serverApiKey string
}

func NewTokenAuth() (*TokenAuth, error) {
	secret := os.Getenv("EF_TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("EF_TOKEN_SECRET environment variable not set")
	}
	apiKey := os.Getenv("EF_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("EF_API_KEY environment variable not set")
	}
	return &TokenAuth{
		serverKey:    []byte(secret),
		serverApiKey: apiKey,
	}, nil
}

func (a *TokenAuth) createToken(username, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"username": username,
			"role":     role,
			"exp":      time.Now().Add(time.Hour * 24).Unix(),
		})
	return token.SignedString(a.serverKey)
}

func (a *TokenAuth) parseJwt(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.serverKey, nil
	})
}

type loginRequest struct {
	Username string `json:"username"`
}

// Login exchanges the shared api key for a short lived admin cookie, the
// back office UI cannot hold the raw key.
func (a *TokenAuth) Login(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != a.serverApiKey {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	req := loginRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "username required", http.StatusBadRequest)
		return
	}
	token, err := a.createToken(req.Username, "admin")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		HttpOnly: true,
		Path:     "/",
		MaxAge:   86400,
	})
	w.WriteHeader(http.StatusOK)
}

func (a *TokenAuth) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:   tokenCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	w.WriteHeader(http.StatusOK)
}

func (a *TokenAuth) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == a.serverApiKey {
			next.ServeHTTP(w, r)
			return
		}
		cookie, err := r.Cookie(tokenCookieName)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		token, err := a.parseJwt(cookie.Value)
		if err != nil || !token.Valid {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}
}
