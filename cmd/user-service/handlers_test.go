package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-ecom/internal/auth"
	"github.com/MikeMC777/shop-ecom/internal/logx"
	"github.com/MikeMC777/shop-ecom/internal/user"
)

func init() {
	gin.SetMode(gin.TestMode)
	logx.Discard()
}

// stubRepo implements user.Repository in memory.
type stubRepo struct {
	byID map[string]*user.User
}

func (s *stubRepo) Create(_ context.Context, u *user.User) error {
	for _, x := range s.byID {
		if x.Email == u.Email {
			return user.ErrAlreadyExist
		}
	}
	cp := *u
	s.byID[u.ID] = &cp
	return nil
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range s.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (s *stubRepo) Update(_ context.Context, u *user.User, updatePassword bool) error {
	cur, ok := s.byID[u.ID]
	if !ok {
		return user.ErrNotFound
	}
	if u.Name != "" {
		cur.Name = u.Name
	}
	if u.Phone != "" {
		cur.Phone = u.Phone
	}
	if u.Address != "" {
		cur.Address = u.Address
	}
	if updatePassword {
		cur.PasswordHash = u.PasswordHash
	}
	return nil
}

func newRouter(t *testing.T) (*gin.Engine, *stubRepo) {
	t.Helper()
	repo := &stubRepo{byID: map[string]*user.User{}}
	tokens := auth.NewTokens("test-secret", time.Hour)
	r := gin.New()
	registerRoutes(r, user.NewService(repo, tokens, "boss@shop.test"), tokens)
	return r, repo
}

func send(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const anaJSON = `{"name":"Ana","email":"Ana@Example.com","password":"secret123","phone":"300","address":"Calle 1"}`

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := send(r, http.MethodPost, "/auth/login", "", `{"email":"`+email+`","password":"`+password+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Success bool      `json:"success"`
		Token   string    `json:"token"`
		User    user.User `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || !body.Success || body.Token == "" {
		t.Fatalf("login body=%s", w.Body.String())
	}
	return body.Token
}

func TestRegister(t *testing.T) {
	r, repo := newRouter(t)

	w := send(r, http.MethodPost, "/auth/register", "", anaJSON)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret123") || strings.Contains(w.Body.String(), "$2a$") {
		t.Fatalf("la respuesta filtra la contraseña: %s", w.Body.String())
	}
	if len(repo.byID) != 1 {
		t.Fatalf("users=%d", len(repo.byID))
	}
	for _, u := range repo.byID {
		if u.Email != "ana@example.com" || u.Role != auth.RoleUser {
			t.Fatalf("user=%+v", u)
		}
	}

	// email repetido, distinto casing
	w = send(r, http.MethodPost, "/auth/register", "", strings.Replace(anaJSON, "Ana@Example.com", "ANA@example.com", 1))
	if w.Code != http.StatusConflict {
		t.Fatalf("esperaba 409, got %d", w.Code)
	}
}

func TestRegister_Validation(t *testing.T) {
	r, _ := newRouter(t)
	cases := map[string]struct {
		body string
		msg  string
	}{
		"sin nombre":     {`{"email":"a@b.co","password":"secret1","phone":"1","address":"x"}`, "name is required"},
		"email inválido": {`{"name":"a","email":"nope","password":"secret1","phone":"1","address":"x"}`, "email must be a valid email"},
		"password corta": {`{"name":"a","email":"a@b.co","password":"123","phone":"1","address":"x"}`, "password must be at least 6 characters"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := send(r, http.MethodPost, "/auth/register", "", tc.body)
			if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), tc.msg) {
				t.Fatalf("status=%d body=%s, esperaba %q", w.Code, w.Body.String(), tc.msg)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	r, _ := newRouter(t)
	_ = send(r, http.MethodPost, "/auth/register", "", anaJSON)

	tok := login(t, r, "ana@example.com", "secret123")
	if tok == "" {
		t.Fatalf("token vacío")
	}
	if w := send(r, http.MethodPost, "/auth/login", "", `{"email":"ana@example.com","password":"wrong-pass"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("esperaba 401, got %d", w.Code)
	}
	if w := send(r, http.MethodPost, "/auth/login", "", `{"email":"ghost@example.com","password":"x"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("esperaba 401, got %d", w.Code)
	}
	if w := send(r, http.MethodPost, "/auth/login", "", `{"email":"","password":""}`); w.Code != http.StatusBadRequest {
		t.Fatalf("esperaba 400, got %d", w.Code)
	}
}

func TestAuthChecks(t *testing.T) {
	r, _ := newRouter(t)
	_ = send(r, http.MethodPost, "/auth/register", "", anaJSON)
	_ = send(r, http.MethodPost, "/auth/register", "",
		`{"name":"Boss","email":"boss@shop.test","password":"secret123","phone":"1","address":"x"}`)

	buyer := login(t, r, "ana@example.com", "secret123")
	admin := login(t, r, "boss@shop.test", "secret123")

	cases := []struct {
		path, token string
		want        int
	}{
		{"/auth/user-auth", "", http.StatusUnauthorized},
		{"/auth/user-auth", "Bearer garbage", http.StatusUnauthorized},
		{"/auth/user-auth", "Bearer " + buyer, http.StatusOK},
		{"/auth/user-auth", buyer, http.StatusOK},
		{"/auth/admin-auth", "Bearer " + buyer, http.StatusForbidden},
		{"/auth/admin-auth", "Bearer " + admin, http.StatusOK},
	}
	for _, tc := range cases {
		w := send(r, http.MethodGet, tc.path, tc.token, "")
		if w.Code != tc.want {
			t.Fatalf("%s token=%.12q: status=%d, esperaba %d", tc.path, tc.token, w.Code, tc.want)
		}
		if tc.want == http.StatusOK && strings.TrimSpace(w.Body.String()) != `{"ok":true}` {
			t.Fatalf("body=%s", w.Body.String())
		}
	}
}

func TestUpdateProfile(t *testing.T) {
	r, _ := newRouter(t)
	_ = send(r, http.MethodPost, "/auth/register", "", anaJSON)
	tok := "Bearer " + login(t, r, "ana@example.com", "secret123")

	if w := send(r, http.MethodPut, "/auth/profile", tok, `{"password":"123"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("password corta: esperaba 400, got %d", w.Code)
	}

	w := send(r, http.MethodPut, "/auth/profile", tok, `{"address":"Calle 99","password":"newsecret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		User user.User `json:"updatedUser"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.User.Address != "Calle 99" || body.User.Name != "Ana" {
		t.Fatalf("user=%+v", body.User)
	}
	// la nueva contraseña funciona, la vieja no
	_ = login(t, r, "ana@example.com", "newsecret")
	if w := send(r, http.MethodPost, "/auth/login", "", `{"email":"ana@example.com","password":"secret123"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("esperaba 401 con la contraseña vieja, got %d", w.Code)
	}
}
