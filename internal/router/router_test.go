package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"kitty-catalog/internal/adapters/auth/jwtauth"
	"kitty-catalog/internal/domain/users"
	"kitty-catalog/internal/router"

	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	tokens, err := jwtauth.NewService("test-secret", "HS256", 15*time.Minute)
	if err != nil {
		t.Fatalf("new token service: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Tokens: tokens,
		Logger: zerolog.Nop(),
	}))
	t.Cleanup(ts.Close)
	return ts
}

type tokenResponse struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func TestHTTP_RegistrationAndLogin(t *testing.T) {
	ts := newTestServer(t)

	// 1) Registro
	st, body := doReq(t, ts.URL, "POST", "/user/registration", "", map[string]any{
		"username": "alice",
		"password": "password123",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 registration, got %d body=%s", st, string(body))
	}
	var reg struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	_ = json.Unmarshal(body, &reg)
	if reg.ID == 0 || reg.Username != "alice" {
		t.Fatalf("unexpected registration body=%s", string(body))
	}

	// 2) Username repetido => conflicto
	{
		st, _ := doReq(t, ts.URL, "POST", "/user/registration", "", map[string]any{
			"username": "alice",
			"password": "other",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate username, got %d", st)
		}
	}

	// 3) Login correcto
	pair := login(t, ts.URL, "alice", "password123")
	if pair.UserID != reg.ID || pair.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %+v", pair)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens in login response")
	}

	// 4) Password incorrecto y usuario inexistente responden igual (404)
	{
		st1, _ := doReq(t, ts.URL, "POST", "/user/login", "", map[string]any{
			"username": "alice", "password": "nope",
		})
		st2, _ := doReq(t, ts.URL, "POST", "/user/login", "", map[string]any{
			"username": "ghost", "password": "password123",
		})
		if st1 != http.StatusNotFound || st2 != http.StatusNotFound {
			t.Fatalf("expected 404/404, got %d/%d", st1, st2)
		}
	}

	// 5) /user/me devuelve el hash almacenado y el refresh token persistido
	{
		st, body := doReq(t, ts.URL, "POST", "/user/me", pair.AccessToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 me, got %d body=%s", st, string(body))
		}
		var me struct {
			Password     string `json:"password"`
			RefreshToken string `json:"refresh_token"`
		}
		_ = json.Unmarshal(body, &me)
		if me.Password != users.HashPassword("password123") {
			t.Fatalf("stored hash mismatch: %s", me.Password)
		}
		if me.RefreshToken != pair.RefreshToken {
			t.Fatal("login must return the persisted refresh token")
		}
	}

	// 6) Refresh con query param: access nuevo, refresh sin rotar
	{
		st, body := doReq(t, ts.URL, "POST", "/user/refresh?refresh_token="+pair.RefreshToken, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 refresh, got %d body=%s", st, string(body))
		}
		var refreshed tokenResponse
		_ = json.Unmarshal(body, &refreshed)
		if refreshed.RefreshToken != pair.RefreshToken {
			t.Fatal("refresh must not rotate the refresh token")
		}
		if refreshed.AccessToken == "" {
			t.Fatal("refresh must issue an access token")
		}
	}

	// 7) Refresh con token inválido => 401
	{
		st, _ := doReq(t, ts.URL, "POST", "/user/refresh?refresh_token=garbage", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 invalid refresh, got %d", st)
		}
	}
}

func TestHTTP_ProtectedRoutesRequireValidToken(t *testing.T) {
	ts := newTestServer(t)

	// Sin token
	{
		st, _ := doReq(t, ts.URL, "GET", "/breed/all/", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without token, got %d", st)
		}
	}

	// Token adulterado
	registerUser(t, ts.URL, "alice", "password123")
	pair := login(t, ts.URL, "alice", "password123")
	{
		st, _ := doReq(t, ts.URL, "GET", "/breed/all/", pair.AccessToken+"x", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 with tampered token, got %d", st)
		}
	}
}

func TestHTTP_BreedCRUD(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts.URL, "alice", "password123")
	token := login(t, ts.URL, "alice", "password123").AccessToken

	createBreed(t, ts.URL, token, "siberian", "fluffy")
	createBreed(t, ts.URL, token, "sphynx", "hairless")
	createBreed(t, ts.URL, token, "bengal", "spotted")

	// Listado siempre en orden ascendente por id
	st, body := doReq(t, ts.URL, "GET", "/breed/all/", token, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list breeds, got %d body=%s", st, string(body))
	}
	var list struct {
		Breed []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"breed"`
	}
	_ = json.Unmarshal(body, &list)
	if len(list.Breed) != 3 {
		t.Fatalf("expected 3 breeds, got %d", len(list.Breed))
	}
	for i := 1; i < len(list.Breed); i++ {
		if list.Breed[i].ID <= list.Breed[i-1].ID {
			t.Fatalf("breed list not in ascending id order: %+v", list.Breed)
		}
	}

	// Get por id
	{
		st, body := doReq(t, ts.URL, "GET", "/breed/1", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get breed, got %d body=%s", st, string(body))
		}
	}

	// Raza inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "GET", "/breed/999", token, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown breed, got %d", st)
		}
	}
}

func TestHTTP_KittyLifecycle(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts.URL, "alice", "password123")
	token := login(t, ts.URL, "alice", "password123").AccessToken

	breedID := createBreed(t, ts.URL, token, "siberian", "fluffy")
	otherBreedID := createBreed(t, ts.URL, token, "sphynx", "hairless")

	// Raza inexistente al crear => 400, no 500 ni referencia colgante
	{
		st, _ := doReq(t, ts.URL, "POST", "/kitty/create/", token, map[string]any{
			"name": "Milo", "color": "gray", "age": 3, "breed_id": 999,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid breed, got %d", st)
		}
	}

	kittyID := createKitty(t, ts.URL, token, map[string]any{
		"name": "Milo", "color": "gray", "age": 3,
		"description": "playful", "breed_id": breedID,
	})
	otherID := createKitty(t, ts.URL, token, map[string]any{
		"name": "Luna", "color": "white", "age": 5, "breed_id": otherBreedID,
	})

	// Get devuelve gatito + raza anidada
	{
		st, body := doReq(t, ts.URL, "GET", kittyPath(kittyID), token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get kitty, got %d body=%s", st, string(body))
		}
		var resp struct {
			Kitty struct {
				Name    string `json:"name"`
				BreedID int64  `json:"breed_id"`
			} `json:"kitty"`
			Breed struct {
				ID   int64  `json:"id"`
				Name string `json:"name"`
			} `json:"breed"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Kitty.Name != "Milo" || resp.Breed.ID != breedID || resp.Breed.Name != "siberian" {
			t.Fatalf("unexpected get body=%s", string(body))
		}
	}

	// Update parcial: solo color; el resto queda igual
	{
		st, body := doReq(t, ts.URL, "PUT", "/kitty/update/"+itoa(kittyID), token, map[string]any{
			"color": "black",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
		}
		var k struct {
			Name        string  `json:"name"`
			Color       string  `json:"color"`
			Age         int     `json:"age"`
			Description *string `json:"description"`
			BreedID     int64   `json:"breed_id"`
		}
		_ = json.Unmarshal(body, &k)
		if k.Color != "black" {
			t.Fatalf("color not updated: %+v", k)
		}
		if k.Name != "Milo" || k.Age != 3 || k.BreedID != breedID || k.Description == nil || *k.Description != "playful" {
			t.Fatalf("partial update touched other fields: %+v", k)
		}
	}

	// Filtro por raza
	{
		st, body := doReq(t, ts.URL, "GET", "/kitty/all/?breed_id="+itoa(otherBreedID), token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var list struct {
			Kittens []struct {
				ID int64 `json:"id"`
			} `json:"kittens"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list.Kittens) != 1 || list.Kittens[0].ID != otherID {
			t.Fatalf("expected only Luna in filtered list, body=%s", string(body))
		}
	}

	// Soft delete: una vez ok, la segunda conflicto
	{
		st, body := doReq(t, ts.URL, "DELETE", "/kitty/soft_removal/"+itoa(kittyID), token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 soft removal, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/kitty/soft_removal/"+itoa(kittyID), token, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 double delete, got %d", st)
		}
	}

	// Borrado => desaparece de get y de listados
	{
		st, _ := doReq(t, ts.URL, "GET", kittyPath(kittyID), token, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 get deleted kitty, got %d", st)
		}

		st, body := doReq(t, ts.URL, "GET", "/kitty/all/?breed_id="+itoa(breedID), token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var list struct {
			Kittens []struct {
				ID int64 `json:"id"`
			} `json:"kittens"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list.Kittens) != 0 {
			t.Fatalf("deleted kitten still listed: %s", string(body))
		}
	}

	// Update sobre borrado => 404
	{
		st, _ := doReq(t, ts.URL, "PUT", "/kitty/update/"+itoa(kittyID), token, map[string]any{
			"name": "Ghost",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 update deleted kitty, got %d", st)
		}
	}

	// Gatito inexistente => 404 en delete
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/kitty/soft_removal/999", token, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 delete missing kitty, got %d", st)
		}
	}
}

func registerUser(t *testing.T, baseURL, username, password string) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/user/registration", "", map[string]any{
		"username": username,
		"password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 registration, got %d body=%s", st, string(body))
	}
}

func login(t *testing.T, baseURL, username, password string) tokenResponse {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/user/login", "", map[string]any{
		"username": username,
		"password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}

	var pair tokenResponse
	_ = json.Unmarshal(body, &pair)
	if pair.AccessToken == "" {
		t.Fatalf("login: missing access token body=%s", string(body))
	}
	return pair
}

func createBreed(t *testing.T, baseURL, token, name, description string) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/breed/create", token, map[string]any{
		"name":        name,
		"description": description,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 create breed, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create breed: missing id body=%s", string(body))
	}
	return resp.ID
}

func createKitty(t *testing.T, baseURL, token string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/kitty/create/", token, payload)
	if st != http.StatusOK {
		t.Fatalf("expected 200 create kitty, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create kitty: missing id body=%s", string(body))
	}
	return resp.ID
}

func kittyPath(id int64) string {
	return "/kitty/" + itoa(id)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func doReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
