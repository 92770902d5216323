package wire

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"movie-tracker/internal/metadata"
	"movie-tracker/internal/testutil"
	"movie-tracker/pkg/middleware"
	"movie-tracker/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		App:     utils.AppConfig{SecretKey: "test-secret"},
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

func newTestApp(fetcher metadata.Fetcher) *App {
	return Wiring(testutil.NewRepository(), fetcher, testConfig(), zap.NewNop())
}

func postForm(t *testing.T, router http.Handler, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, router http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

// registerAndLogin runs the signup and login flows and returns the session
// cookie the server issued.
func registerAndLogin(t *testing.T, router http.Handler, username string) *http.Cookie {
	t.Helper()

	rec := postForm(t, router, "/register", url.Values{
		"name":     {username},
		"username": {username},
		"password": {"pw123"},
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postForm(t, router, "/login", url.Values{
		"username": {username},
		"password": {"pw123"},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			require.NotEmpty(t, c.Value)
			assert.True(t, c.HttpOnly)
			return c
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func TestRouter_RegisterLoginAddMovie(t *testing.T) {
	fetcher := &testutil.StubFetcher{Info: &metadata.MovieInfo{
		Title:  "Inception",
		Year:   2010,
		Rating: 8.8,
		Poster: "http://example.com/poster.jpg",
		Plot:   "A thief who steals corporate secrets...",
	}}
	app := newTestApp(fetcher)

	cookie := registerAndLogin(t, app.Router, "alice1")

	rec := postForm(t, app.Router, "/add_movie", url.Values{"title": {"Inception"}}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Status)

	movie, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Inception", movie["title"])
	assert.Equal(t, float64(2010), movie["year"])
	assert.Equal(t, 8.8, movie["rating"])
}

func TestRouter_AddMovieRequiresSession(t *testing.T) {
	app := newTestApp(&testutil.StubFetcher{})

	rec := postForm(t, app.Router, "/add_movie", url.Values{"title": {"Inception"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_DeleteOtherUsersMovie(t *testing.T) {
	fetcher := &testutil.StubFetcher{Info: &metadata.MovieInfo{Title: "Heat", Year: 1995, Rating: 8.3}}
	app := newTestApp(fetcher)

	aliceCookie := registerAndLogin(t, app.Router, "alice1")
	bobCookie := registerAndLogin(t, app.Router, "bob1")

	rec := postForm(t, app.Router, "/add_movie", url.Values{"title": {"Heat"}}, aliceCookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	movie := decodeEnvelope(t, rec).Data.(map[string]any)
	movieID := movie["id"].(string)

	// Bob cannot delete Alice's movie
	rec = postForm(t, app.Router, "/delete_movie/"+movieID, url.Values{}, bobCookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Alice can
	rec = postForm(t, app.Router, "/delete_movie/"+movieID, url.Values{}, aliceCookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LogoutRevokesSession(t *testing.T) {
	app := newTestApp(&testutil.StubFetcher{})

	cookie := registerAndLogin(t, app.Router, "alice1")

	rec := get(t, app.Router, "/logout", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// The old cookie no longer authenticates
	rec = get(t, app.Router, "/users", cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ForgedCookieRejected(t *testing.T) {
	app := newTestApp(&testutil.StubFetcher{})

	registerAndLogin(t, app.Router, "alice1")

	forged := &http.Cookie{
		Name:  middleware.SessionCookieName,
		Value: utils.SignSessionToken("11111111-1111-1111-1111-111111111111", "wrong-secret"),
	}
	rec := get(t, app.Router, "/users", forged)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_APIVariantShapes(t *testing.T) {
	app := newTestApp(&testutil.StubFetcher{})

	registerAndLogin(t, app.Router, "alice1")

	// /api routes are open; shapes differ from the app envelope
	rec := get(t, app.Router, "/api/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var usersBody map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&usersBody))
	require.Contains(t, usersBody, "users")

	var users []map[string]any
	require.NoError(t, json.Unmarshal(usersBody["users"], &users))
	require.Len(t, users, 1)
	userID := users[0]["id"].(string)
	assert.Equal(t, "alice1", users[0]["username"])
	assert.NotContains(t, users[0], "password")

	// POST a movie through the API variant
	body, _ := json.Marshal(map[string]any{
		"title":       "Heat",
		"description": "LA crime saga",
		"rating":      8.3,
		"year":        1995,
		"poster":      "http://example.com/heat.jpg",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+userID+"/movies", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, true, created["success"])

	// The movie shows up in the user's list
	rec = get(t, app.Router, "/api/users/"+userID+"/movies", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var moviesBody map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&moviesBody))
	var movies []map[string]any
	require.NoError(t, json.Unmarshal(moviesBody["movies"], &movies))
	require.Len(t, movies, 1)
	assert.Equal(t, "Heat", movies[0]["title"])

	// Listing movies for an unknown user yields an empty list, not an error
	rec = get(t, app.Router, "/api/users/11111111-1111-1111-1111-111111111111/movies", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(&testutil.StubFetcher{})

	rec := get(t, app.Router, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
