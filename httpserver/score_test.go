// nolint: funlen
package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dsmovie/httpserver"
	"dsmovie/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockScoreService struct {
	mock.Mock
}

func (m *MockScoreService) SaveScore(ctx context.Context, username string, movieID int64, value float64) (movie.Movie, error) {
	args := m.Called(ctx, username, movieID, value)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func TestSaveScore(t *testing.T) {
	server := httpserver.Default(testConfig())
	svc := new(MockScoreService)
	server.ScoreService = svc
	token, err := signTestToken("maria@gmail.com")
	assert.NoError(t, err)

	t.Run("should returns 200 with the recomputed movie", func(t *testing.T) {
		updated := movie.Movie{ID: 1, Title: "Test Movie", Score: 4.5, Count: 1}
		svc.On("SaveScore", mock.Anything, "maria@gmail.com", int64(1), 4.5).
			Return(updated, nil).Once()
		request := newScoreRequestWithAuth(`{"movieId":1,"score":4.5}`, token)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code, "Expected 200 OK")
		resp := decodeAPIResponse(t, recorder)
		assert.Equal(t, "200", resp.Code)
		var result movie.Movie
		decodeAPIResult(t, resp.Result, &result)
		assert.Equal(t, updated, result, "response carries the movie with its new aggregate")
		svc.AssertExpectations(t)
	})

	t.Run("should pass the token identity to the service", func(t *testing.T) {
		alexToken, err := signTestToken("alex@gmail.com")
		assert.NoError(t, err)
		svc.On("SaveScore", mock.Anything, "alex@gmail.com", int64(1), 5.0).
			Return(movie.Movie{ID: 1, Score: 5.0, Count: 1}, nil).Once()
		request := newScoreRequestWithAuth(`{"movieId":1,"score":5.0}`, alexToken)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		svc.AssertExpectations(t)
	})

	t.Run("should returns 400 without a token", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPut, "/api/scores",
			strings.NewReader(`{"movieId":1,"score":4.5}`))
		request.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code, "missing token is a malformed request")
		svc.AssertNotCalled(t, "SaveScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should returns 401 with a tampered token", func(t *testing.T) {
		request := newScoreRequestWithAuth(`{"movieId":1,"score":4.5}`, token+"tampered")
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		svc.AssertNotCalled(t, "SaveScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should returns 400 when score is above the scale", func(t *testing.T) {
		request := newScoreRequestWithAuth(`{"movieId":1,"score":5.1}`, token)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeAPIResponse(t, recorder)
		assert.Equal(t, "100010", resp.Code)
		svc.AssertNotCalled(t, "SaveScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should returns 400 when movie id is missing", func(t *testing.T) {
		request := newScoreRequestWithAuth(`{"score":4.5}`, token)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		svc.AssertNotCalled(t, "SaveScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should returns 404 when movie does not exist", func(t *testing.T) {
		svc.On("SaveScore", mock.Anything, "maria@gmail.com", int64(99), 4.5).
			Return(movie.Movie{}, movie.ErrNotFound).Once()
		request := newScoreRequestWithAuth(`{"movieId":99,"score":4.5}`, token)
		recorder := httptest.NewRecorder()

		server.Router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		resp := decodeAPIResponse(t, recorder)
		assert.Equal(t, "100404", resp.Code)
		svc.AssertExpectations(t)
	})
}

func newScoreRequestWithAuth(body, token string) *http.Request {
	request := httptest.NewRequest(http.MethodPut, "/api/scores", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+token)
	return request
}
