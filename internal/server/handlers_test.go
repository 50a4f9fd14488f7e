package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/armadachess/armada/internal/testutil"
)

func newTestServer(t *testing.T, windowMax int) *httptest.Server {
	t.Helper()
	h := NewHandler(NewManager(), windowMax, nil)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body interface{}, out interface{}) int {
	t.Helper()
	data, err := json.Marshal(body)
	testutil.AssertNoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	testutil.AssertNoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		testutil.AssertNoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func startGame(t *testing.T, srv *httptest.Server) newGameResponse {
	t.Helper()
	var created newGameResponse
	status := postJSON(t, srv.URL+"/api/new_game", struct{}{}, &created)
	testutil.AssertEqual(t, status, http.StatusOK)
	return created
}

func TestNewGame(t *testing.T) {
	srv := newTestServer(t, 64)
	created := startGame(t, srv)

	testutil.AssertTrue(t, created.GameID != "")
	testutil.AssertEqual(t, created.State.Turn, "White")
	testutil.AssertEqual(t, created.State.Mode, "idle")
	testutil.AssertEqual(t, len(created.State.Ranks), 8)
	testutil.AssertEqual(t, created.State.Ranks[0], "RNBQKBNR")
	testutil.AssertEqual(t, created.State.Ranks[1], "PPPPPPPP")
	testutil.AssertEqual(t, created.State.Ranks[4], "........")
	testutil.AssertEqual(t, created.State.Ranks[7], "rnbqkbnr")
}

func TestMoveEndpoint(t *testing.T) {
	srv := newTestServer(t, 64)
	created := startGame(t, srv)

	var moved moveResponse
	status := postJSON(t, srv.URL+"/api/move",
		moveRequest{GameID: created.GameID, From: "e2", To: "e4"}, &moved)
	testutil.AssertEqual(t, status, http.StatusOK)
	testutil.AssertEqual(t, moved.Outcome, "Completed")
	testutil.AssertEqual(t, moved.State.Turn, "Black")
	testutil.AssertEqual(t, moved.State.Opportunity, "e4")

	// An illegal move is a client error and changes nothing.
	var rejected errorResponse
	status = postJSON(t, srv.URL+"/api/move",
		moveRequest{GameID: created.GameID, From: "e7", To: "e7"}, &rejected)
	testutil.AssertEqual(t, status, http.StatusUnprocessableEntity)
	testutil.AssertContains(t, rejected.Error, "rejected")
}

func TestMoveUnknownGame(t *testing.T) {
	srv := newTestServer(t, 64)
	status := postJSON(t, srv.URL+"/api/move",
		moveRequest{GameID: "nope", From: "e2", To: "e4"}, nil)
	testutil.AssertEqual(t, status, http.StatusNotFound)
}

func TestMoveBadNotation(t *testing.T) {
	srv := newTestServer(t, 64)
	created := startGame(t, srv)
	status := postJSON(t, srv.URL+"/api/move",
		moveRequest{GameID: created.GameID, From: "zz", To: "e4"}, nil)
	testutil.AssertEqual(t, status, http.StatusBadRequest)
}

func TestStateWindow(t *testing.T) {
	srv := newTestServer(t, 3)
	created := startGame(t, srv)

	resp, err := http.Get(fmt.Sprintf("%s/api/state?game_id=%s&from_rank=5", srv.URL, created.GameID))
	testutil.AssertNoError(t, err)
	defer resp.Body.Close()
	testutil.AssertEqual(t, resp.StatusCode, http.StatusOK)

	var st gameState
	testutil.AssertNoError(t, json.NewDecoder(resp.Body).Decode(&st))
	testutil.AssertEqual(t, st.WindowFirst, 5)
	testutil.AssertEqual(t, len(st.Ranks), 3, "the window caps the rank count")
	testutil.AssertEqual(t, st.Ranks[1], "pppppppp")
	testutil.AssertEqual(t, st.FirstRank, 0)
	testutil.AssertEqual(t, st.LastRank, 7)
}

func TestPromoteEndpoint(t *testing.T) {
	srv := newTestServer(t, 64)
	created := startGame(t, srv)

	status := postJSON(t, srv.URL+"/api/promote",
		promoteRequest{GameID: created.GameID, Choice: 0}, nil)
	testutil.AssertEqual(t, status, http.StatusUnprocessableEntity,
		"promotion with nothing pending is a client error")
}

func TestManagerDelete(t *testing.T) {
	m := NewManager()
	id := m.Create()
	testutil.AssertEqual(t, m.Len(), 1)
	m.Delete(id)
	testutil.AssertEqual(t, m.Len(), 0)
}
