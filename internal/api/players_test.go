package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sportsworldcentral/swc-client-go/internal/types"
)

func TestListPlayers_Success(t *testing.T) {
	t.Parallel()
	want := []types.Player{
		{PlayerID: 1, FirstName: "Patrick", LastName: "Mahomes", Position: "QB"},
		{PlayerID: 2, FirstName: "Travis", LastName: "Kelce", Position: "TE"},
	}
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := ListPlayers(context.Background(), testCall(srv.Client()), srv.URL, types.ListPlayersParams{
		Limit:    intPtr(2),
		LastName: strPtr("Mahomes"),
	})
	if err != nil || len(got) != 2 || got[0].LastName != "Mahomes" {
		t.Fatalf("ListPlayers unexpected: got=%+v err=%v", got, err)
	}
	if gotPath != ListPlayersEndpoint {
		t.Fatalf("path = %q", gotPath)
	}
	if gotQuery != "last_name=Mahomes&limit=2" {
		t.Fatalf("query = %q", gotQuery)
	}
}

func TestGetPlayer_Success(t *testing.T) {
	t.Parallel()
	want := types.Player{PlayerID: 42, FirstName: "Josh", LastName: "Allen", Position: "QB"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/players/42" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := GetPlayer(context.Background(), testCall(srv.Client()), srv.URL, 42)
	if err != nil || got == nil || got.PlayerID != 42 {
		t.Fatalf("GetPlayer unexpected: got=%+v err=%v", got, err)
	}
}

func TestListPlayers_DecodeError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	if _, err := ListPlayers(context.Background(), testCall(srv.Client()), srv.URL, types.ListPlayersParams{}); err == nil {
		t.Fatal("expected decode error")
	}
}
