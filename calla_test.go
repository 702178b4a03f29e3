package calla

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/petal-labs/calla/core"
)

func TestClientSharesSession(t *testing.T) {
	var gotAuth []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/people/me":
			w.Write([]byte(`{"id":"p-me","displayName":"Ada Lovelace"}`))
		case "/rooms":
			w.Write([]byte(`{"items":[{"id":"r-1","title":"Engineering"}]}`))
		default:
			t.Errorf("Path = %q unexpected", r.URL.Path)
		}
	}))
	defer server.Close()

	client := New("test-token", core.WithBaseURL(server.URL))
	ctx := context.Background()

	me, err := client.People.Me(ctx)
	if err != nil {
		t.Fatalf("People.Me() error = %v", err)
	}
	if me.DisplayName != "Ada Lovelace" {
		t.Errorf("DisplayName = %q", me.DisplayName)
	}

	rooms, err := client.Rooms.List(nil).All(ctx)
	if err != nil {
		t.Fatalf("Rooms.List() error = %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("len(rooms) = %d, want 1", len(rooms))
	}

	for _, auth := range gotAuth {
		if auth != "Bearer test-token" {
			t.Errorf("Authorization = %q", auth)
		}
	}
}

func TestClientWiresEveryGroup(t *testing.T) {
	client := New("test-token")
	if client.Messages == nil || client.Webhooks == nil || client.Locations == nil ||
		client.Licenses == nil || client.Workspaces == nil ||
		client.PersonSettings == nil || client.Telephony == nil {
		t.Fatal("endpoint group left nil")
	}
	if client.PersonSettings.Privacy == nil || client.Telephony.PremPSTN.RouteList == nil {
		t.Fatal("nested API left nil")
	}
	if client.Session() == nil {
		t.Fatal("Session() = nil")
	}
}
