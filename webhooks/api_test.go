package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/petal-labs/calla/auth"
	"github.com/petal-labs/calla/core"
)

func newTestAPI(serverURL string) *API {
	return New(core.NewSession(auth.StaticToken("test-token"), core.WithBaseURL(serverURL)))
}

func TestList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/webhooks" {
			t.Errorf("Path = %q, want /webhooks", r.URL.Path)
		}
		w.Write([]byte(`{"items":[{
			"id":"wh-1",
			"name":"message watcher",
			"targetUrl":"https://example.com/hook",
			"resource":"messages",
			"event":"created",
			"status":"active"
		}]}`))
	}))
	defer server.Close()

	api := newTestAPI(server.URL)
	hooks, err := api.List(nil).All(context.Background())
	if err != nil {
		t.Fatalf("List().All() error = %v", err)
	}
	if len(hooks) != 1 {
		t.Fatalf("len = %d, want 1", len(hooks))
	}
	if hooks[0].Resource != ResourceMessages || hooks[0].Event != EventCreated {
		t.Errorf("hook = %+v", hooks[0])
	}
	if hooks[0].Status != StatusActive {
		t.Errorf("Status = %q, want active", hooks[0].Status)
	}
}

func TestCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %q, want POST", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		json.Unmarshal(body, &req)
		if req["resource"] != "messages" || req["event"] != "created" {
			t.Errorf("resource/event = %v/%v", req["resource"], req["event"])
		}
		if req["filter"] != "roomId=r-1" {
			t.Errorf("filter = %v", req["filter"])
		}
		w.Write([]byte(`{"id":"wh-new","status":"active"}`))
	}))
	defer server.Close()

	api := newTestAPI(server.URL)
	wh, err := api.Create(context.Background(), &CreateWebhookRequest{
		Name:      "message watcher",
		TargetURL: "https://example.com/hook",
		Resource:  ResourceMessages,
		Event:     EventCreated,
		Filter:    "roomId=r-1",
		Secret:    "shhh",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if wh.ID != "wh-new" {
		t.Errorf("ID = %q", wh.ID)
	}
}

func TestCreateValidation(t *testing.T) {
	api := newTestAPI("http://unused.invalid")

	tests := []struct {
		name string
		req  CreateWebhookRequest
	}{
		{"missing name", CreateWebhookRequest{TargetURL: "https://x", Resource: ResourceAll, Event: EventAll}},
		{"missing target", CreateWebhookRequest{Name: "n", Resource: ResourceAll, Event: EventAll}},
		{"bad target url", CreateWebhookRequest{Name: "n", TargetURL: "nope", Resource: ResourceAll, Event: EventAll}},
		{"missing resource", CreateWebhookRequest{Name: "n", TargetURL: "https://x", Event: EventAll}},
		{"missing event", CreateWebhookRequest{Name: "n", TargetURL: "https://x", Resource: ResourceAll}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			if _, err := api.Create(context.Background(), &req); !errors.Is(err, core.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/webhooks/wh-1" {
			t.Errorf("%s %s, want PUT /webhooks/wh-1", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		json.Unmarshal(body, &req)
		if req["status"] != "active" {
			t.Errorf("status = %v, want active", req["status"])
		}
		w.Write([]byte(`{"id":"wh-1","status":"active"}`))
	}))
	defer server.Close()

	api := newTestAPI(server.URL)
	wh, err := api.Update(context.Background(), "wh-1", &UpdateWebhookRequest{
		Name:      "message watcher",
		TargetURL: "https://example.com/hook2",
		Status:    StatusActive,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if wh.Status != StatusActive {
		t.Errorf("Status = %q", wh.Status)
	}
}

func TestDetailsAndDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.URL.Path != "/webhooks/wh-1" {
				t.Errorf("Path = %q", r.URL.Path)
			}
			w.Write([]byte(`{"id":"wh-1","name":"n"}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer server.Close()

	api := newTestAPI(server.URL)
	if _, err := api.Details(context.Background(), "wh-1"); err != nil {
		t.Fatalf("Details() error = %v", err)
	}
	if err := api.Delete(context.Background(), "wh-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}
