package personsettings

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

func boolPtr(v bool) *bool { return &v }

func TestPrivacyRead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/people/p-1/features/privacy" {
			t.Errorf("Path = %q, want /people/p-1/features/privacy", r.URL.Path)
		}
		if got := r.URL.Query().Get("orgId"); got != "org-1" {
			t.Errorf("orgId = %q, want org-1", got)
		}
		w.Write([]byte(`{
			"aaExtensionDialingEnabled": true,
			"aaNamingDialingEnabled": false,
			"enablePhoneStatusDirectoryPrivacy": true,
			"monitoringAgents": [{
				"id": "agent-1",
				"displayName": "Ada Lovelace",
				"type": "PEOPLE",
				"numbers": [{"external": "+15551234567", "primary": true}]
			}]
		}`))
	}))
	defer server.Close()

	api := newTestAPI(server.URL)
	settings, err := api.Privacy.Read(context.Background(), "p-1", "org-1")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if settings.AAExtensionDialingEnabled == nil || !*settings.AAExtensionDialingEnabled {
		t.Errorf("AAExtensionDialingEnabled = %v", settings.AAExtensionDialingEnabled)
	}
	if len(settings.MonitoringAgents) != 1 {
		t.Fatalf("MonitoringAgents = %d, want 1", len(settings.MonitoringAgents))
	}
	agent := settings.MonitoringAgents[0]
	if agent.ID != "agent-1" || agent.DisplayName != "Ada Lovelace" {
		t.Errorf("agent = %+v", agent)
	}
	if len(agent.Numbers) != 1 || !agent.Numbers[0].Primary {
		t.Errorf("Numbers = %+v", agent.Numbers)
	}
}

func TestPrivacyConfigureSendsAgentIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("Method = %q, want PUT", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		json.Unmarshal(body, &req)
		agents, ok := req["monitoringAgents"].([]any)
		if !ok || len(agents) != 2 {
			t.Fatalf("monitoringAgents = %v", req["monitoringAgents"])
		}
		if agents[0] != "agent-1" || agents[1] != "agent-2" {
			t.Errorf("monitoringAgents = %v, want bare IDs", agents)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	api := newTestAPI(server.URL)
	err := api.Privacy.Configure(context.Background(), "p-1", &Privacy{
		EnablePhoneStatusDirectoryPrivacy: boolPtr(true),
		MonitoringAgents: []MonitoredAgent{
			{ID: "agent-1", DisplayName: "Ada Lovelace"},
			{ID: "agent-2"},
		},
	}, "")
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
}

func TestDNDReadConfigure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/people/p-1/features/doNotDisturb" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"enabled":true,"ringSplashEnabled":false}`))
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			var req map[string]any
			json.Unmarshal(body, &req)
			if req["enabled"] != false {
				t.Errorf("enabled = %v, want false", req["enabled"])
			}
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	api := newTestAPI(server.URL)
	ctx := context.Background()

	settings, err := api.DND.Read(ctx, "p-1", "")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if settings.Enabled == nil || !*settings.Enabled {
		t.Errorf("Enabled = %v", settings.Enabled)
	}
	if err := api.DND.Configure(ctx, "p-1", &DND{Enabled: boolPtr(false)}, ""); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
}

func TestBargeRead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/people/p-1/features/bargeIn" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"enabled":true,"toneEnabled":true}`))
	}))
	defer server.Close()

	api := newTestAPI(server.URL)
	settings, err := api.Barge.Read(context.Background(), "p-1", "")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if settings.ToneEnabled == nil || !*settings.ToneEnabled {
		t.Errorf("ToneEnabled = %v", settings.ToneEnabled)
	}
}

func TestCallForwardingRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/people/p-1/features/callForwarding" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{
				"callForwarding": {
					"always": {"enabled": false, "ringReminderEnabled": true},
					"busy": {"enabled": true, "destination": "+15559876543"},
					"noAnswer": {"enabled": true, "destination": "+15559876543", "numberOfRings": 3, "systemMaxNumberOfRings": 20}
				},
				"businessContinuity": {"enabled": false}
			}`))
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			var req CallForwarding
			if err := json.Unmarshal(body, &req); err != nil {
				t.Fatalf("body: %v", err)
			}
			if req.CallForwarding == nil || req.CallForwarding.NoAnswer == nil {
				t.Fatalf("noAnswer missing: %s", body)
			}
			if req.CallForwarding.NoAnswer.NumberOfRings != 5 {
				t.Errorf("numberOfRings = %d, want 5", req.CallForwarding.NoAnswer.NumberOfRings)
			}
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	api := newTestAPI(server.URL)
	ctx := context.Background()

	settings, err := api.CallForwarding.Read(ctx, "p-1", "")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	rules := settings.CallForwarding
	if rules == nil || rules.NoAnswer == nil {
		t.Fatalf("rules = %+v", rules)
	}
	if rules.NoAnswer.SystemMaxNumberOfRings != 20 {
		t.Errorf("SystemMaxNumberOfRings = %d", rules.NoAnswer.SystemMaxNumberOfRings)
	}

	settings.CallForwarding.NoAnswer.NumberOfRings = 5
	if err := api.CallForwarding.Configure(ctx, "p-1", settings, ""); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
}

func TestRequiresPersonID(t *testing.T) {
	api := newTestAPI("http://unused.invalid")
	ctx := context.Background()

	if _, err := api.Privacy.Read(ctx, "", ""); !errors.Is(err, core.ErrValidation) {
		t.Errorf("Privacy.Read error = %v, want ErrValidation", err)
	}
	if err := api.DND.Configure(ctx, "", &DND{}, ""); !errors.Is(err, core.ErrValidation) {
		t.Errorf("DND.Configure error = %v, want ErrValidation", err)
	}
}
