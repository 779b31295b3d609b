package security

import "testing"

func TestMatchPath(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/assets/**", "/assets/index-abc.js", true},
		{"/assets/**", "/assets/img/logo.png", true},
		{"/assets/**", "/assets", true},
		{"/assets/**", "/assetsx/a.js", false},
		{"/*.ico", "/favicon.ico", true},
		{"/*.ico", "/img/favicon.ico", false},
		{"/", "/", true},
		{"/", "/index.html", false},
		{"/api/test/**", "/api/test/admin", true},
		{"/login/oauth2/code/google", "/login/oauth2/code/github", false},
	}
	for _, tt := range tests {
		if got := MatchPath(tt.pattern, tt.path); got != tt.want {
			t.Errorf("MatchPath(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestDefaultPolicy_Decide(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		path string
		want Access
	}{
		{"/", PermitAll},
		{"/index.html", PermitAll},
		{"/assets/index-4f2a.css", PermitAll},
		{"/favicon.ico", PermitAll},
		{"/logo192.png", PermitAll},
		{"/icon.svg", PermitAll},
		{"/site.webmanifest", PermitAll},
		{"/registerSW.js", PermitAll},
		{"/vite.svg", PermitAll},
		{"/api/auth/signin", PermitAll},
		{"/api/auth/user", PermitAll},
		{"/oauth2/authorization/google", PermitAll},
		{"/login/oauth2/code/google", PermitAll},
		{"/api/csrf-token", PermitAll},
		{"/api/test/all", PermitAll},
		{"/api/test/admin", PermitAll},
		{"/h2-console/login.do", PermitAll},
		{"/health", PermitAll},
		{"/swagger/index.html", PermitAll},

		{"/login/oauth2/code/github", Authenticated},
		{"/api/workouts", Authenticated},
		{"/nested/app.js", Authenticated},
		{"/dashboard", Authenticated},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := p.Decide(tt.path); got != tt.want {
				t.Fatalf("Decide(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestDefaultPolicy_CSRFExempt(t *testing.T) {
	p := DefaultPolicy()
	for path, want := range map[string]bool{
		"/api/auth/signup":  true,
		"/api/auth/signout": true,
		"/h2-console/x":     true,
		"/api/test/all":     false,
		"/api/workouts":     false,
		"/oauth2/anything":  false,
	} {
		if got := p.CSRFExempt(path); got != want {
			t.Errorf("CSRFExempt(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestPolicy_FirstMatchWins(t *testing.T) {
	p := NewPolicy([]Rule{
		{Access: Authenticated, Patterns: []string{"/api/test/admin"}},
		{Access: PermitAll, Patterns: []string{"/api/test/**"}},
	}, nil)
	if p.Decide("/api/test/admin") != Authenticated {
		t.Fatal("earlier rule must win")
	}
	if p.Decide("/api/test/all") != PermitAll {
		t.Fatal("later rule must apply when earlier ones miss")
	}
}
