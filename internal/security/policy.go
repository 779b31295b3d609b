package security

// Access is the outcome of a policy decision.
type Access int

const (
	Authenticated Access = iota
	PermitAll
)

func (a Access) String() string {
	if a == PermitAll {
		return "permitAll"
	}
	return "authenticated"
}

// Rule grants Access to every path matching one of Patterns.
type Rule struct {
	Patterns []string
	Access   Access
}

// Policy maps request paths to access levels. Rules are checked in order
// and the first match wins; unmatched paths require authentication.
type Policy struct {
	rules      []Rule
	csrfExempt []string
}

func NewPolicy(rules []Rule, csrfExempt []string) *Policy {
	return &Policy{rules: rules, csrfExempt: csrfExempt}
}

// DefaultPolicy opens the SPA assets, the auth and login endpoints, the
// public test content and the operational endpoints.
func DefaultPolicy() *Policy {
	return NewPolicy([]Rule{
		{Access: PermitAll, Patterns: []string{
			"/", "/index.html", "/assets/**",
			"/*.ico", "/*.png", "/*.svg", "/*.webmanifest", "/*.js", "/vite.svg",
		}},
		{Access: PermitAll, Patterns: []string{"/api/auth/**", "/oauth2/**", "/login/oauth2/code/google"}},
		{Access: PermitAll, Patterns: []string{"/api/csrf-token"}},
		{Access: PermitAll, Patterns: []string{"/api/test/**"}},
		{Access: PermitAll, Patterns: []string{"/h2-console/**"}},
		{Access: PermitAll, Patterns: []string{"/health", "/swagger/**"}},
	}, []string{"/api/auth/**", "/h2-console/**"})
}

// Decide returns the access level required for path.
func (p *Policy) Decide(path string) Access {
	for _, r := range p.rules {
		if matchAny(r.Patterns, path) {
			return r.Access
		}
	}
	return Authenticated
}

// CSRFExempt reports whether unsafe requests to path skip the CSRF check.
func (p *Policy) CSRFExempt(path string) bool {
	return matchAny(p.csrfExempt, path)
}
