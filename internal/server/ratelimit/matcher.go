package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited is returned for routes that never consume a bucket
var unlimited = EndpointConfig{}

// unlimitedRoutes are probed by load balancers and uptime checks
var unlimitedRoutes = map[string]bool{
	http.MethodGet + " /health": true,
}

// MatchEndpoint finds the endpoint budget for a request. An exact path wins;
// otherwise the longest configured prefix ending in "/" wins, so
// "/portfolio/" covers every public portfolio page. Nil means the default budget.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimitedRoutes[method+" "+path] {
		u := unlimited
		return &u
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			if best == nil || len(c.Path) > len(best.Path) {
				best = c
			}
		}
	}
	return best
}
