package middleware

import (
	"net/http"
	"strings"
)

var overridableMethods = map[string]struct{}{
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// MethodOverride lets clients that can only POST reach PUT, PATCH and DELETE
// routes through the X-HTTP-Method-Override header.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			m := strings.ToUpper(strings.TrimSpace(r.Header.Get("X-HTTP-Method-Override")))
			if _, ok := overridableMethods[m]; ok {
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}
