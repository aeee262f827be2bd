package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/ekimwerac/observable-clock-demo/internal/clocksvc"
)

func (s *HTTPServer) filterTicks(_ *http.Request, query url.Values) FilterFunc[clocksvc.Tick] {
	source := strings.TrimSpace(query.Get("source"))
	search := strings.TrimSpace(query.Get("search"))
	if source == "" && search == "" {
		return nil
	}
	return func(val clocksvc.Tick) bool {
		if source != "" && val.Source != source {
			return false
		}
		if search != "" && !strings.Contains(val.Display, search) {
			return false
		}
		return true
	}
}
