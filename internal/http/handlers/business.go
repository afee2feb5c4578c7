package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/swcleaning/ai-responder/internal/business"
	"github.com/swcleaning/ai-responder/pkg/logging"
)

// availabilityDays caps how many upcoming slots a coverage lookup returns.
const availabilityDays = 5

// BusinessHandler serves public area-coverage and service lookups so the
// booking form can validate an enquiry before a message is ever sent.
type BusinessHandler struct {
	logger *logging.Logger
	now    func() time.Time
}

// NewBusinessHandler creates a new business lookup handler.
func NewBusinessHandler(logger *logging.Logger) *BusinessHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &BusinessHandler{logger: logger, now: time.Now}
}

// Coverage reports whether an area is serviced, with upcoming availability
// when it is.
// GET /api/coverage?area=Keynsham
func (h *BusinessHandler) Coverage(w http.ResponseWriter, r *http.Request) {
	area := strings.TrimSpace(r.URL.Query().Get("area"))
	if area == "" {
		jsonError(w, "Area is required", http.StatusBadRequest)
		return
	}

	cov := business.LookupAreaCoverage(area)
	resp := map[string]any{
		"area":    area,
		"covered": cov.Covered,
		"notes":   cov.Notes,
	}
	if cov.Covered {
		from := h.now()
		resp["nextAvailableDate"] = business.NextAvailableDate(from)
		resp["availability"] = business.AvailabilityForArea(from, area, availabilityDays)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Services lists the service catalogue, or looks one service up by
// (partial) name.
// GET /api/services?name=gutter
func (h *BusinessHandler) Services(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeJSON(w, http.StatusOK, map[string]any{
			"services": business.GetContext().Services,
		})
		return
	}

	svc, ok := business.LookupService(name)
	if !ok {
		jsonError(w, "service not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}
