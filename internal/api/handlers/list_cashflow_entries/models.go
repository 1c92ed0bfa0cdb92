package list_cashflow_entries

import (
	"net/url"
	"time"

	"github.com/rmarins/MEI-AgendaService/internal/domain"
	"github.com/rmarins/MEI-AgendaService/internal/service/cashflow/models"
)

// ToServiceRequest builds the listing filter from the query string.
// Supported params: startDate, endDate, type.
func ToServiceRequest(query url.Values) (*models.ListEntriesRequest, error) {
	req := &models.ListEntriesRequest{}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &end
	}

	if entryType := query.Get("type"); entryType != "" {
		req.Type = &entryType
	}

	return req, nil
}
