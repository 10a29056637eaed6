package pagination

// Meta is the page metadata attached to every list response.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Offset     int   `json:"offset"`
}

// Calculate derives page metadata from (page, limit, total).
// total_pages is 0 when total is 0; has_next holds iff page*limit < total.
func Calculate(page, limit int, total int64) Meta {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Meta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    int64(page)*int64(limit) < total,
		HasPrev:    page > 1,
		Offset:     (page - 1) * limit,
	}
}
