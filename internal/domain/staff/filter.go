package staff

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Filter validation is deliberately permissive: every invalid parameter
// degrades to its documented default ("no constraint"), never to an error.
// Input-shape validation happens at the HTTP boundary; this layer only
// normalizes.

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type SearchType string

const (
	SearchLike       SearchType = "like"
	SearchExact      SearchType = "exact"
	SearchStartsWith SearchType = "starts_with"
	SearchEndsWith   SearchType = "ends_with"
)

// TriState is one dimension of the overtime/face filter pair.
type TriState string

const (
	TriAny TriState = "all"
	TriYes TriState = "yes"
	TriNo  TriState = "no"
)

type SalaryField string

const (
	SalaryFieldBasic    SalaryField = "basic_salary"
	SalaryFieldTakeHome SalaryField = "take_home"
	SalaryFieldCTC      SalaryField = "ctc"
)

type DeviceFilter string

const (
	DeviceAll     DeviceFilter = "all"
	DeviceAndroid DeviceFilter = "android"
	DeviceIOS     DeviceFilter = "ios"
	DeviceNone    DeviceFilter = "none"
)

type ProjectsFilter string

const (
	ProjectsAll    ProjectsFilter = "all"
	ProjectsMulti  ProjectsFilter = "multi"
	ProjectsSingle ProjectsFilter = "single"
	ProjectsNone   ProjectsFilter = "none"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// SearchFields are the aliases a caller may search on. An unknown alias
// falls back to searching all of them.
var SearchFields = []string{"name", "email", "phone", "code", "skills", "education"}

// OrderFields is the allow-list for ordering; unknown fields never reach SQL.
var OrderFields = []string{"joining_date", "name", "status", "code", "created_at"}

var SupportedCurrencies = []string{"USD", "EUR", "GBP", "INR", "IDR", "SGD", "AED"}

// combinedFilters maps the nine legacy combination names onto the two
// tri-state dimensions (overtime, face).
var combinedFilters = map[string][2]TriState{
	"ot_with_face":        {TriYes, TriYes},
	"ot_without_face":     {TriYes, TriNo},
	"non_ot_with_face":    {TriNo, TriYes},
	"non_ot_without_face": {TriNo, TriNo},
	"all_ot":              {TriYes, TriAny},
	"all_non_ot":          {TriNo, TriAny},
	"with_face":           {TriAny, TriYes},
	"without_face":        {TriAny, TriNo},
	"all":                 {TriAny, TriAny},
}

// ListParams is the raw parameter bag as it arrives from the transport.
type ListParams struct {
	Page           string
	Limit          string
	Search         string
	SearchField    string
	SearchType     string
	Status         string
	OrderBy        string
	OrderDirection string
	OTFilter       string
	FaceFilter     string
	CombinedFilter string
	SalaryField    string
	MinSalary      string
	MaxSalary      string
	Currency       string
	DeviceFilter   string
	ProjectsFilter string
	ProjectID      string
}

// ListOptions is the validated, fully-typed filter set.
type ListOptions struct {
	Page           int
	Limit          int
	Search         string
	SearchField    *string
	SearchType     SearchType
	Status         *Status
	OrderBy        string
	OrderDirection string
	OT             TriState
	Face           TriState
	SalaryField    *SalaryField
	MinSalary      *decimal.Decimal
	MaxSalary      *decimal.Decimal
	Currency       *string
	Device         DeviceFilter
	Projects       ProjectsFilter
	ProjectID      *int64
}

// ParseListOptions normalizes a raw parameter bag. It never fails: every
// invalid field takes its default, and min/max salary are swapped rather
// than rejected when inverted.
func ParseListOptions(p ListParams) ListOptions {
	opts := ListOptions{
		Page:           parsePositiveInt(p.Page, 1),
		Limit:          clampLimit(parsePositiveInt(p.Limit, DefaultLimit)),
		Search:         strings.TrimSpace(p.Search),
		SearchType:     SearchLike,
		OrderBy:        "joining_date",
		OrderDirection: "DESC",
		OT:             TriAny,
		Face:           TriAny,
		Device:         DeviceAll,
		Projects:       ProjectsAll,
	}

	if field := strings.ToLower(strings.TrimSpace(p.SearchField)); contains(SearchFields, field) {
		opts.SearchField = &field
	}

	switch SearchType(strings.ToLower(strings.TrimSpace(p.SearchType))) {
	case SearchExact:
		opts.SearchType = SearchExact
	case SearchStartsWith:
		opts.SearchType = SearchStartsWith
	case SearchEndsWith:
		opts.SearchType = SearchEndsWith
	}

	if field := strings.ToLower(strings.TrimSpace(p.OrderBy)); contains(OrderFields, field) {
		opts.OrderBy = field
	}
	if strings.EqualFold(strings.TrimSpace(p.OrderDirection), "ASC") {
		opts.OrderDirection = "ASC"
	}

	switch Status(strings.ToLower(strings.TrimSpace(p.Status))) {
	case StatusActive:
		s := StatusActive
		opts.Status = &s
	case StatusInactive:
		s := StatusInactive
		opts.Status = &s
	}

	// The explicit ot/face filters win; the legacy combined name only
	// applies when neither dimension was set directly.
	opts.OT = parseOTFilter(p.OTFilter)
	opts.Face = parseFaceFilter(p.FaceFilter)
	if opts.OT == TriAny && opts.Face == TriAny {
		if pair, ok := combinedFilters[strings.ToLower(strings.TrimSpace(p.CombinedFilter))]; ok {
			opts.OT, opts.Face = pair[0], pair[1]
		}
	}

	switch SalaryField(strings.ToLower(strings.TrimSpace(p.SalaryField))) {
	case SalaryFieldBasic:
		f := SalaryFieldBasic
		opts.SalaryField = &f
	case SalaryFieldTakeHome:
		f := SalaryFieldTakeHome
		opts.SalaryField = &f
	case SalaryFieldCTC:
		f := SalaryFieldCTC
		opts.SalaryField = &f
	}

	opts.MinSalary = parseNonNegativeDecimal(p.MinSalary)
	opts.MaxSalary = parseNonNegativeDecimal(p.MaxSalary)
	if opts.MinSalary != nil && opts.MaxSalary != nil && opts.MinSalary.GreaterThan(*opts.MaxSalary) {
		opts.MinSalary, opts.MaxSalary = opts.MaxSalary, opts.MinSalary
	}

	if cur := strings.ToUpper(strings.TrimSpace(p.Currency)); contains(SupportedCurrencies, cur) {
		opts.Currency = &cur
	}

	switch DeviceFilter(strings.ToLower(strings.TrimSpace(p.DeviceFilter))) {
	case DeviceAndroid:
		opts.Device = DeviceAndroid
	case DeviceIOS:
		opts.Device = DeviceIOS
	case DeviceNone:
		opts.Device = DeviceNone
	}

	switch ProjectsFilter(strings.ToLower(strings.TrimSpace(p.ProjectsFilter))) {
	case ProjectsMulti:
		opts.Projects = ProjectsMulti
	case ProjectsSingle:
		opts.Projects = ProjectsSingle
	case ProjectsNone:
		opts.Projects = ProjectsNone
	}

	if id, err := strconv.ParseInt(strings.TrimSpace(p.ProjectID), 10, 64); err == nil && id > 0 {
		opts.ProjectID = &id
	}

	return opts
}

func parseOTFilter(raw string) TriState {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ot":
		return TriYes
	case "non_ot":
		return TriNo
	default:
		return TriAny
	}
}

func parseFaceFilter(raw string) TriState {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "registered":
		return TriYes
	case "not_registered":
		return TriNo
	default:
		return TriAny
	}
}

func parsePositiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func clampLimit(n int) int {
	if n > MaxLimit {
		return MaxLimit
	}
	if n < 1 {
		return 1
	}
	return n
}

func parseNonNegativeDecimal(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}

func contains(slice []string, value string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
