package dto

// ── reporting ──

// ReportSummary data behind the printable report
type ReportSummary struct {
	Title               string         `json:"title"`
	Institution         string         `json:"institution"`
	ActivePrograms      int64          `json:"active_programs"`
	RedesignsInProgress int64          `json:"redesigns_in_progress"`
	Campuses            []ReportCampus `json:"campuses"`
}

// ReportCampus one campus block; campuses without in-progress redesigns are omitted
type ReportCampus struct {
	Name string      `json:"name"`
	Rows []ReportRow `json:"rows"`
}

// ReportRow one program line
type ReportRow struct {
	Index       int    `json:"index"`
	ProgramName string `json:"program_name"`
	FacultyName string `json:"faculty_name"`
	Percent     int    `json:"percent"`
}

// ── dashboard ──

// DashboardResponse home page counters
type DashboardResponse struct {
	ActivePrograms      int64              `json:"active_programs"`
	RedesignsInProgress int64              `json:"redesigns_in_progress"`
	InProgressByCampus  []CampusCountItem  `json:"in_progress_by_campus"`
	RecentlyUpdated     []RedesignResponse `json:"recently_updated"`
}

// CampusCountItem in-progress redesigns of a campus
type CampusCountItem struct {
	CampusID   string `json:"campus_id"`
	CampusName string `json:"campus_name"`
	Total      int64  `json:"total"`
}
