package dto

type SendReportRequest struct {
	Email string `json:"email"`
}

// DownloadReport carries the derived plain-text report and its filename.
type DownloadReport struct {
	Filename string
	Content  string
}
