package handlers

type HealthResponse struct {
	Status           string `json:"status"`
	SchedulerRunning bool   `json:"schedulerRunning"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}

type dateQuery struct {
	Date string `validate:"omitempty,datetime=2006-01-02"`
}

type heatmapQuery struct {
	Weeks int `validate:"min=1,max=52"`
}
