package models

// @Description Ответ при недоступности источника раздач
type FetchErrorResponse struct {
	// @Description Фиксированное сообщение об ошибке
	Error string `json:"error" example:"Failed to fetch giveaways"`
}

// @Description Раздача в формате внешнего API (передаётся без изменений)
type SwaggerGiveaway struct {
	ID              int    `json:"id" example:"2893"`
	Title           string `json:"title" example:"Cursed Companions (Steam) Giveaway"`
	Worth           string `json:"worth" example:"$4.99" enums:"N/A"`
	Thumbnail       string `json:"thumbnail" example:"https://www.gamerpower.com/offers/1/6537f8c3b62ac.jpg"`
	Image           string `json:"image" example:"https://www.gamerpower.com/offers/1b/6537f8c3b62ac.jpg"`
	Description     string `json:"description" example:"Grab Cursed Companions for free while it lasts."`
	Instructions    string `json:"instructions" example:"1. Click the button to visit the giveaway page.<br>\r\n2. Log in and claim."`
	OpenGiveawayURL string `json:"open_giveaway_url" example:"https://www.gamerpower.com/open/cursed-companions-steam-giveaway"`
	PublishedDate   string `json:"published_date" example:"2024-01-10 14:52:07"`
	Type            string `json:"type" example:"Game"`
	Platforms       string `json:"platforms" example:"PC, Steam"`
	EndDate         string `json:"end_date" example:"2024-01-17 23:59:00" enums:"N/A"`
	Users           int    `json:"users" example:"4120"`
	Status          string `json:"status" example:"Active"`
	GamerPowerURL   string `json:"gamerpower_url" example:"https://www.gamerpower.com/cursed-companions-steam-giveaway"`
}
