package hh

// Salary is the hh.ru salary object. Either bound may be null in the API
// response, meaning "not specified in that direction".
type Salary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
}

// Vacancy is one search hit from /vacancies.
type Vacancy struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	AlternateURL string  `json:"alternate_url"`
	Salary       *Salary `json:"salary"`
	Area         struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"area"`
}

// searchResponse is the top-level /vacancies page.
type searchResponse struct {
	Items []Vacancy `json:"items"`
	Found int       `json:"found"`
	Pages int       `json:"pages"`
	Page  int       `json:"page"`
}

// VacancyDetail is the per-id lookup result. Description is raw HTML markup;
// Experience carries the hh.ru seniority label.
type VacancyDetail struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Experience  struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"experience"`
}
