// Package taxonomy holds the fixed reference data the whole system is built
// around: the supported hh.ru regions, the security-profession categories with
// their search synonyms, the four hh.ru experience buckets and the skill
// vocabulary used for requirements analysis.
//
// Everything here is immutable after process start. Components receive these
// tables read-only; nothing mutates them at runtime.
package taxonomy

import "strings"

// RegionNames lists the supported regions in menu and comparison order.
var RegionNames = []string{
	"москва",
	"санкт-петербург",
	"екатеринбург",
	"новосибирск",
	"нижний новгород",
	"казань",
	"челябинск",
	"самара",
	"омск",
	"ростов-на-дону",
	"уфа",
	"красноярск",
}

// regions maps a lowercase region name to its hh.ru area id.
var regions = map[string]int{
	"москва":          1,
	"санкт-петербург": 2,
	"екатеринбург":    3,
	"новосибирск":     4,
	"нижний новгород": 7,
	"казань":          9,
	"челябинск":       10,
	"самара":          11,
	"омск":            13,
	"ростов-на-дону":  14,
	"уфа":             99,
	"красноярск":      120,
}

// RegionID resolves a user-supplied region name to its hh.ru area id.
// Matching is case-insensitive and ignores surrounding whitespace.
func RegionID(name string) (int, bool) {
	id, ok := regions[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// Professions lists the profession categories in menu order. The index of a
// category here drives the numeric conversation menus.
var Professions = []string{
	"кибербезопасность",
	"DevSecOps",
	"пентестер",
	"антифрод-аналитик",
	"руководитель отдела информационной безопасности",
	"аналитик по расследованию компьютерных инцидентов",
	"архитектор информационной безопасности",
}

// Synonyms expands a profession category into the free-text search terms
// issued against the vacancy API. A posting is tagged with the category whose
// synonym search produced it, not with anything derived from its own title.
var Synonyms = map[string][]string{
	"кибербезопасность": {
		"информационная безопасность",
		"защита информации",
		"безопасность данных",
		"кибербезопасность",
		"cybersecurity",
		"information security",
		"cпециалист по информационной безопасности",
		"application Security Engineer",
		"Information Security Specialist",
		"security Operation Center",
		"пресейл-инженер по информационной безопасности",
	},
	"DevSecOps": {
		"devSecOps",
		"application security engineer",
		"appSec",
	},
	"пентестер": {
		"пентестер",
		"pentester",
		"этичный хакер",
	},
	"антифрод-аналитик": {
		"антифрод-аналитик",
		"антифрод аналитик",
		"SOC аналитик",
		"аналитик безопасности",
		"сетевой аналитик",
		"cпециалист отдела информационной безопасности",
		"инженер отдела ИТ поддержки",
		"сетевой аналитик",
	},
	"руководитель отдела информационной безопасности": {
		"руководитель отдела информационной безопасности",
		"начальник отдела управления требованиями Службы информационной безопасности",
		"начальник отдела информационных технологий",
	},
	"аналитик по расследованию компьютерных инцидентов": {
		"аналитик по расследованию компьютерных инцидентов",
		"ведущий специалист по направлению разведки киберугроз",
	},
	"архитектор информационной безопасности": {
		"Архитектор информационной безопасности",
		"архитектор ИБ",
		"solution architect",
	},
}

// ProfessionByIndex maps a 1-based menu index to a profession category.
func ProfessionByIndex(i int) (string, bool) {
	if i < 1 || i > len(Professions) {
		return "", false
	}
	return Professions[i-1], true
}

// The four hh.ru experience buckets, plus the label stored when a posting
// carries no experience information.
const ExperienceUnknown = "Не указан"

// ExperienceBuckets lists the closed experience enumeration in menu order.
var ExperienceBuckets = []string{
	"Нет опыта",
	"От 1 года до 3 лет",
	"От 3 до 6 лет",
	"Более 6 лет",
}

// ExperienceByIndex maps a 1-based menu index to an experience bucket.
func ExperienceByIndex(i int) (string, bool) {
	if i < 1 || i > len(ExperienceBuckets) {
		return "", false
	}
	return ExperienceBuckets[i-1], true
}

// IsExperienceBucket reports whether label is one of the four buckets.
func IsExperienceBucket(label string) bool {
	for _, b := range ExperienceBuckets {
		if b == label {
			return true
		}
	}
	return false
}

// SkillVocabulary is the ordered list of lowercase tokens matched against
// requirement texts. Order matters: it breaks ties in skill rankings.
var SkillVocabulary = []string{
	"python", "java", "c++", "c#", "javascript", "go", "typescript",
	"security", "cloud", "networking", "aws", "azure", "linux", "docker",
	"kubernetes", "git", "ci/cd", "sql", "mongodb", "postgresql",
	"api", "rest", "graphql", "devops", "microservices",
}
