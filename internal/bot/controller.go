// Package bot implements the conversational surface: a per-user finite-state
// machine over the region tables and the analytics engine. The controller is
// transport-agnostic — it consumes chat id + text and produces replies; the
// Telegram adapter in telegram.go only moves messages.
package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/Roups939/HotSecjobBot/internal/analytics"
	"github.com/Roups939/HotSecjobBot/internal/store"
	"github.com/Roups939/HotSecjobBot/internal/taxonomy"
)

// Reply is one outgoing message: plain text, or a PNG photo with a caption.
type Reply struct {
	Text    string
	Photo   []byte
	Caption string
}

func text(format string, args ...any) Reply {
	if len(args) == 0 {
		return Reply{Text: format}
	}
	return Reply{Text: fmt.Sprintf(format, args...)}
}

// Controller drives all dialogs. Safe for concurrent use across chats; each
// chat's inputs are expected to arrive sequentially.
type Controller struct {
	store    *store.Store
	sessions *sessions
}

// New builds a Controller over the region table store.
func New(st *store.Store) *Controller {
	return &Controller{store: st, sessions: newSessions()}
}

// Start begins a fresh dialog for the chat, discarding any previous one.
func (c *Controller) Start(chatID int64) []Reply {
	c.sessions.start(chatID)
	return []Reply{text("%s", modeMenu())}
}

// Cancel discards the dialog from any state. It never rolls back a record
// that was already appended.
func (c *Controller) Cancel(chatID int64) []Reply {
	c.sessions.drop(chatID)
	return []Reply{text("Диалог завершен.")}
}

// Input feeds one user message into the chat's FSM. Invalid input re-prompts
// the same state without touching accumulated selections.
func (c *Controller) Input(chatID int64, input string) []Reply {
	sess, ok := c.sessions.get(chatID)
	if !ok {
		return []Reply{text("Отправь /start, чтобы начать.")}
	}

	input = strings.TrimSpace(input)
	switch sess.state {
	case stateModeSelect:
		return c.chooseMode(sess, input)
	case stateVacancySelect, stateVacancyForSalarySelect:
		return c.chooseVacancy(sess, input)
	case stateRegionSelect:
		return c.chooseRegion(chatID, sess, input)
	case stateSalaryEntry:
		return c.enterSalary(sess, input)
	case stateExperienceEntry:
		return c.enterExperience(chatID, sess, input)
	case stateExperienceSelect:
		return c.chooseExperience(chatID, sess, input)
	}
	// Unreachable with a well-formed session; recover by restarting.
	return c.Start(chatID)
}

func (c *Controller) chooseMode(sess *session, input string) []Reply {
	switch input {
	case "1":
		sess.state = stateVacancySelect
	case "2":
		sess.state = stateVacancyForSalarySelect
	default:
		return []Reply{text("Пожалуйста, введи номер режима: 1 или 2.")}
	}
	return []Reply{text("%s", vacancyMenu())}
}

func (c *Controller) chooseVacancy(sess *session, input string) []Reply {
	n, err := strconv.Atoi(input)
	if err != nil {
		return []Reply{text("Пожалуйста, введи номер вакансии от 1 до %d.", len(taxonomy.Professions))}
	}
	profession, ok := taxonomy.ProfessionByIndex(n)
	if !ok {
		return []Reply{text("Пожалуйста, введи номер вакансии от 1 до %d.", len(taxonomy.Professions))}
	}
	sess.profession = profession

	if sess.state == stateVacancyForSalarySelect {
		sess.state = stateExperienceSelect
		return []Reply{text("%s", experienceMenu())}
	}
	sess.state = stateRegionSelect
	return []Reply{text("%s", regionPrompt())}
}

func (c *Controller) chooseRegion(chatID int64, sess *session, input string) []Reply {
	regionID, ok := taxonomy.RegionID(input)
	if !ok {
		return []Reply{text("Указанный регион не поддерживается. Пожалуйста, выбери регион из списка.")}
	}
	sess.region = strings.ToLower(input)
	sess.regionID = regionID

	records, err := c.store.Read(regionID)
	if err != nil {
		if !errors.Is(err, store.ErrNoTable) {
			slog.Error("bot: region read failed", slog.Int("region", regionID), slog.Any("error", err))
		}
		c.sessions.drop(chatID)
		return []Reply{text("Для региона %s нет данных о вакансиях.", title(sess.region))}
	}

	filtered := analytics.Filter(records, sess.profession, "")
	if len(filtered) == 0 {
		c.sessions.drop(chatID)
		return []Reply{text("В регионе %s нет вакансий по специальности «%s».", title(sess.region), title(sess.profession))}
	}

	summary := regionSummary(sess.profession, sess.region, filtered)
	sess.state = stateSalaryEntry
	return []Reply{
		text("%s", summary),
		text("Хочешь поделиться своими данными о зарплате по этой специальности? " +
			"Введи вилку в формате 80000-120000 (руб.) или /cancel, чтобы завершить."),
	}
}

var salaryRangeRe = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)$`)

func (c *Controller) enterSalary(sess *session, input string) []Reply {
	m := salaryRangeRe.FindStringSubmatch(input)
	if m == nil {
		return []Reply{text("Не получилось разобрать вилку. Введи два числа в формате 80000-120000.")}
	}
	from, _ := strconv.Atoi(m[1])
	to, _ := strconv.Atoi(m[2])
	if from > to {
		return []Reply{text("Нижняя граница вилки не может быть больше верхней. Попробуй еще раз.")}
	}
	sess.salary = &store.Salary{From: &from, To: &to, Currency: "RUR"}
	sess.state = stateExperienceEntry
	return []Reply{text("%s", experienceMenu())}
}

func (c *Controller) enterExperience(chatID int64, sess *session, input string) []Reply {
	bucket, ok := experienceFromInput(input)
	if !ok {
		return []Reply{text("Пожалуйста, введи номер опыта от 1 до %d.", len(taxonomy.ExperienceBuckets))}
	}
	sess.experience = bucket

	rec := store.Record{
		Title:      "Данные пользователя",
		Link:       store.LinkNotProvided,
		Salary:     sess.salary,
		Location:   sess.region,
		Profession: sess.profession,
		Experience: sess.experience,
	}
	c.sessions.drop(chatID)

	if err := c.store.Append(sess.regionID, rec); err != nil {
		slog.Error("bot: contribution append failed", slog.Int("region", sess.regionID), slog.Any("error", err))
		return []Reply{text("Не получилось сохранить данные. Попробуй позже.")}
	}
	return []Reply{text("Спасибо! Твои данные добавлены и учтутся в следующих расчетах.")}
}

func (c *Controller) chooseExperience(chatID int64, sess *session, input string) []Reply {
	bucket, ok := experienceFromInput(input)
	if !ok {
		return []Reply{text("Пожалуйста, введи номер опыта от 1 до %d.", len(taxonomy.ExperienceBuckets))}
	}
	sess.experience = bucket
	c.sessions.drop(chatID)
	return c.compareRegions(sess)
}

// compareRegions is the terminal step of mode 2: average salary per region
// for the chosen profession and exact experience bucket, over every region
// that has qualifying data.
func (c *Controller) compareRegions(sess *session) []Reply {
	var entries []regionAverage
	for _, name := range taxonomy.RegionNames {
		regionID, _ := taxonomy.RegionID(name)
		records, err := c.store.Read(regionID)
		if err != nil {
			if !errors.Is(err, store.ErrNoTable) {
				slog.Error("bot: region read failed", slog.Int("region", regionID), slog.Any("error", err))
			}
			continue
		}
		filtered := analytics.Filter(records, sess.profession, sess.experience)
		stats, ok := analytics.Salaries(filtered)
		if !ok {
			continue
		}
		entries = append(entries, regionAverage{Region: name, Avg: stats.Avg})
	}

	if len(entries) == 0 {
		return []Reply{text("Нет данных о зарплатах по специальности «%s» с опытом «%s» ни в одном регионе.",
			title(sess.profession), sess.experience)}
	}

	caption := comparisonCaption(sess.profession, sess.experience, entries)
	png, err := renderSalaryChart(sess.profession, entries)
	if err != nil {
		slog.Error("bot: chart render failed", slog.Any("error", err))
		return []Reply{text("%s", caption)}
	}
	return []Reply{{Photo: png, Caption: caption}}
}

func experienceFromInput(input string) (string, bool) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return "", false
	}
	return taxonomy.ExperienceByIndex(n)
}
